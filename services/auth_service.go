package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor for password hashing.
const bcryptCost = 12

// tokenTTL is the session token lifetime.
const tokenTTL = 7 * 24 * time.Hour

// AuthService handles registration, credential sign-in and session tokens.
// Sessions are JWTs signed with the configured secret, carrying the user id
// as subject.
type AuthService struct {
	db        database.Database
	secret    []byte
	providers map[string]OAuthProvider
	logger    zerolog.Logger
}

func NewAuthService(db database.Database, secret string, providers map[string]OAuthProvider) AuthService {
	return AuthService{
		db:        db,
		secret:    []byte(secret),
		providers: providers,
		logger:    log.With().Str("serviceName", "authService").Logger(),
	}
}

// HashPassword hashes a plaintext password. The plaintext is never stored or
// logged anywhere.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Register creates a credentials user with a hashed password.
func (s AuthService) Register(name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	switch {
	case name == "":
		return nil, errs.NewBadRequestErrorWithField("missing required field", "name", "name is required")
	case email == "":
		return nil, errs.NewBadRequestErrorWithField("missing required field", "email", "email is required")
	case password == "":
		return nil, errs.NewBadRequestErrorWithField("missing required field", "password", "password is required")
	}

	existing, err := s.db.UserRepo().FindByEmail(email)
	if err != nil {
		return nil, errs.NewStorageFailure("find", "user", err)
	}
	if existing != nil {
		return nil, errs.NewDuplicateEmail()
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, errs.NewStorageFailure("hash password for", "user", err)
	}

	user := models.User{Name: name, Email: email, Password: &hash}
	if err := s.db.UserRepo().Add(&user); err != nil {
		if errs.IsUniqueViolation(err) {
			return nil, errs.NewDuplicateEmail()
		}
		return nil, errs.TranslateStorageError("create", "user", err)
	}
	return &user, nil
}

// Login verifies email and password and issues a session token. OAuth-only
// accounts have no password hash and cannot sign in with credentials.
func (s AuthService) Login(email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.db.UserRepo().FindByEmail(email)
	if err != nil {
		return "", nil, errs.NewStorageFailure("find", "user", err)
	}
	if user == nil || user.Password == nil {
		return "", nil, errs.NewInvalidCredentials()
	}
	if !VerifyPassword(password, *user.Password) {
		return "", nil, errs.NewInvalidCredentials()
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return "", nil, errs.NewInternalError("failed to issue session token")
	}
	return token, user, nil
}

// IssueToken signs a session JWT with the user id as subject.
func (s AuthService) IssueToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// VerifyToken parses and validates a session JWT, returning the user id it
// was issued for.
func (s AuthService) VerifyToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, errs.NewUnauthenticated()
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return uuid.Nil, errs.NewUnauthenticated()
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errs.NewUnauthenticated()
	}
	return userID, nil
}
