package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	return NewAuthService(newTestDB(t), "test-signing-secret", nil)
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("Ada", "ada@example.com", "hunter2hunter2")
	require.NoError(t, err)
	require.NotNil(t, user.Password)

	assert.NotEqual(t, "hunter2hunter2", *user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte("hunter2hunter2")))

	cost, err := bcrypt.Cost([]byte(*user.Password))
	require.NoError(t, err)
	assert.Equal(t, 12, cost)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("Ada", "ada@example.com", "hunter2hunter2")
	require.NoError(t, err)

	_, err = svc.Register("Other Ada", "Ada@Example.com", "different-pass")
	require.Error(t, err)

	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.StatusCode)
}

func TestRegisterRequiresFields(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("", "ada@example.com", "pass")
	require.Error(t, err)
	_, err = svc.Register("Ada", "", "pass")
	require.Error(t, err)
	_, err = svc.Register("Ada", "ada@example.com", "")
	require.Error(t, err)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("Ada", "ada@example.com", "hunter2hunter2")
	require.NoError(t, err)

	token, loggedIn, err := svc.Login("ada@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	subject, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, subject)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("Ada", "ada@example.com", "hunter2hunter2")
	require.NoError(t, err)

	_, _, err = svc.Login("ada@example.com", "wrong-password")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@example.com", "whatever")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestVerifyTokenRejectsForeignSignature(t *testing.T) {
	svc := newAuthService(t)
	other := NewAuthService(svc.db, "a-different-secret", nil)

	token, err := other.IssueToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	require.Error(t, err)
	assert.True(t, errs.IsUnauthenticated(err))

	_, err = svc.VerifyToken("not-a-jwt")
	require.Error(t, err)
	assert.True(t, errs.IsUnauthenticated(err))
}

func TestOAuthProvidersRegisteredOnlyWhenFullyConfigured(t *testing.T) {
	providers := NewOAuthProviders(map[string]string{
		"GITHUB_ID":     "id",
		"GITHUB_SECRET": "secret",
		"GOOGLE_ID":     "id-without-secret",
	}, "https://example.com")

	require.Contains(t, providers, "github")
	assert.NotContains(t, providers, "google")

	gh := providers["github"]
	assert.Equal(t, "https://example.com/api/auth/oauth/github/callback", gh.Config.RedirectURL)

	assert.Empty(t, NewOAuthProviders(nil, "https://example.com"))
}
