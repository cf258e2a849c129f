package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
)

// OAuthProvider is one configured external identity provider.
type OAuthProvider struct {
	Name        string
	Config      *oauth2.Config
	UserInfoURL string
}

// NewOAuthProviders builds the provider set from the environment. A provider
// is registered only when both its client id and secret are present.
func NewOAuthProviders(c map[string]string, callbackBase string) map[string]OAuthProvider {
	providers := make(map[string]OAuthProvider)

	githubID := config.GetString(c, "GITHUB_ID", "")
	githubSecret := config.GetString(c, "GITHUB_SECRET", "")
	if githubID != "" && githubSecret != "" {
		providers["github"] = OAuthProvider{
			Name: "github",
			Config: &oauth2.Config{
				ClientID:     githubID,
				ClientSecret: githubSecret,
				Endpoint:     github.Endpoint,
				RedirectURL:  fmt.Sprintf("%s/api/auth/oauth/github/callback", callbackBase),
				Scopes:       []string{"read:user", "user:email"},
			},
			UserInfoURL: "https://api.github.com/user",
		}
	}

	googleID := config.GetString(c, "GOOGLE_ID", "")
	googleSecret := config.GetString(c, "GOOGLE_SECRET", "")
	if googleID != "" && googleSecret != "" {
		providers["google"] = OAuthProvider{
			Name: "google",
			Config: &oauth2.Config{
				ClientID:     googleID,
				ClientSecret: googleSecret,
				Endpoint:     google.Endpoint,
				RedirectURL:  fmt.Sprintf("%s/api/auth/oauth/google/callback", callbackBase),
				Scopes:       []string{"openid", "email", "profile"},
			},
			UserInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		}
	}

	return providers
}

// Provider returns a configured provider by name, or nil.
func (s AuthService) Provider(name string) *OAuthProvider {
	if p, ok := s.providers[name]; ok {
		return &p
	}
	return nil
}

// oauthUserInfo is the subset of provider user-info payloads we care about.
// GitHub uses login/avatar_url, Google uses picture; both use email/name.
type oauthUserInfo struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	Picture   string `json:"picture"`
}

// LoginWithOAuth exchanges the authorization code, fetches the provider's
// user info, upserts the user by email (no password, OAuth-only) and issues
// the same session JWT credential sign-in does.
func (s AuthService) LoginWithOAuth(providerName, code string) (string, *models.User, error) {
	provider := s.Provider(providerName)
	if provider == nil {
		return "", nil, errs.NewBadRequestError(fmt.Sprintf("unknown oauth provider: %s", providerName))
	}

	token, err := provider.Config.Exchange(context.Background(), code)
	if err != nil {
		s.logger.Warn().Err(err).Str("provider", providerName).Msg("OAuth code exchange failed")
		return "", nil, errs.NewUnauthorizedError("oauth code exchange failed")
	}

	info, err := fetchOAuthUserInfo(provider, token)
	if err != nil {
		s.logger.Warn().Err(err).Str("provider", providerName).Msg("OAuth user info fetch failed")
		return "", nil, errs.NewUnauthorizedError("failed to fetch user info from provider")
	}
	if info.Email == "" {
		return "", nil, errs.NewUnauthorizedError("provider did not share an email address")
	}

	name := info.Name
	if name == "" {
		name = info.Login
	}
	image := info.AvatarURL
	if image == "" {
		image = info.Picture
	}

	user, err := s.db.UserRepo().FindByEmail(info.Email)
	if err != nil {
		return "", nil, errs.NewStorageFailure("find", "user", err)
	}
	if user == nil {
		user = &models.User{Email: info.Email, Name: name}
		if image != "" {
			user.Image = &image
		}
		if err := s.db.UserRepo().Add(user); err != nil {
			return "", nil, errs.TranslateStorageError("create", "user", err)
		}
	}

	sessionToken, err := s.IssueToken(user.ID)
	if err != nil {
		return "", nil, errs.NewInternalError("failed to issue session token")
	}
	return sessionToken, user, nil
}

func fetchOAuthUserInfo(provider *OAuthProvider, token *oauth2.Token) (*oauthUserInfo, error) {
	client := provider.Config.Client(context.Background(), token)
	resp, err := client.Get(provider.UserInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info endpoint returned status %d", resp.StatusCode)
	}

	var info oauthUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}
