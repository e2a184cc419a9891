package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"portfolio-be/internal/config"
	"portfolio-be/internal/contentstore"
	"portfolio-be/internal/entity"
	"portfolio-be/internal/pkg/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

// IOAuthService is the GitHub sign-in variant. It can start the flow and
// recognise a stored token, but it never exchanges an authorization code:
// without a confidential backend exchange the callback always ends in an
// error that points back to the password login.
type IOAuthService interface {
	LoginURL(ctx context.Context) (string, error)
	HandleCallback(ctx context.Context, code, state string) error
	CheckToken(ctx context.Context) (*entity.Session, error)
}

type oauthService struct {
	store        *contentstore.Store
	githubConf   *oauth2.Config
	apiURL       string
	allowedLogin string
	logger       logger.ILogger
}

func NewOAuthService(store *contentstore.Store, cfg config.OAuthConfig, allowedLogin string, log logger.ILogger) IOAuthService {
	conf := &oauth2.Config{
		ClientID:     cfg.GitHubClientID,
		ClientSecret: cfg.GitHubClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       []string{"read:user"},
		Endpoint:     github.Endpoint,
	}

	return &oauthService{
		store:        store,
		githubConf:   conf,
		apiURL:       strings.TrimRight(cfg.GitHubAPIURL, "/"),
		allowedLogin: allowedLogin,
		logger:       log,
	}
}

func (s *oauthService) LoginURL(ctx context.Context) (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	state := base64.URLEncoding.EncodeToString(b)

	if err := s.store.PutRecord(ctx, contentstore.KeyOAuthState, state); err != nil {
		return "", err
	}
	return s.githubConf.AuthCodeURL(state), nil
}

func (s *oauthService) HandleCallback(ctx context.Context, code, state string) error {
	var stored string
	found, err := s.store.GetRecord(ctx, contentstore.KeyOAuthState, &stored)
	if err != nil {
		return err
	}
	if !found || state == "" || state != stored {
		s.logger.Warn("OAuth", "Callback state mismatch", nil)
		return ErrInvalidOAuthState
	}
	if err := s.store.Remove(ctx, contentstore.KeyOAuthState); err != nil {
		return err
	}

	if code == "" {
		return ErrMissingAuthCode
	}

	s.logger.Info("OAuth", "Authorization code received but exchange is unavailable", nil)
	return ErrOAuthUnsupported
}

// CheckToken looks up the identity behind the stored GitHub token. A token
// that does not belong to the site owner, or that the API refuses, is
// cleared and the result is nil.
func (s *oauthService) CheckToken(ctx context.Context) (*entity.Session, error) {
	var token string
	found, err := s.store.GetRecord(ctx, contentstore.KeyGitHubToken, &token)
	if err != nil {
		return nil, err
	}
	if !found || token == "" {
		return nil, nil
	}

	client := s.githubConf.Client(ctx, &oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL+"/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		s.clearToken(ctx, "identity lookup failed")
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.clearToken(ctx, "identity endpoint returned "+strconv.Itoa(resp.StatusCode))
		return nil, nil
	}

	var user entity.GitHubUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		s.clearToken(ctx, "identity response unreadable")
		return nil, nil
	}
	if user.Login != s.allowedLogin {
		s.clearToken(ctx, "login not authorized")
		return nil, nil
	}

	name := user.Name
	if name == "" {
		name = user.Login
	}
	return &entity.Session{
		Id:        strconv.FormatInt(user.Id, 10),
		Login:     user.Login,
		Name:      name,
		AvatarURL: user.AvatarURL,
		Email:     user.Email,
	}, nil
}

func (s *oauthService) clearToken(ctx context.Context, reason string) {
	s.logger.Warn("OAuth", "Clearing GitHub token", map[string]interface{}{"reason": reason})
	if err := s.store.Remove(ctx, contentstore.KeyGitHubToken); err != nil {
		s.logger.Error("OAuth", "Failed to clear GitHub token", map[string]interface{}{"error": err.Error()})
	}
}
