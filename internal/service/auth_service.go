package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"gorm.io/gorm"

	"anoa.com/clanportal/internal/config"
	"anoa.com/clanportal/internal/model"
	"anoa.com/clanportal/internal/repository"
	"anoa.com/clanportal/pkg/apperror"
)

type AuthService interface {
	// LoginURL issues a state nonce and returns the Discord authorize URL.
	LoginURL(ctx context.Context) (string, error)
	// HandleCallback exchanges the authorization code, resolves or creates
	// the local user, and returns a signed session token.
	HandleCallback(ctx context.Context, code, state string) (string, error)
}

type authService struct {
	users      repository.UserRepository
	states     StateStore
	oauth      *oauth2.Config
	apiBaseURL string
	secret     string
	tokenTTL   time.Duration
}

func NewAuthService(users repository.UserRepository, states StateStore, cfg *config.Config) AuthService {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.DiscordClientID,
		ClientSecret: cfg.DiscordClientSecret,
		RedirectURL:  cfg.DiscordRedirectURL,
		Scopes:       []string{"identify", "email"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  cfg.DiscordAuthURL,
			TokenURL: cfg.DiscordTokenURL,
		},
	}

	return &authService{
		users:      users,
		states:     states,
		oauth:      oauthConfig,
		apiBaseURL: cfg.DiscordAPIBaseURL,
		secret:     cfg.SessionSecret,
		tokenTTL:   cfg.SessionTTL,
	}
}

func (s *authService) LoginURL(ctx context.Context) (string, error) {
	state, err := s.states.Issue(ctx)
	if err != nil {
		return "", err
	}

	return s.oauth.AuthCodeURL(state), nil
}

func (s *authService) HandleCallback(ctx context.Context, code, state string) (string, error) {
	if err := s.states.Verify(ctx, state); err != nil {
		if errors.Is(err, ErrInvalidState) {
			return "", apperror.New(http.StatusBadRequest, "invalid oauth state", err)
		}
		return "", err
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return "", apperror.New(http.StatusBadGateway, "discord token exchange failed", err)
	}

	identity, err := s.fetchIdentity(ctx, token)
	if err != nil {
		return "", err
	}

	user, err := s.users.FindByDiscordID(ctx, identity.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", err
		}

		// First callback doubles as sign-up: the account is created as an
		// accepted member with no approval step.
		user = &model.User{
			Name:      identity.Username,
			DiscordID: &identity.ID,
			Role:      model.RoleMember,
			Status:    model.StatusAccepted,
			AvatarURL: identity.avatarURL(),
		}
		if err := s.users.Create(ctx, user); err != nil {
			return "", err
		}
	}

	return s.generateSessionToken(user)
}

type discordIdentity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
}

func (d discordIdentity) avatarURL() *string {
	if d.Avatar == "" {
		return nil
	}
	url := fmt.Sprintf("https://cdn.discordapp.com/avatars/%s/%s.png", d.ID, d.Avatar)
	return &url
}

func (s *authService) fetchIdentity(ctx context.Context, token *oauth2.Token) (*discordIdentity, error) {
	client := s.oauth.Client(ctx, token)
	resp, err := client.Get(s.apiBaseURL + "/users/@me")
	if err != nil {
		return nil, apperror.New(http.StatusBadGateway, "failed to fetch discord profile", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperror.New(http.StatusBadGateway, "failed to fetch discord profile",
			fmt.Errorf("discord returned status %d", resp.StatusCode))
	}

	var identity discordIdentity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, apperror.New(http.StatusBadGateway, "failed to decode discord profile", err)
	}

	if identity.ID == "" {
		return nil, apperror.New(http.StatusBadGateway, "discord profile has no id", nil)
	}

	return &identity, nil
}

func (s *authService) generateSessionToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}
