package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/content-console/internal/adapter"
	"github.com/MKhiriev/content-console/internal/logger"
	"github.com/MKhiriev/content-console/internal/session"
	"github.com/MKhiriev/content-console/internal/utils"
	"github.com/MKhiriev/content-console/models"
)

type clientAuthService struct {
	session *session.Store
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(sessionStore *session.Store, serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientAuthService {
	return &clientAuthService{session: sessionStore, adapter: serverAdapter, logger: log}
}

func (a *clientAuthService) Login(ctx context.Context, username, password string) (models.AuthSession, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.AuthSession{}, ErrEmptyCredentials
	}

	// 1: обмениваем логин и пароль на токен
	token, err := a.adapter.Login(ctx, username, password)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Login").Str("username", username).Msg("login failed")
		return models.AuthSession{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}
	if token.String() == "" {
		a.logger.Error().Str("func", "clientAuthService.Login").Str("username", username).Msg("login response has no access token")
		return models.AuthSession{}, fmt.Errorf("%w: %w", ErrLoginOnServer, ErrNoAccessToken)
	}

	// 2: токен сохраняется до запроса профиля
	if err = a.session.Login(ctx, token.String()); err != nil {
		a.logger.Warn().Err(err).Str("func", "clientAuthService.Login").Msg("token kept in memory only")
	}
	a.adapter.SetToken(token.String())

	// 3: профиль; ошибка не разлогинивает
	a.fetchProfile(ctx)

	return a.session.Snapshot(), nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.AuthSession, error) {
	if err := a.session.Init(ctx); err != nil {
		return models.AuthSession{}, fmt.Errorf("restore session: %w", err)
	}

	snapshot := a.session.Snapshot()
	a.adapter.SetToken(snapshot.Token)
	if !snapshot.HasToken() {
		return snapshot, nil
	}

	a.fetchProfile(ctx)
	return a.session.Snapshot(), nil
}

func (a *clientAuthService) RefreshProfile(ctx context.Context) error {
	if a.session.Token() == "" {
		return nil
	}

	user, err := a.adapter.Me(ctx)
	if err != nil {
		return fmt.Errorf("refresh profile: %w", err)
	}

	return a.session.SetUser(ctx, &user)
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	return a.session.Logout(ctx)
}

func (a *clientAuthService) Teardown(ctx context.Context) error {
	a.adapter.SetToken("")
	return a.session.Teardown(ctx)
}

func (a *clientAuthService) Session() models.AuthSession {
	return a.session.Snapshot()
}

func (a *clientAuthService) TokenExpiresAt() (time.Time, bool) {
	token := a.session.Token()
	if token == "" {
		return time.Time{}, false
	}

	exp, err := utils.TokenExpiresAt(token)
	if err != nil {
		return time.Time{}, false
	}
	return exp, true
}

func (a *clientAuthService) fetchProfile(ctx context.Context) {
	user, err := a.adapter.Me(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "clientAuthService.fetchProfile").Msg("profile unavailable, keeping token")
		return
	}

	if err = a.session.SetUser(ctx, &user); err != nil {
		a.logger.Warn().Err(err).Str("func", "clientAuthService.fetchProfile").Msg("profile kept in memory only")
	}
}
