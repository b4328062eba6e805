package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/content-console/internal/adapter"
	"github.com/MKhiriev/content-console/internal/logger"
	"github.com/MKhiriev/content-console/internal/mock"
	"github.com/MKhiriev/content-console/internal/session"
	"github.com/MKhiriev/content-console/internal/store"
	"github.com/MKhiriev/content-console/models"
)

// newTestAuthSvc: хелпер для создания clientAuthService с моками
func newTestAuthSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*clientAuthService,
	*mock.MockServerAdapter,
	*mock.MockSessionRepository,
	*session.Store,
) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockRepo := mock.NewMockSessionRepository(ctrl)
	sessionStore := session.NewStore(mockRepo, "kh-auth", logger.Nop())

	svc := NewClientAuthService(sessionStore, mockAdapter, logger.Nop()).(*clientAuthService)
	return svc, mockAdapter, mockRepo, sessionStore
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockRepo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{ID: "u1", Email: "editor@clinic.ru", Name: "Ольга"}

	// токен выставляется строго до запроса профиля
	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, "editor@clinic.ru", "secret").
			Return(models.AccessToken{AccessToken: "tok", TokenType: "bearer"}, nil),
		mockRepo.EXPECT().Save(ctx, "kh-auth", models.AuthSession{Token: "tok"}).Return(nil),
		mockAdapter.EXPECT().SetToken("tok"),
		mockAdapter.EXPECT().Me(ctx).Return(user, nil),
		mockRepo.EXPECT().Save(ctx, "kh-auth", models.AuthSession{Token: "tok", User: &user}).Return(nil),
	)

	got, err := svc.Login(ctx, "  editor@clinic.ru ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok", got.Token)
	require.NotNil(t, got.User)
	assert.Equal(t, "Ольга", got.User.Name)
}

func TestClientAuthService_Login_EmptyTokenIsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, sessionStore := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// ни Save, ни SetToken, ни Me не ожидаются
	mockAdapter.EXPECT().Login(ctx, "a@b.c", "p").Return(models.AccessToken{TokenType: "bearer"}, nil)

	_, err := svc.Login(ctx, "a@b.c", "p")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.ErrorIs(t, err, ErrNoAccessToken)
	assert.Equal(t, MsgLoginFailed, LoginErrorMessage(err))
	assert.False(t, sessionStore.Snapshot().HasToken())
}

func TestClientAuthService_Login_ProfileFailureKeepsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockRepo, sessionStore := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, "a@b.c", "p").Return(models.AccessToken{AccessToken: "tok"}, nil)
	mockRepo.EXPECT().Save(ctx, "kh-auth", gomock.Any()).Return(nil)
	mockAdapter.EXPECT().SetToken("tok")
	mockAdapter.EXPECT().Me(ctx).Return(models.User{}, adapter.NewAPIError(http.StatusInternalServerError, ""))

	got, err := svc.Login(ctx, "a@b.c", "p")
	require.NoError(t, err, "ошибка профиля не должна ломать вход")
	assert.Equal(t, "tok", got.Token)
	assert.Nil(t, got.User)
	assert.Equal(t, "tok", sessionStore.Token())
}

func TestClientAuthService_Login_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, sessionStore := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, "a@b.c", "bad").
		Return(models.AccessToken{}, adapter.NewAPIError(http.StatusUnauthorized, "Неверный email или пароль"))

	_, err := svc.Login(ctx, "a@b.c", "bad")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, "Неверный email или пароль", LoginErrorMessage(err))
	assert.Empty(t, sessionStore.Token())
}

func TestClientAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), "  ", "p")
	assert.ErrorIs(t, err, ErrEmptyCredentials)

	_, err = svc.Login(context.Background(), "a@b.c", "")
	assert.ErrorIs(t, err, ErrEmptyCredentials)
}

// ── RestoreSession ───────────────────────────────────────────────────────────

func TestClientAuthService_RestoreSession_WithToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockRepo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{Name: "Ольга"}

	gomock.InOrder(
		mockRepo.EXPECT().Load(ctx, "kh-auth").Return(models.AuthSession{Token: "saved"}, nil),
		mockAdapter.EXPECT().SetToken("saved"),
		mockAdapter.EXPECT().Me(ctx).Return(user, nil),
		mockRepo.EXPECT().Save(ctx, "kh-auth", gomock.Any()).Return(nil),
	)

	got, err := svc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "saved", got.Token)
	assert.Equal(t, "Ольга", got.User.Name)
}

func TestClientAuthService_RestoreSession_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockRepo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().Load(ctx, "kh-auth").Return(models.AuthSession{}, store.ErrLocalSessionNotFound)
	mockAdapter.EXPECT().SetToken("")

	got, err := svc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.False(t, got.HasToken())
}

func TestClientAuthService_RestoreSession_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockRepo, _ := newTestAuthSvc(t, ctrl)
	mockRepo.EXPECT().Load(gomock.Any(), "kh-auth").Return(models.AuthSession{}, errors.New("disk"))

	_, err := svc.RestoreSession(context.Background())
	assert.Error(t, err)
}

// ── Logout / Teardown ────────────────────────────────────────────────────────

func TestClientAuthService_LogoutKeepsUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockRepo, sessionStore := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().Save(ctx, "kh-auth", gomock.Any()).Return(nil).Times(3)
	require.NoError(t, sessionStore.Login(ctx, "tok"))
	require.NoError(t, sessionStore.SetUser(ctx, &models.User{Name: "Ольга"}))

	mockAdapter.EXPECT().SetToken("")
	require.NoError(t, svc.Logout(ctx))

	assert.Empty(t, svc.Session().Token)
	assert.Equal(t, "Ольга", svc.Session().User.Name)
}

func TestClientAuthService_Teardown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockRepo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SetToken("")
	mockRepo.EXPECT().Delete(ctx, "kh-auth").Return(nil)

	require.NoError(t, svc.Teardown(ctx))
	assert.Equal(t, models.AuthSession{}, svc.Session())
}

// ── RefreshProfile ───────────────────────────────────────────────────────────

func TestClientAuthService_RefreshProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockRepo, sessionStore := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// без токена запрос не уходит
	require.NoError(t, svc.RefreshProfile(ctx))

	mockRepo.EXPECT().Save(ctx, "kh-auth", gomock.Any()).Return(nil).Times(2)
	require.NoError(t, sessionStore.Login(ctx, "tok"))

	mockAdapter.EXPECT().Me(ctx).Return(models.User{Name: "Новое имя"}, nil)
	require.NoError(t, svc.RefreshProfile(ctx))
	assert.Equal(t, "Новое имя", sessionStore.User().Name)

	mockAdapter.EXPECT().Me(ctx).Return(models.User{}, adapter.NewAPIError(http.StatusUnauthorized, ""))
	err := svc.RefreshProfile(ctx)
	assert.True(t, IsSessionExpired(err))
}

// ── TokenExpiresAt ───────────────────────────────────────────────────────────

func TestClientAuthService_TokenExpiresAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockRepo, sessionStore := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, ok := svc.TokenExpiresAt()
	assert.False(t, ok)

	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1", "exp": exp.Unix()}).
		SignedString([]byte("any-key"))
	require.NoError(t, err)

	mockRepo.EXPECT().Save(ctx, "kh-auth", gomock.Any()).Return(nil)
	require.NoError(t, sessionStore.Login(ctx, token))

	got, ok := svc.TokenExpiresAt()
	require.True(t, ok)
	assert.True(t, exp.Equal(got))
}
