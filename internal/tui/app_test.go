package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/content-console/internal/mock"
	"github.com/MKhiriev/content-console/internal/service"
	"github.com/MKhiriev/content-console/models"
)

// newTestRoot: хелпер: корневая модель с домашней страницей и страницей входа
func newTestRoot(t *testing.T, ctrl *gomock.Controller) (RootModel, *mock.MockClientAuthService, *modalHost) {
	t.Helper()
	host := newModalHost()
	ctx := withModalHost(context.Background(), host)

	auth := mock.NewMockClientAuthService(ctrl)
	auth.EXPECT().Session().Return(models.AuthSession{}).AnyTimes()

	pages := map[string]tea.Model{
		pageLogin: NewLoginModel(ctx, auth),
		pageHome:  NewHomeModel(ctx, auth),
	}
	root := NewRootModel(context.Background(), pages, pageHome, host, auth, models.NewBuildInfo("1.2.0", "2026-10-01", "abc123"))
	return root, auth, host
}

func update(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

// ── Navigation ───────────────────────────────────────────────────────────────

func TestRootModel_NavigateToDeliversPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root, _, _ := newTestRoot(t, ctrl)

	root, cmd := update(t, root, NavigateTo{Page: pageLogin, Payload: loginNoticeMsg{text: "привет"}})
	require.NotNil(t, cmd)
	assert.Equal(t, pageLogin, root.currentName)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	require.Len(t, batch, 2)

	root, _ = update(t, root, batch[1]())
	assert.Contains(t, root.View(), "привет")
}

func TestRootModel_NavigateToUnknownPageIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root, _, _ := newTestRoot(t, ctrl)

	root, cmd := update(t, root, NavigateTo{Page: "nowhere"})
	assert.Nil(t, cmd)
	assert.Equal(t, pageHome, root.currentName)
}

// ── Session expiry ───────────────────────────────────────────────────────────

func TestRootModel_SessionExpiredLogsOutAndShowsLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root, auth, host := newTestRoot(t, ctrl)
	host.Open(ModalContent{Kind: ModalError, Message: "старое"})

	// только токен, профиль остаётся
	auth.EXPECT().Logout(gomock.Any()).Return(nil)
	auth.EXPECT().Teardown(gomock.Any()).Times(0)

	root, cmd := update(t, root, sessionExpiredMsg{})
	assert.False(t, host.active())
	require.NotNil(t, cmd)

	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageLogin, nav.Page)
	assert.Equal(t, loginNoticeMsg{text: service.MsgSessionExpired}, nav.Payload)

	root, _ = update(t, root, nav)
	assert.Equal(t, pageLogin, root.currentName)
}

func TestRootModel_SessionExpiredOnLoginPageIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root, auth, _ := newTestRoot(t, ctrl)
	auth.EXPECT().Logout(gomock.Any()).Times(0)

	root, _ = update(t, root, NavigateTo{Page: pageLogin})
	_, cmd := update(t, root, sessionExpiredMsg{})

	assert.Nil(t, cmd)
}

func TestRootModel_SessionChangedReachesHome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root, _, _ := newTestRoot(t, ctrl)
	root, _ = update(t, root, NavigateTo{Page: pageLogin})

	root, _ = update(t, root, sessionChangedMsg{session: models.AuthSession{User: &models.User{Name: "Ольга"}}})

	home := root.pages[pageHome].(*HomeModel)
	assert.Equal(t, "Ольга", home.session.User.DisplayName())
}

// ── Hotkeys ──────────────────────────────────────────────────────────────────

func TestRootModel_CtrlCQuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root, _, _ := newTestRoot(t, ctrl)

	root, cmd := update(t, root, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, root.quitByUser)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestRootModel_BuildInfoOnHomeOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root, _, _ := newTestRoot(t, ctrl)
	v := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")}

	root, _ = update(t, root, v)
	require.True(t, root.showBuildInfo)
	view := root.View()
	assert.Contains(t, view, "Content Console")
	assert.Contains(t, view, "1.2.0")
	assert.Contains(t, view, "abc123")

	root, _ = update(t, root, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, root.showBuildInfo)

	root, _ = update(t, root, NavigateTo{Page: pageLogin})
	root, _ = update(t, root, v)
	assert.False(t, root.showBuildInfo)
}

func TestRootModel_KeysGoToModalFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root, _, host := newTestRoot(t, ctrl)
	confirm(host, "Сброс", "Точно?", nil)

	root, _ = update(t, root, tea.KeyMsg{Type: tea.KeyDown})

	home := root.pages[pageHome].(*HomeModel)
	assert.Equal(t, 0, home.idx, "страница не получает клавиши при открытой модалке")
	assert.Contains(t, root.View(), "Точно?")

	root, _ = update(t, root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	assert.False(t, host.active())

	root, _ = update(t, root, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, home.idx)
}
