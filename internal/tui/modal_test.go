package tui

import (
	"context"
	"errors"
	"net/http"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/content-console/internal/adapter"
)

type confirmedMsg struct{}

func TestModalHostFrom_PanicsOutsideRoot(t *testing.T) {
	assert.PanicsWithValue(t, "modal host used outside of root model", func() {
		modalHostFrom(context.Background())
	})
}

func TestModalHostFrom_PagesRequireHost(t *testing.T) {
	assert.Panics(t, func() { NewProjectsModel(context.Background(), nil) })
	assert.Panics(t, func() { NewHomeModel(context.Background(), nil) })
}

func TestModalHostFrom_ReturnsInstalledHost(t *testing.T) {
	host := newModalHost()
	ctx := withModalHost(context.Background(), host)

	assert.Same(t, host, modalHostFrom(ctx))
}

// ── Confirm ──────────────────────────────────────────────────────────────────

func TestModalHost_ConfirmYesRunsCallback(t *testing.T) {
	host := newModalHost()
	confirm(host, "Удаление", "Удалить?", func() tea.Msg { return confirmedMsg{} })

	require.True(t, host.active())
	assert.Contains(t, host.View(), "Удалить?")

	cmd := host.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})

	assert.False(t, host.active())
	require.NotNil(t, cmd)
	assert.Equal(t, confirmedMsg{}, cmd())
}

func TestModalHost_ConfirmNoCloses(t *testing.T) {
	host := newModalHost()
	confirm(host, "Удаление", "Удалить?", func() tea.Msg { return confirmedMsg{} })

	cmd := host.handleKey(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, host.active())
	assert.Nil(t, cmd)
}

func TestModalHost_ConfirmIgnoresOtherKeys(t *testing.T) {
	host := newModalHost()
	confirm(host, "", "Удалить?", nil)

	host.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	assert.True(t, host.active())
}

// ── Error ────────────────────────────────────────────────────────────────────

func TestModalHost_ErrorClosesOnEnter(t *testing.T) {
	host := newModalHost()
	host.Open(ModalContent{Kind: ModalError, Message: "сломалось"})

	assert.Contains(t, host.View(), "сломалось")
	host.handleKey(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, host.active())
	assert.Empty(t, host.View())
}

func TestModalHost_OpenReplacesCurrent(t *testing.T) {
	host := newModalHost()
	host.Open(ModalContent{Kind: ModalError, Message: "первая"})
	host.Open(ModalContent{Kind: ModalError, Message: "вторая"})

	content, ok := host.current()
	require.True(t, ok)
	assert.Equal(t, "вторая", content.Message)
}

// ── reportError ──────────────────────────────────────────────────────────────

func TestReportError_SessionExpired(t *testing.T) {
	host := newModalHost()

	cmd := reportError(host, "Ошибка", adapter.NewAPIError(http.StatusUnauthorized, ""))

	assert.False(t, host.active())
	require.NotNil(t, cmd)
	assert.Equal(t, sessionExpiredMsg{}, cmd())
}

func TestReportError_OpensErrorModal(t *testing.T) {
	host := newModalHost()

	cmd := reportError(host, "Ошибка", adapter.NewAPIError(http.StatusConflict, "Проект уже существует"))

	assert.Nil(t, cmd)
	content, ok := host.current()
	require.True(t, ok)
	assert.Equal(t, ModalError, content.Kind)
	assert.Equal(t, "Проект уже существует", content.Message)
}

func TestReportError_ServerUnavailable(t *testing.T) {
	host := newModalHost()

	reportError(host, "Ошибка", errors.New("dial tcp 127.0.0.1:8000: connect: connection refused"))

	content, _ := host.current()
	assert.Equal(t, msgServerUnavailable, content.Message)
}

func TestReportError_Nil(t *testing.T) {
	host := newModalHost()
	assert.Nil(t, reportError(host, "Ошибка", nil))
	assert.False(t, host.active())
}
