package tui

import (
	"context"

	"github.com/MKhiriev/content-console/internal/service"
	"github.com/MKhiriev/content-console/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RootModel is a TUI router:
// 1) keeps active page and the modal host
// 2) handles global Ctrl+C quit and the build info window
// 3) handles NavigateTo messages
// 4) signs out and returns to the login page when the session expires
// 5) delegates all other messages to the modal and the active page
type RootModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	pages       map[string]tea.Model
	current     tea.Model
	currentName string
	modal       *modalHost

	buildInfo     models.BuildInfo
	showBuildInfo bool
	quitByUser    bool

	width  int
	height int
}

// NewRootModel registers all pages and opens startPage. host must be the
// host the pages were built with.
func NewRootModel(ctx context.Context, pages map[string]tea.Model, startPage string, host *modalHost, auth service.ClientAuthService, buildInfo models.BuildInfo) RootModel {
	return RootModel{
		ctx:         ctx,
		auth:        auth,
		pages:       pages,
		current:     pages[startPage],
		currentName: startPage,
		modal:       host,
		buildInfo:   buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.String() == "ctrl+c" {
			r.quitByUser = true
			return r, tea.Quit
		}

		if r.modal.active() {
			return r, r.modal.handleKey(key)
		}

		switch key.String() {
		case "v":
			if r.isHomePage() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.modal.Close()
		r.current = next
		r.currentName = msg.Page

		cmds := []tea.Cmd{r.current.Init()}
		if msg.Payload != nil {
			payload := msg.Payload
			cmds = append(cmds, func() tea.Msg { return payload })
		}
		return r, tea.Batch(cmds...)

	case sessionExpiredMsg:
		r.modal.Close()
		if r.currentName == pageLogin {
			return r, nil
		}
		return r, r.cmdExpire()

	case sessionChangedMsg:
		if home, ok := r.pages[pageHome]; ok {
			updated, cmd := home.Update(msg)
			r.pages[pageHome] = updated
			if r.currentName == pageHome {
				r.current = updated
			}
			return r, cmd
		}
		return r, nil

	case tea.WindowSizeMsg:
		r.width, r.height = msg.Width, msg.Height
	}

	if r.current == nil {
		return r, nil
	}

	var modalCmd tea.Cmd
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		modalCmd = r.modal.forward(msg)
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, tea.Batch(modalCmd, cmd)
}

// cmdExpire drops the token and sends the user to the login page.
func (r RootModel) cmdExpire() tea.Cmd {
	ctx, auth := r.ctx, r.auth
	return func() tea.Msg {
		_ = auth.Logout(ctx)
		return NavigateTo{Page: pageLogin, Payload: loginNoticeMsg{text: service.MsgSessionExpired}}
	}
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("TUI", "", "")
	}
	if r.modal.active() {
		box := r.modal.View()
		if r.width > 0 && r.height > 0 {
			return lipgloss.Place(r.width, r.height, lipgloss.Center, lipgloss.Center, box)
		}
		return box
	}
	return r.current.View()
}

func (r RootModel) isHomePage() bool {
	_, ok := r.current.(*HomeModel)
	return ok
}
