package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/content-console/internal/service"
	"github.com/MKhiriev/content-console/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type homeAction int

const (
	homeProjects homeAction = iota
	homeContentPlan
	homeClusterRegistry
	homeQueries
	homeAnalytics
	homeLogout
	homeTeardown
)

type homeItem struct {
	title  string
	action homeAction
}

// HomeModel is the main menu shown after sign-in. The header shows who is
// signed in and when the token expires.
type HomeModel struct {
	ctx   context.Context
	auth  service.ClientAuthService
	modal ModalHost

	items   []homeItem
	idx     int
	session models.AuthSession
	now     func() time.Time
}

func NewHomeModel(ctx context.Context, auth service.ClientAuthService) *HomeModel {
	return &HomeModel{
		ctx:   ctx,
		auth:  auth,
		modal: modalHostFrom(ctx),
		items: []homeItem{
			{title: "Проекты", action: homeProjects},
			{title: "Контент-план", action: homeContentPlan},
			{title: "Реестр кластеров", action: homeClusterRegistry},
			{title: "Семантическое ядро", action: homeQueries},
			{title: "Аналитика", action: homeAnalytics},
			{title: "Выйти", action: homeLogout},
			{title: "Сбросить сессию", action: homeTeardown},
		},
		now: time.Now,
	}
}

func (m *HomeModel) Init() tea.Cmd {
	m.session = m.auth.Session()
	return nil
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionChangedMsg:
		m.session = msg.session
		return m, nil

	case signedOutMsg:
		nav := NavigateTo{Page: pageLogin}
		if msg.err != nil {
			nav.Payload = loginNoticeMsg{text: "Сессия завершена, но не сохранена: " + errorText(msg.err)}
		}
		return m, func() tea.Msg { return nav }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m, m.activate(m.items[m.idx].action)
	}

	return m, nil
}

func (m *HomeModel) activate(action homeAction) tea.Cmd {
	switch action {
	case homeProjects:
		return navigate(pageProjects)
	case homeContentPlan:
		return navigate(pageContentPlan)
	case homeClusterRegistry:
		return navigate(pageClusterRegistry)
	case homeQueries:
		return navigate(pageQueries)
	case homeAnalytics:
		return navigate(pageAnalytics)
	case homeLogout:
		return m.cmdSignOut(m.auth.Logout)
	case homeTeardown:
		confirm(m.modal, "Сброс сессии", "Удалить сохранённую сессию и профиль?", m.cmdSignOut(m.auth.Teardown))
	}
	return nil
}

func (m *HomeModel) cmdSignOut(fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return signedOutMsg{err: fn(ctx)}
	}
}

func (m *HomeModel) View() string {
	var b strings.Builder

	b.WriteString("Пользователь: ")
	if name := m.session.User.DisplayName(); name != "" {
		b.WriteString(name)
	} else {
		b.WriteString("-")
	}
	b.WriteString("\n")
	b.WriteString("Токен: ")
	b.WriteString(m.tokenState())
	b.WriteString("\n\n")

	idColWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items))) + 2
	actionColWidth := lipgloss.Width("Раздел")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(padRight("ID", idColWidth) + " │ " + "Раздел\n")
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		idCell := fmt.Sprintf("%s %d", cursorMark(i == m.idx), i+1)
		b.WriteString(padRight(idCell, idColWidth) + " │ " + item.title + "\n")
	}

	return renderPage("ГЛАВНОЕ МЕНЮ", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ ↑/↓: навигация │ v: версия")
}

func (m *HomeModel) tokenState() string {
	if !m.session.HasToken() {
		return "нет"
	}
	exp, ok := m.auth.TokenExpiresAt()
	if !ok {
		return "действует"
	}
	if !exp.After(m.now()) {
		return "истёк " + exp.Local().Format("02.01.2006 15:04")
	}
	return "до " + exp.Local().Format("02.01.2006 15:04")
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}
