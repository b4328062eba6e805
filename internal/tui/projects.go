package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/content-console/internal/service"
	"github.com/MKhiriev/content-console/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ProjectsModel lists active or archived projects and manages them.
type ProjectsModel struct {
	ctx      context.Context
	projects service.ClientProjectService
	modal    ModalHost

	items    []models.Project
	idx      int
	archived bool
	loading  bool
	status   string
	errMsg   string
}

func NewProjectsModel(ctx context.Context, projects service.ClientProjectService) *ProjectsModel {
	return &ProjectsModel{
		ctx:      ctx,
		projects: projects,
		modal:    modalHostFrom(ctx),
	}
}

func (m *ProjectsModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *ProjectsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, reportSessionExpired(msg.err)
		}
		m.errMsg = ""
		m.items = msg.projects
		m.clampIdx()
		return m, nil

	case projectSavedMsg:
		if msg.err != nil {
			return m, nil
		}
		m.status = "Проект сохранён: " + msg.project.Name
		m.loading = true
		return m, m.cmdLoad()

	case projectDeletedMsg:
		if msg.err != nil {
			return m, reportError(m.modal, "Ошибка", msg.err)
		}
		m.status = "Готово"
		m.loading = true
		return m, m.cmdLoad()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.back):
		return m, navigate(pageHome)
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.archived):
		m.archived = !m.archived
		m.idx = 0
		m.status = ""
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.newItem):
		newProjectForm(m.ctx, m.projects, m.modal, nil).open()
		return m, nil
	}

	p, ok := m.selected()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.enter):
		return m, func() tea.Msg {
			return NavigateTo{Page: pageQueries, Payload: openQueriesMsg{projectID: p.ID}}
		}
	case key.Matches(keyMsg, keys.registry):
		return m, func() tea.Msg {
			return NavigateTo{Page: pageClusterRegistry, Payload: openRegistryMsg{projectID: p.ID}}
		}
	case key.Matches(keyMsg, keys.edit):
		newProjectForm(m.ctx, m.projects, m.modal, &p).open()
	case key.Matches(keyMsg, keys.archive):
		if p.IsArchived {
			return m, m.cmdRestore(p.ID)
		}
		return m, m.cmdArchive(p.ID)
	case key.Matches(keyMsg, keys.delete):
		confirm(m.modal, "Удаление проекта", fmt.Sprintf("Удалить проект %q?", p.Name), m.cmdDelete(p.ID, false))
	case keyMsg.String() == "D":
		confirm(m.modal, "Удаление проекта", fmt.Sprintf("Удалить проект %q безвозвратно?", p.Name), m.cmdDelete(p.ID, true))
	}

	return m, nil
}

func (m *ProjectsModel) View() string {
	var b strings.Builder
	renderStatus(&b, m.status, m.errMsg)

	if m.archived {
		b.WriteString("Вкладка: архив\n\n")
	} else {
		b.WriteString("Вкладка: активные\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Загрузка...")
	case len(m.items) == 0:
		b.WriteString("Проектов нет")
	default:
		nameW, regionW := len([]rune("Название")), len([]rune("Регион"))
		for _, p := range m.items {
			nameW = max(nameW, len([]rune(fitText(p.Name, 40))))
			regionW = max(regionW, len([]rune(fitText(valueOrDash(p.Region), 24))))
		}

		b.WriteString("  " + padRight("Название", nameW) + " │ " + padRight("Регион", regionW) + " │ Домен\n")
		b.WriteString(strings.Repeat("─", nameW+2) + "─┼─" + strings.Repeat("─", regionW) + "─┼─" + strings.Repeat("─", 20) + "\n")
		for i, p := range m.items {
			b.WriteString(cursorMark(i == m.idx) + " ")
			b.WriteString(padRight(fitText(p.Name, 40), nameW))
			b.WriteString(" │ ")
			b.WriteString(padRight(fitText(valueOrDash(p.Region), 24), regionW))
			b.WriteString(" │ ")
			b.WriteString(valueOrDash(p.Domain))
			if p.IsArchived {
				b.WriteString(faintStyle.Render("  (архив с " + formatTime(p.ArchivedAt) + ")"))
			}
			b.WriteString("\n")
		}
	}

	return renderPage("ПРОЕКТЫ", strings.TrimRight(b.String(), "\n"),
		"n: новый │ e: изменить │ x: архив/восстановить │ d/D: удалить │ a: архив │ enter: запросы │ g: реестр │ esc: назад")
}

func (m *ProjectsModel) selected() (models.Project, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Project{}, false
	}
	return m.items[m.idx], true
}

func (m *ProjectsModel) clampIdx() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *ProjectsModel) cmdLoad() tea.Cmd {
	ctx, projects, archived := m.ctx, m.projects, m.archived
	return func() tea.Msg {
		items, err := projects.List(ctx, archived)
		return projectsLoadedMsg{projects: items, err: err}
	}
}

func (m *ProjectsModel) cmdArchive(id string) tea.Cmd {
	ctx, projects := m.ctx, m.projects
	return func() tea.Msg {
		_, err := projects.Archive(ctx, id)
		return projectDeletedMsg{err: err}
	}
}

func (m *ProjectsModel) cmdRestore(id string) tea.Cmd {
	ctx, projects := m.ctx, m.projects
	return func() tea.Msg {
		_, err := projects.Restore(ctx, id)
		return projectDeletedMsg{err: err}
	}
}

func (m *ProjectsModel) cmdDelete(id string, hard bool) tea.Cmd {
	ctx, projects := m.ctx, m.projects
	return func() tea.Msg {
		return projectDeletedMsg{err: projects.Delete(ctx, id, hard)}
	}
}

// loadProjectOptions loads active projects as select options.
func loadProjectOptions(ctx context.Context, projects service.ClientProjectService) tea.Cmd {
	return func() tea.Msg {
		items, err := projects.List(ctx, false)
		return projectOptionsLoadedMsg{projects: items, err: err}
	}
}

func projectOptions(projects []models.Project) []SelectOption {
	out := make([]SelectOption, 0, len(projects))
	for _, p := range projects {
		out = append(out, SelectOption{Label: p.Name, Value: p.ID})
	}
	return out
}

func projectName(projects []models.Project, id string) string {
	for _, p := range projects {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}

// reportSessionExpired signals the root model on a 401 and does nothing
// otherwise.
func reportSessionExpired(err error) tea.Cmd {
	if service.IsSessionExpired(err) {
		return func() tea.Msg { return sessionExpiredMsg{} }
	}
	return nil
}
