package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/content-console/internal/contentplan"
	"github.com/MKhiriev/content-console/internal/service"
	"github.com/MKhiriev/content-console/models"
	tea "github.com/charmbracelet/bubbletea"
)

// contentPlanProjectsForm binds a theme to projects: checking a project
// copies the theme into it, unchecking deletes that project's copy.
type contentPlanProjectsForm struct {
	ctx  context.Context
	plan service.ClientContentPlanService
	host ModalHost

	group    contentplan.Group
	projects *checklistField
	total    int

	saving bool
	errMsg string
}

func newContentPlanProjectsForm(ctx context.Context, plan service.ClientContentPlanService, host ModalHost, projects []models.Project, group contentplan.Group) *contentPlanProjectsForm {
	f := &contentPlanProjectsForm{
		ctx:      ctx,
		plan:     plan,
		host:     host,
		group:    group,
		projects: newChecklistField(projectOptions(projects), "Проекты не найдены"),
		total:    len(projects),
	}
	for _, id := range group.ProjectIDs() {
		f.projects.Check(id)
	}
	f.projects.Focus()
	return f
}

func (f *contentPlanProjectsForm) open() {
	f.host.Open(ModalContent{Kind: ModalContentPlanProjects, Title: "Привязка к проектам", Payload: f})
}

func (f *contentPlanProjectsForm) Update(msg tea.Msg) tea.Cmd {
	if saved, ok := msg.(contentPlanProjectsSavedMsg); ok {
		f.saving = false
		if saved.err == nil {
			f.host.Close()
			return nil
		}
		if service.IsSessionExpired(saved.err) {
			return func() tea.Msg { return sessionExpiredMsg{} }
		}
		f.errMsg = errorText(saved.err)
		return nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "esc":
		f.host.Close()
		return nil
	case "A":
		f.toggleAll()
		return nil
	case "ctrl+s":
		if f.saving {
			return nil
		}
		f.saving = true
		f.errMsg = ""
		return f.cmdSave()
	}
	return f.projects.Update(msg)
}

// toggleAll checks every project, or clears them all when every project is
// already checked.
func (f *contentPlanProjectsForm) toggleAll() {
	all := len(f.projects.options) > 0 && len(f.projects.Values()) == len(f.projects.options)
	for _, o := range f.projects.options {
		f.projects.checked[o.Value] = !all
	}
}

func (f *contentPlanProjectsForm) cmdSave() tea.Cmd {
	ctx, plan, group, ids := f.ctx, f.plan, f.group, f.projects.Values()
	return func() tea.Msg {
		created, deleted, err := plan.SetProjects(ctx, group, ids)
		return contentPlanProjectsSavedMsg{created: created, deleted: deleted, err: err}
	}
}

func (f *contentPlanProjectsForm) View() string {
	s := f.group.Sample
	var b strings.Builder
	b.WriteString("Тема: " + valueOrDash(s.Topic) + "\n")
	b.WriteString("Период: " + valueOrDash(s.Period))
	if s.Section != nil && *s.Section != "" {
		b.WriteString("\nРаздел: " + *s.Section)
	}
	if s.Author != nil && *s.Author != "" {
		b.WriteString("\nАвтор: " + *s.Author)
	}
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Выбрано: %d из %d\n", len(f.projects.Values()), f.total))
	b.WriteString(f.projects.View())
	b.WriteString("\n\n")
	if f.saving {
		b.WriteString("[Сохранение...]")
	} else {
		b.WriteString("[Сохранить изменения]")
	}
	if f.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Ошибка: " + f.errMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("space: отметить │ A: все │ ctrl+s: сохранить │ esc: отмена"))
	return b.String()
}
