package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/content-console/internal/service"
	"github.com/MKhiriev/content-console/models"
	tea "github.com/charmbracelet/bubbletea"
)

// projectForm creates a project or edits an existing one.
type projectForm struct {
	ctx      context.Context
	projects service.ClientProjectService
	host     ModalHost

	id     string
	name   *inputField
	region *inputField
	domain *inputField
	form   form

	saving bool
	errMsg string
}

func newProjectForm(ctx context.Context, projects service.ClientProjectService, host ModalHost, project *models.Project) *projectForm {
	f := &projectForm{
		ctx:      ctx,
		projects: projects,
		host:     host,
		name:     newInputField("название", 200),
		region:   newInputField("регион", 200),
		domain:   newInputField("домен", 255),
	}
	if project != nil {
		f.id = project.ID
		f.name.SetValue(project.Name)
		f.region.SetValue(models.PlanValue(project.Region))
		f.domain.SetValue(models.PlanValue(project.Domain))
	}

	f.form.add("Название", f.name)
	f.form.add("Регион", f.region)
	f.form.add("Домен", f.domain)
	f.form.focusFirst()
	return f
}

func (f *projectForm) title() string {
	if f.id == "" {
		return "Новый проект"
	}
	return "Редактирование проекта"
}

func (f *projectForm) open() {
	f.host.Open(ModalContent{Kind: ModalProjectForm, Title: f.title(), Payload: f})
}

func (f *projectForm) Update(msg tea.Msg) tea.Cmd {
	if saved, ok := msg.(projectSavedMsg); ok {
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

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			f.host.Close()
			return nil
		case "ctrl+s":
			if f.saving {
				return nil
			}
			f.saving = true
			f.errMsg = ""
			return f.cmdSave()
		}
	}

	return f.form.update(msg)
}

func (f *projectForm) cmdSave() tea.Cmd {
	ctx := f.ctx
	projects := f.projects
	id := f.id
	name := f.name.TrimmedValue()
	region := models.PlanString(f.region.TrimmedValue())
	domain := models.PlanString(f.domain.TrimmedValue())

	return func() tea.Msg {
		if name == "" {
			return projectSavedMsg{err: service.ErrEmptyProjectName}
		}

		var (
			p   models.Project
			err error
		)
		if id == "" {
			p, err = projects.Create(ctx, models.ProjectCreate{Name: name, Region: region, Domain: domain})
		} else {
			p, err = projects.Update(ctx, id, models.ProjectUpdate{Name: &name, Region: region, Domain: domain})
		}
		return projectSavedMsg{project: p, err: err}
	}
}

func (f *projectForm) View() string {
	var b strings.Builder
	b.WriteString(f.form.view())
	b.WriteString("\n\n")
	if f.saving {
		b.WriteString("[Сохранение...]")
	} else {
		b.WriteString("[Сохранить]")
	}
	if f.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Ошибка: " + f.errMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab: след. поле │ ctrl+s: сохранить │ esc: отмена"))
	return b.String()
}
