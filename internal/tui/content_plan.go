// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/content-console/internal/contentplan"
	"github.com/MKhiriev/content-console/internal/service"
	"github.com/MKhiriev/content-console/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type contentPlanMode int

const (
	contentPlanBrowse contentPlanMode = iota
	contentPlanSearch
	contentPlanStatus
)

// ContentPlanModel is the paged content plan table with search, status and
// project filters and every item action.
type ContentPlanModel struct {
	ctx      context.Context
	plan     service.ClientContentPlanService
	projects service.ClientProjectService
	tzs      service.ClientTZService
	modal    ModalHost

	table   table.Model
	spinner spinner.Model
	search  textinput.Model
	status  *SearchableSelect

	mode        contentPlanMode
	filter      models.ContentPlanFilter
	statusValue string
	page        models.ContentPlanPage
	projectList []models.Project
	projectIdx  int

	loading bool
	notice  string
	errMsg  string
}

func NewContentPlanModel(ctx context.Context, plan service.ClientContentPlanService, projects service.ClientProjectService, tzs service.ClientTZService) *ContentPlanModel {
	search := textinput.New()
	search.Placeholder = "поиск по теме"
	search.Prompt = "/ "
	search.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	t := table.New(
		table.WithColumns(contentPlanColumns()),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	m := &ContentPlanModel{
		ctx:        ctx,
		plan:       plan,
		projects:   projects,
		tzs:        tzs,
		modal:      modalHostFrom(ctx),
		table:      t,
		spinner:    sp,
		search:     search,
		status:     NewSearchableSelect("все статусы", OptionsFromStrings(contentplan.StatusOptions)),
		filter:     models.ContentPlanFilter{Limit: plan.PageSize()},
		projectIdx: -1,
	}
	m.status.OnChange = func(v string) { m.statusValue = v }
	return m
}

func contentPlanColumns() []table.Column {
	return []table.Column{
		{Title: "Период", Width: 12},
		{Title: "Раздел", Width: 13},
		{Title: "Направление", Width: 18},
		{Title: "Тема", Width: 36},
		{Title: "Статус", Width: 22},
		{Title: "Автор", Width: 16},
		{Title: "ТЗ", Width: 3},
	}
}

func (m *ContentPlanModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad(), loadProjectOptions(m.ctx, m.projects))
}

func (m *ContentPlanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case contentPlanLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, reportSessionExpired(msg.err)
		}
		m.errMsg = ""
		m.page = msg.page
		m.table.SetRows(contentPlanRows(msg.page.Items))
		if c := m.table.Cursor(); c >= len(msg.page.Items) {
			m.table.SetCursor(max(len(msg.page.Items)-1, 0))
		}
		return m, nil

	case projectOptionsLoadedMsg:
		if msg.err != nil {
			return m, reportSessionExpired(msg.err)
		}
		m.projectList = msg.projects
		return m, nil

	case contentPlanSavedMsg:
		if msg.err != nil {
			return m, nil
		}
		m.notice = fmt.Sprintf("Сохранено тем: %d", len(msg.items))
		return m, m.reload()

	case contentPlanDeletedMsg:
		if msg.err != nil {
			return m, reportError(m.modal, "Ошибка удаления", msg.err)
		}
		m.notice = fmt.Sprintf("Удалено тем: %d", msg.deleted)
		if msg.deleted >= len(m.page.Items) && m.filter.Offset > 0 {
			m.filter.Offset = max(m.filter.Offset-m.filter.Limit, 0)
		}
		return m, m.reload()

	case contentPlanGroupLoadedMsg:
		if msg.err != nil {
			return m, reportError(m.modal, "Не удалось найти копии темы", msg.err)
		}
		newContentPlanProjectsForm(m.ctx, m.plan, m.modal, m.projectList, msg.group).open()
		return m, nil

	case contentPlanProjectsSavedMsg:
		if msg.err != nil {
			return m, nil
		}
		m.notice = fmt.Sprintf("Копий создано: %d, удалено: %d", msg.created, msg.deleted)
		return m, m.reload()

	case tzOpenedMsg:
		if msg.err != nil {
			return m, reportError(m.modal, "Не удалось открыть ТЗ", msg.err)
		}
		newTZForm(m.ctx, m.tzs, m.modal, msg.tz).open()
		return m, nil

	case tzSavedMsg:
		if msg.err != nil {
			return m, nil
		}
		m.notice = "ТЗ сохранено"
		return m, m.reload()

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "не удалось скопировать: " + msg.err.Error()
			return m, nil
		}
		m.notice = "Скопировано: " + msg.what
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	switch m.mode {
	case contentPlanSearch:
		return m, m.updateSearch(msg)
	case contentPlanStatus:
		return m, m.updateStatus(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.status.Update(msg)
	}

	switch {
	case key.Matches(keyMsg, keys.back):
		return m, navigate(pageHome)
	case key.Matches(keyMsg, keys.search):
		m.mode = contentPlanSearch
		m.search.SetValue(m.filter.Search)
		return m, m.search.Focus()
	case key.Matches(keyMsg, keys.status):
		m.mode = contentPlanStatus
		return m, m.status.Focus()
	case key.Matches(keyMsg, keys.project):
		m.cycleProject()
		m.filter.Offset = 0
		return m, m.reload()
	case key.Matches(keyMsg, keys.prevPage):
		if m.filter.Offset > 0 {
			m.filter.Offset = max(m.filter.Offset-m.filter.Limit, 0)
			return m, m.reload()
		}
		return m, nil
	case key.Matches(keyMsg, keys.nextPage):
		if m.page.HasNext() {
			m.filter.Offset += m.filter.Limit
			return m, m.reload()
		}
		return m, nil
	case key.Matches(keyMsg, keys.refresh):
		return m, m.reload()
	case key.Matches(keyMsg, keys.newItem):
		return m, newContentPlanForm(m.ctx, m.plan, m.modal, m.projectList, nil).open()
	}

	item, ok := m.selected()
	if ok {
		switch {
		case key.Matches(keyMsg, keys.edit):
			return m, newContentPlanForm(m.ctx, m.plan, m.modal, m.projectList, &item).open()
		case key.Matches(keyMsg, keys.delete):
			confirm(m.modal, "Удаление темы",
				fmt.Sprintf("Удалить тему %q?", fitText(valueOrDash(item.Topic), 60)),
				m.cmdDelete([]string{item.ID}))
			return m, nil
		case key.Matches(keyMsg, keys.tz):
			return m, m.cmdOpenTZ(item)
		case key.Matches(keyMsg, keys.link):
			return m, m.cmdLoadGroup(item)
		case key.Matches(keyMsg, keys.copyLink):
			return m, cmdCopy("ссылка", models.PlanValue(item.Link))
		case key.Matches(keyMsg, keys.copyMeta):
			return m, cmdCopy("мета SEO", models.PlanValue(item.MetaSeo))
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ContentPlanModel) updateSearch(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = contentPlanBrowse
			m.search.Blur()
			return nil
		case "enter":
			m.mode = contentPlanBrowse
			m.search.Blur()
			m.filter.Search = strings.TrimSpace(m.search.Value())
			m.filter.Offset = 0
			return m.reload()
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return cmd
}

// updateStatus drives the status select. Leaving it applies whatever it
// holds, a chosen option or typed text.
func (m *ContentPlanModel) updateStatus(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.status.Update(msg)
	}

	wasOpen := m.status.IsOpen()
	cmd := m.status.Update(msg)

	leave := false
	switch keyMsg.String() {
	case "esc":
		leave = true
	case "enter":
		leave = !wasOpen || !m.status.IsOpen()
	case "tab":
		leave = true
		m.status.PressOutside()
		cmd = tea.Batch(cmd, m.status.Blur())
	}
	if !leave {
		return cmd
	}

	m.mode = contentPlanBrowse
	if v := strings.TrimSpace(m.statusValue); v != m.filter.Status {
		m.filter.Status = v
		m.filter.Offset = 0
		return tea.Batch(cmd, m.reload())
	}
	return cmd
}

func (m *ContentPlanModel) cycleProject() {
	m.projectIdx++
	if m.projectIdx >= len(m.projectList) {
		m.projectIdx = -1
	}
	if m.projectIdx < 0 {
		m.filter.ProjectID = ""
		return
	}
	m.filter.ProjectID = m.projectList[m.projectIdx].ID
}

func (m *ContentPlanModel) View() string {
	var b strings.Builder
	renderStatus(&b, m.notice, m.errMsg)

	b.WriteString("Проект: ")
	if m.filter.ProjectID == "" {
		b.WriteString("все")
	} else {
		b.WriteString(valueOrNA(projectName(m.projectList, m.filter.ProjectID)))
	}
	b.WriteString("   Поиск: ")
	if m.mode == contentPlanSearch {
		b.WriteString(m.search.View())
	} else {
		b.WriteString(valueOrDash(&m.filter.Search))
	}
	b.WriteString("\nСтатус: ")
	if m.mode == contentPlanStatus {
		b.WriteString(m.status.View())
	} else {
		b.WriteString(valueOrDash(&m.filter.Status))
	}
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Загрузка...\n\n")
	}

	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(pageRange(m.page))

	if item, ok := m.selected(); ok {
		b.WriteString("\n\n")
		b.WriteString(renderItemDetails(item))
	}

	return renderPage("КОНТЕНТ-ПЛАН", strings.TrimRight(b.String(), "\n"),
		"n: новая │ e: изменить │ d: удалить │ t: ТЗ │ l: проекты │ c/m: копировать ссылку/мета │ /: поиск │ s: статус │ p: проект │ ←/→: страницы │ esc: назад")
}

func (m *ContentPlanModel) selected() (models.ContentPlanItem, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.page.Items) {
		return models.ContentPlanItem{}, false
	}
	return m.page.Items[c], true
}

func (m *ContentPlanModel) reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *ContentPlanModel) cmdLoad() tea.Cmd {
	ctx, plan, filter := m.ctx, m.plan, m.filter
	return func() tea.Msg {
		page, err := plan.List(ctx, filter)
		return contentPlanLoadedMsg{page: page, err: err}
	}
}

func (m *ContentPlanModel) cmdDelete(ids []string) tea.Cmd {
	ctx, plan := m.ctx, m.plan
	return func() tea.Msg {
		n, err := plan.Delete(ctx, ids)
		return contentPlanDeletedMsg{deleted: n, err: err}
	}
}

func (m *ContentPlanModel) cmdOpenTZ(item models.ContentPlanItem) tea.Cmd {
	ctx, tzs := m.ctx, m.tzs
	return func() tea.Msg {
		tz, err := tzs.Open(ctx, item)
		return tzOpenedMsg{tz: tz, err: err}
	}
}

func (m *ContentPlanModel) cmdLoadGroup(item models.ContentPlanItem) tea.Cmd {
	ctx, plan := m.ctx, m.plan
	return func() tea.Msg {
		group, err := plan.Group(ctx, item)
		return contentPlanGroupLoadedMsg{group: group, err: err}
	}
}

func cmdCopy(what, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{what: what, err: clipboard.WriteAll(text)}
	}
}

func contentPlanRows(items []models.ContentPlanItem) []table.Row {
	rows := make([]table.Row, 0, len(items))
	for _, it := range items {
		tz := "-"
		if contentplan.ResolveTZAction(it).Kind == contentplan.TZActionEdit {
			tz = "✓"
		}
		rows = append(rows, table.Row{
			valueOrDash(it.Period),
			fitText(valueOrDash(it.Section), 13),
			fitText(valueOrDash(it.Direction), 18),
			fitText(valueOrDash(it.Topic), 36),
			fitText(valueOrDash(it.Status), 22),
			fitText(valueOrDash(it.Author), 16),
			tz,
		})
	}
	return rows
}

func pageRange(p models.ContentPlanPage) string {
	if len(p.Items) == 0 {
		return fmt.Sprintf("Показано 0 из %d", p.Total)
	}
	return fmt.Sprintf("Показано %d–%d из %d", p.Offset+1, p.Offset+len(p.Items), p.Total)
}

func renderItemDetails(item models.ContentPlanItem) string {
	var b strings.Builder
	action := contentplan.ResolveTZAction(item)

	b.WriteString("[t] ")
	b.WriteString(action.Label())
	b.WriteString("\n")

	chars := "-"
	if item.Chars != nil {
		chars = fmt.Sprintf("%d", *item.Chars)
	}
	b.WriteString("Символы: " + chars + "   Публикация: " + valueOrDash(item.PublishDate) + "\n")
	b.WriteString("Ссылка: " + valueOrDash(item.Link) + "\n")
	b.WriteString("Ревью: " + valueOrDash(item.Review) + "\n")

	meta := contentplan.ParseMetaSeo(item.MetaSeo)
	b.WriteString("H1: " + valueOrDash(&meta.H1) + "\n")
	b.WriteString("Title: " + valueOrDash(&meta.Title) + "\n")
	b.WriteString("Description: " + fitText(valueOrDash(&meta.Description), 100))
	if item.Comment != nil && *item.Comment != "" {
		b.WriteString("\nКомментарий: " + fitText(*item.Comment, 100))
	}
	return b.String()
}
