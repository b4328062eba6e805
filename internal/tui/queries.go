// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/content-console/internal/service"
	"github.com/MKhiriev/content-console/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type queriesMode int

const (
	queriesBrowse queriesMode = iota
	queriesSearch
	queriesDirection
	queriesCluster
)

// QueriesModel is the paged semantic core of one project. Space marks
// phrases for bulk edit, delete and undo.
type QueriesModel struct {
	ctx      context.Context
	queries  service.ClientQueryService
	projects service.ClientProjectService
	modal    ModalHost

	table     table.Model
	spinner   spinner.Model
	search    textinput.Model
	direction *SearchableSelect
	cluster   *SearchableSelect

	mode           queriesMode
	filter         models.QueryFilter
	directionValue string
	clusterValue   string
	directions     []string
	clusters       []string
	page           models.QueryPage
	picked         map[string]bool
	projectList    []models.Project

	loading bool
	notice  string
	errMsg  string
}

func NewQueriesModel(ctx context.Context, queries service.ClientQueryService, projects service.ClientProjectService) *QueriesModel {
	search := textinput.New()
	search.Placeholder = "поиск по фразе"
	search.Prompt = "/ "
	search.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &QueriesModel{
		ctx:       ctx,
		queries:   queries,
		projects:  projects,
		modal:     modalHostFrom(ctx),
		table:     table.New(table.WithColumns(queryColumns()), table.WithFocused(true), table.WithHeight(15)),
		spinner:   sp,
		search:    search,
		direction: NewSearchableSelect("все направления", nil),
		cluster:   NewSearchableSelect("все кластеры", nil),
		picked:    map[string]bool{},
	}
	m.direction.OnChange = func(v string) { m.directionValue = v }
	m.cluster.OnChange = func(v string) { m.clusterValue = v }
	return m
}

func queryColumns() []table.Column {
	return []table.Column{
		{Title: " ", Width: 1},
		{Title: "Фраза", Width: 34},
		{Title: "Направление", Width: 16},
		{Title: "Кластер", Width: 18},
		{Title: "Страница", Width: 18},
		{Title: "Теги", Width: 14},
		{Title: "WS", Width: 6},
		{Title: "Дата", Width: 10},
	}
}

func (m *QueriesModel) Init() tea.Cmd {
	cmds := []tea.Cmd{loadProjectOptions(m.ctx, m.projects)}
	if m.filter.ProjectID != "" {
		cmds = append(cmds, m.reload())
	}
	return tea.Batch(cmds...)
}

func (m *QueriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openQueriesMsg:
		m.switchProject(msg.projectID)
		return m, tea.Batch(m.reload(), m.cmdLoadDicts())

	case projectOptionsLoadedMsg:
		if msg.err != nil {
			return m, reportSessionExpired(msg.err)
		}
		m.projectList = msg.projects
		return m, nil

	case queriesLoadedMsg:
		if msg.projectID != m.filter.ProjectID {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, reportSessionExpired(msg.err)
		}
		m.errMsg = ""
		m.page = msg.page
		m.refreshRows()
		if c := m.table.Cursor(); c >= len(msg.page.Items) {
			m.table.SetCursor(max(len(msg.page.Items)-1, 0))
		}
		return m, nil

	case queryDictsLoadedMsg:
		if msg.projectID != m.filter.ProjectID {
			return m, nil
		}
		if msg.err != nil {
			return m, reportSessionExpired(msg.err)
		}
		m.directions, m.clusters = msg.directions, msg.clusters
		m.direction.SetOptions(OptionsFromStrings(msg.directions))
		m.cluster.SetOptions(OptionsFromStrings(msg.clusters))
		return m, nil

	case queriesBulkSavedMsg:
		if msg.err != nil {
			return m, nil
		}
		m.notice = fmt.Sprintf("Обновлено запросов: %d", msg.updated)
		return m, tea.Batch(m.reload(), m.cmdLoadDicts())

	case queriesChangedMsg:
		if msg.err != nil {
			return m, reportError(m.modal, "Ошибка", msg.err)
		}
		m.notice = msg.notice
		m.picked = map[string]bool{}
		return m, m.reload()

	case queryVersionsLoadedMsg:
		if msg.err != nil {
			return m, reportError(m.modal, "Не удалось загрузить историю", msg.err)
		}
		newQueryVersionsView(m.modal, msg.queryID, msg.versions, m.cmdUndo).open()
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
	case queriesSearch:
		return m, m.updateSearch(msg)
	case queriesDirection:
		return m, m.updateSelect(msg, m.direction, &m.directionValue, &m.filter.Direction)
	case queriesCluster:
		return m, m.updateSelect(msg, m.cluster, &m.clusterValue, &m.filter.Cluster)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, tea.Batch(m.direction.Update(msg), m.cluster.Update(msg))
	}

	switch {
	case key.Matches(keyMsg, keys.back):
		return m, navigate(pageProjects)
	case key.Matches(keyMsg, keys.project):
		if next := nextProjectID(m.projectList, m.filter.ProjectID); next != "" {
			m.switchProject(next)
			return m, tea.Batch(m.reload(), m.cmdLoadDicts())
		}
		return m, nil
	}

	if m.filter.ProjectID == "" {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.search):
		m.mode = queriesSearch
		m.search.SetValue(m.filter.Search)
		return m, m.search.Focus()
	case key.Matches(keyMsg, keys.byDir):
		m.mode = queriesDirection
		return m, m.direction.Focus()
	case key.Matches(keyMsg, keys.byClust):
		m.mode = queriesCluster
		return m, m.cluster.Focus()
	case key.Matches(keyMsg, keys.prevPage):
		if m.filter.Offset > 0 {
			m.filter.Offset = max(m.filter.Offset-m.pageLimit(), 0)
			return m, m.reload()
		}
		return m, nil
	case key.Matches(keyMsg, keys.nextPage):
		if m.page.HasNext() {
			m.filter.Offset += m.pageLimit()
			return m, m.reload()
		}
		return m, nil
	case key.Matches(keyMsg, keys.refresh):
		return m, m.reload()
	case key.Matches(keyMsg, keys.pickAll):
		m.togglePage()
		return m, nil
	case key.Matches(keyMsg, keys.toggle):
		if q, ok := m.selected(); ok {
			m.picked[q.ID] = !m.picked[q.ID]
			if !m.picked[q.ID] {
				delete(m.picked, q.ID)
			}
			m.refreshRows()
		}
		return m, nil
	}

	ids := m.targetIDs()
	if len(ids) > 0 {
		switch {
		case key.Matches(keyMsg, keys.bulk):
			return m, newQueryBulkForm(m.ctx, m.queries, m.modal, m.filter.ProjectID, ids, m.clusters, m.directions).open()
		case key.Matches(keyMsg, keys.delete):
			confirm(m.modal, "Удаление запросов", fmt.Sprintf("Удалить запросов: %d?", len(ids)), m.cmdDelete(ids))
			return m, nil
		case key.Matches(keyMsg, keys.undo):
			confirm(m.modal, "Откат изменений", fmt.Sprintf("Откатить последнее изменение у запросов: %d?", len(ids)), m.cmdUndo(ids, nil))
			return m, nil
		case key.Matches(keyMsg, keys.history):
			if q, ok := m.selected(); ok {
				return m, m.cmdVersions(q.ID)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *QueriesModel) updateSearch(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = queriesBrowse
			m.search.Blur()
			return nil
		case "enter":
			m.mode = queriesBrowse
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

// updateSelect drives a filter select. Leaving it applies its text to
// target.
func (m *QueriesModel) updateSelect(msg tea.Msg, sel *SearchableSelect, value, target *string) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return sel.Update(msg)
	}

	wasOpen := sel.IsOpen()
	cmd := sel.Update(msg)

	leave := false
	switch keyMsg.String() {
	case "esc":
		leave = true
	case "enter":
		leave = !wasOpen || !sel.IsOpen()
	case "tab":
		leave = true
		sel.PressOutside()
		cmd = tea.Batch(cmd, sel.Blur())
	}
	if !leave {
		return cmd
	}

	m.mode = queriesBrowse
	if v := strings.TrimSpace(*value); v != *target {
		*target = v
		m.filter.Offset = 0
		return tea.Batch(cmd, m.reload())
	}
	return cmd
}

// switchProject resets filters and marks for the project with id.
func (m *QueriesModel) switchProject(id string) {
	m.filter = models.QueryFilter{ProjectID: id, Limit: m.filter.Limit}
	m.picked = map[string]bool{}
	m.page = models.QueryPage{}
	m.directionValue, m.clusterValue = "", ""
	m.direction.SetValue("")
	m.cluster.SetValue("")
	m.directions, m.clusters = nil, nil
	m.notice, m.errMsg = "", ""
	m.table.SetRows(nil)
	m.table.SetCursor(0)
}

func nextProjectID(projects []models.Project, current string) string {
	if len(projects) == 0 {
		return ""
	}
	for i, p := range projects {
		if p.ID == current {
			return projects[(i+1)%len(projects)].ID
		}
	}
	return projects[0].ID
}

func (m *QueriesModel) pageLimit() int {
	if m.page.Limit > 0 {
		return m.page.Limit
	}
	if m.filter.Limit > 0 {
		return m.filter.Limit
	}
	return len(m.page.Items)
}

// togglePage marks every phrase of the page, or unmarks them when all are
// already marked.
func (m *QueriesModel) togglePage() {
	all := len(m.page.Items) > 0
	for _, q := range m.page.Items {
		if !m.picked[q.ID] {
			all = false
			break
		}
	}
	for _, q := range m.page.Items {
		if all {
			delete(m.picked, q.ID)
		} else {
			m.picked[q.ID] = true
		}
	}
	m.refreshRows()
}

// targetIDs returns the marked phrases of the page, or the phrase under
// the cursor when nothing is marked.
func (m *QueriesModel) targetIDs() []string {
	ids := make([]string, 0, len(m.picked))
	for _, q := range m.page.Items {
		if m.picked[q.ID] {
			ids = append(ids, q.ID)
		}
	}
	if len(ids) > 0 {
		return ids
	}
	if q, ok := m.selected(); ok {
		return []string{q.ID}
	}
	return nil
}

func (m *QueriesModel) selected() (models.QueryRow, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.page.Items) {
		return models.QueryRow{}, false
	}
	return m.page.Items[c], true
}

func (m *QueriesModel) refreshRows() {
	rows := make([]table.Row, 0, len(m.page.Items))
	for _, q := range m.page.Items {
		mark := " "
		if m.picked[q.ID] {
			mark = "✓"
		}
		rows = append(rows, table.Row{
			mark,
			fitText(q.Phrase, 34),
			fitText(valueOrDash(q.Direction), 16),
			fitText(valueOrDash(q.Cluster), 18),
			fitText(valueOrDash(q.Page), 18),
			fitText(strings.Join(q.Tags, ", "), 14),
			strconv.Itoa(q.WSFlag),
			valueOrDash(q.Date),
		})
	}
	m.table.SetRows(rows)
}

func (m *QueriesModel) View() string {
	var b strings.Builder
	renderStatus(&b, m.notice, m.errMsg)

	b.WriteString("Проект: ")
	b.WriteString(valueOrNA(projectName(m.projectList, m.filter.ProjectID)))
	b.WriteString("   Поиск: ")
	if m.mode == queriesSearch {
		b.WriteString(m.search.View())
	} else {
		b.WriteString(valueOrDash(&m.filter.Search))
	}
	b.WriteString("\nНаправление: ")
	if m.mode == queriesDirection {
		b.WriteString(m.direction.View())
	} else {
		b.WriteString(valueOrDash(&m.filter.Direction))
	}
	b.WriteString("   Кластер: ")
	if m.mode == queriesCluster {
		b.WriteString(m.cluster.View())
	} else {
		b.WriteString(valueOrDash(&m.filter.Cluster))
	}
	b.WriteString("\n\n")

	if m.filter.ProjectID == "" {
		b.WriteString("Выберите проект (p)")
		return renderPage("СЕМАНТИЧЕСКОЕ ЯДРО", b.String(), "p: проект │ esc: назад")
	}

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Загрузка...\n\n")
	}

	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(queryPageRange(m.page))
	if n := len(m.picked); n > 0 {
		b.WriteString(fmt.Sprintf("   Отмечено: %d", n))
	}

	return renderPage("СЕМАНТИЧЕСКОЕ ЯДРО", strings.TrimRight(b.String(), "\n"),
		"space/A: отметить │ b: массово │ d: удалить │ u: откат │ h: история │ /: поиск │ f/c: направление/кластер │ p: проект │ ←/→: страницы │ esc: назад")
}

func queryPageRange(p models.QueryPage) string {
	if len(p.Items) == 0 {
		return fmt.Sprintf("Показано 0 из %d", p.Total)
	}
	return fmt.Sprintf("Показано %d–%d из %d", p.Offset+1, p.Offset+len(p.Items), p.Total)
}

func (m *QueriesModel) reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *QueriesModel) cmdLoad() tea.Cmd {
	ctx, queries, filter := m.ctx, m.queries, m.filter
	return func() tea.Msg {
		page, err := queries.List(ctx, filter)
		return queriesLoadedMsg{projectID: filter.ProjectID, page: page, err: err}
	}
}

func (m *QueriesModel) cmdLoadDicts() tea.Cmd {
	ctx, queries, projectID := m.ctx, m.queries, m.filter.ProjectID
	return func() tea.Msg {
		directions, err := queries.Directions(ctx, projectID)
		if err != nil {
			return queryDictsLoadedMsg{projectID: projectID, err: err}
		}
		clusters, err := queries.Clusters(ctx, projectID)
		return queryDictsLoadedMsg{projectID: projectID, directions: directions, clusters: clusters, err: err}
	}
}

func (m *QueriesModel) cmdDelete(ids []string) tea.Cmd {
	ctx, queries, projectID := m.ctx, m.queries, m.filter.ProjectID
	return func() tea.Msg {
		n, err := queries.Delete(ctx, projectID, ids)
		return queriesChangedMsg{notice: fmt.Sprintf("Удалено запросов: %d", n), err: err}
	}
}

func (m *QueriesModel) cmdUndo(ids []string, toVersion *int) tea.Cmd {
	ctx, queries, projectID := m.ctx, m.queries, m.filter.ProjectID
	return func() tea.Msg {
		n, err := queries.Undo(ctx, projectID, models.QueryUndo{IDs: ids, ToVersion: toVersion})
		return queriesChangedMsg{notice: fmt.Sprintf("Откат выполнен: %d", n), err: err}
	}
}

func (m *QueriesModel) cmdVersions(id string) tea.Cmd {
	ctx, queries := m.ctx, m.queries
	return func() tea.Msg {
		versions, err := queries.Versions(ctx, id)
		return queryVersionsLoadedMsg{queryID: id, versions: versions, err: err}
	}
}
