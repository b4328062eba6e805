package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/content-console/internal/service"
	"github.com/MKhiriev/content-console/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// AnalyticsModel renders the analytics report by page type and direction,
// optionally narrowed to one project.
type AnalyticsModel struct {
	ctx       context.Context
	analytics service.ClientAnalyticsService
	projects  service.ClientProjectService

	spinner     spinner.Model
	report      models.AnalyticsReport
	projectList []models.Project
	projectIdx  int
	loading     bool
	loaded      bool
	errMsg      string
}

func NewAnalyticsModel(ctx context.Context, analytics service.ClientAnalyticsService, projects service.ClientProjectService) *AnalyticsModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &AnalyticsModel{
		ctx:        ctx,
		analytics:  analytics,
		projects:   projects,
		spinner:    sp,
		projectIdx: -1,
	}
}

func (m *AnalyticsModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad(), loadProjectOptions(m.ctx, m.projects))
}

func (m *AnalyticsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case analyticsLoadedMsg:
		if msg.projectID != m.projectID() {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, reportSessionExpired(msg.err)
		}
		m.errMsg = ""
		m.loaded = true
		m.report = msg.report
		return m, nil

	case projectOptionsLoadedMsg:
		if msg.err != nil {
			return m, reportSessionExpired(msg.err)
		}
		m.projectList = msg.projects
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.back):
		return m, navigate(pageHome)
	case key.Matches(keyMsg, keys.project):
		m.projectIdx++
		if m.projectIdx >= len(m.projectList) {
			m.projectIdx = -1
		}
		return m, m.reload()
	case key.Matches(keyMsg, keys.refresh):
		return m, m.reload()
	}
	return m, nil
}

func (m *AnalyticsModel) projectID() string {
	if m.projectIdx < 0 || m.projectIdx >= len(m.projectList) {
		return ""
	}
	return m.projectList[m.projectIdx].ID
}

func (m *AnalyticsModel) reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *AnalyticsModel) cmdLoad() tea.Cmd {
	ctx, analytics, projectID := m.ctx, m.analytics, m.projectID()
	return func() tea.Msg {
		report, err := analytics.Report(ctx, projectID)
		return analyticsLoadedMsg{projectID: projectID, report: report, err: err}
	}
}

func (m *AnalyticsModel) View() string {
	var b strings.Builder
	renderStatus(&b, "", m.errMsg)

	b.WriteString("Проект: ")
	if id := m.projectID(); id == "" {
		b.WriteString("все")
	} else {
		b.WriteString(projectName(m.projectList, id))
	}
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Загрузка...")
	case !m.loaded:
		b.WriteString("Нет данных")
	default:
		b.WriteString(renderAnalyticsReport(m.report))
	}

	return renderPage("АНАЛИТИКА", strings.TrimRight(b.String(), "\n"), "p: проект │ r: обновить │ esc: назад")
}

type analyticsRow struct {
	name string
	models.AnalyticsCounters
}

func renderAnalyticsReport(r models.AnalyticsReport) string {
	var b strings.Builder

	t := r.Totals
	b.WriteString(titleStyle.Render("Итого"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Тем: %d │ Кластеров в реестре: %d │ ТЗ готово: %d │ Опубликовано: %d\n",
		t.TotalThemes, t.RegistryClusters, t.TZReady, t.ProdPublished))
	b.WriteString(fmt.Sprintf("Средний прогресс ТЗ: %s │ публикации: %s │ покрытие реестра: %s\n\n",
		formatPercent(t.AvgTZProgress), formatPercent(t.AvgProdProgress), formatPercent(t.AvgRegistryCoverage)))

	pageTypes := make([]analyticsRow, 0, len(r.PageTypes))
	for _, p := range r.PageTypes {
		pageTypes = append(pageTypes, analyticsRow{name: p.PageType, AnalyticsCounters: p.AnalyticsCounters})
	}
	directions := make([]analyticsRow, 0, len(r.Directions))
	for _, d := range r.Directions {
		directions = append(directions, analyticsRow{name: d.Direction, AnalyticsCounters: d.AnalyticsCounters})
	}

	b.WriteString(titleStyle.Render("По типам страниц"))
	b.WriteString("\n")
	b.WriteString(renderAnalyticsTable("Тип", pageTypes))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("По направлениям"))
	b.WriteString("\n")
	b.WriteString(renderAnalyticsTable("Направление", directions))
	return b.String()
}

func renderAnalyticsTable(header string, rows []analyticsRow) string {
	if len(rows) == 0 {
		return "-"
	}

	nameW := len([]rune(header))
	for _, r := range rows {
		nameW = max(nameW, len([]rune(fitText(r.name, 30))))
	}

	var b strings.Builder
	b.WriteString(padRight(header, nameW) + " │ Тем  │ Доля   │ Реестр │ Покрытие │ ТЗ   │ ТЗ %   │ Опубл. │ Опубл. %\n")
	b.WriteString(strings.Repeat("─", nameW) + "─┼──────┼────────┼────────┼──────────┼──────┼────────┼────────┼─────────\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%s │ %-4d │ %-6s │ %-6d │ %-8s │ %-4d │ %-6s │ %-6d │ %s\n",
			padRight(fitText(valueOrNA(r.name), 30), nameW),
			r.TotalThemes, formatPercent(r.PercentageOfTotal),
			r.RegistryClusters, formatPercent(r.RegistryCoverage),
			r.TZReady, formatPercent(r.TZProgress),
			r.ProdPublished, formatPercent(r.ProdProgress),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}
