package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/content-console/internal/service"
	"github.com/MKhiriev/content-console/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/cases"
)

type registryMode int

const (
	registryBrowse registryMode = iota
	registryPickProject
	registryFilter
	registryAdd
	registryImport
	registryBulk
)

// ClusterRegistryModel shows the cluster registry of one project and lets
// the user flip the progress flags of each cluster.
type ClusterRegistryModel struct {
	ctx      context.Context
	registry service.ClientClusterRegistryService
	projects service.ClientProjectService
	modal    ModalHost

	projectSelect *SearchableSelect
	projectText   string
	projectList   []models.Project
	projectID     string

	filter *inputField

	addForm      form
	addName      *inputField
	addDirection *inputField
	addPageType  *inputField
	addDemand    *inputField

	importPath *inputField

	bulkForm      form
	bulkDirection *inputField
	bulkPageType  *inputField

	mode    registryMode
	rows    []models.ClusterRegistryRow
	idx     int
	loading bool
	status  string
	errMsg  string
}

func NewClusterRegistryModel(ctx context.Context, registry service.ClientClusterRegistryService, projects service.ClientProjectService) *ClusterRegistryModel {
	m := &ClusterRegistryModel{
		ctx:           ctx,
		registry:      registry,
		projects:      projects,
		modal:         modalHostFrom(ctx),
		projectSelect: NewSearchableSelect("выберите проект", nil),
		filter:        newInputField("поиск по названию", 0),
		addName:       newInputField("название кластера", 0),
		addDirection:  newInputField("направление", 0),
		addPageType:   newInputField("тип страницы", 0),
		addDemand:     newInputField("0", 10),
		importPath:    newInputField("путь к файлу .csv", 0),
		bulkDirection: newInputField("без изменений", 0),
		bulkPageType:  newInputField("без изменений", 0),
	}
	m.projectSelect.SetEmptyText("Нет активных проектов")
	m.projectSelect.OnChange = func(v string) { m.projectText = v }

	m.addForm.add("Название", m.addName)
	m.addForm.add("Направление", m.addDirection)
	m.addForm.add("Тип страницы", m.addPageType)
	m.addForm.add("Спрос", m.addDemand)

	m.bulkForm.add("Направление", m.bulkDirection)
	m.bulkForm.add("Тип страницы", m.bulkPageType)
	return m
}

func (m *ClusterRegistryModel) Init() tea.Cmd {
	cmds := []tea.Cmd{loadProjectOptions(m.ctx, m.projects)}
	if m.projectID != "" {
		m.loading = true
		cmds = append(cmds, m.cmdLoad())
	}
	return tea.Batch(cmds...)
}

func (m *ClusterRegistryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openRegistryMsg:
		m.selectProject(msg.projectID)
		m.loading = true
		return m, m.cmdLoad()

	case projectOptionsLoadedMsg:
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, reportSessionExpired(msg.err)
		}
		m.projectList = msg.projects
		names := make([]string, 0, len(msg.projects))
		for _, p := range msg.projects {
			names = append(names, p.Name)
		}
		m.projectSelect.SetOptions(OptionsFromStrings(names))
		if m.projectID != "" {
			m.projectSelect.SetValue(projectName(m.projectList, m.projectID))
		}
		return m, nil

	case registryLoadedMsg:
		if msg.projectID != m.projectID {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, reportSessionExpired(msg.err)
		}
		m.errMsg = ""
		m.rows = msg.rows
		m.clampIdx()
		return m, nil

	case registryRowSavedMsg:
		if msg.err != nil {
			if m.mode == registryAdd && !service.IsSessionExpired(msg.err) {
				m.errMsg = errorText(msg.err)
				return m, nil
			}
			return m, reportError(m.modal, "Ошибка сохранения", msg.err)
		}
		m.replaceRow(msg.row)
		if m.mode == registryAdd {
			m.mode = registryBrowse
			m.status = "Кластер добавлен: " + msg.row.Name
			m.errMsg = ""
			m.loading = true
			return m, m.cmdLoad()
		}
		return m, nil

	case registryImportedMsg:
		if msg.err != nil {
			if service.IsSessionExpired(msg.err) {
				return m, reportSessionExpired(msg.err)
			}
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.mode = registryBrowse
		m.errMsg = ""
		m.status = importSummary(msg.result)
		m.loading = true
		return m, tea.Batch(m.importPath.Blur(), m.cmdLoad())

	case registryBulkSavedMsg:
		if msg.err != nil {
			if service.IsSessionExpired(msg.err) {
				return m, reportSessionExpired(msg.err)
			}
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.mode = registryBrowse
		m.errMsg = ""
		m.status = fmt.Sprintf("Обновлено кластеров: %d", msg.count)
		m.loading = true
		return m, m.cmdLoad()

	case registryRowDeletedMsg:
		if msg.err != nil {
			return m, reportError(m.modal, "Ошибка удаления", msg.err)
		}
		m.status = "Кластер удалён"
		m.removeRow(msg.id)
		return m, nil
	}

	switch m.mode {
	case registryPickProject:
		return m, m.updatePickProject(msg)
	case registryFilter:
		return m, m.updateFilter(msg)
	case registryAdd:
		return m, m.updateAdd(msg)
	case registryImport:
		return m, m.updateImport(msg)
	case registryBulk:
		return m, m.updateBulk(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.projectSelect.Update(msg)
	}

	switch {
	case key.Matches(keyMsg, keys.back):
		return m, navigate(pageHome)
	case key.Matches(keyMsg, keys.project):
		m.mode = registryPickProject
		return m, m.projectSelect.Focus()
	case key.Matches(keyMsg, keys.search):
		m.mode = registryFilter
		return m, m.filter.Focus()
	case key.Matches(keyMsg, keys.refresh):
		if m.projectID == "" {
			return m, nil
		}
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.newItem):
		if m.projectID == "" {
			m.errMsg = "сначала выберите проект"
			return m, nil
		}
		m.resetAdd()
		m.mode = registryAdd
		return m, m.addForm.focusFirst()
	case key.Matches(keyMsg, keys.importer):
		if m.projectID == "" {
			m.errMsg = "сначала выберите проект"
			return m, nil
		}
		m.errMsg = ""
		m.mode = registryImport
		return m, m.importPath.Focus()
	case key.Matches(keyMsg, keys.bulk):
		if len(m.visible()) == 0 {
			return m, nil
		}
		m.bulkDirection.SetValue("")
		m.bulkPageType.SetValue("")
		m.errMsg = ""
		m.mode = registryBulk
		return m, m.bulkForm.focusFirst()
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.visible())-1 {
			m.idx++
		}
		return m, nil
	}

	row, ok := m.selected()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.flag1):
		return m, m.cmdToggle(row, models.ClusterFlagCore)
	case key.Matches(keyMsg, keys.flag2):
		return m, m.cmdToggle(row, models.ClusterFlagBrief)
	case key.Matches(keyMsg, keys.flag3):
		return m, m.cmdToggle(row, models.ClusterFlagPublished)
	case key.Matches(keyMsg, keys.delete):
		confirm(m.modal, "Удаление кластера", fmt.Sprintf("Удалить кластер %q?", row.Name), m.cmdDelete(row.ID))
	}
	return m, nil
}

// updatePickProject drives the project select. The select works on project
// names; only text naming an active project switches the project.
func (m *ClusterRegistryModel) updatePickProject(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.projectSelect.Update(msg)
	}

	cmd := m.projectSelect.Update(msg)
	switch keyMsg.String() {
	case "esc":
		m.mode = registryBrowse
		return cmd
	case "tab":
		m.mode = registryBrowse
		m.projectSelect.PressOutside()
		return tea.Batch(cmd, m.projectSelect.Blur())
	case "enter":
		if m.projectSelect.IsOpen() {
			return cmd
		}
		m.mode = registryBrowse
		if id := projectIDByName(m.projectList, m.projectText); id != "" && id != m.projectID {
			m.selectProject(id)
			m.loading = true
			return tea.Batch(cmd, m.projectSelect.Blur(), m.cmdLoad())
		}
		return tea.Batch(cmd, m.projectSelect.Blur())
	}
	return cmd
}

func (m *ClusterRegistryModel) updateFilter(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.filter.SetValue("")
			fallthrough
		case "enter":
			m.mode = registryBrowse
			m.idx = 0
			return m.filter.Blur()
		}
	}
	cmd := m.filter.Update(msg)
	m.idx = 0
	return cmd
}

func (m *ClusterRegistryModel) updateAdd(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = registryBrowse
			m.errMsg = ""
			return nil
		case "ctrl+s":
			return m.cmdAdd()
		}
	}
	return m.addForm.update(msg)
}

func (m *ClusterRegistryModel) updateImport(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = registryBrowse
			m.errMsg = ""
			return m.importPath.Blur()
		case "enter":
			return m.cmdImport()
		}
	}
	return m.importPath.Update(msg)
}

func (m *ClusterRegistryModel) updateBulk(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = registryBrowse
			m.errMsg = ""
			return nil
		case "ctrl+s":
			return m.cmdBulk()
		}
	}
	return m.bulkForm.update(msg)
}

// bulkRows applies the bulk fields to the visible rows. A blank field keeps
// the column, the clear mark empties it.
func (m *ClusterRegistryModel) bulkRows() []models.ClusterRegistryRow {
	direction := bulkText(m.bulkDirection.Value())
	pageType := bulkText(m.bulkPageType.Value())
	if direction == nil && pageType == nil {
		return nil
	}

	visible := m.visible()
	rows := make([]models.ClusterRegistryRow, 0, len(visible))
	for _, r := range visible {
		if direction != nil {
			r.Direction = models.PlanString(*direction)
		}
		if pageType != nil {
			r.PageType = models.PlanString(*pageType)
		}
		rows = append(rows, r)
	}
	return rows
}

func importSummary(r models.ClusterImportResult) string {
	s := fmt.Sprintf("Импорт: обработано %d, создано %d, обновлено %d", r.Processed, r.Created, r.Updated)
	if n := len(r.Errors); n > 0 {
		s += fmt.Sprintf(", ошибок %d (%s)", n, fitText(r.Errors[0], 60))
	}
	return s
}

// selectProject switches to the project with id and shows its name in the
// select.
func (m *ClusterRegistryModel) selectProject(id string) {
	m.projectID = id
	m.rows = nil
	m.idx = 0
	m.status = ""
	if name := projectName(m.projectList, id); name != "" {
		m.projectSelect.SetValue(name)
	}
}

func projectIDByName(projects []models.Project, name string) string {
	for _, p := range projects {
		if p.Name == name {
			return p.ID
		}
	}
	return ""
}

// visible returns the rows whose name contains the filter text.
func (m *ClusterRegistryModel) visible() []models.ClusterRegistryRow {
	q := strings.TrimSpace(m.filter.Value())
	if q == "" {
		return m.rows
	}
	folder := cases.Fold()
	needle := folder.String(q)
	out := make([]models.ClusterRegistryRow, 0, len(m.rows))
	for _, r := range m.rows {
		if strings.Contains(folder.String(r.Name), needle) {
			out = append(out, r)
		}
	}
	return out
}

func (m *ClusterRegistryModel) selected() (models.ClusterRegistryRow, bool) {
	rows := m.visible()
	if m.idx < 0 || m.idx >= len(rows) {
		return models.ClusterRegistryRow{}, false
	}
	return rows[m.idx], true
}

func (m *ClusterRegistryModel) clampIdx() {
	n := len(m.visible())
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *ClusterRegistryModel) replaceRow(row models.ClusterRegistryRow) {
	for i := range m.rows {
		if m.rows[i].ID == row.ID {
			m.rows[i] = row
			return
		}
	}
}

func (m *ClusterRegistryModel) removeRow(id string) {
	out := m.rows[:0]
	for _, r := range m.rows {
		if r.ID != id {
			out = append(out, r)
		}
	}
	m.rows = out
	m.clampIdx()
}

func (m *ClusterRegistryModel) resetAdd() {
	m.addName.SetValue("")
	m.addDirection.SetValue("")
	m.addPageType.SetValue("")
	m.addDemand.SetValue("")
	m.errMsg = ""
}

func (m *ClusterRegistryModel) View() string {
	var b strings.Builder
	renderStatus(&b, m.status, m.errMsg)

	b.WriteString("Проект: ")
	if m.mode == registryPickProject {
		b.WriteString(m.projectSelect.View())
	} else {
		b.WriteString(valueOrNA(projectName(m.projectList, m.projectID)))
	}
	b.WriteString("\nПоиск: ")
	if m.mode == registryFilter {
		b.WriteString(m.filter.View())
	} else {
		q := m.filter.Value()
		b.WriteString(valueOrDash(&q))
	}
	b.WriteString("\n\n")

	switch {
	case m.mode == registryAdd:
		b.WriteString(titleStyle.Render("Новый кластер"))
		b.WriteString("\n\n")
		b.WriteString(m.addForm.view())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("ctrl+s: сохранить │ esc: отмена"))
	case m.mode == registryImport:
		b.WriteString(titleStyle.Render("Импорт из CSV"))
		b.WriteString("\n\n")
		b.WriteString("Файл: " + m.importPath.View())
		b.WriteString("\n")
		b.WriteString(faintStyle.Render("колонки: Кластер, Направление, Тип страницы, Ядро, ТЗ, Размещено, Спрос"))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter: загрузить │ esc: отмена"))
	case m.mode == registryBulk:
		b.WriteString(titleStyle.Render(fmt.Sprintf("Массовое изменение: %d", len(m.visible()))))
		b.WriteString("\n\n")
		b.WriteString(m.bulkForm.view())
		b.WriteString("\n\n")
		b.WriteString(faintStyle.Render("пустое поле: без изменений, \"-\": очистить"))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("ctrl+s: применить к показанным │ esc: отмена"))
	case m.projectID == "":
		b.WriteString("Выберите проект (p)")
	case m.loading:
		b.WriteString("Загрузка...")
	default:
		b.WriteString(m.renderRows())
	}

	return renderPage("РЕЕСТР КЛАСТЕРОВ", strings.TrimRight(b.String(), "\n"),
		"p: проект │ /: поиск │ n: новый │ i: импорт CSV │ b: массово │ 1/2/3: ядро/бриф/опубл. │ d: удалить │ esc: назад")
}

func (m *ClusterRegistryModel) renderRows() string {
	rows := m.visible()
	if len(rows) == 0 {
		return "Кластеров нет"
	}

	nameW, dirW, typeW := len([]rune("Кластер")), len([]rune("Направление")), len([]rune("Тип"))
	for _, r := range rows {
		nameW = max(nameW, len([]rune(fitText(r.Name, 40))))
		dirW = max(dirW, len([]rune(fitText(valueOrDash(r.Direction), 24))))
		typeW = max(typeW, len([]rune(fitText(valueOrDash(r.PageType), 16))))
	}

	var b strings.Builder
	b.WriteString("  " + padRight("Кластер", nameW) + " │ " + padRight("Направление", dirW) + " │ " + padRight("Тип", typeW) + " │ Ядро │ Бриф │ Опубл. │ Спрос\n")
	for i, r := range rows {
		b.WriteString(cursorMark(i == m.idx) + " ")
		b.WriteString(padRight(fitText(r.Name, 40), nameW))
		b.WriteString(" │ " + padRight(fitText(valueOrDash(r.Direction), 24), dirW))
		b.WriteString(" │ " + padRight(fitText(valueOrDash(r.PageType), 16), typeW))
		b.WriteString(" │  " + boolMark(r.HasCore) + "   │  " + boolMark(r.HasBrief) + "   │   " + boolMark(r.IsPublished) + "    │ ")
		b.WriteString(strconv.Itoa(r.Demand))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *ClusterRegistryModel) cmdLoad() tea.Cmd {
	ctx, registry, projectID := m.ctx, m.registry, m.projectID
	return func() tea.Msg {
		rows, err := registry.List(ctx, projectID)
		return registryLoadedMsg{projectID: projectID, rows: rows, err: err}
	}
}

func (m *ClusterRegistryModel) cmdToggle(row models.ClusterRegistryRow, flag models.ClusterFlag) tea.Cmd {
	ctx, registry := m.ctx, m.registry
	return func() tea.Msg {
		updated, err := registry.Toggle(ctx, row, flag)
		return registryRowSavedMsg{row: updated, err: err}
	}
}

func (m *ClusterRegistryModel) cmdDelete(id string) tea.Cmd {
	ctx, registry := m.ctx, m.registry
	return func() tea.Msg {
		return registryRowDeletedMsg{id: id, err: registry.Delete(ctx, id)}
	}
}

func (m *ClusterRegistryModel) cmdAdd() tea.Cmd {
	ctx, registry := m.ctx, m.registry
	demand, _ := strconv.Atoi(m.addDemand.TrimmedValue())
	row := models.ClusterRegistryRow{
		ProjectID: m.projectID,
		Name:      m.addName.TrimmedValue(),
		Direction: models.PlanString(m.addDirection.TrimmedValue()),
		PageType:  models.PlanString(m.addPageType.TrimmedValue()),
		Demand:    demand,
	}
	return func() tea.Msg {
		saved, err := registry.Upsert(ctx, row)
		return registryRowSavedMsg{row: saved, err: err}
	}
}

func (m *ClusterRegistryModel) cmdImport() tea.Cmd {
	ctx, registry, projectID, path := m.ctx, m.registry, m.projectID, m.importPath.TrimmedValue()
	return func() tea.Msg {
		result, err := registry.ImportCSV(ctx, projectID, path)
		return registryImportedMsg{result: result, err: err}
	}
}

func (m *ClusterRegistryModel) cmdBulk() tea.Cmd {
	rows := m.bulkRows()
	if len(rows) == 0 {
		m.errMsg = "укажите, что изменить"
		return nil
	}
	ctx, registry, projectID := m.ctx, m.registry, m.projectID
	return func() tea.Msg {
		err := registry.BulkUpsert(ctx, projectID, rows)
		return registryBulkSavedMsg{count: len(rows), err: err}
	}
}
