package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/content-console/internal/service"
	"github.com/MKhiriev/content-console/models"
	tea "github.com/charmbracelet/bubbletea"
)

// clearMark typed into a field clears the column instead of keeping it.
const clearMark = "-"

// queryBulkForm edits several phrases at once. An empty field leaves the
// column unchanged.
type queryBulkForm struct {
	ctx     context.Context
	queries service.ClientQueryService
	host    ModalHost

	projectID string
	ids       []string

	cluster    *SearchableSelect
	direction  *SearchableSelect
	pageURL    *inputField
	addTags    *inputField
	removeTags *inputField
	setTags    *inputField
	pageType   *inputField
	queryType  *inputField
	wsFlag     *inputField
	date       *inputField
	form       form

	clusterValue   string
	directionValue string

	saving bool
	errMsg string
}

func newQueryBulkForm(ctx context.Context, queries service.ClientQueryService, host ModalHost, projectID string, ids, clusters, directions []string) *queryBulkForm {
	f := &queryBulkForm{
		ctx:        ctx,
		queries:    queries,
		host:       host,
		projectID:  projectID,
		ids:        ids,
		cluster:    NewSearchableSelect("без изменений", OptionsFromStrings(clusters)),
		direction:  NewSearchableSelect("без изменений", OptionsFromStrings(directions)),
		pageURL:    newInputField("без изменений", 500),
		addTags:    newInputField("через запятую", 0),
		removeTags: newInputField("через запятую", 0),
		setTags:    newInputField("заменить все теги", 0),
		pageType:   newInputField("без изменений", 100),
		queryType:  newInputField("без изменений", 100),
		wsFlag:     newInputField("без изменений", 10),
		date:       newInputField("ГГГГ-ММ-ДД, - очистить", 10),
	}
	f.cluster.OnChange = func(v string) { f.clusterValue = v }
	f.direction.OnChange = func(v string) { f.directionValue = v }

	f.form.add("Кластер", f.cluster)
	f.form.add("Направление", f.direction)
	f.form.add("Страница", f.pageURL)
	f.form.add("Добавить теги", f.addTags)
	f.form.add("Убрать теги", f.removeTags)
	f.form.add("Заменить теги", f.setTags)
	f.form.add("Тип страницы", f.pageType)
	f.form.add("Тип запроса", f.queryType)
	f.form.add("Частота WS", f.wsFlag)
	f.form.add("Дата", f.date)
	return f
}

func (f *queryBulkForm) open() tea.Cmd {
	f.host.Open(ModalContent{
		Kind:    ModalQueryBulkForm,
		Title:   fmt.Sprintf("Массовое изменение: %d", len(f.ids)),
		Payload: f,
	})
	return f.form.focusFirst()
}

func (f *queryBulkForm) Update(msg tea.Msg) tea.Cmd {
	if saved, ok := msg.(queriesBulkSavedMsg); ok {
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
			if f.form.escapeHandled() {
				return nil
			}
			f.host.Close()
			return nil
		case "ctrl+s":
			if f.saving {
				return nil
			}
			update, err := f.update()
			if err != nil {
				f.errMsg = errorText(err)
				return nil
			}
			f.saving = true
			f.errMsg = ""
			return f.cmdSave(update)
		}
	}

	return f.form.update(msg)
}

// update assembles the bulk body from the fields.
func (f *queryBulkForm) update() (models.QueryBulkUpdate, error) {
	u := models.QueryBulkUpdate{IDs: f.ids}

	u.SetCluster = bulkText(f.clusterValue)
	u.SetDirection = bulkText(f.directionValue)
	u.SetPage = bulkText(f.pageURL.Value())
	u.SetPageType = bulkText(f.pageType.Value())
	u.SetQueryType = bulkText(f.queryType.Value())
	u.AddTags = splitTags(f.addTags.Value())
	u.RemoveTags = splitTags(f.removeTags.Value())
	u.SetTags = splitTags(f.setTags.Value())
	u.SetDate = bulkText(f.date.Value())

	if ws := f.wsFlag.TrimmedValue(); ws != "" {
		n, err := strconv.Atoi(ws)
		if err != nil || n < 0 {
			return models.QueryBulkUpdate{}, service.ErrInvalidWSFlag
		}
		u.SetWSFlag = &n
	}
	return u, nil
}

// bulkText maps a field to a set value: empty keeps the column, the clear
// mark sends an empty string.
func bulkText(v string) *string {
	v = strings.TrimSpace(v)
	switch v {
	case "":
		return nil
	case clearMark:
		empty := ""
		return &empty
	default:
		return &v
	}
}

func splitTags(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return strings.Split(v, ",")
}

func (f *queryBulkForm) cmdSave(update models.QueryBulkUpdate) tea.Cmd {
	ctx, queries, projectID := f.ctx, f.queries, f.projectID
	return func() tea.Msg {
		n, err := queries.Bulk(ctx, projectID, update)
		return queriesBulkSavedMsg{updated: n, err: err}
	}
}

func (f *queryBulkForm) View() string {
	var b strings.Builder
	b.WriteString(f.form.view())
	b.WriteString("\n\n")
	b.WriteString(faintStyle.Render("пустое поле: без изменений, \"-\": очистить"))
	b.WriteString("\n\n")
	if f.saving {
		b.WriteString("[Сохранение...]")
	} else {
		b.WriteString("[Применить]")
	}
	if f.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Ошибка: " + f.errMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab: след. поле │ ctrl+s: применить │ esc: отмена"))
	return b.String()
}

// queryVersionsView lists the change history of one phrase. Enter rolls
// the phrase back to the highlighted version.
type queryVersionsView struct {
	host     ModalHost
	queryID  string
	versions []models.QueryVersion
	cursor   int
	undo     func(ids []string, toVersion *int) tea.Cmd
}

func newQueryVersionsView(host ModalHost, queryID string, versions []models.QueryVersion, undo func([]string, *int) tea.Cmd) *queryVersionsView {
	return &queryVersionsView{host: host, queryID: queryID, versions: versions, undo: undo}
}

func (v *queryVersionsView) open() {
	v.host.Open(ModalContent{Kind: ModalQueryVersions, Title: "История изменений", Payload: v})
}

func (v *queryVersionsView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "esc":
		v.host.Close()
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.versions)-1 {
			v.cursor++
		}
	case "enter":
		if len(v.versions) == 0 {
			return nil
		}
		version := v.versions[v.cursor].Version
		v.host.Close()
		return v.undo([]string{v.queryID}, &version)
	}
	return nil
}

func (v *queryVersionsView) View() string {
	if len(v.versions) == 0 {
		return "Изменений нет\n\n" + helpStyle.Render("esc: закрыть")
	}

	var b strings.Builder
	for i, ver := range v.versions {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s v%d  %s", cursorMark(i == v.cursor), ver.Version, ver.CreatedAt))
		for _, c := range service.VersionChanges(ver) {
			b.WriteString(fmt.Sprintf("\n      %s: %s → %s", c.Field, dashIfEmpty(c.Before), dashIfEmpty(c.After)))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter: вернуть состояние до версии │ ↑/↓: выбор │ esc: закрыть"))
	return b.String()
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
