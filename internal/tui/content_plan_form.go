// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/MKhiriev/content-console/internal/contentplan"
	"github.com/MKhiriev/content-console/internal/service"
	"github.com/MKhiriev/content-console/models"
	tea "github.com/charmbracelet/bubbletea"
)

// contentPlanForm adds an item to one or more projects, or edits an
// existing item.
type contentPlanForm struct {
	ctx    context.Context
	plan   service.ClientContentPlanService
	host   ModalHost
	period contentplan.PeriodFormatter

	item models.ContentPlanItem

	projects  *checklistField
	month     *inputField
	section   *SearchableSelect
	direction *SearchableSelect
	topic     *inputField
	chars     *inputField
	status    *SearchableSelect
	author    *inputField
	review    *inputField
	meta      *MetaSeoEditor
	comment   *inputField
	link      *inputField
	publish   *inputField
	form      form

	sectionValue   string
	directionValue string
	statusValue    string

	initialMonth string

	directionsFor []string
	saving        bool
	errMsg        string
}

// newContentPlanForm builds the form. A nil item means create; projects
// are offered for selection only then.
func newContentPlanForm(ctx context.Context, plan service.ClientContentPlanService, host ModalHost, projects []models.Project, item *models.ContentPlanItem) *contentPlanForm {
	f := &contentPlanForm{
		ctx:       ctx,
		plan:      plan,
		host:      host,
		period:    contentplan.NewPeriodFormatter(),
		month:     newInputField("ГГГГ-ММ", 7),
		section:   NewSearchableSelect("Раздел", OptionsFromStrings(contentplan.SectionOptions)),
		direction: NewSearchableSelect("Направление", nil),
		topic:     newInputField("тема", 0),
		chars:     newInputField("1000 или 1000 (1250)", 32),
		status:    NewSearchableSelect("Статус", OptionsFromStrings(contentplan.StatusOptions)),
		author:    newInputField("автор", 0),
		review:    newInputField("ссылка на ревью", 0),
		comment:   newInputField("комментарий", 0),
		link:      newInputField("ссылка", 0),
		publish:   newInputField("ГГГГ-ММ-ДД", 10),
	}

	f.section.OnChange = func(v string) { f.sectionValue = v }
	f.direction.OnChange = func(v string) { f.directionValue = v }
	f.status.OnChange = func(v string) { f.statusValue = v }
	f.direction.SetEmptyText("Нет направлений в реестре кластеров")

	if item != nil {
		f.item = *item
	}
	f.fill()

	if item == nil {
		f.projects = newChecklistField(projectOptions(projects), "Нет активных проектов")
		f.form.add("Проекты", f.projects)
	}
	f.form.add("Период", f.month)
	f.form.add("Раздел", f.section)
	f.form.add("Направление", f.direction)
	f.form.add("Тема", f.topic)
	f.form.add("Символы", f.chars)
	f.form.add("Статус", f.status)
	f.form.add("Автор", f.author)
	f.form.add("Ревью", f.review)
	f.meta.addTo(&f.form)
	f.form.add("Комментарий", f.comment)
	f.form.add("Ссылка", f.link)
	f.form.add("Дата публикации", f.publish)
	f.form.focusFirst()

	return f
}

func (f *contentPlanForm) fill() {
	it := f.item
	f.initialMonth = f.period.FromLabel(it.Period)
	f.month.SetValue(f.initialMonth)

	f.sectionValue = models.PlanValue(it.Section)
	f.section.SetValue(f.sectionValue)
	f.directionValue = models.PlanValue(it.Direction)
	f.direction.SetValue(f.directionValue)
	f.statusValue = models.PlanValue(it.Status)
	f.status.SetValue(f.statusValue)

	f.topic.SetValue(models.PlanValue(it.Topic))
	if it.Chars != nil {
		f.chars.SetValue(strconv.Itoa(*it.Chars))
	}
	f.author.SetValue(models.PlanValue(it.Author))
	f.review.SetValue(models.PlanValue(it.Review))
	f.meta = NewMetaSeoEditor(it.MetaSeo)
	f.comment.SetValue(models.PlanValue(it.Comment))
	f.link.SetValue(models.PlanValue(it.Link))
	f.publish.SetValue(models.PlanValue(it.PublishDate))
}

func (f *contentPlanForm) editing() bool {
	return f.item.ID != ""
}

func (f *contentPlanForm) title() string {
	if f.editing() {
		return "Редактирование темы"
	}
	return "Новая тема"
}

// open shows the form and starts loading directions of the edited item's
// project.
func (f *contentPlanForm) open() tea.Cmd {
	f.host.Open(ModalContent{Kind: ModalContentPlanForm, Title: f.title(), Payload: f})
	if f.editing() && f.item.ProjectID != nil {
		return f.loadDirections([]string{*f.item.ProjectID})
	}
	return nil
}

func (f *contentPlanForm) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case contentPlanSavedMsg:
		f.saving = false
		if msg.err == nil {
			f.host.Close()
			return nil
		}
		if service.IsSessionExpired(msg.err) {
			return func() tea.Msg { return sessionExpiredMsg{} }
		}
		f.errMsg = errorText(msg.err)
		return nil

	case directionsLoadedMsg:
		if !slices.Equal(strings.Split(msg.forProjects, ","), f.directionsFor) {
			return nil
		}
		f.direction.SetDisabled(false)
		f.direction.SetOptions(OptionsFromStrings(msg.directions))
		if msg.err != nil {
			return reportSessionExpired(msg.err)
		}
		return nil

	case tea.KeyMsg:
		switch msg.String() {
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
			f.saving = true
			f.errMsg = ""
			return f.cmdSave()
		}

		cmd := f.form.update(msg)
		if f.projects != nil && !f.editing() {
			if ids := f.projects.Values(); !slices.Equal(ids, f.directionsFor) {
				return tea.Batch(cmd, f.loadDirections(ids))
			}
		}
		return cmd
	}

	return f.form.update(msg)
}

// loadDirections loads the directions shared by every project of ids.
func (f *contentPlanForm) loadDirections(ids []string) tea.Cmd {
	f.directionsFor = slices.Clone(ids)
	if len(ids) == 0 {
		f.direction.SetOptions(nil)
		return nil
	}
	f.direction.SetDisabled(true)

	ctx, plan := f.ctx, f.plan
	forProjects := strings.Join(ids, ",")
	return func() tea.Msg {
		var shared []string
		for i, id := range ids {
			dirs, err := plan.Directions(ctx, id)
			if err != nil {
				return directionsLoadedMsg{forProjects: forProjects, err: err}
			}
			if i == 0 {
				shared = dirs
				continue
			}
			shared = intersect(shared, dirs)
		}
		return directionsLoadedMsg{forProjects: forProjects, directions: uniqueSorted(shared)}
	}
}

// buildItem assembles the item from the inputs. Period and meta SEO keep
// their stored text unless their inputs were edited.
func (f *contentPlanForm) buildItem() models.ContentPlanItem {
	it := f.item
	if month := strings.TrimSpace(f.month.Value()); month != strings.TrimSpace(f.initialMonth) {
		it.Period = f.period.ToLabel(month)
	}
	it.Section = models.PlanString(strings.TrimSpace(f.sectionValue))
	it.Direction = models.PlanString(strings.TrimSpace(f.directionValue))
	it.Topic = models.PlanString(f.topic.TrimmedValue())
	it.Chars = contentplan.ParseCharsDisplay(f.chars.Value()).Value
	it.Status = models.PlanString(strings.TrimSpace(f.statusValue))
	it.Author = models.PlanString(f.author.TrimmedValue())
	it.Review = models.PlanString(f.review.TrimmedValue())
	if f.meta.Changed() {
		it.MetaSeo = f.meta.Value()
	}
	it.Comment = models.PlanString(f.comment.TrimmedValue())
	it.Link = models.PlanString(f.link.TrimmedValue())
	it.PublishDate = models.PlanString(f.publish.TrimmedValue())
	return it
}

func (f *contentPlanForm) cmdSave() tea.Cmd {
	ctx, plan := f.ctx, f.plan
	item := f.buildItem()

	if f.editing() {
		return func() tea.Msg {
			saved, err := plan.Update(ctx, item)
			return contentPlanSavedMsg{items: []models.ContentPlanItem{saved}, err: err}
		}
	}

	var ids []string
	if f.projects != nil {
		ids = f.projects.Values()
	}
	return func() tea.Msg {
		created, err := plan.Create(ctx, ids, item)
		return contentPlanSavedMsg{items: created, err: err}
	}
}

func (f *contentPlanForm) View() string {
	var b strings.Builder
	b.WriteString(f.form.view())

	if label := f.period.ToLabel(strings.TrimSpace(f.month.Value())); label != nil {
		b.WriteString("\n\n")
		b.WriteString(faintStyle.Render("Период: " + *label))
	}

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
	b.WriteString(helpStyle.Render("tab: след. поле │ space: выбрать проект │ ctrl+s: сохранить │ esc: отмена"))
	return b.String()
}

func intersect(a, b []string) []string {
	in := make(map[string]struct{}, len(b))
	for _, v := range b {
		in[v] = struct{}{}
	}
	out := make([]string, 0, len(a))
	for _, v := range a {
		if _, ok := in[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

func uniqueSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
