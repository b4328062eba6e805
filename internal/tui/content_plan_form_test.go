package tui

import (
	"context"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/content-console/internal/mock"
	"github.com/MKhiriev/content-console/internal/service"
	"github.com/MKhiriev/content-console/models"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

var testProjects = []models.Project{
	{ID: "p1", Name: "Клиника на Ленина"},
	{ID: "p2", Name: "Клиника на Мира"},
}

// ── MetaSeoEditor ────────────────────────────────────────────────────────────

func TestMetaSeoEditor_ParsesAndRebuilds(t *testing.T) {
	e := NewMetaSeoEditor(strPtr("title: Лечение спины\nH1: Спина"))

	meta := e.Meta()
	assert.Equal(t, "Спина", meta.H1)
	assert.Equal(t, "Лечение спины", meta.Title)
	assert.Empty(t, meta.Description)

	e.description.SetValue("Всё о лечении")
	require.NotNil(t, e.Value())
	assert.Equal(t, "H1: Спина\nTitle: Лечение спины\nDescription: Всё о лечении", *e.Value())
}

func TestMetaSeoEditor_DescriptionLinesAreJoined(t *testing.T) {
	e := NewMetaSeoEditor(nil)
	e.h1.SetValue("Спина")
	e.description.SetValue("первая строка\n\n  вторая строка\nтретья")

	require.True(t, e.Changed())
	value := e.Value()
	require.NotNil(t, value)
	assert.Equal(t, "H1: Спина\nDescription: первая строка вторая строка третья", *value)

	reparsed := NewMetaSeoEditor(value).Meta()
	assert.Equal(t, "Спина", reparsed.H1)
	assert.Equal(t, "первая строка вторая строка третья", reparsed.Description)
}

func TestMetaSeoEditor_ChangedTracksEdits(t *testing.T) {
	e := NewMetaSeoEditor(strPtr("legacy one\nlegacy two"))
	assert.False(t, e.Changed())

	e.title.SetValue("Новый title")
	assert.True(t, e.Changed())

	e.title.SetValue("")
	assert.False(t, e.Changed())
}

func TestMetaSeoEditor_EmptyIsNil(t *testing.T) {
	e := NewMetaSeoEditor(nil)
	assert.Nil(t, e.Value())

	e.SetValue(strPtr("просто текст"))
	assert.Equal(t, "просто текст", e.Meta().Description)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestContentPlanForm_CreateBuildsItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	plan := mock.NewMockClientContentPlanService(ctrl)
	host := newModalHost()
	ctx := context.Background()

	f := newContentPlanForm(ctx, plan, host, testProjects, nil)
	f.open()
	require.True(t, host.active())
	content, _ := host.current()
	assert.Equal(t, ModalContentPlanForm, content.Kind)

	f.projects.Check("p2")
	f.month.SetValue("2026-03")
	f.sectionValue = "блог"
	f.topic.SetValue("  Боль в спине ")
	f.chars.SetValue("1000 (1250)")
	f.meta.h1.SetValue("Боль в спине")
	f.link.SetValue("clinic.ru/blog/spina")

	var got models.ContentPlanItem
	plan.EXPECT().Create(ctx, []string{"p2"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []string, item models.ContentPlanItem) ([]models.ContentPlanItem, error) {
			got = item
			item.ID = "c1"
			return []models.ContentPlanItem{item}, nil
		})

	cmd := f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	msg := cmd()

	require.NotNil(t, got.Period)
	assert.Equal(t, "03, март", *got.Period)
	assert.Equal(t, "блог", *got.Section)
	assert.Equal(t, "Боль в спине", *got.Topic)
	assert.Equal(t, intPtr(1000), got.Chars)
	assert.Equal(t, "H1: Боль в спине", *got.MetaSeo)
	assert.Equal(t, "clinic.ru/blog/spina", *got.Link)
	assert.Nil(t, got.Status)
	assert.Nil(t, got.Comment)

	f.Update(msg)
	assert.False(t, host.active(), "форма закрывается после сохранения")
}

func TestContentPlanForm_SaveErrorKeepsFormOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	host := newModalHost()
	f := newContentPlanForm(context.Background(), mock.NewMockClientContentPlanService(ctrl), host, testProjects, nil)
	f.open()

	f.Update(contentPlanSavedMsg{err: fmt.Errorf("create: %w", service.ErrNoProjectsSelected)})

	assert.True(t, host.active())
	assert.NotEmpty(t, f.errMsg)
	assert.False(t, f.saving)
}

func TestContentPlanForm_EscClosesUnlessSelectOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	host := newModalHost()
	f := newContentPlanForm(context.Background(), mock.NewMockClientContentPlanService(ctrl), host, nil, &models.ContentPlanItem{ID: "c1"})
	f.open()

	// фокус на «Раздел»
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Same(t, f.section, f.form.focused())
	require.True(t, f.section.IsOpen())

	f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, host.active(), "esc сначала закрывает список")
	assert.False(t, f.section.IsOpen())

	f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, host.active())
}

func TestContentPlanForm_TabAwayClosesSelectList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newContentPlanForm(context.Background(), mock.NewMockClientContentPlanService(ctrl), newModalHost(), nil, &models.ContentPlanItem{ID: "c1"})
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("бл")})
	require.True(t, f.section.IsOpen())

	f.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.Same(t, f.direction, f.form.focused())
	assert.False(t, f.section.IsOpen(), "уход с поля закрывает список сразу")
	assert.Empty(t, f.section.SearchTerm())
	assert.Equal(t, "бл", f.sectionValue)
}

func TestContentPlanForm_ToggleKeyClosesListWithoutLeaving(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	host := newModalHost()
	f := newContentPlanForm(context.Background(), mock.NewMockClientContentPlanService(ctrl), host, nil, &models.ContentPlanItem{ID: "c1"})
	f.open()
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, f.section.IsOpen())

	f.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.False(t, f.section.IsOpen())
	assert.Same(t, f.section, f.form.focused())

	f.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	require.True(t, f.section.IsOpen())
	f.Update(tea.KeyMsg{Type: tea.KeyDown})
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "услуга", f.sectionValue)
	assert.True(t, host.active())
}

func TestContentPlanForm_TypedSectionIsKept(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newContentPlanForm(context.Background(), mock.NewMockClientContentPlanService(ctrl), newModalHost(), nil, &models.ContentPlanItem{ID: "c1"})
	f.Update(tea.KeyMsg{Type: tea.KeyTab})

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("акция")})

	assert.Equal(t, "акция", f.sectionValue)
	assert.Equal(t, "акция", *f.buildItem().Section)
}

// ── Edit ─────────────────────────────────────────────────────────────────────

func TestContentPlanForm_EditPrefillsAndUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	plan := mock.NewMockClientContentPlanService(ctrl)
	host := newModalHost()
	ctx := context.Background()

	item := models.ContentPlanItem{
		ID:        "c1",
		ProjectID: strPtr("p1"),
		Period:    strPtr("05, май"),
		Section:   strPtr("услуга"),
		Direction: strPtr("Неврология"),
		Topic:     strPtr("МРТ"),
		Chars:     intPtr(3000),
		Status:    strPtr("В работе"),
		MetaSeo:   strPtr("Title: МРТ в Казани"),
		Version:   intPtr(4),
	}

	f := newContentPlanForm(ctx, plan, host, testProjects, &item)
	assert.Nil(t, f.projects, "проекты выбираются только при создании")
	assert.Equal(t, fmt.Sprintf("%d-05", time.Now().Year()), f.month.Value())
	assert.Equal(t, "услуга", f.section.Value())
	assert.Equal(t, "3000", f.chars.Value())
	assert.Equal(t, "МРТ в Казани", f.meta.Meta().Title)

	plan.EXPECT().Directions(ctx, "p1").Return([]string{"Неврология", "Кардиология"}, nil)
	cmd := f.open()
	require.NotNil(t, cmd)
	assert.True(t, f.direction.Disabled())

	f.Update(cmd())
	assert.False(t, f.direction.Disabled())
	assert.Equal(t, []SelectOption{{Label: "Кардиология", Value: "Кардиология"}, {Label: "Неврология", Value: "Неврология"}}, f.direction.options)

	f.topic.SetValue("МРТ позвоночника")
	plan.EXPECT().Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, got models.ContentPlanItem) (models.ContentPlanItem, error) {
			assert.Equal(t, "c1", got.ID)
			assert.Equal(t, intPtr(4), got.Version)
			assert.Equal(t, "МРТ позвоночника", *got.Topic)
			assert.Equal(t, "05, май", *got.Period)
			assert.Equal(t, "Неврология", *got.Direction)
			return got, nil
		})

	saveCmd := f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, saveCmd)
	saved, ok := saveCmd().(contentPlanSavedMsg)
	require.True(t, ok)
	assert.NoError(t, saved.err)
}

func TestContentPlanForm_EditKeepsUntouchedLegacyValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	item := models.ContentPlanItem{
		ID:      "c1",
		Period:  strPtr("сентябрь 2024"),
		Topic:   strPtr("МРТ"),
		MetaSeo: strPtr("legacy one\nlegacy two"),
	}

	f := newContentPlanForm(context.Background(), mock.NewMockClientContentPlanService(ctrl), newModalHost(), nil, &item)
	assert.Empty(t, f.month.Value(), "метка без номера месяца не разбирается")

	f.topic.SetValue("МРТ позвоночника")
	got := f.buildItem()

	require.NotNil(t, got.Period)
	assert.Equal(t, "сентябрь 2024", *got.Period)
	require.NotNil(t, got.MetaSeo)
	assert.Equal(t, "legacy one\nlegacy two", *got.MetaSeo)
	assert.Equal(t, "МРТ позвоночника", *got.Topic)
}

func TestContentPlanForm_EditRebuildsTouchedValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	item := models.ContentPlanItem{
		ID:      "c1",
		Period:  strPtr("сентябрь 2024"),
		MetaSeo: strPtr("legacy one\nlegacy two"),
	}

	f := newContentPlanForm(context.Background(), mock.NewMockClientContentPlanService(ctrl), newModalHost(), nil, &item)
	f.month.SetValue("2026-09")
	f.meta.h1.SetValue("МРТ")

	got := f.buildItem()

	require.NotNil(t, got.Period)
	assert.Equal(t, "09, сентябрь", *got.Period)
	require.NotNil(t, got.MetaSeo)
	assert.Equal(t, "H1: МРТ\nDescription: legacy one legacy two", *got.MetaSeo)
}

func TestContentPlanForm_EditClearingMonthClearsPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	item := models.ContentPlanItem{ID: "c1", Period: strPtr("05, май")}
	f := newContentPlanForm(context.Background(), mock.NewMockClientContentPlanService(ctrl), newModalHost(), nil, &item)
	require.NotEmpty(t, f.month.Value())

	f.month.SetValue("")

	assert.Nil(t, f.buildItem().Period)
}

// ── Directions ───────────────────────────────────────────────────────────────

func TestContentPlanForm_DirectionsAreSharedAcrossProjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	plan := mock.NewMockClientContentPlanService(ctrl)
	ctx := context.Background()
	f := newContentPlanForm(ctx, plan, newModalHost(), testProjects, nil)

	plan.EXPECT().Directions(ctx, "p1").Return([]string{"Неврология", "Кардиология", ""}, nil)
	plan.EXPECT().Directions(ctx, "p2").Return([]string{"Кардиология", "Хирургия"}, nil)

	cmd := f.loadDirections([]string{"p1", "p2"})
	msg := cmd().(directionsLoadedMsg)
	assert.Equal(t, []string{"Кардиология"}, msg.directions)

	f.Update(msg)
	assert.Len(t, f.direction.options, 1)
}

func TestContentPlanForm_StaleDirectionsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newContentPlanForm(context.Background(), mock.NewMockClientContentPlanService(ctrl), newModalHost(), testProjects, nil)
	f.directionsFor = []string{"p2"}

	f.Update(directionsLoadedMsg{forProjects: "p1", directions: []string{"Старое"}})

	assert.Empty(t, f.direction.options)
}

func TestContentPlanForm_CheckingProjectLoadsDirections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	plan := mock.NewMockClientContentPlanService(ctrl)
	f := newContentPlanForm(context.Background(), plan, newModalHost(), testProjects, nil)
	require.Same(t, f.projects, f.form.focused())

	cmd := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")})

	require.NotNil(t, cmd)
	assert.Equal(t, []string{"p1"}, f.directionsFor)
	assert.True(t, f.direction.Disabled())
}

func TestUniqueSorted(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, uniqueSorted([]string{"b", " a", "", "b"}))
}
