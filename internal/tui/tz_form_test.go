package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/content-console/internal/mock"
	"github.com/MKhiriev/content-console/models"
)

func existingTZ() models.TechnicalSpecification {
	return models.TechnicalSpecification{
		ID:            "tz1",
		ContentPlanID: "c1",
		Title:         "Лечение спины",
		Keywords:      []string{"спина", "боль"},
		Count:         intPtr(3000),
		Blocks: []models.TZBlock{
			{ID: "b1", Type: models.TZBlockH2, Title: "Причины", Description: []string{"осанка"}, Collapsed: true},
			{ID: "b2", Type: models.TZBlockList, Title: "Симптомы", Description: []string{}},
		},
	}
}

func TestTZForm_PrefillsFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTZForm(context.Background(), mock.NewMockClientTZService(ctrl), newModalHost(), existingTZ())

	assert.Equal(t, "Лечение спины", f.title.Value())
	assert.Equal(t, "спина, боль", f.keywords.Value())
	assert.Equal(t, "3000", f.count.Value())
	assert.Equal(t, "H2: Причины\n- осанка\nlist: Симптомы", f.outline.Value())
	assert.Equal(t, "Редактирование ТЗ", f.titleText())
}

func TestTZForm_BuildKeepsMatchingBlockIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTZForm(context.Background(), mock.NewMockClientTZService(ctrl), newModalHost(), existingTZ())
	f.outline.SetValue("H2: Причины\n- осанка\n- травмы\nH3: Диагностика")
	f.count.SetValue("2500 (2800)")
	f.lsi.SetValue("мрт, кт\nрентген")

	tz := f.build()

	require.Len(t, tz.Blocks, 2)
	assert.Equal(t, "b1", tz.Blocks[0].ID)
	assert.True(t, tz.Blocks[0].Collapsed)
	assert.Equal(t, []string{"осанка", "травмы"}, tz.Blocks[0].Description)
	assert.NotEqual(t, "b2", tz.Blocks[1].ID, "тип блока изменился, id новый")
	assert.NotEmpty(t, tz.Blocks[1].ID)
	assert.Equal(t, 2500, *tz.Count)
	assert.Equal(t, []string{"мрт", "кт", "рентген"}, tz.LSIPhrases)
	assert.Equal(t, "c1", tz.ContentPlanID)
}

func TestTZForm_SaveClosesOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	host := newModalHost()
	tzs := mock.NewMockClientTZService(ctrl)
	f := newTZForm(ctx, tzs, host, models.TechnicalSpecification{ContentPlanID: "c1"})
	f.open()
	f.title.SetValue("Новое ТЗ")

	tzs.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, tz models.TechnicalSpecification) (models.TechnicalSpecification, error) {
			assert.Equal(t, "Новое ТЗ", tz.Title)
			assert.Empty(t, tz.ID)
			tz.ID = "tz9"
			return tz, nil
		})

	msg := f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})()
	assert.True(t, f.saving)
	f.Update(msg)

	assert.False(t, host.active())
}

func TestTZForm_SaveErrorStaysOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	host := newModalHost()
	f := newTZForm(context.Background(), mock.NewMockClientTZService(ctrl), host, existingTZ())
	f.open()

	f.Update(tzSavedMsg{err: errors.New("boom")})

	assert.True(t, host.active())
	assert.Contains(t, f.View(), "Ошибка:")
	assert.False(t, f.saving)
}
