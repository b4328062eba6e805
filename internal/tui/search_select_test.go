package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// typeText: хелпер: набирает текст посимвольно
func typeText(s *SearchableSelect, text string) {
	for _, r := range text {
		s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func newStatusSelect() (*SearchableSelect, *[]string) {
	var changes []string
	s := NewSearchableSelect("Статус", []SelectOption{
		{Label: "ТЗ в разработке", Value: "dev"},
		{Label: "ТЗ готово", Value: "ready"},
		{Label: "Размещено", Value: "published"},
	})
	s.OnChange = func(v string) { changes = append(changes, v) }
	return s, &changes
}

// ── Open / close ─────────────────────────────────────────────────────────────

func TestSearchableSelect_FocusOpensWithCurrentText(t *testing.T) {
	s, _ := newStatusSelect()
	s.SetValue("ТЗ")

	s.Focus()

	assert.True(t, s.IsOpen())
	assert.True(t, s.Focused())
	assert.Equal(t, "ТЗ", s.SearchTerm())
	assert.Len(t, s.Filtered(), 2)
}

func TestSearchableSelect_DisabledDoesNotOpen(t *testing.T) {
	s, _ := newStatusSelect()
	s.SetValue("ready")
	s.SetDisabled(true)

	assert.Nil(t, s.Focus())
	s.Toggle()

	assert.False(t, s.IsOpen())
	assert.Equal(t, "ready", s.Value())
}

func TestSearchableSelect_ToggleAndPressOutside(t *testing.T) {
	s, _ := newStatusSelect()

	s.Toggle()
	assert.True(t, s.IsOpen())
	s.Toggle()
	assert.False(t, s.IsOpen())

	s.Focus()
	typeText(s, "раз")
	require.Equal(t, "раз", s.SearchTerm())

	s.PressOutside()
	assert.False(t, s.IsOpen())
	assert.Empty(t, s.SearchTerm())
	assert.Equal(t, "раз", s.Value())
}

func TestSearchableSelect_EscapeKeepsValueAndBlurs(t *testing.T) {
	s, changes := newStatusSelect()
	s.Focus()
	typeText(s, "го")

	s.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, s.IsOpen())
	assert.False(t, s.Focused())
	assert.Empty(t, s.SearchTerm())
	assert.Equal(t, "го", s.Value())
	assert.Equal(t, []string{"г", "го"}, *changes)
}

// ── Typing ───────────────────────────────────────────────────────────────────

func TestSearchableSelect_TypingPropagatesRawText(t *testing.T) {
	s, changes := newStatusSelect()
	s.Focus()
	s.PressOutside()

	typeText(s, "нечто")

	assert.True(t, s.IsOpen())
	assert.Equal(t, "нечто", s.SearchTerm())
	assert.Equal(t, []string{"н", "не", "неч", "нечт", "нечто"}, *changes)
	assert.Empty(t, s.Filtered())
	assert.Contains(t, s.View(), "Ничего не найдено")
}

func TestSearchableSelect_FilterIsCaseInsensitive(t *testing.T) {
	s, _ := newStatusSelect()
	s.Focus()
	typeText(s, "тз ГОТ")

	filtered := s.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "ready", filtered[0].Value)
}

func TestSearchableSelect_KeysIgnoredWhenBlurred(t *testing.T) {
	s, changes := newStatusSelect()

	typeText(s, "abc")

	assert.Empty(t, s.Value())
	assert.Empty(t, *changes)
}

// ── Choosing ─────────────────────────────────────────────────────────────────

func TestSearchableSelect_EnterCommitsSingleMatch(t *testing.T) {
	s, changes := newStatusSelect()
	s.Focus()
	typeText(s, "разм")

	s.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "published", s.Value())
	assert.False(t, s.IsOpen())
	assert.Empty(t, s.SearchTerm())
	assert.Equal(t, "published", (*changes)[len(*changes)-1])
}

func TestSearchableSelect_EnterWithSeveralMatchesDoesNothing(t *testing.T) {
	s, changes := newStatusSelect()
	s.Focus()
	typeText(s, "ТЗ")
	before := len(*changes)

	s.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, s.IsOpen())
	assert.Equal(t, "ТЗ", s.Value())
	assert.Len(t, *changes, before)
}

func TestSearchableSelect_EnterOnClosedListCommitsSingleOption(t *testing.T) {
	s := NewSearchableSelect("Проект", OptionsFromStrings([]string{"Клиника на Ленина"}))
	var changes []string
	s.OnChange = func(v string) { changes = append(changes, v) }
	s.Focus()
	s.PressOutside()
	require.False(t, s.IsOpen())

	s.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "Клиника на Ленина", s.Value())
	assert.Equal(t, []string{"Клиника на Ленина"}, changes)
	assert.False(t, s.IsOpen())
}

func TestSearchableSelect_EnterOnClosedListWithSeveralOptionsKeepsText(t *testing.T) {
	s, changes := newStatusSelect()
	s.Focus()
	s.PressOutside()

	s.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Empty(t, s.Value())
	assert.Empty(t, *changes)
	assert.False(t, s.IsOpen())
}

func TestSearchableSelect_ToggleKey(t *testing.T) {
	s, _ := newStatusSelect()
	s.Focus()
	typeText(s, "ТЗ")
	require.True(t, s.IsOpen())

	s.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.False(t, s.IsOpen())
	assert.Empty(t, s.SearchTerm())
	assert.True(t, s.Focused(), "переключатель не снимает фокус")

	s.Update(tea.KeyMsg{Type: tea.KeyDown, Alt: true})
	assert.True(t, s.IsOpen())
	assert.Equal(t, "ТЗ", s.Value())
}

func TestSearchableSelect_ArrowsHighlightAndEnterCommits(t *testing.T) {
	s, _ := newStatusSelect()
	s.Focus()
	s.PressOutside()

	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.True(t, s.IsOpen(), "стрелка вниз открывает закрытый список")

	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	s.Update(tea.KeyMsg{Type: tea.KeyUp})
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "dev", s.Value())
	assert.False(t, s.IsOpen())
}

func TestSearchableSelect_ChooseCommitsValueNotLabel(t *testing.T) {
	s, changes := newStatusSelect()
	s.Focus()

	s.Choose(1)

	assert.Equal(t, "ready", s.Value())
	assert.Equal(t, []string{"ready"}, *changes)
	assert.False(t, s.IsOpen())

	s.Choose(10)
	assert.Equal(t, "ready", s.Value())
}

// ── External value ───────────────────────────────────────────────────────────

func TestSearchableSelect_SetValueOnlyWhenExternalValueChanges(t *testing.T) {
	s, _ := newStatusSelect()
	s.SetValue("dev")
	s.Focus()
	typeText(s, "!")
	require.Equal(t, "dev!", s.Value())

	s.SetValue("dev!")
	assert.Equal(t, "dev!", s.Value(), "значение, которое родитель уже знает, не затирает ввод")

	s.SetValue("ready")
	assert.Equal(t, "ready", s.Value())
}

func TestSearchableSelect_ResetToPreviousValueAfterTyping(t *testing.T) {
	s := NewSearchableSelect("Проект", OptionsFromStrings([]string{"Alpha", "Beta"}))
	s.SetValue("Alpha")
	s.Focus()
	typeText(s, "Z")
	require.Equal(t, "AlphaZ", s.Value())

	s.SetValue("Alpha")

	assert.Equal(t, "Alpha", s.Value(), "сброс на прежнее значение применяется")
}

func TestSearchableSelect_ResetToPreviousValueAfterChoosing(t *testing.T) {
	s, _ := newStatusSelect()
	s.SetValue("dev")
	s.Focus()

	s.Choose(2)
	require.Equal(t, "published", s.Value())

	s.SetValue("dev")
	assert.Equal(t, "dev", s.Value())
}

// ── Blur ─────────────────────────────────────────────────────────────────────

func TestSearchableSelect_BlurClosesAfterTick(t *testing.T) {
	s, _ := newStatusSelect()
	s.Focus()

	cmd := s.Blur()
	require.NotNil(t, cmd)
	assert.True(t, s.IsOpen(), "список остаётся открытым до тика")

	s.Update(selectBlurMsg{id: s.id, seq: s.blurSeq})
	assert.False(t, s.IsOpen())
}

func TestSearchableSelect_StaleBlurTickIgnored(t *testing.T) {
	s, _ := newStatusSelect()
	s.Focus()
	s.Blur()
	stale := selectBlurMsg{id: s.id, seq: s.blurSeq}

	s.Focus()
	s.Update(stale)

	assert.True(t, s.IsOpen())
}

func TestSearchableSelect_BlurTickForOtherSelectIgnored(t *testing.T) {
	a, _ := newStatusSelect()
	b, _ := newStatusSelect()
	a.Focus()
	a.Blur()

	a.Update(selectBlurMsg{id: b.id, seq: a.blurSeq})

	assert.True(t, a.IsOpen())
}

// ── View ─────────────────────────────────────────────────────────────────────

func TestSearchableSelect_ViewEmptyOptions(t *testing.T) {
	s := NewSearchableSelect("Направление", nil)
	s.SetEmptyText("Нет направлений")
	s.Focus()

	assert.Contains(t, s.View(), "Нет направлений")
}

func TestSearchableSelect_ViewListsFilteredLabels(t *testing.T) {
	s, _ := newStatusSelect()
	s.Focus()
	typeText(s, "ТЗ")

	view := s.View()
	assert.Contains(t, view, "ТЗ в разработке")
	assert.Contains(t, view, "ТЗ готово")
	assert.NotContains(t, view, "Размещено")
}

func TestOptionsFromStrings(t *testing.T) {
	opts := OptionsFromStrings([]string{"блог", "услуга"})
	assert.Equal(t, []SelectOption{{Label: "блог", Value: "блог"}, {Label: "услуга", Value: "услуга"}}, opts)
}
