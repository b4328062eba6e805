// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/cases"
)

// blurDelay is how long a blurred select keeps its list open.
const blurDelay = 150 * time.Millisecond

// SelectOption is one choice of a [SearchableSelect]. Values are expected to
// be unique; the select does not check it.
type SelectOption struct {
	Label string
	Value string
}

// OptionsFromStrings builds options whose label equals the value.
func OptionsFromStrings(values []string) []SelectOption {
	out := make([]SelectOption, 0, len(values))
	for _, v := range values {
		out = append(out, SelectOption{Label: v, Value: v})
	}
	return out
}

var selectIDs atomic.Int64

type selectBlurMsg struct {
	id  int64
	seq int
}

// SearchableSelect is a text input with a filtered dropdown.
//
// Typing is propagated to OnChange on every keystroke, so free text is a
// valid value. Choosing an option replaces the text with the option's
// value and closes the list.
type SearchableSelect struct {
	// OnChange receives the raw text after every edit and the value of a
	// chosen option.
	OnChange func(value string)

	id      int64
	options []SelectOption

	input     textinput.Model
	search    string
	open      bool
	highlight int
	disabled  bool

	external    string
	hasExternal bool
	blurSeq     int

	emptyText string
	maxRows   int
}

// NewSearchableSelect returns a closed select over options.
func NewSearchableSelect(placeholder string, options []SelectOption) *SearchableSelect {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.Width = 40

	return &SearchableSelect{
		id:        selectIDs.Add(1),
		options:   options,
		input:     in,
		highlight: -1,
		emptyText: "Нет вариантов",
		maxRows:   8,
	}
}

// SetOptions replaces the option list and drops the highlight.
func (s *SearchableSelect) SetOptions(options []SelectOption) {
	s.options = options
	s.highlight = -1
}

// SetEmptyText sets the text shown when there are no options at all.
func (s *SearchableSelect) SetEmptyText(text string) {
	s.emptyText = text
}

// SetDisabled disables or enables the control. A disabled select closes
// and keeps its value.
func (s *SearchableSelect) SetDisabled(disabled bool) {
	s.disabled = disabled
	if disabled {
		s.open = false
		s.search = ""
		s.input.Blur()
	}
}

// SetValue mirrors an externally supplied value into the input when it
// differs from the last value the select knows of, either supplied or
// typed. Repeating the value the parent already holds keeps the text.
func (s *SearchableSelect) SetValue(v string) {
	if s.hasExternal && v == s.external {
		return
	}
	s.external = v
	s.hasExternal = true
	s.input.SetValue(v)
}

// Value returns the current input text.
func (s *SearchableSelect) Value() string {
	return s.input.Value()
}

// IsOpen reports whether the dropdown is shown.
func (s *SearchableSelect) IsOpen() bool {
	return s.open
}

// Disabled reports whether the control is disabled.
func (s *SearchableSelect) Disabled() bool {
	return s.disabled
}

// Focused reports whether the input has focus.
func (s *SearchableSelect) Focused() bool {
	return s.input.Focused()
}

// SearchTerm returns the text the options are filtered by.
func (s *SearchableSelect) SearchTerm() string {
	return s.search
}

// Focus focuses the input and opens the list, searching by the current
// text. Pending blurs are cancelled.
func (s *SearchableSelect) Focus() tea.Cmd {
	s.blurSeq++
	if s.disabled {
		return nil
	}
	s.open = true
	s.search = s.input.Value()
	s.highlight = -1
	return s.input.Focus()
}

// Blur removes focus and closes the list after a short delay.
func (s *SearchableSelect) Blur() tea.Cmd {
	s.input.Blur()
	s.blurSeq++
	id, seq := s.id, s.blurSeq
	return tea.Tick(blurDelay, func(time.Time) tea.Msg {
		return selectBlurMsg{id: id, seq: seq}
	})
}

// Toggle opens a closed list and closes an open one.
func (s *SearchableSelect) Toggle() {
	if s.disabled {
		return
	}
	if s.open {
		s.close()
		return
	}
	s.open = true
	s.highlight = -1
}

// PressOutside closes an open list and resets the search.
func (s *SearchableSelect) PressOutside() {
	if s.open {
		s.close()
	}
}

// Escape closes the list and blurs the input without changing the value.
func (s *SearchableSelect) Escape() {
	s.close()
	s.input.Blur()
	s.blurSeq++
}

// Filtered returns the options whose label contains the search term,
// compared with Unicode case folding.
func (s *SearchableSelect) Filtered() []SelectOption {
	if s.search == "" {
		return s.options
	}

	folder := cases.Fold()
	needle := folder.String(s.search)

	out := make([]SelectOption, 0, len(s.options))
	for _, o := range s.options {
		if strings.Contains(folder.String(o.Label), needle) {
			out = append(out, o)
		}
	}
	return out
}

// Choose commits the i-th filtered option.
func (s *SearchableSelect) Choose(i int) {
	filtered := s.Filtered()
	if i < 0 || i >= len(filtered) {
		return
	}
	s.commit(filtered[i].Value)
}

// Update handles a message addressed to the select and reports back the
// command to run. Keys are only handled while the input is focused.
func (s *SearchableSelect) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case selectBlurMsg:
		if msg.id == s.id && msg.seq == s.blurSeq && !s.input.Focused() {
			s.close()
		}
		return nil

	case tea.KeyMsg:
		if s.disabled || !s.input.Focused() {
			return nil
		}
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *SearchableSelect) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.selectToggle) {
		s.Toggle()
		return nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		s.Escape()
		return nil

	case tea.KeyEnter:
		if s.highlight >= 0 {
			s.Choose(s.highlight)
			return nil
		}
		if len(s.Filtered()) == 1 {
			s.Choose(0)
		}
		return nil

	case tea.KeyDown:
		if !s.open {
			s.open = true
			s.highlight = -1
			return nil
		}
		if n := len(s.Filtered()); s.highlight < n-1 {
			s.highlight++
		}
		return nil

	case tea.KeyUp:
		if s.open && s.highlight > 0 {
			s.highlight--
		}
		return nil
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if after := s.input.Value(); after != before {
		s.remember(after)
		s.search = after
		s.open = true
		s.highlight = -1
		if s.OnChange != nil {
			s.OnChange(after)
		}
	}
	return cmd
}

// View renders the input and, when open, the filtered options.
func (s *SearchableSelect) View() string {
	arrow := "▾"
	if s.open {
		arrow = "▴"
	}

	line := s.input.View() + " " + arrow
	if s.disabled {
		return faintStyle.Render(line)
	}
	if !s.open {
		return line
	}

	var b strings.Builder
	b.WriteString(line)

	filtered := s.Filtered()
	if len(filtered) == 0 {
		b.WriteString("\n  ")
		if s.search != "" {
			b.WriteString(faintStyle.Render("Ничего не найдено"))
		} else {
			b.WriteString(faintStyle.Render(s.emptyText))
		}
		return b.String()
	}

	start := 0
	if s.highlight >= s.maxRows {
		start = s.highlight - s.maxRows + 1
	}
	end := min(start+s.maxRows, len(filtered))

	for i := start; i < end; i++ {
		b.WriteString("\n")
		if i == s.highlight {
			b.WriteString(selectedStyle.Render("> " + filtered[i].Label))
		} else {
			b.WriteString("  " + filtered[i].Label)
		}
	}
	if end < len(filtered) {
		b.WriteString("\n  " + faintStyle.Render("…"))
	}
	return b.String()
}

func (s *SearchableSelect) commit(value string) {
	s.remember(value)
	s.input.SetValue(value)
	s.input.CursorEnd()
	if s.OnChange != nil {
		s.OnChange(value)
	}
	s.close()
}

func (s *SearchableSelect) remember(v string) {
	s.external = v
	s.hasExternal = true
}

func (s *SearchableSelect) close() {
	s.open = false
	s.search = ""
	s.highlight = -1
}
