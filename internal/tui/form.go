package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField is a focusable control of a form.
type formField interface {
	Focus() tea.Cmd
	Blur() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
}

type inputField struct {
	input textinput.Model
}

func newInputField(placeholder string, charLimit int) *inputField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.Width = 40
	if charLimit > 0 {
		in.CharLimit = charLimit
	}
	return &inputField{input: in}
}

func (f *inputField) Focus() tea.Cmd { return f.input.Focus() }

func (f *inputField) Blur() tea.Cmd {
	f.input.Blur()
	return nil
}

func (f *inputField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *inputField) View() string { return f.input.View() }
func (f *inputField) Value() string { return f.input.Value() }
func (f *inputField) SetValue(v string) { f.input.SetValue(v) }
func (f *inputField) TrimmedValue() string { return strings.TrimSpace(f.input.Value()) }

type areaField struct {
	area textarea.Model
}

func newAreaField(placeholder string, height int) *areaField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(height)
	ta.CharLimit = 0
	return &areaField{area: ta}
}

func (f *areaField) Focus() tea.Cmd { return f.area.Focus() }

func (f *areaField) Blur() tea.Cmd {
	f.area.Blur()
	return nil
}

func (f *areaField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.area, cmd = f.area.Update(msg)
	return cmd
}

func (f *areaField) View() string { return f.area.View() }
func (f *areaField) Value() string { return f.area.Value() }
func (f *areaField) SetValue(v string) { f.area.SetValue(v) }

// checklistField lets the user pick several options with space.
type checklistField struct {
	options  []SelectOption
	checked  map[string]bool
	cursor   int
	focused  bool
	emptyMsg string
}

func newChecklistField(options []SelectOption, emptyMsg string) *checklistField {
	return &checklistField{
		options:  options,
		checked:  make(map[string]bool),
		emptyMsg: emptyMsg,
	}
}

func (f *checklistField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *checklistField) Blur() tea.Cmd {
	f.focused = false
	return nil
}

func (f *checklistField) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !f.focused || len(f.options) == 0 {
		return nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if f.cursor > 0 {
			f.cursor--
		}
	case "down", "j":
		if f.cursor < len(f.options)-1 {
			f.cursor++
		}
	case " ":
		v := f.options[f.cursor].Value
		f.checked[v] = !f.checked[v]
	}
	return nil
}

func (f *checklistField) Check(value string) {
	f.checked[value] = true
}

// Values returns the checked values in option order.
func (f *checklistField) Values() []string {
	out := make([]string, 0, len(f.checked))
	for _, o := range f.options {
		if f.checked[o.Value] {
			out = append(out, o.Value)
		}
	}
	return out
}

func (f *checklistField) View() string {
	if len(f.options) == 0 {
		return faintStyle.Render(f.emptyMsg)
	}

	var b strings.Builder
	for i, o := range f.options {
		if i > 0 {
			b.WriteString("\n")
		}
		mark := "[ ]"
		if f.checked[o.Value] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s %s", cursorMark(f.focused && i == f.cursor), mark, o.Label)
		b.WriteString(line)
	}
	return b.String()
}

// form is an ordered list of labelled fields with one focused field.
type form struct {
	labels []string
	fields []formField
	focus  int
}

func (f *form) add(label string, field formField) {
	f.labels = append(f.labels, label)
	f.fields = append(f.fields, field)
}

func (f *form) focusFirst() tea.Cmd {
	f.focus = 0
	if len(f.fields) == 0 {
		return nil
	}
	return f.fields[0].Focus()
}

func (f *form) move(delta int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	if s, ok := f.focusedSelect(); ok {
		s.PressOutside()
	}
	blur := f.fields[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	return tea.Batch(blur, f.fields[f.focus].Focus())
}

func (f *form) focused() formField {
	if len(f.fields) == 0 {
		return nil
	}
	return f.fields[f.focus]
}

// focusedSelect returns the focused field when it is a select.
func (f *form) focusedSelect() (*SearchableSelect, bool) {
	s, ok := f.focused().(*SearchableSelect)
	return s, ok
}

// update drives the form with msg. Keys go to the focused field, other
// messages such as blink and blur ticks go to every field.
func (f *form) update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		cmds := make([]tea.Cmd, 0, len(f.fields))
		for _, field := range f.fields {
			cmds = append(cmds, field.Update(msg))
		}
		return tea.Batch(cmds...)
	}

	switch keyMsg.String() {
	case "tab":
		return f.move(1)
	case "shift+tab":
		return f.move(-1)
	case "enter":
		switch f.focused().(type) {
		case *SearchableSelect, *areaField:
		default:
			return f.move(1)
		}
	}

	if field := f.focused(); field != nil {
		return field.Update(msg)
	}
	return nil
}

// escapeHandled lets an open select consume esc before the form does.
func (f *form) escapeHandled() bool {
	if s, ok := f.focusedSelect(); ok && s.IsOpen() {
		s.Escape()
		return true
	}
	return false
}

func (f *form) view() string {
	width := 0
	for _, l := range f.labels {
		width = max(width, len([]rune(l)))
	}

	var b strings.Builder
	for i, field := range f.fields {
		if i > 0 {
			b.WriteString("\n")
		}
		label := padRight(f.labels[i], width)
		if i == f.focus {
			label = titleStyle.Render(label)
		}
		lines := strings.Split(field.View(), "\n")
		for j, line := range lines {
			if j == 0 {
				b.WriteString(cursorMark(i == f.focus) + " " + label + " │ " + line)
				continue
			}
			b.WriteString("\n  " + strings.Repeat(" ", width) + " │ " + line)
		}
	}
	return b.String()
}
