package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	prevPage key.Binding
	nextPage key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	save     key.Binding
	back     key.Binding
	refresh  key.Binding
	newItem  key.Binding
	edit     key.Binding
	delete   key.Binding
	archive  key.Binding
	archived key.Binding
	search   key.Binding
	status   key.Binding
	project  key.Binding
	tz       key.Binding
	copyLink key.Binding
	copyMeta key.Binding
	toggle   key.Binding
	flag1    key.Binding
	flag2    key.Binding
	flag3    key.Binding
	registry key.Binding
	pickAll  key.Binding
	bulk     key.Binding
	undo     key.Binding
	history  key.Binding
	importer key.Binding
	link     key.Binding
	byDir    key.Binding
	byClust  key.Binding
	yes      key.Binding
	no       key.Binding

	selectToggle key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	prevPage: key.NewBinding(key.WithKeys("left", "[")),
	nextPage: key.NewBinding(key.WithKeys("right", "]")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	back:     key.NewBinding(key.WithKeys("esc", "q")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	archive:  key.NewBinding(key.WithKeys("x")),
	archived: key.NewBinding(key.WithKeys("a")),
	search:   key.NewBinding(key.WithKeys("/")),
	status:   key.NewBinding(key.WithKeys("s")),
	project:  key.NewBinding(key.WithKeys("p")),
	tz:       key.NewBinding(key.WithKeys("t")),
	copyLink: key.NewBinding(key.WithKeys("c")),
	copyMeta: key.NewBinding(key.WithKeys("m")),
	toggle:   key.NewBinding(key.WithKeys(" ")),
	flag1:    key.NewBinding(key.WithKeys("1")),
	flag2:    key.NewBinding(key.WithKeys("2")),
	flag3:    key.NewBinding(key.WithKeys("3")),
	registry: key.NewBinding(key.WithKeys("g")),
	pickAll:  key.NewBinding(key.WithKeys("A")),
	bulk:     key.NewBinding(key.WithKeys("b")),
	undo:     key.NewBinding(key.WithKeys("u")),
	history:  key.NewBinding(key.WithKeys("h")),
	importer: key.NewBinding(key.WithKeys("i")),
	link:     key.NewBinding(key.WithKeys("l")),
	byDir:    key.NewBinding(key.WithKeys("f")),
	byClust:  key.NewBinding(key.WithKeys("c")),
	yes:      key.NewBinding(key.WithKeys("y", "enter")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),

	selectToggle: key.NewBinding(key.WithKeys("ctrl+o", "alt+down")),
}
