// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/content-console/internal/contentplan"
)

// MetaSeoEditor edits the three parts of a meta SEO text. The text itself
// is only ever rebuilt from the parts.
type MetaSeoEditor struct {
	h1          *inputField
	title       *inputField
	description *areaField

	initial contentplan.MetaSeo
}

// NewMetaSeoEditor returns an editor filled from value.
func NewMetaSeoEditor(value *string) *MetaSeoEditor {
	e := &MetaSeoEditor{
		h1:          newInputField("H1", 0),
		title:       newInputField("Title", 0),
		description: newAreaField("Description", 3),
	}
	e.SetValue(value)
	return e
}

// SetValue replaces every part with the parsed value.
func (e *MetaSeoEditor) SetValue(value *string) {
	meta := contentplan.ParseMetaSeo(value)
	e.h1.SetValue(meta.H1)
	e.title.SetValue(meta.Title)
	e.description.SetValue(meta.Description)
	e.initial = e.raw()
}

func (e *MetaSeoEditor) raw() contentplan.MetaSeo {
	return contentplan.MetaSeo{
		H1:          e.h1.Value(),
		Title:       e.title.Value(),
		Description: e.description.Value(),
	}
}

// Changed reports whether any part differs from what SetValue put there.
func (e *MetaSeoEditor) Changed() bool {
	return e.raw() != e.initial
}

// Meta returns the parts as typed. Line breaks of the description become
// single spaces: the stored text keeps one line per key.
func (e *MetaSeoEditor) Meta() contentplan.MetaSeo {
	m := e.raw()
	m.Description = flattenLines(m.Description)
	return m
}

// Value returns the rebuilt meta SEO text, nil when every part is empty.
func (e *MetaSeoEditor) Value() *string {
	return contentplan.BuildMetaSeo(e.Meta())
}

func (e *MetaSeoEditor) addTo(f *form) {
	f.add("H1", e.h1)
	f.add("Title", e.title)
	f.add("Description", e.description)
}

// flattenLines joins the non-blank lines of s with single spaces.
func flattenLines(s string) string {
	lines := strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == '\r' })
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, " ")
}
