// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package contentplan

import (
	"regexp"
	"strings"
)

// MetaSeo is the H1/Title/Description triple of a page, stored by the
// backend as a single free-text field.
type MetaSeo struct {
	H1          string
	Title       string
	Description string
}

var (
	metaSeoLine  = regexp.MustCompile(`(?i)^\s*(H1|Title|Description)\s*:\s*(.*)$`)
	lineSplitter = regexp.MustCompile(`\r?\n`)
)

// IsEmpty reports whether every field of m is empty.
func (m MetaSeo) IsEmpty() bool {
	return m.H1 == "" && m.Title == "" && m.Description == ""
}

// ParseMetaSeo reads the line-oriented Meta SEO format. Keys are matched
// case-insensitively, later lines overwrite earlier ones and unknown lines
// are skipped. Text without any known key is legacy free text and lands in
// Description as a whole.
func ParseMetaSeo(src *string) MetaSeo {
	if src == nil {
		return MetaSeo{}
	}
	return ParseMetaSeoString(*src)
}

// ParseMetaSeoString is [ParseMetaSeo] for a non-optional field.
func ParseMetaSeoString(src string) MetaSeo {
	text := strings.TrimSpace(src)

	var res MetaSeo
	for _, line := range lineSplitter.Split(text, -1) {
		m := metaSeoLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		val := strings.TrimSpace(m[2])
		switch strings.ToLower(m[1]) {
		case "h1":
			res.H1 = val
		case "title":
			res.Title = val
		case "description":
			res.Description = val
		}
	}

	if res.IsEmpty() && text != "" {
		res.Description = text
	}

	return res
}

// BuildMetaSeo serializes m in the fixed H1, Title, Description order,
// skipping empty fields. It returns nil when nothing is left to store.
func BuildMetaSeo(m MetaSeo) *string {
	lines := make([]string, 0, 3)
	if m.H1 != "" {
		lines = append(lines, "H1: "+m.H1)
	}
	if m.Title != "" {
		lines = append(lines, "Title: "+m.Title)
	}
	if m.Description != "" {
		lines = append(lines, "Description: "+m.Description)
	}

	out := strings.TrimSpace(strings.Join(lines, "\n"))
	if out == "" {
		return nil
	}
	return &out
}
