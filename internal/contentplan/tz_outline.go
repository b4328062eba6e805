// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package contentplan

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/content-console/internal/utils"
	"github.com/MKhiriev/content-console/models"
)

var (
	outlineHeader = regexp.MustCompile(`(?i)^\s*(H1|H2|H3|H4|paragraph|list|conclusion)\s*:\s*(.*)$`)
	outlineItem   = regexp.MustCompile(`^\s*[-*]\s+(.*)$`)
)

var blockIDs = utils.NewUUIDGenerator()

// ParseOutline reads the plain-text outline of a technical specification.
//
// A line "<type>: <title>" starts a new block, "- item" or "* item" lines
// and any other non-empty line add to the description of the current block.
// Description lines before the first header open an untitled paragraph.
func ParseOutline(text string) []models.TZBlock {
	var (
		blocks  []models.TZBlock
		current *models.TZBlock
	)

	flush := func() {
		if current != nil {
			blocks = append(blocks, *current)
			current = nil
		}
	}

	for _, line := range lineSplitter.Split(text, -1) {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if m := outlineHeader.FindStringSubmatch(line); m != nil {
			flush()
			current = newBlock(blockType(m[1]), strings.TrimSpace(m[2]))
			continue
		}

		item := strings.TrimSpace(line)
		if m := outlineItem.FindStringSubmatch(line); m != nil {
			item = strings.TrimSpace(m[1])
		}
		if item == "" {
			continue
		}

		if current == nil {
			current = newBlock(models.TZBlockParagraph, "")
		}
		current.Description = append(current.Description, item)
	}
	flush()

	return blocks
}

// BuildOutline renders blocks in the format read by [ParseOutline].
func BuildOutline(blocks []models.TZBlock) string {
	var b strings.Builder
	for i, block := range blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(string(block.Type))
		b.WriteString(": ")
		b.WriteString(block.Title)
		for _, item := range block.Description {
			b.WriteString("\n- ")
			b.WriteString(item)
		}
	}
	return b.String()
}

// SplitList splits comma or newline separated text into trimmed non-empty
// items.
func SplitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// JoinList is the inverse of [SplitList] for items without separators.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

func newBlock(t models.TZBlockType, title string) *models.TZBlock {
	return &models.TZBlock{
		ID:          blockIDs.Generate(),
		Type:        t,
		Title:       title,
		Description: []string{},
	}
}

func blockType(raw string) models.TZBlockType {
	for _, t := range models.TZBlockTypes {
		if strings.EqualFold(string(t), raw) {
			return t
		}
	}
	return models.TZBlockParagraph
}
