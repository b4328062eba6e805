// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TZBlockType is the heading level or kind of a technical specification block.
type TZBlockType string

// Block kinds understood by the backend.
const (
	TZBlockH1         TZBlockType = "H1"
	TZBlockH2         TZBlockType = "H2"
	TZBlockH3         TZBlockType = "H3"
	TZBlockH4         TZBlockType = "H4"
	TZBlockParagraph  TZBlockType = "paragraph"
	TZBlockList       TZBlockType = "list"
	TZBlockConclusion TZBlockType = "conclusion"
)

// TZBlockTypes lists every block kind in outline order.
var TZBlockTypes = []TZBlockType{
	TZBlockH1, TZBlockH2, TZBlockH3, TZBlockH4,
	TZBlockParagraph, TZBlockList, TZBlockConclusion,
}

// TZBlock is one titled section of a technical specification.
type TZBlock struct {
	ID          string      `json:"id"`
	Type        TZBlockType `json:"type"`
	Title       string      `json:"title"`
	Description []string    `json:"description"`
	Collapsed   bool        `json:"collapsed"`
}

// TechnicalSpecification ("ТЗ") is a writer's brief attached to a content
// plan item.
type TechnicalSpecification struct {
	ID            string    `json:"id,omitempty"`
	ContentPlanID string    `json:"content_plan_id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Blocks        []TZBlock `json:"blocks"`
	Keywords      []string  `json:"keywords"`
	Count         *int      `json:"count"`
	UsageForm     string    `json:"usage_form"`
	LSIPhrases    []string  `json:"lsi_phrases"`
	Competitors   []string  `json:"competitors"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
