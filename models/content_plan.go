// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ContentPlanItem is a single planned page (theme) of the content plan.
// Every optional backend column is a pointer so that JSON null survives a
// round trip through the console.
type ContentPlanItem struct {
	ID              string  `json:"id,omitempty"`
	ProjectID       *string `json:"project_id,omitempty"`
	Period          *string `json:"period"`
	Section         *string `json:"section"`
	Direction       *string `json:"direction"`
	Topic           *string `json:"topic"`
	TZ              *string `json:"tz"`
	Chars           *int    `json:"chars"`
	Status          *string `json:"status"`
	Author          *string `json:"author"`
	ReviewingDoctor *string `json:"reviewing_doctor,omitempty"`
	DoctorApproved  *bool   `json:"doctor_approved,omitempty"`
	Review          *string `json:"review"`
	MetaSeo         *string `json:"meta_seo"`
	DoctorReview    *bool   `json:"doctor_review,omitempty"`
	Comment         *string `json:"comment"`
	Link            *string `json:"link"`
	PublishDate     *string `json:"publish_date"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	Version   *int       `json:"version,omitempty"`

	HasTechnicalSpecification bool    `json:"has_technical_specification,omitempty"`
	TechnicalSpecificationID  *string `json:"technical_specification_id,omitempty"`
}

// ContentPlanFilter holds the query parameters of GET /content-plan and
// GET /content-plan/count. Empty strings are not sent.
type ContentPlanFilter struct {
	ProjectID       string
	Search          string
	Status          string
	Period          string
	Author          string
	ReviewingDoctor string
	Limit           int
	Offset          int
}

// ContentPlanCreate is the body of POST /content-plan. The item is created
// once per project.
type ContentPlanCreate struct {
	ProjectIDs []string        `json:"project_ids"`
	Item       ContentPlanItem `json:"item"`
}

// ContentPlanUpdate is the body of PATCH /content-plan/{id}.
type ContentPlanUpdate struct {
	Item ContentPlanItem `json:"item"`
}

// ContentPlanPage is one page of the content plan list with the number of
// all matching items.
type ContentPlanPage struct {
	Items  []ContentPlanItem
	Total  int
	Limit  int
	Offset int
}

// HasNext reports whether another page follows p.
func (p ContentPlanPage) HasNext() bool {
	return p.Offset+len(p.Items) < p.Total
}

// ContentPlanCount is the body of GET /content-plan/count.
type ContentPlanCount struct {
	Total int `json:"total"`
}

// ContentPlanDeleted is the body of DELETE /content-plan.
type ContentPlanDeleted struct {
	Deleted int `json:"deleted"`
}

// PlanValue dereferences an optional content plan column.
func PlanValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// PlanString returns a pointer to s, or nil when s is empty.
func PlanString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
