// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Project is a site whose content is planned in the console.
type Project struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Region     *string    `json:"region"`
	Domain     *string    `json:"domain"`
	IsArchived bool       `json:"is_archived"`
	ArchivedAt *time.Time `json:"archived_at"`
}

// ProjectCreate is the body of POST /projects.
type ProjectCreate struct {
	Name   string  `json:"name"`
	Region *string `json:"region,omitempty"`
	Domain *string `json:"domain,omitempty"`
}

// ProjectUpdate is the body of PATCH /projects/{id}. Nil fields are left
// untouched by the backend.
type ProjectUpdate struct {
	Name       *string `json:"name,omitempty"`
	Region     *string `json:"region,omitempty"`
	Domain     *string `json:"domain,omitempty"`
	IsArchived *bool   `json:"is_archived,omitempty"`
}
