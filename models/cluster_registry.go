// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ClusterRegistryRow is a semantic keyword cluster mapped to a page.
type ClusterRegistryRow struct {
	ID          string     `json:"id,omitempty"`
	ProjectID   string     `json:"project_id"`
	Name        string     `json:"name"`
	Direction   *string    `json:"direction,omitempty"`
	PageType    *string    `json:"page_type,omitempty"`
	HasCore     bool       `json:"has_core"`
	HasBrief    bool       `json:"has_brief"`
	IsPublished bool       `json:"is_published"`
	Demand      int        `json:"demand"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// ClusterRegistryPatch is the body of PATCH /cluster-registry/{id}.
type ClusterRegistryPatch struct {
	Direction   *string `json:"direction,omitempty"`
	PageType    *string `json:"page_type,omitempty"`
	HasCore     *bool   `json:"has_core,omitempty"`
	HasBrief    *bool   `json:"has_brief,omitempty"`
	IsPublished *bool   `json:"is_published,omitempty"`
	Demand      *int    `json:"demand,omitempty"`
}

// ClusterFlag names one of the boolean progress flags of a registry row.
type ClusterFlag string

const (
	ClusterFlagCore      ClusterFlag = "has_core"
	ClusterFlagBrief     ClusterFlag = "has_brief"
	ClusterFlagPublished ClusterFlag = "is_published"
)

// ClusterRegistryBulk is the body of POST /cluster-registry/bulk. Every row
// must belong to ProjectID.
type ClusterRegistryBulk struct {
	ProjectID string               `json:"project_id"`
	Rows      []ClusterRegistryRow `json:"rows"`
}

// ClusterImportResult is the body of POST /cluster-registry/import-csv.
type ClusterImportResult struct {
	Processed int      `json:"processed"`
	Created   int      `json:"created"`
	Updated   int      `json:"updated"`
	Errors    []string `json:"errors"`
}
