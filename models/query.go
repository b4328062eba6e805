// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// QueryRow is one search phrase of a project's semantic core.
type QueryRow struct {
	ID        string   `json:"id"`
	Phrase    string   `json:"phrase"`
	Direction *string  `json:"direction"`
	Cluster   *string  `json:"cluster"`
	Page      *string  `json:"page"`
	Tags      []string `json:"tags"`
	PageType  *string  `json:"page_type"`
	QueryType *string  `json:"query_type"`
	WSFlag    int      `json:"ws_flag"`
	// Date is the "YYYY-MM-DD" date column.
	Date *string `json:"dt"`
}

// QueryFilter holds the query parameters of GET /queries and
// GET /queries/count. Empty strings are not sent.
type QueryFilter struct {
	ProjectID string
	Search    string
	Direction string
	Cluster   string
	Limit     int
	Offset    int
}

// QueryPage is one page of the semantic core with the number of all
// matching phrases.
type QueryPage struct {
	Items  []QueryRow
	Total  int
	Limit  int
	Offset int
}

// HasNext reports whether another page follows p.
func (p QueryPage) HasNext() bool {
	return p.Offset+len(p.Items) < p.Total
}

// QueryBulkUpdate is the body of POST /queries/bulk. Nil fields are left
// unchanged; an empty SetDate clears the date.
type QueryBulkUpdate struct {
	IDs          []string `json:"ids"`
	SetCluster   *string  `json:"set_cluster,omitempty"`
	SetDirection *string  `json:"set_direction,omitempty"`
	SetPage      *string  `json:"set_page,omitempty"`
	SetTags      []string `json:"set_tags,omitempty"`
	AddTags      []string `json:"add_tags,omitempty"`
	RemoveTags   []string `json:"remove_tags,omitempty"`
	SetPageType  *string  `json:"set_page_type,omitempty"`
	SetQueryType *string  `json:"set_query_type,omitempty"`
	SetWSFlag    *int     `json:"set_ws_flag,omitempty"`
	SetDate      *string  `json:"set_dt,omitempty"`
}

// HasChanges reports whether u changes anything besides the ids.
func (u QueryBulkUpdate) HasChanges() bool {
	return u.SetCluster != nil || u.SetDirection != nil || u.SetPage != nil ||
		len(u.SetTags) > 0 || len(u.AddTags) > 0 || len(u.RemoveTags) > 0 ||
		u.SetPageType != nil || u.SetQueryType != nil || u.SetWSFlag != nil ||
		u.SetDate != nil
}

// QueryIDs is the body of POST /queries/delete.
type QueryIDs struct {
	IDs []string `json:"ids"`
}

// QueryUndo is the body of POST /queries/undo. A nil ToVersion rolls back
// the latest change of every query.
type QueryUndo struct {
	IDs       []string `json:"ids"`
	ToVersion *int     `json:"to_version,omitempty"`
}

// QueryVersion is one entry of GET /queries/{id}/versions. Before and
// After are the row snapshots around the change.
type QueryVersion struct {
	Version   int             `json:"version"`
	CreatedAt string          `json:"created_at"`
	AuthorID  *string         `json:"author_id"`
	Before    json.RawMessage `json:"before"`
	After     json.RawMessage `json:"after"`
}

// QueryCount is the body of GET /queries/count.
type QueryCount struct {
	Total int `json:"total"`
}

// QueryBulkResult is the body of POST /queries/bulk.
type QueryBulkResult struct {
	Updated int `json:"updated"`
}

// QueryDeleted is the body of POST /queries/delete.
type QueryDeleted struct {
	Deleted int `json:"deleted"`
}

// QueryReverted is the body of POST /queries/undo.
type QueryReverted struct {
	Reverted int `json:"reverted"`
}
