// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package contentplan

import (
	"slices"
	"strings"

	"github.com/MKhiriev/content-console/models"
)

// Group is one content plan theme as it exists across projects: items with
// the same topic, period, section and direction are copies of each other.
type Group struct {
	Key    string
	Sample models.ContentPlanItem
	// PerProject maps a project id to the id of its copy.
	PerProject map[string]string
}

// GroupKey identifies the theme of item.
func GroupKey(item models.ContentPlanItem) string {
	return strings.Join([]string{
		deref(item.Topic),
		deref(item.Period),
		deref(item.Section),
		deref(item.Direction),
	}, "|")
}

// GroupOf collects the copies of sample found in items. sample itself is
// always part of the group.
func GroupOf(items []models.ContentPlanItem, sample models.ContentPlanItem) Group {
	g := Group{Key: GroupKey(sample), Sample: sample, PerProject: map[string]string{}}
	if sample.ProjectID != nil && sample.ID != "" {
		g.PerProject[*sample.ProjectID] = sample.ID
	}
	for _, it := range items {
		if it.ProjectID == nil || it.ID == "" || GroupKey(it) != g.Key {
			continue
		}
		if _, ok := g.PerProject[*it.ProjectID]; ok {
			continue
		}
		g.PerProject[*it.ProjectID] = it.ID
	}
	return g
}

// ProjectIDs returns the projects holding a copy, sorted.
func (g Group) ProjectIDs() []string {
	ids := make([]string, 0, len(g.PerProject))
	for id := range g.PerProject {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Has reports whether projectID holds a copy.
func (g Group) Has(projectID string) bool {
	_, ok := g.PerProject[projectID]
	return ok
}

// Diff compares the wanted project set with the group: add lists projects
// that need a new copy, remove lists item ids of copies to delete.
func (g Group) Diff(want []string) (add []string, remove []string) {
	wanted := make(map[string]struct{}, len(want))
	for _, id := range want {
		if id == "" {
			continue
		}
		if _, dup := wanted[id]; dup {
			continue
		}
		wanted[id] = struct{}{}
		if !g.Has(id) {
			add = append(add, id)
		}
	}
	for _, pid := range g.ProjectIDs() {
		if _, ok := wanted[pid]; !ok {
			remove = append(remove, g.PerProject[pid])
		}
	}
	return add, remove
}

// Copy returns the editable columns of the sample without identity,
// bookkeeping or technical specification fields.
func (g Group) Copy() models.ContentPlanItem {
	s := g.Sample
	return models.ContentPlanItem{
		Period:       s.Period,
		Section:      s.Section,
		Direction:    s.Direction,
		Topic:        s.Topic,
		TZ:           s.TZ,
		Chars:        s.Chars,
		Status:       s.Status,
		Author:       s.Author,
		Review:       s.Review,
		MetaSeo:      s.MetaSeo,
		DoctorReview: s.DoctorReview,
		Comment:      s.Comment,
		Link:         s.Link,
		PublishDate:  s.PublishDate,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
