// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package contentplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/content-console/models"
)

// themeItem собирает элемент плана с заданной темой и проектом.
func themeItem(id, projectID, topic string) models.ContentPlanItem {
	return models.ContentPlanItem{
		ID:        id,
		ProjectID: strPtr(projectID),
		Topic:     strPtr(topic),
		Period:    strPtr("09, сентябрь"),
		Section:   strPtr("услуга"),
	}
}

func TestGroupKey(t *testing.T) {
	item := models.ContentPlanItem{
		Topic:     strPtr(" МРТ спины "),
		Period:    strPtr("09, сентябрь"),
		Direction: strPtr("Неврология"),
	}

	assert.Equal(t, "МРТ спины|09, сентябрь||Неврология", GroupKey(item))
	assert.Equal(t, "|||", GroupKey(models.ContentPlanItem{}))
}

func TestGroupOf(t *testing.T) {
	sample := themeItem("c1", "p1", "МРТ спины")
	other := themeItem("c3", "p3", "КТ")
	items := []models.ContentPlanItem{
		themeItem("c2", "p2", "МРТ спины"),
		other,
		themeItem("c4", "p2", "МРТ спины"),
		{ID: "c5", Topic: strPtr("МРТ спины")},
	}

	g := GroupOf(items, sample)

	assert.Equal(t, GroupKey(sample), g.Key)
	assert.Equal(t, map[string]string{"p1": "c1", "p2": "c2"}, g.PerProject)
	assert.Equal(t, []string{"p1", "p2"}, g.ProjectIDs())
	assert.True(t, g.Has("p2"))
	assert.False(t, g.Has("p3"))
}

func TestGroupDiff(t *testing.T) {
	g := Group{PerProject: map[string]string{"p1": "c1", "p2": "c2"}}

	tests := []struct {
		name       string
		want       []string
		wantAdd    []string
		wantRemove []string
	}{
		{name: "unchanged", want: []string{"p2", "p1"}},
		{name: "add one", want: []string{"p1", "p2", "p3"}, wantAdd: []string{"p3"}},
		{name: "remove one", want: []string{"p2"}, wantRemove: []string{"c1"}},
		{name: "swap", want: []string{"p3", "p3", ""}, wantAdd: []string{"p3"}, wantRemove: []string{"c1", "c2"}},
		{name: "none", want: nil, wantRemove: []string{"c1", "c2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			add, remove := g.Diff(tt.want)
			assert.Equal(t, tt.wantAdd, add)
			assert.Equal(t, tt.wantRemove, remove)
		})
	}
}

func TestGroupCopy(t *testing.T) {
	chars := 3000
	sample := themeItem("c1", "p1", "МРТ спины")
	sample.Chars = &chars
	sample.MetaSeo = strPtr("H1: МРТ")
	sample.HasTechnicalSpecification = true
	sample.TechnicalSpecificationID = strPtr("tz1")
	sample.Version = intPtr(4)

	cp := Group{Sample: sample}.Copy()

	assert.Empty(t, cp.ID)
	assert.Nil(t, cp.ProjectID)
	assert.Nil(t, cp.Version)
	assert.False(t, cp.HasTechnicalSpecification)
	assert.Nil(t, cp.TechnicalSpecificationID)
	require.NotNil(t, cp.Chars)
	assert.Equal(t, 3000, *cp.Chars)
	assert.Equal(t, sample.Topic, cp.Topic)
	assert.Equal(t, sample.MetaSeo, cp.MetaSeo)
}
