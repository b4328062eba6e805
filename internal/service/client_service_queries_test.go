package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/content-console/internal/logger"
	"github.com/MKhiriev/content-console/internal/mock"
	"github.com/MKhiriev/content-console/models"
)

func newTestQuerySvc(t *testing.T) (ClientQueryService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	return NewClientQueryService(mockAdapter, logger.Nop()), mockAdapter
}

func intPtr(n int) *int { return &n }

// ── List ─────────────────────────────────────────────────────────────────────

func TestClientQueryService_List(t *testing.T) {
	svc, mockAdapter := newTestQuerySvc(t)
	ctx := context.Background()
	want := models.QueryFilter{ProjectID: "p1", Search: "мрт", Limit: defaultQueryPageSize}

	mockAdapter.EXPECT().ListQueries(ctx, want).Return([]models.QueryRow{{ID: "q1"}, {ID: "q2"}}, nil)
	mockAdapter.EXPECT().CountQueries(ctx, want).Return(450, nil)

	page, err := svc.List(ctx, models.QueryFilter{ProjectID: "p1", Search: " мрт ", Offset: -10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 450, page.Total)
	assert.Equal(t, defaultQueryPageSize, page.Limit)
	assert.True(t, page.HasNext())
}

func TestClientQueryService_ListCountFailureDegrades(t *testing.T) {
	svc, mockAdapter := newTestQuerySvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().ListQueries(ctx, gomock.Any()).Return([]models.QueryRow{{ID: "q1"}}, nil)
	mockAdapter.EXPECT().CountQueries(ctx, gomock.Any()).Return(0, errors.New("timeout"))

	page, err := svc.List(ctx, models.QueryFilter{ProjectID: "p1", Limit: 10000, Offset: 500})
	require.NoError(t, err)
	assert.Equal(t, 501, page.Total)
	assert.Equal(t, maxPageSize, page.Limit)
	assert.False(t, page.HasNext())
}

func TestClientQueryService_ListNeedsProject(t *testing.T) {
	svc, _ := newTestQuerySvc(t)

	_, err := svc.List(context.Background(), models.QueryFilter{})
	assert.ErrorIs(t, err, ErrNoQueryProject)
}

func TestClientQueryService_Dictionaries(t *testing.T) {
	svc, mockAdapter := newTestQuerySvc(t)
	ctx := context.Background()

	dirs, err := svc.Directions(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, dirs)

	mockAdapter.EXPECT().ListDirections(ctx, "p1").Return([]string{"Неврология"}, nil)
	mockAdapter.EXPECT().ListClusters(ctx, "p1").Return([]string{"мрт"}, nil)

	dirs, err = svc.Directions(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Неврология"}, dirs)

	clusters, err := svc.Clusters(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"мрт"}, clusters)
}

// ── Bulk ─────────────────────────────────────────────────────────────────────

func TestClientQueryService_BulkCleansInput(t *testing.T) {
	svc, mockAdapter := newTestQuerySvc(t)
	ctx := context.Background()
	clearDate := "  "
	cluster := "мрт"

	mockAdapter.EXPECT().BulkUpdateQueries(ctx, "p1", models.QueryBulkUpdate{
		IDs:        []string{"q1", "q2"},
		SetCluster: &cluster,
		AddTags:    []string{"гео", "спина"},
		SetDate:    strPtr(""),
	}).Return(2, nil)

	n, err := svc.Bulk(ctx, "p1", models.QueryBulkUpdate{
		IDs:        []string{"q1", "", "q2", "q1"},
		SetCluster: &cluster,
		AddTags:    []string{" гео", "спина", "гео ", ""},
		RemoveTags: []string{" "},
		SetDate:    &clearDate,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestClientQueryService_BulkRejects(t *testing.T) {
	svc, _ := newTestQuerySvc(t)
	ctx := context.Background()
	cluster := "мрт"

	tests := []struct {
		name      string
		projectID string
		update    models.QueryBulkUpdate
		wantErr   error
	}{
		{name: "no project", update: models.QueryBulkUpdate{IDs: []string{"q1"}, SetCluster: &cluster}, wantErr: ErrNoQueryProject},
		{name: "no ids", projectID: "p1", update: models.QueryBulkUpdate{SetCluster: &cluster}, wantErr: ErrNoQueriesSelected},
		{name: "no changes", projectID: "p1", update: models.QueryBulkUpdate{IDs: []string{"q1"}, AddTags: []string{" "}}, wantErr: ErrNothingToUpdate},
		{name: "bad date", projectID: "p1", update: models.QueryBulkUpdate{IDs: []string{"q1"}, SetDate: strPtr("01.09.2026")}, wantErr: ErrInvalidQueryDate},
		{name: "negative ws", projectID: "p1", update: models.QueryBulkUpdate{IDs: []string{"q1"}, SetWSFlag: intPtr(-1)}, wantErr: ErrInvalidWSFlag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Bulk(ctx, tt.projectID, tt.update)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Delete, undo, versions ───────────────────────────────────────────────────

func TestClientQueryService_DeleteAndUndo(t *testing.T) {
	svc, mockAdapter := newTestQuerySvc(t)
	ctx := context.Background()

	n, err := svc.Delete(ctx, "p1", nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	mockAdapter.EXPECT().DeleteQueries(ctx, "p1", []string{"q1", "q2"}).Return(2, nil)
	n, err = svc.Delete(ctx, "p1", []string{"q1", "q2", "q1"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = svc.Undo(ctx, "p1", models.QueryUndo{})
	assert.ErrorIs(t, err, ErrNoQueriesSelected)

	mockAdapter.EXPECT().UndoQueries(ctx, "p1", models.QueryUndo{IDs: []string{"q1"}, ToVersion: intPtr(2)}).Return(1, nil)
	n, err = svc.Undo(ctx, "p1", models.QueryUndo{IDs: []string{"q1"}, ToVersion: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestClientQueryService_VersionsNewestFirst(t *testing.T) {
	svc, mockAdapter := newTestQuerySvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().ListQueryVersions(ctx, "q1").
		Return([]models.QueryVersion{{Version: 1}, {Version: 3}, {Version: 2}}, nil)

	versions, err := svc.Versions(ctx, "q1")
	require.NoError(t, err)
	require.Len(t, versions, 3)
	assert.Equal(t, 3, versions[0].Version)
	assert.Equal(t, 1, versions[2].Version)
}

func TestVersionChanges(t *testing.T) {
	v := models.QueryVersion{
		Before: json.RawMessage(`{"cluster":"мрт","page":null,"tags":["гео"],"ws_flag":10,"phrase":"мрт спины"}`),
		After:  json.RawMessage(`{"cluster":"кт","page":"/kt","tags":["гео","спина"],"ws_flag":10,"phrase":"мрт спины","dt":"2026-09-01"}`),
	}

	got := VersionChanges(v)

	assert.Equal(t, []QueryChange{
		{Field: "cluster", Before: "мрт", After: "кт"},
		{Field: "dt", Before: "", After: "2026-09-01"},
		{Field: "page", Before: "", After: "/kt"},
		{Field: "tags", Before: "гео", After: "гео, спина"},
	}, got)
}

func TestVersionChanges_EmptySnapshots(t *testing.T) {
	assert.Empty(t, VersionChanges(models.QueryVersion{}))
}
