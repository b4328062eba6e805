package service

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/content-console/internal/adapter"
	"github.com/MKhiriev/content-console/internal/logger"
	"github.com/MKhiriev/content-console/internal/mock"
	"github.com/MKhiriev/content-console/internal/session"
	"github.com/MKhiriev/content-console/internal/store"
	"github.com/MKhiriev/content-console/models"
)

// newTestTZSvc создаёт сервис ТЗ с сессией на временном файле.
func newTestTZSvc(t *testing.T) (ClientTZService, *mock.MockServerAdapter, *session.Store) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	repo, err := store.NewFileSessionRepository(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	sessionStore := session.NewStore(repo, "kh-auth", logger.Nop())

	return NewClientTZService(mockAdapter, sessionStore), mockAdapter, sessionStore
}

// ── Open ─────────────────────────────────────────────────────────────────────

func TestClientTZService_OpenEdit(t *testing.T) {
	svc, mockAdapter, _ := newTestTZSvc(t)
	ctx := context.Background()
	item := models.ContentPlanItem{ID: "cp1", HasTechnicalSpecification: true, TechnicalSpecificationID: strPtr("tz1")}

	mockAdapter.EXPECT().GetTZ(ctx, "tz1").Return(models.TechnicalSpecification{ID: "tz1", ContentPlanID: "cp1"}, nil)

	tz, err := svc.Open(ctx, item)
	require.NoError(t, err)
	assert.Equal(t, "tz1", tz.ID)
}

func TestClientTZService_OpenEditError(t *testing.T) {
	svc, mockAdapter, _ := newTestTZSvc(t)
	item := models.ContentPlanItem{ID: "cp1", HasTechnicalSpecification: true, TechnicalSpecificationID: strPtr("tz1")}

	mockAdapter.EXPECT().GetTZ(gomock.Any(), "tz1").Return(models.TechnicalSpecification{}, adapter.NewAPIError(http.StatusNotFound, ""))

	_, err := svc.Open(context.Background(), item)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestClientTZService_OpenCreateDraft(t *testing.T) {
	svc, mockAdapter, sessionStore := newTestTZSvc(t)
	ctx := context.Background()
	require.NoError(t, sessionStore.SetUser(ctx, &models.User{Name: "Ольга"}))

	item := models.ContentPlanItem{
		ID:      "cp1",
		Topic:   strPtr("Гастрит у детей"),
		MetaSeo: strPtr("H1: Гастрит у детей: симптомы\nTitle: t"),
	}
	mockAdapter.EXPECT().GetTZByContentPlan(ctx, "cp1").
		Return(models.TechnicalSpecification{}, adapter.NewAPIError(http.StatusNotFound, ""))

	tz, err := svc.Open(ctx, item)
	require.NoError(t, err)
	assert.Empty(t, tz.ID)
	assert.Equal(t, "cp1", tz.ContentPlanID)
	assert.Equal(t, "Гастрит у детей", tz.Title)
	assert.Equal(t, "Ольга", tz.Author)
	require.Len(t, tz.Blocks, 1)
	assert.Equal(t, models.TZBlockH1, tz.Blocks[0].Type)
	assert.Equal(t, "Гастрит у детей: симптомы", tz.Blocks[0].Title)
	assert.NotNil(t, tz.Keywords)
}

func TestClientTZService_OpenCreateFindsExisting(t *testing.T) {
	svc, mockAdapter, _ := newTestTZSvc(t)
	ctx := context.Background()

	// флаг устарел, но ТЗ уже есть
	mockAdapter.EXPECT().GetTZByContentPlan(ctx, "cp1").Return(models.TechnicalSpecification{ID: "tz9"}, nil)

	tz, err := svc.Open(ctx, models.ContentPlanItem{ID: "cp1"})
	require.NoError(t, err)
	assert.Equal(t, "tz9", tz.ID)
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestClientTZService_Save(t *testing.T) {
	svc, mockAdapter, _ := newTestTZSvc(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, models.TechnicalSpecification{})
	assert.ErrorIs(t, err, ErrTZWithoutContentPlan)

	mockAdapter.EXPECT().CreateTZ(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, tz models.TechnicalSpecification) (models.TechnicalSpecification, error) {
			assert.NotNil(t, tz.Blocks)
			assert.NotNil(t, tz.LSIPhrases)
			tz.ID = "new"
			return tz, nil
		},
	)
	created, err := svc.Save(ctx, models.TechnicalSpecification{ContentPlanID: "cp1"})
	require.NoError(t, err)
	assert.Equal(t, "new", created.ID)

	mockAdapter.EXPECT().UpdateTZ(ctx, "new", gomock.Any()).Return(created, nil)
	_, err = svc.Save(ctx, created)
	require.NoError(t, err)

	mockAdapter.EXPECT().DeleteTZ(ctx, "new").Return(nil)
	assert.NoError(t, svc.Delete(ctx, "new"))
}
