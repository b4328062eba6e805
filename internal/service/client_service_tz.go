package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/content-console/internal/adapter"
	"github.com/MKhiriev/content-console/internal/contentplan"
	"github.com/MKhiriev/content-console/internal/session"
	"github.com/MKhiriev/content-console/models"
)

type clientTZService struct {
	adapter adapter.ServerAdapter
	session *session.Store
}

func NewClientTZService(serverAdapter adapter.ServerAdapter, sessionStore *session.Store) ClientTZService {
	return &clientTZService{adapter: serverAdapter, session: sessionStore}
}

func (c *clientTZService) Open(ctx context.Context, item models.ContentPlanItem) (tz models.TechnicalSpecification, err error) {
	contentplan.DispatchTZ(item,
		func(contentPlanID string) { tz, err = c.openForContentPlan(ctx, item, contentPlanID) },
		func(tzID string) {
			if tz, err = c.adapter.GetTZ(ctx, tzID); err != nil {
				err = fmt.Errorf("open tz %s: %w", tzID, err)
			}
		},
	)
	return tz, err
}

func (c *clientTZService) openForContentPlan(ctx context.Context, item models.ContentPlanItem, contentPlanID string) (models.TechnicalSpecification, error) {
	// флаг мог устареть: ТЗ уже создано в другой вкладке
	tz, err := c.adapter.GetTZByContentPlan(ctx, contentPlanID)
	if err == nil {
		return tz, nil
	}
	if !errors.Is(err, adapter.ErrNotFound) {
		return models.TechnicalSpecification{}, fmt.Errorf("open tz for %s: %w", contentPlanID, err)
	}

	return c.draft(item), nil
}

func (c *clientTZService) Save(ctx context.Context, tz models.TechnicalSpecification) (models.TechnicalSpecification, error) {
	if tz.ContentPlanID == "" {
		return models.TechnicalSpecification{}, ErrTZWithoutContentPlan
	}
	fillEmptyTZLists(&tz)

	if tz.ID == "" {
		return c.adapter.CreateTZ(ctx, tz)
	}
	return c.adapter.UpdateTZ(ctx, tz.ID, tz)
}

func (c *clientTZService) Delete(ctx context.Context, id string) error {
	return c.adapter.DeleteTZ(ctx, id)
}

func (c *clientTZService) draft(item models.ContentPlanItem) models.TechnicalSpecification {
	tz := models.TechnicalSpecification{
		ContentPlanID: item.ID,
		Title:         models.PlanValue(item.Topic),
		Author:        models.PlanValue(item.Author),
	}
	if tz.Author == "" && c.session != nil {
		tz.Author = c.session.User().DisplayName()
	}
	if meta := contentplan.ParseMetaSeo(item.MetaSeo); meta.H1 != "" {
		tz.Blocks = contentplan.ParseOutline("H1: " + meta.H1)
	}
	fillEmptyTZLists(&tz)
	return tz
}

// fillEmptyTZLists replaces nil slices so that they encode as [] rather
// than null.
func fillEmptyTZLists(tz *models.TechnicalSpecification) {
	if tz.Blocks == nil {
		tz.Blocks = []models.TZBlock{}
	}
	if tz.Keywords == nil {
		tz.Keywords = []string{}
	}
	if tz.LSIPhrases == nil {
		tz.LSIPhrases = []string{}
	}
	if tz.Competitors == nil {
		tz.Competitors = []string{}
	}
}
