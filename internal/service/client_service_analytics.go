package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/content-console/internal/adapter"
	"github.com/MKhiriev/content-console/models"
)

type clientAnalyticsService struct {
	adapter adapter.ServerAdapter
}

func NewClientAnalyticsService(serverAdapter adapter.ServerAdapter) ClientAnalyticsService {
	return &clientAnalyticsService{adapter: serverAdapter}
}

func (c *clientAnalyticsService) Report(ctx context.Context, projectID string) (models.AnalyticsReport, error) {
	report, err := c.adapter.GetAnalyticsReport(ctx, projectID)
	if err != nil {
		return models.AnalyticsReport{}, fmt.Errorf("analytics report: %w", err)
	}
	if report.PageTypes == nil {
		report.PageTypes = []models.PageTypeAnalytics{}
	}
	if report.Directions == nil {
		report.Directions = []models.DirectionAnalytics{}
	}
	return report, nil
}
