package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/content-console/internal/adapter"
	"github.com/MKhiriev/content-console/models"
)

type clientClusterRegistryService struct {
	adapter adapter.ServerAdapter
}

func NewClientClusterRegistryService(serverAdapter adapter.ServerAdapter) ClientClusterRegistryService {
	return &clientClusterRegistryService{adapter: serverAdapter}
}

func (c *clientClusterRegistryService) List(ctx context.Context, projectID string) ([]models.ClusterRegistryRow, error) {
	if projectID == "" {
		return nil, ErrNoClusterProject
	}
	return c.adapter.ListClusterRegistry(ctx, projectID)
}

func (c *clientClusterRegistryService) Upsert(ctx context.Context, row models.ClusterRegistryRow) (models.ClusterRegistryRow, error) {
	row.Name = strings.TrimSpace(row.Name)
	if row.Name == "" {
		return models.ClusterRegistryRow{}, ErrEmptyClusterName
	}
	if row.ProjectID == "" {
		return models.ClusterRegistryRow{}, ErrNoClusterProject
	}
	return c.adapter.UpsertClusterRegistryRow(ctx, row)
}

func (c *clientClusterRegistryService) Toggle(ctx context.Context, row models.ClusterRegistryRow, flag models.ClusterFlag) (models.ClusterRegistryRow, error) {
	var patch models.ClusterRegistryPatch
	switch flag {
	case models.ClusterFlagCore:
		v := !row.HasCore
		patch.HasCore = &v
	case models.ClusterFlagBrief:
		v := !row.HasBrief
		patch.HasBrief = &v
	case models.ClusterFlagPublished:
		v := !row.IsPublished
		patch.IsPublished = &v
	default:
		return models.ClusterRegistryRow{}, ErrUnknownFlag
	}

	return c.adapter.UpdateClusterRegistryRow(ctx, row.ID, patch)
}

func (c *clientClusterRegistryService) Delete(ctx context.Context, id string) error {
	return c.adapter.DeleteClusterRegistryRow(ctx, id)
}

func (c *clientClusterRegistryService) BulkUpsert(ctx context.Context, projectID string, rows []models.ClusterRegistryRow) error {
	if projectID == "" {
		return ErrNoClusterProject
	}
	if len(rows) == 0 {
		return ErrNoClusterRows
	}

	prepared := make([]models.ClusterRegistryRow, 0, len(rows))
	for _, row := range rows {
		row.Name = strings.TrimSpace(row.Name)
		if row.Name == "" {
			return ErrEmptyClusterName
		}
		row.ProjectID = projectID
		prepared = append(prepared, row)
	}

	return c.adapter.BulkUpsertClusterRegistry(ctx, models.ClusterRegistryBulk{ProjectID: projectID, Rows: prepared})
}

func (c *clientClusterRegistryService) ImportCSV(ctx context.Context, projectID, path string) (models.ClusterImportResult, error) {
	if projectID == "" {
		return models.ClusterImportResult{}, ErrNoClusterProject
	}
	path = strings.TrimSpace(path)
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return models.ClusterImportResult{}, ErrNotCSV
	}

	file, err := os.Open(path)
	if err != nil {
		return models.ClusterImportResult{}, fmt.Errorf("open import file: %w", err)
	}
	defer file.Close()

	return c.adapter.ImportClusterRegistryCSV(ctx, projectID, filepath.Base(path), file)
}
