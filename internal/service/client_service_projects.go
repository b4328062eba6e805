package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/content-console/internal/adapter"
	"github.com/MKhiriev/content-console/internal/logger"
	"github.com/MKhiriev/content-console/models"
)

type clientProjectService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientProjectService(serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientProjectService {
	return &clientProjectService{adapter: serverAdapter, logger: log}
}

func (p *clientProjectService) List(ctx context.Context, archived bool) ([]models.Project, error) {
	return p.adapter.ListProjects(ctx, archived)
}

func (p *clientProjectService) Get(ctx context.Context, id string) (models.Project, error) {
	return p.adapter.GetProject(ctx, id)
}

func (p *clientProjectService) Create(ctx context.Context, project models.ProjectCreate) (models.Project, error) {
	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		return models.Project{}, ErrEmptyProjectName
	}
	project.Region = models.PlanString(models.PlanValue(trimOptional(project.Region)))
	project.Domain = models.PlanString(models.PlanValue(trimOptional(project.Domain)))

	return p.adapter.CreateProject(ctx, project)
}

func (p *clientProjectService) Update(ctx context.Context, id string, patch models.ProjectUpdate) (models.Project, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return models.Project{}, ErrEmptyProjectName
		}
		patch.Name = &name
	}
	patch.Region = trimOptional(patch.Region)
	patch.Domain = trimOptional(patch.Domain)

	return p.adapter.UpdateProject(ctx, id, patch)
}

func (p *clientProjectService) Archive(ctx context.Context, id string) (models.Project, error) {
	project, err := p.adapter.ArchiveProject(ctx, id)
	if err == nil || !canFallback(err) {
		return project, err
	}

	p.logger.Debug().Err(err).Str("func", "clientProjectService.Archive").Str("id", id).Msg("archive endpoint failed, patching")
	return p.setArchived(ctx, id, true)
}

func (p *clientProjectService) Restore(ctx context.Context, id string) (models.Project, error) {
	project, err := p.adapter.RestoreProject(ctx, id)
	if err == nil || !canFallback(err) {
		return project, err
	}

	p.logger.Debug().Err(err).Str("func", "clientProjectService.Restore").Str("id", id).Msg("restore endpoint failed, patching")
	return p.setArchived(ctx, id, false)
}

func (p *clientProjectService) Delete(ctx context.Context, id string, hard bool) error {
	err := p.adapter.DeleteProject(ctx, id, hard)
	if err == nil || !canFallback(err) {
		return err
	}

	p.logger.Debug().Err(err).Str("func", "clientProjectService.Delete").Str("id", id).Msg("delete endpoint failed, archiving")
	if _, err = p.setArchived(ctx, id, true); err != nil {
		return fmt.Errorf("delete project fallback: %w", err)
	}
	return nil
}

func (p *clientProjectService) setArchived(ctx context.Context, id string, archived bool) (models.Project, error) {
	return p.adapter.UpdateProject(ctx, id, models.ProjectUpdate{IsArchived: &archived})
}

// canFallback reports whether a failed project action may be retried with a
// PATCH. An expired session is never retried.
func canFallback(err error) bool {
	return !errors.Is(err, adapter.ErrUnauthorized) && !errors.Is(err, context.Canceled)
}

func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	return &trimmed
}
