package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/content-console/internal/adapter"
	"github.com/MKhiriev/content-console/internal/contentplan"
	"github.com/MKhiriev/content-console/internal/logger"
	"github.com/MKhiriev/content-console/models"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

type clientContentPlanService struct {
	adapter  adapter.ServerAdapter
	logger   *logger.Logger
	pageSize int
}

func NewClientContentPlanService(serverAdapter adapter.ServerAdapter, pageSize int, log *logger.Logger) ClientContentPlanService {
	return &clientContentPlanService{adapter: serverAdapter, pageSize: clampPageSize(pageSize), logger: log}
}

func (c *clientContentPlanService) PageSize() int {
	return c.pageSize
}

func (c *clientContentPlanService) List(ctx context.Context, filter models.ContentPlanFilter) (models.ContentPlanPage, error) {
	if filter.Limit <= 0 {
		filter.Limit = c.pageSize
	}
	filter.Limit = clampPageSize(filter.Limit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	filter.Search = strings.TrimSpace(filter.Search)

	items, err := c.adapter.ListContentPlan(ctx, filter)
	if err != nil {
		return models.ContentPlanPage{}, fmt.Errorf("list content plan: %w", err)
	}

	total, err := c.adapter.CountContentPlan(ctx, filter)
	if err != nil {
		// без счётчика страница всё равно показывается
		c.logger.Warn().Err(err).Str("func", "clientContentPlanService.List").Msg("count unavailable")
		total = filter.Offset + len(items)
	}

	return models.ContentPlanPage{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

func (c *clientContentPlanService) Create(ctx context.Context, projectIDs []string, item models.ContentPlanItem) ([]models.ContentPlanItem, error) {
	ids := make([]string, 0, len(projectIDs))
	seen := make(map[string]struct{}, len(projectIDs))
	for _, id := range projectIDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, ErrNoProjectsSelected
	}

	item.ID = ""
	item.ProjectID = nil
	prepareItem(&item)

	return c.adapter.CreateContentPlan(ctx, models.ContentPlanCreate{ProjectIDs: ids, Item: item})
}

func (c *clientContentPlanService) Update(ctx context.Context, item models.ContentPlanItem) (models.ContentPlanItem, error) {
	if item.ID == "" {
		return models.ContentPlanItem{}, ErrNoItemID
	}
	prepareItem(&item)

	return c.adapter.UpdateContentPlan(ctx, item.ID, item)
}

func (c *clientContentPlanService) Delete(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return c.adapter.DeleteContentPlan(ctx, ids)
}

func (c *clientContentPlanService) Directions(ctx context.Context, projectID string) ([]string, error) {
	if projectID == "" {
		return nil, nil
	}
	return c.adapter.ListDirections(ctx, projectID)
}

// groupSearchLimit caps the lookup of a theme's copies.
const groupSearchLimit = maxPageSize

func (c *clientContentPlanService) Group(ctx context.Context, item models.ContentPlanItem) (contentplan.Group, error) {
	if item.ID == "" {
		return contentplan.Group{}, ErrNoItemID
	}

	filter := models.ContentPlanFilter{Limit: groupSearchLimit}
	if item.Topic != nil {
		filter.Search = strings.TrimSpace(*item.Topic)
	}
	items, err := c.adapter.ListContentPlan(ctx, filter)
	if err != nil {
		return contentplan.Group{}, fmt.Errorf("find theme copies: %w", err)
	}

	return contentplan.GroupOf(items, item), nil
}

func (c *clientContentPlanService) SetProjects(ctx context.Context, group contentplan.Group, projectIDs []string) (int, int, error) {
	add, remove := group.Diff(projectIDs)
	// снять тему со всех проектов нельзя, для этого есть удаление
	if len(add) == 0 && len(remove) == len(group.PerProject) {
		return 0, 0, ErrNoProjectsSelected
	}

	created := 0
	if len(add) > 0 {
		sample := group.Copy()
		prepareItem(&sample)
		items, err := c.adapter.CreateContentPlan(ctx, models.ContentPlanCreate{ProjectIDs: add, Item: sample})
		if err != nil {
			return 0, 0, fmt.Errorf("copy theme into projects: %w", err)
		}
		created = len(items)
	}

	deleted := 0
	if len(remove) > 0 {
		n, err := c.adapter.DeleteContentPlan(ctx, remove)
		if err != nil {
			return created, 0, fmt.Errorf("remove theme from projects: %w", err)
		}
		deleted = n
	}

	c.logger.Info().
		Str("func", "clientContentPlanService.SetProjects").
		Int("created", created).
		Int("deleted", deleted).
		Msg("theme projects updated")

	return created, deleted, nil
}

// prepareItem normalizes the free-text link columns before they are sent.
func prepareItem(item *models.ContentPlanItem) {
	if item.Link != nil {
		item.Link = contentplan.NormalizeURL(*item.Link)
	}
	if item.Review != nil {
		item.Review = contentplan.NormalizeURL(*item.Review)
	}
}

func clampPageSize(size int) int {
	switch {
	case size <= 0:
		return defaultPageSize
	case size > maxPageSize:
		return maxPageSize
	default:
		return size
	}
}
