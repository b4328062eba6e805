package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/MKhiriev/content-console/internal/adapter"
	"github.com/MKhiriev/content-console/internal/logger"
	"github.com/MKhiriev/content-console/models"
)

const defaultQueryPageSize = 200

type clientQueryService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientQueryService(serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientQueryService {
	return &clientQueryService{adapter: serverAdapter, logger: log}
}

func (c *clientQueryService) List(ctx context.Context, filter models.QueryFilter) (models.QueryPage, error) {
	if filter.ProjectID == "" {
		return models.QueryPage{}, ErrNoQueryProject
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultQueryPageSize
	}
	filter.Limit = min(filter.Limit, maxPageSize)
	filter.Offset = max(filter.Offset, 0)
	filter.Search = strings.TrimSpace(filter.Search)

	rows, err := c.adapter.ListQueries(ctx, filter)
	if err != nil {
		return models.QueryPage{}, fmt.Errorf("list queries: %w", err)
	}

	total, err := c.adapter.CountQueries(ctx, filter)
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "clientQueryService.List").Msg("count unavailable")
		total = filter.Offset + len(rows)
	}

	return models.QueryPage{Items: rows, Total: total, Limit: filter.Limit, Offset: filter.Offset}, nil
}

func (c *clientQueryService) Directions(ctx context.Context, projectID string) ([]string, error) {
	if projectID == "" {
		return nil, nil
	}
	return c.adapter.ListDirections(ctx, projectID)
}

func (c *clientQueryService) Clusters(ctx context.Context, projectID string) ([]string, error) {
	if projectID == "" {
		return nil, nil
	}
	return c.adapter.ListClusters(ctx, projectID)
}

func (c *clientQueryService) Bulk(ctx context.Context, projectID string, update models.QueryBulkUpdate) (int, error) {
	if projectID == "" {
		return 0, ErrNoQueryProject
	}
	update.IDs = uniqueNonEmpty(update.IDs)
	if len(update.IDs) == 0 {
		return 0, ErrNoQueriesSelected
	}

	update.SetTags = cleanTags(update.SetTags)
	update.AddTags = cleanTags(update.AddTags)
	update.RemoveTags = cleanTags(update.RemoveTags)
	if update.SetDate != nil {
		d := strings.TrimSpace(*update.SetDate)
		if d != "" {
			if _, err := time.Parse(time.DateOnly, d); err != nil {
				return 0, fmt.Errorf("%w: %q", ErrInvalidQueryDate, d)
			}
		}
		update.SetDate = &d
	}
	if update.SetWSFlag != nil && *update.SetWSFlag < 0 {
		return 0, ErrInvalidWSFlag
	}
	if !update.HasChanges() {
		return 0, ErrNothingToUpdate
	}

	return c.adapter.BulkUpdateQueries(ctx, projectID, update)
}

func (c *clientQueryService) Delete(ctx context.Context, projectID string, ids []string) (int, error) {
	if projectID == "" {
		return 0, ErrNoQueryProject
	}
	ids = uniqueNonEmpty(ids)
	if len(ids) == 0 {
		return 0, nil
	}
	return c.adapter.DeleteQueries(ctx, projectID, ids)
}

func (c *clientQueryService) Undo(ctx context.Context, projectID string, undo models.QueryUndo) (int, error) {
	if projectID == "" {
		return 0, ErrNoQueryProject
	}
	undo.IDs = uniqueNonEmpty(undo.IDs)
	if len(undo.IDs) == 0 {
		return 0, ErrNoQueriesSelected
	}
	return c.adapter.UndoQueries(ctx, projectID, undo)
}

func (c *clientQueryService) Versions(ctx context.Context, queryID string) ([]models.QueryVersion, error) {
	if queryID == "" {
		return nil, ErrNoQueriesSelected
	}
	versions, err := c.adapter.ListQueryVersions(ctx, queryID)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(versions, func(a, b models.QueryVersion) int { return b.Version - a.Version })
	return versions, nil
}

// QueryChange is one column that differs between the snapshots of a
// version.
type QueryChange struct {
	Field  string
	Before string
	After  string
}

// VersionChanges lists the columns changed by v, sorted by name. A null or
// missing value is rendered as an empty string.
func VersionChanges(v models.QueryVersion) []QueryChange {
	before := gjson.ParseBytes(v.Before)
	after := gjson.ParseBytes(v.After)

	fields := map[string]struct{}{}
	collect := func(key, _ gjson.Result) bool {
		fields[key.String()] = struct{}{}
		return true
	}
	before.ForEach(collect)
	after.ForEach(collect)

	changes := make([]QueryChange, 0, len(fields))
	for field := range fields {
		b, a := before.Get(gjson.Escape(field)), after.Get(gjson.Escape(field))
		if b.Raw == a.Raw {
			continue
		}
		changes = append(changes, QueryChange{Field: field, Before: snapshotValue(b), After: snapshotValue(a)})
	}
	slices.SortFunc(changes, func(x, y QueryChange) int { return strings.Compare(x.Field, y.Field) })
	return changes
}

func snapshotValue(r gjson.Result) string {
	switch {
	case !r.Exists(), r.Type == gjson.Null:
		return ""
	case r.IsArray():
		parts := make([]string, 0, len(r.Array()))
		for _, el := range r.Array() {
			parts = append(parts, el.String())
		}
		return strings.Join(parts, ", ")
	default:
		return r.String()
	}
}

// cleanTags trims tags and drops blanks and repeats, keeping order.
func cleanTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || slices.Contains(out, tag) {
			continue
		}
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func uniqueNonEmpty(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}
