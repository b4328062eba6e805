package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/content-console/internal/config"
	"github.com/MKhiriev/content-console/internal/logger"
	"github.com/MKhiriev/content-console/internal/utils"
	"github.com/MKhiriev/content-console/models"
	"github.com/go-resty/resty/v2"
)

const defaultContentPlanLimit = 50

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL, request
// timeout and X-Request-ID stamping.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewAPIClient(baseURL, adapterCfg.RequestTimeout, utils.NewUUIDGenerator())

	h := &httpServerAdapter{client: client, logger: log.WithComponent("adapter")}
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token := h.Token(); token != "" {
			req.SetAuthToken(token)
		}
		return nil
	})

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpServerAdapter) jsonRequest(ctx context.Context, body any) *resty.Request {
	return h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}

// check turns a transport error or a non-2xx response into an error, logging
// the failure under op.
func (h *httpServerAdapter) check(op string, resp *resty.Response, err error) error {
	if err != nil {
		h.logger.Debug().Err(err).Str("op", op).Msg("request failed")
		return fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("op", op).Int("status", resp.StatusCode()).Msg("backend returned an error")
		return err
	}
	return nil
}

// ── Auth ─────────────────────────────────────────────────────────────────────

// Login implements [ServerAdapter]. The backend expects an OAuth2 password
// form with the account email in "username".
func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (models.AccessToken, error) {
	var token models.AccessToken

	resp, err := h.request(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		SetResult(&token).
		Post("/auth/login")
	if err = h.check("login", resp, err); err != nil {
		return models.AccessToken{}, err
	}

	return token, nil
}

// Me implements [ServerAdapter].
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.request(ctx).SetResult(&user).Get("/auth/me")
	if err = h.check("me", resp, err); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ── Projects ─────────────────────────────────────────────────────────────────

// ListProjects implements [ServerAdapter].
func (h *httpServerAdapter) ListProjects(ctx context.Context, archived bool) ([]models.Project, error) {
	var projects []models.Project

	resp, err := h.request(ctx).
		SetQueryParam("archived", strconv.FormatBool(archived)).
		SetResult(&projects).
		Get("/projects")
	if err = h.check("list projects", resp, err); err != nil {
		return nil, err
	}

	return projects, nil
}

// GetProject implements [ServerAdapter].
func (h *httpServerAdapter) GetProject(ctx context.Context, id string) (models.Project, error) {
	var project models.Project

	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetResult(&project).
		Get("/projects/{id}")
	if err = h.check("get project", resp, err); err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// CreateProject implements [ServerAdapter].
func (h *httpServerAdapter) CreateProject(ctx context.Context, p models.ProjectCreate) (models.Project, error) {
	var project models.Project

	resp, err := h.jsonRequest(ctx, p).
		SetResult(&project).
		Post("/projects")
	if err = h.check("create project", resp, err); err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// UpdateProject implements [ServerAdapter].
func (h *httpServerAdapter) UpdateProject(ctx context.Context, id string, patch models.ProjectUpdate) (models.Project, error) {
	var project models.Project

	resp, err := h.jsonRequest(ctx, patch).
		SetPathParam("id", id).
		SetResult(&project).
		Patch("/projects/{id}")
	if err = h.check("update project", resp, err); err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// ArchiveProject implements [ServerAdapter].
func (h *httpServerAdapter) ArchiveProject(ctx context.Context, id string) (models.Project, error) {
	return h.projectAction(ctx, "archive", id)
}

// RestoreProject implements [ServerAdapter].
func (h *httpServerAdapter) RestoreProject(ctx context.Context, id string) (models.Project, error) {
	return h.projectAction(ctx, "restore", id)
}

func (h *httpServerAdapter) projectAction(ctx context.Context, action, id string) (models.Project, error) {
	var project models.Project

	resp, err := h.request(ctx).
		SetPathParams(map[string]string{"id": id, "action": action}).
		SetResult(&project).
		Post("/projects/{id}/{action}")
	if err = h.check(action+" project", resp, err); err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// DeleteProject implements [ServerAdapter].
func (h *httpServerAdapter) DeleteProject(ctx context.Context, id string, hard bool) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetQueryParam("hard", strconv.FormatBool(hard)).
		Delete("/projects/{id}")
	return h.check("delete project", resp, err)
}

// ── Content plan ─────────────────────────────────────────────────────────────

func contentPlanQuery(filter models.ContentPlanFilter, paged bool) map[string]string {
	params := make(map[string]string, 8)
	set := func(key, value string) {
		if value != "" {
			params[key] = value
		}
	}

	set("project_id", filter.ProjectID)
	set("search", filter.Search)
	set("status", filter.Status)
	set("period", filter.Period)
	set("author", filter.Author)
	set("reviewing_doctor", filter.ReviewingDoctor)

	if paged {
		limit := filter.Limit
		if limit <= 0 {
			limit = defaultContentPlanLimit
		}
		offset := filter.Offset
		if offset < 0 {
			offset = 0
		}
		params["limit"] = strconv.Itoa(limit)
		params["offset"] = strconv.Itoa(offset)
	}

	return params
}

// ListContentPlan implements [ServerAdapter]. Empty filter fields are not
// sent; Limit defaults to 50 and Offset to 0.
func (h *httpServerAdapter) ListContentPlan(ctx context.Context, filter models.ContentPlanFilter) ([]models.ContentPlanItem, error) {
	var items []models.ContentPlanItem

	resp, err := h.request(ctx).
		SetQueryParams(contentPlanQuery(filter, true)).
		SetResult(&items).
		Get("/content-plan")
	if err = h.check("list content plan", resp, err); err != nil {
		return nil, err
	}

	return items, nil
}

// CountContentPlan implements [ServerAdapter].
func (h *httpServerAdapter) CountContentPlan(ctx context.Context, filter models.ContentPlanFilter) (int, error) {
	var count models.ContentPlanCount

	resp, err := h.request(ctx).
		SetQueryParams(contentPlanQuery(filter, false)).
		SetResult(&count).
		Get("/content-plan/count")
	if err = h.check("count content plan", resp, err); err != nil {
		return 0, err
	}

	return count.Total, nil
}

// CreateContentPlan implements [ServerAdapter].
func (h *httpServerAdapter) CreateContentPlan(ctx context.Context, req models.ContentPlanCreate) ([]models.ContentPlanItem, error) {
	var items []models.ContentPlanItem

	resp, err := h.jsonRequest(ctx, req).
		SetResult(&items).
		Post("/content-plan")
	if err = h.check("create content plan", resp, err); err != nil {
		return nil, err
	}

	return items, nil
}

// UpdateContentPlan implements [ServerAdapter].
func (h *httpServerAdapter) UpdateContentPlan(ctx context.Context, id string, item models.ContentPlanItem) (models.ContentPlanItem, error) {
	var updated models.ContentPlanItem

	resp, err := h.jsonRequest(ctx, models.ContentPlanUpdate{Item: item}).
		SetPathParam("id", id).
		SetResult(&updated).
		Patch("/content-plan/{id}")
	if err = h.check("update content plan", resp, err); err != nil {
		return models.ContentPlanItem{}, err
	}

	return updated, nil
}

// DeleteContentPlan implements [ServerAdapter]. The ids travel as a JSON
// array in the DELETE body.
func (h *httpServerAdapter) DeleteContentPlan(ctx context.Context, ids []string) (int, error) {
	var deleted models.ContentPlanDeleted

	resp, err := h.jsonRequest(ctx, ids).
		SetResult(&deleted).
		Delete("/content-plan")
	if err = h.check("delete content plan", resp, err); err != nil {
		return 0, err
	}

	return deleted.Deleted, nil
}

// ListDirections implements [ServerAdapter].
func (h *httpServerAdapter) ListDirections(ctx context.Context, projectID string) ([]string, error) {
	var directions []string

	resp, err := h.request(ctx).
		SetPathParam("id", projectID).
		SetResult(&directions).
		Get("/dicts/projects/{id}/directions")
	if err = h.check("list directions", resp, err); err != nil {
		return nil, err
	}

	return directions, nil
}

// ── Cluster registry ─────────────────────────────────────────────────────────

// ListClusterRegistry implements [ServerAdapter].
func (h *httpServerAdapter) ListClusterRegistry(ctx context.Context, projectID string) ([]models.ClusterRegistryRow, error) {
	var rows []models.ClusterRegistryRow

	resp, err := h.request(ctx).
		SetQueryParam("project_id", projectID).
		SetResult(&rows).
		Get("/cluster-registry")
	if err = h.check("list cluster registry", resp, err); err != nil {
		return nil, err
	}

	return rows, nil
}

// UpsertClusterRegistryRow implements [ServerAdapter].
func (h *httpServerAdapter) UpsertClusterRegistryRow(ctx context.Context, row models.ClusterRegistryRow) (models.ClusterRegistryRow, error) {
	var saved models.ClusterRegistryRow

	resp, err := h.jsonRequest(ctx, row).
		SetResult(&saved).
		Post("/cluster-registry")
	if err = h.check("upsert cluster registry row", resp, err); err != nil {
		return models.ClusterRegistryRow{}, err
	}

	return saved, nil
}

// UpdateClusterRegistryRow implements [ServerAdapter].
func (h *httpServerAdapter) UpdateClusterRegistryRow(ctx context.Context, id string, patch models.ClusterRegistryPatch) (models.ClusterRegistryRow, error) {
	var saved models.ClusterRegistryRow

	resp, err := h.jsonRequest(ctx, patch).
		SetPathParam("id", id).
		SetResult(&saved).
		Patch("/cluster-registry/{id}")
	if err = h.check("update cluster registry row", resp, err); err != nil {
		return models.ClusterRegistryRow{}, err
	}

	return saved, nil
}

// DeleteClusterRegistryRow implements [ServerAdapter].
func (h *httpServerAdapter) DeleteClusterRegistryRow(ctx context.Context, id string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Delete("/cluster-registry/{id}")
	return h.check("delete cluster registry row", resp, err)
}

// BulkUpsertClusterRegistry implements [ServerAdapter].
func (h *httpServerAdapter) BulkUpsertClusterRegistry(ctx context.Context, bulk models.ClusterRegistryBulk) error {
	resp, err := h.jsonRequest(ctx, bulk).Post("/cluster-registry/bulk")
	return h.check("bulk upsert cluster registry", resp, err)
}

// ImportClusterRegistryCSV implements [ServerAdapter].
func (h *httpServerAdapter) ImportClusterRegistryCSV(ctx context.Context, projectID, fileName string, csv io.Reader) (models.ClusterImportResult, error) {
	var result models.ClusterImportResult

	resp, err := h.request(ctx).
		SetQueryParam("project_id", projectID).
		SetFileReader("file", fileName, csv).
		SetResult(&result).
		Post("/cluster-registry/import-csv")
	if err = h.check("import cluster registry csv", resp, err); err != nil {
		return models.ClusterImportResult{}, err
	}

	return result, nil
}

// ── Queries ──────────────────────────────────────────────────────────────────

func queryFilterParams(filter models.QueryFilter, paged bool) map[string]string {
	params := make(map[string]string, 6)
	set := func(key, value string) {
		if value != "" {
			params[key] = value
		}
	}

	set("project_id", filter.ProjectID)
	set("search", filter.Search)
	set("direction", filter.Direction)
	set("cluster", filter.Cluster)

	if paged {
		limit := filter.Limit
		if limit <= 0 {
			limit = defaultContentPlanLimit
		}
		params["limit"] = strconv.Itoa(limit)
		params["offset"] = strconv.Itoa(max(filter.Offset, 0))
	}

	return params
}

// ListQueries implements [ServerAdapter].
func (h *httpServerAdapter) ListQueries(ctx context.Context, filter models.QueryFilter) ([]models.QueryRow, error) {
	var rows []models.QueryRow

	resp, err := h.request(ctx).
		SetQueryParams(queryFilterParams(filter, true)).
		SetResult(&rows).
		Get("/queries")
	if err = h.check("list queries", resp, err); err != nil {
		return nil, err
	}

	return rows, nil
}

// CountQueries implements [ServerAdapter].
func (h *httpServerAdapter) CountQueries(ctx context.Context, filter models.QueryFilter) (int, error) {
	var count models.QueryCount

	resp, err := h.request(ctx).
		SetQueryParams(queryFilterParams(filter, false)).
		SetResult(&count).
		Get("/queries/count")
	if err = h.check("count queries", resp, err); err != nil {
		return 0, err
	}

	return count.Total, nil
}

// BulkUpdateQueries implements [ServerAdapter].
func (h *httpServerAdapter) BulkUpdateQueries(ctx context.Context, projectID string, update models.QueryBulkUpdate) (int, error) {
	var result models.QueryBulkResult

	resp, err := h.jsonRequest(ctx, update).
		SetQueryParam("project_id", projectID).
		SetResult(&result).
		Post("/queries/bulk")
	if err = h.check("bulk update queries", resp, err); err != nil {
		return 0, err
	}

	return result.Updated, nil
}

// DeleteQueries implements [ServerAdapter].
func (h *httpServerAdapter) DeleteQueries(ctx context.Context, projectID string, ids []string) (int, error) {
	var result models.QueryDeleted

	resp, err := h.jsonRequest(ctx, models.QueryIDs{IDs: ids}).
		SetQueryParam("project_id", projectID).
		SetResult(&result).
		Post("/queries/delete")
	if err = h.check("delete queries", resp, err); err != nil {
		return 0, err
	}

	return result.Deleted, nil
}

// UndoQueries implements [ServerAdapter].
func (h *httpServerAdapter) UndoQueries(ctx context.Context, projectID string, undo models.QueryUndo) (int, error) {
	var result models.QueryReverted

	resp, err := h.jsonRequest(ctx, undo).
		SetQueryParam("project_id", projectID).
		SetResult(&result).
		Post("/queries/undo")
	if err = h.check("undo queries", resp, err); err != nil {
		return 0, err
	}

	return result.Reverted, nil
}

// ListQueryVersions implements [ServerAdapter].
func (h *httpServerAdapter) ListQueryVersions(ctx context.Context, queryID string) ([]models.QueryVersion, error) {
	var versions []models.QueryVersion

	resp, err := h.request(ctx).
		SetPathParam("id", queryID).
		SetResult(&versions).
		Get("/queries/{id}/versions")
	if err = h.check("list query versions", resp, err); err != nil {
		return nil, err
	}

	return versions, nil
}

// ListClusters implements [ServerAdapter].
func (h *httpServerAdapter) ListClusters(ctx context.Context, projectID string) ([]string, error) {
	var clusters []string

	resp, err := h.request(ctx).
		SetPathParam("id", projectID).
		SetResult(&clusters).
		Get("/dicts/projects/{id}/clusters")
	if err = h.check("list clusters", resp, err); err != nil {
		return nil, err
	}

	return clusters, nil
}

// ── Technical specifications ─────────────────────────────────────────────────

// GetTZ implements [ServerAdapter].
func (h *httpServerAdapter) GetTZ(ctx context.Context, id string) (models.TechnicalSpecification, error) {
	var tz models.TechnicalSpecification

	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetResult(&tz).
		Get("/tz/{id}")
	if err = h.check("get tz", resp, err); err != nil {
		return models.TechnicalSpecification{}, err
	}

	return tz, nil
}

// GetTZByContentPlan implements [ServerAdapter].
func (h *httpServerAdapter) GetTZByContentPlan(ctx context.Context, contentPlanID string) (models.TechnicalSpecification, error) {
	var tz models.TechnicalSpecification

	resp, err := h.request(ctx).
		SetPathParam("id", contentPlanID).
		SetResult(&tz).
		Get("/tz/content-plan/{id}")
	if err = h.check("get tz by content plan", resp, err); err != nil {
		return models.TechnicalSpecification{}, err
	}

	return tz, nil
}

// CreateTZ implements [ServerAdapter].
func (h *httpServerAdapter) CreateTZ(ctx context.Context, tz models.TechnicalSpecification) (models.TechnicalSpecification, error) {
	var saved models.TechnicalSpecification

	resp, err := h.jsonRequest(ctx, tz).
		SetResult(&saved).
		Post("/tz")
	if err = h.check("create tz", resp, err); err != nil {
		return models.TechnicalSpecification{}, err
	}

	return saved, nil
}

// UpdateTZ implements [ServerAdapter].
func (h *httpServerAdapter) UpdateTZ(ctx context.Context, id string, tz models.TechnicalSpecification) (models.TechnicalSpecification, error) {
	var saved models.TechnicalSpecification

	resp, err := h.jsonRequest(ctx, tz).
		SetPathParam("id", id).
		SetResult(&saved).
		Put("/tz/{id}")
	if err = h.check("update tz", resp, err); err != nil {
		return models.TechnicalSpecification{}, err
	}

	return saved, nil
}

// DeleteTZ implements [ServerAdapter].
func (h *httpServerAdapter) DeleteTZ(ctx context.Context, id string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Delete("/tz/{id}")
	return h.check("delete tz", resp, err)
}

// ── Analytics ────────────────────────────────────────────────────────────────

// GetAnalyticsReport implements [ServerAdapter].
func (h *httpServerAdapter) GetAnalyticsReport(ctx context.Context, projectID string) (models.AnalyticsReport, error) {
	var report models.AnalyticsReport

	req := h.request(ctx).SetResult(&report)
	if projectID != "" {
		req.SetQueryParam("project_id", projectID)
	}

	resp, err := req.Get("/analytics/report")
	if err = h.check("analytics report", resp, err); err != nil {
		return models.AnalyticsReport{}, err
	}

	return report, nil
}
