// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the console and the
// content-planning backend REST API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from HTTP. Error values defined in errors.go are mapped from HTTP
// status codes by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrUnauthorized] for 401) and
// [errors.As] with [*APIError] to read the backend's "detail" message.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/content-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the content-planning backend.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
//
// Every method sends the stored bearer token when one is set.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	// An empty token stops sending the Authorization header.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter.
	Token() string

	// Login exchanges credentials for an access token via the form-encoded
	// POST /auth/login. It does not store the token.
	Login(ctx context.Context, username, password string) (models.AccessToken, error)

	// Me returns the profile of the token owner (GET /auth/me).
	Me(ctx context.Context) (models.User, error)

	// ListProjects returns the active or the archived projects.
	ListProjects(ctx context.Context, archived bool) ([]models.Project, error)
	// GetProject returns a single project.
	GetProject(ctx context.Context, id string) (models.Project, error)
	// CreateProject creates a project.
	CreateProject(ctx context.Context, project models.ProjectCreate) (models.Project, error)
	// UpdateProject patches a project.
	UpdateProject(ctx context.Context, id string, patch models.ProjectUpdate) (models.Project, error)
	// ArchiveProject calls POST /projects/{id}/archive.
	ArchiveProject(ctx context.Context, id string) (models.Project, error)
	// RestoreProject calls POST /projects/{id}/restore.
	RestoreProject(ctx context.Context, id string) (models.Project, error)
	// DeleteProject calls DELETE /projects/{id}; hard removes the project
	// instead of soft-deleting it.
	DeleteProject(ctx context.Context, id string, hard bool) error

	// ListContentPlan returns one page of content plan items.
	ListContentPlan(ctx context.Context, filter models.ContentPlanFilter) ([]models.ContentPlanItem, error)
	// CountContentPlan returns the number of items matching filter,
	// ignoring its Limit and Offset.
	CountContentPlan(ctx context.Context, filter models.ContentPlanFilter) (int, error)
	// CreateContentPlan creates the item once per project of req.
	CreateContentPlan(ctx context.Context, req models.ContentPlanCreate) ([]models.ContentPlanItem, error)
	// UpdateContentPlan patches a content plan item.
	UpdateContentPlan(ctx context.Context, id string, item models.ContentPlanItem) (models.ContentPlanItem, error)
	// DeleteContentPlan deletes items by id and returns how many were removed.
	DeleteContentPlan(ctx context.Context, ids []string) (int, error)

	// ListDirections returns the direction dictionary of a project.
	ListDirections(ctx context.Context, projectID string) ([]string, error)

	// ListClusterRegistry returns the cluster registry of a project.
	ListClusterRegistry(ctx context.Context, projectID string) ([]models.ClusterRegistryRow, error)
	// UpsertClusterRegistryRow creates a row or updates the row with the
	// same project and name.
	UpsertClusterRegistryRow(ctx context.Context, row models.ClusterRegistryRow) (models.ClusterRegistryRow, error)
	// UpdateClusterRegistryRow patches a row.
	UpdateClusterRegistryRow(ctx context.Context, id string, patch models.ClusterRegistryPatch) (models.ClusterRegistryRow, error)
	// DeleteClusterRegistryRow deletes a row.
	DeleteClusterRegistryRow(ctx context.Context, id string) error

	// BulkUpsertClusterRegistry creates or updates rows of one project by
	// name in a single call.
	BulkUpsertClusterRegistry(ctx context.Context, bulk models.ClusterRegistryBulk) error
	// ImportClusterRegistryCSV uploads a registry CSV as the multipart field
	// "file" and returns the import summary.
	ImportClusterRegistryCSV(ctx context.Context, projectID, fileName string, csv io.Reader) (models.ClusterImportResult, error)

	// ListQueries returns one page of the semantic core of a project.
	ListQueries(ctx context.Context, filter models.QueryFilter) ([]models.QueryRow, error)
	// CountQueries returns the number of queries matching filter, ignoring
	// its Limit and Offset.
	CountQueries(ctx context.Context, filter models.QueryFilter) (int, error)
	// BulkUpdateQueries applies update to the queries of update.IDs and
	// returns how many rows were changed.
	BulkUpdateQueries(ctx context.Context, projectID string, update models.QueryBulkUpdate) (int, error)
	// DeleteQueries deletes queries by id and returns how many were removed.
	DeleteQueries(ctx context.Context, projectID string, ids []string) (int, error)
	// UndoQueries rolls queries back and returns how many were reverted.
	UndoQueries(ctx context.Context, projectID string, undo models.QueryUndo) (int, error)
	// ListQueryVersions returns the change log of one query, newest first.
	ListQueryVersions(ctx context.Context, queryID string) ([]models.QueryVersion, error)
	// ListClusters returns the cluster dictionary of a project.
	ListClusters(ctx context.Context, projectID string) ([]string, error)

	// GetTZ returns a technical specification by id.
	GetTZ(ctx context.Context, id string) (models.TechnicalSpecification, error)
	// GetTZByContentPlan returns the technical specification of a content
	// plan item; [ErrNotFound] when there is none.
	GetTZByContentPlan(ctx context.Context, contentPlanID string) (models.TechnicalSpecification, error)
	// CreateTZ creates a technical specification.
	CreateTZ(ctx context.Context, tz models.TechnicalSpecification) (models.TechnicalSpecification, error)
	// UpdateTZ replaces a technical specification.
	UpdateTZ(ctx context.Context, id string, tz models.TechnicalSpecification) (models.TechnicalSpecification, error)
	// DeleteTZ deletes a technical specification.
	DeleteTZ(ctx context.Context, id string) error

	// GetAnalyticsReport returns the analytics report, for all projects when
	// projectID is empty.
	GetAnalyticsReport(ctx context.Context, projectID string) (models.AnalyticsReport, error)
}
