package service

import (
	"context"
	"time"

	"github.com/MKhiriev/content-console/internal/contentplan"
	"github.com/MKhiriev/content-console/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the console's sign-in workflow on top of the
// session store and the server adapter.
type ClientAuthService interface {
	// Login exchanges credentials for a token, stores it in the session and
	// then fetches the profile. A failed profile fetch is not an error: the
	// returned session carries the token and a nil user.
	Login(ctx context.Context, username, password string) (models.AuthSession, error)

	// RestoreSession rehydrates the session store, hands the stored token to
	// the adapter and refreshes the profile when a token exists.
	RestoreSession(ctx context.Context) (models.AuthSession, error)

	// RefreshProfile re-fetches GET /auth/me for the current token. It is a
	// no-op without a token.
	RefreshProfile(ctx context.Context) error

	// Logout clears the token in the session and the adapter. The user
	// profile is kept.
	Logout(ctx context.Context) error

	// Teardown signs out completely and removes the persisted session.
	Teardown(ctx context.Context) error

	// Session returns the current session snapshot.
	Session() models.AuthSession

	// TokenExpiresAt returns the exp claim of the current token.
	TokenExpiresAt() (time.Time, bool)
}

// ClientProjectService manages projects.
type ClientProjectService interface {
	List(ctx context.Context, archived bool) ([]models.Project, error)
	Get(ctx context.Context, id string) (models.Project, error)
	Create(ctx context.Context, project models.ProjectCreate) (models.Project, error)
	Update(ctx context.Context, id string, patch models.ProjectUpdate) (models.Project, error)
	// Archive falls back to PATCH {is_archived: true} when the archive
	// endpoint fails.
	Archive(ctx context.Context, id string) (models.Project, error)
	// Restore falls back to PATCH {is_archived: false}.
	Restore(ctx context.Context, id string) (models.Project, error)
	// Delete falls back to archiving the project.
	Delete(ctx context.Context, id string, hard bool) error
}

// ClientContentPlanService manages content plan items.
type ClientContentPlanService interface {
	// List returns one page of items together with the total match count.
	List(ctx context.Context, filter models.ContentPlanFilter) (models.ContentPlanPage, error)
	// Create creates item in every project of projectIDs.
	Create(ctx context.Context, projectIDs []string, item models.ContentPlanItem) ([]models.ContentPlanItem, error)
	Update(ctx context.Context, item models.ContentPlanItem) (models.ContentPlanItem, error)
	Delete(ctx context.Context, ids []string) (int, error)
	Directions(ctx context.Context, projectID string) ([]string, error)
	// Group finds the copies of item in all projects.
	Group(ctx context.Context, item models.ContentPlanItem) (contentplan.Group, error)
	// SetProjects copies the group sample into the projects of projectIDs
	// that lack it and deletes the copies of the other projects. It returns
	// the number of created and deleted items.
	SetProjects(ctx context.Context, group contentplan.Group, projectIDs []string) (int, int, error)
	// PageSize is the default page length used by List.
	PageSize() int
}

// ClientClusterRegistryService manages the cluster registry of a project.
type ClientClusterRegistryService interface {
	List(ctx context.Context, projectID string) ([]models.ClusterRegistryRow, error)
	Upsert(ctx context.Context, row models.ClusterRegistryRow) (models.ClusterRegistryRow, error)
	// Toggle flips one boolean flag of row and returns the updated row.
	Toggle(ctx context.Context, row models.ClusterRegistryRow, flag models.ClusterFlag) (models.ClusterRegistryRow, error)
	Delete(ctx context.Context, id string) error
	// BulkUpsert saves rows of one project in a single request.
	BulkUpsert(ctx context.Context, projectID string, rows []models.ClusterRegistryRow) error
	// ImportCSV uploads the CSV file at path into the registry of projectID.
	ImportCSV(ctx context.Context, projectID, path string) (models.ClusterImportResult, error)
}

// ClientQueryService manages the semantic core (search phrases) of a
// project.
type ClientQueryService interface {
	// List returns one page of phrases together with the total match count.
	List(ctx context.Context, filter models.QueryFilter) (models.QueryPage, error)
	Directions(ctx context.Context, projectID string) ([]string, error)
	Clusters(ctx context.Context, projectID string) ([]string, error)
	// Bulk applies update to the phrases of update.IDs and returns how many
	// changed.
	Bulk(ctx context.Context, projectID string, update models.QueryBulkUpdate) (int, error)
	Delete(ctx context.Context, projectID string, ids []string) (int, error)
	// Undo rolls the phrases back to undo.ToVersion or by one change.
	Undo(ctx context.Context, projectID string, undo models.QueryUndo) (int, error)
	// Versions returns the change history of a phrase, newest first.
	Versions(ctx context.Context, queryID string) ([]models.QueryVersion, error)
}

// ClientTZService loads and saves technical specifications.
type ClientTZService interface {
	// Open returns the specification the TZ action of item points to. For a
	// create action it returns an unsaved draft bound to item.
	Open(ctx context.Context, item models.ContentPlanItem) (models.TechnicalSpecification, error)
	// Save creates tz when it has no id and replaces it otherwise.
	Save(ctx context.Context, tz models.TechnicalSpecification) (models.TechnicalSpecification, error)
	Delete(ctx context.Context, id string) error
}

// ClientAnalyticsService reads the analytics dashboard.
type ClientAnalyticsService interface {
	// Report returns the report of one project, or of all projects when
	// projectID is empty.
	Report(ctx context.Context, projectID string) (models.AnalyticsReport, error)
}

// ClientProfileJob defines the contract for a background worker that
// periodically refreshes the signed-in user's profile.
type ClientProfileJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
