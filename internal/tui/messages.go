package tui

import (
	"github.com/MKhiriev/content-console/internal/contentplan"
	"github.com/MKhiriev/content-console/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageLogin           = "login"
	pageHome            = "home"
	pageProjects        = "projects"
	pageContentPlan     = "content-plan"
	pageClusterRegistry = "cluster-registry"
	pageQueries         = "queries"
	pageAnalytics       = "analytics"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page right after its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// sessionExpiredMsg is emitted by pages when the backend answers 401.
type sessionExpiredMsg struct{}

// sessionChangedMsg carries a session snapshot published by the session
// store.
type sessionChangedMsg struct {
	session models.AuthSession
}

type loginResultMsg struct {
	session models.AuthSession
	err     error
}

type loginNoticeMsg struct {
	text string
}

type signedOutMsg struct {
	err error
}

type projectsLoadedMsg struct {
	projects []models.Project
	err      error
}

type projectOptionsLoadedMsg struct {
	projects []models.Project
	err      error
}

type projectSavedMsg struct {
	project models.Project
	err     error
}

type projectDeletedMsg struct {
	err error
}

type contentPlanLoadedMsg struct {
	page models.ContentPlanPage
	err  error
}

type contentPlanSavedMsg struct {
	items []models.ContentPlanItem
	err   error
}

type contentPlanDeletedMsg struct {
	deleted int
	err     error
}

// directionsLoadedMsg carries the directions shared by the comma-joined
// project ids of forProjects.
type directionsLoadedMsg struct {
	forProjects string
	directions  []string
	err         error
}

type registryLoadedMsg struct {
	projectID string
	rows      []models.ClusterRegistryRow
	err       error
}

type registryRowSavedMsg struct {
	row models.ClusterRegistryRow
	err error
}

type registryRowDeletedMsg struct {
	id  string
	err error
}

// openRegistryMsg opens the cluster registry of a project.
type openRegistryMsg struct {
	projectID string
}

type registryBulkSavedMsg struct {
	count int
	err   error
}

type registryImportedMsg struct {
	result models.ClusterImportResult
	err    error
}

// openQueriesMsg opens the semantic core of a project.
type openQueriesMsg struct {
	projectID string
}

type queriesLoadedMsg struct {
	projectID string
	page      models.QueryPage
	err       error
}

type queryDictsLoadedMsg struct {
	projectID  string
	directions []string
	clusters   []string
	err        error
}

type queriesBulkSavedMsg struct {
	updated int
	err     error
}

// queriesChangedMsg reports a delete or undo of queries.
type queriesChangedMsg struct {
	notice string
	err    error
}

type queryVersionsLoadedMsg struct {
	queryID  string
	versions []models.QueryVersion
	err      error
}

type contentPlanGroupLoadedMsg struct {
	group contentplan.Group
	err   error
}

type contentPlanProjectsSavedMsg struct {
	created int
	deleted int
	err     error
}

type tzOpenedMsg struct {
	tz  models.TechnicalSpecification
	err error
}

type tzSavedMsg struct {
	tz  models.TechnicalSpecification
	err error
}

type analyticsLoadedMsg struct {
	projectID string
	report    models.AnalyticsReport
	err       error
}

type copiedMsg struct {
	what string
	err  error
}
