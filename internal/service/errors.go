package service

import "errors"

var (
	ErrEmptyCredentials = errors.New("username and password are required")
	ErrLoginOnServer    = errors.New("login on server failed")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNoAccessToken    = errors.New("server returned no access token")

	ErrEmptyProjectName   = errors.New("project name is required")
	ErrNoProjectsSelected = errors.New("at least one project must be selected")
	ErrNoItemID           = errors.New("content plan item has no id")

	ErrEmptyClusterName = errors.New("cluster name is required")
	ErrNoClusterProject = errors.New("cluster row has no project")
	ErrUnknownFlag      = errors.New("unknown cluster registry flag")
	ErrNoClusterRows    = errors.New("no cluster rows to save")
	ErrNotCSV           = errors.New("import file must be a .csv file")

	ErrNoQueryProject    = errors.New("queries need a project")
	ErrNoQueriesSelected = errors.New("no queries selected")
	ErrNothingToUpdate   = errors.New("bulk update changes nothing")
	ErrInvalidQueryDate  = errors.New("date must be YYYY-MM-DD")
	ErrInvalidWSFlag     = errors.New("ws flag must not be negative")

	ErrTZWithoutContentPlan = errors.New("technical specification is not bound to a content plan item")
)
