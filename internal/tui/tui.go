package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/content-console/internal/logger"
	"github.com/MKhiriev/content-console/internal/service"
	"github.com/MKhiriev/content-console/internal/session"
	"github.com/MKhiriev/content-console/models"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	ErrUserQuit    = errors.New("вышел из программы")
	ErrNilServices = errors.New("tui: services are nil")
)

type TUI struct {
	services  *service.ClientServices
	session   *session.Store
	buildInfo models.BuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, sessionStore *session.Store, buildInfo models.BuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || sessionStore == nil {
		return nil, ErrNilServices
	}
	return &TUI{services: services, session: sessionStore, buildInfo: buildInfo, logger: log}, nil
}

// Run shows the console until the user quits or ctx is cancelled. The
// login page is skipped when a token has been restored.
func (t *TUI) Run(ctx context.Context) error {
	host := newModalHost()
	pageCtx := withModalHost(ctx, host)

	start := pageLogin
	if t.services.AuthService.Session().HasToken() {
		start = pageHome
	}

	root := NewRootModel(ctx, t.pages(pageCtx), start, host, t.services.AuthService, t.buildInfo)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := t.session.Subscribe(func(s models.AuthSession) {
		go program.Send(sessionChangedMsg{session: s})
	})
	defer unsubscribe()

	finalModel, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Str("func", "TUI.Run").Msg("tui stopped by context")
			return nil
		}
		t.logger.Err(err).Str("func", "TUI.Run").Msg("tui exited with error")
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	s := t.services
	return map[string]tea.Model{
		pageLogin:           NewLoginModel(ctx, s.AuthService),
		pageHome:            NewHomeModel(ctx, s.AuthService),
		pageProjects:        NewProjectsModel(ctx, s.ProjectService),
		pageContentPlan:     NewContentPlanModel(ctx, s.ContentPlanService, s.ProjectService, s.TZService),
		pageClusterRegistry: NewClusterRegistryModel(ctx, s.ClusterRegistryService, s.ProjectService),
		pageQueries:         NewQueriesModel(ctx, s.QueryService, s.ProjectService),
		pageAnalytics:       NewAnalyticsModel(ctx, s.AnalyticsService, s.ProjectService),
	}
}
