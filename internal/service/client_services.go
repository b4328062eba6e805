package service

import (
	"github.com/MKhiriev/content-console/internal/adapter"
	"github.com/MKhiriev/content-console/internal/logger"
	"github.com/MKhiriev/content-console/internal/session"
)

type ClientServices struct {
	AuthService            ClientAuthService
	ProjectService         ClientProjectService
	ContentPlanService     ClientContentPlanService
	ClusterRegistryService ClientClusterRegistryService
	QueryService           ClientQueryService
	TZService              ClientTZService
	AnalyticsService       ClientAnalyticsService
	ProfileJob             ClientProfileJob
}

func NewClientServices(sessionStore *session.Store, serverAdapter adapter.ServerAdapter, pageSize int, log *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(sessionStore, serverAdapter, log)

	return &ClientServices{
		AuthService:            authSvc,
		ProjectService:         NewClientProjectService(serverAdapter, log),
		ContentPlanService:     NewClientContentPlanService(serverAdapter, pageSize, log),
		ClusterRegistryService: NewClientClusterRegistryService(serverAdapter),
		QueryService:           NewClientQueryService(serverAdapter, log),
		TZService:              NewClientTZService(serverAdapter, sessionStore),
		AnalyticsService:       NewClientAnalyticsService(serverAdapter),
		ProfileJob:             NewClientProfileJob(authSvc, log),
	}
}
