package upsert_calendar_integration

import (
	"context"

	"github.com/m04kA/SMC-InterviewService/internal/service/interviews/models"
)

type InterviewService interface {
	UpsertIntegration(ctx context.Context, req *models.UpsertIntegrationRequest) (*models.IntegrationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
