package update_interview_status

import (
	"context"

	"github.com/m04kA/SMC-InterviewService/internal/service/interviews/models"
)

type InterviewService interface {
	UpdateStatus(ctx context.Context, interviewID int64, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
