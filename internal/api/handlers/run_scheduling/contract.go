package run_scheduling

import (
	"context"

	schedulingUC "github.com/m04kA/SMC-InterviewService/internal/usecase/schedule_interviews"
)

type SchedulingUseCase interface {
	Execute(ctx context.Context) (*schedulingUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
