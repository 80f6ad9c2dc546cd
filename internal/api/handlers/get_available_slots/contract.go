package get_available_slots

import (
	"context"

	availabilityUC "github.com/m04kA/SMC-InterviewService/internal/usecase/get_available_slots"
)

type AvailabilityUseCase interface {
	Execute(ctx context.Context, req *availabilityUC.Request) (*availabilityUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
