package generate_shortlist

import (
	"context"

	shortlistUC "github.com/m04kA/SMC-InterviewService/internal/usecase/generate_shortlist"
)

type ShortlistUseCase interface {
	Execute(ctx context.Context, req *shortlistUC.Request) (*shortlistUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
