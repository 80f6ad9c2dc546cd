package score_applications

import (
	"context"

	scoringUC "github.com/m04kA/SMC-InterviewService/internal/usecase/score_applications"
)

type ScoringUseCase interface {
	Execute(ctx context.Context, req *scoringUC.Request) (*scoringUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
