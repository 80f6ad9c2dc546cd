package get_vacancy_shortlist

import (
	"context"

	"github.com/m04kA/SMC-InterviewService/internal/service/interviews/models"
)

type InterviewService interface {
	GetVacancyShortlist(ctx context.Context, vacancyID int64) (*models.ShortlistResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
