package score_applications

import (
	"context"
	"time"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
	"github.com/m04kA/SMC-InterviewService/internal/integrations/scoringservice"
)

// VacancyRepository интерфейс репозитория вакансий
type VacancyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vacancy, error)
}

// ApplicationRepository интерфейс репозитория откликов
type ApplicationRepository interface {
	ListUnscored(ctx context.Context, vacancyID int64) ([]*domain.Application, error)
	SetScore(ctx context.Context, id int64, score float64, commentary string, scoredAt time.Time) error
}

// ScoringClient интерфейс клиента сервиса AI-скоринга
type ScoringClient interface {
	ScoreCV(ctx context.Context, req *scoringservice.ScoreRequest) (*scoringservice.ScoreResult, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
