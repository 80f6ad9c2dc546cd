package interviews

import (
	"context"
	"time"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
)

// InterviewRepository интерфейс репозитория интервью
type InterviewRepository interface {
	GetByVacancy(ctx context.Context, vacancyID int64) ([]*domain.Interview, error)
	UpdateStatus(ctx context.Context, id int64, status domain.InterviewStatus) error
}

// VacancyRepository интерфейс репозитория вакансий
type VacancyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vacancy, error)
}

// ShortlistRepository интерфейс репозитория шорт-листов
type ShortlistRepository interface {
	ListByVacancy(ctx context.Context, vacancyID int64) ([]*domain.ShortlistEntry, error)
}

// IntegrationRepository интерфейс репозитория привязок календарей
type IntegrationRepository interface {
	Upsert(ctx context.Context, integration *domain.CalendarIntegration) (*domain.CalendarIntegration, error)
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
