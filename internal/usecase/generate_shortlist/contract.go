package generate_shortlist

import (
	"context"
	"time"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
)

// VacancyRepository интерфейс репозитория вакансий
type VacancyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vacancy, error)
}

// ApplicationRepository интерфейс репозитория откликов
type ApplicationRepository interface {
	// ListScored возвращает оцененные отклики по убыванию оценки
	ListScored(ctx context.Context, vacancyID int64) ([]*domain.Application, error)
}

// ShortlistRepository интерфейс репозитория шорт-листов
type ShortlistRepository interface {
	ReplaceForVacancy(ctx context.Context, vacancyID int64, entries []*domain.ShortlistEntry) error
	ListByVacancy(ctx context.Context, vacancyID int64) ([]*domain.ShortlistEntry, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
