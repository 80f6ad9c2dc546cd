package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
	"github.com/m04kA/SMC-InterviewService/internal/integrations/calendarservice"
)

// VacancyRepository интерфейс репозитория вакансий
type VacancyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vacancy, error)
}

// IntegrationRepository интерфейс репозитория привязок календарей
type IntegrationRepository interface {
	GetActiveByManagerEmail(ctx context.Context, managerEmail string) (*domain.CalendarIntegration, error)
}

// CalendarFactory фабрика источников занятости календаря.
// Вариант (bound/simulated) разрешается один раз на запрос
type CalendarFactory interface {
	Bound(integration *domain.CalendarIntegration) calendarservice.EventSource
	Simulated() calendarservice.EventSource
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
