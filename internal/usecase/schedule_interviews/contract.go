package schedule_interviews

import (
	"context"
	"time"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
	availabilityUC "github.com/m04kA/SMC-InterviewService/internal/usecase/get_available_slots"
)

// VacancyRepository интерфейс репозитория вакансий
type VacancyRepository interface {
	ListCollecting(ctx context.Context) ([]*domain.Vacancy, error)
}

// ShortlistRepository интерфейс репозитория шорт-листов
type ShortlistRepository interface {
	// ListByVacancy возвращает шорт-лист в порядке рангов
	ListByVacancy(ctx context.Context, vacancyID int64) ([]*domain.ShortlistEntry, error)
}

// InterviewRepository интерфейс репозитория интервью
type InterviewRepository interface {
	Exists(ctx context.Context, vacancyID, candidateID int64) (bool, error)
	CreateSlot(ctx context.Context, slot *domain.InterviewSlot) (*domain.InterviewSlot, error)
	CreateInterview(ctx context.Context, interview *domain.Interview) (*domain.Interview, error)
	MarkManagerNotified(ctx context.Context, id int64, sentAt time.Time) error
	MarkCandidateNotified(ctx context.Context, id int64, sentAt time.Time) error
}

// AvailabilityProvider интерфейс получения свободных слотов менеджера.
// Слоты запрашиваются заново перед каждым кандидатом, чтобы занятость
// календаря учитывалась максимально свежей
type AvailabilityProvider interface {
	Execute(ctx context.Context, req *availabilityUC.Request) (*availabilityUC.Response, error)
}

// NotifyClient интерфейс клиента сервиса уведомлений
type NotifyClient interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс метрик планирования
type Metrics interface {
	IncSchedulingRun(service, result string)
	IncInterviewScheduled(service, source string)
	IncNotification(service, result string)
	IncCalendarFallback(service string)
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

// NopMetrics заглушка метрик, когда сбор метрик выключен
type NopMetrics struct{}

func (NopMetrics) IncSchedulingRun(service, result string)      {}
func (NopMetrics) IncInterviewScheduled(service, source string) {}
func (NopMetrics) IncNotification(service, result string)       {}
func (NopMetrics) IncCalendarFallback(service string)           {}
