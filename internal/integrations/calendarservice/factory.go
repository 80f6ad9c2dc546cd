package calendarservice

import (
	"context"
	"time"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
)

// EventSource источник занятых интервалов календаря
// Реализуется Client (bound) и Simulator (unbound)
type EventSource interface {
	GetBusyEvents(ctx context.Context, from, to time.Time) ([]domain.BusyInterval, error)
}

// Factory создает bound/unbound варианты адаптера календаря
// Вариант разрешается один раз на запрос доступности и дальше не меняется
type Factory struct {
	timeout time.Duration
	log     Logger
}

// NewFactory создает фабрику адаптеров с таймаутом CalDAV-запросов
func NewFactory(timeout time.Duration, log Logger) *Factory {
	return &Factory{
		timeout: timeout,
		log:     log,
	}
}

// Bound создает клиент, привязанный к календарю конкретного менеджера
func (f *Factory) Bound(integration *domain.CalendarIntegration) EventSource {
	return NewClient(
		integration.CalDAVURL,
		integration.Username,
		integration.Password,
		f.timeout,
		f.log,
	)
}

// Simulated создает детерминированный симулятор для unbound-пути
func (f *Factory) Simulated() EventSource {
	return NewSimulator()
}
