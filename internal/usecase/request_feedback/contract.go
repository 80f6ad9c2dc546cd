package request_feedback

import (
	"context"
	"time"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
)

// InterviewRepository интерфейс репозитория интервью
type InterviewRepository interface {
	// ListFeedbackDue возвращает завершившиеся интервью без запроса обратной связи
	ListFeedbackDue(ctx context.Context, now time.Time) ([]*domain.Interview, error)
	MarkFeedbackRequested(ctx context.Context, id int64, sentAt time.Time) error
}

// NotifyClient интерфейс клиента сервиса уведомлений
type NotifyClient interface {
	Send(ctx context.Context, recipient, subject, body string) error
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
