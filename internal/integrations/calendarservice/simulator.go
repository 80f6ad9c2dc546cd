package calendarservice

import (
	"context"
	"time"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
)

// Simulator детерминированный источник событий для менеджеров без
// привязанного календаря: возвращает пустой набор занятых интервалов,
// то есть вся рабочая неделя считается свободной
// Используется для локального тестирования и как unbound-вариант адаптера;
// в логах и ответах всегда помечается как "simulated"
type Simulator struct{}

// NewSimulator создает симулятор календаря
func NewSimulator() *Simulator {
	return &Simulator{}
}

// GetBusyEvents возвращает пустой набор занятых интервалов
// Повторные вызовы с одним диапазоном дают одинаковый результат
func (s *Simulator) GetBusyEvents(_ context.Context, _, _ time.Time) ([]domain.BusyInterval, error) {
	return []domain.BusyInterval{}, nil
}
