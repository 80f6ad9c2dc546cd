package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
)

// Request модель запроса на получение свободных слотов менеджера
type Request struct {
	VacancyID       int64      // ID вакансии, определяет менеджера
	RangeStart      *time.Time // Начало диапазона; по умолчанию текущий момент
	RangeEnd        *time.Time // Конец диапазона; по умолчанию RangeStart + 7 дней
	DurationMinutes int        // Длительность слота; по умолчанию 60 минут
}

// Response модель ответа со списком свободных слотов
type Response struct {
	VacancyID    int64
	ManagerEmail string

	// Source показывает, откуда взята занятость: caldav или simulated
	Source string

	RangeStart time.Time
	RangeEnd   time.Time
	Slots      []domain.Slot
}
