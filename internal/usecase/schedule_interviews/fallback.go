package schedule_interviews

import (
	"time"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
)

// syntheticSlots генерирует запасные слоты, когда календарь менеджера
// недоступен: по одному слоту в день, начиная с завтрашнего дня в 10:00 UTC.
// Слоты детерминированы относительно now, чтобы повторный прогон в тот же
// день предлагал те же времена
func syntheticSlots(now time.Time, days, durationMinutes int) []domain.Slot {
	slots := make([]domain.Slot, 0, days)

	first := time.Date(now.Year(), now.Month(), now.Day(),
		domain.FallbackSlotStartHour, 0, 0, 0, time.UTC).AddDate(0, 0, 1)

	for i := 0; i < days; i++ {
		start := first.AddDate(0, 0, i)
		slots = append(slots, domain.Slot{
			Start:           start,
			End:             start.Add(time.Duration(durationMinutes) * time.Minute),
			DurationMinutes: durationMinutes,
			Available:       true,
			Synthetic:       true,
		})
	}

	return slots
}
