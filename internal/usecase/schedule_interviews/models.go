package schedule_interviews

import "time"

// VacancyResult результат планирования по одной вакансии
type VacancyResult struct {
	VacancyID    int64
	ManagerEmail string

	// Source показывает источник слотов: caldav, simulated или synthetic
	Source string

	Scheduled      int // Сколько интервью создано
	AlreadyHandled int // Кандидаты, у которых интервью уже было
	NoSlots        int // Кандидаты, оставшиеся без слота
	Err            string
}

// Response сводка прогона планирования
type Response struct {
	StartedAt  time.Time
	FinishedAt time.Time

	VacanciesProcessed   int
	InterviewsScheduled  int
	SyntheticSlotsUsed   int
	NotificationFailures int
	VacancyErrors        int

	Results []VacancyResult
}
