package request_feedback

import "time"

// Response сводка прогона запросов обратной связи
type Response struct {
	StartedAt  time.Time
	FinishedAt time.Time

	Due    int // Интервью, по которым пора запросить обратную связь
	Sent   int // Успешно отправленные запросы
	Failed int // Неудачные отправки; будут повторены следующим прогоном
}
