package schedule_interviews

import "errors"

var (
	// ErrNoFreeSlots возвращается, когда для кандидата не нашлось
	// ни одного свободного слота в диапазоне планирования
	ErrNoFreeSlots = errors.New("no free slots available for candidate")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
