package get_available_slots

import "errors"

var (
	// ErrVacancyNotFound возвращается, когда вакансия не найдена
	ErrVacancyNotFound = errors.New("vacancy not found")

	// ErrCalendarUnavailable возвращается, когда привязанный календарь
	// менеджера не отвечает; решение о fallback принимает вызывающий
	ErrCalendarUnavailable = errors.New("manager calendar is unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
