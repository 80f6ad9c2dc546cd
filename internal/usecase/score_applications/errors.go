package score_applications

import "errors"

var (
	// ErrVacancyNotFound возвращается, когда вакансия не найдена
	ErrVacancyNotFound = errors.New("vacancy not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
