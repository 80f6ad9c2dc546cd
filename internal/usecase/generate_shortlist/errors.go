package generate_shortlist

import "errors"

var (
	// ErrVacancyNotFound возвращается, когда вакансия не найдена
	ErrVacancyNotFound = errors.New("vacancy not found")

	// ErrNoScoredApplications возвращается, когда по вакансии нет
	// ни одного оцененного отклика
	ErrNoScoredApplications = errors.New("no scored applications for vacancy")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
