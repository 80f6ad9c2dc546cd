package interview

import "errors"

var (
	// ErrInterviewNotFound возвращается, когда интервью не найдено
	ErrInterviewNotFound = errors.New("interview.repository: interview not found")

	// ErrAlreadyScheduled возвращается при попытке создать второе интервью
	// для пары (вакансия, кандидат); нарушение уникального ограничения
	// трактуется как "уже обработано" и безопасно для повторных прогонов
	ErrAlreadyScheduled = errors.New("interview.repository: interview already scheduled for this candidate")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("interview.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("interview.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("interview.repository: failed to scan row")
)
