package vacancy

import "errors"

var (
	// ErrVacancyNotFound возвращается, когда вакансия не найдена
	ErrVacancyNotFound = errors.New("vacancy.repository: vacancy not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("vacancy.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("vacancy.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("vacancy.repository: failed to scan row")
)
