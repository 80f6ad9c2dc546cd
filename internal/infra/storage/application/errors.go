package application

import "errors"

var (
	// ErrApplicationNotFound возвращается, когда отклик не найден
	ErrApplicationNotFound = errors.New("application.repository: application not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("application.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("application.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("application.repository: failed to scan row")
)
