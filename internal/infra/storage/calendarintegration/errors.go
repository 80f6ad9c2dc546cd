package calendarintegration

import "errors"

var (
	// ErrIntegrationNotFound возвращается, когда у менеджера нет
	// активной привязки календаря
	ErrIntegrationNotFound = errors.New("calendarintegration.repository: integration not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("calendarintegration.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("calendarintegration.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("calendarintegration.repository: failed to scan row")
)
