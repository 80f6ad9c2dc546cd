package shortlist

import "errors"

var (
	// ErrShortlistNotFound возвращается, когда шорт-лист вакансии пуст
	ErrShortlistNotFound = errors.New("shortlist.repository: shortlist not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("shortlist.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("shortlist.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("shortlist.repository: failed to scan row")
)
