package calendarservice

import "errors"

var (
	// ErrCalendarUnavailable возвращается при недоступности календаря
	// (ошибка транспорта, авторизации или таймаут запроса)
	ErrCalendarUnavailable = errors.New("calendarservice client: calendar unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе CalDAV-сервера
	ErrInvalidResponse = errors.New("calendarservice client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("calendarservice client: internal error")
)
