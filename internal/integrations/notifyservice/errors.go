package notifyservice

import "errors"

var (
	// ErrSendFailed возвращается, когда письмо не было отправлено
	// Неудачная отправка не откатывает уже запланированное интервью
	ErrSendFailed = errors.New("notifyservice client: send failed")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("notifyservice client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifyservice client: internal error")
)
