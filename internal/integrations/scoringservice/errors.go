package scoringservice

import "errors"

var (
	// ErrScoringUnavailable возвращается при недоступности сервиса скоринга
	// Кандидат исключается из ранжирования до следующей попытки
	ErrScoringUnavailable = errors.New("scoringservice client: scoring unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("scoringservice client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("scoringservice client: internal error")
)
