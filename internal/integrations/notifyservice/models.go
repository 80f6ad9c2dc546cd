package notifyservice

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// sendRequest тело запроса на отправку письма
type sendRequest struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// sendResponse ответ сервиса отправки
type sendResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
