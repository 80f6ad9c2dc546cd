package scoringservice

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ScoreRequest запрос на скоринг CV кандидата
type ScoreRequest struct {
	CVText       string   `json:"cvText"`
	Requirements []string `json:"requirements"`
}

// ScoreResult результат скоринга: оценка 0..10, разбивка и комментарий
type ScoreResult struct {
	Score      float64            `json:"score"`
	Breakdown  map[string]float64 `json:"breakdown"`
	Commentary string             `json:"commentary"`
}
