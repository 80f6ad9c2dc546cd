package score_applications

// Response сводка скоринга откликов для ответа API
type Response struct {
	VacancyID int64 `json:"vacancyId"`
	Total     int   `json:"total"`
	Scored    int   `json:"scored"`
	Skipped   int   `json:"skipped"`
}
