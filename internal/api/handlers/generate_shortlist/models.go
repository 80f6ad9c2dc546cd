package generate_shortlist

import (
	"time"

	shortlistUC "github.com/m04kA/SMC-InterviewService/internal/usecase/generate_shortlist"
)

// EntryResponse модель записи шорт-листа для ответа API
type EntryResponse struct {
	Rank           int       `json:"rank"`
	CandidateID    int64     `json:"candidateId"`
	CandidateName  string    `json:"candidateName"`
	CandidateEmail string    `json:"candidateEmail"`
	AIScore        float64   `json:"aiScore"`
	GeneratedAt    time.Time `json:"generatedAt"`
}

// Response сгенерированный шорт-лист для ответа API
type Response struct {
	VacancyID int64           `json:"vacancyId"`
	Entries   []EntryResponse `json:"entries"`
}

// fromUseCaseResponse конвертирует ответ usecase в модель API
func fromUseCaseResponse(resp *shortlistUC.Response) *Response {
	out := &Response{
		VacancyID: resp.VacancyID,
		Entries:   make([]EntryResponse, 0, len(resp.Entries)),
	}
	for _, e := range resp.Entries {
		out.Entries = append(out.Entries, EntryResponse{
			Rank:           e.Rank,
			CandidateID:    e.CandidateID,
			CandidateName:  e.CandidateName,
			CandidateEmail: e.CandidateEmail,
			AIScore:        e.AIScore,
			GeneratedAt:    e.GeneratedAt,
		})
	}
	return out
}
