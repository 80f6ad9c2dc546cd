package run_scheduling

import (
	"time"

	schedulingUC "github.com/m04kA/SMC-InterviewService/internal/usecase/schedule_interviews"
)

// VacancyResultResponse результат планирования по одной вакансии
type VacancyResultResponse struct {
	VacancyID      int64  `json:"vacancyId"`
	ManagerEmail   string `json:"managerEmail"`
	Source         string `json:"source,omitempty"`
	Scheduled      int    `json:"scheduled"`
	AlreadyHandled int    `json:"alreadyHandled"`
	NoSlots        int    `json:"noSlots"`
	Error          string `json:"error,omitempty"`
}

// Response сводка прогона планирования для ответа API
type Response struct {
	StartedAt            time.Time               `json:"startedAt"`
	FinishedAt           time.Time               `json:"finishedAt"`
	VacanciesProcessed   int                     `json:"vacanciesProcessed"`
	InterviewsScheduled  int                     `json:"interviewsScheduled"`
	SyntheticSlotsUsed   int                     `json:"syntheticSlotsUsed"`
	NotificationFailures int                     `json:"notificationFailures"`
	VacancyErrors        int                     `json:"vacancyErrors"`
	Results              []VacancyResultResponse `json:"results"`
}

// fromUseCaseResponse конвертирует сводку usecase в модель API
func fromUseCaseResponse(resp *schedulingUC.Response) *Response {
	out := &Response{
		StartedAt:            resp.StartedAt,
		FinishedAt:           resp.FinishedAt,
		VacanciesProcessed:   resp.VacanciesProcessed,
		InterviewsScheduled:  resp.InterviewsScheduled,
		SyntheticSlotsUsed:   resp.SyntheticSlotsUsed,
		NotificationFailures: resp.NotificationFailures,
		VacancyErrors:        resp.VacancyErrors,
		Results:              make([]VacancyResultResponse, 0, len(resp.Results)),
	}
	for _, r := range resp.Results {
		out.Results = append(out.Results, VacancyResultResponse{
			VacancyID:      r.VacancyID,
			ManagerEmail:   r.ManagerEmail,
			Source:         r.Source,
			Scheduled:      r.Scheduled,
			AlreadyHandled: r.AlreadyHandled,
			NoSlots:        r.NoSlots,
			Error:          r.Err,
		})
	}
	return out
}
