package get_available_slots

import (
	"time"

	availabilityUC "github.com/m04kA/SMC-InterviewService/internal/usecase/get_available_slots"
)

// SlotResponse модель слота для ответа API
type SlotResponse struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"durationMinutes"`
	Available       bool      `json:"available"`
}

// Response модель ответа со списком свободных слотов
type Response struct {
	VacancyID    int64          `json:"vacancyId"`
	ManagerEmail string         `json:"managerEmail"`
	Source       string         `json:"source"`
	RangeStart   time.Time      `json:"rangeStart"`
	RangeEnd     time.Time      `json:"rangeEnd"`
	Slots        []SlotResponse `json:"slots"`
}

// fromUseCaseResponse конвертирует ответ usecase в модель API
func fromUseCaseResponse(resp *availabilityUC.Response) *Response {
	out := &Response{
		VacancyID:    resp.VacancyID,
		ManagerEmail: resp.ManagerEmail,
		Source:       resp.Source,
		RangeStart:   resp.RangeStart,
		RangeEnd:     resp.RangeEnd,
		Slots:        make([]SlotResponse, 0, len(resp.Slots)),
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			Start:           s.Start,
			End:             s.End,
			DurationMinutes: s.DurationMinutes,
			Available:       s.Available,
		})
	}
	return out
}
