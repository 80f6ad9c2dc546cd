package models

import (
	"time"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
)

// InterviewResponse модель интервью для ответа API
type InterviewResponse struct {
	ID              int64     `json:"id"`
	VacancyID       int64     `json:"vacancyId"`
	CandidateID     int64     `json:"candidateId"`
	CandidateName   string    `json:"candidateName"`
	CandidateEmail  string    `json:"candidateEmail"`
	ManagerName     string    `json:"managerName"`
	ManagerEmail    string    `json:"managerEmail"`
	Status          string    `json:"status"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	DurationMinutes int       `json:"durationMinutes"`
	Synthetic       bool      `json:"synthetic"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// InterviewListResponse список интервью вакансии
type InterviewListResponse struct {
	Interviews []InterviewResponse `json:"interviews"`
}

// ShortlistEntryResponse модель записи шорт-листа для ответа API
type ShortlistEntryResponse struct {
	Rank           int       `json:"rank"`
	CandidateID    int64     `json:"candidateId"`
	CandidateName  string    `json:"candidateName"`
	CandidateEmail string    `json:"candidateEmail"`
	AIScore        float64   `json:"aiScore"`
	GeneratedAt    time.Time `json:"generatedAt"`
}

// ShortlistResponse шорт-лист вакансии в порядке рангов
type ShortlistResponse struct {
	VacancyID int64                    `json:"vacancyId"`
	Entries   []ShortlistEntryResponse `json:"entries"`
}

// UpdateStatusRequest запрос на смену статуса интервью
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpsertIntegrationRequest запрос на привязку календаря менеджера
type UpsertIntegrationRequest struct {
	ManagerEmail string `json:"managerEmail"`
	CalDAVURL    string `json:"caldavUrl"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	Timezone     string `json:"timezone,omitempty"`
	IsActive     bool   `json:"isActive"`
}

// IntegrationResponse модель привязки календаря для ответа API.
// Пароль наружу не отдается
type IntegrationResponse struct {
	ID           int64  `json:"id"`
	ManagerEmail string `json:"managerEmail"`
	CalDAVURL    string `json:"caldavUrl"`
	Username     string `json:"username"`
	Timezone     string `json:"timezone,omitempty"`
	IsActive     bool   `json:"isActive"`
}

// FromDomainInterview конвертирует domain модель в модель ответа
func FromDomainInterview(i *domain.Interview) *InterviewResponse {
	return &InterviewResponse{
		ID:              i.ID,
		VacancyID:       i.VacancyID,
		CandidateID:     i.CandidateID,
		CandidateName:   i.CandidateName,
		CandidateEmail:  i.CandidateEmail,
		ManagerName:     i.ManagerName,
		ManagerEmail:    i.ManagerEmail,
		Status:          string(i.Status),
		ScheduledAt:     i.ScheduledAt,
		DurationMinutes: i.DurationMinutes,
		Synthetic:       i.Synthetic,
		Notes:           i.Notes,
		CreatedAt:       i.CreatedAt,
	}
}

// FromDomainInterviewList конвертирует список domain моделей в модель ответа
func FromDomainInterviewList(interviews []*domain.Interview) *InterviewListResponse {
	resp := &InterviewListResponse{
		Interviews: make([]InterviewResponse, 0, len(interviews)),
	}
	for _, i := range interviews {
		resp.Interviews = append(resp.Interviews, *FromDomainInterview(i))
	}
	return resp
}

// FromDomainShortlist конвертирует шорт-лист в модель ответа
func FromDomainShortlist(vacancyID int64, entries []*domain.ShortlistEntry) *ShortlistResponse {
	resp := &ShortlistResponse{
		VacancyID: vacancyID,
		Entries:   make([]ShortlistEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, ShortlistEntryResponse{
			Rank:           e.Rank,
			CandidateID:    e.CandidateID,
			CandidateName:  e.CandidateName,
			CandidateEmail: e.CandidateEmail,
			AIScore:        e.AIScore,
			GeneratedAt:    e.GeneratedAt,
		})
	}
	return resp
}

// FromDomainIntegration конвертирует привязку календаря в модель ответа
func FromDomainIntegration(i *domain.CalendarIntegration) *IntegrationResponse {
	return &IntegrationResponse{
		ID:           i.ID,
		ManagerEmail: i.ManagerEmail,
		CalDAVURL:    i.CalDAVURL,
		Username:     i.Username,
		Timezone:     i.Timezone,
		IsActive:     i.IsActive,
	}
}
