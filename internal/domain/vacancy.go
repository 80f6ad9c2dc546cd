package domain

import (
	"strings"
	"time"
)

// VacancyStatus represents the lifecycle status of a vacancy
type VacancyStatus string

const (
	VacancyAwaitingApproval       VacancyStatus = "awaiting_approval"
	VacancyApproved               VacancyStatus = "approved"
	VacancyCollectingApplications VacancyStatus = "collecting_applications"
	VacancyClosed                 VacancyStatus = "closed"
	VacancyRejected               VacancyStatus = "rejected"
)

// Vacancy represents an open position with a hiring manager
type Vacancy struct {
	ID         int64
	Title      string
	Department string
	Status     VacancyStatus

	// Denormalized manager data for notifications
	ManagerName  string
	ManagerEmail string

	// Comma-separated keywords used as scoring requirements
	Keywords string

	CollectionEndsAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// KeywordList splits the comma-separated keywords into a normalized list
func (v *Vacancy) KeywordList() []string {
	parts := strings.Split(v.Keywords, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			keywords = append(keywords, p)
		}
	}
	return keywords
}

// IsCollecting returns true if the vacancy is collecting applications
// and therefore eligible for scheduling runs
func (v *Vacancy) IsCollecting() bool {
	return v.Status == VacancyCollectingApplications
}
