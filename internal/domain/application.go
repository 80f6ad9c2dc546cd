package domain

import "time"

// Application represents a candidate's application to a vacancy
type Application struct {
	ID        int64
	VacancyID int64

	CandidateID    int64
	CandidateName  string
	CandidateEmail string

	// Extracted CV text used as scoring input
	CVText string

	// AI score out of 10; nil until the scoring gateway succeeds
	AIScore    *float64
	Commentary string
	ScoredAt   *time.Time

	CreatedAt time.Time
}

// IsScored returns true if the application has a usable AI score
func (a *Application) IsScored() bool {
	return a.AIScore != nil
}

// ShortlistEntry represents one ranked candidate in a vacancy shortlist.
// Shortlists are regenerated wholesale; entries are never updated in place.
type ShortlistEntry struct {
	ID            int64
	VacancyID     int64
	ApplicationID int64

	CandidateID    int64
	CandidateName  string
	CandidateEmail string

	Rank        int
	AIScore     float64
	GeneratedAt time.Time
}
