package domain

import "time"

// InterviewStatus represents the status of a scheduled interview
type InterviewStatus string

const (
	InterviewScheduled   InterviewStatus = "scheduled"
	InterviewCompleted   InterviewStatus = "completed"
	InterviewCancelled   InterviewStatus = "cancelled"
	InterviewRescheduled InterviewStatus = "rescheduled"
)

// ValidInterviewStatus reports whether s is a known interview status
func ValidInterviewStatus(s string) bool {
	switch InterviewStatus(s) {
	case InterviewScheduled, InterviewCompleted, InterviewCancelled, InterviewRescheduled:
		return true
	}
	return false
}

// InterviewSlot is a persisted calendar slot consumed by exactly one interview.
// is_available flips to false at creation; slots are not pooled or reused.
type InterviewSlot struct {
	ID           int64
	VacancyID    int64
	ManagerEmail string
	StartTime    time.Time
	EndTime      time.Time
	IsAvailable  bool

	// Synthetic marks fallback slots generated without calendar data
	Synthetic bool

	CreatedAt time.Time
}

// Interview represents a scheduled interview with a shortlisted candidate.
// At most one interview exists per (vacancy, candidate).
type Interview struct {
	ID              int64
	VacancyID       int64
	InterviewSlotID int64

	CandidateID    int64
	CandidateName  string
	CandidateEmail string

	ManagerName  string
	ManagerEmail string

	Status          InterviewStatus
	ScheduledAt     time.Time
	DurationMinutes int
	Synthetic       bool

	ManagerNotified             bool
	CandidateNotified           bool
	ManagerNotificationSentAt   *time.Time
	CandidateNotificationSentAt *time.Time

	FeedbackRequestSent   bool
	FeedbackRequestSentAt *time.Time

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndsAt returns the scheduled end of the interview
func (i *Interview) EndsAt() time.Time {
	return i.ScheduledAt.Add(time.Duration(i.DurationMinutes) * time.Minute)
}

// IsOver reports whether the interview has ended as of now
func (i *Interview) IsOver(now time.Time) bool {
	return i.EndsAt().Before(now)
}
