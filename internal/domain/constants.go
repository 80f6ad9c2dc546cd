package domain

// Working hours for interview slots, UTC
const (
	WorkdayStartHour = 9
	WorkdayEndHour   = 17
)

// Scheduling defaults
const (
	DefaultInterviewDurationMinutes = 60
	DefaultSchedulingRangeDays      = 7
	FallbackSlotStartHour           = 10
	ShortlistSize                   = 5
)

// Score bounds for AI CV scoring
const (
	MinAIScore = 0.0
	MaxAIScore = 10.0
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Calendar source tags distinguish where availability data came from
const (
	CalendarSourceCalDAV    = "caldav"
	CalendarSourceSimulated = "simulated"
	CalendarSourceSynthetic = "synthetic"
)
