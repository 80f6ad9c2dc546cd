package domain

import "time"

// CalendarIntegration holds per-manager CalDAV calendar credentials.
// A manager without an active integration is scheduled against the
// deterministic slot simulator instead of a live calendar.
type CalendarIntegration struct {
	ID           int64
	ManagerEmail string

	CalDAVURL string
	Username  string
	Password  string

	IsActive bool
	Timezone string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBound returns true if the integration can be used for live calendar queries
func (c *CalendarIntegration) IsBound() bool {
	return c.IsActive && c.CalDAVURL != "" && c.Username != "" && c.Password != ""
}
