package domain

import "time"

// BusyInterval is a half-open [Start, End) interval during which the manager
// is unavailable. Always UTC-normalized, never persisted.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the interval truly overlaps [start, end).
// Touching boundaries do not count as overlap.
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return b.Start.Before(end) && b.End.After(start)
}

// Slot is a transient candidate interview window of fixed duration.
// It becomes a persisted InterviewSlot only when consumed by a scheduling run.
type Slot struct {
	Start           time.Time
	End             time.Time
	DurationMinutes int
	Available       bool

	// Synthetic marks fallback slots generated without calendar data
	Synthetic bool
}

// Key returns the dedup key for the slot, unique per (start, end)
func (s Slot) Key() string {
	return s.Start.UTC().Format(time.RFC3339) + "_" + s.End.UTC().Format(time.RFC3339)
}

// UsedSlotSet tracks slots consumed within a single scheduling run so that
// two candidates in the same run cannot receive the same slot.
type UsedSlotSet struct {
	keys map[string]struct{}
}

// NewUsedSlotSet creates an empty set
func NewUsedSlotSet() *UsedSlotSet {
	return &UsedSlotSet{keys: make(map[string]struct{})}
}

// Add marks the slot as consumed
func (u *UsedSlotSet) Add(s Slot) {
	u.keys[s.Key()] = struct{}{}
}

// Contains reports whether the slot was already consumed in this run
func (u *UsedSlotSet) Contains(s Slot) bool {
	_, ok := u.keys[s.Key()]
	return ok
}

// Len returns the number of consumed slots
func (u *UsedSlotSet) Len() int {
	return len(u.keys)
}
