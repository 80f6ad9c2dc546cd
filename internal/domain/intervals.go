package domain

import (
	"sort"
	"time"
)

// MergeAndClip intersects each busy interval with [windowStart, windowEnd),
// drops intervals that do not overlap the window, merges overlapping ones and
// returns the result sorted by start. No two returned intervals overlap.
func MergeAndClip(busy []BusyInterval, windowStart, windowEnd time.Time) []BusyInterval {
	clipped := make([]BusyInterval, 0, len(busy))
	for _, b := range busy {
		start := b.Start
		end := b.End
		if start.Before(windowStart) {
			start = windowStart
		}
		if end.After(windowEnd) {
			end = windowEnd
		}
		if start.Before(end) {
			clipped = append(clipped, BusyInterval{Start: start, End: end})
		}
	}

	sort.Slice(clipped, func(i, j int) bool {
		return clipped[i].Start.Before(clipped[j].Start)
	})

	merged := make([]BusyInterval, 0, len(clipped))
	for _, b := range clipped {
		if len(merged) > 0 && b.Start.Before(merged[len(merged)-1].End) {
			last := &merged[len(merged)-1]
			if b.End.After(last.End) {
				last.End = b.End
			}
			continue
		}
		merged = append(merged, b)
	}

	return merged
}

// SliceWindow greedily emits back-to-back slots of exactly durationMinutes
// starting at windowStart. A trailing window shorter than the duration is
// never emitted as a partial slot.
func SliceWindow(windowStart, windowEnd time.Time, durationMinutes int) []Slot {
	if durationMinutes <= 0 {
		return nil
	}

	step := time.Duration(durationMinutes) * time.Minute
	var slots []Slot

	for start := windowStart; !start.Add(step).After(windowEnd); start = start.Add(step) {
		slots = append(slots, Slot{
			Start:           start,
			End:             start.Add(step),
			DurationMinutes: durationMinutes,
			Available:       true,
		})
	}

	return slots
}

// FreeSlotsForRange computes the free working-hours slots of the given
// duration between rangeStart and rangeEnd, excluding busy intervals,
// weekends and anything at or before now. All computation is UTC; the busy
// walk is day-scoped, so intervals spanning a day boundary are clipped
// correctly per day.
func FreeSlotsForRange(busy []BusyInterval, rangeStart, rangeEnd time.Time, durationMinutes int, now time.Time) []Slot {
	var slots []Slot

	current := rangeStart.UTC()
	end := rangeEnd.UTC()

	for current.Before(end) {
		if current.Weekday() == time.Saturday || current.Weekday() == time.Sunday {
			next := current.AddDate(0, 0, 1)
			current = time.Date(next.Year(), next.Month(), next.Day(), WorkdayStartHour, 0, 0, 0, time.UTC)
			continue
		}

		dayStart := time.Date(current.Year(), current.Month(), current.Day(), WorkdayStartHour, 0, 0, 0, time.UTC)
		dayEnd := time.Date(current.Year(), current.Month(), current.Day(), WorkdayEndHour, 0, 0, 0, time.UTC)
		if dayEnd.After(end) {
			dayEnd = end
		}

		pointer := current
		if dayStart.After(pointer) {
			pointer = dayStart
		}

		for _, b := range MergeAndClip(busy, dayStart, dayEnd) {
			if pointer.Before(b.Start) {
				windowEnd := b.Start
				if windowEnd.After(dayEnd) {
					windowEnd = dayEnd
				}
				slots = append(slots, SliceWindow(pointer, windowEnd, durationMinutes)...)
			}
			if b.End.After(pointer) {
				pointer = b.End
			}
			if !pointer.Before(dayEnd) {
				break
			}
		}

		if pointer.Before(dayEnd) {
			slots = append(slots, SliceWindow(pointer, dayEnd, durationMinutes)...)
		}

		current = dayStart.AddDate(0, 0, 1)
	}

	future := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if s.Start.After(now) {
			future = append(future, s)
		}
	}

	return future
}
