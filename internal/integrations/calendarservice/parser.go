package calendarservice

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
)

// ParseBusyIntervals извлекает VEVENT-блоки из ответа CalDAV-сервера
// Работает и с multistatus-ответом со встроенным iCalendar, и с "голым" ICS
// События без DTSTART или DTEND отбрасываются
func ParseBusyIntervals(multistatus string) []domain.BusyInterval {
	var busy []domain.BusyInterval

	parts := strings.Split(multistatus, "BEGIN:VEVENT")
	for _, part := range parts[1:] {
		block, _, found := strings.Cut(part, "END:VEVENT")
		if !found {
			continue
		}

		var start, end *time.Time
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(line, "DTSTART"):
				start = parseICSDateTimeLine(line)
			case strings.HasPrefix(line, "DTEND"):
				end = parseICSDateTimeLine(line)
			}
		}

		if start == nil || end == nil {
			continue
		}
		if !start.Before(*end) {
			continue
		}

		busy = append(busy, domain.BusyInterval{
			Start: start.UTC(),
			End:   end.UTC(),
		})
	}

	return busy
}

// parseICSDateTimeLine парсит строку вида
// DTSTART:20250929T100000Z или DTSTART;TZID=...:20250929T100000
func parseICSDateTimeLine(line string) *time.Time {
	_, value, found := strings.Cut(line, ":")
	if !found {
		return nil
	}
	value = strings.TrimSpace(value)

	// Значения без зоны трактуем как UTC: календарь нормализован сервером
	layouts := []string{
		"20060102T150405Z",
		"20060102T150405",
		"20060102",
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return &t
		}
	}

	return nil
}
