package calendarservice

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
)

// icsTimestampLayout формат времени в CalDAV time-range фильтре
const icsTimestampLayout = "20060102T150405Z"

// reportBodyTemplate тело calendar-query REPORT по RFC 4791
const reportBodyTemplate = `<c:calendar-query xmlns:c="urn:ietf:params:xml:ns:caldav" xmlns:d="DAV:">
  <d:prop>
    <d:getetag/>
    <c:calendar-data>
      <c:comp name="VCALENDAR">
        <c:comp name="VEVENT">
          <c:prop name="UID"/>
          <c:prop name="SUMMARY"/>
          <c:prop name="DTSTART"/>
          <c:prop name="DTEND"/>
        </c:comp>
      </c:comp>
    </c:calendar-data>
  </d:prop>
  <c:filter>
    <c:comp-filter name="VCALENDAR">
      <c:comp-filter name="VEVENT">
        <c:time-range start="%s" end="%s"/>
      </c:comp-filter>
    </c:comp-filter>
  </c:filter>
</c:calendar-query>`

// Client CalDAV-клиент для чтения занятых интервалов календаря менеджера
// Календарь читается только на чтение, состояние не изменяется
type Client struct {
	calDAVURL  string
	username   string
	password   string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый CalDAV-клиент с basic-авторизацией
func NewClient(calDAVURL, username, password string, timeout time.Duration, log Logger) *Client {
	return &Client{
		calDAVURL: strings.TrimRight(calDAVURL, "/") + "/",
		username:  username,
		password:  password,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetBusyEvents запрашивает события календаря в диапазоне [from, to) и
// нормализует их в занятые UTC-интервалы
// События без начала или конца отбрасываются
// При любой ошибке транспорта или авторизации возвращает ErrCalendarUnavailable,
// чтобы вызывающий мог выбрать fallback-стратегию
func (c *Client) GetBusyEvents(ctx context.Context, from, to time.Time) ([]domain.BusyInterval, error) {
	body := fmt.Sprintf(reportBodyTemplate,
		from.UTC().Format(icsTimestampLayout),
		to.UTC().Format(icsTimestampLayout),
	)

	req, err := http.NewRequestWithContext(ctx, "REPORT", c.calDAVURL, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/xml; charset=utf-8")
	req.Header.Set("Depth", "1")
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Сюда попадают и таймауты запроса
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrCalendarUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusMultiStatus:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: authentication failed with status %d", ErrCalendarUnavailable, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrCalendarUnavailable, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrCalendarUnavailable, err)
	}

	busy := ParseBusyIntervals(string(raw))
	c.log.Info("CalendarService: fetched %d busy events from %s", len(busy), c.calDAVURL)

	return busy, nil
}
