package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
	integrationRepo "github.com/m04kA/SMC-InterviewService/internal/infra/storage/calendarintegration"
	vacancyRepo "github.com/m04kA/SMC-InterviewService/internal/infra/storage/vacancy"
	"github.com/m04kA/SMC-InterviewService/internal/integrations/calendarservice"
	"github.com/m04kA/SMC-InterviewService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeVacancyRepo struct {
	vacancy *domain.Vacancy
	err     error
}

func (f *fakeVacancyRepo) GetByID(ctx context.Context, id int64) (*domain.Vacancy, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.vacancy, nil
}

type fakeIntegrationRepo struct {
	integration *domain.CalendarIntegration
	err         error
}

func (f *fakeIntegrationRepo) GetActiveByManagerEmail(ctx context.Context, managerEmail string) (*domain.CalendarIntegration, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.integration, nil
}

type fakeEventSource struct {
	busy []domain.BusyInterval
	err  error

	calls int
}

func (f *fakeEventSource) GetBusyEvents(ctx context.Context, from, to time.Time) ([]domain.BusyInterval, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.busy, nil
}

type fakeFactory struct {
	bound     *fakeEventSource
	simulated *fakeEventSource
}

func (f *fakeFactory) Bound(integration *domain.CalendarIntegration) calendarservice.EventSource {
	return f.bound
}

func (f *fakeFactory) Simulated() calendarservice.EventSource {
	return f.simulated
}

// 2 июня 2025 - понедельник
var (
	testNow        = time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	testRangeStart = time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	testRangeEnd   = time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
)

func newTestUseCase(
	vacancies *fakeVacancyRepo,
	integrations *fakeIntegrationRepo,
	factory *fakeFactory,
) *UseCase {
	uc := NewUseCase(vacancies, integrations, factory, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func testVacancy() *domain.Vacancy {
	return &domain.Vacancy{
		ID:           1,
		Title:        "Backend Engineer",
		Status:       domain.VacancyCollectingApplications,
		ManagerName:  "Anna",
		ManagerEmail: "anna@example.com",
	}
}

func TestExecute_SimulatedWhenNoIntegration(t *testing.T) {
	factory := &fakeFactory{
		bound:     &fakeEventSource{},
		simulated: &fakeEventSource{},
	}
	uc := newTestUseCase(
		&fakeVacancyRepo{vacancy: testVacancy()},
		&fakeIntegrationRepo{err: integrationRepo.ErrIntegrationNotFound},
		factory,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		VacancyID:  1,
		RangeStart: ptr.Ptr(testRangeStart),
		RangeEnd:   ptr.Ptr(testRangeEnd),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.CalendarSourceSimulated, resp.Source)
	assert.Equal(t, 1, factory.simulated.calls)
	assert.Equal(t, 0, factory.bound.calls)

	// Пустая занятость - весь рабочий день свободен
	require.Len(t, resp.Slots, 8)
	assert.Equal(t, time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC), resp.Slots[0].Start)
}

func TestExecute_BoundIntegration(t *testing.T) {
	factory := &fakeFactory{
		bound: &fakeEventSource{
			busy: []domain.BusyInterval{
				{
					Start: time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC),
					End:   time.Date(2025, 6, 3, 11, 0, 0, 0, time.UTC),
				},
			},
		},
		simulated: &fakeEventSource{},
	}
	uc := newTestUseCase(
		&fakeVacancyRepo{vacancy: testVacancy()},
		&fakeIntegrationRepo{integration: &domain.CalendarIntegration{
			ManagerEmail: "anna@example.com",
			CalDAVURL:    "https://dav.example.com/anna/",
			Username:     "anna",
			Password:     "secret",
			IsActive:     true,
		}},
		factory,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		VacancyID:  1,
		RangeStart: ptr.Ptr(testRangeStart),
		RangeEnd:   ptr.Ptr(testRangeEnd),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.CalendarSourceCalDAV, resp.Source)
	assert.Equal(t, "anna@example.com", resp.ManagerEmail)

	// Занятый час 10:00-11:00 выпадает из восьми слотов
	require.Len(t, resp.Slots, 7)
	assert.Equal(t, time.Date(2025, 6, 3, 11, 0, 0, 0, time.UTC), resp.Slots[1].Start)
}

func TestExecute_InactiveIntegrationUsesSimulator(t *testing.T) {
	factory := &fakeFactory{
		bound:     &fakeEventSource{},
		simulated: &fakeEventSource{},
	}
	uc := newTestUseCase(
		&fakeVacancyRepo{vacancy: testVacancy()},
		&fakeIntegrationRepo{integration: &domain.CalendarIntegration{
			ManagerEmail: "anna@example.com",
			IsActive:     false,
		}},
		factory,
	)

	resp, err := uc.Execute(context.Background(), &Request{VacancyID: 1})

	require.NoError(t, err)
	assert.Equal(t, domain.CalendarSourceSimulated, resp.Source)
	assert.Equal(t, 1, factory.simulated.calls)
}

func TestExecute_CalendarUnavailable(t *testing.T) {
	factory := &fakeFactory{
		bound: &fakeEventSource{err: calendarservice.ErrCalendarUnavailable},
	}
	uc := newTestUseCase(
		&fakeVacancyRepo{vacancy: testVacancy()},
		&fakeIntegrationRepo{integration: &domain.CalendarIntegration{
			ManagerEmail: "anna@example.com",
			CalDAVURL:    "https://dav.example.com/anna/",
			Username:     "anna",
			Password:     "secret",
			IsActive:     true,
		}},
		factory,
	)

	_, err := uc.Execute(context.Background(), &Request{VacancyID: 1})

	require.ErrorIs(t, err, ErrCalendarUnavailable)
}

func TestExecute_VacancyNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeVacancyRepo{err: vacancyRepo.ErrVacancyNotFound},
		&fakeIntegrationRepo{},
		&fakeFactory{},
	)

	_, err := uc.Execute(context.Background(), &Request{VacancyID: 42})

	require.ErrorIs(t, err, ErrVacancyNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeVacancyRepo{}, &fakeIntegrationRepo{}, &fakeFactory{})

	t.Run("non positive vacancy id", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{VacancyID: 0})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			VacancyID:  1,
			RangeStart: ptr.Ptr(testRangeEnd),
			RangeEnd:   ptr.Ptr(testRangeStart),
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecute_DefaultRangeAndDuration(t *testing.T) {
	factory := &fakeFactory{simulated: &fakeEventSource{}}
	uc := newTestUseCase(
		&fakeVacancyRepo{vacancy: testVacancy()},
		&fakeIntegrationRepo{err: integrationRepo.ErrIntegrationNotFound},
		factory,
	)

	resp, err := uc.Execute(context.Background(), &Request{VacancyID: 1})

	require.NoError(t, err)
	assert.Equal(t, testNow, resp.RangeStart)
	assert.Equal(t, testNow.AddDate(0, 0, domain.DefaultSchedulingRangeDays), resp.RangeEnd)
	for _, s := range resp.Slots {
		assert.Equal(t, domain.DefaultInterviewDurationMinutes, s.DurationMinutes)
	}
}
