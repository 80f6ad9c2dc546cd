package schedule_interviews

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
	interviewRepo "github.com/m04kA/SMC-InterviewService/internal/infra/storage/interview"
	availabilityUC "github.com/m04kA/SMC-InterviewService/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// 2 июня 2025 - понедельник
var testNow = time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

func slotAt(day, hour int) domain.Slot {
	start := time.Date(2025, 6, day, hour, 0, 0, 0, time.UTC)
	return domain.Slot{
		Start:           start,
		End:             start.Add(time.Hour),
		DurationMinutes: 60,
		Available:       true,
	}
}

type fakeVacancyRepo struct {
	vacancies []*domain.Vacancy
	err       error
}

func (f *fakeVacancyRepo) ListCollecting(ctx context.Context) ([]*domain.Vacancy, error) {
	return f.vacancies, f.err
}

type fakeShortlistRepo struct {
	entries map[int64][]*domain.ShortlistEntry
	errs    map[int64]error
}

func (f *fakeShortlistRepo) ListByVacancy(ctx context.Context, vacancyID int64) ([]*domain.ShortlistEntry, error) {
	if err := f.errs[vacancyID]; err != nil {
		return nil, err
	}
	return f.entries[vacancyID], nil
}

type fakeInterviewRepo struct {
	existing map[string]bool

	createInterviewErr error

	slots             []*domain.InterviewSlot
	interviews        []*domain.Interview
	managerNotified   []int64
	candidateNotified []int64

	nextID int64
}

func existKey(vacancyID, candidateID int64) string {
	return fmt.Sprintf("%d_%d", vacancyID, candidateID)
}

func (f *fakeInterviewRepo) Exists(ctx context.Context, vacancyID, candidateID int64) (bool, error) {
	return f.existing[existKey(vacancyID, candidateID)], nil
}

func (f *fakeInterviewRepo) CreateSlot(ctx context.Context, slot *domain.InterviewSlot) (*domain.InterviewSlot, error) {
	f.nextID++
	slot.ID = f.nextID
	f.slots = append(f.slots, slot)
	return slot, nil
}

func (f *fakeInterviewRepo) CreateInterview(ctx context.Context, interview *domain.Interview) (*domain.Interview, error) {
	if f.createInterviewErr != nil {
		err := f.createInterviewErr
		f.createInterviewErr = nil
		return nil, err
	}
	f.nextID++
	interview.ID = f.nextID
	f.interviews = append(f.interviews, interview)
	return interview, nil
}

func (f *fakeInterviewRepo) MarkManagerNotified(ctx context.Context, id int64, sentAt time.Time) error {
	f.managerNotified = append(f.managerNotified, id)
	return nil
}

func (f *fakeInterviewRepo) MarkCandidateNotified(ctx context.Context, id int64, sentAt time.Time) error {
	f.candidateNotified = append(f.candidateNotified, id)
	return nil
}

type fakeAvailability struct {
	slots map[int64][]domain.Slot
	errs  map[int64]error

	calls    int
	requests []*availabilityUC.Request
}

func (f *fakeAvailability) Execute(ctx context.Context, req *availabilityUC.Request) (*availabilityUC.Response, error) {
	f.calls++
	f.requests = append(f.requests, req)
	if err := f.errs[req.VacancyID]; err != nil {
		return nil, err
	}
	return &availabilityUC.Response{
		VacancyID: req.VacancyID,
		Source:    domain.CalendarSourceCalDAV,
		Slots:     f.slots[req.VacancyID],
	}, nil
}

type fakeNotify struct {
	sent    []string
	failFor map[string]bool
}

func (f *fakeNotify) Send(ctx context.Context, recipient, subject, body string) error {
	if f.failFor[recipient] {
		return errors.New("smtp relay rejected message")
	}
	f.sent = append(f.sent, recipient)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testVacancy(id int64) *domain.Vacancy {
	return &domain.Vacancy{
		ID:           id,
		Title:        "Backend Engineer",
		Status:       domain.VacancyCollectingApplications,
		ManagerName:  "Anna",
		ManagerEmail: "anna@example.com",
	}
}

func entry(vacancyID, candidateID int64, rank int) *domain.ShortlistEntry {
	return &domain.ShortlistEntry{
		VacancyID:      vacancyID,
		CandidateID:    candidateID,
		CandidateName:  fmt.Sprintf("Candidate %d", candidateID),
		CandidateEmail: fmt.Sprintf("candidate%d@example.com", candidateID),
		Rank:           rank,
		AIScore:        9.0 - float64(rank),
	}
}

func newTestUseCase(
	vacancies *fakeVacancyRepo,
	shortlists *fakeShortlistRepo,
	interviews *fakeInterviewRepo,
	availability *fakeAvailability,
	notify *fakeNotify,
) *UseCase {
	uc := NewUseCase(vacancies, shortlists, interviews, availability, notify, fakeTxManager{}, NopMetrics{}, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func TestExecute_TwoCandidatesGetDistinctSlots(t *testing.T) {
	interviews := &fakeInterviewRepo{existing: map[string]bool{}}
	availability := &fakeAvailability{
		// Оба запроса возвращают одинаковый список - занятость в рамках
		// прогона должен разрулить UsedSlotSet
		slots: map[int64][]domain.Slot{
			1: {slotAt(3, 9), slotAt(3, 10), slotAt(3, 11)},
		},
	}
	notify := &fakeNotify{}

	uc := newTestUseCase(
		&fakeVacancyRepo{vacancies: []*domain.Vacancy{testVacancy(1)}},
		&fakeShortlistRepo{entries: map[int64][]*domain.ShortlistEntry{
			1: {entry(1, 101, 1), entry(1, 102, 2)},
		}},
		interviews,
		availability,
		notify,
	)

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, resp.InterviewsScheduled)
	assert.Equal(t, 0, resp.VacancyErrors)

	require.Len(t, interviews.interviews, 2)
	assert.Equal(t, slotAt(3, 9).Start, interviews.interviews[0].ScheduledAt)
	assert.Equal(t, slotAt(3, 10).Start, interviews.interviews[1].ScheduledAt)

	// Кандидат с лучшим рангом получает более ранний слот
	assert.Equal(t, int64(101), interviews.interviews[0].CandidateID)
	assert.Equal(t, int64(102), interviews.interviews[1].CandidateID)

	// Письма менеджеру и кандидату на каждое интервью
	assert.Len(t, notify.sent, 4)
	assert.Len(t, interviews.managerNotified, 2)
	assert.Len(t, interviews.candidateNotified, 2)
}

func TestExecute_SchedulingWindowStartsTomorrow(t *testing.T) {
	availability := &fakeAvailability{
		slots: map[int64][]domain.Slot{1: {slotAt(3, 9)}},
	}

	uc := newTestUseCase(
		&fakeVacancyRepo{vacancies: []*domain.Vacancy{testVacancy(1)}},
		&fakeShortlistRepo{entries: map[int64][]*domain.ShortlistEntry{
			1: {entry(1, 101, 1)},
		}},
		&fakeInterviewRepo{existing: map[string]bool{}},
		availability,
		&fakeNotify{},
	)

	_, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, availability.requests, 1)

	// Слоты запрашиваются на [завтра, завтра + 7 дней]:
	// сегодняшний день кандидатам не предлагается
	req := availability.requests[0]
	require.NotNil(t, req.RangeStart)
	require.NotNil(t, req.RangeEnd)
	assert.Equal(t, testNow.Add(24*time.Hour), *req.RangeStart)
	assert.Equal(t, testNow.Add(24*time.Hour).AddDate(0, 0, domain.DefaultSchedulingRangeDays), *req.RangeEnd)
}

func TestExecute_ExistingInterviewSkipped(t *testing.T) {
	interviews := &fakeInterviewRepo{
		existing: map[string]bool{existKey(1, 101): true},
	}
	availability := &fakeAvailability{
		slots: map[int64][]domain.Slot{1: {slotAt(3, 9)}},
	}

	uc := newTestUseCase(
		&fakeVacancyRepo{vacancies: []*domain.Vacancy{testVacancy(1)}},
		&fakeShortlistRepo{entries: map[int64][]*domain.ShortlistEntry{
			1: {entry(1, 101, 1), entry(1, 102, 2)},
		}},
		interviews,
		availability,
		&fakeNotify{},
	)

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, resp.InterviewsScheduled)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, 1, resp.Results[0].AlreadyHandled)

	require.Len(t, interviews.interviews, 1)
	assert.Equal(t, int64(102), interviews.interviews[0].CandidateID)
}

func TestExecute_SyntheticFallbackOnCalendarFailure(t *testing.T) {
	interviews := &fakeInterviewRepo{existing: map[string]bool{}}
	availability := &fakeAvailability{
		errs: map[int64]error{1: availabilityUC.ErrCalendarUnavailable},
	}

	uc := newTestUseCase(
		&fakeVacancyRepo{vacancies: []*domain.Vacancy{testVacancy(1)}},
		&fakeShortlistRepo{entries: map[int64][]*domain.ShortlistEntry{
			1: {entry(1, 101, 1), entry(1, 102, 2)},
		}},
		interviews,
		availability,
		&fakeNotify{},
	)

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, resp.InterviewsScheduled)
	assert.Equal(t, 2, resp.SyntheticSlotsUsed)

	require.Len(t, interviews.interviews, 2)
	for _, i := range interviews.interviews {
		assert.True(t, i.Synthetic)
	}

	// Запасные слоты начинаются завтра в 10:00 UTC, по одному в день
	assert.Equal(t, time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC), interviews.interviews[0].ScheduledAt)
	assert.Equal(t, time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC), interviews.interviews[1].ScheduledAt)
}

func TestExecute_NotificationFailureDoesNotRollBack(t *testing.T) {
	interviews := &fakeInterviewRepo{existing: map[string]bool{}}
	availability := &fakeAvailability{
		slots: map[int64][]domain.Slot{1: {slotAt(3, 9)}},
	}
	notify := &fakeNotify{failFor: map[string]bool{"anna@example.com": true}}

	uc := newTestUseCase(
		&fakeVacancyRepo{vacancies: []*domain.Vacancy{testVacancy(1)}},
		&fakeShortlistRepo{entries: map[int64][]*domain.ShortlistEntry{
			1: {entry(1, 101, 1)},
		}},
		interviews,
		availability,
		notify,
	)

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, resp.InterviewsScheduled)
	assert.Equal(t, 1, resp.NotificationFailures)
	assert.Equal(t, 0, resp.VacancyErrors)

	require.Len(t, interviews.interviews, 1)

	// Письмо кандидату отправляется несмотря на сбой письма менеджеру,
	// флаги проставляются только доставленным получателям
	assert.Equal(t, []string{"candidate101@example.com"}, notify.sent)
	assert.Empty(t, interviews.managerNotified)
	assert.Equal(t, []int64{interviews.interviews[0].ID}, interviews.candidateNotified)
}

func TestExecute_ConcurrentDuplicateTreatedAsHandled(t *testing.T) {
	interviews := &fakeInterviewRepo{
		existing:           map[string]bool{},
		createInterviewErr: interviewRepo.ErrAlreadyScheduled,
	}
	availability := &fakeAvailability{
		slots: map[int64][]domain.Slot{1: {slotAt(3, 9), slotAt(3, 10)}},
	}

	uc := newTestUseCase(
		&fakeVacancyRepo{vacancies: []*domain.Vacancy{testVacancy(1)}},
		&fakeShortlistRepo{entries: map[int64][]*domain.ShortlistEntry{
			1: {entry(1, 101, 1), entry(1, 102, 2)},
		}},
		interviews,
		availability,
		&fakeNotify{},
	)

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, 1, resp.Results[0].AlreadyHandled)
	assert.Equal(t, 1, resp.InterviewsScheduled)
	assert.Equal(t, 0, resp.VacancyErrors)
}

func TestExecute_VacancyErrorIsolation(t *testing.T) {
	interviews := &fakeInterviewRepo{existing: map[string]bool{}}
	availability := &fakeAvailability{
		slots: map[int64][]domain.Slot{2: {slotAt(3, 9)}},
	}

	uc := newTestUseCase(
		&fakeVacancyRepo{vacancies: []*domain.Vacancy{testVacancy(1), testVacancy(2)}},
		&fakeShortlistRepo{
			entries: map[int64][]*domain.ShortlistEntry{
				2: {entry(2, 201, 1)},
			},
			errs: map[int64]error{1: errors.New("connection reset")},
		},
		interviews,
		availability,
		&fakeNotify{},
	)

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, resp.VacanciesProcessed)
	assert.Equal(t, 1, resp.VacancyErrors)
	assert.Equal(t, 1, resp.InterviewsScheduled)

	require.Len(t, resp.Results, 2)
	assert.NotEmpty(t, resp.Results[0].Err)
	assert.Empty(t, resp.Results[1].Err)
}

func TestExecute_NoFreeSlotsForSecondCandidate(t *testing.T) {
	interviews := &fakeInterviewRepo{existing: map[string]bool{}}
	availability := &fakeAvailability{
		slots: map[int64][]domain.Slot{1: {slotAt(3, 9)}},
	}

	uc := newTestUseCase(
		&fakeVacancyRepo{vacancies: []*domain.Vacancy{testVacancy(1)}},
		&fakeShortlistRepo{entries: map[int64][]*domain.ShortlistEntry{
			1: {entry(1, 101, 1), entry(1, 102, 2)},
		}},
		interviews,
		availability,
		&fakeNotify{},
	)

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, resp.InterviewsScheduled)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, 1, resp.Results[0].NoSlots)
}

func TestExecute_EmptyShortlistSkipsVacancy(t *testing.T) {
	availability := &fakeAvailability{}

	uc := newTestUseCase(
		&fakeVacancyRepo{vacancies: []*domain.Vacancy{testVacancy(1)}},
		&fakeShortlistRepo{entries: map[int64][]*domain.ShortlistEntry{}},
		&fakeInterviewRepo{existing: map[string]bool{}},
		availability,
		&fakeNotify{},
	)

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, resp.InterviewsScheduled)
	assert.Equal(t, 0, availability.calls)
}

func TestSyntheticSlots(t *testing.T) {
	slots := syntheticSlots(testNow, 3, 60)

	require.Len(t, slots, 3)
	for i, s := range slots {
		assert.True(t, s.Synthetic)
		assert.Equal(t, 60, s.DurationMinutes)
		assert.Equal(t, time.Date(2025, 6, 3+i, 10, 0, 0, 0, time.UTC), s.Start)
	}
}
