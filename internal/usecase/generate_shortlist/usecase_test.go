package generate_shortlist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
	vacancyRepo "github.com/m04kA/SMC-InterviewService/internal/infra/storage/vacancy"
	"github.com/m04kA/SMC-InterviewService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var testNow = time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

type fakeVacancyRepo struct {
	err error
}

func (f *fakeVacancyRepo) GetByID(ctx context.Context, id int64) (*domain.Vacancy, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Vacancy{ID: id, Title: "Backend Engineer"}, nil
}

type fakeApplicationRepo struct {
	applications []*domain.Application
	err          error
}

func (f *fakeApplicationRepo) ListScored(ctx context.Context, vacancyID int64) ([]*domain.Application, error) {
	return f.applications, f.err
}

type fakeShortlistRepo struct {
	replaced map[int64][]*domain.ShortlistEntry
	err      error
}

func (f *fakeShortlistRepo) ReplaceForVacancy(ctx context.Context, vacancyID int64, entries []*domain.ShortlistEntry) error {
	if f.err != nil {
		return f.err
	}
	if f.replaced == nil {
		f.replaced = map[int64][]*domain.ShortlistEntry{}
	}
	f.replaced[vacancyID] = entries
	return nil
}

func (f *fakeShortlistRepo) ListByVacancy(ctx context.Context, vacancyID int64) ([]*domain.ShortlistEntry, error) {
	return f.replaced[vacancyID], nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

// Отклики в том порядке, в каком их возвращает хранилище:
// по убыванию оценки, при равенстве - раньше поданный выше
func scoredApplications(scores ...float64) []*domain.Application {
	apps := make([]*domain.Application, 0, len(scores))
	for i, score := range scores {
		apps = append(apps, &domain.Application{
			ID:          int64(i + 1),
			CandidateID: int64(100 + i),
			AIScore:     ptr.Ptr(score),
		})
	}
	return apps
}

func newTestUseCase(
	vacancies *fakeVacancyRepo,
	applications *fakeApplicationRepo,
	shortlists *fakeShortlistRepo,
	tx *fakeTxManager,
) *UseCase {
	uc := NewUseCase(vacancies, applications, shortlists, tx, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func TestExecute_TopNRanking(t *testing.T) {
	shortlists := &fakeShortlistRepo{}
	tx := &fakeTxManager{}
	uc := newTestUseCase(
		&fakeVacancyRepo{},
		&fakeApplicationRepo{applications: scoredApplications(9.5, 8.0, 7.5, 6.0, 5.5, 4.0, 3.0)},
		shortlists,
		tx,
	)

	resp, err := uc.Execute(context.Background(), &Request{VacancyID: 1})

	require.NoError(t, err)
	require.Len(t, resp.Entries, domain.ShortlistSize)

	for i, e := range resp.Entries {
		assert.Equal(t, i+1, e.Rank)
		assert.Equal(t, testNow, e.GeneratedAt)
	}
	assert.Equal(t, 9.5, resp.Entries[0].AIScore)
	assert.Equal(t, 5.5, resp.Entries[4].AIScore)

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, resp.Entries, shortlists.replaced[1])
}

func TestExecute_FewerApplicationsThanSize(t *testing.T) {
	uc := newTestUseCase(
		&fakeVacancyRepo{},
		&fakeApplicationRepo{applications: scoredApplications(9.0, 7.0)},
		&fakeShortlistRepo{},
		&fakeTxManager{},
	)

	resp, err := uc.Execute(context.Background(), &Request{VacancyID: 1})

	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, 2, resp.Entries[1].Rank)
}

func TestExecute_CustomSize(t *testing.T) {
	uc := newTestUseCase(
		&fakeVacancyRepo{},
		&fakeApplicationRepo{applications: scoredApplications(9.0, 8.0, 7.0, 6.0)},
		&fakeShortlistRepo{},
		&fakeTxManager{},
	)

	resp, err := uc.Execute(context.Background(), &Request{VacancyID: 1, Size: 3})

	require.NoError(t, err)
	assert.Len(t, resp.Entries, 3)
}

func TestExecute_NoScoredApplications(t *testing.T) {
	uc := newTestUseCase(
		&fakeVacancyRepo{},
		&fakeApplicationRepo{},
		&fakeShortlistRepo{},
		&fakeTxManager{},
	)

	_, err := uc.Execute(context.Background(), &Request{VacancyID: 1})

	require.ErrorIs(t, err, ErrNoScoredApplications)
}

func TestExecute_VacancyNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeVacancyRepo{err: vacancyRepo.ErrVacancyNotFound},
		&fakeApplicationRepo{},
		&fakeShortlistRepo{},
		&fakeTxManager{},
	)

	_, err := uc.Execute(context.Background(), &Request{VacancyID: 42})

	require.ErrorIs(t, err, ErrVacancyNotFound)
}

func TestExecute_ReplaceFailure(t *testing.T) {
	uc := newTestUseCase(
		&fakeVacancyRepo{},
		&fakeApplicationRepo{applications: scoredApplications(9.0)},
		&fakeShortlistRepo{err: errors.New("serialization conflict")},
		&fakeTxManager{},
	)

	_, err := uc.Execute(context.Background(), &Request{VacancyID: 1})

	require.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeVacancyRepo{}, &fakeApplicationRepo{}, &fakeShortlistRepo{}, &fakeTxManager{})

	t.Run("non positive vacancy id", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{VacancyID: 0})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("negative size", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{VacancyID: 1, Size: -1})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
