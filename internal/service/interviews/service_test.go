package interviews

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
	interviewRepo "github.com/m04kA/SMC-InterviewService/internal/infra/storage/interview"
	vacancyRepo "github.com/m04kA/SMC-InterviewService/internal/infra/storage/vacancy"
	"github.com/m04kA/SMC-InterviewService/internal/service/interviews/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeInterviewRepo struct {
	interviews []*domain.Interview

	updateErr      error
	updatedID      int64
	updatedStatus  domain.InterviewStatus
	updateStatuses int
}

func (f *fakeInterviewRepo) GetByVacancy(ctx context.Context, vacancyID int64) ([]*domain.Interview, error) {
	return f.interviews, nil
}

func (f *fakeInterviewRepo) UpdateStatus(ctx context.Context, id int64, status domain.InterviewStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedID = id
	f.updatedStatus = status
	f.updateStatuses++
	return nil
}

type fakeVacancyRepo struct {
	err error
}

func (f *fakeVacancyRepo) GetByID(ctx context.Context, id int64) (*domain.Vacancy, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Vacancy{ID: id}, nil
}

type fakeShortlistRepo struct {
	entries []*domain.ShortlistEntry
}

func (f *fakeShortlistRepo) ListByVacancy(ctx context.Context, vacancyID int64) ([]*domain.ShortlistEntry, error) {
	return f.entries, nil
}

type fakeIntegrationRepo struct {
	upserted *domain.CalendarIntegration
}

func (f *fakeIntegrationRepo) Upsert(ctx context.Context, integration *domain.CalendarIntegration) (*domain.CalendarIntegration, error) {
	integration.ID = 7
	f.upserted = integration
	return integration, nil
}

func newTestService(
	interviews *fakeInterviewRepo,
	vacancies *fakeVacancyRepo,
	shortlists *fakeShortlistRepo,
	integrations *fakeIntegrationRepo,
) *Service {
	return NewService(interviews, vacancies, shortlists, integrations, nopLogger{})
}

func TestGetVacancyInterviews(t *testing.T) {
	scheduledAt := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	interviews := &fakeInterviewRepo{
		interviews: []*domain.Interview{
			{
				ID:              1,
				VacancyID:       1,
				CandidateName:   "Ivan Petrov",
				Status:          domain.InterviewScheduled,
				ScheduledAt:     scheduledAt,
				DurationMinutes: 60,
			},
		},
	}

	svc := newTestService(interviews, &fakeVacancyRepo{}, &fakeShortlistRepo{}, &fakeIntegrationRepo{})

	resp, err := svc.GetVacancyInterviews(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, resp.Interviews, 1)
	assert.Equal(t, "scheduled", resp.Interviews[0].Status)
	assert.Equal(t, scheduledAt, resp.Interviews[0].ScheduledAt)
}

func TestGetVacancyInterviews_VacancyNotFound(t *testing.T) {
	svc := newTestService(
		&fakeInterviewRepo{},
		&fakeVacancyRepo{err: vacancyRepo.ErrVacancyNotFound},
		&fakeShortlistRepo{},
		&fakeIntegrationRepo{},
	)

	_, err := svc.GetVacancyInterviews(context.Background(), 42)

	require.ErrorIs(t, err, ErrVacancyNotFound)
}

func TestGetVacancyShortlist(t *testing.T) {
	shortlists := &fakeShortlistRepo{
		entries: []*domain.ShortlistEntry{
			{Rank: 1, CandidateID: 101, AIScore: 9.5},
			{Rank: 2, CandidateID: 102, AIScore: 8.0},
		},
	}

	svc := newTestService(&fakeInterviewRepo{}, &fakeVacancyRepo{}, shortlists, &fakeIntegrationRepo{})

	resp, err := svc.GetVacancyShortlist(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.VacancyID)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, 1, resp.Entries[0].Rank)
	assert.Equal(t, 9.5, resp.Entries[0].AIScore)
}

func TestUpdateStatus(t *testing.T) {
	t.Run("valid status", func(t *testing.T) {
		interviews := &fakeInterviewRepo{}
		svc := newTestService(interviews, &fakeVacancyRepo{}, &fakeShortlistRepo{}, &fakeIntegrationRepo{})

		err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{Status: "completed"})

		require.NoError(t, err)
		assert.Equal(t, int64(5), interviews.updatedID)
		assert.Equal(t, domain.InterviewCompleted, interviews.updatedStatus)
	})

	t.Run("invalid status", func(t *testing.T) {
		interviews := &fakeInterviewRepo{}
		svc := newTestService(interviews, &fakeVacancyRepo{}, &fakeShortlistRepo{}, &fakeIntegrationRepo{})

		err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{Status: "postponed"})

		require.ErrorIs(t, err, ErrInvalidStatus)
		assert.Equal(t, 0, interviews.updateStatuses)
	})

	t.Run("interview not found", func(t *testing.T) {
		interviews := &fakeInterviewRepo{updateErr: interviewRepo.ErrInterviewNotFound}
		svc := newTestService(interviews, &fakeVacancyRepo{}, &fakeShortlistRepo{}, &fakeIntegrationRepo{})

		err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{Status: "cancelled"})

		require.ErrorIs(t, err, ErrInterviewNotFound)
	})
}

func TestUpsertIntegration(t *testing.T) {
	t.Run("active integration", func(t *testing.T) {
		integrations := &fakeIntegrationRepo{}
		svc := newTestService(&fakeInterviewRepo{}, &fakeVacancyRepo{}, &fakeShortlistRepo{}, integrations)

		resp, err := svc.UpsertIntegration(context.Background(), &models.UpsertIntegrationRequest{
			ManagerEmail: "anna@example.com",
			CalDAVURL:    "https://dav.example.com/anna/",
			Username:     "anna",
			Password:     "secret",
			IsActive:     true,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "anna@example.com", resp.ManagerEmail)
		assert.True(t, resp.IsActive)
		assert.Equal(t, "secret", integrations.upserted.Password)
	})

	t.Run("missing manager email", func(t *testing.T) {
		svc := newTestService(&fakeInterviewRepo{}, &fakeVacancyRepo{}, &fakeShortlistRepo{}, &fakeIntegrationRepo{})

		_, err := svc.UpsertIntegration(context.Background(), &models.UpsertIntegrationRequest{IsActive: false})

		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("active without credentials", func(t *testing.T) {
		svc := newTestService(&fakeInterviewRepo{}, &fakeVacancyRepo{}, &fakeShortlistRepo{}, &fakeIntegrationRepo{})

		_, err := svc.UpsertIntegration(context.Background(), &models.UpsertIntegrationRequest{
			ManagerEmail: "anna@example.com",
			IsActive:     true,
		})

		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
