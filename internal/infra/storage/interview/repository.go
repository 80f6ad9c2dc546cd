package interview

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
	"github.com/m04kA/SMC-InterviewService/pkg/dbmetrics"
	"github.com/m04kA/SMC-InterviewService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения unique constraint
const uniqueViolation = "23505"

var interviewColumns = []string{
	"id",
	"vacancy_id",
	"interview_slot_id",
	"candidate_id",
	"candidate_name",
	"candidate_email",
	"manager_name",
	"manager_email",
	"status",
	"scheduled_at",
	"duration_minutes",
	"synthetic",
	"manager_notified",
	"candidate_notified",
	"manager_notification_sent_at",
	"candidate_notification_sent_at",
	"feedback_request_sent",
	"feedback_request_sent_at",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с интервью и слотами интервью
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория интервью
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateSlot создает слот интервью
// Слот создается ровно один раз на запланированное интервью,
// is_available сразу false - слоты не переиспользуются
func (r *Repository) CreateSlot(ctx context.Context, slot *domain.InterviewSlot) (*domain.InterviewSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("interview_slots").
		Columns(
			"vacancy_id",
			"manager_email",
			"start_time",
			"end_time",
			"is_available",
			"synthetic",
		).
		Values(
			slot.VacancyID,
			slot.ManagerEmail,
			slot.StartTime,
			slot.EndTime,
			slot.IsAvailable,
			slot.Synthetic,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateSlot - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateSlot - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time

	return slot, nil
}

// CreateInterview создает интервью
// При нарушении уникальности (vacancy_id, candidate_id) возвращает
// ErrAlreadyScheduled - кандидат уже запланирован
func (r *Repository) CreateInterview(ctx context.Context, interview *domain.Interview) (*domain.Interview, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("interviews").
		Columns(
			"vacancy_id",
			"interview_slot_id",
			"candidate_id",
			"candidate_name",
			"candidate_email",
			"manager_name",
			"manager_email",
			"status",
			"scheduled_at",
			"duration_minutes",
			"synthetic",
			"notes",
		).
		Values(
			interview.VacancyID,
			interview.InterviewSlotID,
			interview.CandidateID,
			interview.CandidateName,
			interview.CandidateEmail,
			interview.ManagerName,
			interview.ManagerEmail,
			interview.Status,
			interview.ScheduledAt,
			interview.DurationMinutes,
			interview.Synthetic,
			interview.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateInterview - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&interview.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrAlreadyScheduled
		}
		return nil, fmt.Errorf("%w: CreateInterview - execute insert: %v", ErrExecQuery, err)
	}

	interview.CreatedAt = createdAt.Time
	interview.UpdatedAt = updatedAt.Time

	return interview, nil
}

// Exists проверяет наличие интервью для пары (вакансия, кандидат)
// Единственный источник истины для проверки "кандидат уже запланирован"
func (r *Repository) Exists(ctx context.Context, vacancyID, candidateID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("interviews").
		Where(squirrel.Eq{"vacancy_id": vacancyID, "candidate_id": candidateID}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// GetByVacancy получает интервью вакансии, отсортированные по времени начала
func (r *Repository) GetByVacancy(ctx context.Context, vacancyID int64) ([]*domain.Interview, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(interviewColumns...).
		From("interviews").
		Where(squirrel.Eq{"vacancy_id": vacancyID}).
		OrderBy("scheduled_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByVacancy - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVacancy - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanInterviews(rows)
}

// ListFeedbackDue получает завершившиеся по времени интервью,
// по которым еще не отправлен запрос обратной связи
func (r *Repository) ListFeedbackDue(ctx context.Context, now time.Time) ([]*domain.Interview, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(interviewColumns...).
		From("interviews").
		Where(squirrel.Eq{"status": domain.InterviewScheduled, "feedback_request_sent": false}).
		Where(squirrel.Expr("scheduled_at + make_interval(mins => duration_minutes) < ?", now)).
		OrderBy("scheduled_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListFeedbackDue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFeedbackDue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanInterviews(rows)
}

// UpdateStatus обновляет статус интервью
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.InterviewStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("interviews").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrInterviewNotFound
	}

	return nil
}

// MarkManagerNotified проставляет флаг и время уведомления менеджера
func (r *Repository) MarkManagerNotified(ctx context.Context, id int64, sentAt time.Time) error {
	return r.markNotified(ctx, id, "manager_notified", "manager_notification_sent_at", sentAt)
}

// MarkCandidateNotified проставляет флаг и время уведомления кандидата
func (r *Repository) MarkCandidateNotified(ctx context.Context, id int64, sentAt time.Time) error {
	return r.markNotified(ctx, id, "candidate_notified", "candidate_notification_sent_at", sentAt)
}

// Флаги получателей независимы: частичная отправка фиксируется
// ровно по доставленным письмам
func (r *Repository) markNotified(ctx context.Context, id int64, flagColumn, sentAtColumn string, sentAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("interviews").
		Set(flagColumn, true).
		Set(sentAtColumn, sentAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: markNotified - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: markNotified - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: markNotified - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrInterviewNotFound
	}

	return nil
}

// MarkFeedbackRequested проставляет флаг отправки запроса обратной связи
func (r *Repository) MarkFeedbackRequested(ctx context.Context, id int64, sentAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("interviews").
		Set("feedback_request_sent", true).
		Set("feedback_request_sent_at", sentAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkFeedbackRequested - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkFeedbackRequested - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkFeedbackRequested - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrInterviewNotFound
	}

	return nil
}

func (r *Repository) scanInterviews(rows *sql.Rows) ([]*domain.Interview, error) {
	var interviews []*domain.Interview

	for rows.Next() {
		var i domain.Interview
		var createdAt, updatedAt sql.NullTime
		var managerSentAt, candidateSentAt, feedbackSentAt sql.NullTime

		err := rows.Scan(
			&i.ID,
			&i.VacancyID,
			&i.InterviewSlotID,
			&i.CandidateID,
			&i.CandidateName,
			&i.CandidateEmail,
			&i.ManagerName,
			&i.ManagerEmail,
			&i.Status,
			&i.ScheduledAt,
			&i.DurationMinutes,
			&i.Synthetic,
			&i.ManagerNotified,
			&i.CandidateNotified,
			&managerSentAt,
			&candidateSentAt,
			&i.FeedbackRequestSent,
			&feedbackSentAt,
			&i.Notes,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanInterviews - scan interview: %v", ErrScanRow, err)
		}

		if managerSentAt.Valid {
			i.ManagerNotificationSentAt = &managerSentAt.Time
		}
		if candidateSentAt.Valid {
			i.CandidateNotificationSentAt = &candidateSentAt.Time
		}
		if feedbackSentAt.Valid {
			i.FeedbackRequestSentAt = &feedbackSentAt.Time
		}
		i.CreatedAt = createdAt.Time
		i.UpdatedAt = updatedAt.Time

		interviews = append(interviews, &i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanInterviews - rows error: %v", ErrScanRow, err)
	}

	return interviews, nil
}
