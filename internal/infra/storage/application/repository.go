package application

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
	"github.com/m04kA/SMC-InterviewService/pkg/dbmetrics"
	"github.com/m04kA/SMC-InterviewService/pkg/psqlbuilder"
)

var applicationColumns = []string{
	"id",
	"vacancy_id",
	"candidate_id",
	"candidate_name",
	"candidate_email",
	"cv_text",
	"ai_score",
	"commentary",
	"scored_at",
	"created_at",
}

// Repository репозиторий для работы с откликами кандидатов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория откликов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByVacancy получает все отклики по вакансии
func (r *Repository) ListByVacancy(ctx context.Context, vacancyID int64) ([]*domain.Application, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(applicationColumns...).
		From("applications").
		Where(squirrel.Eq{"vacancy_id": vacancyID}).
		OrderBy("created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByVacancy - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVacancy - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanApplications(rows)
}

// ListUnscored получает отклики по вакансии без AI-оценки
func (r *Repository) ListUnscored(ctx context.Context, vacancyID int64) ([]*domain.Application, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(applicationColumns...).
		From("applications").
		Where(squirrel.Eq{"vacancy_id": vacancyID}).
		Where(squirrel.Eq{"ai_score": nil}).
		OrderBy("created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListUnscored - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUnscored - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanApplications(rows)
}

// ListScored получает оцененные отклики по вакансии,
// отсортированные по убыванию оценки; при равной оценке раньше
// идет более ранний отклик
func (r *Repository) ListScored(ctx context.Context, vacancyID int64) ([]*domain.Application, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(applicationColumns...).
		From("applications").
		Where(squirrel.Eq{"vacancy_id": vacancyID}).
		Where(squirrel.NotEq{"ai_score": nil}).
		OrderBy("ai_score DESC", "created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListScored - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListScored - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanApplications(rows)
}

// SetScore сохраняет результат AI-оценки отклика
func (r *Repository) SetScore(ctx context.Context, id int64, score float64, commentary string, scoredAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("applications").
		Set("ai_score", score).
		Set("commentary", commentary).
		Set("scored_at", scoredAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetScore - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetScore - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetScore - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrApplicationNotFound
	}

	return nil
}

func (r *Repository) scanApplications(rows *sql.Rows) ([]*domain.Application, error) {
	var applications []*domain.Application

	for rows.Next() {
		var a domain.Application
		var aiScore sql.NullFloat64
		var commentary sql.NullString
		var scoredAt, createdAt sql.NullTime

		err := rows.Scan(
			&a.ID,
			&a.VacancyID,
			&a.CandidateID,
			&a.CandidateName,
			&a.CandidateEmail,
			&a.CVText,
			&aiScore,
			&commentary,
			&scoredAt,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanApplications - scan application: %v", ErrScanRow, err)
		}

		if aiScore.Valid {
			a.AIScore = &aiScore.Float64
		}
		a.Commentary = commentary.String
		if scoredAt.Valid {
			a.ScoredAt = &scoredAt.Time
		}
		a.CreatedAt = createdAt.Time

		applications = append(applications, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanApplications - rows error: %v", ErrScanRow, err)
	}

	return applications, nil
}
