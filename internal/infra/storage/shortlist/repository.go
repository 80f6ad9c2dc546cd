package shortlist

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
	"github.com/m04kA/SMC-InterviewService/pkg/dbmetrics"
	"github.com/m04kA/SMC-InterviewService/pkg/psqlbuilder"
)

var shortlistColumns = []string{
	"id",
	"vacancy_id",
	"application_id",
	"candidate_id",
	"candidate_name",
	"candidate_email",
	"rank",
	"ai_score",
	"generated_at",
}

// Repository репозиторий для работы с шорт-листами вакансий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория шорт-листов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ReplaceForVacancy атомарно пересоздает шорт-лист вакансии.
// Старые записи удаляются целиком, новые вставляются с рангами 1..N.
// Вызывается внутри транзакции через txmanager
func (r *Repository) ReplaceForVacancy(ctx context.Context, vacancyID int64, entries []*domain.ShortlistEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("shortlist_entries").
		Where(squirrel.Eq{"vacancy_id": vacancyID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceForVacancy - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForVacancy - execute delete: %v", ErrExecQuery, err)
	}

	if len(entries) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("shortlist_entries").
		Columns(
			"vacancy_id",
			"application_id",
			"candidate_id",
			"candidate_name",
			"candidate_email",
			"rank",
			"ai_score",
			"generated_at",
		)

	for _, e := range entries {
		builder = builder.Values(
			e.VacancyID,
			e.ApplicationID,
			e.CandidateID,
			e.CandidateName,
			e.CandidateEmail,
			e.Rank,
			e.AIScore,
			e.GeneratedAt,
		)
	}

	insertQuery, insertArgs, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForVacancy - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForVacancy - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ListByVacancy получает шорт-лист вакансии в порядке рангов
func (r *Repository) ListByVacancy(ctx context.Context, vacancyID int64) ([]*domain.ShortlistEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(shortlistColumns...).
		From("shortlist_entries").
		Where(squirrel.Eq{"vacancy_id": vacancyID}).
		OrderBy("rank").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByVacancy - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVacancy - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var entries []*domain.ShortlistEntry
	for rows.Next() {
		var e domain.ShortlistEntry

		err := rows.Scan(
			&e.ID,
			&e.VacancyID,
			&e.ApplicationID,
			&e.CandidateID,
			&e.CandidateName,
			&e.CandidateEmail,
			&e.Rank,
			&e.AIScore,
			&e.GeneratedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByVacancy - scan entry: %v", ErrScanRow, err)
		}

		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByVacancy - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
