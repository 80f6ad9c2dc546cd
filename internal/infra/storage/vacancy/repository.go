package vacancy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
	"github.com/m04kA/SMC-InterviewService/pkg/dbmetrics"
	"github.com/m04kA/SMC-InterviewService/pkg/psqlbuilder"
)

var vacancyColumns = []string{
	"id",
	"title",
	"department",
	"status",
	"manager_name",
	"manager_email",
	"keywords",
	"collection_ends_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с вакансиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория вакансий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает вакансию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Vacancy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vacancyColumns...).
		From("vacancies").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	v, err := scanVacancy(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVacancyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan vacancy: %v", ErrScanRow, err)
	}

	return v, nil
}

// ListCollecting получает вакансии в статусе сбора откликов,
// отсортированные по времени создания
func (r *Repository) ListCollecting(ctx context.Context) ([]*domain.Vacancy, error) {
	return r.listByStatus(ctx, domain.VacancyCollectingApplications)
}

func (r *Repository) listByStatus(ctx context.Context, status domain.VacancyStatus) ([]*domain.Vacancy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vacancyColumns...).
		From("vacancies").
		Where(squirrel.Eq{"status": status}).
		OrderBy("created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: listByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var vacancies []*domain.Vacancy
	for rows.Next() {
		v, err := scanVacancy(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: listByStatus - scan vacancy: %v", ErrScanRow, err)
		}
		vacancies = append(vacancies, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listByStatus - rows error: %v", ErrScanRow, err)
	}

	return vacancies, nil
}

// UpdateStatus обновляет статус вакансии
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.VacancyStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("vacancies").
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
		return ErrVacancyNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVacancy(row rowScanner) (*domain.Vacancy, error) {
	var v domain.Vacancy
	var collectionEndsAt sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&v.ID,
		&v.Title,
		&v.Department,
		&v.Status,
		&v.ManagerName,
		&v.ManagerEmail,
		&v.Keywords,
		&collectionEndsAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if collectionEndsAt.Valid {
		v.CollectionEndsAt = &collectionEndsAt.Time
	}
	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}
