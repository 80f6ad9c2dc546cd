package calendarintegration

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

var integrationColumns = []string{
	"id",
	"manager_email",
	"caldav_url",
	"username",
	"password",
	"timezone",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с привязками календарей менеджеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория привязок календарей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByManagerEmail получает активную привязку календаря менеджера.
// Отсутствие привязки - штатная ситуация: менеджер работает в режиме
// симуляции календаря
func (r *Repository) GetActiveByManagerEmail(ctx context.Context, managerEmail string) (*domain.CalendarIntegration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(integrationColumns...).
		From("calendar_integrations").
		Where(squirrel.Eq{"manager_email": managerEmail, "is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByManagerEmail - build select query: %v", ErrBuildQuery, err)
	}

	var integration domain.CalendarIntegration
	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&integration.ID,
		&integration.ManagerEmail,
		&integration.CalDAVURL,
		&integration.Username,
		&integration.Password,
		&integration.Timezone,
		&integration.IsActive,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrIntegrationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByManagerEmail - scan integration: %v", ErrScanRow, err)
	}

	integration.CreatedAt = createdAt.Time
	integration.UpdatedAt = updatedAt.Time

	return &integration, nil
}

// Upsert создает или обновляет привязку календаря менеджера
func (r *Repository) Upsert(ctx context.Context, integration *domain.CalendarIntegration) (*domain.CalendarIntegration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_integrations").
		Columns(
			"manager_email",
			"caldav_url",
			"username",
			"password",
			"timezone",
			"is_active",
		).
		Values(
			integration.ManagerEmail,
			integration.CalDAVURL,
			integration.Username,
			integration.Password,
			integration.Timezone,
			integration.IsActive,
		).
		Suffix(`ON CONFLICT (manager_email) DO UPDATE SET
			caldav_url = EXCLUDED.caldav_url,
			username = EXCLUDED.username,
			password = EXCLUDED.password,
			timezone = EXCLUDED.timezone,
			is_active = EXCLUDED.is_active
		RETURNING id`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&integration.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return integration, nil
}
