package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
	integrationRepo "github.com/m04kA/SMC-InterviewService/internal/infra/storage/calendarintegration"
	vacancyRepo "github.com/m04kA/SMC-InterviewService/internal/infra/storage/vacancy"
	"github.com/m04kA/SMC-InterviewService/internal/integrations/calendarservice"
)

// UseCase use case для получения свободных слотов менеджера вакансии.
// Занятость берется из привязанного CalDAV-календаря; если привязки нет,
// используется детерминированный симулятор (пустая занятость)
type UseCase struct {
	vacancyRepo     VacancyRepository
	integrationRepo IntegrationRepository
	calendarFactory CalendarFactory
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	vacancyRepo VacancyRepository,
	integrationRepo IntegrationRepository,
	calendarFactory CalendarFactory,
	logger Logger,
) *UseCase {
	return &UseCase{
		vacancyRepo:     vacancyRepo,
		integrationRepo: integrationRepo,
		calendarFactory: calendarFactory,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем диапазон и длительность
	now := uc.timeProvider.Now().UTC()

	rangeStart := now
	if req.RangeStart != nil {
		rangeStart = req.RangeStart.UTC()
	}

	rangeEnd := rangeStart.AddDate(0, 0, domain.DefaultSchedulingRangeDays)
	if req.RangeEnd != nil {
		rangeEnd = req.RangeEnd.UTC()
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultInterviewDurationMinutes
	}

	uc.logger.Info("GetAvailableSlots: vacancy=%d, range=[%s, %s], duration=%dm",
		req.VacancyID, rangeStart.Format(time.RFC3339), rangeEnd.Format(time.RFC3339), duration)

	// 3. Получаем вакансию - она определяет менеджера и его календарь
	vacancy, err := uc.vacancyRepo.GetByID(ctx, req.VacancyID)
	if err != nil {
		if errors.Is(err, vacancyRepo.ErrVacancyNotFound) {
			uc.logger.Warn("GetAvailableSlots: vacancy id=%d not found", req.VacancyID)
			return nil, ErrVacancyNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get vacancy id=%d: %v", req.VacancyID, err)
		return nil, fmt.Errorf("%w: failed to get vacancy: %v", ErrInternal, err)
	}

	// 4. Разрешаем источник занятости один раз: bound или simulated
	source, sourceTag, err := uc.resolveSource(ctx, vacancy.ManagerEmail)
	if err != nil {
		return nil, err
	}

	// 5. Получаем занятые интервалы менеджера
	busy, err := source.GetBusyEvents(ctx, rangeStart, rangeEnd)
	if err != nil {
		if errors.Is(err, calendarservice.ErrCalendarUnavailable) {
			uc.logger.Warn("GetAvailableSlots: calendar unavailable for manager=%s: %v",
				vacancy.ManagerEmail, err)
			return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to get busy events for manager=%s: %v",
			vacancy.ManagerEmail, err)
		return nil, fmt.Errorf("%w: failed to get busy events: %v", ErrInternal, err)
	}

	// 6. Вычисляем свободные слоты в рабочие часы
	slots := domain.FreeSlotsForRange(busy, rangeStart, rangeEnd, duration, now)

	uc.logger.Info("GetAvailableSlots: vacancy=%d, manager=%s, source=%s, busy=%d, slots=%d",
		req.VacancyID, vacancy.ManagerEmail, sourceTag, len(busy), len(slots))

	return &Response{
		VacancyID:    req.VacancyID,
		ManagerEmail: vacancy.ManagerEmail,
		Source:       sourceTag,
		RangeStart:   rangeStart,
		RangeEnd:     rangeEnd,
		Slots:        slots,
	}, nil
}

// resolveSource выбирает источник занятости по привязке календаря менеджера.
// Отсутствие активной привязки - штатный путь симуляции
func (uc *UseCase) resolveSource(ctx context.Context, managerEmail string) (calendarservice.EventSource, string, error) {
	integration, err := uc.integrationRepo.GetActiveByManagerEmail(ctx, managerEmail)
	if err != nil {
		if errors.Is(err, integrationRepo.ErrIntegrationNotFound) {
			uc.logger.Info("GetAvailableSlots: no calendar integration for manager=%s, using simulator",
				managerEmail)
			return uc.calendarFactory.Simulated(), domain.CalendarSourceSimulated, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get integration for manager=%s: %v",
			managerEmail, err)
		return nil, "", fmt.Errorf("%w: failed to get calendar integration: %v", ErrInternal, err)
	}

	if !integration.IsBound() {
		uc.logger.Info("GetAvailableSlots: integration for manager=%s is not bound, using simulator",
			managerEmail)
		return uc.calendarFactory.Simulated(), domain.CalendarSourceSimulated, nil
	}

	return uc.calendarFactory.Bound(integration), domain.CalendarSourceCalDAV, nil
}
