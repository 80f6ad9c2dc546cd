package schedule_interviews

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
	interviewRepo "github.com/m04kA/SMC-InterviewService/internal/infra/storage/interview"
	availabilityUC "github.com/m04kA/SMC-InterviewService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-InterviewService/pkg/ptr"
)

const serviceName = "interview-service"

// UseCase use case ежедневного планирования интервью.
// Проходит по вакансиям в статусе сбора откликов, берет кандидатов
// шорт-листа в порядке рангов и назначает каждому ближайший свободный
// слот менеджера. Ошибка по одной вакансии не прерывает прогон
type UseCase struct {
	vacancyRepo   VacancyRepository
	shortlistRepo ShortlistRepository
	interviewRepo InterviewRepository
	availability  AvailabilityProvider
	notifyClient  NotifyClient
	txManager     TxManager
	metrics       Metrics
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	vacancyRepo VacancyRepository,
	shortlistRepo ShortlistRepository,
	interviewRepo InterviewRepository,
	availability AvailabilityProvider,
	notifyClient NotifyClient,
	txManager TxManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		vacancyRepo:   vacancyRepo,
		shortlistRepo: shortlistRepo,
		interviewRepo: interviewRepo,
		availability:  availability,
		notifyClient:  notifyClient,
		txManager:     txManager,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет прогон планирования по всем подходящим вакансиям
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	startedAt := uc.timeProvider.Now().UTC()
	uc.logger.Info("ScheduleInterviews: run started at %s", startedAt.Format(time.RFC3339))

	vacancies, err := uc.vacancyRepo.ListCollecting(ctx)
	if err != nil {
		uc.logger.Error("ScheduleInterviews: failed to list vacancies: %v", err)
		uc.metrics.IncSchedulingRun(serviceName, "error")
		return nil, fmt.Errorf("%w: failed to list vacancies: %v", ErrInternal, err)
	}

	resp := &Response{
		StartedAt: startedAt,
		Results:   make([]VacancyResult, 0, len(vacancies)),
	}

	for _, vacancy := range vacancies {
		result := uc.processVacancy(ctx, vacancy, resp)
		resp.Results = append(resp.Results, result)
		resp.VacanciesProcessed++
		resp.InterviewsScheduled += result.Scheduled
		if result.Err != "" {
			resp.VacancyErrors++
		}
	}

	resp.FinishedAt = uc.timeProvider.Now().UTC()

	runResult := "success"
	if resp.VacancyErrors > 0 {
		runResult = "partial"
	}
	uc.metrics.IncSchedulingRun(serviceName, runResult)

	uc.logger.Info("ScheduleInterviews: run finished, vacancies=%d, scheduled=%d, synthetic=%d, notify_failures=%d, errors=%d",
		resp.VacanciesProcessed, resp.InterviewsScheduled, resp.SyntheticSlotsUsed,
		resp.NotificationFailures, resp.VacancyErrors)

	return resp, nil
}

// processVacancy планирует интервью для одной вакансии.
// Все ошибки локализуются в результате вакансии
func (uc *UseCase) processVacancy(ctx context.Context, vacancy *domain.Vacancy, resp *Response) VacancyResult {
	result := VacancyResult{
		VacancyID:    vacancy.ID,
		ManagerEmail: vacancy.ManagerEmail,
	}

	entries, err := uc.shortlistRepo.ListByVacancy(ctx, vacancy.ID)
	if err != nil {
		uc.logger.Error("ScheduleInterviews: vacancy=%d: failed to get shortlist: %v", vacancy.ID, err)
		result.Err = fmt.Sprintf("failed to get shortlist: %v", err)
		return result
	}

	if len(entries) == 0 {
		uc.logger.Info("ScheduleInterviews: vacancy=%d: shortlist is empty, skipping", vacancy.ID)
		return result
	}

	// Слоты, занятые в рамках этого прогона. БД еще не знает о занятости
	// календаря, поэтому без этого набора два кандидата получили бы один слот
	usedSlots := domain.NewUsedSlotSet()

	for _, entry := range entries {
		exists, err := uc.interviewRepo.Exists(ctx, vacancy.ID, entry.CandidateID)
		if err != nil {
			uc.logger.Error("ScheduleInterviews: vacancy=%d candidate=%d: exists check failed: %v",
				vacancy.ID, entry.CandidateID, err)
			result.Err = fmt.Sprintf("exists check failed: %v", err)
			continue
		}
		if exists {
			uc.logger.Info("ScheduleInterviews: vacancy=%d candidate=%d: already scheduled, skipping",
				vacancy.ID, entry.CandidateID)
			result.AlreadyHandled++
			continue
		}

		// Свежие слоты перед каждым кандидатом: предыдущая итерация
		// могла занять время, которого календарь еще не видит
		slots, source, err := uc.fetchSlots(ctx, vacancy.ID)
		if err != nil {
			uc.logger.Error("ScheduleInterviews: vacancy=%d: failed to get slots: %v", vacancy.ID, err)
			result.Err = fmt.Sprintf("failed to get slots: %v", err)
			break
		}
		result.Source = source

		slot, ok := pickFreeSlot(slots, usedSlots)
		if !ok {
			uc.logger.Warn("ScheduleInterviews: vacancy=%d candidate=%d: %v",
				vacancy.ID, entry.CandidateID, ErrNoFreeSlots)
			result.NoSlots++
			continue
		}

		interview, err := uc.scheduleOne(ctx, vacancy, entry, slot)
		if err != nil {
			if errors.Is(err, interviewRepo.ErrAlreadyScheduled) {
				// Параллельный прогон успел первым - считаем кандидата обработанным
				uc.logger.Info("ScheduleInterviews: vacancy=%d candidate=%d: scheduled concurrently, skipping",
					vacancy.ID, entry.CandidateID)
				result.AlreadyHandled++
				continue
			}
			uc.logger.Error("ScheduleInterviews: vacancy=%d candidate=%d: failed to schedule: %v",
				vacancy.ID, entry.CandidateID, err)
			result.Err = fmt.Sprintf("failed to schedule candidate %d: %v", entry.CandidateID, err)
			continue
		}

		usedSlots.Add(slot)
		result.Scheduled++

		slotSource := source
		if slot.Synthetic {
			slotSource = domain.CalendarSourceSynthetic
			resp.SyntheticSlotsUsed++
		}
		uc.metrics.IncInterviewScheduled(serviceName, slotSource)

		// Уведомления отправляются после коммита: их неудача не должна
		// откатывать уже созданное интервью
		if err := uc.notify(ctx, vacancy, interview); err != nil {
			uc.logger.Warn("ScheduleInterviews: vacancy=%d candidate=%d: notification failed: %v",
				vacancy.ID, entry.CandidateID, err)
			resp.NotificationFailures++
			uc.metrics.IncNotification(serviceName, "error")
		} else {
			uc.metrics.IncNotification(serviceName, "success")
		}
	}

	uc.logger.Info("ScheduleInterviews: vacancy=%d: scheduled=%d, already_handled=%d, no_slots=%d",
		vacancy.ID, result.Scheduled, result.AlreadyHandled, result.NoSlots)

	return result
}

// fetchSlots получает свободные слоты менеджера вакансии.
// Окно планирования начинается через сутки: слоты сегодняшнего дня
// кандидатам не предлагаются. При недоступности календаря переходит
// на синтетические слоты
func (uc *UseCase) fetchSlots(ctx context.Context, vacancyID int64) ([]domain.Slot, string, error) {
	now := uc.timeProvider.Now().UTC()
	rangeStart := now.Add(24 * time.Hour)
	rangeEnd := rangeStart.AddDate(0, 0, domain.DefaultSchedulingRangeDays)

	availResp, err := uc.availability.Execute(ctx, &availabilityUC.Request{
		VacancyID:       vacancyID,
		RangeStart:      ptr.Ptr(rangeStart),
		RangeEnd:        ptr.Ptr(rangeEnd),
		DurationMinutes: domain.DefaultInterviewDurationMinutes,
	})
	if err != nil {
		if errors.Is(err, availabilityUC.ErrCalendarUnavailable) {
			uc.logger.Warn("ScheduleInterviews: vacancy=%d: calendar unavailable, falling back to synthetic slots",
				vacancyID)
			uc.metrics.IncCalendarFallback(serviceName)
			slots := syntheticSlots(now, domain.DefaultSchedulingRangeDays, domain.DefaultInterviewDurationMinutes)
			return slots, domain.CalendarSourceSynthetic, nil
		}
		return nil, "", err
	}

	return availResp.Slots, availResp.Source, nil
}

// pickFreeSlot возвращает первый слот, не занятый в этом прогоне
func pickFreeSlot(slots []domain.Slot, used *domain.UsedSlotSet) (domain.Slot, bool) {
	for _, s := range slots {
		if !used.Contains(s) {
			return s, true
		}
	}
	return domain.Slot{}, false
}

// scheduleOne создает слот и интервью в одной serializable-транзакции
func (uc *UseCase) scheduleOne(
	ctx context.Context,
	vacancy *domain.Vacancy,
	entry *domain.ShortlistEntry,
	slot domain.Slot,
) (*domain.Interview, error) {
	var interview *domain.Interview

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		createdSlot, err := uc.interviewRepo.CreateSlot(txCtx, &domain.InterviewSlot{
			VacancyID:    vacancy.ID,
			ManagerEmail: vacancy.ManagerEmail,
			StartTime:    slot.Start,
			EndTime:      slot.End,
			IsAvailable:  false,
			Synthetic:    slot.Synthetic,
		})
		if err != nil {
			return err
		}

		interview, err = uc.interviewRepo.CreateInterview(txCtx, &domain.Interview{
			VacancyID:       vacancy.ID,
			InterviewSlotID: createdSlot.ID,
			CandidateID:     entry.CandidateID,
			CandidateName:   entry.CandidateName,
			CandidateEmail:  entry.CandidateEmail,
			ManagerName:     vacancy.ManagerName,
			ManagerEmail:    vacancy.ManagerEmail,
			Status:          domain.InterviewScheduled,
			ScheduledAt:     slot.Start,
			DurationMinutes: slot.DurationMinutes,
			Synthetic:       slot.Synthetic,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return interview, nil
}

// notify отправляет письма менеджеру и кандидату о назначенном интервью.
// Получатели независимы: неудача одного письма не отменяет попытку второго,
// флаг отправки проставляется только доставленному получателю
func (uc *UseCase) notify(ctx context.Context, vacancy *domain.Vacancy, interview *domain.Interview) error {
	when := interview.ScheduledAt.Format("2006-01-02 15:04 UTC")

	var errs []error

	managerSubject := fmt.Sprintf("Interview scheduled: %s", vacancy.Title)
	managerBody := fmt.Sprintf(
		"An interview with %s has been scheduled for %s (%d minutes).",
		interview.CandidateName, when, interview.DurationMinutes,
	)
	if err := uc.notifyClient.Send(ctx, interview.ManagerEmail, managerSubject, managerBody); err != nil {
		errs = append(errs, fmt.Errorf("manager notification: %w", err))
	} else if err := uc.interviewRepo.MarkManagerNotified(ctx, interview.ID, uc.timeProvider.Now().UTC()); err != nil {
		errs = append(errs, fmt.Errorf("mark manager notified: %w", err))
	}

	candidateSubject := fmt.Sprintf("Your interview for %s", vacancy.Title)
	candidateBody := fmt.Sprintf(
		"Your interview with %s has been scheduled for %s (%d minutes).",
		interview.ManagerName, when, interview.DurationMinutes,
	)
	if err := uc.notifyClient.Send(ctx, interview.CandidateEmail, candidateSubject, candidateBody); err != nil {
		errs = append(errs, fmt.Errorf("candidate notification: %w", err))
	} else if err := uc.interviewRepo.MarkCandidateNotified(ctx, interview.ID, uc.timeProvider.Now().UTC()); err != nil {
		errs = append(errs, fmt.Errorf("mark candidate notified: %w", err))
	}

	return errors.Join(errs...)
}
