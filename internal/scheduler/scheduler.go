package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"

	feedbackUC "github.com/m04kA/SMC-InterviewService/internal/usecase/request_feedback"
	schedulingUC "github.com/m04kA/SMC-InterviewService/internal/usecase/schedule_interviews"
)

// SchedulingUseCase интерфейс прогона планирования интервью
type SchedulingUseCase interface {
	Execute(ctx context.Context) (*schedulingUC.Response, error)
}

// FeedbackUseCase интерфейс прогона запросов обратной связи
type FeedbackUseCase interface {
	Execute(ctx context.Context) (*feedbackUC.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler запускает ежедневные фоновые прогоны по cron-расписанию.
// Прогоны идемпотентны, поэтому пропущенный или повторный запуск безопасен
type Scheduler struct {
	cron       *cron.Cron
	scheduling SchedulingUseCase
	feedback   FeedbackUseCase
	logger     Logger
}

// New создает планировщик фоновых прогонов
func New(scheduling SchedulingUseCase, feedback FeedbackUseCase, logger Logger) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		scheduling: scheduling,
		feedback:   feedback,
		logger:     logger,
	}
}

// Start регистрирует задания и запускает cron.
// scheduleSpec и feedbackSpec - стандартные 5-польные cron выражения
func (s *Scheduler) Start(scheduleSpec, feedbackSpec string) error {
	if _, err := s.cron.AddFunc(scheduleSpec, s.runScheduling); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(feedbackSpec, s.runFeedback); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("Scheduler started: scheduling=%q, feedback=%q", scheduleSpec, feedbackSpec)
	return nil
}

// Stop останавливает cron и дожидается завершения запущенных заданий
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) runScheduling() {
	s.logger.Info("Scheduler: daily scheduling run triggered")

	resp, err := s.scheduling.Execute(context.Background())
	if err != nil {
		s.logger.Error("Scheduler: scheduling run failed: %v", err)
		return
	}

	s.logger.Info("Scheduler: scheduling run done, vacancies=%d, scheduled=%d, errors=%d",
		resp.VacanciesProcessed, resp.InterviewsScheduled, resp.VacancyErrors)
}

func (s *Scheduler) runFeedback() {
	s.logger.Info("Scheduler: feedback run triggered")

	resp, err := s.feedback.Execute(context.Background())
	if err != nil {
		s.logger.Error("Scheduler: feedback run failed: %v", err)
		return
	}

	s.logger.Info("Scheduler: feedback run done, due=%d, sent=%d, failed=%d",
		resp.Due, resp.Sent, resp.Failed)
}
