package request_feedback

import (
	"context"
	"fmt"
)

// UseCase use case запроса обратной связи у менеджеров.
// Находит завершившиеся по времени интервью без отправленного запроса
// и просит менеджера оставить отзыв о кандидате. Флаг отправки
// проставляется только после успешной доставки, поэтому неудачные
// запросы повторяются следующим прогоном
type UseCase struct {
	interviewRepo InterviewRepository
	notifyClient  NotifyClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	interviewRepo InterviewRepository,
	notifyClient NotifyClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		interviewRepo: interviewRepo,
		notifyClient:  notifyClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute отправляет запросы обратной связи по завершившимся интервью
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	startedAt := uc.timeProvider.Now().UTC()

	interviews, err := uc.interviewRepo.ListFeedbackDue(ctx, startedAt)
	if err != nil {
		uc.logger.Error("RequestFeedback: failed to list interviews: %v", err)
		return nil, fmt.Errorf("%w: failed to list interviews: %v", ErrInternal, err)
	}

	resp := &Response{
		StartedAt: startedAt,
		Due:       len(interviews),
	}

	for _, interview := range interviews {
		subject := fmt.Sprintf("Feedback request: interview with %s", interview.CandidateName)
		body := fmt.Sprintf(
			"Your interview with %s ended at %s. Please share your feedback on the candidate.",
			interview.CandidateName,
			interview.EndsAt().Format("2006-01-02 15:04 UTC"),
		)

		if err := uc.notifyClient.Send(ctx, interview.ManagerEmail, subject, body); err != nil {
			uc.logger.Warn("RequestFeedback: interview=%d: failed to notify manager %s: %v",
				interview.ID, interview.ManagerEmail, err)
			resp.Failed++
			continue
		}

		sentAt := uc.timeProvider.Now().UTC()
		if err := uc.interviewRepo.MarkFeedbackRequested(ctx, interview.ID, sentAt); err != nil {
			uc.logger.Error("RequestFeedback: interview=%d: failed to mark feedback requested: %v",
				interview.ID, err)
			resp.Failed++
			continue
		}

		resp.Sent++
	}

	resp.FinishedAt = uc.timeProvider.Now().UTC()

	uc.logger.Info("RequestFeedback: due=%d, sent=%d, failed=%d", resp.Due, resp.Sent, resp.Failed)

	return resp, nil
}
