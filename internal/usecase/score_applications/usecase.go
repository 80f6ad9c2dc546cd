package score_applications

import (
	"context"
	"errors"
	"fmt"

	vacancyRepo "github.com/m04kA/SMC-InterviewService/internal/infra/storage/vacancy"
	"github.com/m04kA/SMC-InterviewService/internal/integrations/scoringservice"
)

// UseCase use case AI-скоринга откликов вакансии.
// Каждый отклик оценивается независимо: недоступность скоринга для
// одного кандидата не блокирует остальных, неоцененные отклики
// просто не попадают в ранжирование
type UseCase struct {
	vacancyRepo     VacancyRepository
	applicationRepo ApplicationRepository
	scoringClient   ScoringClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	vacancyRepo VacancyRepository,
	applicationRepo ApplicationRepository,
	scoringClient ScoringClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		vacancyRepo:     vacancyRepo,
		applicationRepo: applicationRepo,
		scoringClient:   scoringClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute оценивает все неоцененные отклики вакансии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.VacancyID <= 0 {
		return nil, fmt.Errorf("%w: vacancyID must be positive", ErrInvalidInput)
	}

	vacancy, err := uc.vacancyRepo.GetByID(ctx, req.VacancyID)
	if err != nil {
		if errors.Is(err, vacancyRepo.ErrVacancyNotFound) {
			uc.logger.Warn("ScoreApplications: vacancy id=%d not found", req.VacancyID)
			return nil, ErrVacancyNotFound
		}
		uc.logger.Error("ScoreApplications: failed to get vacancy id=%d: %v", req.VacancyID, err)
		return nil, fmt.Errorf("%w: failed to get vacancy: %v", ErrInternal, err)
	}

	applications, err := uc.applicationRepo.ListUnscored(ctx, req.VacancyID)
	if err != nil {
		uc.logger.Error("ScoreApplications: failed to list applications for vacancy=%d: %v",
			req.VacancyID, err)
		return nil, fmt.Errorf("%w: failed to list applications: %v", ErrInternal, err)
	}

	requirements := vacancy.KeywordList()

	resp := &Response{
		VacancyID: req.VacancyID,
		Total:     len(applications),
	}

	for _, app := range applications {
		result, err := uc.scoringClient.ScoreCV(ctx, &scoringservice.ScoreRequest{
			CVText:       app.CVText,
			Requirements: requirements,
		})
		if err != nil {
			uc.logger.Warn("ScoreApplications: vacancy=%d application=%d: scoring failed: %v",
				req.VacancyID, app.ID, err)
			resp.Skipped++
			continue
		}

		scoredAt := uc.timeProvider.Now().UTC()
		if err := uc.applicationRepo.SetScore(ctx, app.ID, result.Score, result.Commentary, scoredAt); err != nil {
			uc.logger.Error("ScoreApplications: vacancy=%d application=%d: failed to save score: %v",
				req.VacancyID, app.ID, err)
			resp.Skipped++
			continue
		}

		resp.Scored++
	}

	uc.logger.Info("ScoreApplications: vacancy=%d, total=%d, scored=%d, skipped=%d",
		req.VacancyID, resp.Total, resp.Scored, resp.Skipped)

	return resp, nil
}
