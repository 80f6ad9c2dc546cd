package generate_shortlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
	vacancyRepo "github.com/m04kA/SMC-InterviewService/internal/infra/storage/vacancy"
)

// UseCase use case генерации шорт-листа вакансии.
// Шорт-лист пересоздается целиком из топ-N оцененных откликов:
// частичных обновлений нет, повторная генерация идемпотентна
// относительно неизменного набора оценок
type UseCase struct {
	vacancyRepo     VacancyRepository
	applicationRepo ApplicationRepository
	shortlistRepo   ShortlistRepository
	txManager       TxManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	vacancyRepo VacancyRepository,
	applicationRepo ApplicationRepository,
	shortlistRepo ShortlistRepository,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		vacancyRepo:     vacancyRepo,
		applicationRepo: applicationRepo,
		shortlistRepo:   shortlistRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute генерирует шорт-лист вакансии из оцененных откликов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.VacancyID <= 0 {
		return nil, fmt.Errorf("%w: vacancyID must be positive", ErrInvalidInput)
	}
	if req.Size < 0 {
		return nil, fmt.Errorf("%w: size must not be negative", ErrInvalidInput)
	}

	size := req.Size
	if size == 0 {
		size = domain.ShortlistSize
	}

	if _, err := uc.vacancyRepo.GetByID(ctx, req.VacancyID); err != nil {
		if errors.Is(err, vacancyRepo.ErrVacancyNotFound) {
			uc.logger.Warn("GenerateShortlist: vacancy id=%d not found", req.VacancyID)
			return nil, ErrVacancyNotFound
		}
		uc.logger.Error("GenerateShortlist: failed to get vacancy id=%d: %v", req.VacancyID, err)
		return nil, fmt.Errorf("%w: failed to get vacancy: %v", ErrInternal, err)
	}

	// Отклики приходят отсортированными: по убыванию оценки,
	// при равенстве - раньше поданный отклик выше
	applications, err := uc.applicationRepo.ListScored(ctx, req.VacancyID)
	if err != nil {
		uc.logger.Error("GenerateShortlist: failed to list scored applications for vacancy=%d: %v",
			req.VacancyID, err)
		return nil, fmt.Errorf("%w: failed to list applications: %v", ErrInternal, err)
	}

	if len(applications) == 0 {
		uc.logger.Warn("GenerateShortlist: vacancy=%d has no scored applications", req.VacancyID)
		return nil, ErrNoScoredApplications
	}

	if len(applications) > size {
		applications = applications[:size]
	}

	generatedAt := uc.timeProvider.Now().UTC()
	entries := make([]*domain.ShortlistEntry, 0, len(applications))
	for i, app := range applications {
		entries = append(entries, &domain.ShortlistEntry{
			VacancyID:      req.VacancyID,
			ApplicationID:  app.ID,
			CandidateID:    app.CandidateID,
			CandidateName:  app.CandidateName,
			CandidateEmail: app.CandidateEmail,
			Rank:           i + 1,
			AIScore:        *app.AIScore,
			GeneratedAt:    generatedAt,
		})
	}

	// Удаление старого шорт-листа и вставка нового в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		return uc.shortlistRepo.ReplaceForVacancy(txCtx, req.VacancyID, entries)
	})
	if err != nil {
		uc.logger.Error("GenerateShortlist: failed to replace shortlist for vacancy=%d: %v",
			req.VacancyID, err)
		return nil, fmt.Errorf("%w: failed to replace shortlist: %v", ErrInternal, err)
	}

	uc.logger.Info("GenerateShortlist: vacancy=%d, entries=%d", req.VacancyID, len(entries))

	return &Response{
		VacancyID: req.VacancyID,
		Entries:   entries,
	}, nil
}
