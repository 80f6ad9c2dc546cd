package interviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
	interviewRepo "github.com/m04kA/SMC-InterviewService/internal/infra/storage/interview"
	vacancyRepo "github.com/m04kA/SMC-InterviewService/internal/infra/storage/vacancy"
	"github.com/m04kA/SMC-InterviewService/internal/service/interviews/models"
)

// Service сервис для чтения и управления интервью вакансии
type Service struct {
	interviewRepo   InterviewRepository
	vacancyRepo     VacancyRepository
	shortlistRepo   ShortlistRepository
	integrationRepo IntegrationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса интервью
func NewService(
	interviewRepo InterviewRepository,
	vacancyRepo VacancyRepository,
	shortlistRepo ShortlistRepository,
	integrationRepo IntegrationRepository,
	logger Logger,
) *Service {
	return &Service{
		interviewRepo:   interviewRepo,
		vacancyRepo:     vacancyRepo,
		shortlistRepo:   shortlistRepo,
		integrationRepo: integrationRepo,
		logger:          logger,
	}
}

// GetVacancyInterviews получает интервью вакансии в порядке времени начала
func (s *Service) GetVacancyInterviews(ctx context.Context, vacancyID int64) (*models.InterviewListResponse, error) {
	s.logger.Info("GetVacancyInterviews: fetching interviews for vacancy=%d", vacancyID)

	if _, err := s.vacancyRepo.GetByID(ctx, vacancyID); err != nil {
		if errors.Is(err, vacancyRepo.ErrVacancyNotFound) {
			s.logger.Warn("GetVacancyInterviews: vacancy id=%d not found", vacancyID)
			return nil, ErrVacancyNotFound
		}
		s.logger.Error("GetVacancyInterviews: repository error for vacancy=%d: %v", vacancyID, err)
		return nil, fmt.Errorf("%w: GetVacancyInterviews - repository error: %v", ErrInternal, err)
	}

	interviews, err := s.interviewRepo.GetByVacancy(ctx, vacancyID)
	if err != nil {
		s.logger.Error("GetVacancyInterviews: repository error for vacancy=%d: %v", vacancyID, err)
		return nil, fmt.Errorf("%w: GetVacancyInterviews - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetVacancyInterviews: fetched %d interviews for vacancy=%d", len(interviews), vacancyID)
	return models.FromDomainInterviewList(interviews), nil
}

// GetVacancyShortlist получает шорт-лист вакансии в порядке рангов
func (s *Service) GetVacancyShortlist(ctx context.Context, vacancyID int64) (*models.ShortlistResponse, error) {
	s.logger.Info("GetVacancyShortlist: fetching shortlist for vacancy=%d", vacancyID)

	if _, err := s.vacancyRepo.GetByID(ctx, vacancyID); err != nil {
		if errors.Is(err, vacancyRepo.ErrVacancyNotFound) {
			s.logger.Warn("GetVacancyShortlist: vacancy id=%d not found", vacancyID)
			return nil, ErrVacancyNotFound
		}
		s.logger.Error("GetVacancyShortlist: repository error for vacancy=%d: %v", vacancyID, err)
		return nil, fmt.Errorf("%w: GetVacancyShortlist - repository error: %v", ErrInternal, err)
	}

	entries, err := s.shortlistRepo.ListByVacancy(ctx, vacancyID)
	if err != nil {
		s.logger.Error("GetVacancyShortlist: repository error for vacancy=%d: %v", vacancyID, err)
		return nil, fmt.Errorf("%w: GetVacancyShortlist - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainShortlist(vacancyID, entries), nil
}

// UpdateStatus обновляет статус интервью
func (s *Service) UpdateStatus(ctx context.Context, interviewID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: interview=%d, status=%s", interviewID, req.Status)

	if !domain.ValidInterviewStatus(req.Status) {
		s.logger.Warn("UpdateStatus: invalid status=%s for interview=%d", req.Status, interviewID)
		return ErrInvalidStatus
	}

	err := s.interviewRepo.UpdateStatus(ctx, interviewID, domain.InterviewStatus(req.Status))
	if err != nil {
		if errors.Is(err, interviewRepo.ErrInterviewNotFound) {
			s.logger.Warn("UpdateStatus: interview id=%d not found", interviewID)
			return ErrInterviewNotFound
		}
		s.logger.Error("UpdateStatus: repository error for interview=%d: %v", interviewID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: interview=%d status updated to %s", interviewID, req.Status)
	return nil
}

// UpsertIntegration создает или обновляет привязку календаря менеджера
func (s *Service) UpsertIntegration(ctx context.Context, req *models.UpsertIntegrationRequest) (*models.IntegrationResponse, error) {
	if strings.TrimSpace(req.ManagerEmail) == "" {
		return nil, fmt.Errorf("%w: managerEmail is required", ErrInvalidInput)
	}
	if req.IsActive && (req.CalDAVURL == "" || req.Username == "" || req.Password == "") {
		return nil, fmt.Errorf("%w: active integration requires caldavUrl, username and password", ErrInvalidInput)
	}

	integration, err := s.integrationRepo.Upsert(ctx, &domain.CalendarIntegration{
		ManagerEmail: req.ManagerEmail,
		CalDAVURL:    req.CalDAVURL,
		Username:     req.Username,
		Password:     req.Password,
		Timezone:     req.Timezone,
		IsActive:     req.IsActive,
	})
	if err != nil {
		s.logger.Error("UpsertIntegration: repository error for manager=%s: %v", req.ManagerEmail, err)
		return nil, fmt.Errorf("%w: UpsertIntegration - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertIntegration: manager=%s, active=%t", req.ManagerEmail, req.IsActive)
	return models.FromDomainIntegration(integration), nil
}
