package generate_shortlist

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InterviewService/internal/api/handlers"
	shortlistUC "github.com/m04kA/SMC-InterviewService/internal/usecase/generate_shortlist"
)

const (
	msgInvalidVacancyID = "некорректный ID вакансии"
	msgVacancyNotFound  = "вакансия не найдена"
	msgNoScoredApps     = "нет оцененных откликов по вакансии"
	msgInvalidSize      = "некорректный размер шорт-листа"
)

type Handler struct {
	useCase ShortlistUseCase
	logger  Logger
}

func NewHandler(useCase ShortlistUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/vacancies/{vacancyId}/shortlist
// Query параметр size опционален, по умолчанию 5
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vacancyIDStr := vars["vacancyId"]

	vacancyID, err := strconv.ParseInt(vacancyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /vacancies/{id}/shortlist - Invalid vacancy ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVacancyID)
		return
	}

	req := &shortlistUC.Request{VacancyID: vacancyID}

	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size <= 0 {
			h.logger.Warn("POST /vacancies/{id}/shortlist - Invalid size=%q", sizeStr)
			handlers.RespondBadRequest(w, msgInvalidSize)
			return
		}
		req.Size = size
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, shortlistUC.ErrVacancyNotFound):
			h.logger.Warn("POST /vacancies/{id}/shortlist - Vacancy not found: vacancy_id=%d", vacancyID)
			handlers.RespondNotFound(w, msgVacancyNotFound)

		case errors.Is(err, shortlistUC.ErrNoScoredApplications):
			h.logger.Warn("POST /vacancies/{id}/shortlist - No scored applications: vacancy_id=%d", vacancyID)
			handlers.RespondBadRequest(w, msgNoScoredApps)

		case errors.Is(err, shortlistUC.ErrInvalidInput):
			h.logger.Warn("POST /vacancies/{id}/shortlist - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSize)

		default:
			h.logger.Error("POST /vacancies/{id}/shortlist - Failed: vacancy_id=%d, error=%v", vacancyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vacancies/{id}/shortlist - Shortlist generated: vacancy_id=%d, entries=%d",
		vacancyID, len(resp.Entries))
	handlers.RespondJSON(w, http.StatusOK, fromUseCaseResponse(resp))
}
