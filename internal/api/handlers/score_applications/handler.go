package score_applications

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InterviewService/internal/api/handlers"
	scoringUC "github.com/m04kA/SMC-InterviewService/internal/usecase/score_applications"
)

const (
	msgInvalidVacancyID = "некорректный ID вакансии"
	msgVacancyNotFound  = "вакансия не найдена"
)

type Handler struct {
	useCase ScoringUseCase
	logger  Logger
}

func NewHandler(useCase ScoringUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/vacancies/{vacancyId}/score
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vacancyIDStr := vars["vacancyId"]

	vacancyID, err := strconv.ParseInt(vacancyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /vacancies/{id}/score - Invalid vacancy ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVacancyID)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &scoringUC.Request{VacancyID: vacancyID})
	if err != nil {
		switch {
		case errors.Is(err, scoringUC.ErrVacancyNotFound):
			h.logger.Warn("POST /vacancies/{id}/score - Vacancy not found: vacancy_id=%d", vacancyID)
			handlers.RespondNotFound(w, msgVacancyNotFound)

		case errors.Is(err, scoringUC.ErrInvalidInput):
			h.logger.Warn("POST /vacancies/{id}/score - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidVacancyID)

		default:
			h.logger.Error("POST /vacancies/{id}/score - Failed: vacancy_id=%d, error=%v", vacancyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vacancies/{id}/score - Scoring finished: vacancy_id=%d, scored=%d/%d",
		vacancyID, resp.Scored, resp.Total)
	handlers.RespondJSON(w, http.StatusOK, &Response{
		VacancyID: resp.VacancyID,
		Total:     resp.Total,
		Scored:    resp.Scored,
		Skipped:   resp.Skipped,
	})
}
