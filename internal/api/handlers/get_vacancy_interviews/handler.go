package get_vacancy_interviews

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InterviewService/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewService/internal/service/interviews"
)

const (
	msgInvalidVacancyID = "некорректный ID вакансии"
	msgVacancyNotFound  = "вакансия не найдена"
)

type Handler struct {
	service InterviewService
	logger  Logger
}

func NewHandler(service InterviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vacancies/{vacancyId}/interviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vacancyIDStr := vars["vacancyId"]

	vacancyID, err := strconv.ParseInt(vacancyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /vacancies/{id}/interviews - Invalid vacancy ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVacancyID)
		return
	}

	resp, err := h.service.GetVacancyInterviews(r.Context(), vacancyID)
	if err != nil {
		switch {
		case errors.Is(err, interviews.ErrVacancyNotFound):
			h.logger.Warn("GET /vacancies/{id}/interviews - Vacancy not found: vacancy_id=%d", vacancyID)
			handlers.RespondNotFound(w, msgVacancyNotFound)

		default:
			h.logger.Error("GET /vacancies/{id}/interviews - Failed: vacancy_id=%d, error=%v", vacancyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vacancies/{id}/interviews - %d interviews returned: vacancy_id=%d",
		len(resp.Interviews), vacancyID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
