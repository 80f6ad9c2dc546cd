package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InterviewService/internal/api/handlers"
	availabilityUC "github.com/m04kA/SMC-InterviewService/internal/usecase/get_available_slots"
)

const (
	msgInvalidVacancyID    = "некорректный ID вакансии"
	msgInvalidRange        = "некорректный диапазон дат"
	msgInvalidDuration     = "некорректная длительность слота"
	msgVacancyNotFound     = "вакансия не найдена"
	msgCalendarUnavailable = "календарь менеджера недоступен"
)

type Handler struct {
	useCase AvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase AvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vacancies/{vacancyId}/available-slots
// Query параметры: from, to (RFC3339, опциональны), duration (минуты, опционален)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vacancyIDStr := vars["vacancyId"]

	vacancyID, err := strconv.ParseInt(vacancyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /vacancies/{id}/available-slots - Invalid vacancy ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVacancyID)
		return
	}

	req := &availabilityUC.Request{VacancyID: vacancyID}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.logger.Warn("GET /vacancies/{id}/available-slots - Invalid from=%q: %v", fromStr, err)
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		req.RangeStart = &from
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			h.logger.Warn("GET /vacancies/{id}/available-slots - Invalid to=%q: %v", toStr, err)
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		req.RangeEnd = &to
	}

	if durationStr := r.URL.Query().Get("duration"); durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil || duration <= 0 {
			h.logger.Warn("GET /vacancies/{id}/available-slots - Invalid duration=%q", durationStr)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		req.DurationMinutes = duration
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availabilityUC.ErrVacancyNotFound):
			h.logger.Warn("GET /vacancies/{id}/available-slots - Vacancy not found: vacancy_id=%d", vacancyID)
			handlers.RespondNotFound(w, msgVacancyNotFound)

		case errors.Is(err, availabilityUC.ErrInvalidInput):
			h.logger.Warn("GET /vacancies/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, availabilityUC.ErrCalendarUnavailable):
			h.logger.Warn("GET /vacancies/{id}/available-slots - Calendar unavailable: vacancy_id=%d, error=%v",
				vacancyID, err)
			handlers.RespondServiceUnavailable(w, msgCalendarUnavailable)

		default:
			h.logger.Error("GET /vacancies/{id}/available-slots - Failed: vacancy_id=%d, error=%v", vacancyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vacancies/{id}/available-slots - %d slots returned: vacancy_id=%d, source=%s",
		len(resp.Slots), vacancyID, resp.Source)
	handlers.RespondJSON(w, http.StatusOK, fromUseCaseResponse(resp))
}
