package update_interview_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InterviewService/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewService/internal/service/interviews"
	"github.com/m04kA/SMC-InterviewService/internal/service/interviews/models"
)

const (
	msgInvalidInterviewID = "некорректный ID интервью"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "недопустимый статус интервью"
	msgNotFound           = "интервью не найдено"
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

// Handle PATCH /api/v1/interviews/{interviewId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	interviewIDStr := vars["interviewId"]

	interviewID, err := strconv.ParseInt(interviewIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /interviews/{id}/status - Invalid interview ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInterviewID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /interviews/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), interviewID, &req); err != nil {
		switch {
		case errors.Is(err, interviews.ErrInterviewNotFound):
			h.logger.Warn("PATCH /interviews/{id}/status - Interview not found: interview_id=%d", interviewID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, interviews.ErrInvalidStatus):
			h.logger.Warn("PATCH /interviews/{id}/status - Invalid status=%q: interview_id=%d",
				req.Status, interviewID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /interviews/{id}/status - Failed: interview_id=%d, error=%v", interviewID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /interviews/{id}/status - Status updated: interview_id=%d, status=%s",
		interviewID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}
