package upsert_calendar_integration

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InterviewService/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewService/internal/service/interviews"
	"github.com/m04kA/SMC-InterviewService/internal/service/interviews/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные привязки календаря"
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

// Handle PUT /api/v1/integrations/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertIntegrationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /integrations/calendar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.UpsertIntegration(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, interviews.ErrInvalidInput):
			h.logger.Warn("PUT /integrations/calendar - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /integrations/calendar - Failed: manager=%s, error=%v",
				req.ManagerEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /integrations/calendar - Integration upserted: manager=%s, active=%t",
		resp.ManagerEmail, resp.IsActive)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
