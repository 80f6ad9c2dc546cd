package run_scheduling

import (
	"net/http"

	"github.com/m04kA/SMC-InterviewService/internal/api/handlers"
)

type Handler struct {
	useCase SchedulingUseCase
	logger  Logger
}

func NewHandler(useCase SchedulingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/scheduling/run
// Ручной запуск прогона планирования; тот же код выполняет
// ежедневный cron-триггер
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /scheduling/run - Run failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /scheduling/run - Run finished: vacancies=%d, scheduled=%d",
		resp.VacanciesProcessed, resp.InterviewsScheduled)
	handlers.RespondJSON(w, http.StatusOK, fromUseCaseResponse(resp))
}
