package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LaundryBooking/internal/api/handlers"
	getCalendar "github.com/m04kA/SMC-LaundryBooking/internal/usecase/get_calendar"
)

const (
	msgInvalidDays = "некорректное количество дней"
	msgInvalidDate = "некорректная дата начала, ожидается YYYY-MM-DD не раньше сегодняшнего дня"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: from (optional, YYYY-MM-DD), days (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query().Get("from"), r.URL.Query().Get("days"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid days: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDays)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid days: days=%d", useCaseReq.Days)
			handlers.RespondBadRequest(w, msgInvalidDays)

		case errors.Is(err, getCalendar.ErrInvalidDate):
			h.logger.Warn("GET /calendar - Invalid date: from=%q", useCaseReq.From)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: from=%q, days=%d, error=%v",
				useCaseReq.From, useCaseReq.Days, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Calendar built: days=%d", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
