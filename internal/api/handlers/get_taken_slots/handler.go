package get_taken_slots

import (
	"net/http"

	"github.com/m04kA/SMC-LaundryBooking/internal/api/handlers"
	"github.com/m04kA/SMC-LaundryBooking/internal/service/slots"
)

const (
	msgMissingRange = "параметры from и to обязательны"
	msgInvalidRange = "некорректный диапазон дат, ожидается YYYY-MM-DD и from <= to"
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/taken
// Query params: from, to (required, YYYY-MM-DD, включительно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /slots/taken - Missing range: from=%q, to=%q", fromStr, toStr)
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	from, to, err := slots.ParseDayRange(fromStr, toStr, h.service.Location())
	if err != nil {
		h.logger.Warn("GET /slots/taken - Invalid range: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	taken, err := h.service.SlotsTaken(r.Context(), from, to)
	if err != nil {
		h.logger.Error("GET /slots/taken - Failed to get taken slots: from=%s, to=%s, error=%v", fromStr, toStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots/taken - Taken slots retrieved: from=%s, to=%s, days=%d", fromStr, toStr, len(taken))
	handlers.RespondJSON(w, http.StatusOK, &TakenSlotsResponse{
		From:  fromStr,
		To:    toStr,
		Taken: taken,
	})
}
