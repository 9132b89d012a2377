package check_slot

import (
	"net/http"

	"github.com/m04kA/SMC-LaundryBooking/internal/api/handlers"
)

const (
	msgMissingSlot = "слот обязателен"
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

// Handle GET /api/v1/slots/check
// Query params: slot (required, "YYYY-MM-DD HH" локальное время)
// Некорректный слот не ошибка: ответ 200 с available=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slot := r.URL.Query().Get("slot")
	if slot == "" {
		h.logger.Warn("GET /slots/check - Missing slot")
		handlers.RespondBadRequest(w, msgMissingSlot)
		return
	}

	available, err := h.service.IsSlotAvailableFromSessionString(r.Context(), slot)
	if err != nil {
		h.logger.Error("GET /slots/check - Failed to check slot: slot=%q, error=%v", slot, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots/check - Slot checked: slot=%q, available=%t", slot, available)
	handlers.RespondJSON(w, http.StatusOK, &CheckSlotResponse{
		Slot:      slot,
		Available: available,
	})
}
