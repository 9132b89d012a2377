package confirm_order

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LaundryBooking/internal/api/handlers"
	"github.com/m04kA/SMC-LaundryBooking/internal/api/middleware"
	confirmOrder "github.com/m04kA/SMC-LaundryBooking/internal/usecase/confirm_order"
)

const (
	msgInvalidOrderID   = "некорректный ID заказа"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNotFound         = "заказ не найден"
	msgForbidden        = "доступ запрещен"
	msgCannotConfirm    = "заказ не может быть подтвержден"
	msgSlotNotAvailable = "выбранный час уже занят"
)

type Handler struct {
	useCase ConfirmOrderUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders/{orderId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	orderID, err := strconv.ParseInt(vars["orderId"], 10, 64)
	if err != nil || orderID <= 0 {
		h.logger.Warn("POST /orders/{id}/confirm - Invalid order ID: %q", vars["orderId"])
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /orders/{id}/confirm - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmOrder.Request{
		CustomerID: userID,
		OrderID:    orderID,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmOrder.ErrOrderNotFound):
			h.logger.Warn("POST /orders/{id}/confirm - Order not found: order_id=%d", orderID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmOrder.ErrAccessDenied):
			h.logger.Warn("POST /orders/{id}/confirm - Access denied: order_id=%d, user_id=%d", orderID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, confirmOrder.ErrInvalidStatus):
			h.logger.Warn("POST /orders/{id}/confirm - Cannot confirm: order_id=%d", orderID)
			handlers.RespondBadRequest(w, msgCannotConfirm)

		case errors.Is(err, confirmOrder.ErrSlotNotAvailable):
			h.logger.Warn("POST /orders/{id}/confirm - Slot not available: order_id=%d", orderID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /orders/{id}/confirm - Failed to confirm order: order_id=%d, request_id=%s, error=%v",
				orderID, middleware.GetRequestID(r.Context()), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders/{id}/confirm - Order confirmed: order_id=%d, slot=%s", orderID, result.Slot)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
