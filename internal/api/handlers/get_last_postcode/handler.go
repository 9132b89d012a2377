package get_last_postcode

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LaundryBooking/internal/api/handlers"
	"github.com/m04kA/SMC-LaundryBooking/internal/api/middleware"
)

const (
	msgInvalidCustomerID = "некорректный ID клиента"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
	msgNotFound          = "у клиента нет заказов с индексом"
)

type Handler struct {
	service AddressService
	logger  Logger
}

func NewHandler(service AddressService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{customerId}/last-postcode
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	customerID, err := strconv.ParseInt(vars["customerId"], 10, 64)
	if err != nil || customerID <= 0 {
		h.logger.Warn("GET /customers/{id}/last-postcode - Invalid customer ID: %q", vars["customerId"])
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /customers/{id}/last-postcode - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if userID != customerID {
		h.logger.Warn("GET /customers/{id}/last-postcode - Access denied: customer_id=%d, user_id=%d", customerID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	postcode, err := h.service.PostcodeFromLastOrder(r.Context(), customerID)
	if err != nil {
		h.logger.Error("GET /customers/{id}/last-postcode - Failed to get postcode: customer_id=%d, error=%v", customerID, err)
		handlers.RespondInternalError(w)
		return
	}

	if postcode == nil {
		h.logger.Info("GET /customers/{id}/last-postcode - No postcode: customer_id=%d", customerID)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	h.logger.Info("GET /customers/{id}/last-postcode - Postcode retrieved: customer_id=%d", customerID)
	handlers.RespondJSON(w, http.StatusOK, &LastPostcodeResponse{
		CustomerID: customerID,
		Postcode:   *postcode,
	})
}
