package lookup_address

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LaundryBooking/internal/api/handlers"
	"github.com/m04kA/SMC-LaundryBooking/internal/api/middleware"
)

const (
	msgInvalidCustomerID = "некорректный ID клиента"
	msgMissingPostcode   = "индекс обязателен"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
	msgNotFound          = "адрес с таким индексом не найден"
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

// Handle GET /api/v1/customers/{customerId}/addresses/lookup
// Query params: postcode (required, полный индекс или outcode)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	customerID, err := strconv.ParseInt(vars["customerId"], 10, 64)
	if err != nil || customerID <= 0 {
		h.logger.Warn("GET /customers/{id}/addresses/lookup - Invalid customer ID: %q", vars["customerId"])
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	fragment := r.URL.Query().Get("postcode")
	if fragment == "" {
		h.logger.Warn("GET /customers/{id}/addresses/lookup - Missing postcode: customer_id=%d", customerID)
		handlers.RespondBadRequest(w, msgMissingPostcode)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /customers/{id}/addresses/lookup - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if userID != customerID {
		h.logger.Warn("GET /customers/{id}/addresses/lookup - Access denied: customer_id=%d, user_id=%d", customerID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	address, err := h.service.OrderAddressLookup(r.Context(), customerID, fragment)
	if err != nil {
		h.logger.Error("GET /customers/{id}/addresses/lookup - Failed to lookup address: customer_id=%d, error=%v", customerID, err)
		handlers.RespondInternalError(w)
		return
	}

	// Неразборчивый индекс и отсутствие совпадений неотличимы для клиента
	if address == nil {
		h.logger.Info("GET /customers/{id}/addresses/lookup - No match: customer_id=%d, postcode=%q", customerID, fragment)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	h.logger.Info("GET /customers/{id}/addresses/lookup - Address found: customer_id=%d, address_id=%d", customerID, address.ID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(address))
}
