package lookup_address

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-LaundryBooking/internal/api/middleware"
	"github.com/m04kA/SMC-LaundryBooking/internal/domain"
)

type MockAddressService struct {
	mock.Mock
}

func (m *MockAddressService) OrderAddressLookup(ctx context.Context, customerID int64, fragment string) (*domain.Address, error) {
	args := m.Called(ctx, customerID, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func request(customerID, postcode string, userID int64) *http.Request {
	target := "/api/v1/customers/" + customerID + "/addresses/lookup"
	if postcode != "" {
		target += "?postcode=" + url.QueryEscape(postcode)
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = mux.SetURLVars(req, map[string]string{"customerId": customerID})
	if userID != 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	return req
}

func TestHandle(t *testing.T) {
	service := &MockAddressService{}
	service.On("OrderAddressLookup", mock.Anything, int64(7), "sw7").Return(&domain.Address{
		ID:           3,
		CustomerID:   7,
		AddressLine1: "1 Exhibition Road",
		TownOrCity:   "London",
		Postcode:     "SW7 2AZ",
	}, nil).Once()

	rec := httptest.NewRecorder()
	NewHandler(service, nopLogger{}).Handle(rec, request("7", "sw7", 7))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":3,"addressLine1":"1 Exhibition Road","townOrCity":"London","postcode":"SW7 2AZ"}`, rec.Body.String())
	service.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		customerID string
		postcode   string
		userID     int64
		callsSvc   bool
		err        error
		wantStatus int
	}{
		{name: "no match", customerID: "7", postcode: "sw1867", userID: 7, callsSvc: true, wantStatus: http.StatusNotFound},
		{name: "storage error", customerID: "7", postcode: "SW7", userID: 7, callsSvc: true, err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
		{name: "missing postcode", customerID: "7", userID: 7, wantStatus: http.StatusBadRequest},
		{name: "other customer", customerID: "7", postcode: "SW7", userID: 9, wantStatus: http.StatusForbidden},
		{name: "no user", customerID: "7", postcode: "SW7", wantStatus: http.StatusUnauthorized},
		{name: "bad id", customerID: "-1", postcode: "SW7", userID: 7, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &MockAddressService{}
			if tt.callsSvc {
				service.On("OrderAddressLookup", mock.Anything, int64(7), tt.postcode).Return(nil, tt.err).Once()
			}

			rec := httptest.NewRecorder()
			NewHandler(service, nopLogger{}).Handle(rec, request(tt.customerID, tt.postcode, tt.userID))

			assert.Equal(t, tt.wantStatus, rec.Code)
			service.AssertExpectations(t)
		})
	}
}
