package get_last_postcode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-LaundryBooking/internal/api/middleware"
	"github.com/m04kA/SMC-LaundryBooking/pkg/ptr"
)

type MockAddressService struct {
	mock.Mock
}

func (m *MockAddressService) PostcodeFromLastOrder(ctx context.Context, customerID int64) (*string, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func request(customerID string, userID int64) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/"+customerID+"/last-postcode", nil)
	req = mux.SetURLVars(req, map[string]string{"customerId": customerID})
	if userID != 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	return req
}

func TestHandle(t *testing.T) {
	service := &MockAddressService{}
	service.On("PostcodeFromLastOrder", mock.Anything, int64(7)).Return(ptr.Ptr("SW7 2AZ"), nil).Once()

	rec := httptest.NewRecorder()
	NewHandler(service, nopLogger{}).Handle(rec, request("7", 7))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"customerId":7,"postcode":"SW7 2AZ"}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		customerID string
		userID     int64
		postcode   *string
		err        error
		callsSvc   bool
		wantStatus int
	}{
		{name: "no postcode", customerID: "7", userID: 7, callsSvc: true, wantStatus: http.StatusNotFound},
		{name: "storage error", customerID: "7", userID: 7, err: errors.New("db down"), callsSvc: true, wantStatus: http.StatusInternalServerError},
		{name: "other customer", customerID: "7", userID: 8, wantStatus: http.StatusForbidden},
		{name: "no user", customerID: "7", wantStatus: http.StatusUnauthorized},
		{name: "bad id", customerID: "seven", userID: 7, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &MockAddressService{}
			if tt.callsSvc {
				service.On("PostcodeFromLastOrder", mock.Anything, int64(7)).Return(nil, tt.err).Once()
			}

			rec := httptest.NewRecorder()
			NewHandler(service, nopLogger{}).Handle(rec, request(tt.customerID, tt.userID))

			assert.Equal(t, tt.wantStatus, rec.Code)
			service.AssertExpectations(t)
		})
	}
}
