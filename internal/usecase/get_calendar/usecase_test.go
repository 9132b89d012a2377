package get_calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LaundryBooking/internal/domain"
)

type MockSlotsService struct {
	mock.Mock
}

func (m *MockSlotsService) MarkUnavailableSlots(ctx context.Context, grid []domain.CalendarDay) ([]domain.CalendarDay, error) {
	args := m.Called(ctx, grid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CalendarDay), args.Error(1)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(slots SlotsService) *UseCase {
	uc := NewUseCase(slots, Settings{
		Location:    time.UTC,
		FirstHour:   8,
		LastHour:    10,
		DefaultDays: 2,
		MaxDays:     5,
	}, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2015, 3, 18, 14, 30, 0, 0, time.UTC)}
	return uc
}

func freeHours() []domain.HourSlot {
	return []domain.HourSlot{
		{Hour: "08", Available: true},
		{Hour: "09", Available: true},
		{Hour: "10", Available: true},
	}
}

func TestExecute_DefaultsToToday(t *testing.T) {
	slots := &MockSlotsService{}

	expectedGrid := []domain.CalendarDay{
		{Date: "2015-03-18", Hours: freeHours()},
		{Date: "2015-03-19", Hours: freeHours()},
	}
	marked := []domain.CalendarDay{
		{Date: "2015-03-18", Hours: freeHours()},
		{Date: "2015-03-19", Hours: []domain.HourSlot{
			{Hour: "08", Available: true},
			{Hour: "09", Available: false},
			{Hour: "10", Available: true},
		}},
	}

	slots.On("MarkUnavailableSlots", mock.Anything, expectedGrid).Return(marked, nil).Once()

	resp, err := newUseCase(slots).Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2015, 3, 18, 0, 0, 0, 0, time.UTC), resp.From)
	assert.Equal(t, marked, resp.Days)
	slots.AssertExpectations(t)
}

func TestExecute_ExplicitRange(t *testing.T) {
	slots := &MockSlotsService{}

	slots.On("MarkUnavailableSlots", mock.Anything, mock.MatchedBy(func(grid []domain.CalendarDay) bool {
		return len(grid) == 3 &&
			grid[0].Date == "2015-03-20" &&
			grid[2].Date == "2015-03-22"
	})).Return([]domain.CalendarDay{}, nil).Once()

	_, err := newUseCase(slots).Execute(context.Background(), &Request{From: "2015-03-20", Days: 3})
	require.NoError(t, err)
	slots.AssertExpectations(t)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{name: "negative days", req: Request{Days: -1}, wantErr: ErrInvalidInput},
		{name: "too many days", req: Request{Days: 6}, wantErr: ErrInvalidInput},
		{name: "malformed date", req: Request{From: "18/03/2015"}, wantErr: ErrInvalidDate},
		{name: "past date", req: Request{From: "2015-03-17"}, wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := &MockSlotsService{}

			_, err := newUseCase(slots).Execute(context.Background(), &tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
			slots.AssertNotCalled(t, "MarkUnavailableSlots", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_ServiceError(t *testing.T) {
	slots := &MockSlotsService{}
	slots.On("MarkUnavailableSlots", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err := newUseCase(slots).Execute(context.Background(), &Request{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInternal))
}

func TestBuildGrid_CrossesMonthBoundary(t *testing.T) {
	grid := buildGrid(time.Date(2015, 3, 31, 0, 0, 0, 0, time.UTC), 2, 19, 20)

	require.Len(t, grid, 2)
	assert.Equal(t, "2015-03-31", grid[0].Date)
	assert.Equal(t, "2015-04-01", grid[1].Date)
	assert.Equal(t, []domain.HourSlot{{Hour: "19", Available: true}, {Hour: "20", Available: true}}, grid[1].Hours)
}
