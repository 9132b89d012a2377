package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-LaundryBooking/internal/domain"
)

// UseCase use case построения календаря доступных часов
type UseCase struct {
	slotsService SlotsService
	settings     Settings
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotsService SlotsService, settings Settings, logger Logger) *UseCase {
	return &UseCase{
		slotsService: slotsService,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит сетку на req.Days дней и отмечает занятые часы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: from=%q, days=%d", req.From, req.Days)

	days, err := resolveDays(req.Days, uc.settings)
	if err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	start, err := resolveStart(req.From, uc.timeProvider.Now(), uc.settings.Location)
	if err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	grid := buildGrid(start, days, uc.settings.FirstHour, uc.settings.LastHour)

	grid, err = uc.slotsService.MarkUnavailableSlots(ctx, grid)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to mark unavailable slots: %v", err)
		return nil, fmt.Errorf("%w: failed to mark unavailable slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetCalendar: built %d days from %s", len(grid), start.Format(domain.DateFormat))

	return &Response{
		From: start,
		Days: grid,
	}, nil
}

// buildGrid строит сетку: days дней начиная со start, в каждом часы firstHour..lastHour, все свободны
func buildGrid(start time.Time, days, firstHour, lastHour int) []domain.CalendarDay {
	grid := make([]domain.CalendarDay, days)

	for d := 0; d < days; d++ {
		date := start.AddDate(0, 0, d)
		hours := make([]domain.HourSlot, 0, lastHour-firstHour+1)
		for h := firstHour; h <= lastHour; h++ {
			hours = append(hours, domain.HourSlot{
				Hour:      fmt.Sprintf("%02d", h),
				Available: true,
			})
		}
		grid[d] = domain.CalendarDay{
			Date:  date.Format(domain.DateFormat),
			Hours: hours,
		}
	}

	return grid
}
