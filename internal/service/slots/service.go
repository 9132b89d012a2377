package slots

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-LaundryBooking/internal/domain"
	counterRepo "github.com/m04kA/SMC-LaundryBooking/internal/infra/storage/slotcounter"
)

// Settings настройки вместимости слотов
type Settings struct {
	Location               *time.Location // Локальный часовой пояс прачечной
	MaxAppointmentsPerHour int            // Потолок подтвержденных заказов в час
}

// Service проверка вместимости часовых слотов
// Сервис только читает счетчики, увеличивает их usecase подтверждения заказа
type Service struct {
	counterRepo CounterRepository
	settings    Settings
	metrics     MetricsRecorder
	logger      Logger
}

// NewService создает новый экземпляр сервиса слотов
// metrics может быть nil
func NewService(counterRepo CounterRepository, settings Settings, metrics MetricsRecorder, logger Logger) (*Service, error) {
	if settings.Location == nil {
		return nil, fmt.Errorf("%w: location is required", ErrInvalidSettings)
	}
	if settings.MaxAppointmentsPerHour <= 0 {
		return nil, fmt.Errorf("%w: max appointments per hour must be positive", ErrInvalidSettings)
	}

	return &Service{
		counterRepo: counterRepo,
		settings:    settings,
		metrics:     metrics,
		logger:      logger,
	}, nil
}

// Location возвращает локальный часовой пояс
func (s *Service) Location() *time.Location {
	return s.settings.Location
}

// IsSlotAvailable проверяет, есть ли свободное место в часе appointment
// Отсутствие счетчика означает, что час свободен
func (s *Service) IsSlotAvailable(ctx context.Context, appointment time.Time) (bool, error) {
	counter, err := s.counterRepo.GetByAppointment(ctx, appointment)
	if err != nil {
		if errors.Is(err, counterRepo.ErrCounterNotFound) {
			s.observe(true)
			return true, nil
		}
		s.logger.Error("IsSlotAvailable: failed to get counter for %s: %v", appointment.Format(time.RFC3339), err)
		return false, fmt.Errorf("%w: IsSlotAvailable - repository error: %v", ErrInternal, err)
	}

	available := !counter.IsFull(s.settings.MaxAppointmentsPerHour)
	s.observe(available)

	return available, nil
}

// IsSlotAvailableFromSessionString проверяет слот, сохраненный в сессии в формате "YYYY-MM-DD HH"
// (локальное время). Некорректная строка означает, что слот недоступен
func (s *Service) IsSlotAvailableFromSessionString(ctx context.Context, value string) (bool, error) {
	appointment, err := ParseSessionSlot(value, s.settings.Location)
	if err != nil {
		s.logger.Warn("IsSlotAvailableFromSessionString: invalid slot %q: %v", value, err)
		s.observe(false)
		return false, nil
	}

	return s.IsSlotAvailable(ctx, appointment)
}

// SlotsTaken возвращает полностью занятые часы в диапазоне [minDate, maxDate]
// Ключ - локальная дата YYYY-MM-DD, значение - локальные часы по возрастанию.
// Даты без занятых часов в результат не попадают
func (s *Service) SlotsTaken(ctx context.Context, minDate, maxDate time.Time) (map[string][]int, error) {
	counters, err := s.counterRepo.GetFullInRange(ctx, minDate, maxDate, s.settings.MaxAppointmentsPerHour)
	if err != nil {
		s.logger.Error("SlotsTaken: failed to get counters from %s to %s: %v",
			minDate.Format(time.RFC3339), maxDate.Format(time.RFC3339), err)
		return nil, fmt.Errorf("%w: SlotsTaken - repository error: %v", ErrInternal, err)
	}

	taken := make(map[string][]int)
	for _, counter := range counters {
		local := counter.Appointment.In(s.settings.Location)
		date := local.Format(domain.DateFormat)
		taken[date] = append(taken[date], local.Hour())
	}

	for _, hours := range taken {
		sort.Ints(hours)
	}

	return taken, nil
}

// MarkUnavailableSlots помечает занятые часы в сетке календаря (Available = false)
// Окно запроса покрывает дни сетки целиком: от полуночи первого дня до 23:59:59 последнего.
// Сетка изменяется на месте и возвращается для удобства
func (s *Service) MarkUnavailableSlots(ctx context.Context, grid []domain.CalendarDay) ([]domain.CalendarDay, error) {
	if len(grid) == 0 {
		return grid, nil
	}

	minDate, maxDate, err := s.gridWindow(grid)
	if err != nil {
		return nil, err
	}

	taken, err := s.SlotsTaken(ctx, minDate, maxDate)
	if err != nil {
		return nil, err
	}

	if len(taken) == 0 {
		return grid, nil
	}

	for i := range grid {
		hours, ok := taken[grid[i].Date]
		if !ok {
			continue
		}

		unavailable := make(map[string]struct{}, len(hours))
		for _, h := range hours {
			unavailable[fmt.Sprintf("%02d", h)] = struct{}{}
		}

		for j := range grid[i].Hours {
			if _, busy := unavailable[grid[i].Hours[j].Hour]; busy {
				grid[i].Hours[j].Available = false
			}
		}
	}

	return grid, nil
}

// gridWindow вычисляет окно [полночь первого дня, 23:59:59 последнего дня] в локальном времени
func (s *Service) gridWindow(grid []domain.CalendarDay) (time.Time, time.Time, error) {
	var first, last time.Time

	for i, day := range grid {
		date, err := time.ParseInLocation(domain.DateFormat, day.Date, s.settings.Location)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: MarkUnavailableSlots - invalid grid date %q: %v", ErrInternal, day.Date, err)
		}
		if i == 0 || date.Before(first) {
			first = date
		}
		if i == 0 || date.After(last) {
			last = date
		}
	}

	maxDate := time.Date(last.Year(), last.Month(), last.Day(), 23, 59, 59, 0, s.settings.Location)

	return first, maxDate, nil
}

func (s *Service) observe(available bool) {
	if s.metrics != nil {
		s.metrics.ObserveSlotCheck(available)
	}
}
