package get_calendar

import (
	"strconv"

	"github.com/m04kA/SMC-LaundryBooking/internal/domain"
	getCalendar "github.com/m04kA/SMC-LaundryBooking/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	From string        `json:"from"`
	Days []CalendarDay `json:"days"`
}

// CalendarDay день календаря
type CalendarDay struct {
	Date  string     `json:"date"`
	Hours []HourSlot `json:"hours"`
}

// HourSlot час записи
type HourSlot struct {
	Hour      string `json:"hour"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(from, daysStr string) (*getCalendar.Request, error) {
	req := &getCalendar.Request{From: from}

	if daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return nil, err
		}
		req.Days = days
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]CalendarDay, len(resp.Days))
	for i, day := range resp.Days {
		hours := make([]HourSlot, len(day.Hours))
		for j, hour := range day.Hours {
			hours[j] = HourSlot{
				Hour:      hour.Hour,
				Available: hour.Available,
			}
		}
		days[i] = CalendarDay{
			Date:  day.Date,
			Hours: hours,
		}
	}

	return &CalendarResponse{
		From: resp.From.Format(domain.DateFormat),
		Days: days,
	}
}
