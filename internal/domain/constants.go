package domain

// Default configuration values
const (
	DefaultTimezone               = "Europe/London"
	DefaultMaxAppointmentsPerHour = 2
	DefaultFirstHour              = 8
	DefaultLastHour               = 20
	DefaultCalendarDays           = 7
	DefaultMaxCalendarDays        = 31
)

// Time format constants
const (
	DateFormat        = "2006-01-02"    // YYYY-MM-DD
	HourFormat        = "15"            // HH
	SessionSlotFormat = "2006-01-02 15" // YYYY-MM-DD HH, выбор слота, сохраненный в сессии
)
