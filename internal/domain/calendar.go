package domain

// CalendarDay день сетки календаря, который отрисовывается клиенту
type CalendarDay struct {
	Date  string     // YYYY-MM-DD в локальном часовом поясе
	Hours []HourSlot // Часы по порядку
}

// HourSlot часовой слот внутри дня
type HourSlot struct {
	Hour      string // "08"
	Available bool
}
