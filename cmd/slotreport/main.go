package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/olekukonko/tablewriter"

	"github.com/m04kA/SMC-LaundryBooking/internal/config"
	"github.com/m04kA/SMC-LaundryBooking/internal/domain"
	counterRepo "github.com/m04kA/SMC-LaundryBooking/internal/infra/storage/slotcounter"
	slotsService "github.com/m04kA/SMC-LaundryBooking/internal/service/slots"
	"github.com/m04kA/SMC-LaundryBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-LaundryBooking/pkg/logger"
)

const defaultReportDays = 7

func main() {
	configPath := flag.String("config", "config.toml", "path to config.toml")
	from := flag.String("from", "", "first date YYYY-MM-DD (default: today)")
	to := flag.String("to", "", "last date YYYY-MM-DD (default: from + 6 days)")
	timeout := flag.Duration("timeout", 30*time.Second, "query timeout")
	flag.Parse()

	if err := run(*configPath, *from, *to, *timeout, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "slotreport: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, from, to string, timeout time.Duration, out io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Таблица идет в stdout, лог только в stderr
	log := logger.NewWithWriter(os.Stderr, logger.LevelWarn)

	location := cfg.Booking.Location()
	from, to = defaultRange(from, to, time.Now(), location)

	minDate, maxDate, err := slotsService.ParseDayRange(from, to, location)
	if err != nil {
		return fmt.Errorf("invalid range: %w", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	svc, err := slotsService.NewService(
		counterRepo.NewRepository(dbmetrics.Wrap(db, nil)),
		slotsService.Settings{
			Location:               location,
			MaxAppointmentsPerHour: cfg.Booking.MaxAppointmentsPerHour,
		},
		nil,
		log,
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	taken, err := svc.SlotsTaken(ctx, minDate, maxDate)
	if err != nil {
		return err
	}

	return render(out, taken, from, to)
}

// defaultRange подставляет сегодняшнюю дату и неделю вперед для пустых границ
func defaultRange(from, to string, now time.Time, loc *time.Location) (string, string) {
	if from == "" {
		from = now.In(loc).Format(domain.DateFormat)
	}
	if to == "" {
		start, err := time.ParseInLocation(domain.DateFormat, from, loc)
		if err != nil {
			return from, from
		}
		to = start.AddDate(0, 0, defaultReportDays-1).Format(domain.DateFormat)
	}
	return from, to
}

func render(out io.Writer, taken map[string][]int, from, to string) error {
	dates := make([]string, 0, len(taken))
	for date := range taken {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	fmt.Fprintf(out, "Fully booked hours %s .. %s\n", from, to)

	table := tablewriter.NewWriter(out)
	table.Header("Date", "Hours", "Count")

	for _, date := range dates {
		hours := make([]string, len(taken[date]))
		for i, h := range taken[date] {
			hours[i] = fmt.Sprintf("%02d:00", h)
		}
		if err := table.Append([]string{date, strings.Join(hours, ", "), strconv.Itoa(len(hours))}); err != nil {
			return err
		}
	}

	return table.Render()
}
