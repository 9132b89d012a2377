package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkSlotHandler "github.com/m04kA/SMC-LaundryBooking/internal/api/handlers/check_slot"
	confirmOrderHandler "github.com/m04kA/SMC-LaundryBooking/internal/api/handlers/confirm_order"
	getCalendarHandler "github.com/m04kA/SMC-LaundryBooking/internal/api/handlers/get_calendar"
	getLastPostcodeHandler "github.com/m04kA/SMC-LaundryBooking/internal/api/handlers/get_last_postcode"
	getTakenSlotsHandler "github.com/m04kA/SMC-LaundryBooking/internal/api/handlers/get_taken_slots"
	lookupAddressHandler "github.com/m04kA/SMC-LaundryBooking/internal/api/handlers/lookup_address"
	"github.com/m04kA/SMC-LaundryBooking/internal/api/middleware"
	"github.com/m04kA/SMC-LaundryBooking/internal/config"
	"github.com/m04kA/SMC-LaundryBooking/internal/infra/storage/migrations"
	orderRepo "github.com/m04kA/SMC-LaundryBooking/internal/infra/storage/order"
	counterRepo "github.com/m04kA/SMC-LaundryBooking/internal/infra/storage/slotcounter"
	addressesService "github.com/m04kA/SMC-LaundryBooking/internal/service/addresses"
	slotsService "github.com/m04kA/SMC-LaundryBooking/internal/service/slots"
	confirmOrderUC "github.com/m04kA/SMC-LaundryBooking/internal/usecase/confirm_order"
	getCalendarUC "github.com/m04kA/SMC-LaundryBooking/internal/usecase/get_calendar"
	"github.com/m04kA/SMC-LaundryBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-LaundryBooking/pkg/logger"
	"github.com/m04kA/SMC-LaundryBooking/pkg/metrics"
	"github.com/m04kA/SMC-LaundryBooking/pkg/postcode"
	"github.com/m04kA/SMC-LaundryBooking/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-LaundryBooking...")
	log.Info("Configuration loaded from config.toml (timezone=%s, max_appointments_per_hour=%d)",
		cfg.Booking.Timezone, cfg.Booking.MaxAppointmentsPerHour)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if cfg.Migrations.Enabled {
		if err := migrations.NewRunner(db, log).Up(); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Без метрик обертка только переносит транзакцию через контекст
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	counterRepository := counterRepo.NewRepository(wrappedDB)
	orderRepository := orderRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	location := cfg.Booking.Location()

	slotsSvc, err := slotsService.NewService(
		counterRepository,
		slotsService.Settings{
			Location:               location,
			MaxAppointmentsPerHour: cfg.Booking.MaxAppointmentsPerHour,
		},
		metricsCollector,
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize slots service: %v", err)
	}

	addressesSvc := addressesService.NewService(
		orderRepository,
		postcode.NewParser(),
		log,
	)

	// Инициализируем use cases
	getCalendarUseCase := getCalendarUC.NewUseCase(
		slotsSvc,
		getCalendarUC.Settings{
			Location:    location,
			FirstHour:   cfg.Booking.FirstHour,
			LastHour:    cfg.Booking.LastHour,
			DefaultDays: cfg.Booking.CalendarDays,
			MaxDays:     cfg.Booking.MaxCalendarDays,
		},
		log,
	)

	confirmOrderUseCase := confirmOrderUC.NewUseCase(
		orderRepository,
		counterRepository,
		txMgr,
		confirmOrderUC.Settings{
			Location:               location,
			MaxAppointmentsPerHour: cfg.Booking.MaxAppointmentsPerHour,
		},
		log,
	)

	// Инициализируем handlers
	checkSlot := checkSlotHandler.NewHandler(slotsSvc, log)
	getTakenSlots := getTakenSlotsHandler.NewHandler(slotsSvc, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getLastPostcode := getLastPostcodeHandler.NewHandler(addressesSvc, log)
	lookupAddress := lookupAddressHandler.NewHandler(addressesSvc, log)
	confirmOrder := confirmOrderHandler.NewHandler(confirmOrderUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка часа, выбранного в сессии
	api.HandleFunc("/slots/check", checkSlot.Handle).Methods(http.MethodGet)

	// Полностью занятые часы в диапазоне дат
	api.HandleFunc("/slots/taken", getTakenSlots.Handle).Methods(http.MethodGet)

	// Календарь с отмеченными занятыми часами
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Адреса клиента ---
	protected.HandleFunc("/customers/{customerId}/last-postcode", getLastPostcode.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{customerId}/addresses/lookup", lookupAddress.Handle).Methods(http.MethodGet)

	// --- Заказы ---
	protected.HandleFunc("/orders/{orderId}/confirm", confirmOrder.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
