package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-LaundryBooking/internal/domain"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса (config.toml)
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Booking    BookingConfig    `toml:"booking"`
	Migrations MigrationsConfig `toml:"migrations"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig настройки записи на забор/доставку
type BookingConfig struct {
	Timezone               string `toml:"timezone"`
	MaxAppointmentsPerHour int    `toml:"max_appointments_per_hour"`
	FirstHour              int    `toml:"first_hour"`
	LastHour               int    `toml:"last_hour"`
	CalendarDays           int    `toml:"calendar_days"`
	MaxCalendarDays        int    `toml:"max_calendar_days"`

	location *time.Location
}

// Location возвращает загруженный часовой пояс (после Validate)
func (c BookingConfig) Location() *time.Location {
	return c.location
}

type MigrationsConfig struct {
	Enabled bool `toml:"enabled"`
}

// Load читает конфигурацию из файла, подгружает .env (если есть)
// и применяет переопределения из переменных окружения
func Load(path string) (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 1800,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "laundry-booking",
		},
		Booking: BookingConfig{
			Timezone:               domain.DefaultTimezone,
			MaxAppointmentsPerHour: domain.DefaultMaxAppointmentsPerHour,
			FirstHour:              domain.DefaultFirstHour,
			LastHour:               domain.DefaultLastHour,
			CalendarDays:           domain.DefaultCalendarDays,
			MaxCalendarDays:        domain.DefaultMaxCalendarDays,
		},
	}
}

// Validate проверяет конфигурацию и загружает часовой пояс
func (c *Config) Validate() error {
	b := &c.Booking

	if b.MaxAppointmentsPerHour <= 0 {
		return fmt.Errorf("%w: booking.max_appointments_per_hour must be positive", ErrInvalidConfig)
	}
	if b.FirstHour < 0 || b.LastHour > 23 || b.FirstHour > b.LastHour {
		return fmt.Errorf("%w: booking hours must satisfy 0 <= first_hour <= last_hour <= 23", ErrInvalidConfig)
	}
	if b.CalendarDays <= 0 || b.MaxCalendarDays < b.CalendarDays {
		return fmt.Errorf("%w: booking.calendar_days must be in 1..max_calendar_days", ErrInvalidConfig)
	}

	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return fmt.Errorf("%w: unknown booking.timezone %q: %v", ErrInvalidConfig, b.Timezone, err)
	}
	b.location = loc

	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}

	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.DBName, "DB_NAME")
	setString(&c.Booking.Timezone, "BOOKING_TIMEZONE")

	if err := setInt(&c.Database.Port, "DB_PORT"); err != nil {
		return err
	}
	if err := setInt(&c.Server.HTTPPort, "HTTP_PORT"); err != nil {
		return err
	}
	if err := setInt(&c.Booking.MaxAppointmentsPerHour, "BOOKING_MAX_APPOINTMENTS_PER_HOUR"); err != nil {
		return err
	}

	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	*dst = n
	return nil
}
