package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Shift    ShiftConfig
	Schedule ScheduleConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// ShiftConfig holds the clinic's attendance policy: when the working day
// starts, how long clock-ins still count as on-time, and the daily hour
// threshold separating regular from overtime pay.
type ShiftConfig struct {
	StartTime          string // "15:04:05"
	GracePeriodMinutes int
	StandardShiftHours int
}

// ScheduleConfig holds auto-scheduling parameters.
type ScheduleConfig struct {
	BaseStartHour         int // first shift slot of the day
	CutoffHour            int // no shift may end past this hour
	ReliabilityWindowDays int // trailing window for reliability scores
	AbsenceJobHour        int // local clinic hour the absence job fires at
}

func Load() (*Config, error) {
	// A missing .env file is fine in production; env vars take over.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "clinicore_staffops"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	graceMinutes, err := strconv.Atoi(getEnv("SHIFT_GRACE_PERIOD_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHIFT_GRACE_PERIOD_MINUTES: %w", err)
	}

	standardHours, err := strconv.Atoi(getEnv("SHIFT_STANDARD_HOURS", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHIFT_STANDARD_HOURS: %w", err)
	}

	config.Shift = ShiftConfig{
		StartTime:          getEnv("SHIFT_START_TIME", "08:00:00"),
		GracePeriodMinutes: graceMinutes,
		StandardShiftHours: standardHours,
	}

	baseStartHour, err := strconv.Atoi(getEnv("SCHEDULE_BASE_START_HOUR", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_BASE_START_HOUR: %w", err)
	}

	cutoffHour, err := strconv.Atoi(getEnv("SCHEDULE_CUTOFF_HOUR", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_CUTOFF_HOUR: %w", err)
	}

	reliabilityWindow, err := strconv.Atoi(getEnv("SCHEDULE_RELIABILITY_WINDOW_DAYS", "90"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_RELIABILITY_WINDOW_DAYS: %w", err)
	}

	absenceJobHour, err := strconv.Atoi(getEnv("ABSENCE_JOB_HOUR", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid ABSENCE_JOB_HOUR: %w", err)
	}

	config.Schedule = ScheduleConfig{
		BaseStartHour:         baseStartHour,
		CutoffHour:            cutoffHour,
		ReliabilityWindowDays: reliabilityWindow,
		AbsenceJobHour:        absenceJobHour,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Shift.GracePeriodMinutes < 0 {
		return fmt.Errorf("SHIFT_GRACE_PERIOD_MINUTES must not be negative")
	}
	if c.Shift.StandardShiftHours <= 0 {
		return fmt.Errorf("SHIFT_STANDARD_HOURS must be positive")
	}
	if c.Schedule.CutoffHour <= c.Schedule.BaseStartHour {
		return fmt.Errorf("SCHEDULE_CUTOFF_HOUR must be after SCHEDULE_BASE_START_HOUR")
	}
	if c.Schedule.AbsenceJobHour < 0 || c.Schedule.AbsenceJobHour > 23 {
		return fmt.Errorf("ABSENCE_JOB_HOUR must be between 0 and 23")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
