package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"routeboard/internal/core/application/editor"
	"routeboard/internal/core/domain/services"
	"routeboard/internal/jobs"
	"routeboard/internal/pkg/errs"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RefreshSchedule      string
	SaveTimeout          time.Duration
	DropOverlapThreshold float64
	SessionIdleTimeout   time.Duration
}

// LoadConfig reads envFile into the process environment when it exists, then
// builds the Config from the environment. Variables already set win over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds a Config from getenv, applying defaults to unset values.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	withDefault := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		HTTPPort:        withDefault("HTTP_PORT", "8080"),
		DBHost:          withDefault("DB_HOST", "localhost"),
		DBPort:          withDefault("DB_PORT", "5432"),
		DBUser:          getenv("DB_USER"),
		DBPassword:      getenv("DB_PASSWORD"),
		DBName:          getenv("DB_NAME"),
		DBSslMode:       withDefault("DB_SSLMODE", "disable"),
		RefreshSchedule: withDefault("REFRESH_SCHEDULE", jobs.DefaultRefreshSchedule),
	}

	var err1, err2, err3 error
	cfg.SaveTimeout, err1 = parseDuration("SAVE_TIMEOUT", withDefault("SAVE_TIMEOUT", editor.DefaultSaveTimeout.String()))
	cfg.SessionIdleTimeout, err2 = parseDuration("SESSION_IDLE_TIMEOUT",
		withDefault("SESSION_IDLE_TIMEOUT", jobs.DefaultIdleTimeout.String()))
	cfg.DropOverlapThreshold, err3 = parseThreshold(withDefault("DROP_OVERLAP_THRESHOLD",
		strconv.FormatFloat(services.DefaultDropOverlapThreshold, 'f', -1, 64)))

	if err := errors.Join(err1, err2, err3); err != nil {
		return Config{}, err
	}

	if cfg.DBUser == "" || cfg.DBName == "" {
		return Config{}, errs.NewValueIsRequiredErrorWithCause("DB_USER/DB_NAME",
			errors.New("database user and name must be set"))
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func parseDuration(key, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	if d <= 0 {
		return 0, errs.NewValueIsOutOfRangeError(key, d, "1ns", "unbounded")
	}
	return d, nil
}

func parseThreshold(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("DROP_OVERLAP_THRESHOLD", err)
	}
	if v <= 0 || v > 1 {
		return 0, errs.NewValueIsOutOfRangeError("DROP_OVERLAP_THRESHOLD", v, 0, 1)
	}
	return v, nil
}
