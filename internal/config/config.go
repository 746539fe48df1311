package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr        = ":8080"
	defaultDatabaseURL = "gym.db"
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultJWTTTL      = "24h"
	defaultSlotMinutes = 30
	defaultMonthlyFee  = 30.0
)

// BookingPolicy carries the slot rules the booking service enforces.
// They were hard-coded constants in earlier iterations of the system;
// injecting them lets tests run alternate policies.
type BookingPolicy struct {
	SlotDuration  time.Duration
	AllowWeekends bool
}

type Config struct {
	AppEnv      string
	Addr        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	Booking     BookingPolicy
	MonthlyFee  float64
}

func Load() (*Config, error) {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppEnv:      strings.ToLower(getEnv("APP_ENV", "dev")),
		Addr:        getEnv("ADDR", defaultAddr),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	slotMinutes, err := parseIntEnv("BOOKING_SLOT_MINUTES", defaultSlotMinutes)
	if err != nil {
		return nil, err
	}
	if slotMinutes <= 0 {
		return nil, fmt.Errorf("BOOKING_SLOT_MINUTES must be positive, got %d", slotMinutes)
	}
	cfg.Booking.SlotDuration = time.Duration(slotMinutes) * time.Minute
	cfg.Booking.AllowWeekends = getEnv("BOOKING_ALLOW_WEEKENDS", "false") == "true"

	fee, err := parseFloatEnv("MONTHLY_FEE", defaultMonthlyFee)
	if err != nil {
		return nil, err
	}
	cfg.MonthlyFee = fee

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseIntEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func parseFloatEnv(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
