package cmd

import (
	"fmt"
	"time"
)

type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	ShippingDelay       time.Duration
	DeliveryJobSchedule string
}

const (
	defaultShippingDelay       = 24 * time.Hour
	defaultDeliveryJobSchedule = "0 * * * * *"
)

// DSN builds the PostgreSQL connection string from the DB_* settings.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// ParseShippingDelay reads SHIPPING_DELAY as a Go duration such as "24h".
// An empty value falls back to one day.
func ParseShippingDelay(raw string) (time.Duration, error) {
	if raw == "" {
		return defaultShippingDelay, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("SHIPPING_DELAY: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("SHIPPING_DELAY: %s is negative", raw)
	}
	return d, nil
}

// DeliveryJobScheduleOrDefault returns raw, or a once-a-minute schedule when raw is empty.
func DeliveryJobScheduleOrDefault(raw string) string {
	if raw == "" {
		return defaultDeliveryJobSchedule
	}
	return raw
}
