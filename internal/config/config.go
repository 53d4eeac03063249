package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress          string
	DatabaseURI         string
	StripeSecretKey     string
	StripeWebhookSecret string
	CheckoutSuccessURL  string
	CheckoutCancelURL   string
	JWTSecret           string
	AdminEmail          string
	ShutdownTimeout     time.Duration
	PendingAlertAge     time.Duration
	PendingPollInterval time.Duration
}

const (
	defaultRunAddress          = ":8080"
	defaultJWTSecret           = "change-me-in-production"
	defaultShutdownTimeout     = 10 * time.Second
	defaultPendingAlertAge     = 30 * time.Minute
	defaultPendingPollInterval = 5 * time.Minute
)

// Load parses configuration from .env, environment variables and flags.
func Load() (*Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		StripeSecretKey:     getString(lookup, "STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret: getString(lookup, "STRIPE_WEBHOOK_SECRET", ""),
		CheckoutSuccessURL:  getString(lookup, "CHECKOUT_SUCCESS_URL", ""),
		CheckoutCancelURL:   getString(lookup, "CHECKOUT_CANCEL_URL", ""),
		JWTSecret:           getString(lookup, "JWT_SECRET", defaultJWTSecret),
		AdminEmail:          getString(lookup, "ADMIN_EMAIL", ""),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		PendingAlertAge:     getDuration(lookup, "PENDING_ALERT_AGE", defaultPendingAlertAge),
		PendingPollInterval: getDuration(lookup, "PENDING_POLL_INTERVAL", defaultPendingPollInterval),
	}

	fs := flag.NewFlagSet("pawmart", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		alertAgeStr        = cfg.PendingAlertAge.String()
		pollIntervalStr    = cfg.PendingPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.CheckoutSuccessURL, "success-url", cfg.CheckoutSuccessURL, "Checkout success redirect URL")
	fs.StringVar(&cfg.CheckoutCancelURL, "cancel-url", cfg.CheckoutCancelURL, "Checkout cancel redirect URL")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.AdminEmail, "admin-email", cfg.AdminEmail, "Email promoted to admin role at registration")
	fs.StringVar(&alertAgeStr, "pending-alert-age", alertAgeStr, "Age after which a Pending order is reported")
	fs.StringVar(&pollIntervalStr, "pending-poll-interval", pollIntervalStr, "Interval between pending order sweeps")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.PendingAlertAge, err = time.ParseDuration(alertAgeStr); err != nil {
		return nil, fmt.Errorf("invalid pending alert age: %w", err)
	}

	if cfg.PendingPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid pending poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.PendingAlertAge <= 0 {
		cfg.PendingAlertAge = defaultPendingAlertAge
	}

	if cfg.PendingPollInterval <= 0 {
		cfg.PendingPollInterval = defaultPendingPollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("stripe secret key must be provided")
	}

	if cfg.StripeWebhookSecret == "" {
		return nil, fmt.Errorf("stripe webhook signing secret must be provided")
	}

	if cfg.CheckoutSuccessURL == "" || cfg.CheckoutCancelURL == "" {
		return nil, fmt.Errorf("checkout success and cancel URLs must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
