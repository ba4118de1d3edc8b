package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

type SchedulerConfig struct {
	// AccrualSchedule and SweepSchedule are standard 5-field cron expressions.
	AccrualSchedule    string
	SweepSchedule      string
	RunTimeout         time.Duration
	AccrualConcurrency int
	BillingLocation    *time.Location
	UseDistributedLock bool
	LockTTL            time.Duration
}

// DefaultSchedulerConfig accrues daily at midnight and sweeps every minute.
func DefaultSchedulerConfig() (*SchedulerConfig, error) {
	loc, err := time.LoadLocation(getEnvWithDefault("BILLING_TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid BILLING_TIMEZONE: %w", err)
	}

	return &SchedulerConfig{
		AccrualSchedule:    getEnvWithDefault("ACCRUAL_SCHEDULE", "0 0 * * *"),
		SweepSchedule:      getEnvWithDefault("SWEEP_SCHEDULE", "* * * * *"),
		RunTimeout:         getEnvDurationWithDefault("JOB_RUN_TIMEOUT", 5*time.Minute),
		AccrualConcurrency: getEnvIntWithDefault("ACCRUAL_CONCURRENCY", 8),
		BillingLocation:    loc,
		UseDistributedLock: getEnvBoolWithDefault("JOB_DISTRIBUTED_LOCK", false),
		LockTTL:            getEnvDurationWithDefault("JOB_LOCK_TTL", 10*time.Minute),
	}, nil
}

// DefaultRetentionPolicy reads the request retention policy from the environment.
func DefaultRetentionPolicy() (domain.RetentionPolicy, error) {
	policy := domain.RetentionPolicy{
		Window:           getEnvDurationWithDefault("REQUEST_RETENTION_WINDOW", domain.DefaultRetentionWindow),
		Archive:          getEnvBoolWithDefault("REQUEST_RETENTION_ARCHIVE", false),
		PreserveAccepted: getEnvBoolWithDefault("REQUEST_RETENTION_PRESERVE_ACCEPTED", false),
	}
	if err := policy.Validate(); err != nil {
		return domain.RetentionPolicy{}, err
	}
	return policy, nil
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
