package domain

import (
	"fmt"
	"time"
)

// DefaultRetentionWindow is how long tenancy and payment requests are kept.
const DefaultRetentionWindow = 72 * time.Hour

// RetentionPolicy controls the expiry sweep over requests and payment requests.
type RetentionPolicy struct {
	// Window is the age after which a row is swept, regardless of status.
	Window time.Duration `json:"window"`

	// Archive uploads the swept rows before they are deleted.
	Archive bool `json:"archive"`

	// PreserveAccepted keeps accepted tenancy requests as assignment history.
	PreserveAccepted bool `json:"preserve_accepted"`
}

func DefaultRetentionPolicy() RetentionPolicy {
	return RetentionPolicy{Window: DefaultRetentionWindow}
}

func (p RetentionPolicy) Validate() error {
	if p.Window <= 0 {
		return fmt.Errorf("retention window must be positive, got %s: %w", p.Window, ErrValidation)
	}
	return nil
}

// Cutoff returns the creation time before which rows are swept.
func (p RetentionPolicy) Cutoff(now time.Time) time.Time {
	return now.Add(-p.Window)
}

// SweepResult summarises one expiry sweep.
type SweepResult struct {
	Cutoff                 time.Time `json:"cutoff"`
	RequestsDeleted        int64     `json:"requests_deleted"`
	PaymentRequestsDeleted int64     `json:"payment_requests_deleted"`
	ArchiveKey             string    `json:"archive_key,omitempty"`
}

// AccrualResult summarises one accrual run.
type AccrualResult struct {
	Scanned int `json:"scanned"`
	Accrued int `json:"accrued"`
	Failed  int `json:"failed"`
}
