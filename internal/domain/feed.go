package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type RequestKind string

const (
	KindTenancy RequestKind = "tenancy"
	KindPayment RequestKind = "payment"
)

// FeedItem is one row of the merged request feed shown to owners and tenants.
type FeedItem struct {
	Kind       RequestKind      `json:"kind"`
	ID         string           `json:"id"`
	OwnerID    string           `json:"owner_id"`
	PropertyID string           `json:"property_id"`
	TenantID   string           `json:"tenant_id"`
	Status     RequestStatus    `json:"status"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	AcceptedAt *time.Time       `json:"accepted_at,omitempty"`
}

// MergeFeed merges tenancy and payment requests: pending first, newest first within
// each group. Ties keep tenancy requests ahead of payment requests.
func MergeFeed(requests []Request, payments []PaymentRequest) []FeedItem {
	items := make([]FeedItem, 0, len(requests)+len(payments))
	for _, r := range requests {
		items = append(items, FeedItem{
			Kind:       KindTenancy,
			ID:         r.ID,
			OwnerID:    r.OwnerID,
			PropertyID: r.PropertyID,
			TenantID:   r.TenantID,
			Status:     r.Status,
			CreatedAt:  r.CreatedAt,
			AcceptedAt: r.AcceptedAt,
		})
	}
	for _, p := range payments {
		amount := p.Amount
		items = append(items, FeedItem{
			Kind:       KindPayment,
			ID:         p.ID,
			OwnerID:    p.OwnerID,
			PropertyID: p.PropertyID,
			TenantID:   p.TenantID,
			Status:     p.Status,
			Amount:     &amount,
			CreatedAt:  p.CreatedAt,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := items[i].Status == RequestPending, items[j].Status == RequestPending
		if pi != pj {
			return pi
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items
}
