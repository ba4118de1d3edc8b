package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestStatus_Transition(t *testing.T) {
	next, err := RequestPending.Transition(RequestAccepted)
	require.NoError(t, err)
	assert.Equal(t, RequestAccepted, next)

	next, err = RequestPending.Transition(RequestRejected)
	require.NoError(t, err)
	assert.Equal(t, RequestRejected, next)

	for _, from := range []RequestStatus{RequestAccepted, RequestRejected} {
		for _, to := range []RequestStatus{RequestPending, RequestAccepted, RequestRejected} {
			_, err := from.Transition(to)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.ErrorIs(t, err, ErrConflict)
		}
	}

	_, err = RequestPending.Transition(RequestPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRequest_AcceptAndReject(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	r := &Request{Status: RequestPending}

	require.NoError(t, r.Accept(now))
	assert.Equal(t, RequestAccepted, r.Status)
	assert.Equal(t, now, *r.AcceptedAt)
	assert.Error(t, r.Reject())

	pr := &PaymentRequest{Status: RequestPending, Amount: decimal.NewFromInt(10)}
	require.NoError(t, pr.Accept())
	assert.Error(t, pr.Accept())
}

func TestMergeFeed_PendingFirstThenNewest(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	requests := []Request{
		{ID: "r-old-pending", Status: RequestPending, CreatedAt: base},
		{ID: "r-new-rejected", Status: RequestRejected, CreatedAt: base.Add(5 * time.Hour)},
	}
	payments := []PaymentRequest{
		{ID: "p-new-pending", Status: RequestPending, CreatedAt: base.Add(3 * time.Hour), Amount: decimal.NewFromInt(200)},
		{ID: "p-old-accepted", Status: RequestAccepted, CreatedAt: base.Add(time.Hour), Amount: decimal.NewFromInt(50)},
	}

	feed := MergeFeed(requests, payments)

	ids := make([]string, len(feed))
	for i, item := range feed {
		ids[i] = item.ID
	}
	assert.Equal(t, []string{"p-new-pending", "r-old-pending", "r-new-rejected", "p-old-accepted"}, ids)
	assert.Equal(t, KindPayment, feed[0].Kind)
	assert.Equal(t, "200", feed[0].Amount.String())
	assert.Equal(t, KindTenancy, feed[1].Kind)
	assert.Nil(t, feed[1].Amount)
}

func TestRetentionPolicy(t *testing.T) {
	p := DefaultRetentionPolicy()
	require.NoError(t, p.Validate())

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 5, 7, 12, 0, 0, 0, time.UTC), p.Cutoff(now))

	assert.ErrorIs(t, RetentionPolicy{}.Validate(), ErrValidation)
}
