package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zelligewear/zellige-api/internal/models"
)

func TestCanTransitionAllowsTableEntries(t *testing.T) {
	allowed := []struct {
		from, to models.OrderStatus
	}{
		{models.StatusPending, models.StatusConfirmed},
		{models.StatusPending, models.StatusNotConfirmed},
		{models.StatusConfirmed, models.StatusShipping},
		{models.StatusShipping, models.StatusSuccessful},
		{models.StatusShipping, models.StatusReturned},
	}
	for _, tc := range allowed {
		assert.NoError(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCanTransitionRejectsSkipsAndReversals(t *testing.T) {
	denied := []struct {
		from, to models.OrderStatus
	}{
		{models.StatusPending, models.StatusShipping},
		{models.StatusPending, models.StatusSuccessful},
		{models.StatusConfirmed, models.StatusPending},
		{models.StatusShipping, models.StatusPending},
		{models.StatusSuccessful, models.StatusShipping},
		{models.StatusReturned, models.StatusPending},
		{models.StatusNotConfirmed, models.StatusConfirmed},
	}
	for _, tc := range denied {
		assert.Error(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCanTransitionSameStatusIsIdempotent(t *testing.T) {
	for _, s := range []models.OrderStatus{
		models.StatusPending, models.StatusConfirmed, models.StatusNotConfirmed,
		models.StatusShipping, models.StatusSuccessful, models.StatusReturned,
	} {
		assert.NoError(t, CanTransition(s, s), "%s -> %s", s, s)
	}
}

func TestCanTransitionRejectsUnknownStatus(t *testing.T) {
	assert.Error(t, CanTransition(models.StatusPending, "shipped"))
	assert.Error(t, CanTransition(models.StatusPending, ""))
}

func TestReviewableRequiresPostDispatchStatus(t *testing.T) {
	order := models.Order{Status: models.StatusPending}
	assert.False(t, Reviewable(order))

	order.Status = models.StatusConfirmed
	assert.False(t, Reviewable(order))

	order.Status = models.StatusShipping
	assert.True(t, Reviewable(order))

	order.Status = models.StatusSuccessful
	assert.True(t, Reviewable(order))

	order.Status = models.StatusReturned
	assert.False(t, Reviewable(order))
}

func TestReviewableRejectsAlreadyReviewedOrder(t *testing.T) {
	order := models.Order{Status: models.StatusShipping, HasReviewed: true}
	assert.False(t, Reviewable(order))
}
