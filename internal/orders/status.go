package orders

import (
	"fmt"

	"github.com/zelligewear/zellige-api/internal/models"
)

// transitions is the allowed (current -> next) table for order statuses.
// The storefront used to accept any status write; here an update outside
// this table is rejected instead of silently applied.
var transitions = map[models.OrderStatus][]models.OrderStatus{
	models.StatusPending:      {models.StatusConfirmed, models.StatusNotConfirmed},
	models.StatusConfirmed:    {models.StatusShipping},
	models.StatusShipping:     {models.StatusSuccessful, models.StatusReturned},
	models.StatusNotConfirmed: {},
	models.StatusSuccessful:   {},
	models.StatusReturned:     {},
}

// ReviewableStatuses is the single eligibility set shared by every review
// entry point: an order can be reviewed once it is shipping or delivered.
var ReviewableStatuses = []models.OrderStatus{
	models.StatusShipping,
	models.StatusSuccessful,
}

// CanTransition reports whether an order may move from current to next.
// Re-asserting the current status is allowed so that a repeated update is a
// harmless idempotent write.
func CanTransition(current, next models.OrderStatus) error {
	if !next.Valid() {
		return fmt.Errorf("unknown order status %q", next)
	}
	if current == next {
		return nil
	}
	for _, allowed := range transitions[current] {
		if allowed == next {
			return nil
		}
	}
	return fmt.Errorf("cannot move order from %q to %q", current, next)
}

// Reviewable reports whether a review may be submitted against the order:
// its status must be post-dispatch and it must not have been reviewed yet.
func Reviewable(o models.Order) bool {
	if o.HasReviewed {
		return false
	}
	for _, s := range ReviewableStatuses {
		if o.Status == s {
			return true
		}
	}
	return false
}
