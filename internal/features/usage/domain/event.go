package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// QuantityScale is the number of decimal places stored for usage quantities.
// Counters hold quantity * 10^QuantityScale as integers.
const QuantityScale = 6

// maxQuantity bounds a single event so the scaled value fits comfortably in an int64.
var maxQuantity = decimal.New(1, 12)

// Event is one metered call reported by a service wrapper.
type Event struct {
	ID         string          `json:"id"`
	Resource   Resource        `json:"resource"`
	Quantity   decimal.Decimal `json:"quantity" swaggertype:"string"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// Validate checks the resource and quantity of e.
func (e Event) Validate() error {
	if _, err := ParseResource(string(e.Resource)); err != nil {
		return err
	}
	if !e.Quantity.IsPositive() {
		return ErrInvalidQuantity
	}
	if e.Quantity.GreaterThan(maxQuantity) {
		return fmt.Errorf("%w: %s exceeds %s", ErrInvalidQuantity, e.Quantity, maxQuantity)
	}
	if !e.Quantity.Shift(QuantityScale).IsInteger() {
		return fmt.Errorf("%w: at most %d decimal places", ErrInvalidQuantity, QuantityScale)
	}
	return nil
}

// ScaledQuantity converts q to the integer stored in counters.
func ScaledQuantity(q decimal.Decimal) int64 {
	return q.Shift(QuantityScale).IntPart()
}

// QuantityFromScaled converts a stored counter back to a quantity.
func QuantityFromScaled(scaled decimal.Decimal) decimal.Decimal {
	return scaled.Shift(-QuantityScale)
}
