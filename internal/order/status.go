package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

var ErrInvalidStatus = errors.New("invalid order status")

// ParseStatus normalizes raw into one of the four canonical statuses.
// Input is trimmed and lowercased; anything else is rejected.
func ParseStatus(raw string) (Status, error) {
	switch s := Status(strings.ToLower(strings.TrimSpace(raw))); s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
}

// DeriveStatus maps a raw order record to its canonical status. An explicit
// order_status column wins when it holds a recognized value; unrecognized
// values are logged and treated as absent, falling back to the payment
// heuristics, so callers always see one of the four canonical statuses.
//
// The repository's SQL status filter mirrors this logic; keep the two in
// sync.
func DeriveStatus(o *Order) Status {
	if o.OrderStatus != "" {
		st, err := ParseStatus(o.OrderStatus)
		if err == nil {
			return st
		}
		log.Warn().
			Int64("order_id", o.ID).
			Str("order_status", o.OrderStatus).
			Msg("unrecognized explicit order status, deriving from payment fields")
	}

	switch o.PaymentMethod {
	case PaymentMethodRazorpay:
		if o.PaymentStatus == PaymentStatusCompleted || strings.TrimSpace(o.TransactionID) != "" {
			return StatusCompleted
		}
		return StatusPending
	case PaymentMethodCOD:
		return StatusProcessing
	}

	return StatusPending
}
