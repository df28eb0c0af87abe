package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

var ErrMalformedProductIDs = errors.New("malformed product_ids value")

// ParseProductIDs decodes the JSON-encoded product_ids column value. An
// empty column yields an empty result with no error; a value that is not a
// JSON array of strings yields ErrMalformedProductIDs so callers can tell
// "no items" apart from "unparseable".
func ParseProductIDs(raw string) ([]string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(trimmed), &ids); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedProductIDs, err)
	}

	return ids, nil
}

// SplitProductID splits a composite product identifier like "16-fullSize"
// on the first '-' into its numeric id and size token. A missing separator
// or empty token yields an empty size; an unparseable numeric part is
// logged and yields id 0.
func SplitProductID(raw string) (int64, string) {
	numPart, size, _ := strings.Cut(raw, "-")

	id, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		log.Warn().Str("product_id", raw).Msg("non-numeric product id prefix")
		return 0, size
	}

	return id, size
}

// NewView reshapes a raw order record into the dashboard view model.
func NewView(o *Order) View {
	productIDs, err := ParseProductIDs(o.ProductIDs)
	if err != nil {
		log.Warn().Err(err).Int64("order_id", o.ID).Msg("failed to parse product_ids, reporting zero items")
		productIDs = nil
	}

	return View{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		Email:           o.CustomerEmail,
		Phone:           o.CustomerPhone,
		Total:           o.TotalAmount,
		Status:          DeriveStatus(o),
		PaymentMethod:   paymentMethodLabel(o.PaymentMethod),
		OrderDate:       o.CreatedAt,
		ShippingAddress: formatShippingAddress(o),
		ItemCount:       len(productIDs),
		ProductIDs:      productIDs,
		ShippingMethod:  o.ShippingMethod,
	}
}

func paymentMethodLabel(method string) string {
	if method == PaymentMethodRazorpay {
		return "Razorpay"
	}
	return "Cash on Delivery"
}

func formatShippingAddress(o *Order) string {
	return fmt.Sprintf("%s, %s, %s %s", o.ShippingAddressLine1, o.ShippingCity, o.ShippingState, o.ShippingPostalCode)
}
