package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"admin-orders-service/internal/order"
)

func TestParseProductIDs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{name: "two_items", raw: `["16-fullSize","17-halfSize"]`, want: []string{"16-fullSize", "17-halfSize"}},
		{name: "empty_array", raw: `[]`, want: []string{}},
		{name: "absent", raw: "", want: nil},
		{name: "whitespace_only", raw: "   ", want: nil},
		{name: "not_json", raw: "not json", wantErr: true},
		{name: "json_but_not_a_list", raw: `{"a":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := order.ParseProductIDs(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, order.ErrMalformedProductIDs)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitProductID(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantID   int64
		wantSize string
	}{
		{name: "id_and_size", raw: "16-fullSize", wantID: 16, wantSize: "fullSize"},
		{name: "no_separator", raw: "16", wantID: 16, wantSize: ""},
		{name: "trailing_separator", raw: "16-", wantID: 16, wantSize: ""},
		{name: "splits_on_first_separator_only", raw: "16-full-size", wantID: 16, wantSize: "full-size"},
		{name: "non_numeric_prefix", raw: "abc-fullSize", wantID: 0, wantSize: "fullSize"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, size := order.SplitProductID(tt.raw)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}

func TestNewView(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)

	raw := order.Order{
		ID:                   42,
		OrderNumber:          "ORD-1042",
		CustomerName:         "Ana Perez",
		CustomerEmail:        "ana@example.com",
		CustomerPhone:        "555-0142",
		TotalAmount:          1299.50,
		PaymentMethod:        "razorpay",
		PaymentStatus:        "completed",
		CreatedAt:            createdAt,
		ShippingAddressLine1: "12 Baker Street",
		ShippingCity:         "Mumbai",
		ShippingState:        "MH",
		ShippingPostalCode:   "400001",
		ShippingMethod:       "express",
		ProductIDs:           `["16-fullSize","17-halfSize"]`,
	}

	v := order.NewView(&raw)

	assert.Equal(t, int64(42), v.ID)
	assert.Equal(t, "Ana Perez", v.CustomerName)
	assert.Equal(t, "ana@example.com", v.Email)
	assert.Equal(t, "555-0142", v.Phone)
	assert.Equal(t, 1299.50, v.Total)
	assert.Equal(t, order.StatusCompleted, v.Status)
	assert.Equal(t, "Razorpay", v.PaymentMethod)
	assert.Equal(t, createdAt, v.OrderDate)
	assert.Equal(t, "12 Baker Street, Mumbai, MH 400001", v.ShippingAddress)
	assert.Equal(t, 2, v.ItemCount)
	assert.Equal(t, []string{"16-fullSize", "17-halfSize"}, v.ProductIDs)
	assert.Equal(t, "express", v.ShippingMethod)
}

func TestNewView_PaymentMethodLabels(t *testing.T) {
	razorpay := order.NewView(&order.Order{PaymentMethod: "razorpay"})
	assert.Equal(t, "Razorpay", razorpay.PaymentMethod)

	cod := order.NewView(&order.Order{PaymentMethod: "cod"})
	assert.Equal(t, "Cash on Delivery", cod.PaymentMethod)

	// Binary mapping: anything that is not razorpay gets the COD label.
	other := order.NewView(&order.Order{PaymentMethod: "bank_transfer"})
	assert.Equal(t, "Cash on Delivery", other.PaymentMethod)
}

func TestNewView_ItemCountDegradesOnBadProductIDs(t *testing.T) {
	tests := []struct {
		name       string
		productIDs string
		wantCount  int
	}{
		{name: "absent", productIDs: "", wantCount: 0},
		{name: "empty_list", productIDs: "[]", wantCount: 0},
		{name: "not_json", productIDs: "not json", wantCount: 0},
		{name: "single_item", productIDs: `["16-fullSize"]`, wantCount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := order.NewView(&order.Order{ProductIDs: tt.productIDs})
			assert.Equal(t, tt.wantCount, v.ItemCount)
		})
	}
}
