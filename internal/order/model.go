package order

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// Payment method values as persisted by the storefront.
const (
	PaymentMethodRazorpay = "razorpay"
	PaymentMethodCOD      = "cod"

	PaymentStatusCompleted = "completed"
)

// Order mirrors a row of the orders table. Nullable text columns are
// coalesced to empty strings at scan time.
type Order struct {
	ID                   int64
	OrderNumber          string
	CustomerName         string
	CustomerEmail        string
	CustomerPhone        string
	TotalAmount          float64
	PaymentMethod        string
	PaymentStatus        string
	OrderStatus          string // explicit status column, empty when unset
	CreatedAt            time.Time
	ShippingAddressLine1 string
	ShippingCity         string
	ShippingState        string
	ShippingPostalCode   string
	ShippingMethod       string
	ProductIDs           string // JSON-encoded array of composite ids, e.g. ["16-fullSize"]
	TransactionID        string
}

// View is the order shape sent to the dashboard.
type View struct {
	ID              int64     `json:"id"`
	CustomerName    string    `json:"customerName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Total           float64   `json:"total"`
	Status          Status    `json:"status"`
	PaymentMethod   string    `json:"paymentMethod"`
	OrderDate       time.Time `json:"orderDate"`
	ShippingAddress string    `json:"shippingAddress"`
	ItemCount       int       `json:"itemCount"`
	ProductIDs      []string  `json:"productIds"`
	ShippingMethod  string    `json:"shippingMethod"`
}

// OrderProduct mirrors a row of the order_products table.
type OrderProduct struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   float64
	TotalPrice  float64
}

// Product is a parsed line item: the composite product id split into its
// numeric id and size token.
type Product struct {
	ID          int64   `json:"id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
	Size        *string `json:"size"`
}
