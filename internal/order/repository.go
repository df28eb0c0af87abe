package order

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

var ErrOrderNotFound = errors.New("order not found")

// Filter narrows the order listing. A zero-value Status means no status
// filter; Search matches case-insensitively against customer name, email
// and order number, plus the exact order id when the term is numeric.
type Filter struct {
	Status Status
	Search string
	Limit  int
	Offset int
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]Order, error)
	ProductsByOrder(ctx context.Context, orderID int64) ([]OrderProduct, error)
	UpdateStatus(ctx context.Context, orderID int64, newStatus Status) error
}

type postgresRepository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &postgresRepository{db: db}
}

const orderColumns = `order_id, order_number, customer_name, customer_email,
		coalesce(customer_phone, ''), total_amount, payment_method,
		coalesce(payment_status, ''), coalesce(order_status, ''), created_at,
		coalesce(shipping_address_line1, ''), coalesce(shipping_city, ''),
		coalesce(shipping_state, ''), coalesce(shipping_postal_code, ''),
		coalesce(shipping_method, ''), coalesce(product_ids, ''),
		coalesce(transaction_id, '')`

// derivedStatusExpr mirrors DeriveStatus so status filtering happens inside
// the query and pagination stays correct. Keep in sync with status.go.
const derivedStatusExpr = `CASE
		WHEN lower(btrim(coalesce(order_status, ''))) IN ('pending', 'processing', 'completed', 'cancelled')
			THEN lower(btrim(order_status))
		WHEN payment_method = 'razorpay' AND (payment_status = 'completed' OR btrim(coalesce(transaction_id, '')) <> '')
			THEN 'completed'
		WHEN payment_method = 'cod'
			THEN 'processing'
		ELSE 'pending'
	END`

func (r *postgresRepository) List(ctx context.Context, f Filter) ([]Order, error) {
	var (
		sb   strings.Builder
		args []any
	)

	sb.WriteString("SELECT ")
	sb.WriteString(orderColumns)
	sb.WriteString("\n\tFROM orders")

	var conds []string

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		cond := fmt.Sprintf("(customer_name ILIKE $%d OR customer_email ILIKE $%d OR order_number ILIKE $%d", n, n, n)
		if id, err := strconv.ParseInt(strings.TrimSpace(f.Search), 10, 64); err == nil {
			args = append(args, id)
			cond += fmt.Sprintf(" OR order_id = $%d", len(args))
		}
		cond += ")"
		conds = append(conds, cond)
	}

	if f.Status != "" {
		args = append(args, string(f.Status))
		conds = append(conds, fmt.Sprintf("%s = $%d", derivedStatusExpr, len(args)))
	}

	if len(conds) > 0 {
		sb.WriteString("\n\tWHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	args = append(args, f.Limit)
	limitArg := len(args)
	args = append(args, f.Offset)
	sb.WriteString(fmt.Sprintf("\n\tORDER BY created_at DESC\n\tLIMIT $%d OFFSET $%d", limitArg, len(args)))

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var o Order
		err := rows.Scan(
			&o.ID,
			&o.OrderNumber,
			&o.CustomerName,
			&o.CustomerEmail,
			&o.CustomerPhone,
			&o.TotalAmount,
			&o.PaymentMethod,
			&o.PaymentStatus,
			&o.OrderStatus,
			&o.CreatedAt,
			&o.ShippingAddressLine1,
			&o.ShippingCity,
			&o.ShippingState,
			&o.ShippingPostalCode,
			&o.ShippingMethod,
			&o.ProductIDs,
			&o.TransactionID,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}

	return orders, nil
}

func (r *postgresRepository) ProductsByOrder(ctx context.Context, orderID int64) ([]OrderProduct, error) {
	query := `
		SELECT product_id, product_name, quantity, unit_price, total_price
		FROM order_products
		WHERE order_id = $1
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query products for order id %d: %w", orderID, err)
	}
	defer rows.Close()

	products := make([]OrderProduct, 0)
	for rows.Next() {
		var p OrderProduct
		err := rows.Scan(
			&p.ProductID,
			&p.ProductName,
			&p.Quantity,
			&p.UnitPrice,
			&p.TotalPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan product for order id %d: %w", orderID, err)
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating products for order id %d: %w", orderID, err)
	}

	return products, nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, orderID int64, newStatus Status) error {
	query := `
		UPDATE orders
		SET order_status = $1
		WHERE order_id = $2
	`

	cmdTag, err := r.db.Exec(ctx, query, string(newStatus), orderID)
	if err != nil {
		log.Error().Err(err).Int64("order_id", orderID).Str("new_status", string(newStatus)).Msg("repository: failed to update order status")
		return fmt.Errorf("repository: failed to update order status for %d: %w", orderID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Warn().Int64("order_id", orderID).Str("new_status", string(newStatus)).Msg("repository: order not found for status update")
		return ErrOrderNotFound
	}

	return nil
}
