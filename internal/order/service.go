package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	// StatusFilterAll disables status filtering in a listing query.
	StatusFilterAll = "all"

	DefaultListLimit = 50
)

// ListQuery carries the raw listing parameters as received from the HTTP
// layer; the service normalizes them before hitting the repository.
type ListQuery struct {
	Status string
	Search string
	Limit  int
	Offset int
}

type Service interface {
	ListOrders(ctx context.Context, q ListQuery) ([]View, error)
	OrderProducts(ctx context.Context, orderID int64) ([]Product, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, newStatus string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListOrders(ctx context.Context, q ListQuery) ([]View, error) {
	f := Filter{Search: q.Search, Limit: q.Limit, Offset: q.Offset}

	if q.Status != "" && q.Status != StatusFilterAll {
		st, err := ParseStatus(q.Status)
		if err != nil {
			log.Warn().Str("status", q.Status).Msg("service: rejected unknown status filter")
			return nil, err
		}
		f.Status = st
	}

	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	orders, err := s.repo.List(ctx, f)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to list orders in repository")
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}

	views := make([]View, 0, len(orders))
	for i := range orders {
		views = append(views, NewView(&orders[i]))
	}

	return views, nil
}

func (s *service) OrderProducts(ctx context.Context, orderID int64) ([]Product, error) {
	rawProducts, err := s.repo.ProductsByOrder(ctx, orderID)
	if err != nil {
		log.Error().Err(err).Int64("order_id", orderID).Msg("service: failed to fetch order products in repository")
		return nil, fmt.Errorf("service: failed to fetch order products: %w", err)
	}

	products := make([]Product, 0, len(rawProducts))
	for _, rp := range rawProducts {
		id, size := SplitProductID(rp.ProductID)

		var sizePtr *string
		if size != "" {
			sizePtr = &size
		}

		products = append(products, Product{
			ID:          id,
			ProductName: rp.ProductName,
			Quantity:    rp.Quantity,
			UnitPrice:   rp.UnitPrice,
			TotalPrice:  rp.TotalPrice,
			Size:        sizePtr,
		})
	}

	return products, nil
}

func (s *service) UpdateOrderStatus(ctx context.Context, orderID int64, newStatus string) error {
	st, err := ParseStatus(newStatus)
	if err != nil {
		log.Warn().Int64("order_id", orderID).Str("new_status", newStatus).Msg("service: rejected non-canonical status value")
		return err
	}

	if err := s.repo.UpdateStatus(ctx, orderID, st); err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			log.Warn().Int64("order_id", orderID).Str("new_status", newStatus).Msg("service: order not found for status update")
			return ErrOrderNotFound
		}
		log.Error().Err(err).Int64("order_id", orderID).Str("new_status", newStatus).Msg("service: failed to update order status in repository")
		return fmt.Errorf("service: failed to update order status: %w", err)
	}

	log.Info().Int64("order_id", orderID).Str("new_status", st.String()).Msg("service: order status updated")
	return nil
}
