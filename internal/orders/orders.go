// Package orders provides order lookup over the durable store.
package orders

import (
	"context"
	"fmt"

	"shopassist/internal/domain"
	"shopassist/internal/store"
)

// Service looks up orders. Not-found is reported via store.ErrOrderNotFound.
type Service struct {
	store store.Store
}

// New creates an order service backed by the given store.
func New(st store.Store) *Service {
	return &Service{store: st}
}

// GetOrder retrieves an order by ID (exact match first, then
// case-insensitive).
func (s *Service) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.store.GetOrder(ctx, orderID)
}

// GetOrderStatus returns the status of the given order.
func (s *Service) GetOrderStatus(ctx context.Context, orderID string) (domain.OrderStatus, error) {
	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return "", err
	}
	return order.Status, nil
}

// SearchByEmail returns all orders placed with the given email address,
// case-insensitively, in storage order.
func (s *Service) SearchByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	orders, err := s.store.SearchOrdersByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to search orders by email: %w", err)
	}
	return orders, nil
}
