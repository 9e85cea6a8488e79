// Package store provides durable storage for orders and FAQ entries.
package store

import (
	"context"
	"errors"

	"shopassist/internal/domain"
)

// ErrOrderNotFound is returned when no order matches the requested ID.
var ErrOrderNotFound = errors.New("order not found")

// Store defines persistence for orders and FAQ entries.
type Store interface {
	// GetOrder retrieves an order by ID, exact match first, then a
	// case-insensitive fallback. Returns ErrOrderNotFound when absent.
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)

	// SearchOrdersByEmail returns all orders whose email matches
	// case-insensitively, in storage order.
	SearchOrdersByEmail(ctx context.Context, email string) ([]domain.Order, error)

	// CreateOrder inserts an order record.
	CreateOrder(ctx context.Context, order *domain.Order) error

	// ListFAQs returns all FAQ entries in insertion order.
	ListFAQs(ctx context.Context) ([]domain.FAQEntry, error)

	// CreateFAQ appends an FAQ entry.
	CreateFAQ(ctx context.Context, entry *domain.FAQEntry) error

	Close() error
}
