package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopassist/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create sqlite store: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestSeededOrders(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, seedOrderCount, count)

	for i := 0; i < seedOrderCount; i++ {
		orderID := fmt.Sprintf("ORD-%d", 100001+i)
		order, err := s.GetOrder(ctx, orderID)
		require.NoError(t, err, "seeded order %s missing", orderID)

		assert.NotEmpty(t, order.Items)
		assert.NotEmpty(t, order.CustomerName)
		assert.NotEmpty(t, order.Email)
		assert.InDelta(t, order.Subtotal*1.08+shippingCost, order.Total, 0.011)

		switch order.Status {
		case domain.OrderStatusShipped, domain.OrderStatusInTransit, domain.OrderStatusDelivered:
			assert.NotNil(t, order.ShippingDate, "%s: shipped order needs shipping date", orderID)
			assert.NotNil(t, order.DeliveryDate, "%s: shipped order needs delivery date", orderID)
			assert.NotEmpty(t, order.TrackingNumber, "%s: shipped order needs tracking number", orderID)
		case domain.OrderStatusProcessing, domain.OrderStatusConfirmed:
			assert.Nil(t, order.ShippingDate, "%s: unshipped order must not have shipping date", orderID)
			assert.Empty(t, order.TrackingNumber, "%s: unshipped order must not have tracking number", orderID)
		default:
			t.Fatalf("unexpected seeded status %q", order.Status)
		}
	}
}

func TestSeededFAQs(t *testing.T) {
	s := newTestStore(t)

	faqs, err := s.ListFAQs(context.Background())
	require.NoError(t, err)
	require.Len(t, faqs, len(defaultFAQs))

	// Insertion order and content must be preserved verbatim.
	for i, want := range defaultFAQs {
		assert.Equal(t, want.Question, faqs[i].Question)
		assert.Equal(t, want.Answer, faqs[i].Answer)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.seed())

	faqs, err := s.ListFAQs(context.Background())
	require.NoError(t, err)
	assert.Len(t, faqs, len(defaultFAQs))
}

func TestGetOrderCaseInsensitive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	delivery := time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)
	ship := delivery.AddDate(0, 0, -4)
	order := &domain.Order{
		OrderID:        "ORD-777001",
		Status:         domain.OrderStatusDelivered,
		OrderDate:      ship.AddDate(0, 0, -1),
		ShippingDate:   &ship,
		DeliveryDate:   &delivery,
		TrackingNumber: "TRK000000001",
		CustomerName:   "Grace Hopper",
		Email:          "grace@example.com",
		Items: []domain.OrderItem{
			{ID: "itm_1", Name: "Desk Lamp", Price: 25.50, Quantity: 2, Total: 51.00},
		},
		Subtotal:     51.00,
		Tax:          4.08,
		ShippingCost: 9.99,
		Total:        65.07,
	}
	require.NoError(t, s.CreateOrder(ctx, order))

	got, err := s.GetOrder(ctx, "ORD-777001")
	require.NoError(t, err)
	assert.Equal(t, "ORD-777001", got.OrderID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Desk Lamp", got.Items[0].Name)

	// Case-insensitive fallback keeps the stored ID.
	got, err = s.GetOrder(ctx, "ord-777001")
	require.NoError(t, err)
	assert.Equal(t, "ORD-777001", got.OrderID)
	assert.Equal(t, domain.OrderStatusDelivered, got.Status)
	require.NotNil(t, got.DeliveryDate)
	assert.Equal(t, "2025-02-20", got.DeliveryDate.Format("2006-01-02"))
}

func TestGetOrderNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetOrder(context.Background(), "NOPE99")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestSearchOrdersByEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"ORD-888001", "ORD-888002"} {
		require.NoError(t, s.CreateOrder(ctx, &domain.Order{
			OrderID:      id,
			Status:       domain.OrderStatusProcessing,
			OrderDate:    time.Now(),
			CustomerName: "Ada Lovelace",
			Email:        "Ada.Lovelace@Example.com",
			Items:        []domain.OrderItem{{ID: "itm_x", Name: "Backpack", Price: 40, Quantity: 1, Total: 40}},
			Subtotal:     40,
			Tax:          3.20,
			ShippingCost: 9.99,
			Total:        53.19,
		}))
	}

	found, err := s.SearchOrdersByEmail(ctx, "ada.lovelace@example.com")
	require.NoError(t, err)
	require.Len(t, found, 2)
	// Storage order.
	assert.Equal(t, "ORD-888001", found[0].OrderID)
	assert.Equal(t, "ORD-888002", found[1].OrderID)

	none, err := s.SearchOrdersByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, none)
}
