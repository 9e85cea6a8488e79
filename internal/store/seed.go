package store

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"shopassist/internal/domain"
)

const (
	seedOrderCount = 20
	shippingCost   = 9.99
	taxRate        = 0.08
)

// defaultFAQs is the seed knowledge base, persisted verbatim on first run.
var defaultFAQs = []domain.FAQEntry{
	{
		Question: "How can I track my order?",
		Answer:   "You can track your order by providing your order ID (for example ORD-100001). I can look up the current status, shipping date and estimated delivery for you.",
	},
	{
		Question: "What is your return policy?",
		Answer:   "You can return most items within 30 days of delivery for a full refund. Items must be unused and in their original packaging. To start a return, provide your order ID and we will email you a prepaid shipping label.",
	},
	{
		Question: "How long does shipping take?",
		Answer:   "Standard shipping takes 5-7 business days. Expedited shipping takes 2-3 business days, and overnight shipping arrives the next business day.",
	},
	{
		Question: "Do you ship internationally?",
		Answer:   "Yes, we ship to over 50 countries. International delivery usually takes 10-15 business days, and customs fees may apply depending on your country.",
	},
	{
		Question: "Can I change or cancel my order?",
		Answer:   "Orders can be changed or cancelled within one hour of being placed. After that the order enters processing and can no longer be modified, but you can return it once it arrives.",
	},
	{
		Question: "What payment methods do you accept?",
		Answer:   "We accept Visa, Mastercard, American Express, PayPal and Apple Pay.",
	},
	{
		Question: "Is my payment information secure?",
		Answer:   "Yes. All payments are processed over encrypted connections and we never store your full card number on our servers.",
	},
	{
		Question: "How do I create an account?",
		Answer:   "Click 'Sign Up' at the top of our website, enter your email address and choose a password. You can also create an account during checkout.",
	},
}

var seedCustomers = []struct {
	name  string
	email string
}{
	{"Alice Johnson", "alice.johnson@example.com"},
	{"Bob Martinez", "bob.martinez@example.com"},
	{"Carol Chen", "carol.chen@example.com"},
	{"David Okafor", "david.okafor@example.com"},
	{"Emma Williams", "emma.williams@example.com"},
	{"Frank Novak", "frank.novak@example.com"},
}

var seedProducts = []string{
	"Wireless Earbuds",
	"USB-C Charging Cable",
	"Laptop Stand",
	"Mechanical Keyboard",
	"Portable Power Bank",
	"Bluetooth Speaker",
	"Phone Case",
	"Desk Lamp",
	"Water Bottle",
	"Backpack",
}

// generateMockOrders synthesizes n orders with status derived from order
// age. This is fallback data for demos; real deployments replace the
// store with a live backend.
func generateMockOrders(n int) []domain.Order {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	orders := make([]domain.Order, 0, n)
	for i := 0; i < n; i++ {
		ageDays := rng.Intn(10)
		orderDate := now.AddDate(0, 0, -ageDays)
		customer := seedCustomers[rng.Intn(len(seedCustomers))]

		order := domain.Order{
			OrderID:      fmt.Sprintf("ORD-%d", 100001+i),
			OrderDate:    orderDate,
			CustomerName: customer.name,
			Email:        customer.email,
		}

		switch {
		case ageDays < 2:
			if rng.Intn(2) == 0 {
				order.Status = domain.OrderStatusProcessing
			} else {
				order.Status = domain.OrderStatusConfirmed
			}
		case ageDays < 5:
			if rng.Intn(2) == 0 {
				order.Status = domain.OrderStatusShipped
			} else {
				order.Status = domain.OrderStatusInTransit
			}
			ship := orderDate.AddDate(0, 0, 1)
			delivery := ship.AddDate(0, 0, 3+rng.Intn(5)) // 3..7
			order.ShippingDate = &ship
			order.DeliveryDate = &delivery
			order.TrackingNumber = fmt.Sprintf("TRK%09d", rng.Intn(1_000_000_000))
		default:
			order.Status = domain.OrderStatusDelivered
			ship := orderDate.AddDate(0, 0, 1)
			delivery := ship.AddDate(0, 0, 3+rng.Intn(3)) // 3..5
			order.ShippingDate = &ship
			order.DeliveryDate = &delivery
			order.TrackingNumber = fmt.Sprintf("TRK%09d", rng.Intn(1_000_000_000))
		}

		itemCount := 1 + rng.Intn(5)
		for j := 0; j < itemCount; j++ {
			price := round2(10.0 + rng.Float64()*190.0)
			qty := 1 + rng.Intn(3)
			item := domain.OrderItem{
				ID:       "itm_" + uuid.New().String()[:8],
				Name:     seedProducts[rng.Intn(len(seedProducts))],
				Price:    price,
				Quantity: qty,
				Total:    round2(price * float64(qty)),
			}
			order.Items = append(order.Items, item)
			order.Subtotal = round2(order.Subtotal + item.Total)
		}

		order.Tax = round2(order.Subtotal * taxRate)
		order.ShippingCost = shippingCost
		order.Total = round2(order.Subtotal*(1+taxRate) + shippingCost)

		orders = append(orders, order)
	}
	return orders
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
