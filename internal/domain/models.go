package domain

import "time"

// Order is a customer order record. Records are immutable after creation.
// ShippingDate and TrackingNumber are set only once the order has shipped
// (status Shipped, In Transit or Delivered); DeliveryDate holds the
// estimate once shipped and the actual date once delivered.
type Order struct {
	OrderID        string      `json:"order_id"`
	Status         OrderStatus `json:"status"`
	OrderDate      time.Time   `json:"order_date"`
	ShippingDate   *time.Time  `json:"shipping_date,omitempty"`
	DeliveryDate   *time.Time  `json:"delivery_date,omitempty"`
	TrackingNumber string      `json:"tracking_number,omitempty"`
	CustomerName   string      `json:"customer_name"`
	Email          string      `json:"email"`
	Items          []OrderItem `json:"items"`
	Subtotal       float64     `json:"subtotal"`
	Tax            float64     `json:"tax"`
	ShippingCost   float64     `json:"shipping_cost"`
	Total          float64     `json:"total"`
}

// OrderItem is a single line item on an order.
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// FAQEntry is a question/answer pair from the FAQ knowledge base.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQMatch is an FAQ entry scored against a query. Similarity is
// normalized to (0, 1], 1.0 meaning an exact match.
type FAQMatch struct {
	FAQEntry
	Similarity float64 `json:"similarity"`
}

// Message is a single message in a session's conversation log.
type Message struct {
	MessageID string    `json:"message_id"`
	SessionID string    `json:"session_id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Intent is the result of classifying an incoming message. Exactly one
// of the payload fields is meaningful for a given Kind: OrderID for
// IntentOrder, FAQMatch (possibly nil) for IntentFAQ.
type Intent struct {
	Kind     IntentKind
	OrderID  string
	FAQMatch *FAQMatch
}
