// Package domain defines the core domain models for the chatbot service.
package domain

// OrderStatus represents the fulfillment status of an order.
// Storage keeps status as free text; these constants cover the values the
// seeder produces and the reply templates understand.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusConfirmed  OrderStatus = "Confirmed"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusInTransit  OrderStatus = "In Transit"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// IntentKind represents the classified purpose of an incoming message.
type IntentKind string

const (
	IntentOrder    IntentKind = "order"
	IntentFAQ      IntentKind = "faq"
	IntentFallback IntentKind = "fallback"
)
