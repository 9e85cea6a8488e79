package agent

import (
	"fmt"
	"time"

	"shopassist/internal/domain"
)

const dateLayout = "2006-01-02"

const refusalReply = "I'm sorry, I can't help with that request. For payment or account security topics, please contact our support team directly."

// apology is the canned reply for any failure that crosses the
// ProcessMessage boundary.
func apology(err error) string {
	return fmt.Sprintf("I'm sorry, something went wrong while processing your request (%v). Please try again.", err)
}

func orderNotFoundReply(orderID string) string {
	return fmt.Sprintf("I couldn't find an order with the ID %s. Please double-check the order number and try again.", orderID)
}

// statusReply formats a status-specific reply for a tracked order.
func statusReply(order *domain.Order) string {
	switch order.Status {
	case domain.OrderStatusProcessing:
		return fmt.Sprintf("Your order %s is being processed. It was placed on %s and should ship soon.",
			order.OrderID, formatDate(order.OrderDate))
	case domain.OrderStatusConfirmed:
		return fmt.Sprintf("Your order %s is confirmed and is being prepared for shipping.", order.OrderID)
	case domain.OrderStatusShipped:
		return fmt.Sprintf("Your order %s was shipped on %s. Tracking number: %s. Estimated delivery: %s.",
			order.OrderID, formatDatePtr(order.ShippingDate), order.TrackingNumber, formatDatePtr(order.DeliveryDate))
	case domain.OrderStatusInTransit:
		return fmt.Sprintf("Your order %s is in transit. Estimated delivery: %s. You can follow it with tracking number %s.",
			order.OrderID, formatDatePtr(order.DeliveryDate), order.TrackingNumber)
	case domain.OrderStatusDelivered:
		return fmt.Sprintf("Your order %s was delivered on %s. If anything is wrong with your order, I'm happy to help.",
			order.OrderID, formatDatePtr(order.DeliveryDate))
	default:
		return fmt.Sprintf("Your order %s is currently marked as '%s'.", order.OrderID, order.Status)
	}
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return "unknown"
	}
	return t.Format(dateLayout)
}
