package notify

import (
	"fmt"
	"time"
)

type EventKind string

const (
	OrderCreated  EventKind = "order_created"
	StatusUpdated EventKind = "status_updated"
)

// Event describes an order change worth telling the ops channel about.
type Event struct {
	Kind      EventKind
	Reference string
	Customer  string
	Status    string
	WeightKg  float64
	Actor     string
	UpdatedAt time.Time
}

// BuildMessage renders the short human-readable text for an event. The
// second return value is false for event kinds with no message.
func BuildMessage(e Event) (string, bool) {
	switch e.Kind {
	case OrderCreated:
		return fmt.Sprintf("New order %s\nCustomer: %s\nStatus: %s\nWeight: %vkg",
			e.Reference, e.Customer, e.Status, e.WeightKg), true
	case StatusUpdated:
		return fmt.Sprintf("Order %s now %s\nUpdated by: %s\nWhen: %s",
			e.Reference, e.Status, e.Actor, e.UpdatedAt.Format(time.RFC1123)), true
	default:
		return "", false
	}
}
