package types

import "time"

type Status string

const (
	QueuedStatus         Status = "queued"
	ProcessingStatus     Status = "processing"
	AwaitingPickupStatus Status = "awaiting_pickup"
	CompletedStatus      Status = "completed"
	CancelledStatus      Status = "cancelled"
)

func ValidStatus(s Status) bool {
	switch s {
	case QueuedStatus, ProcessingStatus, AwaitingPickupStatus, CompletedStatus, CancelledStatus:
		return true
	}
	return false
}

type DeliveryOption string

const (
	HomeDelivery  DeliveryOption = "home"
	RegionalDepot DeliveryOption = "regional-depot"
	HQPickup      DeliveryOption = "hq-pickup"
)

func ValidDeliveryOption(d DeliveryOption) bool {
	switch d {
	case HomeDelivery, RegionalDepot, HQPickup:
		return true
	}
	return false
}

// DisplayName is the customer-facing wording used in quote summaries and
// confirmation messages.
func (d DeliveryOption) DisplayName() string {
	switch d {
	case HomeDelivery:
		return "Premium home delivery"
	case RegionalDepot:
		return "Regional partner depot"
	default:
		return "HQ pickup"
	}
}

// TimelineEvent is one entry of the append-only audit log attached to an
// order. Reference is set on the seed entry only, Actor on admin updates.
type TimelineEvent struct {
	Event     string    `json:"event"`
	Note      string    `json:"note"`
	Reference string    `json:"reference,omitempty"`
	Actor     string    `json:"actor,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type Order struct {
	ID             string          `db:"id" json:"id"`
	Reference      string          `db:"reference" json:"reference"`
	CustomerName   string          `db:"customer_name" json:"customerName"`
	Email          string          `db:"email" json:"email"`
	Phone          string          `db:"phone" json:"phone"`
	Description    string          `db:"description" json:"description"`
	WeightKg       float64         `db:"weight_kg" json:"weightKg"`
	DeliveryOption DeliveryOption  `db:"delivery_option" json:"delivery"`
	Priority       bool            `db:"priority" json:"priority"`
	Insurance      bool            `db:"insurance" json:"insurance"`
	BaseRateLabel  string          `db:"base_rate_label" json:"baseRateLabel"`
	BaseRateAmount float64         `db:"base_rate_amount" json:"baseRateAmount"`
	AddOnTotal     float64         `db:"add_on_total" json:"addOnTotal"`
	GrandTotal     float64         `db:"grand_total" json:"grandTotal"`
	Status         Status          `db:"status" json:"status"`
	Timeline       []TimelineEvent `db:"timeline" json:"timeline"`
	CreatedAt      time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updatedAt"`
}
