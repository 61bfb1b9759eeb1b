package order

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/tmbewe/bccargo/internal/db"
	"github.com/tmbewe/bccargo/internal/notify"
	"github.com/tmbewe/bccargo/internal/rate"
	"github.com/tmbewe/bccargo/internal/types"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200

	// redraws on reference collision before giving up
	referenceAttempts = 3

	seedEventNote = "Automation triggered via web form"
)

var ErrInvalidStatus = errors.New("invalid status value")

var nextSteps = []string{
	"Check email/WhatsApp for confirmation",
	"Deliver parcels to UK hub address",
	"Pay invoice once final weight is confirmed",
}

type Database interface {
	InsertOrder(ctx context.Context, order types.Order) (*types.Order, error)
	GetOrders(ctx context.Context, status types.Status, limit int) ([]types.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, newStatus types.Status, event types.TimelineEvent) (*types.Order, error)
}

type Notifier interface {
	Publish(e notify.Event)
}

type Service struct {
	database Database
	notifier Notifier
}

func NewService(database Database, notifier Notifier) *Service {
	return &Service{
		database: database,
		notifier: notifier,
	}
}

// CreateResult is the order summary returned to the customer.
type CreateResult struct {
	Reference string                `json:"reference"`
	Status    types.Status          `json:"status"`
	Quote     rate.Quote            `json:"quote"`
	AddOns    []string              `json:"addOns"`
	Delivery  string                `json:"delivery"`
	CreatedAt time.Time             `json:"createdAt"`
	Timeline  []types.TimelineEvent `json:"timeline"`
	NextSteps []string              `json:"nextSteps"`
}

type ListResult struct {
	Count int           `json:"count"`
	Rows  []types.Order `json:"rows"`
	Meta  ListMeta      `json:"meta"`
}

type ListMeta struct {
	Limit  int          `json:"limit"`
	Status types.Status `json:"status,omitempty"`
}

type UpdateResult struct {
	Message  string                `json:"message"`
	Status   types.Status          `json:"status"`
	Timeline []types.TimelineEvent `json:"timeline"`
}

// Create prices the parcel, persists the order with its timeline seed and
// queues the ops notification. The quote is a snapshot: later status
// changes never touch it.
func (s *Service) Create(ctx context.Context, cmd CreateOrderCommand) (*CreateResult, error) {

	quote, addOns, err := rate.ComputeQuote(cmd.WeightKg, cmd.Priority, cmd.Insurance)
	if err != nil {
		return nil, &ValidationError{Fields: []string{"weight"}}
	}

	var created *types.Order
	for attempt := 0; attempt < referenceAttempts; attempt++ {
		reference := NewReference(time.Now())
		order := types.Order{
			Reference:      reference,
			CustomerName:   cmd.Name,
			Email:          cmd.Email,
			Phone:          cmd.Phone,
			Description:    cmd.Description,
			WeightKg:       cmd.WeightKg,
			DeliveryOption: cmd.Delivery,
			Priority:       cmd.Priority,
			Insurance:      cmd.Insurance,
			BaseRateLabel:  quote.BaseLabel,
			BaseRateAmount: quote.BaseAmount,
			AddOnTotal:     quote.AddOnTotal,
			GrandTotal:     quote.GrandTotal,
			Status:         types.QueuedStatus,
			Timeline: []types.TimelineEvent{{
				Event:     "order_received",
				Note:      seedEventNote,
				Reference: reference,
				Timestamp: time.Now(),
			}},
		}

		created, err = s.database.InsertOrder(ctx, order)
		if err == nil {
			break
		}
		if errors.Is(err, db.ErrReferenceTaken) {
			logger.Warningf("Reference %s already taken, redrawing", reference)
			continue
		}
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("could not allocate order reference %w", err)
	}

	s.notifier.Publish(notify.Event{
		Kind:      notify.OrderCreated,
		Reference: created.Reference,
		Customer:  created.CustomerName,
		Status:    string(created.Status),
		WeightKg:  created.WeightKg,
	})

	return &CreateResult{
		Reference: created.Reference,
		Status:    created.Status,
		Quote:     quote,
		AddOns:    addOns,
		Delivery:  cmd.Delivery.DisplayName(),
		CreatedAt: created.CreatedAt,
		Timeline:  created.Timeline,
		NextSteps: nextSteps,
	}, nil
}

// List returns orders newest first, optionally filtered by exact status.
// The limit is clamped to [1, MaxListLimit].
func (s *Service) List(ctx context.Context, status types.Status, limit int) (*ListResult, error) {

	limit = ClampLimit(limit)

	orders, err := s.database.GetOrders(ctx, status, limit)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Count: len(orders),
		Rows:  orders,
		Meta: ListMeta{
			Limit:  limit,
			Status: status,
		},
	}, nil
}

// UpdateStatus sets the new status and appends exactly one timeline entry.
// No transition graph is enforced: any status may follow any other,
// including a repeat of the current one, and every call leaves its own
// timeline entry.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, newStatus types.Status, actor string) (*UpdateResult, error) {

	if !types.ValidStatus(newStatus) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, newStatus)
	}

	event := types.TimelineEvent{
		Event:     "status_updated",
		Note:      fmt.Sprintf("Status set to %s", newStatus),
		Actor:     actor,
		Timestamp: time.Now(),
	}

	updated, err := s.database.UpdateOrderStatus(ctx, orderID, newStatus, event)
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(notify.Event{
		Kind:      notify.StatusUpdated,
		Reference: updated.Reference,
		Status:    string(updated.Status),
		Actor:     actor,
		UpdatedAt: updated.UpdatedAt,
	})

	return &UpdateResult{
		Message:  "Status updated",
		Status:   updated.Status,
		Timeline: updated.Timeline,
	}, nil
}

func ClampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// NewReference draws a fresh order reference of the form
// BC-<year>-<6 digits>. Uniqueness is enforced by the database index, not
// here.
func NewReference(now time.Time) string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err)
	}
	n := binary.BigEndian.Uint32(buf[:4])%900000 + 100000
	return fmt.Sprintf("BC-%d-%06d", now.Year(), n)
}
