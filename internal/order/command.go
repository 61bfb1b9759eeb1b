package order

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tmbewe/bccargo/internal/types"
)

// ValidationError collects every missing or malformed field of a request,
// not just the first one found.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

// Weight tolerates both JSON numbers and numeric strings, which is what
// the public order form submits. Anything unparseable becomes NaN and is
// rejected by validation.
type Weight float64

func (w *Weight) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*w = Weight(math.NaN())
		return nil
	}
	*w = Weight(value)
	return nil
}

// CreateOrderRequest is the raw intake payload as posted by the order form.
type CreateOrderRequest struct {
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Phone       string               `json:"phone"`
	Description string               `json:"description"`
	Weight      Weight               `json:"weight"`
	Delivery    types.DeliveryOption `json:"delivery"`
	Priority    bool                 `json:"priority"`
	Insurance   bool                 `json:"insurance"`
}

// CreateOrderCommand is the validated, trimmed form of a create request.
// Only commands reach the service.
type CreateOrderCommand struct {
	Name        string
	Email       string
	Phone       string
	Description string
	WeightKg    float64
	Delivery    types.DeliveryOption
	Priority    bool
	Insurance   bool
}

// NewCreateOrderCommand validates the raw request and returns either a
// command or a ValidationError naming every bad field.
func NewCreateOrderCommand(req CreateOrderRequest) (CreateOrderCommand, error) {

	cmd := CreateOrderCommand{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Description: strings.TrimSpace(req.Description),
		WeightKg:    float64(req.Weight),
		Delivery:    req.Delivery,
		Priority:    req.Priority,
		Insurance:   req.Insurance,
	}

	var bad []string
	if cmd.Name == "" {
		bad = append(bad, "name")
	}
	if cmd.Email == "" {
		bad = append(bad, "email")
	}
	if cmd.Phone == "" {
		bad = append(bad, "phone")
	}
	if cmd.Description == "" {
		bad = append(bad, "description")
	}
	if math.IsNaN(cmd.WeightKg) || math.IsInf(cmd.WeightKg, 0) || cmd.WeightKg <= 0 {
		bad = append(bad, "weight")
	}
	if !types.ValidDeliveryOption(cmd.Delivery) {
		bad = append(bad, "delivery")
	}

	if len(bad) > 0 {
		return CreateOrderCommand{}, &ValidationError{Fields: bad}
	}
	return cmd, nil
}
