package rate

import (
	"errors"
	"math"
)

// Shipping tariff. Flat bands up to 10kg, per-kilo bands above. Inclusive
// upper bounds, first match wins.
const (
	flatTo5kg      = 45.0
	flatTo10kg     = 82.0
	perKgTo20kg    = 8.3
	perKgEconomy   = 7.5
	PriorityFee    = 12.0
	InsuranceFee   = 6.0
	PriorityLabel  = "Priority flight (+£12)"
	InsuranceLabel = "Enhanced insurance (+£6)"
)

var ErrInvalidWeight = errors.New("weight must be a positive number")

type Quote struct {
	BaseLabel  string  `json:"baseLabel"`
	BaseAmount float64 `json:"baseAmount"`
	AddOnTotal float64 `json:"addOnTotal"`
	GrandTotal float64 `json:"grandTotal"`
}

// BaseRate maps a parcel weight to its tariff band.
func BaseRate(weightKg float64) (label string, amount float64, err error) {
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) || weightKg <= 0 {
		return "", 0, ErrInvalidWeight
	}
	switch {
	case weightKg <= 5:
		return "0–5kg flat rate", flatTo5kg, nil
	case weightKg <= 10:
		return "5–10kg flat rate", flatTo10kg, nil
	case weightKg <= 20:
		return "10–20kg band", weightKg * perKgTo20kg, nil
	default:
		return "20kg+ economy rate", weightKg * perKgEconomy, nil
	}
}

// ComputeQuote prices a parcel: tariff band plus the flat surcharge for
// each selected add-on. The add-on labels returned are the customer-facing
// line items. The result is a snapshot, stored once at order creation.
func ComputeQuote(weightKg float64, priority bool, insurance bool) (Quote, []string, error) {
	label, base, err := BaseRate(weightKg)
	if err != nil {
		return Quote{}, nil, err
	}

	var addOns []string
	var addOnTotal float64
	if priority {
		addOnTotal += PriorityFee
		addOns = append(addOns, PriorityLabel)
	}
	if insurance {
		addOnTotal += InsuranceFee
		addOns = append(addOns, InsuranceLabel)
	}

	return Quote{
		BaseLabel:  label,
		BaseAmount: base,
		AddOnTotal: addOnTotal,
		GrandTotal: base + addOnTotal,
	}, addOns, nil
}
