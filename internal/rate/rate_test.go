package rate

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseRate(t *testing.T) {

	testCases := []struct {
		weight         float64
		expectedLabel  string
		expectedAmount float64
	}{
		{0.1, "0–5kg flat rate", 45},
		{1, "0–5kg flat rate", 45},
		{5, "0–5kg flat rate", 45},
		{5.01, "5–10kg flat rate", 82},
		{7, "5–10kg flat rate", 82},
		{10, "5–10kg flat rate", 82},
		{10.5, "10–20kg band", 10.5 * 8.3},
		{15, "10–20kg band", 124.5},
		{20, "10–20kg band", 166},
		{20.1, "20kg+ economy rate", 20.1 * 7.5},
		{25, "20kg+ economy rate", 187.5},
		{100, "20kg+ economy rate", 750},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%vkg", tc.weight), func(t *testing.T) {
			label, amount, err := BaseRate(tc.weight)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedLabel, label)
			assert.InDelta(t, tc.expectedAmount, amount, 1e-9)
		})
	}
}

func TestBaseRateInvalidWeight(t *testing.T) {

	for _, weight := range []float64{0, -1, -0.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		t.Run(fmt.Sprintf("%v", weight), func(t *testing.T) {
			_, _, err := BaseRate(weight)
			assert.ErrorIs(t, err, ErrInvalidWeight)
		})
	}
}

func TestMiddleBandIncreasing(t *testing.T) {

	prev := 0.0
	for w := 10.1; w <= 20; w += 0.1 {
		_, amount, err := BaseRate(w)
		assert.NoError(t, err)
		assert.Greater(t, amount, prev)
		prev = amount
	}
}

func TestComputeQuote(t *testing.T) {

	testCases := []struct {
		name           string
		weight         float64
		priority       bool
		insurance      bool
		expectedQuote  Quote
		expectedAddOns []string
	}{
		{
			name:   "flat band no addons",
			weight: 3,
			expectedQuote: Quote{
				BaseLabel: "0–5kg flat rate", BaseAmount: 45, AddOnTotal: 0, GrandTotal: 45,
			},
		},
		{
			name:     "priority only",
			weight:   7,
			priority: true,
			expectedQuote: Quote{
				BaseLabel: "5–10kg flat rate", BaseAmount: 82, AddOnTotal: 12, GrandTotal: 94,
			},
			expectedAddOns: []string{PriorityLabel},
		},
		{
			name:      "insurance only",
			weight:    25,
			insurance: true,
			expectedQuote: Quote{
				BaseLabel: "20kg+ economy rate", BaseAmount: 187.5, AddOnTotal: 6, GrandTotal: 193.5,
			},
			expectedAddOns: []string{InsuranceLabel},
		},
		{
			name:      "both addons",
			weight:    12,
			priority:  true,
			insurance: true,
			expectedQuote: Quote{
				BaseLabel: "10–20kg band", BaseAmount: 99.6, AddOnTotal: 18, GrandTotal: 117.6,
			},
			expectedAddOns: []string{PriorityLabel, InsuranceLabel},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			quote, addOns, err := ComputeQuote(tc.weight, tc.priority, tc.insurance)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedQuote.BaseLabel, quote.BaseLabel)
			assert.InDelta(t, tc.expectedQuote.BaseAmount, quote.BaseAmount, 1e-9)
			assert.InDelta(t, tc.expectedQuote.AddOnTotal, quote.AddOnTotal, 1e-9)
			assert.InDelta(t, tc.expectedQuote.GrandTotal, quote.GrandTotal, 1e-9)
			assert.Equal(t, tc.expectedAddOns, addOns)
			assert.InDelta(t, quote.BaseAmount+quote.AddOnTotal, quote.GrandTotal, 1e-9)
		})
	}
}

func TestComputeQuoteInvalidWeight(t *testing.T) {
	_, _, err := ComputeQuote(-2, true, true)
	assert.ErrorIs(t, err, ErrInvalidWeight)
}
