package entity

import "github.com/shopspring/decimal"

var (
	DefaultMinBudget = decimal.NewFromInt(500)
	DefaultMaxBudget = decimal.NewFromInt(5000)
)

// BudgetRange is an inclusive [Min, Max] cost filter
type BudgetRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// DefaultBudget returns the range a new session starts with
func DefaultBudget() BudgetRange {
	return BudgetRange{Min: DefaultMinBudget, Max: DefaultMaxBudget}
}

// Contains reports whether cost lies within the range, bounds included
func (b BudgetRange) Contains(cost decimal.Decimal) bool {
	return cost.GreaterThanOrEqual(b.Min) && cost.LessThanOrEqual(b.Max)
}

// Increasing reports whether Max is strictly greater than Min
func (b BudgetRange) Increasing() bool {
	return b.Max.GreaterThan(b.Min)
}

// BudgetPreset is a named shortcut offered on the search screen
type BudgetPreset struct {
	Label string      `json:"label"`
	Range BudgetRange `json:"range"`
}

// OpenEndedMax marks the upper bound of the "10K+" preset
var OpenEndedMax = decimal.NewFromInt(999999)

// BudgetPresets returns the search screen presets in display order
func BudgetPresets() []BudgetPreset {
	return []BudgetPreset{
		{Label: "Under ₹1,000", Range: BudgetRange{Min: decimal.Zero, Max: decimal.NewFromInt(1000)}},
		{Label: "₹1K – ₹3K", Range: BudgetRange{Min: decimal.NewFromInt(1000), Max: decimal.NewFromInt(3000)}},
		{Label: "₹3K – ₹5K", Range: BudgetRange{Min: decimal.NewFromInt(3000), Max: decimal.NewFromInt(5000)}},
		{Label: "₹5K – ₹10K", Range: BudgetRange{Min: decimal.NewFromInt(5000), Max: decimal.NewFromInt(10000)}},
		{Label: "₹10K+", Range: BudgetRange{Min: decimal.NewFromInt(10000), Max: OpenEndedMax}},
	}
}
