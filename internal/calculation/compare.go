package calculation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Status classifies a user-entered rent against the reference range.
type Status string

const (
	// StatusAbusive means the rent exceeds the maximum by more than 20%.
	StatusAbusive Status = "abusive"
	// StatusHigh means the rent is more than 5% above the median.
	StatusHigh Status = "high"
	// StatusBelow means the rent is more than 5% below the median.
	StatusBelow Status = "below"
	// StatusFair means the rent sits within the fair band around the median.
	StatusFair Status = "fair"
)

// Comparison is the outcome of matching a user's rent against a Result.
type Comparison struct {
	Status Status
	// Difference is userRent - medianRent, signed.
	Difference decimal.Decimal
	// PercentageDifference is Difference as a percentage of the median.
	PercentageDifference decimal.Decimal
}

var (
	abusiveFactor = decimal.NewFromFloat(1.2)
	highFactor    = decimal.NewFromFloat(1.05)
	belowFactor   = decimal.NewFromFloat(0.95)
	hundred       = decimal.NewFromInt(100)
)

// CompareRent classifies userRent against the computed reference range.
func CompareRent(userRent decimal.Decimal, result Result) Comparison {
	difference := userRent.Sub(result.MedianRent)

	var pct decimal.Decimal
	if !result.MedianRent.IsZero() {
		pct = difference.Div(result.MedianRent).Mul(hundred).Round(1)
	}

	var status Status
	switch {
	case userRent.GreaterThan(result.MaximumRent.Mul(abusiveFactor)):
		status = StatusAbusive
	case userRent.GreaterThan(result.MedianRent.Mul(highFactor)):
		status = StatusHigh
	case userRent.LessThan(result.MedianRent.Mul(belowFactor)):
		status = StatusBelow
	default:
		status = StatusFair
	}

	return Comparison{
		Status:               status,
		Difference:           difference,
		PercentageDifference: pct,
	}
}

// ParseRent parses a user-entered rent amount. It accepts "950", "950,50"
// and "950.50" and strips a leading euro sign and whitespace. The boolean
// is false when the text does not contain a usable amount.
func ParseRent(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "€")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return decimal.Zero, false
	}
	value, err := decimal.NewFromString(s)
	if err != nil || value.IsNegative() {
		return decimal.Zero, false
	}
	return value, true
}
