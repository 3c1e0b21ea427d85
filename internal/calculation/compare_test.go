package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func referenceResult() Result {
	return Result{
		MedianRent:  decimal.NewFromInt(800),
		MinimumRent: decimal.NewFromInt(720),
		MaximumRent: decimal.NewFromInt(880),
	}
}

func TestCompareRentAbusive(t *testing.T) {
	// 1100 > 880 * 1.2 = 1056.
	c := CompareRent(decimal.NewFromInt(1100), referenceResult())

	assert.Equal(t, StatusAbusive, c.Status)
	assert.Equal(t, "300", c.Difference.String())
}

func TestCompareRentClassification(t *testing.T) {
	tests := []struct {
		rent     int64
		expected Status
	}{
		{1056, StatusHigh},   // at the abusive boundary, not past it
		{900, StatusHigh},    // > 800 * 1.05 = 840
		{840, StatusFair},    // at the high boundary
		{800, StatusFair},
		{770, StatusFair},    // >= 800 * 0.95 = 760
		{750, StatusBelow},
		{0, StatusBelow},
	}

	for _, tt := range tests {
		c := CompareRent(decimal.NewFromInt(tt.rent), referenceResult())
		assert.Equalf(t, tt.expected, c.Status, "rent %d", tt.rent)
	}
}

func TestCompareRentPercentage(t *testing.T) {
	c := CompareRent(decimal.NewFromInt(880), referenceResult())
	assert.Equal(t, "10", c.PercentageDifference.String())

	c = CompareRent(decimal.NewFromInt(720), referenceResult())
	assert.Equal(t, "-10", c.PercentageDifference.String())
}

func TestCompareRentZeroMedian(t *testing.T) {
	c := CompareRent(decimal.NewFromInt(100), Result{})
	assert.True(t, c.PercentageDifference.IsZero(), "no division by a zero median")
}

func TestParseRent(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
		ok       bool
	}{
		{"950", "950", true},
		{"950.50", "950.5", true},
		{"950,50", "950.5", true},
		{" € 950 ", "950", true},
		{"", "0", false},
		{"   ", "0", false},
		{"abc", "0", false},
		{"-100", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			value, ok := ParseRent(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.expected, value.String())
			}
		})
	}
}
