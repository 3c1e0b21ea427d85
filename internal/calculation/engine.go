package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/vanmarkic/loyer-brussels/internal/domain"
)

// Result is a computed reference-rent range. All amounts are whole euros
// per month.
type Result struct {
	DifficultyIndex decimal.Decimal
	MedianRent      decimal.Decimal
	MinimumRent     decimal.Decimal
	MaximumRent     decimal.Decimal
}

// Engine derives reference rents from form state. It is pure: no I/O, no
// randomness, safe to call from any goroutine.
type Engine struct {
	Rates RateTable
}

// NewEngine creates an engine over the compiled-in rate table.
func NewEngine() *Engine {
	return &Engine{Rates: DefaultRateTable()}
}

// NewEngineWithRates creates an engine over a custom rate table, e.g. one
// loaded from a YAML grid file.
func NewEngineWithRates(rates RateTable) *Engine {
	return &Engine{Rates: rates}
}

var (
	bandLow  = decimal.NewFromFloat(0.9)
	bandHigh = decimal.NewFromFloat(1.1)
)

// ReferenceRent computes the reference-rent range for the given state.
// It returns nil when the property type, living space or postal code is
// still unset: "not yet calculable" is an absence, not an error.
func (e *Engine) ReferenceRent(state domain.FormState) *Result {
	info := state.PropertyInfo
	if info.PropertyType == domain.PropertyTypeUnset || info.Size <= 0 || info.PostalCode == "" {
		return nil
	}

	baseRate, ok := e.Rates.BaseRate(info.PropertyType)
	if !ok {
		return nil
	}

	difficulty := e.Rates.DifficultyIndex(info.PostalCode)
	energy := e.Rates.EnergyMultiplier(info.EnergyClass)

	base := baseRate.
		Mul(decimal.NewFromInt(int64(info.Size))).
		Mul(difficulty).
		Mul(energy)

	median := base.Add(e.featureDeltas(info)).Round(0)

	return &Result{
		DifficultyIndex: difficulty,
		MedianRent:      median,
		MinimumRent:     median.Mul(bandLow).Round(0),
		MaximumRent:     median.Mul(bandHigh).Round(0),
	}
}

// featureDeltas sums the fixed adjustments for every feature the user has
// explicitly answered Yes to. Unset and No both contribute nothing here;
// the distinction only matters to the navigation guards.
func (e *Engine) featureDeltas(info domain.PropertyInfo) decimal.Decimal {
	f := e.Rates.Features
	total := decimal.Zero

	if info.CentralHeating.IsYes() {
		total = total.Add(f.CentralHeating)
	}
	if info.ThermalRegulation.IsYes() {
		total = total.Add(f.ThermalRegulation)
	}
	if info.DoubleGlazing.IsYes() {
		total = total.Add(f.DoubleGlazing)
	}
	if info.SecondBathroom.IsYes() {
		total = total.Add(f.SecondBathroom)
	}
	if info.RecreationalSpaces.IsYes() {
		total = total.Add(f.RecreationalSpaces)
	}
	if info.StorageSpaces.IsYes() {
		total = total.Add(f.StorageSpaces)
	}
	if info.ConstructedBefore2000.IsYes() {
		total = total.Add(f.ConstructedBefore2000)
	}
	if info.NumberOfGarages > 0 {
		total = total.Add(f.PerGarage.Mul(decimal.NewFromInt(int64(info.NumberOfGarages))))
	}
	return total
}

// ApplyTo writes the result into a CalculationResults value, clearing any
// previous error. The reducer merges the returned value into state.
func (r *Result) ApplyTo(results domain.CalculationResults) domain.CalculationResults {
	difficulty := r.DifficultyIndex
	median := r.MedianRent
	minRent := r.MinimumRent
	maxRent := r.MaximumRent

	results.DifficultyIndex = &difficulty
	results.MedianRent = &median
	results.MinRent = &minRent
	results.MaxRent = &maxRent
	results.IsLoading = false
	results.Error = ""
	results.ErrorCode = ""
	return results
}
