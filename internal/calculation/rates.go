package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/vanmarkic/loyer-brussels/internal/domain"
)

// FeatureDeltas are the fixed monthly adjustments, in euros, applied on
// top of the size-based rent for each dwelling feature.
type FeatureDeltas struct {
	CentralHeating        decimal.Decimal `yaml:"central_heating"`
	ThermalRegulation     decimal.Decimal `yaml:"thermal_regulation"`
	DoubleGlazing         decimal.Decimal `yaml:"double_glazing"`
	SecondBathroom        decimal.Decimal `yaml:"second_bathroom"`
	RecreationalSpaces    decimal.Decimal `yaml:"recreational_spaces"`
	StorageSpaces         decimal.Decimal `yaml:"storage_spaces"`
	ConstructedBefore2000 decimal.Decimal `yaml:"constructed_before_2000"`
	PerGarage             decimal.Decimal `yaml:"per_garage"`
}

// RateTable is the full pricing grid: euro-per-square-metre base rates
// by dwelling type, a difficulty index per postal code, multipliers per
// energy class and the feature deltas. It can be overridden from a YAML
// configuration file.
type RateTable struct {
	BaseRates         map[domain.PropertyType]decimal.Decimal `yaml:"base_rates"`
	DifficultyIndexes map[string]decimal.Decimal              `yaml:"difficulty_indexes"`
	EnergyMultipliers map[domain.EnergyClass]decimal.Decimal  `yaml:"energy_multipliers"`
	Features          FeatureDeltas                           `yaml:"features"`
}

// BaseRate returns the euro-per-square-metre rate for a dwelling type.
// The second return is false for types the grid does not price.
func (t RateTable) BaseRate(propertyType domain.PropertyType) (decimal.Decimal, bool) {
	rate, ok := t.BaseRates[propertyType]
	return rate, ok
}

// DifficultyIndex returns the multiplier for a postal code, or 1.0 when
// the code is not in the grid. An unknown neighbourhood is priced
// neutrally rather than refused.
func (t RateTable) DifficultyIndex(postalCode string) decimal.Decimal {
	if idx, ok := t.DifficultyIndexes[postalCode]; ok {
		return idx
	}
	return decimal.NewFromInt(1)
}

// EnergyMultiplier returns the multiplier for an energy class, or 1.0
// when the class is unset or unknown.
func (t RateTable) EnergyMultiplier(class domain.EnergyClass) decimal.Decimal {
	if m, ok := t.EnergyMultipliers[class]; ok {
		return m
	}
	return decimal.NewFromInt(1)
}

// DefaultRateTable returns the compiled-in 2024 grid for the Brussels
// region.
func DefaultRateTable() RateTable {
	return RateTable{
		BaseRates: map[domain.PropertyType]decimal.Decimal{
			domain.PropertyTypeStudio:     decimal.NewFromFloat(18),
			domain.PropertyTypeApartment1: decimal.NewFromFloat(16),
			domain.PropertyTypeApartment2: decimal.NewFromFloat(14),
			domain.PropertyTypeApartment3: decimal.NewFromFloat(12.5),
			domain.PropertyTypeHouse:      decimal.NewFromFloat(11),
		},
		DifficultyIndexes: map[string]decimal.Decimal{
			"1000": decimal.NewFromFloat(1.1),
			"1030": decimal.NewFromFloat(0.95),
			"1050": decimal.NewFromFloat(1.15),
			"1060": decimal.NewFromFloat(1.05),
			"1070": decimal.NewFromFloat(0.9),
			"1080": decimal.NewFromFloat(0.9),
			"1180": decimal.NewFromFloat(1.2),
			"1210": decimal.NewFromFloat(1),
		},
		EnergyMultipliers: map[domain.EnergyClass]decimal.Decimal{
			domain.EnergyClassA: decimal.NewFromFloat(1.15),
			domain.EnergyClassB: decimal.NewFromFloat(1.1),
			domain.EnergyClassC: decimal.NewFromFloat(1.05),
			domain.EnergyClassD: decimal.NewFromFloat(1),
			domain.EnergyClassE: decimal.NewFromFloat(0.95),
			domain.EnergyClassF: decimal.NewFromFloat(0.9),
			domain.EnergyClassG: decimal.NewFromFloat(0.85),
		},
		Features: FeatureDeltas{
			CentralHeating:        decimal.NewFromInt(20),
			ThermalRegulation:     decimal.NewFromInt(10),
			DoubleGlazing:         decimal.NewFromInt(15),
			SecondBathroom:        decimal.NewFromInt(25),
			RecreationalSpaces:    decimal.NewFromInt(15),
			StorageSpaces:         decimal.NewFromInt(10),
			ConstructedBefore2000: decimal.NewFromInt(-25),
			PerGarage:             decimal.NewFromInt(50),
		},
	}
}
