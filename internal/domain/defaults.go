package domain

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// NewSessionID generates the opaque session identifier. ULIDs sort by
// creation time, which keeps snapshot directories readable when debugging.
func NewSessionID() string {
	return ulid.Make().String()
}

// NewFormState returns the initial state for a fresh session. Every field
// starts at its documented unset sentinel: tri-states at Unset, size at 0,
// property type at the empty string.
func NewFormState(sessionID string, now time.Time) FormState {
	return FormState{
		CurrentStep: 1,
		CurrentPage: PageCalculator,
		PropertyInfo: PropertyInfo{
			PropertyType: PropertyTypeUnset,
			EnergyClass:  EnergyClassUnset,
		},
		CalculationResults: CalculationResults{},
		LastUpdated:        now,
		SessionID:          sessionID,
	}
}

// ValidEnergyClass reports whether c is one of the recognized PEB ratings.
// The empty string is not valid here; callers treat it as "not provided".
func ValidEnergyClass(c EnergyClass) bool {
	switch c {
	case EnergyClassA, EnergyClassB, EnergyClassC, EnergyClassD,
		EnergyClassE, EnergyClassF, EnergyClassG:
		return true
	}
	return false
}

// ValidPropertyType reports whether t is a recognized property type.
func ValidPropertyType(t PropertyType) bool {
	switch t {
	case PropertyTypeStudio, PropertyTypeApartment1, PropertyTypeApartment2,
		PropertyTypeApartment3, PropertyTypeHouse:
		return true
	}
	return false
}
