package navigation

import (
	"github.com/vanmarkic/loyer-brussels/internal/domain"
)

// StepValid reports whether the required fields of a step are answered.
// Tri-state questions must be explicitly answered: Unset blocks, an
// explicit No passes. Controls invoking navigation compute this live
// from state; a cached boolean goes stale the moment an answer changes.
func StepValid(state domain.FormState, step int) bool {
	info := state.PropertyInfo
	switch step {
	case 1:
		// Empty string is the unset sentinel and blocks exactly like nil.
		return info.PropertyType != domain.PropertyTypeUnset
	case 2:
		// Size 0 means "not entered"; negative never passes either.
		return info.Size > 0 && info.PropertyState > 0
	case 3:
		return info.CentralHeating.Answered() &&
			info.ThermalRegulation.Answered() &&
			info.DoubleGlazing.Answered() &&
			info.SecondBathroom.Answered() &&
			info.RecreationalSpaces.Answered() &&
			info.StorageSpaces.Answered() &&
			info.ConstructedBefore2000.Answered()
	case 4:
		return domain.ValidEnergyClass(info.EnergyClass)
	case 5:
		return info.PostalCode != "" && info.StreetName != "" && info.StreetNumber != ""
	case 6:
		return true
	default:
		return false
	}
}

// CanAdvance reports whether Continue is allowed from the current step.
func CanAdvance(state domain.FormState) bool {
	return StepValid(state, state.CurrentStep)
}
