package form

import (
	"fmt"
	"time"

	"github.com/vanmarkic/loyer-brussels/internal/domain"
)

// Reduce is the single transition function for form state. It is pure and
// total: any well-typed action yields a next state, never a panic. The
// clock value stamps LastUpdated on accepted mutations; callers (the
// Store) pass time.Now().
func Reduce(state domain.FormState, action Action, now time.Time) domain.FormState {
	switch a := action.(type) {
	case UpdatePropertyInfo:
		state.PropertyInfo = mergePropertyInfo(state.PropertyInfo, a)
		state.LastUpdated = now
	case UpdateRentalInfo:
		state.RentalInfo = mergeRentalInfo(state.RentalInfo, a)
		state.LastUpdated = now
	case UpdateHouseholdInfo:
		state.HouseholdInfo = mergeHouseholdInfo(state.HouseholdInfo, a)
		state.LastUpdated = now
	case UpdatePropertyIssues:
		state.PropertyIssues = mergePropertyIssues(state.PropertyIssues, a)
		state.LastUpdated = now
	case UpdateUserProfile:
		state.UserProfile = mergeUserProfile(state.UserProfile, a)
		state.LastUpdated = now
	case UpdateCalculationResults:
		state.CalculationResults = mergeCalculationResults(state.CalculationResults, a)
		state.LastUpdated = now
	case SetCurrentStep:
		state.CurrentStep = clampStep(a.Step)
		state.LastUpdated = now
	case NextStep:
		state.CurrentStep = clampStep(state.CurrentStep + 1)
		state.LastUpdated = now
	case PrevStep:
		state.CurrentStep = clampStep(state.CurrentStep - 1)
		state.LastUpdated = now
	case ResetForm:
		sessionID := a.NewSessionID
		if sessionID == "" {
			sessionID = state.SessionID
		}
		state = domain.NewFormState(sessionID, now)
	case RestoreSession:
		state = restore(state, a, now)
	}
	return state
}

func clampStep(step int) int {
	if step < 1 {
		return 1
	}
	if step > domain.TotalSteps {
		return domain.TotalSteps
	}
	return step
}

// restore validates and normalizes a persisted snapshot. A snapshot that
// fails validation must never propagate; the session falls back to a
// fresh initial state instead.
func restore(state domain.FormState, a RestoreSession, now time.Time) domain.FormState {
	snapshot := a.Snapshot
	if err := ValidateSnapshot(snapshot); err != nil {
		fallback := a.FallbackSessionID
		if fallback == "" {
			fallback = state.SessionID
		}
		return domain.NewFormState(fallback, now)
	}
	return NormalizeSnapshot(snapshot)
}

// ValidateSnapshot checks the invariants a decoded snapshot must satisfy
// before it may replace live state.
func ValidateSnapshot(s domain.FormState) error {
	if s.SessionID == "" {
		return fmt.Errorf("snapshot has no session id")
	}
	if s.CurrentStep < 1 || s.CurrentStep > domain.TotalSteps {
		return fmt.Errorf("snapshot step %d out of range [1, %d]", s.CurrentStep, domain.TotalSteps)
	}
	if s.LastUpdated.IsZero() {
		return fmt.Errorf("snapshot has no last-updated timestamp")
	}
	if s.PropertyInfo.PropertyType != domain.PropertyTypeUnset &&
		!domain.ValidPropertyType(s.PropertyInfo.PropertyType) {
		return fmt.Errorf("snapshot has unknown property type %q", s.PropertyInfo.PropertyType)
	}
	return nil
}

// NormalizeSnapshot backfills fields an older snapshot may predate with
// current defaults, so a stale blob cannot reintroduce half-initialized
// state for fields the schema has since added.
func NormalizeSnapshot(s domain.FormState) domain.FormState {
	if s.CurrentPage == "" {
		s.CurrentPage = domain.PageCalculator
	}
	if s.PropertyInfo.EnergyClass != domain.EnergyClassUnset &&
		!domain.ValidEnergyClass(s.PropertyInfo.EnergyClass) {
		s.PropertyInfo.EnergyClass = domain.EnergyClassUnset
	}
	if s.PropertyInfo.Size < 0 {
		s.PropertyInfo.Size = 0
	}
	if s.PropertyInfo.NumberOfGarages < 0 {
		s.PropertyInfo.NumberOfGarages = 0
	}
	if s.PropertyInfo.Bedrooms < 0 {
		s.PropertyInfo.Bedrooms = 0
	}
	if s.PropertyInfo.Bathrooms < 0 {
		s.PropertyInfo.Bathrooms = 0
	}
	return s
}

func mergePropertyInfo(info domain.PropertyInfo, a UpdatePropertyInfo) domain.PropertyInfo {
	if a.PropertyType != nil {
		info.PropertyType = *a.PropertyType
	}
	if a.Size != nil {
		info.Size = *a.Size
	}
	if a.Bedrooms != nil {
		info.Bedrooms = *a.Bedrooms
	}
	if a.Bathrooms != nil {
		info.Bathrooms = *a.Bathrooms
	}
	if a.NumberOfGarages != nil {
		info.NumberOfGarages = *a.NumberOfGarages
	}
	if a.EnergyClass != nil {
		info.EnergyClass = *a.EnergyClass
	}
	if a.CentralHeating != nil {
		info.CentralHeating = *a.CentralHeating
	}
	if a.ThermalRegulation != nil {
		info.ThermalRegulation = *a.ThermalRegulation
	}
	if a.DoubleGlazing != nil {
		info.DoubleGlazing = *a.DoubleGlazing
	}
	if a.SecondBathroom != nil {
		info.SecondBathroom = *a.SecondBathroom
	}
	if a.RecreationalSpaces != nil {
		info.RecreationalSpaces = *a.RecreationalSpaces
	}
	if a.StorageSpaces != nil {
		info.StorageSpaces = *a.StorageSpaces
	}
	if a.ConstructedBefore2000 != nil {
		info.ConstructedBefore2000 = *a.ConstructedBefore2000
	}
	if a.PropertyState != nil {
		info.PropertyState = *a.PropertyState
	}
	if a.PostalCode != nil {
		info.PostalCode = *a.PostalCode
	}
	if a.StreetName != nil {
		info.StreetName = *a.StreetName
	}
	if a.StreetNumber != nil {
		info.StreetNumber = *a.StreetNumber
	}
	return info
}

func mergeRentalInfo(info domain.RentalInfo, a UpdateRentalInfo) domain.RentalInfo {
	if a.ActualRent != nil {
		info.ActualRent = *a.ActualRent
	}
	if a.LeaseType != nil {
		info.LeaseType = *a.LeaseType
	}
	if a.LeaseStartDate != nil {
		info.LeaseStartDate = *a.LeaseStartDate
	}
	if a.RentIndexation != nil {
		info.RentIndexation = *a.RentIndexation
	}
	if a.BoilerMaintenance != nil {
		info.BoilerMaintenance = *a.BoilerMaintenance
	}
	if a.FireInsurance != nil {
		info.FireInsurance = *a.FireInsurance
	}
	return info
}

func mergeHouseholdInfo(info domain.HouseholdInfo, a UpdateHouseholdInfo) domain.HouseholdInfo {
	if a.MonthlyIncome != nil {
		info.MonthlyIncome = *a.MonthlyIncome
	}
	if a.HouseholdComposition != nil {
		info.HouseholdComposition = *a.HouseholdComposition
	}
	if a.PaymentDelays != nil {
		info.PaymentDelays = *a.PaymentDelays
	}
	if a.EvictionThreats != nil {
		info.EvictionThreats = *a.EvictionThreats
	}
	if a.MediationAttempts != nil {
		info.MediationAttempts = *a.MediationAttempts
	}
	return info
}

func mergePropertyIssues(issues domain.PropertyIssues, a UpdatePropertyIssues) domain.PropertyIssues {
	if a.HealthIssues != nil {
		issues.HealthIssues = a.HealthIssues
	}
	if a.MajorDefects != nil {
		issues.MajorDefects = a.MajorDefects
	}
	if a.PositiveAspects != nil {
		issues.PositiveAspects = a.PositiveAspects
	}
	if a.AdditionalComments != nil {
		issues.AdditionalComments = *a.AdditionalComments
	}
	return issues
}

func mergeUserProfile(profile domain.UserProfile, a UpdateUserProfile) domain.UserProfile {
	if a.Email != nil {
		profile.Email = *a.Email
	}
	if a.Phone != nil {
		profile.Phone = *a.Phone
	}
	if a.JoinNewsletter != nil {
		profile.JoinNewsletter = *a.JoinNewsletter
	}
	if a.JoinAssembly != nil {
		profile.JoinAssembly = *a.JoinAssembly
	}
	return profile
}

func mergeCalculationResults(results domain.CalculationResults, a UpdateCalculationResults) domain.CalculationResults {
	if a.DifficultyIndex != nil {
		results.DifficultyIndex = a.DifficultyIndex
	}
	if a.MedianRent != nil {
		results.MedianRent = a.MedianRent
	}
	if a.MinRent != nil {
		results.MinRent = a.MinRent
	}
	if a.MaxRent != nil {
		results.MaxRent = a.MaxRent
	}
	if a.IsLoading != nil {
		results.IsLoading = *a.IsLoading
	}
	if a.Error != nil {
		results.Error = *a.Error
	}
	if a.ErrorCode != nil {
		results.ErrorCode = *a.ErrorCode
	}
	return results
}
