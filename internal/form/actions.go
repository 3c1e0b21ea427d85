package form

import (
	"github.com/shopspring/decimal"

	"github.com/vanmarkic/loyer-brussels/internal/domain"
)

// Action is the sealed set of reducer inputs. Update actions are partials:
// only non-nil fields are merged, everything else in the targeted
// sub-struct is preserved, and sibling sub-structs are never touched.
type Action interface {
	isAction()
}

// UpdatePropertyInfo merges dwelling answers into PropertyInfo.
type UpdatePropertyInfo struct {
	PropertyType    *domain.PropertyType
	Size            *int
	Bedrooms        *int
	Bathrooms       *int
	NumberOfGarages *int
	EnergyClass     *domain.EnergyClass

	CentralHeating        *domain.TriState
	ThermalRegulation     *domain.TriState
	DoubleGlazing         *domain.TriState
	SecondBathroom        *domain.TriState
	RecreationalSpaces    *domain.TriState
	StorageSpaces         *domain.TriState
	ConstructedBefore2000 *domain.TriState

	PropertyState *int
	PostalCode    *string
	StreetName    *string
	StreetNumber  *string
}

// UpdateRentalInfo merges lease answers into RentalInfo.
type UpdateRentalInfo struct {
	ActualRent        *string
	LeaseType         *string
	LeaseStartDate    *string
	RentIndexation    *string
	BoilerMaintenance *bool
	FireInsurance     *bool
}

// UpdateHouseholdInfo merges questionnaire answers into HouseholdInfo.
type UpdateHouseholdInfo struct {
	MonthlyIncome        *string
	HouseholdComposition *string
	PaymentDelays        *string
	EvictionThreats      *string
	MediationAttempts    *string
}

// UpdatePropertyIssues merges tag selections into PropertyIssues.
type UpdatePropertyIssues struct {
	HealthIssues       []string
	MajorDefects       []string
	PositiveAspects    []string
	AdditionalComments *string
}

// UpdateUserProfile merges contact details into UserProfile.
type UpdateUserProfile struct {
	Email          *string
	Phone          *string
	JoinNewsletter *bool
	JoinAssembly   *bool
}

// UpdateCalculationResults merges a calculation outcome (or its loading /
// error phases) into CalculationResults.
type UpdateCalculationResults struct {
	DifficultyIndex *decimal.Decimal
	MedianRent      *decimal.Decimal
	MinRent         *decimal.Decimal
	MaxRent         *decimal.Decimal
	IsLoading       *bool
	Error           *string
	ErrorCode       *string
}

// SetCurrentStep jumps to an explicit step. The reducer clamps to
// [1, TotalSteps] but does not validate step completeness; that is the
// navigation controller's job, applied before dispatch.
type SetCurrentStep struct {
	Step int
}

// NextStep advances one step, clamped at TotalSteps.
type NextStep struct{}

// PrevStep retreats one step, clamped at 1.
type PrevStep struct{}

// ResetForm returns to the initial state. NewSessionID carries the
// regenerated session identifier; a cleared session is not resumable
// through its old snapshot key. The store fills this in on dispatch so
// the reducer itself stays deterministic.
type ResetForm struct {
	NewSessionID string
}

// RestoreSession replaces the whole state with a persisted snapshot.
// The reducer validates the shape and backfills defaults; a snapshot that
// fails validation yields the initial state, never a partial one.
// FallbackSessionID seeds that initial state, again so the reducer never
// has to generate identifiers itself.
type RestoreSession struct {
	Snapshot          domain.FormState
	FallbackSessionID string
}

func (UpdatePropertyInfo) isAction()       {}
func (UpdateRentalInfo) isAction()         {}
func (UpdateHouseholdInfo) isAction()      {}
func (UpdatePropertyIssues) isAction()     {}
func (UpdateUserProfile) isAction()        {}
func (UpdateCalculationResults) isAction() {}
func (SetCurrentStep) isAction()           {}
func (NextStep) isAction()                 {}
func (PrevStep) isAction()                 {}
func (ResetForm) isAction()                {}
func (RestoreSession) isAction()           {}
