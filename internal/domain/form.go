package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TotalSteps is the number of calculator steps; steps are 1-indexed.
const TotalSteps = 6

// Page identifies which macro flow the user is in.
type Page string

const (
	PageCalculator    Page = "calculator"
	PageQuestionnaire Page = "questionnaire"
	PageResults       Page = "results"
)

// PropertyType classifies the rented property against the rent grid.
// The empty string means the user has not chosen yet and blocks forward
// navigation exactly like an unanswered tri-state question.
type PropertyType string

const (
	PropertyTypeUnset      PropertyType = ""
	PropertyTypeStudio     PropertyType = "studio"
	PropertyTypeApartment1 PropertyType = "apartment-1"
	PropertyTypeApartment2 PropertyType = "apartment-2"
	PropertyTypeApartment3 PropertyType = "apartment-3"
	PropertyTypeHouse      PropertyType = "house"
)

// EnergyClass is the PEB certificate rating A (best) through G.
// Empty means not provided; the calculation falls back to a neutral
// multiplier in that case.
type EnergyClass string

const (
	EnergyClassUnset EnergyClass = ""
	EnergyClassA     EnergyClass = "A"
	EnergyClassB     EnergyClass = "B"
	EnergyClassC     EnergyClass = "C"
	EnergyClassD     EnergyClass = "D"
	EnergyClassE     EnergyClass = "E"
	EnergyClassF     EnergyClass = "F"
	EnergyClassG     EnergyClass = "G"
)

// PropertyInfo holds everything the user tells us about the dwelling.
// Size 0 is the "unset" sentinel; guards must treat size <= 0 as invalid.
type PropertyInfo struct {
	PropertyType    PropertyType `json:"propertyType"`
	Size            int          `json:"size"`
	Bedrooms        int          `json:"bedrooms"`
	Bathrooms       int          `json:"bathrooms"`
	NumberOfGarages int          `json:"numberOfGarages"`
	EnergyClass     EnergyClass  `json:"energyClass"`

	// Tri-state comfort features. Unset blocks navigation, No does not.
	CentralHeating        TriState `json:"hasCentralHeating"`
	ThermalRegulation     TriState `json:"hasThermalRegulation"`
	DoubleGlazing         TriState `json:"hasDoubleGlazing"`
	SecondBathroom        TriState `json:"hasSecondBathroom"`
	RecreationalSpaces    TriState `json:"hasRecreationalSpaces"`
	StorageSpaces         TriState `json:"hasStorageSpaces"`
	ConstructedBefore2000 TriState `json:"constructedBefore2000"`

	// PropertyState is an ordinal condition rating, 1 (poor) to 3 (good).
	// 0 means not rated.
	PropertyState int `json:"propertyState"`

	PostalCode   string `json:"postalCode"`
	StreetName   string `json:"streetName"`
	StreetNumber string `json:"streetNumber"`
}

// RentalInfo holds the lease details entered by the user.
type RentalInfo struct {
	// ActualRent is kept as entered; it is parsed to a decimal only at
	// comparison time so a half-typed value never corrupts state.
	ActualRent        string `json:"actualRent"`
	LeaseType         string `json:"leaseType"`
	LeaseStartDate    string `json:"leaseStartDate"`
	RentIndexation    string `json:"rentIndexation"`
	BoilerMaintenance bool   `json:"boilerMaintenance"`
	FireInsurance     bool   `json:"fireInsurance"`
}

// HouseholdInfo is only used by the extended questionnaire flow.
type HouseholdInfo struct {
	MonthlyIncome        string `json:"monthlyIncome"`
	HouseholdComposition string `json:"householdComposition"`
	PaymentDelays        string `json:"paymentDelays"`
	EvictionThreats      string `json:"evictionThreats"`
	MediationAttempts    string `json:"mediationAttempts"`
}

// PropertyIssues collects the questionnaire's tag selections.
type PropertyIssues struct {
	HealthIssues       []string `json:"healthIssues"`
	MajorDefects       []string `json:"majorDefects"`
	PositiveAspects    []string `json:"positiveAspects"`
	AdditionalComments string   `json:"additionalComments"`
}

// CalculationResults carries the outcome of the reference-rent
// calculation. The rent fields stay nil until a calculation has run.
type CalculationResults struct {
	DifficultyIndex *decimal.Decimal `json:"difficultyIndex"`
	MedianRent      *decimal.Decimal `json:"medianRent"`
	MinRent         *decimal.Decimal `json:"minRent"`
	MaxRent         *decimal.Decimal `json:"maxRent"`
	IsLoading       bool             `json:"isLoading"`
	Error           string           `json:"error,omitempty"`
	ErrorCode       string           `json:"errorCode,omitempty"`
}

// UserProfile holds the contact details gathered on the final step.
type UserProfile struct {
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	JoinNewsletter bool   `json:"joinNewsletter"`
	JoinAssembly   bool   `json:"joinAssembly"`
}

// FormState is the single source of truth for one calculator session.
// It is owned by exactly one form.Store and mutated only through reducer
// actions; everything else holds it by value.
type FormState struct {
	CurrentStep int  `json:"currentStep"`
	CurrentPage Page `json:"currentPage"`

	PropertyInfo       PropertyInfo       `json:"propertyInformation"`
	RentalInfo         RentalInfo         `json:"rentalInformation"`
	HouseholdInfo      HouseholdInfo      `json:"householdInformation"`
	PropertyIssues     PropertyIssues     `json:"propertyIssues"`
	CalculationResults CalculationResults `json:"calculationResults"`
	UserProfile        UserProfile        `json:"userProfile"`

	// LastUpdated is stamped on every accepted mutation and drives the
	// 24h session-age check. Serialized as epoch milliseconds.
	LastUpdated time.Time `json:"-"`

	// SessionID is a ULID generated once per session. It keys the
	// persisted snapshot and weakly correlates submitted records; it is
	// never an ownership reference.
	SessionID string `json:"sessionId"`
}
