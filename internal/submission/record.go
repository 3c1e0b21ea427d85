package submission

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vanmarkic/loyer-brussels/internal/domain"
)

// Record is the flat row handed to the record store: one submission of a
// completed calculation. It is derived deterministically from form state;
// the same state always yields the same record (minus the store-assigned
// identifier).
type Record struct {
	SessionID string `json:"sessionId"`

	Email          string `json:"email"`
	Phone          string `json:"phone"`
	JoinNewsletter bool   `json:"joinNewsletter"`
	JoinAssembly   bool   `json:"joinAssembly"`

	PropertyType  string `json:"propertyType"`
	Size          int    `json:"size"`
	Bedrooms      int    `json:"bedrooms"`
	Bathrooms     int    `json:"bathrooms"`
	EnergyClass   string `json:"energyClass"`
	PropertyState int    `json:"propertyState"`
	PostalCode    string `json:"postalCode"`
	StreetName    string `json:"streetName"`
	StreetNumber  string `json:"streetNumber"`

	ActualRent     string `json:"actualRent"`
	LeaseType      string `json:"leaseType"`
	LeaseStartDate string `json:"leaseStartDate"`

	MedianRent *decimal.Decimal `json:"medianRent"`
	MinRent    *decimal.Decimal `json:"minRent"`
	MaxRent    *decimal.Decimal `json:"maxRent"`

	HealthIssues    string `json:"healthIssues"`
	MajorDefects    string `json:"majorDefects"`
	PositiveAspects string `json:"positiveAspects"`
	Comments        string `json:"comments"`
}

// NewRecord flattens form state into a submission record. Tag lists are
// joined in their stored order, which the questionnaire keeps stable, so
// the flattening stays deterministic.
func NewRecord(state domain.FormState) Record {
	return Record{
		SessionID: state.SessionID,

		Email:          state.UserProfile.Email,
		Phone:          state.UserProfile.Phone,
		JoinNewsletter: state.UserProfile.JoinNewsletter,
		JoinAssembly:   state.UserProfile.JoinAssembly,

		PropertyType:  string(state.PropertyInfo.PropertyType),
		Size:          state.PropertyInfo.Size,
		Bedrooms:      state.PropertyInfo.Bedrooms,
		Bathrooms:     state.PropertyInfo.Bathrooms,
		EnergyClass:   string(state.PropertyInfo.EnergyClass),
		PropertyState: state.PropertyInfo.PropertyState,
		PostalCode:    state.PropertyInfo.PostalCode,
		StreetName:    state.PropertyInfo.StreetName,
		StreetNumber:  state.PropertyInfo.StreetNumber,

		ActualRent:     state.RentalInfo.ActualRent,
		LeaseType:      state.RentalInfo.LeaseType,
		LeaseStartDate: state.RentalInfo.LeaseStartDate,

		MedianRent: state.CalculationResults.MedianRent,
		MinRent:    state.CalculationResults.MinRent,
		MaxRent:    state.CalculationResults.MaxRent,

		HealthIssues:    strings.Join(state.PropertyIssues.HealthIssues, ";"),
		MajorDefects:    strings.Join(state.PropertyIssues.MajorDefects, ";"),
		PositiveAspects: strings.Join(state.PropertyIssues.PositiveAspects, ";"),
		Comments:        state.PropertyIssues.AdditionalComments,
	}
}
