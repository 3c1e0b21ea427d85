package session

import (
	"os"
	"time"

	"github.com/vanmarkic/loyer-brussels/internal/domain"
)

// Health grades the persisted session for optional UI display. It has no
// effect on form correctness.
type Health string

const (
	HealthHealthy Health = "healthy"
	HealthWarning Health = "warning"
	HealthError   Health = "error"
)

// warnAgeFraction is the share of the maximum session age past which the
// session is flagged as a warning.
const warnAgeFraction = 0.8

// quotaWarnFraction is the share of the storage quota past which the
// session is flagged as an error.
const quotaWarnFraction = 0.9

// Stats are read-only diagnostics about the persisted session.
type Stats struct {
	SessionAgeMinutes int
	ApproxSizeKB      float64
	CompletionPercent int
	Health            Health
}

// Stats derives diagnostics from the stored snapshot. When nothing is
// stored it reports a healthy, empty session.
func (s *FileStore) Stats() Stats {
	state := s.Load()
	if state == nil {
		return Stats{Health: HealthHealthy}
	}

	age := s.clock().Sub(state.LastUpdated)
	stats := Stats{
		SessionAgeMinutes: int(age.Minutes()),
		CompletionPercent: CompletionPercent(*state),
	}

	var sizeBytes int64
	if info, err := os.Stat(s.path()); err == nil {
		sizeBytes = info.Size()
		stats.ApproxSizeKB = float64(sizeBytes) / 1024
	}

	switch {
	case age > s.maxAge,
		float64(sizeBytes) > float64(s.quotaBytes)*quotaWarnFraction:
		stats.Health = HealthError
	case age > time.Duration(float64(s.maxAge)*warnAgeFraction):
		stats.Health = HealthWarning
	default:
		stats.Health = HealthHealthy
	}
	return stats
}

// CompletionPercent is the share of answered leaf fields across the
// property, rental and profile sections, as a whole percentage.
func CompletionPercent(state domain.FormState) int {
	total := 0
	answered := 0
	count := func(done bool) {
		total++
		if done {
			answered++
		}
	}

	info := state.PropertyInfo
	count(info.PropertyType != domain.PropertyTypeUnset)
	count(info.Size > 0)
	count(info.Bedrooms > 0)
	count(info.Bathrooms > 0)
	count(info.EnergyClass != domain.EnergyClassUnset)
	count(info.CentralHeating.Answered())
	count(info.ThermalRegulation.Answered())
	count(info.DoubleGlazing.Answered())
	count(info.SecondBathroom.Answered())
	count(info.RecreationalSpaces.Answered())
	count(info.StorageSpaces.Answered())
	count(info.ConstructedBefore2000.Answered())
	count(info.PropertyState > 0)
	count(info.PostalCode != "")
	count(info.StreetName != "")
	count(info.StreetNumber != "")

	rental := state.RentalInfo
	count(rental.ActualRent != "")
	count(rental.LeaseType != "")
	count(rental.LeaseStartDate != "")
	count(rental.RentIndexation != "")

	profile := state.UserProfile
	count(profile.Email != "")
	count(profile.Phone != "")

	if total == 0 {
		return 0
	}
	return answered * 100 / total
}
