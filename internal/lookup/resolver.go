package lookup

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// CodeInsufficientQuery is the machine-readable code returned when a
// query carries neither a recognizable postal code nor a street fragment.
const CodeInsufficientQuery = "INSUFFICIENT_QUERY"

// ErrInsufficientQuery rejects queries that cannot possibly match.
var ErrInsufficientQuery = errors.New("query needs a postal code or a street fragment")

// Candidate is one address match. The calculator core only ever consumes
// DifficultyIndex; the address fields exist for display.
type Candidate struct {
	Postcode        string
	StreetName      string
	HouseNumber     string
	DifficultyIndex decimal.Decimal
}

// Resolver turns a free-text address query into candidates. A failing
// resolver must degrade to the default difficulty multiplier on the
// caller's side; lookup is enrichment, never a gate on calculation.
type Resolver interface {
	Resolve(ctx context.Context, query string) ([]Candidate, error)
}

// brusselsPostcode matches the 1000-1299 range used by the region.
var brusselsPostcode = regexp.MustCompile(`\b1[0-2]\d{2}\b`)

// StaticResolver resolves against an in-memory table of streets keyed by
// postal code, with the difficulty index taken from the same grid the
// calculation engine uses.
type StaticResolver struct {
	streets           map[string][]string
	difficultyIndexes map[string]decimal.Decimal
}

// NewStaticResolver builds a resolver over the given difficulty grid.
func NewStaticResolver(difficultyIndexes map[string]decimal.Decimal) *StaticResolver {
	return &StaticResolver{
		streets:           defaultStreets(),
		difficultyIndexes: difficultyIndexes,
	}
}

// Resolve returns candidates for the query, or ErrInsufficientQuery when
// the query has neither a postal code nor a street fragment of at least
// three characters.
func (r *StaticResolver) Resolve(_ context.Context, query string) ([]Candidate, error) {
	query = strings.TrimSpace(query)
	postcode := brusselsPostcode.FindString(query)
	fragment := strings.ToLower(strings.TrimSpace(brusselsPostcode.ReplaceAllString(query, "")))

	if postcode == "" && len(fragment) < 3 {
		return nil, ErrInsufficientQuery
	}

	var candidates []Candidate
	for code, streets := range r.streets {
		if postcode != "" && code != postcode {
			continue
		}
		for _, street := range streets {
			if fragment != "" && !strings.Contains(strings.ToLower(street), fragment) {
				continue
			}
			candidates = append(candidates, Candidate{
				Postcode:        code,
				StreetName:      street,
				DifficultyIndex: r.difficultyIndex(code),
			})
		}
	}
	return candidates, nil
}

func (r *StaticResolver) difficultyIndex(postcode string) decimal.Decimal {
	if idx, ok := r.difficultyIndexes[postcode]; ok {
		return idx
	}
	return decimal.NewFromInt(1)
}

func defaultStreets() map[string][]string {
	return map[string][]string{
		"1000": {"Rue de la Loi", "Boulevard Anspach", "Rue Haute"},
		"1030": {"Avenue Louis Bertrand", "Rue Royale Sainte-Marie"},
		"1050": {"Avenue Louise", "Chaussée d'Ixelles", "Rue du Bailli"},
		"1060": {"Chaussée de Waterloo", "Parvis de Saint-Gilles"},
		"1070": {"Chaussée de Mons", "Rue Wayez"},
		"1080": {"Chaussée de Gand", "Boulevard Léopold II"},
		"1180": {"Avenue Brugmann", "Rue Vanderkindere"},
		"1210": {"Chaussée de Louvain", "Rue Royale"},
	}
}
