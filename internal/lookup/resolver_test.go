package lookup

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanmarkic/loyer-brussels/internal/calculation"
)

func testResolver() *StaticResolver {
	return NewStaticResolver(calculation.DefaultRateTable().DifficultyIndexes)
}

func TestResolveByPostalCode(t *testing.T) {
	candidates, err := testResolver().Resolve(context.Background(), "1050")
	require.NoError(t, err)
	require.NotEmpty(t, candidates)

	for _, c := range candidates {
		assert.Equal(t, "1050", c.Postcode)
		assert.True(t, c.DifficultyIndex.Equal(decimal.NewFromFloat(1.15)),
			"candidates carry the grid index for their postcode, got %s", c.DifficultyIndex)
	}
}

func TestResolveByStreetFragment(t *testing.T) {
	candidates, err := testResolver().Resolve(context.Background(), "louise")
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	assert.Equal(t, "Avenue Louise", candidates[0].StreetName)
	assert.Equal(t, "1050", candidates[0].Postcode)
}

func TestResolveFragmentMatchingIsCaseInsensitive(t *testing.T) {
	lower, err := testResolver().Resolve(context.Background(), "brugmann")
	require.NoError(t, err)
	upper, err := testResolver().Resolve(context.Background(), "BRUGMANN")
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
}

func TestResolveCombinedPostcodeAndFragment(t *testing.T) {
	// "Rue Royale" appears in 1030 and 1210; the postcode narrows it.
	candidates, err := testResolver().Resolve(context.Background(), "1210 royale")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Rue Royale", candidates[0].StreetName)
}

func TestResolveInsufficientQuery(t *testing.T) {
	tests := []string{"", "  ", "ab", "99"}
	for _, query := range tests {
		candidates, err := testResolver().Resolve(context.Background(), query)
		assert.ErrorIsf(t, err, ErrInsufficientQuery, "query %q", query)
		assert.Nil(t, candidates)
	}
}

func TestResolveUnknownPostcodeFallsBackToUnitIndex(t *testing.T) {
	r := NewStaticResolver(map[string]decimal.Decimal{})
	candidates, err := r.Resolve(context.Background(), "1000")
	require.NoError(t, err)
	require.NotEmpty(t, candidates)
	assert.True(t, candidates[0].DifficultyIndex.Equal(decimal.NewFromInt(1)))
}

func TestResolveNoMatchesReturnsEmptyNotError(t *testing.T) {
	candidates, err := testResolver().Resolve(context.Background(), "zzzzzz")
	require.NoError(t, err)
	assert.Empty(t, candidates, "an honest miss is not an error")
}
