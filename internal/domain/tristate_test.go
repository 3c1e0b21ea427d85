package domain

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriStateAnswered(t *testing.T) {
	assert.False(t, Unset.Answered(), "unset must not count as answered")
	assert.True(t, No.Answered(), "an explicit no is answered")
	assert.True(t, Yes.Answered(), "an explicit yes is answered")
}

func TestTriStateJSONRoundTrip(t *testing.T) {
	tests := []struct {
		value TriState
		wire  string
	}{
		{Unset, "null"},
		{No, "false"},
		{Yes, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.wire, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.wire, string(data))

			var decoded TriState
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tt.value, decoded)
		})
	}
}

func TestTriStateUnmarshalRejectsGarbage(t *testing.T) {
	var decoded TriState
	assert.Error(t, decoded.UnmarshalJSON([]byte(`"yes"`)))
	assert.Error(t, decoded.UnmarshalJSON([]byte(`1`)))
}

func TestTriStateNullNeverCoercesToNo(t *testing.T) {
	var decoded TriState
	require.NoError(t, decoded.UnmarshalJSON([]byte("null")))
	assert.NotEqual(t, No, decoded, "null must stay distinct from an explicit no")
	assert.Equal(t, Unset, decoded)
}
