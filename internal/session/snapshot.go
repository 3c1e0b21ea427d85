package session

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"github.com/vanmarkic/loyer-brussels/internal/domain"
)

const (
	// StorageKey names the durable snapshot, mirroring the historical
	// client-side storage key.
	StorageKey = "loyer-brussels-form-data"

	// MaxSessionAge is how long a snapshot stays restorable. Older
	// snapshots are discarded on load, never offered for restoration.
	MaxSessionAge = 24 * time.Hour
)

// envelope is the on-disk snapshot document. It mirrors FormState field
// for field, with LastUpdated flattened to epoch milliseconds. Fields a
// reader does not recognize are ignored; a missing required field is
// caught by the shape validation after decode.
type envelope struct {
	domain.FormState
	LastUpdatedMillis int64 `json:"lastUpdated"`
}

// EncodeSnapshot serializes a form state to the snapshot document.
func EncodeSnapshot(state domain.FormState) ([]byte, error) {
	env := envelope{
		FormState:         state,
		LastUpdatedMillis: state.LastUpdated.UnixMilli(),
	}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot document back into a form state. It
// returns an error for malformed JSON; expiry and shape checks are the
// caller's concern.
func DecodeSnapshot(data []byte) (domain.FormState, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return domain.FormState{}, fmt.Errorf("decode snapshot: %w", err)
	}
	state := env.FormState
	if env.LastUpdatedMillis > 0 {
		state.LastUpdated = time.UnixMilli(env.LastUpdatedMillis).UTC()
	}
	return state, nil
}
