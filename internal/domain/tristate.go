package domain

import (
	"bytes"
	"fmt"
)

// TriState is the answer state of a yes/no form question. Unanswered is a
// distinct value from No: an unanswered question blocks forward navigation
// while an explicit No does not. Never compare a TriState through a bool
// conversion; use Answered and IsYes.
type TriState int

const (
	// Unset means the user has not answered the question yet.
	Unset TriState = iota
	// No is an explicit negative answer.
	No
	// Yes is an explicit positive answer.
	Yes
)

var (
	jsonNull  = []byte("null")
	jsonTrue  = []byte("true")
	jsonFalse = []byte("false")
)

// Answered reports whether the question has been answered at all.
func (t TriState) Answered() bool {
	return t != Unset
}

// IsYes reports an explicit positive answer.
func (t TriState) IsYes() bool {
	return t == Yes
}

// FromBool converts an explicit boolean answer to a TriState.
func FromBool(b bool) TriState {
	if b {
		return Yes
	}
	return No
}

// String returns "unset", "no" or "yes".
func (t TriState) String() string {
	switch t {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "unset"
	}
}

// MarshalJSON encodes Unset as null so the snapshot format stays wire
// compatible with the historical representation (null / false / true).
func (t TriState) MarshalJSON() ([]byte, error) {
	switch t {
	case Yes:
		return jsonTrue, nil
	case No:
		return jsonFalse, nil
	default:
		return jsonNull, nil
	}
}

// UnmarshalJSON accepts null, false and true. Anything else is rejected so
// a corrupt snapshot surfaces as a decode error instead of a silent Unset.
func (t *TriState) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, jsonNull):
		*t = Unset
	case bytes.Equal(data, jsonTrue):
		*t = Yes
	case bytes.Equal(data, jsonFalse):
		*t = No
	default:
		return fmt.Errorf("invalid tri-state value %q", data)
	}
	return nil
}
