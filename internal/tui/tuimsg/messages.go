// Package tuimsg holds messages that flow from step scenes up to the
// root model, kept separate to avoid an import cycle between the two.
package tuimsg

// SubmitRequest asks the root model to validate and submit the record.
type SubmitRequest struct{}

// Recalculate asks the root model to rerun the reference-rent
// calculation against current state.
type Recalculate struct{}
