package ipa

import "errors"

// Sentinel error kinds surfaced by the core. Callers should use errors.Is
// against these rather than matching on error strings; wrapped context is
// added with fmt.Errorf("...: %w", ...) at each call site.
var (
	// ErrInvalidInputLength signals a violated structural precondition:
	// mismatched vector lengths, a non-power-of-two size, a proof whose
	// L/R vectors disagree in length, or a round count at or above
	// MaxRounds.
	ErrInvalidInputLength = errors.New("ipa: invalid input length")

	// ErrTranscript signals that a transcript squeeze failed to produce a
	// usable challenge, or that a value could not be encoded for absorb.
	ErrTranscript = errors.New("ipa: transcript error")

	// ErrInvalidPCS signals that the verifier's final group equation did
	// not hold: the proof is invalid (or the statement is false).
	ErrInvalidPCS = errors.New("ipa: invalid polynomial commitment proof")
)

// MaxRounds bounds the number of folding rounds a proof may contain.
// len(L_vec) must be strictly less than MaxRounds, which in turn bounds
// the vector length n < 2^MaxRounds. This keeps the 1<<ℓ tensor-index
// arithmetic in verify.go within range of a 64-bit int; hosts that need
// larger vectors must raise this after auditing that computation.
const MaxRounds = 32
