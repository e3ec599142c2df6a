package ipa

import "fmt"

// Instance is the public statement U = (C_a, b, c): a commitment to a
// secret length-n vector a, a public length-n vector b, and the claimed
// inner product c = <a, b>.
type Instance[S, G any] struct {
	Ca G
	B  []S
	C  S
}

// NewInstance copies b into owned storage so later caller-side mutation
// of the slice it was built from cannot change the committed statement.
func NewInstance[S, G any](ca G, b []S, c S) *Instance[S, G] {
	owned := make([]S, len(b))
	copy(owned, b)
	return &Instance[S, G]{Ca: ca, B: owned, C: c}
}

// Witness is the secret vector a backing an Instance.
type Witness[S any] struct {
	A []S
}

// NewWitness copies a into owned storage for the same reason NewInstance
// copies b.
func NewWitness[S any](a []S) *Witness[S] {
	owned := make([]S, len(a))
	copy(owned, a)
	return &Witness[S]{A: owned}
}

// checkLengths enforces |a| == |b| == n, with n a power of two at least
// 2: the folding protocol halves n every round and needs at least one
// round to produce a non-trivial proof, so n == 1 (zero rounds) is
// rejected alongside n == 0 and non-power-of-two lengths.
func checkLengths[S any](a, b []S) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: |a|=%d != |b|=%d", ErrInvalidInputLength, len(a), len(b))
	}
	n := len(a)
	if n < 2 || n&(n-1) != 0 {
		return 0, fmt.Errorf("%w: length %d is not a power of two >= 2", ErrInvalidInputLength, n)
	}
	return n, nil
}

// Absorb feeds the instance's transcript encoding into t under label:
// the concatenation of Ca's compressed encoding and c's canonical
// encoding. b is deliberately excluded: in the evaluation-reduction use
// it is derived deterministically from already-absorbed transcript
// state (it is eq(x), and x was absorbed upstream by the caller), so
// absorbing it again would be redundant without adding any binding.
func (u *Instance[S, G]) Absorb(group Group[S, G], field Field[S], t Transcript[S], label string) {
	encoded := append(group.Compress(u.Ca), field.Bytes(u.C)...)
	t.Absorb(label, encoded)
}
