// Package ipa implements the recursive Inner Product Argument folding
// protocol: prover-side halving of witness/instance vectors and
// verifier-side challenge replay plus tensor-vector reconstruction.
//
// The scalar field, group, and commitment engine are external
// collaborators: this package is generic over them, expressed as a
// capability set of interfaces satisfied by type parameters rather than
// resolved through dynamic dispatch on the hot path. Concrete backends
// live in subpackages, e.g. gnarkbackend for a bls12-381 instantiation.
package ipa

// Field is a prime field descriptor, stateless and shared across all
// scalar values of type S. Implementations must be safe for concurrent
// use: Engine parallelises per-round arithmetic across goroutines.
type Field[S any] interface {
	Zero() S
	One() S
	Add(a, b S) S
	Sub(a, b S) S
	Mul(a, b S) S
	Neg(a S) S

	// Inverse returns a^-1. It fails (non-nil error) iff a is zero.
	Inverse(a S) (S, error)

	// BatchInvert inverts every element of xs in one pass (Montgomery's
	// trick). It fails iff any element of xs is zero.
	BatchInvert(xs []S) ([]S, error)

	Equal(a, b S) bool
	IsZero(a S) bool

	// Bytes returns the canonical, collision-resistant encoding of a,
	// used for transcript absorption and proof serialization.
	Bytes(a S) []byte

	// FromCanonicalBytes parses the encoding produced by Bytes.
	FromCanonicalBytes(b []byte) (S, error)

	// ReduceWide maps an oversized byte string (as produced by a
	// transcript squeeze) onto a field element via modular reduction.
	ReduceWide(wide []byte) (S, error)
}

// Group is a prime-order group descriptor for scalar type S and group
// element type G.
type Group[S, G any] interface {
	Identity() G
	Add(a, b G) G
	ScalarMul(p G, s S) G
	Equal(a, b G) bool

	// Compress returns the canonical compressed encoding of p.
	Compress(p G) []byte

	// Decompress parses the encoding produced by Compress.
	Decompress(b []byte) (G, error)

	// HashToGroup derives a group element with no known discrete log
	// relation to any other generator, deterministically from label.
	// Used by Setup to produce the auxiliary single-generator key.
	HashToGroup(label string) (G, error)
}

// CommitmentKey is an ordered sequence of group generators. Instances
// are produced and consumed by CommitmentEngine; callers never build one
// by hand. Scale mutates the receiver in place: the per-call ckC clone
// made by Prove and by Verify is the only generator state Engine ever
// mutates.
type CommitmentKey[S, G any] interface {
	Len() int
	Generators() []G
	Clone() CommitmentKey[S, G]
	SplitAt(k int) (left, right CommitmentKey[S, G])
	Scale(s S)
}

// CommitmentEngine computes Pedersen-style vector commitments and the
// structural operations the folding protocol needs on commitment keys:
// concatenation, the asymmetric two-generator fold, and reinterpreting a
// list of commitments as a fresh key (used to fold L_vec/R_vec/P into a
// single multi-scalar multiplication in the verifier).
type CommitmentEngine[S, G any] interface {
	// Commit returns sum(v[i] * ck.Generators()[i]). len(v) must not
	// exceed ck.Len().
	Commit(ck CommitmentKey[S, G], v []S) (G, error)

	Combine(a, b CommitmentKey[S, G]) CommitmentKey[S, G]

	// Fold produces a length-len(left) key whose i'th generator is
	// u*left[i] + v*right[i]. len(left) must equal len(right).
	Fold(left, right CommitmentKey[S, G], u, v S) CommitmentKey[S, G]

	ReinterpretAsKey(cs []G) CommitmentKey[S, G]
}

// Transcript is the Fiat-Shamir duplex sponge contract. DomSep injects a
// domain tag, Absorb ingests a labelled canonical byte encoding, and
// Squeeze returns a field challenge. Every invocation the prover makes,
// in order, must be reproduced identically by the verifier.
type Transcript[S any] interface {
	DomSep(label string)
	Absorb(label string, data []byte)
	Squeeze(label string) (S, error)
}

// EqEvaluator computes the length-2^len(x) equality-polynomial tensor,
// satisfying <eq(x), f> = f(x) for the multilinear extension f of f's
// evaluation vector. This is an external collaborator; gnarkbackend
// ships a reference implementation used by this module's own tests.
type EqEvaluator[S any] interface {
	Eq(x []S) ([]S, error)
}
