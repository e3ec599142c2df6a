// Package gnarkbackend is the concrete Field/Group/CommitmentEngine
// instantiation of the generic internal/ipa capability set over
// bls12-381, built on github.com/consensys/gnark-crypto. It is the one
// concrete curve backend behind this module's small root API, the same
// role internal/kzg plays for go-kzg-4844.
package gnarkbackend

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/crate-crypto/go-ipa-pcs/internal/ipa"
)

// ScalarField implements ipa.Field[fr.Element] over the BLS12-381
// scalar field.
type ScalarField struct{}

var _ ipa.Field[fr.Element] = ScalarField{}

func (ScalarField) Zero() fr.Element { return fr.Element{} }
func (ScalarField) One() fr.Element  { return fr.One() }

func (ScalarField) Add(a, b fr.Element) fr.Element {
	var r fr.Element
	r.Add(&a, &b)
	return r
}

func (ScalarField) Sub(a, b fr.Element) fr.Element {
	var r fr.Element
	r.Sub(&a, &b)
	return r
}

func (ScalarField) Mul(a, b fr.Element) fr.Element {
	var r fr.Element
	r.Mul(&a, &b)
	return r
}

func (ScalarField) Neg(a fr.Element) fr.Element {
	var r fr.Element
	r.Neg(&a)
	return r
}

func (ScalarField) Inverse(a fr.Element) (fr.Element, error) {
	var r fr.Element
	if a.IsZero() {
		return r, fmt.Errorf("gnarkbackend: inverse of zero")
	}
	r.Inverse(&a)
	return r, nil
}

// BatchInvert inverts every element of xs using gnark-crypto's
// Montgomery-trick batch inversion. It fails iff any element of xs is
// zero, since gnark-crypto's underlying routine does not itself check
// for zero inputs.
func (ScalarField) BatchInvert(xs []fr.Element) ([]fr.Element, error) {
	for i, x := range xs {
		if x.IsZero() {
			return nil, fmt.Errorf("gnarkbackend: batch invert: element %d is zero", i)
		}
	}
	return fr.BatchInvert(xs), nil
}

func (ScalarField) Equal(a, b fr.Element) bool { return a.Equal(&b) }
func (ScalarField) IsZero(a fr.Element) bool   { return a.IsZero() }

func (ScalarField) Bytes(a fr.Element) []byte {
	b := a.Bytes()
	return b[:]
}

func (ScalarField) FromCanonicalBytes(b []byte) (fr.Element, error) {
	var e fr.Element
	if len(b) > fr.Bytes {
		return e, fmt.Errorf("gnarkbackend: scalar encoding too long: %d bytes", len(b))
	}
	e.SetBytes(b)
	return e, nil
}

// ReduceWide reduces an oversized byte string (e.g. a transcript squeeze
// output) modulo the scalar field order.
func (ScalarField) ReduceWide(wide []byte) (fr.Element, error) {
	var e fr.Element
	e.SetBytes(wide)
	return e, nil
}
