package gnarkbackend

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/crate-crypto/go-ipa-pcs/internal/ipa"
)

// hashToGroupDST is the domain-separation tag used when deriving
// auxiliary generators with no known discrete-log relation to any other
// generator, following the same "hash a seed, never sample it" pattern
// other_examples/*bulletproofs*' MapToGroup(SEEDH) uses for its blinding
// generator H.
const hashToGroupDST = "ipa-pcs-generator-v1"

// G1Group implements ipa.Group[fr.Element, bls12381.G1Affine].
type G1Group struct{}

var _ ipa.Group[fr.Element, bls12381.G1Affine] = G1Group{}

func (G1Group) Identity() bls12381.G1Affine {
	return bls12381.G1Affine{}
}

func (G1Group) Add(a, b bls12381.G1Affine) bls12381.G1Affine {
	var aJac, bJac, rJac bls12381.G1Jac
	aJac.FromAffine(&a)
	bJac.FromAffine(&b)
	rJac.Set(&aJac).AddAssign(&bJac)
	var r bls12381.G1Affine
	r.FromJacobian(&rJac)
	return r
}

func (G1Group) ScalarMul(p bls12381.G1Affine, s fr.Element) bls12381.G1Affine {
	var sBig big.Int
	s.BigInt(&sBig)
	var r bls12381.G1Affine
	r.ScalarMultiplication(&p, &sBig)
	return r
}

func (G1Group) Equal(a, b bls12381.G1Affine) bool {
	return a.Equal(&b)
}

func (G1Group) Compress(p bls12381.G1Affine) []byte {
	b := p.Bytes()
	return b[:]
}

func (G1Group) Decompress(b []byte) (bls12381.G1Affine, error) {
	var p bls12381.G1Affine
	if _, err := p.SetBytes(b); err != nil {
		return p, fmt.Errorf("gnarkbackend: decompress G1 point: %w", err)
	}
	return p, nil
}

// HashToGroup derives a generator via the BLS12-381 G1 hash-to-curve
// suite, deterministic in label and with no discoverable discrete log.
func (G1Group) HashToGroup(label string) (bls12381.G1Affine, error) {
	p, err := bls12381.HashToG1([]byte(label), []byte(hashToGroupDST))
	if err != nil {
		return bls12381.G1Affine{}, fmt.Errorf("gnarkbackend: hash to G1: %w", err)
	}
	return p, nil
}
