package gnarkbackend

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/sync/errgroup"

	"github.com/crate-crypto/go-ipa-pcs/internal/ipa"
)

// CommitmentKey is an ordered sequence of BLS12-381 G1 generators.
type CommitmentKey struct {
	gens []bls12381.G1Affine
}

var _ ipa.CommitmentKey[fr.Element, bls12381.G1Affine] = (*CommitmentKey)(nil)

// NewCommitmentKey wraps an existing slice of generators. The caller
// transfers ownership; Scale mutates in place.
func NewCommitmentKey(gens []bls12381.G1Affine) *CommitmentKey {
	return &CommitmentKey{gens: gens}
}

func (k *CommitmentKey) Len() int                        { return len(k.gens) }
func (k *CommitmentKey) Generators() []bls12381.G1Affine { return k.gens }

func (k *CommitmentKey) Clone() ipa.CommitmentKey[fr.Element, bls12381.G1Affine] {
	cp := make([]bls12381.G1Affine, len(k.gens))
	copy(cp, k.gens)
	return &CommitmentKey{gens: cp}
}

func (k *CommitmentKey) SplitAt(idx int) (ipa.CommitmentKey[fr.Element, bls12381.G1Affine], ipa.CommitmentKey[fr.Element, bls12381.G1Affine]) {
	return &CommitmentKey{gens: k.gens[:idx]}, &CommitmentKey{gens: k.gens[idx:]}
}

// Scale multiplies every generator by s in place, parallelised over an
// errgroup the same way famouswizard-gnark/backend/fflonk parallelises
// independent per-stage work.
func (k *CommitmentKey) Scale(s fr.Element) {
	var sBig big.Int
	s.BigInt(&sBig)

	var g errgroup.Group
	for i := range k.gens {
		i := i
		g.Go(func() error {
			k.gens[i].ScalarMultiplication(&k.gens[i], &sBig)
			return nil
		})
	}
	_ = g.Wait()
}

// CommitmentEngine implements ipa.CommitmentEngine[fr.Element, G1Affine]
// using gnark-crypto's multi-scalar multiplication.
type CommitmentEngine struct{}

var _ ipa.CommitmentEngine[fr.Element, bls12381.G1Affine] = CommitmentEngine{}

func asKey(ck ipa.CommitmentKey[fr.Element, bls12381.G1Affine]) *CommitmentKey {
	if k, ok := ck.(*CommitmentKey); ok {
		return k
	}
	// Defensive fallback for third-party CommitmentKey implementations:
	// re-host the generators in our own concrete type.
	return &CommitmentKey{gens: append([]bls12381.G1Affine(nil), ck.Generators()...)}
}

func (CommitmentEngine) Commit(ck ipa.CommitmentKey[fr.Element, bls12381.G1Affine], v []fr.Element) (bls12381.G1Affine, error) {
	gens := ck.Generators()
	if len(v) > len(gens) {
		return bls12381.G1Affine{}, fmt.Errorf("gnarkbackend: commit: |v|=%d exceeds |ck|=%d", len(v), len(gens))
	}
	var res bls12381.G1Affine
	if _, err := res.MultiExp(gens[:len(v)], v, ecc.MultiExpConfig{}); err != nil {
		return bls12381.G1Affine{}, fmt.Errorf("gnarkbackend: commit: %w", err)
	}
	return res, nil
}

func (CommitmentEngine) Combine(a, b ipa.CommitmentKey[fr.Element, bls12381.G1Affine]) ipa.CommitmentKey[fr.Element, bls12381.G1Affine] {
	ak, bk := asKey(a), asKey(b)
	combined := make([]bls12381.G1Affine, 0, len(ak.gens)+len(bk.gens))
	combined = append(combined, ak.gens...)
	combined = append(combined, bk.gens...)
	return &CommitmentKey{gens: combined}
}

// Fold produces a length-len(left) key whose i'th generator is
// u*left[i] + v*right[i].
func (CommitmentEngine) Fold(left, right ipa.CommitmentKey[fr.Element, bls12381.G1Affine], u, v fr.Element) ipa.CommitmentKey[fr.Element, bls12381.G1Affine] {
	lg, rg := asKey(left).gens, asKey(right).gens
	out := make([]bls12381.G1Affine, len(lg))

	var uBig, vBig big.Int
	u.BigInt(&uBig)
	v.BigInt(&vBig)

	var eg errgroup.Group
	for i := range lg {
		i := i
		eg.Go(func() error {
			var lp, rp bls12381.G1Affine
			lp.ScalarMultiplication(&lg[i], &uBig)
			rp.ScalarMultiplication(&rg[i], &vBig)

			var lj, rj, sumj bls12381.G1Jac
			lj.FromAffine(&lp)
			rj.FromAffine(&rp)
			sumj.Set(&lj).AddAssign(&rj)
			out[i].FromJacobian(&sumj)
			return nil
		})
	}
	_ = eg.Wait()
	return &CommitmentKey{gens: out}
}

func (CommitmentEngine) ReinterpretAsKey(cs []bls12381.G1Affine) ipa.CommitmentKey[fr.Element, bls12381.G1Affine] {
	return &CommitmentKey{gens: append([]bls12381.G1Affine(nil), cs...)}
}
