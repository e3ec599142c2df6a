package ipa

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Prove runs the log2(n) round recursive folding protocol: each round
// halves a, b, and ck, emitting a commitment pair (L, R) to the cross
// inner products before folding on a Fiat-Shamir challenge.
//
// ck must have at least len(w.A) generators; it is truncated to
// exactly len(w.A) before the first round. ckC is the single-generator
// key bound to the scalar inner product; the caller's copy is never
// mutated (Prove clones it internally).
func Prove[S, G any](
	field Field[S],
	group Group[S, G],
	ce CommitmentEngine[S, G],
	ck CommitmentKey[S, G],
	ckC CommitmentKey[S, G],
	transcript Transcript[S],
	u *Instance[S, G],
	w *Witness[S],
) (*Proof[S, G], error) {
	n, err := checkLengths(w.A, u.B)
	if err != nil {
		return nil, err
	}
	rounds := ilog2(n)
	if rounds >= MaxRounds {
		return nil, fmt.Errorf("%w: log2(n)=%d >= MaxRounds %d", ErrInvalidInputLength, rounds, MaxRounds)
	}
	if ck.Len() < n {
		return nil, fmt.Errorf("%w: commitment key has %d generators, need %d", ErrInvalidInputLength, ck.Len(), n)
	}

	transcript.DomSep("IPA")
	u.Absorb(group, field, transcript, "U")

	r0, err := transcript.Squeeze("r")
	if err != nil {
		return nil, err
	}
	ckC = ckC.Clone()
	ckC.Scale(r0)

	ckLeft, _ := ck.SplitAt(n)
	a := append([]S(nil), w.A...)
	b := append([]S(nil), u.B...)

	proof := &Proof[S, G]{
		L: make([]G, 0, rounds),
		R: make([]G, 0, rounds),
	}

	curCk := ckLeft
	for m := n; m > 1; m /= 2 {
		half := m / 2
		aLo, aHi := a[:half], a[half:m]
		bLo, bHi := b[:half], b[half:m]
		ckLo, ckHi := curCk.SplitAt(half)

		var cL, cR S
		g := new(errgroup.Group)
		g.Go(func() error {
			var err error
			cL, err = innerProduct(field, aLo, bHi)
			return err
		})
		g.Go(func() error {
			var err error
			cR, err = innerProduct(field, aHi, bLo)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		var L, R G
		g = new(errgroup.Group)
		g.Go(func() error {
			commitKeyL := ce.Combine(ckHi, ckC)
			vL := append(append([]S(nil), aLo...), cL)
			var err error
			L, err = ce.Commit(commitKeyL, vL)
			return err
		})
		g.Go(func() error {
			commitKeyR := ce.Combine(ckLo, ckC)
			vR := append(append([]S(nil), aHi...), cR)
			var err error
			R, err = ce.Commit(commitKeyR, vR)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		proof.L = append(proof.L, L)
		proof.R = append(proof.R, R)
		transcript.Absorb("L", group.Compress(L))
		transcript.Absorb("R", group.Compress(R))

		r, err := transcript.Squeeze("r")
		if err != nil {
			return nil, err
		}
		if field.IsZero(r) {
			return nil, fmt.Errorf("%w: zero Fiat-Shamir challenge", ErrTranscript)
		}
		rInv, err := field.Inverse(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTranscript, err)
		}

		newA := make([]S, half)
		newB := make([]S, half)
		for i := 0; i < half; i++ {
			newA[i] = field.Add(field.Mul(r, aLo[i]), field.Mul(rInv, aHi[i]))
			newB[i] = field.Add(field.Mul(rInv, bLo[i]), field.Mul(r, bHi[i]))
		}
		a, b = newA, newB
		curCk = ce.Fold(ckLo, ckHi, rInv, r)
	}

	proof.A = a[0]
	return proof, nil
}

// innerProduct computes <a, b>. a and b must have equal length.
func innerProduct[S any](field Field[S], a, b []S) (S, error) {
	acc := field.Zero()
	for i := range a {
		acc = field.Add(acc, field.Mul(a[i], b[i]))
	}
	return acc, nil
}

// ilog2 returns log2(n) for a power-of-two n > 0.
func ilog2(n int) int {
	k := 0
	for n > 1 {
		n >>= 1
		k++
	}
	return k
}
