package ipa

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Verify replays the Fiat-Shamir challenges, reconstructs the
// tensor-structured scalar vector s, and checks the single folded
// commitment equation.
func Verify[S, G any](
	field Field[S],
	group Group[S, G],
	ce CommitmentEngine[S, G],
	ck CommitmentKey[S, G],
	ckC CommitmentKey[S, G],
	transcript Transcript[S],
	u *Instance[S, G],
	proof *Proof[S, G],
) error {
	n := len(u.B)
	rounds := proof.Rounds()
	if len(proof.R) != rounds {
		return fmt.Errorf("%w: |L|=%d != |R|=%d", ErrInvalidInputLength, rounds, len(proof.R))
	}
	if rounds < 1 {
		return fmt.Errorf("%w: proof has %d rounds, need at least 1", ErrInvalidInputLength, rounds)
	}
	if rounds >= MaxRounds {
		return fmt.Errorf("%w: %d rounds >= MaxRounds %d", ErrInvalidInputLength, rounds, MaxRounds)
	}
	if n != 1<<rounds {
		return fmt.Errorf("%w: |b|=%d != 2^%d", ErrInvalidInputLength, n, rounds)
	}
	if ck.Len() < n {
		return fmt.Errorf("%w: commitment key has %d generators, need %d", ErrInvalidInputLength, ck.Len(), n)
	}

	ck, _ = ck.SplitAt(n)

	transcript.DomSep("IPA")
	u.Absorb(group, field, transcript, "U")

	r0, err := transcript.Squeeze("r")
	if err != nil {
		return err
	}
	ckC = ckC.Clone()
	ckC.Scale(r0)

	cCommit, err := ce.Commit(ckC, []S{u.C})
	if err != nil {
		return fmt.Errorf("ipa: commit to claim: %w", err)
	}
	p := group.Add(u.Ca, cCommit)

	challenges := make([]S, rounds)
	for i := 0; i < rounds; i++ {
		transcript.Absorb("L", group.Compress(proof.L[i]))
		transcript.Absorb("R", group.Compress(proof.R[i]))
		r, err := transcript.Squeeze("r")
		if err != nil {
			return err
		}
		challenges[i] = r
	}

	rInv, err := field.BatchInvert(challenges)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTranscript, err)
	}

	rSq := make([]S, rounds)
	rInvSq := make([]S, rounds)
	for i := 0; i < rounds; i++ {
		rSq[i] = field.Mul(challenges[i], challenges[i])
		rInvSq[i] = field.Mul(rInv[i], rInv[i])
	}

	s, err := buildTensorVector(field, rInv, rSq, n, rounds)
	if err != nil {
		return err
	}

	gStarPoint, err := ce.Commit(ck, s)
	if err != nil {
		return fmt.Errorf("ipa: commit to tensor vector: %w", err)
	}
	ckHat := ce.ReinterpretAsKey([]G{gStarPoint})

	bHat, err := innerProduct(field, u.B, s)
	if err != nil {
		return err
	}

	foldedKey := ce.ReinterpretAsKey(proof.L)
	foldedKey = ce.Combine(foldedKey, ce.ReinterpretAsKey(proof.R))
	foldedKey = ce.Combine(foldedKey, ce.ReinterpretAsKey([]G{p}))

	exponents := make([]S, 0, 2*rounds+1)
	exponents = append(exponents, rSq...)
	exponents = append(exponents, rInvSq...)
	exponents = append(exponents, field.One())

	pHat, err := ce.Commit(foldedKey, exponents)
	if err != nil {
		return fmt.Errorf("ipa: fold L/R/P: %w", err)
	}

	rhsKey := ce.Combine(ckHat, ckC)
	aTimesBHat := field.Mul(proof.A, bHat)
	rhs, err := ce.Commit(rhsKey, []S{proof.A, aTimesBHat})
	if err != nil {
		return fmt.Errorf("ipa: final commitment: %w", err)
	}

	if !group.Equal(pHat, rhs) {
		return ErrInvalidPCS
	}
	return nil
}

// buildTensorVector constructs s in O(n) scalar multiplications,
// processing index levels k = 0..rounds-1 in parallel: within a level
// every entry only reads entries finalised by a strictly earlier level,
// so a level's entries can be computed concurrently.
func buildTensorVector[S any](field Field[S], rInv, rSq []S, n, rounds int) ([]S, error) {
	s := make([]S, n)
	s0 := field.One()
	for i := 0; i < rounds; i++ {
		s0 = field.Mul(s0, rInv[i])
	}
	s[0] = s0

	for k := 0; k < rounds; k++ {
		blockStart := 1 << k
		blockLen := blockStart
		factor := rSq[rounds-1-k]

		g := new(errgroup.Group)
		for i := blockStart; i < blockStart+blockLen; i++ {
			i := i
			g.Go(func() error {
				s[i] = field.Mul(s[i-blockStart], factor)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}
	return s, nil
}
