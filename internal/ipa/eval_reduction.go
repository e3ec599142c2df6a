package ipa

import "fmt"

// ReduceEvaluation turns an evaluation claim (C, x, y) for a multilinear
// polynomial f (evaluations vector, length 2^len(x)) into an
// inner-product instance/witness pair: U = (C, eq(x), y), W = (f).
// Correctness rests on the external fact <f, eq(x)> = f~(x) for the
// multilinear extension f~ of f, which eq supplies.
//
// This reduction is one-shot and stateless; it does not touch the
// transcript itself (the caller is expected to have already absorbed x
// upstream, which is why Instance.Absorb excludes b).
func ReduceEvaluation[S, G any](commitment G, x []S, y S, f []S, eq EqEvaluator[S]) (*Instance[S, G], *Witness[S], error) {
	b, err := eq.Eq(x)
	if err != nil {
		return nil, nil, fmt.Errorf("ipa: eq(x) evaluation: %w", err)
	}
	if len(b) != len(f) {
		return nil, nil, fmt.Errorf("%w: |eq(x)|=%d != |f|=%d", ErrInvalidInputLength, len(b), len(f))
	}
	return NewInstance[S, G](commitment, b, y), NewWitness(f), nil
}
