package gnarkbackend

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/sync/errgroup"
)

// EqEvaluator is a reference implementation of the external eq(x)
// collaborator: given an evaluation point x of length log2(n), it
// returns the length-n vector b with
//
//	b[i] = Π_j  x[j]        if bit j of i is 1
//	           (1 - x[j])   if bit j of i is 0
//
// built bottom-up by doubling, one bit of x at a time, the same way
// internal/ipa's tensor vector s is built bottom-up one challenge at a
// time.
type EqEvaluator struct{}

func (EqEvaluator) Eq(x []fr.Element) ([]fr.Element, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("gnarkbackend: eq: empty evaluation point")
	}
	if len(x) >= 31 {
		return nil, fmt.Errorf("gnarkbackend: eq: evaluation point too long: %d", len(x))
	}

	b := make([]fr.Element, 1, 1<<uint(len(x)))
	b[0] = fr.One()

	one := fr.One()
	for _, xj := range x {
		var oneMinusXj fr.Element
		oneMinusXj.Sub(&one, &xj)

		half := len(b)
		next := make([]fr.Element, 2*half)
		var eg errgroup.Group
		for i := range b {
			i := i
			eg.Go(func() error {
				next[i].Mul(&b[i], &oneMinusXj)
				next[half+i].Mul(&b[i], &xj)
				return nil
			})
		}
		_ = eg.Wait()
		b = next
	}
	return b, nil
}
