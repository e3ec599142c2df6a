package gnarkbackend

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// GenerateTestGenerators derives n deterministic, independent-looking G1
// generators via hash-to-curve, indexed by label so the sequence is
// reproducible across a test binary's runs.
//
// This is not a commitment key suitable for production use: unlike a
// real setup, there is no record of how these generators were derived
// beyond the index, which is fine for a test fixture but defeats the
// point of a trusted or transparent setup ceremony. Callers building a
// production key should derive generators the way this module's own
// Setup does, or adapt a ceremony transcript the way
// api/trusted_setup_test.go loads one for KZG.
func GenerateTestGenerators(n int) ([]bls12381.G1Affine, error) {
	if n <= 0 {
		return nil, fmt.Errorf("gnarkbackend: generate test generators: n must be positive, got %d", n)
	}
	gens := make([]bls12381.G1Affine, n)
	for i := 0; i < n; i++ {
		label := fmt.Sprintf("ipa-pcs-test-generator-%d", i)
		p, err := bls12381.HashToG1([]byte(label), []byte(hashToGroupDST))
		if err != nil {
			return nil, fmt.Errorf("gnarkbackend: generate test generators: index %d: %w", i, err)
		}
		gens[i] = p
	}
	return gens, nil
}
