// Package ipapcs is the engine façade over the internal IPA folding
// protocol: Setup produces a prover/verifier key pair over a
// caller-supplied commitment key, Prove/Verify run the raw inner-product
// argument, and ProveEvaluation/VerifyEvaluation wrap the
// evaluation-to-inner-product reduction so callers working directly with
// multilinear polynomial evaluation claims never touch the internal/ipa
// package.
package ipapcs

import (
	"fmt"
	"time"

	"github.com/crate-crypto/go-ipa-pcs/internal/ipa"
)

// ProverKey holds the auxiliary single-generator key bound to the
// scalar inner product.
type ProverKey[S, G any] struct {
	CkS ipa.CommitmentKey[S, G]
}

// VerifierKey holds the shared full commitment key alongside the same
// single-generator key. CkV is never mutated by this package; it is
// owned by the caller and shared with the outer proof system that
// supplied it, not deep-copied.
type VerifierKey[S, G any] struct {
	CkV ipa.CommitmentKey[S, G]
	CkS ipa.CommitmentKey[S, G]
}

// Engine bundles the external collaborators this package needs: the
// scalar field, the group, the Pedersen-style commitment engine, and the
// eq(x) evaluator used by the evaluation reduction.
type Engine[S, G any] struct {
	Field      ipa.Field[S]
	Group      ipa.Group[S, G]
	Commitment ipa.CommitmentEngine[S, G]
	Eq         ipa.EqEvaluator[S]
}

// New constructs an Engine over the given capability set.
func New[S, G any](field ipa.Field[S], group ipa.Group[S, G], ce ipa.CommitmentEngine[S, G], eq ipa.EqEvaluator[S]) *Engine[S, G] {
	return &Engine[S, G]{Field: field, Group: group, Commitment: ce, Eq: eq}
}

// Setup generates a fresh single-generator key under the fixed label
// "ipa" and returns the prover/verifier key pair. It does not duplicate
// ck: the returned VerifierKey shares it by reference.
func (e *Engine[S, G]) Setup(ck ipa.CommitmentKey[S, G]) (*ProverKey[S, G], *VerifierKey[S, G], error) {
	gen, err := e.Group.HashToGroup("ipa")
	if err != nil {
		return nil, nil, fmt.Errorf("ipa-pcs: setup: %w", err)
	}
	ckS := e.Commitment.ReinterpretAsKey([]G{gen})
	return &ProverKey[S, G]{CkS: ckS}, &VerifierKey[S, G]{CkV: ck, CkS: ckS}, nil
}

// Prove runs the raw IPA prover over an explicit instance/witness pair.
func (e *Engine[S, G]) Prove(pk *ProverKey[S, G], ck ipa.CommitmentKey[S, G], transcript ipa.Transcript[S], u *ipa.Instance[S, G], w *ipa.Witness[S]) (*ipa.Proof[S, G], error) {
	logger := Logger().With().Int("vector_len", len(w.A)).Logger()
	start := time.Now()
	logger.Debug().Msg("ipa: starting proof")

	proof, err := ipa.Prove[S, G](e.Field, e.Group, e.Commitment, ck, pk.CkS, transcript, u, w)
	if err != nil {
		logger.Warn().Err(err).Msg("ipa: proof failed")
		return nil, err
	}
	logger.Debug().Dur("took", time.Since(start)).Int("rounds", proof.Rounds()).Msg("ipa: proof complete")
	return proof, nil
}

// Verify runs the raw IPA verifier over an explicit instance and proof.
func (e *Engine[S, G]) Verify(vk *VerifierKey[S, G], transcript ipa.Transcript[S], u *ipa.Instance[S, G], proof *ipa.Proof[S, G]) error {
	logger := Logger().With().Int("vector_len", len(u.B)).Int("rounds", proof.Rounds()).Logger()
	logger.Debug().Msg("ipa: starting verification")

	if err := ipa.Verify[S, G](e.Field, e.Group, e.Commitment, vk.CkV, vk.CkS, transcript, u, proof); err != nil {
		logger.Warn().Err(err).Msg("ipa: verification failed")
		return err
	}
	logger.Debug().Msg("ipa: verification succeeded")
	return nil
}

// ProveEvaluation proves that the multilinear polynomial whose
// evaluations are f, committed as commitment under ck, evaluates to y at
// point x.
func (e *Engine[S, G]) ProveEvaluation(
	pk *ProverKey[S, G],
	ck ipa.CommitmentKey[S, G],
	transcript ipa.Transcript[S],
	commitment G,
	x []S,
	y S,
	f []S,
) (*ipa.Proof[S, G], error) {
	u, w, err := ipa.ReduceEvaluation[S, G](commitment, x, y, f, e.Eq)
	if err != nil {
		return nil, err
	}
	return e.Prove(pk, ck, transcript, u, w)
}

// VerifyEvaluation verifies a proof produced by ProveEvaluation.
func (e *Engine[S, G]) VerifyEvaluation(
	vk *VerifierKey[S, G],
	transcript ipa.Transcript[S],
	commitment G,
	x []S,
	y S,
	proof *ipa.Proof[S, G],
) error {
	b, err := e.Eq.Eq(x)
	if err != nil {
		return fmt.Errorf("ipa-pcs: eq(x): %w", err)
	}
	u := ipa.NewInstance[S, G](commitment, b, y)
	return e.Verify(vk, transcript, u, proof)
}
