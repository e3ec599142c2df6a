package ipapcs

import (
	"encoding/hex"
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/crate-crypto/go-ipa-pcs/internal/ipa"
)

// yamlCommitmentKey is the on-disk shape for a CommitmentKey: hex-encoded
// compressed generators. This gives the outer proof system a
// human-inspectable interop format for a key that, unlike a KZG trusted
// setup, needs no ceremony transcript — only the generators themselves
// (mirrors api/trusted_setup_test.go's JSONTrustedSetup shape,
// generalized to YAML per this module's domain-stack choice).
type yamlCommitmentKey struct {
	Generators []string `yaml:"generators"`
}

// toYAMLKey converts ck's generators into the on-disk hex shape.
func toYAMLKey[S, G any](ck ipa.CommitmentKey[S, G], group ipa.Group[S, G]) yamlCommitmentKey {
	gens := ck.Generators()
	w := yamlCommitmentKey{Generators: make([]string, len(gens))}
	for i, g := range gens {
		w.Generators[i] = hex.EncodeToString(group.Compress(g))
	}
	return w
}

// fromYAMLKey decodes the on-disk hex shape back into a CommitmentKey
// via ce.ReinterpretAsKey.
func fromYAMLKey[S, G any](w yamlCommitmentKey, group ipa.Group[S, G], ce ipa.CommitmentEngine[S, G]) (ipa.CommitmentKey[S, G], error) {
	gens := make([]G, len(w.Generators))
	for i, encoded := range w.Generators {
		raw, err := hex.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("ipa-pcs: decode generator %d: %w", i, err)
		}
		g, err := group.Decompress(raw)
		if err != nil {
			return nil, fmt.Errorf("ipa-pcs: decompress generator %d: %w", i, err)
		}
		gens[i] = g
	}
	return ce.ReinterpretAsKey(gens), nil
}

// MarshalKeyYAML encodes ck as YAML using group's canonical compressed
// point encoding.
func MarshalKeyYAML[S, G any](ck ipa.CommitmentKey[S, G], group ipa.Group[S, G]) ([]byte, error) {
	data, err := yaml.Marshal(toYAMLKey[S, G](ck, group))
	if err != nil {
		return nil, fmt.Errorf("ipa-pcs: marshal commitment key: %w", err)
	}
	return data, nil
}

// UnmarshalKeyYAML decodes a commitment key previously written by
// MarshalKeyYAML and wraps it via ce.ReinterpretAsKey.
func UnmarshalKeyYAML[S, G any](data []byte, group ipa.Group[S, G], ce ipa.CommitmentEngine[S, G]) (ipa.CommitmentKey[S, G], error) {
	var parsed yamlCommitmentKey
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("ipa-pcs: unmarshal commitment key: %w", err)
	}
	return fromYAMLKey[S, G](parsed, group, ce)
}

// yamlVerifierKey is the on-disk shape for a VerifierKey: its full key
// ckV and its single-generator key ckS.
type yamlVerifierKey struct {
	CkV yamlCommitmentKey `yaml:"ck_v"`
	CkS yamlCommitmentKey `yaml:"ck_s"`
}

// MarshalVerifierKeyYAML encodes a VerifierKey: its full key ckV and its
// single-generator key ckS.
func MarshalVerifierKeyYAML[S, G any](vk *VerifierKey[S, G], group ipa.Group[S, G]) ([]byte, error) {
	wire := yamlVerifierKey{CkV: toYAMLKey[S, G](vk.CkV, group), CkS: toYAMLKey[S, G](vk.CkS, group)}
	data, err := yaml.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("ipa-pcs: marshal verifier key: %w", err)
	}
	return data, nil
}

// UnmarshalVerifierKeyYAML decodes a VerifierKey previously written by
// MarshalVerifierKeyYAML.
func UnmarshalVerifierKeyYAML[S, G any](data []byte, group ipa.Group[S, G], ce ipa.CommitmentEngine[S, G]) (*VerifierKey[S, G], error) {
	var wire yamlVerifierKey
	if err := yaml.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("ipa-pcs: unmarshal verifier key: %w", err)
	}
	ckV, err := fromYAMLKey[S, G](wire.CkV, group, ce)
	if err != nil {
		return nil, fmt.Errorf("ipa-pcs: unmarshal verifier key: ck_v: %w", err)
	}
	ckS, err := fromYAMLKey[S, G](wire.CkS, group, ce)
	if err != nil {
		return nil, fmt.Errorf("ipa-pcs: unmarshal verifier key: ck_s: %w", err)
	}
	return &VerifierKey[S, G]{CkV: ckV, CkS: ckS}, nil
}

// MarshalProverKeyYAML encodes a ProverKey: its single-generator key
// ckS.
func MarshalProverKeyYAML[S, G any](pk *ProverKey[S, G], group ipa.Group[S, G]) ([]byte, error) {
	data, err := yaml.Marshal(toYAMLKey[S, G](pk.CkS, group))
	if err != nil {
		return nil, fmt.Errorf("ipa-pcs: marshal prover key: %w", err)
	}
	return data, nil
}

// UnmarshalProverKeyYAML decodes a ProverKey previously written by
// MarshalProverKeyYAML.
func UnmarshalProverKeyYAML[S, G any](data []byte, group ipa.Group[S, G], ce ipa.CommitmentEngine[S, G]) (*ProverKey[S, G], error) {
	var parsed yamlCommitmentKey
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("ipa-pcs: unmarshal prover key: %w", err)
	}
	ckS, err := fromYAMLKey[S, G](parsed, group, ce)
	if err != nil {
		return nil, fmt.Errorf("ipa-pcs: unmarshal prover key: %w", err)
	}
	return &ProverKey[S, G]{CkS: ckS}, nil
}
