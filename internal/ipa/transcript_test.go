package ipa_test

import (
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/crate-crypto/go-ipa-pcs/internal/ipa"
	"github.com/crate-crypto/go-ipa-pcs/internal/ipa/gnarkbackend"
)

func TestSpongeTranscriptDeterministic(t *testing.T) {
	field := gnarkbackend.ScalarField{}

	t1 := ipa.NewSpongeTranscript[fr.Element]("test", field)
	t1.DomSep("round")
	t1.Absorb("x", []byte{1, 2, 3})
	r1, err := t1.Squeeze("r")
	if err != nil {
		t.Fatalf("squeeze: %v", err)
	}

	t2 := ipa.NewSpongeTranscript[fr.Element]("test", field)
	t2.DomSep("round")
	t2.Absorb("x", []byte{1, 2, 3})
	r2, err := t2.Squeeze("r")
	if err != nil {
		t.Fatalf("squeeze: %v", err)
	}

	if !r1.Equal(&r2) {
		t.Fatalf("same transcript transcript script did not reproduce the same challenge")
	}
}

func TestSpongeTranscriptDivergesOnLabel(t *testing.T) {
	field := gnarkbackend.ScalarField{}

	t1 := ipa.NewSpongeTranscript[fr.Element]("test", field)
	t1.Absorb("a", []byte{1})
	r1, _ := t1.Squeeze("r")

	t2 := ipa.NewSpongeTranscript[fr.Element]("test", field)
	t2.Absorb("b", []byte{1})
	r2, _ := t2.Squeeze("r")

	if r1.Equal(&r2) {
		t.Fatalf("distinct absorb labels produced the same challenge")
	}
}

func TestSpongeTranscriptSqueezeAdvancesState(t *testing.T) {
	field := gnarkbackend.ScalarField{}
	tr := ipa.NewSpongeTranscript[fr.Element]("test", field)
	r1, _ := tr.Squeeze("r")
	r2, _ := tr.Squeeze("r")
	if r1.Equal(&r2) {
		t.Fatalf("squeezing the same label twice produced identical challenges")
	}
}

func TestProofBytesRoundTrip(t *testing.T) {
	group := gnarkbackend.G1Group{}
	field := gnarkbackend.ScalarField{}

	gens, err := gnarkbackend.GenerateTestGenerators(2)
	if err != nil {
		t.Fatalf("generators: %v", err)
	}

	var a fr.Element
	a.SetUint64(7)

	proof := &ipa.Proof[fr.Element, bls12381.G1Affine]{
		L: []bls12381.G1Affine{gens[0]},
		R: []bls12381.G1Affine{gens[1]},
		A: a,
	}

	data, err := proof.Bytes(group, field)
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}

	parsed, err := ipa.ParseProof[fr.Element, bls12381.G1Affine](data, group, field)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if parsed.Rounds() != 1 {
		t.Fatalf("rounds = %d, want 1", parsed.Rounds())
	}
	if !group.Equal(parsed.L[0], gens[0]) || !group.Equal(parsed.R[0], gens[1]) {
		t.Fatalf("L/R did not round-trip")
	}
	if !parsed.A.Equal(&a) {
		t.Fatalf("A did not round-trip")
	}
}

func TestNumRounds(t *testing.T) {
	cases := []struct {
		n       int
		rounds  int
		wantErr bool
	}{
		{n: 0, wantErr: true},
		{n: 1, wantErr: true},
		{n: 3, wantErr: true},
		{n: 2, rounds: 1},
		{n: 4, rounds: 2},
		{n: 1024, rounds: 10},
	}
	for _, tc := range cases {
		got, err := ipa.NumRounds(tc.n)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("NumRounds(%d): want error, got rounds=%d", tc.n, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NumRounds(%d): unexpected error: %v", tc.n, err)
		}
		if got != tc.rounds {
			t.Fatalf("NumRounds(%d) = %d, want %d", tc.n, got, tc.rounds)
		}
	}
}
