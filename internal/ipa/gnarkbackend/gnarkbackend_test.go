package gnarkbackend

import (
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

func randScalar(t *testing.T) fr.Element {
	t.Helper()
	var s fr.Element
	_, err := s.SetRandom()
	require.NoError(t, err)
	return s
}

func TestScalarFieldBatchInvertRejectsZero(t *testing.T) {
	field := ScalarField{}
	xs := []fr.Element{randScalar(t), {}, randScalar(t)}
	_, err := field.BatchInvert(xs)
	require.Error(t, err)
}

func TestScalarFieldBatchInvertMatchesInverse(t *testing.T) {
	field := ScalarField{}
	xs := []fr.Element{randScalar(t), randScalar(t), randScalar(t)}
	got, err := field.BatchInvert(append([]fr.Element(nil), xs...))
	require.NoError(t, err)
	for i, x := range xs {
		want, err := field.Inverse(x)
		require.NoError(t, err)
		require.True(t, want.Equal(&got[i]))
	}
}

func TestG1GroupAddScalarMulConsistency(t *testing.T) {
	group := G1Group{}
	gens, err := GenerateTestGenerators(1)
	require.NoError(t, err)
	g := gens[0]

	two := new(fr.Element).SetUint64(2)
	doubled := group.ScalarMul(g, *two)
	summed := group.Add(g, g)
	require.True(t, group.Equal(doubled, summed))
}

func TestG1GroupCompressDecompressRoundTrip(t *testing.T) {
	group := G1Group{}
	gens, err := GenerateTestGenerators(1)
	require.NoError(t, err)

	compressed := group.Compress(gens[0])
	decompressed, err := group.Decompress(compressed)
	require.NoError(t, err)
	require.True(t, group.Equal(gens[0], decompressed))
}

func TestGenerateTestGeneratorsDeterministicAndDistinct(t *testing.T) {
	a, err := GenerateTestGenerators(4)
	require.NoError(t, err)
	b, err := GenerateTestGenerators(4)
	require.NoError(t, err)

	for i := range a {
		require.True(t, a[i].Equal(&b[i]), "generator %d not deterministic", i)
		for j := range a {
			if i == j {
				continue
			}
			require.False(t, a[i].Equal(&a[j]), "generators %d and %d collide", i, j)
		}
	}
}

func TestCommitmentEngineCommitIsLinear(t *testing.T) {
	ce := CommitmentEngine{}
	group := G1Group{}
	gens, err := GenerateTestGenerators(2)
	require.NoError(t, err)
	ck := NewCommitmentKey(gens)

	a := []fr.Element{randScalar(t), randScalar(t)}
	b := []fr.Element{randScalar(t), randScalar(t)}
	sum := []fr.Element{*new(fr.Element).Add(&a[0], &b[0]), *new(fr.Element).Add(&a[1], &b[1])}

	ca, err := ce.Commit(ck, a)
	require.NoError(t, err)
	cb, err := ce.Commit(ck, b)
	require.NoError(t, err)
	cSum, err := ce.Commit(ck, sum)
	require.NoError(t, err)

	require.True(t, group.Equal(group.Add(ca, cb), cSum))
}

func TestCommitmentKeyScale(t *testing.T) {
	group := G1Group{}
	gens, err := GenerateTestGenerators(2)
	require.NoError(t, err)
	ck := NewCommitmentKey(append([]bls12381.G1Affine(nil), gens...))

	s := randScalar(t)
	ck.Scale(s)

	want := group.ScalarMul(gens[0], s)
	require.True(t, group.Equal(ck.Generators()[0], want))
}

func TestCommitmentEngineFoldMatchesManualCombination(t *testing.T) {
	ce := CommitmentEngine{}
	group := G1Group{}
	gens, err := GenerateTestGenerators(2)
	require.NoError(t, err)
	left := NewCommitmentKey([]bls12381.G1Affine{gens[0]})
	right := NewCommitmentKey([]bls12381.G1Affine{gens[1]})

	u, v := randScalar(t), randScalar(t)
	folded := ce.Fold(left, right, u, v)

	want := group.Add(group.ScalarMul(gens[0], u), group.ScalarMul(gens[1], v))
	require.True(t, group.Equal(folded.Generators()[0], want))
}

func TestEqEvaluatorSumsToOne(t *testing.T) {
	eq := EqEvaluator{}
	x := []fr.Element{randScalar(t), randScalar(t), randScalar(t)}
	b, err := eq.Eq(x)
	require.NoError(t, err)
	require.Len(t, b, 8)

	var sum fr.Element
	for _, v := range b {
		sum.Add(&sum, &v)
	}
	require.True(t, sum.Equal(new(fr.Element).SetOne()))
}

func TestEqEvaluatorAtBooleanPointIsIndicator(t *testing.T) {
	eq := EqEvaluator{}
	one := fr.One()
	x := []fr.Element{one, {}, one}
	b, err := eq.Eq(x)
	require.NoError(t, err)

	want := 0
	for j, xj := range x {
		if xj.Equal(&one) {
			want |= 1 << uint(j)
		}
	}
	for i, v := range b {
		if i == want {
			require.True(t, v.Equal(&one), "index %d should be 1", i)
		} else {
			require.True(t, v.IsZero(), "index %d should be 0, got %s", i, v.String())
		}
	}
}
