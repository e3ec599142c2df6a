package ipa

import (
	"encoding/binary"
	"fmt"
)

// Proof is the IPA argument: two equal-length sequences of commitments
// (group elements, compressed only by Bytes) and a final folded scalar.
type Proof[S, G any] struct {
	L []G
	R []G
	A S // the folded scalar â
}

// Rounds returns len(L) == len(R), the number of folding rounds.
func (p *Proof[S, G]) Rounds() int {
	return len(p.L)
}

// NumRounds returns log2(n) for a power-of-two vector length n, i.e.
// the number of (L, R) pairs a proof over a length-n instance will
// contain. Callers can use it to size a proof buffer before calling
// Prove. It fails if n is not a power of two at least 2.
func NumRounds(n int) (int, error) {
	if n < 2 || n&(n-1) != 0 {
		return 0, fmt.Errorf("%w: length %d is not a power of two >= 2", ErrInvalidInputLength, n)
	}
	return ilog2(n), nil
}

// Bytes serializes the proof as
// [round count: 1 byte][L_0][R_0]...[L_{k-1}][R_{k-1}][â], where each
// point/scalar is length-prefixed with its own canonical encoding. This
// is a convenience built only on the point/scalar encodings the host
// already owns via Group/Field; it does not invent its own curve-level
// serialization.
func (p *Proof[S, G]) Bytes(group Group[S, G], field Field[S]) ([]byte, error) {
	rounds := p.Rounds()
	if rounds >= MaxRounds {
		return nil, fmt.Errorf("%w: %d rounds >= MaxRounds %d", ErrInvalidInputLength, rounds, MaxRounds)
	}
	if len(p.R) != rounds {
		return nil, fmt.Errorf("%w: |L|=%d != |R|=%d", ErrInvalidInputLength, rounds, len(p.R))
	}

	buf := []byte{byte(rounds)}
	for i := 0; i < rounds; i++ {
		buf = appendFramed(buf, group.Compress(p.L[i]))
		buf = appendFramed(buf, group.Compress(p.R[i]))
	}
	buf = appendFramed(buf, field.Bytes(p.A))
	return buf, nil
}

// ParseProof parses the encoding produced by Bytes.
func ParseProof[S, G any](data []byte, group Group[S, G], field Field[S]) (*Proof[S, G], error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("%w: proof data too short", ErrInvalidInputLength)
	}
	rounds := int(data[0])
	rest := data[1:]

	proof := &Proof[S, G]{L: make([]G, rounds), R: make([]G, rounds)}
	var err error
	for i := 0; i < rounds; i++ {
		var lBytes, rBytes []byte
		lBytes, rest, err = readFramed(rest)
		if err != nil {
			return nil, err
		}
		if proof.L[i], err = group.Decompress(lBytes); err != nil {
			return nil, fmt.Errorf("ipa: decompress L[%d]: %w", i, err)
		}
		rBytes, rest, err = readFramed(rest)
		if err != nil {
			return nil, err
		}
		if proof.R[i], err = group.Decompress(rBytes); err != nil {
			return nil, fmt.Errorf("ipa: decompress R[%d]: %w", i, err)
		}
	}

	var aBytes []byte
	aBytes, _, err = readFramed(rest)
	if err != nil {
		return nil, err
	}
	if proof.A, err = field.FromCanonicalBytes(aBytes); err != nil {
		return nil, fmt.Errorf("ipa: decode final scalar: %w", err)
	}
	return proof, nil
}

func appendFramed(buf []byte, chunk []byte) []byte {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(chunk)))
	buf = append(buf, lenBuf[:]...)
	return append(buf, chunk...)
}

func readFramed(data []byte) (chunk []byte, rest []byte, err error) {
	if len(data) < 4 {
		return nil, nil, fmt.Errorf("%w: truncated length prefix", ErrInvalidInputLength)
	}
	n := binary.BigEndian.Uint32(data[:4])
	data = data[4:]
	if uint64(len(data)) < uint64(n) {
		return nil, nil, fmt.Errorf("%w: truncated frame", ErrInvalidInputLength)
	}
	return data[:n], data[n:], nil
}
