package ipa

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// SpongeTranscript is the default Transcript implementation: a
// hash-chained duplex built on Keccak (golang.org/x/crypto/sha3), with a
// running digest state that is re-hashed on every absorb/squeeze, and
// every label and payload framed with an explicit length prefix so two
// distinct (label, data) pairs can never hash to the same byte string.
type SpongeTranscript[S any] struct {
	state [32]byte
	field Field[S]
}

// NewSpongeTranscript seeds a transcript from an initial label and binds
// it to field for challenge reduction.
func NewSpongeTranscript[S any](label string, field Field[S]) *SpongeTranscript[S] {
	t := &SpongeTranscript[S]{field: field}
	t.state = sha3.Sum256([]byte(label))
	return t
}

func (t *SpongeTranscript[S]) mix(tag string, label string, data []byte) []byte {
	h := sha3.New256()
	h.Write(t.state[:])
	h.Write([]byte(tag))

	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(label)))
	h.Write(lenBuf[:])
	h.Write([]byte(label))

	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(data)))
	h.Write(lenBuf[:])
	h.Write(data)

	digest := h.Sum(nil)
	copy(t.state[:], digest)
	return digest
}

// DomSep injects a domain-separation tag into the running state.
func (t *SpongeTranscript[S]) DomSep(label string) {
	t.mix("dom-sep", label, nil)
}

// Absorb ingests data under label.
func (t *SpongeTranscript[S]) Absorb(label string, data []byte) {
	t.mix("absorb", label, data)
}

// Squeeze derives a field challenge under label and advances the state so
// the same label can never be squeezed twice for the same value.
func (t *SpongeTranscript[S]) Squeeze(label string) (S, error) {
	digest := t.mix("squeeze", label, nil)
	s, err := t.field.ReduceWide(digest)
	if err != nil {
		var zero S
		return zero, fmt.Errorf("%w: squeeze %q: %v", ErrTranscript, label, err)
	}
	return s, nil
}
