// Package envelope implements the self-describing CBOR wrapper around a
// packed board state: {"v": 1, "canon": bool, "bb": 16 bytes} plus
// optional move-count ("mc") and open metadata ("meta") fields. Readers
// ignore unknown fields, so the format is forward-compatible.
package envelope

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/domino14/quantik/board"
	"github.com/domino14/quantik/symmetry"
)

// Envelope is the decoded form of the CBOR record.
type Envelope struct {
	Version   int            `cbor:"v"`
	Canonical bool           `cbor:"canon"`
	Payload   []byte         `cbor:"bb"`
	MoveCount *uint64        `cbor:"mc,omitempty"`
	Metadata  map[string]any `cbor:"meta,omitempty"`
}

// Marshal encodes a state. With canonical set, the payload written is the
// canonical representative of the state's orbit rather than the raw
// words. moveCount and meta are optional; pass nil to omit them.
func Marshal(s board.State, canonical bool, moveCount *uint64, meta map[string]any) ([]byte, error) {
	env := Envelope{
		Version:   board.Version,
		Canonical: canonical,
		MoveCount: moveCount,
		Metadata:  meta,
	}
	if canonical {
		p := symmetry.CanonicalPayload(s)
		env.Payload = p[:]
	} else {
		env.Payload = s.Payload()
	}
	return cbor.Marshal(env)
}

// Unmarshal decodes an envelope, validating the version and payload
// before constructing any state. The full envelope is returned alongside
// the state so callers can read the optional fields.
func Unmarshal(data []byte) (board.State, Envelope, error) {
	var env Envelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return board.State{}, Envelope{}, fmt.Errorf("%w: %v", board.ErrFormat, err)
	}
	if env.Version != board.Version {
		return board.State{}, Envelope{}, fmt.Errorf("%w: %d", board.ErrUnsupportedVersion, env.Version)
	}
	if len(env.Payload) != board.PayloadLen {
		return board.State{}, Envelope{}, fmt.Errorf("%w: field 'bb' must be %d bytes, got %d",
			board.ErrFormat, board.PayloadLen, len(env.Payload))
	}
	s, err := board.FromPayload(env.Payload)
	if err != nil {
		return board.State{}, Envelope{}, err
	}
	return s, env, nil
}
