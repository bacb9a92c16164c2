package board

import (
	"encoding/binary"
	"fmt"
)

// Payload serializes the 8 words little-endian in the fixed slot order,
// 16 bytes.
func (s State) Payload() []byte {
	b := make([]byte, PayloadLen)
	for i, w := range s.bb {
		binary.LittleEndian.PutUint16(b[i*2:], w)
	}
	return b
}

// Pack serializes the state as an 18-byte record: version byte, flags
// byte, then the 16-byte payload.
func (s State) Pack(flags byte) []byte {
	b := make([]byte, 0, PackedLen)
	b = append(b, Version, flags)
	return append(b, s.Payload()...)
}

// Unpack deserializes an 18-byte record, returning the state and the
// flags byte.
func Unpack(data []byte) (State, byte, error) {
	if len(data) != PackedLen {
		return State{}, 0, fmt.Errorf("%w: need %d bytes, got %d", ErrFormat, PackedLen, len(data))
	}
	if data[0] != Version {
		return State{}, 0, fmt.Errorf("%w: %d", ErrUnsupportedVersion, data[0])
	}
	s, err := FromPayload(data[2:])
	if err != nil {
		return State{}, 0, err
	}
	return s, data[1], nil
}

// FromPayload builds a state from a 16-byte word payload.
func FromPayload(payload []byte) (State, error) {
	if len(payload) != PayloadLen {
		return State{}, fmt.Errorf("%w: payload must be %d bytes, got %d", ErrFormat, PayloadLen, len(payload))
	}
	var words [8]uint16
	for i := range words {
		words[i] = binary.LittleEndian.Uint16(payload[i*2:])
	}
	return FromWords(words)
}
