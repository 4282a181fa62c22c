// Package codec wraps canonical operator text in a small versioned CBOR
// envelope, the interchange format for callers that persist or ship
// operator expressions. The payload is the canonical String form, so any
// container round-trips through its family parser.
package codec

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Version is the current envelope schema version.
const Version = 1

// Sentinel errors returned by the envelope codec.
var (
	// ErrVersionMismatch signals an envelope from an incompatible
	// schema version.
	ErrVersionMismatch = errors.New("codec: envelope version mismatch")
	// ErrKindMismatch signals an envelope holding a different container
	// kind than the caller asked for.
	ErrKindMismatch = errors.New("codec: envelope kind mismatch")
	// ErrDecode signals a malformed envelope.
	ErrDecode = errors.New("codec: malformed envelope")
)

// Envelope is the serialized wire form: a schema version, the container
// kind (e.g. "PauliHamiltonian"), and the canonical text payload.
type Envelope struct {
	Version int    `cbor:"version"`
	Kind    string `cbor:"kind"`
	Data    string `cbor:"data"`
}

// Marshal encodes a container's canonical text under the given kind tag.
func Marshal(kind string, v fmt.Stringer) ([]byte, error) {
	return cbor.Marshal(Envelope{Version: Version, Kind: kind, Data: v.String()})
}

// Unmarshal decodes an envelope, validating the schema version and the
// expected kind, and returns the canonical text payload.
func Unmarshal(data []byte, kind string) (string, error) {
	var env Envelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if env.Version != Version {
		return "", fmt.Errorf("version %d, want %d: %w", env.Version, Version, ErrVersionMismatch)
	}
	if env.Kind != kind {
		return "", fmt.Errorf("kind %q, want %q: %w", env.Kind, kind, ErrKindMismatch)
	}

	return env.Data, nil
}

// Decode decodes an envelope and parses its payload with the family
// parser of the expected container kind.
func Decode[T any](data []byte, kind string, parse func(string) (T, error)) (T, error) {
	var zero T
	text, err := Unmarshal(data, kind)
	if err != nil {
		return zero, err
	}

	return parse(text)
}
