package spins

import (
	"fmt"
	"strings"

	"github.com/qusym/qusym/terms"
)

// LindbladOpenSystem pairs the Hermitian (unitary) part and the Lindblad
// noise (dissipative) part of an open spin system. The two parts are
// mutated independently through the System/Noise accessors but always
// travel together.
type LindbladOpenSystem struct {
	system *PauliHamiltonian
	noise  *LindbladNoiseOperator
}

// NewLindbladOpenSystem returns an empty open system; WithSpins declares
// a shared index bound for both parts.
func NewLindbladOpenSystem(opts ...Option) *LindbladOpenSystem {
	return &LindbladOpenSystem{
		system: NewPauliHamiltonian(opts...),
		noise:  NewLindbladNoiseOperator(opts...),
	}
}

// GroupLindbladOpenSystem joins an existing Hamiltonian and noise
// operator into one open system. Mismatched declared bounds are
// reconciled by the union of ranges on both parts.
func GroupLindbladOpenSystem(system *PauliHamiltonian, noise *LindbladNoiseOperator) *LindbladOpenSystem {
	out := &LindbladOpenSystem{system: system.Clone(), noise: noise.Clone()}
	terms.ReconcileBounds(&out.system.Sum, &out.noise.Sum)

	return out
}

// System returns the Hamiltonian part.
func (s *LindbladOpenSystem) System() *PauliHamiltonian { return s.system }

// Noise returns the Lindblad noise part.
func (s *LindbladOpenSystem) Noise() *LindbladNoiseOperator { return s.noise }

// SystemAdd accumulates c onto the Hamiltonian coefficient of p.
func (s *LindbladOpenSystem) SystemAdd(p PauliProduct, c complex128) error {
	return s.system.Add(p, c)
}

// SystemSet overwrites the Hamiltonian coefficient of p.
func (s *LindbladOpenSystem) SystemSet(p PauliProduct, c complex128) error {
	return s.system.Set(p, c)
}

// NoiseAdd accumulates c onto the coefficient of the (left, right)
// decoherence pair.
func (s *LindbladOpenSystem) NoiseAdd(left, right DecoherenceProduct, c complex128) error {
	return s.noise.AddPair(left, right, c)
}

// NoiseSet overwrites the coefficient of the (left, right) decoherence
// pair.
func (s *LindbladOpenSystem) NoiseSet(left, right DecoherenceProduct, c complex128) error {
	return s.noise.SetPair(left, right, c)
}

// Equal reports structural equality of both parts.
func (s *LindbladOpenSystem) Equal(other *LindbladOpenSystem) bool {
	return s.system.Equal(other.system) && s.noise.Equal(other.noise)
}

// Clone returns an independent copy of both parts.
func (s *LindbladOpenSystem) Clone() *LindbladOpenSystem {
	return &LindbladOpenSystem{system: s.system.Clone(), noise: s.noise.Clone()}
}

// openSystemSeparator splits the two halves of the canonical open-system
// form. Neither half's term syntax can produce the sequence.
const openSystemSeparator = ") Noise("

// String renders "System(<hamiltonian>) Noise(<noise>)".
func (s *LindbladOpenSystem) String() string {
	return "System(" + s.system.String() + openSystemSeparator + s.noise.String() + ")"
}

// ParseLindbladOpenSystem parses the canonical form produced by String.
func ParseLindbladOpenSystem(s string, opts ...Option) (*LindbladOpenSystem, error) {
	body, ok := strings.CutPrefix(s, "System(")
	if !ok {
		return nil, fmt.Errorf("open system %q: missing system part: %w", s, terms.ErrParse)
	}
	body, ok = strings.CutSuffix(body, ")")
	if !ok {
		return nil, fmt.Errorf("open system %q: unterminated noise part: %w", s, terms.ErrParse)
	}
	sysStr, noiseStr, ok := strings.Cut(body, openSystemSeparator)
	if !ok {
		return nil, fmt.Errorf("open system %q: missing noise part: %w", s, terms.ErrParse)
	}
	system, err := ParsePauliHamiltonian(sysStr, opts...)
	if err != nil {
		return nil, err
	}
	noise, err := ParseLindbladNoiseOperator(noiseStr, opts...)
	if err != nil {
		return nil, err
	}

	return &LindbladOpenSystem{system: system, noise: noise}, nil
}
