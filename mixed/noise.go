package mixed

import (
	"fmt"
	"strings"

	"github.com/qusym/qusym/terms"
)

// MixedDecoherencePair is an ordered pair of mixed decoherence products
// indexing one Lindblad dissipator entry.
type MixedDecoherencePair = terms.Pair[MixedDecoherenceProduct]

// MixedNoiseOperator stores the rate matrix of a mixed-subsystem
// Lindblad dissipator, keyed by (left, right) product pairs with a fixed
// subsystem arrangement.
type MixedNoiseOperator struct {
	terms.Sum[MixedDecoherencePair]
	shape slotShape
}

// NewMixedNoiseOperator builds an empty noise operator over the given
// number of spin, boson, and fermion slots. Negative counts panic.
func NewMixedNoiseOperator(nSpins, nBosons, nFermions int) *MixedNoiseOperator {
	return &MixedNoiseOperator{
		Sum:   terms.NewSum[MixedDecoherencePair](terms.Unbounded),
		shape: newSlotShape(nSpins, nBosons, nFermions),
	}
}

// Arity returns the container's slot counts.
func (n *MixedNoiseOperator) Arity() (nSpins, nBosons, nFermions int) {
	return n.shape.spins, n.shape.bosons, n.shape.fermions
}

func (n *MixedNoiseOperator) checkShape(pair MixedDecoherencePair) error {
	if !n.shape.accepts(pair.Left.Arity()) || !n.shape.accepts(pair.Right.Arity()) {
		return fmt.Errorf("pair %s: %w", pair, terms.ErrSlotArityMismatch)
	}

	return nil
}

// Add accumulates value onto the pair entry.
func (n *MixedNoiseOperator) Add(pair MixedDecoherencePair, value complex128) error {
	if err := n.checkShape(pair); err != nil {
		return err
	}

	return n.Sum.Add(pair, value)
}

// Set overwrites the pair entry.
func (n *MixedNoiseOperator) Set(pair MixedDecoherencePair, value complex128) error {
	if err := n.checkShape(pair); err != nil {
		return err
	}

	return n.Sum.Set(pair, value)
}

// AddPair accumulates value onto the (left, right) entry.
func (n *MixedNoiseOperator) AddPair(left, right MixedDecoherenceProduct, value complex128) error {
	return n.Add(MixedDecoherencePair{Left: left, Right: right}, value)
}

// SetPair overwrites the (left, right) entry.
func (n *MixedNoiseOperator) SetPair(left, right MixedDecoherenceProduct, value complex128) error {
	return n.Set(MixedDecoherencePair{Left: left, Right: right}, value)
}

// GetPair returns the coefficient of the (left, right) entry.
func (n *MixedNoiseOperator) GetPair(left, right MixedDecoherenceProduct) complex128 {
	return n.Get(MixedDecoherencePair{Left: left, Right: right})
}

// AddOperator accumulates other into n entry by entry. Both containers
// must share one subsystem arrangement.
func (n *MixedNoiseOperator) AddOperator(other *MixedNoiseOperator) error {
	if n.shape != other.shape {
		return fmt.Errorf("noise arity %v vs %v: %w", n.shape, other.shape, terms.ErrSlotArityMismatch)
	}

	return n.AddSum(&other.Sum)
}

// Equal reports whether both noise operators hold the same entries and
// shape.
func (n *MixedNoiseOperator) Equal(other *MixedNoiseOperator) bool {
	return n.shape == other.shape && n.Sum.Equal(&other.Sum)
}

// Clone returns a deep copy.
func (n *MixedNoiseOperator) Clone() *MixedNoiseOperator {
	return &MixedNoiseOperator{Sum: n.Sum.Clone(), shape: n.shape}
}

// ParseMixedNoiseOperator parses the textual form produced by String
// into a noise operator with the given slot counts.
func ParseMixedNoiseOperator(s string, nSpins, nBosons, nFermions int) (*MixedNoiseOperator, error) {
	parsePair := func(p string) (MixedDecoherencePair, error) {
		return terms.ParsePair(p, ParseMixedDecoherenceProduct)
	}
	sum, err := terms.ParseSum(s, terms.Unbounded, parsePair)
	if err != nil {
		return nil, err
	}
	out := NewMixedNoiseOperator(nSpins, nBosons, nFermions)
	for _, t := range sum.Terms() {
		if err := out.AddPair(t.Key.Left, t.Key.Right, t.Coefficient); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// MixedOpenSystem pairs a mixed Hamiltonian with a mixed noise operator
// describing one open quantum system over a shared subsystem
// arrangement.
type MixedOpenSystem struct {
	system *MixedHamiltonian
	noise  *MixedNoiseOperator
}

// NewMixedOpenSystem builds an empty open system over the given number
// of spin, boson, and fermion slots. Negative counts panic.
func NewMixedOpenSystem(nSpins, nBosons, nFermions int) *MixedOpenSystem {
	return &MixedOpenSystem{
		system: NewMixedHamiltonian(nSpins, nBosons, nFermions),
		noise:  NewMixedNoiseOperator(nSpins, nBosons, nFermions),
	}
}

// GroupMixedOpenSystem combines an existing Hamiltonian and noise
// operator into one open system, cloning both. Their subsystem
// arrangements must agree.
func GroupMixedOpenSystem(system *MixedHamiltonian, noise *MixedNoiseOperator) (*MixedOpenSystem, error) {
	if system.shape != noise.shape {
		return nil, fmt.Errorf("system arity %v vs noise arity %v: %w", system.shape, noise.shape, terms.ErrSlotArityMismatch)
	}

	return &MixedOpenSystem{system: system.Clone(), noise: noise.Clone()}, nil
}

// System returns the coherent part.
func (m *MixedOpenSystem) System() *MixedHamiltonian { return m.system }

// Noise returns the dissipative part.
func (m *MixedOpenSystem) Noise() *MixedNoiseOperator { return m.noise }

// SystemAdd accumulates value onto a Hamiltonian representative.
func (m *MixedOpenSystem) SystemAdd(h HermitianMixedProduct, value complex128) error {
	return m.system.Add(h, value)
}

// SystemSet overwrites a Hamiltonian coefficient.
func (m *MixedOpenSystem) SystemSet(h HermitianMixedProduct, value complex128) error {
	return m.system.Set(h, value)
}

// NoiseAdd accumulates value onto a dissipator entry.
func (m *MixedOpenSystem) NoiseAdd(left, right MixedDecoherenceProduct, value complex128) error {
	return m.noise.AddPair(left, right, value)
}

// NoiseSet overwrites a dissipator entry.
func (m *MixedOpenSystem) NoiseSet(left, right MixedDecoherenceProduct, value complex128) error {
	return m.noise.SetPair(left, right, value)
}

// Equal reports whether both open systems agree on system and noise.
func (m *MixedOpenSystem) Equal(other *MixedOpenSystem) bool {
	return m.system.Equal(other.system) && m.noise.Equal(other.noise)
}

// Clone returns a deep copy.
func (m *MixedOpenSystem) Clone() *MixedOpenSystem {
	return &MixedOpenSystem{system: m.system.Clone(), noise: m.noise.Clone()}
}

const openSystemSeparator = ") Noise("

// String renders "System(...) Noise(...)".
func (m *MixedOpenSystem) String() string {
	return "System(" + m.system.String() + openSystemSeparator + m.noise.String() + ")"
}

// ParseMixedOpenSystem parses the form produced by String into an open
// system with the given slot counts.
func ParseMixedOpenSystem(s string, nSpins, nBosons, nFermions int) (*MixedOpenSystem, error) {
	body, ok := strings.CutPrefix(s, "System(")
	if !ok {
		return nil, fmt.Errorf("open system %q: missing system part: %w", s, terms.ErrParse)
	}
	body, ok = strings.CutSuffix(body, ")")
	if !ok {
		return nil, fmt.Errorf("open system %q: unterminated noise part: %w", s, terms.ErrParse)
	}
	sysText, noiseText, ok := strings.Cut(body, openSystemSeparator)
	if !ok {
		return nil, fmt.Errorf("open system %q: missing noise part: %w", s, terms.ErrParse)
	}
	system, err := ParseMixedHamiltonian(sysText, nSpins, nBosons, nFermions)
	if err != nil {
		return nil, err
	}
	noise, err := ParseMixedNoiseOperator(noiseText, nSpins, nBosons, nFermions)
	if err != nil {
		return nil, err
	}

	return &MixedOpenSystem{system: system, noise: noise}, nil
}
