package spins

import (
	"fmt"

	"github.com/qusym/qusym/terms"
)

// PauliHamiltonian is a Hermitian-constrained sparse combination of
// PauliProducts. Every Pauli string is self-conjugate, so every stored
// coefficient must have an exactly zero imaginary part; an insertion that
// would violate this fails with terms.ErrNonHermitianCoefficient.
type PauliHamiltonian struct {
	terms.Sum[PauliProduct]
}

// NewPauliHamiltonian returns an empty Hamiltonian; WithSpins declares an
// index bound.
func NewPauliHamiltonian(opts ...Option) *PauliHamiltonian {
	return &PauliHamiltonian{Sum: terms.NewSum[PauliProduct](gatherOptions(opts).spins)}
}

// Add accumulates c onto the coefficient of p, failing when the net
// coefficient would carry a non-zero imaginary part.
func (h *PauliHamiltonian) Add(p PauliProduct, c complex128) error {
	if imag(h.Get(p)+c) != 0 {
		return fmt.Errorf("pauli product %q: %w", p.String(), terms.ErrNonHermitianCoefficient)
	}

	return h.Sum.Add(p, c)
}

// Set overwrites the coefficient of p, failing on a non-zero imaginary
// part.
func (h *PauliHamiltonian) Set(p PauliProduct, c complex128) error {
	if imag(c) != 0 {
		return fmt.Errorf("pauli product %q: %w", p.String(), terms.ErrNonHermitianCoefficient)
	}

	return h.Sum.Set(p, c)
}

// AddHamiltonian accumulates every term of other into h, reconciling
// bounds by union. Both operands hold validated real coefficients, so the
// result does too.
func (h *PauliHamiltonian) AddHamiltonian(other *PauliHamiltonian) error {
	return h.Sum.AddSum(&other.Sum)
}

// Scale multiplies every coefficient by the real factor f.
func (h *PauliHamiltonian) Scale(f float64) {
	h.Sum.Scale(complex(f, 0))
}

// ToOperator widens the Hamiltonian into a general PauliOperator.
func (h *PauliHamiltonian) ToOperator() *PauliOperator {
	out := &PauliOperator{Sum: terms.NewSum[PauliProduct](h.Bound())}
	for _, t := range h.Terms() {
		_ = out.Add(t.Key, t.Coefficient)
	}

	return out
}

// Equal reports structural equality of bound and terms.
func (h *PauliHamiltonian) Equal(other *PauliHamiltonian) bool {
	return h.Sum.Equal(&other.Sum)
}

// Clone returns an independent copy.
func (h *PauliHamiltonian) Clone() *PauliHamiltonian {
	return &PauliHamiltonian{Sum: h.Sum.Clone()}
}

// ParsePauliHamiltonian parses the canonical textual form produced by
// String, re-validating the Hermiticity constraint.
func ParsePauliHamiltonian(s string, opts ...Option) (*PauliHamiltonian, error) {
	sum, err := terms.ParseSum(s, gatherOptions(opts).spins, ParsePauliProduct)
	if err != nil {
		return nil, err
	}
	h := &PauliHamiltonian{Sum: terms.NewSum[PauliProduct](gatherOptions(opts).spins)}
	for _, t := range sum.Terms() {
		if err := h.Add(t.Key, t.Coefficient); err != nil {
			return nil, err
		}
	}

	return h, nil
}
