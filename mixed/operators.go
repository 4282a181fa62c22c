package mixed

import (
	"fmt"

	"github.com/qusym/qusym/terms"
)

// slotShape is the fixed subsystem arrangement of a mixed container.
type slotShape struct {
	spins    int
	bosons   int
	fermions int
}

func newSlotShape(nSpins, nBosons, nFermions int) slotShape {
	if nSpins < 0 || nBosons < 0 || nFermions < 0 {
		panic("mixed: slot counts must not be negative")
	}

	return slotShape{spins: nSpins, bosons: nBosons, fermions: nFermions}
}

func (s slotShape) accepts(nSpins, nBosons, nFermions int) bool {
	return s.spins == nSpins && s.bosons == nBosons && s.fermions == nFermions
}

// MixedOperator is a sparse complex-weighted sum of MixedProducts with a
// fixed subsystem arrangement. Entries of any other shape are rejected
// with terms.ErrSlotArityMismatch.
type MixedOperator struct {
	terms.Sum[MixedProduct]
	shape slotShape
}

// NewMixedOperator builds an empty operator over the given number of
// spin, boson, and fermion slots. Negative counts panic.
func NewMixedOperator(nSpins, nBosons, nFermions int) *MixedOperator {
	return &MixedOperator{
		Sum:   terms.NewSum[MixedProduct](terms.Unbounded),
		shape: newSlotShape(nSpins, nBosons, nFermions),
	}
}

// Arity returns the container's slot counts.
func (o *MixedOperator) Arity() (nSpins, nBosons, nFermions int) {
	return o.shape.spins, o.shape.bosons, o.shape.fermions
}

// Add accumulates value onto the product p.
func (o *MixedOperator) Add(p MixedProduct, value complex128) error {
	if !o.shape.accepts(p.Arity()) {
		return fmt.Errorf("product %s: %w", p, terms.ErrSlotArityMismatch)
	}

	return o.Sum.Add(p, value)
}

// Set overwrites the coefficient of the product p.
func (o *MixedOperator) Set(p MixedProduct, value complex128) error {
	if !o.shape.accepts(p.Arity()) {
		return fmt.Errorf("product %s: %w", p, terms.ErrSlotArityMismatch)
	}

	return o.Sum.Set(p, value)
}

// AddOperator accumulates other into o term by term. Both containers
// must share one subsystem arrangement.
func (o *MixedOperator) AddOperator(other *MixedOperator) error {
	if o.shape != other.shape {
		return fmt.Errorf("operator arity %v vs %v: %w", o.shape, other.shape, terms.ErrSlotArityMismatch)
	}

	return o.AddSum(&other.Sum)
}

// Mul returns the normal-ordered product o·other.
func (o *MixedOperator) Mul(other *MixedOperator) (*MixedOperator, error) {
	if o.shape != other.shape {
		return nil, fmt.Errorf("operator arity %v vs %v: %w", o.shape, other.shape, terms.ErrSlotArityMismatch)
	}
	out := &MixedOperator{Sum: terms.NewSum[MixedProduct](terms.Unbounded), shape: o.shape}
	for _, lt := range o.Terms() {
		for _, rt := range other.Terms() {
			expanded, err := lt.Key.Mul(rt.Key)
			if err != nil {
				return nil, err
			}
			for _, mt := range expanded {
				_ = out.Sum.Add(mt.Product, mt.Factor*lt.Coefficient*rt.Coefficient)
			}
		}
	}

	return out, nil
}

// Equal reports whether both operators hold the same terms and shape.
func (o *MixedOperator) Equal(other *MixedOperator) bool {
	return o.shape == other.shape && o.Sum.Equal(&other.Sum)
}

// Clone returns a deep copy.
func (o *MixedOperator) Clone() *MixedOperator {
	return &MixedOperator{Sum: o.Sum.Clone(), shape: o.shape}
}

// ParseMixedOperator parses the textual form produced by String into an
// operator with the given slot counts, rejecting mis-shaped terms.
func ParseMixedOperator(s string, nSpins, nBosons, nFermions int) (*MixedOperator, error) {
	sum, err := terms.ParseSum(s, terms.Unbounded, ParseMixedProduct)
	if err != nil {
		return nil, err
	}
	out := NewMixedOperator(nSpins, nBosons, nFermions)
	for _, t := range sum.Terms() {
		if err := out.Add(t.Key, t.Coefficient); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// MixedHamiltonian is a self-adjoint mixed operator stored on
// conjugate-pair representatives with a fixed subsystem arrangement: an
// entry (H, v) stands for v·H + s·conj(v)·conj(H), with s the fermionic
// reversal sign of H. Naturally Hermitian entries must carry real
// coefficients.
type MixedHamiltonian struct {
	terms.Sum[HermitianMixedProduct]
	shape slotShape
}

// NewMixedHamiltonian builds an empty Hamiltonian over the given number
// of spin, boson, and fermion slots. Negative counts panic.
func NewMixedHamiltonian(nSpins, nBosons, nFermions int) *MixedHamiltonian {
	return &MixedHamiltonian{
		Sum:   terms.NewSum[HermitianMixedProduct](terms.Unbounded),
		shape: newSlotShape(nSpins, nBosons, nFermions),
	}
}

// Arity returns the container's slot counts.
func (m *MixedHamiltonian) Arity() (nSpins, nBosons, nFermions int) {
	return m.shape.spins, m.shape.bosons, m.shape.fermions
}

// Add accumulates value onto the representative h.
func (m *MixedHamiltonian) Add(h HermitianMixedProduct, value complex128) error {
	if !m.shape.accepts(h.Arity()) {
		return fmt.Errorf("product %s: %w", h, terms.ErrSlotArityMismatch)
	}
	if h.IsNaturalHermitian() && imag(m.Get(h)+value) != 0 {
		return fmt.Errorf("product %s: %w", h, terms.ErrNonHermitianCoefficient)
	}

	return m.Sum.Add(h, value)
}

// Set overwrites the coefficient of the representative h.
func (m *MixedHamiltonian) Set(h HermitianMixedProduct, value complex128) error {
	if !m.shape.accepts(h.Arity()) {
		return fmt.Errorf("product %s: %w", h, terms.ErrSlotArityMismatch)
	}
	if h.IsNaturalHermitian() && imag(value) != 0 {
		return fmt.Errorf("product %s: %w", h, terms.ErrNonHermitianCoefficient)
	}

	return m.Sum.Set(h, value)
}

// AddProduct folds a plain mixed product into the Hamiltonian,
// conjugating the value when p is not the representative of its orbit.
func (m *MixedHamiltonian) AddProduct(p MixedProduct, value complex128) error {
	h, v := CanonicalHermitianMixedPair(p, value)

	return m.Add(h, v)
}

// GetProduct returns the coefficient the expanded operator assigns to
// the plain product p, whether p is the stored representative or its
// conjugate.
func (m *MixedHamiltonian) GetProduct(p MixedProduct) complex128 {
	h, _ := CanonicalHermitianMixedPair(p, 1)
	stored := m.Get(h)
	if p.Equal(h.ToProduct()) {
		return stored
	}
	sign := h.ConjugateSign()

	return complex(sign, 0) * complex(real(stored), -imag(stored))
}

// AddHamiltonian accumulates other into m, preserving Hermiticity.
func (m *MixedHamiltonian) AddHamiltonian(other *MixedHamiltonian) error {
	if m.shape != other.shape {
		return fmt.Errorf("hamiltonian arity %v vs %v: %w", m.shape, other.shape, terms.ErrSlotArityMismatch)
	}
	for _, t := range other.Terms() {
		if err := m.Add(t.Key, t.Coefficient); err != nil {
			return err
		}
	}

	return nil
}

// Scale multiplies every coefficient by the real factor.
func (m *MixedHamiltonian) Scale(factor float64) {
	m.Sum.Scale(complex(factor, 0))
}

// ToOperator expands the representative storage into the full
// self-adjoint MixedOperator.
func (m *MixedHamiltonian) ToOperator() *MixedOperator {
	out := &MixedOperator{Sum: terms.NewSum[MixedProduct](terms.Unbounded), shape: m.shape}
	for _, t := range m.Terms() {
		_ = out.Sum.Add(t.Key.ToProduct(), t.Coefficient)
		if !t.Key.IsNaturalHermitian() {
			conj, sign := t.Key.ToProduct().HermitianConjugate()
			v := complex(sign, 0) * complex(real(t.Coefficient), -imag(t.Coefficient))
			_ = out.Sum.Add(conj, v)
		}
	}

	return out
}

// Equal reports whether both Hamiltonians hold the same terms and shape.
func (m *MixedHamiltonian) Equal(other *MixedHamiltonian) bool {
	return m.shape == other.shape && m.Sum.Equal(&other.Sum)
}

// Clone returns a deep copy.
func (m *MixedHamiltonian) Clone() *MixedHamiltonian {
	return &MixedHamiltonian{Sum: m.Sum.Clone(), shape: m.shape}
}

// ParseMixedHamiltonian parses the textual form produced by String,
// re-validating shape and Hermiticity term by term.
func ParseMixedHamiltonian(s string, nSpins, nBosons, nFermions int) (*MixedHamiltonian, error) {
	sum, err := terms.ParseSum(s, terms.Unbounded, ParseHermitianMixedProduct)
	if err != nil {
		return nil, err
	}
	out := NewMixedHamiltonian(nSpins, nBosons, nFermions)
	for _, t := range sum.Terms() {
		if err := out.Add(t.Key, t.Coefficient); err != nil {
			return nil, err
		}
	}

	return out, nil
}
