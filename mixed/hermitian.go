package mixed

import (
	"github.com/qusym/qusym/bosons"
	"github.com/qusym/qusym/fermions"
	"github.com/qusym/qusym/spins"
)

// HermitianMixedProduct names a conjugate pair {P, P†} of mixed products
// by its canonical representative. The orientation is decided by the
// first boson slot whose creator and annihilator sequences differ, and
// by the fermion slots only when every boson slot is self-conjugate;
// spin slots never decide. Inside a MixedHamiltonian a representative
// with value v stands for v·P + s·conj(v)·P†, with s the fermionic
// reversal sign of P.
type HermitianMixedProduct struct {
	prod MixedProduct
}

// NewHermitianMixedProduct builds the representative of the conjugate
// orbit spanned by the given slot factors, folding a non-representative
// orientation onto its conjugate.
func NewHermitianMixedProduct(spinSlots []spins.PauliProduct, bosonSlots []bosons.BosonProduct, fermionSlots []fermions.FermionProduct) HermitianMixedProduct {
	h, _ := CanonicalHermitianMixedPair(NewMixedProduct(spinSlots, bosonSlots, fermionSlots), 1)

	return h
}

// CanonicalHermitianMixedPair canonicalizes a mixed product with a
// coefficient into (representative, transformed coefficient): a
// non-representative orientation conjugates every slot, conjugates the
// value, and applies the fermionic reversal sign of the true adjoint.
func CanonicalHermitianMixedPair(p MixedProduct, value complex128) (HermitianMixedProduct, complex128) {
	if mixedConjugateIsRepresentative(p) {
		conj, sign := p.HermitianConjugate()
		p = conj
		value = complex(sign, 0) * complex(real(value), -imag(value))
	}

	return HermitianMixedProduct{prod: p}, value
}

// mixedConjugateIsRepresentative reports whether the conjugate
// orientation of p is the canonical representative, scanning boson slots
// before fermion slots.
func mixedConjugateIsRepresentative(p MixedProduct) bool {
	for _, b := range p.bosons {
		if decided, conjugate := ladderOrientation(b.Creators(), b.Annihilators()); decided {
			return conjugate
		}
	}
	for _, f := range p.fermions {
		if decided, conjugate := ladderOrientation(f.Creators(), f.Annihilators()); decided {
			return conjugate
		}
	}

	return false
}

// ladderOrientation zip-compares one slot's sorted index lists. The slot
// decides the orientation at the first unequal position, or when the
// annihilators run out while every compared position was equal.
func ladderOrientation(creators, annihilators []int) (decided, conjugate bool) {
	equal := 0
	for i := 0; i < len(creators) && i < len(annihilators); i++ {
		switch {
		case annihilators[i] < creators[i]:
			return true, true
		case annihilators[i] > creators[i]:
			return true, false
		default:
			equal++
		}
	}
	if len(creators) > equal && len(annihilators) == equal {
		return true, true
	}
	if len(annihilators) > equal && len(creators) == equal {
		return true, false
	}

	return false, false
}

// ToProduct widens the representative into a plain MixedProduct.
func (h HermitianMixedProduct) ToProduct() MixedProduct { return h.prod }

// ConjugateSign returns the real sign relating the representative P to
// its true adjoint: P† = sign · slotConjugate(P).
func (h HermitianMixedProduct) ConjugateSign() float64 {
	_, sign := h.prod.HermitianConjugate()

	return sign
}

// Spins returns a copy of the spin slot factors.
func (h HermitianMixedProduct) Spins() []spins.PauliProduct { return h.prod.Spins() }

// Bosons returns a copy of the boson slot factors.
func (h HermitianMixedProduct) Bosons() []bosons.BosonProduct { return h.prod.Bosons() }

// Fermions returns a copy of the fermion slot factors.
func (h HermitianMixedProduct) Fermions() []fermions.FermionProduct { return h.prod.Fermions() }

// Arity returns the number of spin, boson, and fermion slots.
func (h HermitianMixedProduct) Arity() (nSpins, nBosons, nFermions int) { return h.prod.Arity() }

// IsNaturalHermitian reports whether the representative is
// self-conjugate.
func (h HermitianMixedProduct) IsNaturalHermitian() bool { return h.prod.IsNaturalHermitian() }

// Sites returns the widest per-slot site span across all subsystems.
func (h HermitianMixedProduct) Sites() int { return h.prod.Sites() }

// Equal reports structural equality of the canonical forms.
func (h HermitianMixedProduct) Equal(other HermitianMixedProduct) bool {
	return h.prod.Equal(other.prod)
}

// String renders the canonical segmented form of the representative.
func (h HermitianMixedProduct) String() string { return h.prod.String() }

// ParseHermitianMixedProduct parses the canonical form produced by
// String, folding a non-representative orientation onto its conjugate.
func ParseHermitianMixedProduct(s string) (HermitianMixedProduct, error) {
	p, err := ParseMixedProduct(s)
	if err != nil {
		return HermitianMixedProduct{}, err
	}
	h, _ := CanonicalHermitianMixedPair(p, 1)

	return h, nil
}
