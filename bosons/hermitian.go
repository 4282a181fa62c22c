package bosons

import (
	"slices"

	"github.com/qusym/qusym/terms"
)

// HermitianBosonProduct names a conjugate pair {P, P†} of bosonic
// products by its canonical representative: the member whose creator
// index sequence compares no greater than its annihilator sequence.
// Inside a BosonHamiltonian a representative with value v stands for
// v·P + conj(v)·P†.
type HermitianBosonProduct struct {
	creators     []int
	annihilators []int
}

// NewHermitianBosonProduct builds the representative of the conjugate
// orbit spanned by the given index lists. Lists are sorted ascending, a
// repeated index fails with terms.ErrDuplicateIndex, and a
// non-representative orientation is replaced by its conjugate.
func NewHermitianBosonProduct(creators, annihilators []int) (HermitianBosonProduct, error) {
	p, err := NewBosonProduct(creators, annihilators)
	if err != nil {
		return HermitianBosonProduct{}, err
	}
	if conjugateIsRepresentative(p.creators, p.annihilators) {
		p = p.HermitianConjugate()
	}

	return HermitianBosonProduct{creators: p.creators, annihilators: p.annihilators}, nil
}

// CanonicalHermitianBosonPair canonicalizes two raw index lists with a
// coefficient into (representative, transformed coefficient). Bosonic
// reordering is sign-free, so a non-representative orientation simply
// conjugates the value.
func CanonicalHermitianBosonPair(creators, annihilators []int, value complex128) (HermitianBosonProduct, complex128) {
	p := canonicalBosonProduct(creators, annihilators)
	if conjugateIsRepresentative(p.creators, p.annihilators) {
		p = p.HermitianConjugate()
		value = complex(real(value), -imag(value))
	}

	return HermitianBosonProduct{creators: p.creators, annihilators: p.annihilators}, value
}

// conjugateIsRepresentative reports whether the conjugate orientation is
// the canonical representative. Both lists are sorted ascending.
func conjugateIsRepresentative(creators, annihilators []int) bool {
	equal := 0
	for i := 0; i < len(creators) && i < len(annihilators); i++ {
		switch {
		case annihilators[i] < creators[i]:
			return true
		case annihilators[i] > creators[i]:
			return false
		default:
			equal++
		}
	}

	return len(creators) > equal && len(annihilators) == equal
}

// ToProduct widens the representative into a plain BosonProduct.
func (h HermitianBosonProduct) ToProduct() BosonProduct {
	return BosonProduct{creators: slices.Clone(h.creators), annihilators: slices.Clone(h.annihilators)}
}

// Creators returns a copy of the creation indices, ascending.
func (h HermitianBosonProduct) Creators() []int { return slices.Clone(h.creators) }

// Annihilators returns a copy of the annihilation indices, ascending.
func (h HermitianBosonProduct) Annihilators() []int { return slices.Clone(h.annihilators) }

// IsNaturalHermitian reports whether the representative is
// self-conjugate.
func (h HermitianBosonProduct) IsNaturalHermitian() bool {
	return slices.Equal(h.creators, h.annihilators)
}

// IsIdentity reports whether the product contains no ladder operators.
func (h HermitianBosonProduct) IsIdentity() bool {
	return len(h.creators) == 0 && len(h.annihilators) == 0
}

// Sites returns one past the highest mode index the product touches.
func (h HermitianBosonProduct) Sites() int { return h.ToProduct().Sites() }

// Equal reports structural equality of the canonical forms.
func (h HermitianBosonProduct) Equal(other HermitianBosonProduct) bool {
	return slices.Equal(h.creators, other.creators) &&
		slices.Equal(h.annihilators, other.annihilators)
}

// String renders the canonical form of the representative.
func (h HermitianBosonProduct) String() string {
	return terms.FormatLadder(h.creators, h.annihilators)
}

// ParseHermitianBosonProduct parses the canonical form produced by
// String, folding a non-representative orientation onto its conjugate.
func ParseHermitianBosonProduct(s string) (HermitianBosonProduct, error) {
	cr, an, err := terms.ParseLadder(s)
	if err != nil {
		return HermitianBosonProduct{}, err
	}
	h, _ := CanonicalHermitianBosonPair(cr, an, 1)

	return h, nil
}
