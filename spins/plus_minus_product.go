package spins

import "slices"

// PlusMinusProduct is a tensor product of single-site raising/lowering
// symbols {+, -, Z}. The zero value is the identity; builder calls return
// new products.
type PlusMinusProduct struct {
	sites []site[PlusMinus]
}

// PlusMinusFactor is one (index, symbol) entry of a PlusMinusProduct.
type PlusMinusFactor struct {
	Index int
	Op    PlusMinus
}

// NewPlusMinusProduct returns the identity product.
func NewPlusMinusProduct() PlusMinusProduct { return PlusMinusProduct{} }

// SetPlusMinus returns a copy of p with op written at the given qubit
// index. The last write at an index wins; PMI erases the site.
func (p PlusMinusProduct) SetPlusMinus(index int, op PlusMinus) PlusMinusProduct {
	return PlusMinusProduct{sites: setSite(p.sites, index, op, PMI)}
}

// Plus returns a copy of p with σ+ at the given qubit index.
func (p PlusMinusProduct) Plus(index int) PlusMinusProduct { return p.SetPlusMinus(index, PMPlus) }

// Minus returns a copy of p with σ− at the given qubit index.
func (p PlusMinusProduct) Minus(index int) PlusMinusProduct { return p.SetPlusMinus(index, PMMinus) }

// Z returns a copy of p with Z at the given qubit index.
func (p PlusMinusProduct) Z(index int) PlusMinusProduct { return p.SetPlusMinus(index, PMZ) }

// Get returns the symbol acting on the given qubit index (PMI when the
// index is untouched).
func (p PlusMinusProduct) Get(index int) PlusMinus { return getSite(p.sites, index, PMI) }

// Factors returns the non-identity (index, symbol) entries in ascending
// index order.
func (p PlusMinusProduct) Factors() []PlusMinusFactor {
	out := make([]PlusMinusFactor, len(p.sites))
	for i, st := range p.sites {
		out[i] = PlusMinusFactor{Index: st.index, Op: st.op}
	}

	return out
}

// IsIdentity reports whether no site carries a non-identity symbol.
func (p PlusMinusProduct) IsIdentity() bool { return len(p.sites) == 0 }

// Sites returns one past the highest involved qubit index.
func (p PlusMinusProduct) Sites() int { return sitesSpan(p.sites) }

// String renders the canonical form, e.g. "0+1-2Z", or "I" for the
// identity.
func (p PlusMinusProduct) String() string { return formatSites(p.sites) }

// Equal reports structural equality of the canonical forms.
func (p PlusMinusProduct) Equal(other PlusMinusProduct) bool {
	return slices.Equal(p.sites, other.sites)
}

// HermitianConjugate returns the adjoint: σ+ and σ− swap while Z is
// self-adjoint; no sign is picked up.
func (p PlusMinusProduct) HermitianConjugate() (PlusMinusProduct, float64) {
	out := PlusMinusProduct{sites: slices.Clone(p.sites)}
	for i, st := range out.sites {
		switch st.op {
		case PMPlus:
			out.sites[i].op = PMMinus
		case PMMinus:
			out.sites[i].op = PMPlus
		}
	}

	return out, 1.0
}

// ParsePlusMinusProduct parses the canonical form produced by String.
func ParsePlusMinusProduct(s string) (PlusMinusProduct, error) {
	sites, err := parseSites(s, PMI, ParsePlusMinus)
	if err != nil {
		return PlusMinusProduct{}, err
	}

	return PlusMinusProduct{sites: sites}, nil
}
