package spins

import "slices"

// DecoherenceProduct is a tensor product of single-site decoherence
// symbols {X, iY, Z}, the canonical key family for Lindblad noise terms.
// The zero value is the identity; builder calls return new products.
type DecoherenceProduct struct {
	sites []site[Decoherence]
}

// DecoherenceFactor is one (index, symbol) entry of a DecoherenceProduct.
type DecoherenceFactor struct {
	Index int
	Op    Decoherence
}

// NewDecoherenceProduct returns the identity product.
func NewDecoherenceProduct() DecoherenceProduct { return DecoherenceProduct{} }

// SetDecoherence returns a copy of d with op written at the given qubit
// index. The last write at an index wins; DecI erases the site.
func (d DecoherenceProduct) SetDecoherence(index int, op Decoherence) DecoherenceProduct {
	return DecoherenceProduct{sites: setSite(d.sites, index, op, DecI)}
}

// X returns a copy of d with X at the given qubit index.
func (d DecoherenceProduct) X(index int) DecoherenceProduct { return d.SetDecoherence(index, DecX) }

// IY returns a copy of d with iY at the given qubit index.
func (d DecoherenceProduct) IY(index int) DecoherenceProduct { return d.SetDecoherence(index, DecIY) }

// Z returns a copy of d with Z at the given qubit index.
func (d DecoherenceProduct) Z(index int) DecoherenceProduct { return d.SetDecoherence(index, DecZ) }

// Get returns the symbol acting on the given qubit index (DecI when the
// index is untouched).
func (d DecoherenceProduct) Get(index int) Decoherence { return getSite(d.sites, index, DecI) }

// Factors returns the non-identity (index, symbol) entries in ascending
// index order.
func (d DecoherenceProduct) Factors() []DecoherenceFactor {
	out := make([]DecoherenceFactor, len(d.sites))
	for i, st := range d.sites {
		out[i] = DecoherenceFactor{Index: st.index, Op: st.op}
	}

	return out
}

// IsIdentity reports whether no site carries a non-identity symbol.
func (d DecoherenceProduct) IsIdentity() bool { return len(d.sites) == 0 }

// Sites returns one past the highest involved qubit index.
func (d DecoherenceProduct) Sites() int { return sitesSpan(d.sites) }

// String renders the canonical form, e.g. "0X1iY2Z", or "I" for the
// identity.
func (d DecoherenceProduct) String() string { return formatSites(d.sites) }

// Equal reports structural equality of the canonical forms.
func (d DecoherenceProduct) Equal(other DecoherenceProduct) bool {
	return slices.Equal(d.sites, other.sites)
}

// HermitianConjugate returns the adjoint: X and Z are self-adjoint while
// (iY)† = −iY, so the conjugate keeps the same symbols and flips the sign
// once per iY site.
func (d DecoherenceProduct) HermitianConjugate() (DecoherenceProduct, float64) {
	sign := 1.0
	for _, st := range d.sites {
		if st.op == DecIY {
			sign = -sign
		}
	}

	return d, sign
}

// ToPauli re-expresses the product in the Pauli alphabet: each iY becomes
// Y and contributes an exact factor of i to the returned coefficient.
func (d DecoherenceProduct) ToPauli() (PauliProduct, complex128) {
	out := NewPauliProduct()
	factor := complex128(1)
	for _, st := range d.sites {
		switch st.op {
		case DecX:
			out = out.X(st.index)
		case DecIY:
			out = out.Y(st.index)
			factor *= complex(0, 1)
		case DecZ:
			out = out.Z(st.index)
		}
	}

	return out, factor
}

// ParseDecoherenceProduct parses the canonical form produced by String.
func ParseDecoherenceProduct(s string) (DecoherenceProduct, error) {
	sites, err := parseSites(s, DecI, ParseDecoherence)
	if err != nil {
		return DecoherenceProduct{}, err
	}

	return DecoherenceProduct{sites: sites}, nil
}
