package spins

import "slices"

// PauliProduct is a tensor product of single-site Pauli symbols, one per
// involved qubit index, canonically index-sorted. The zero value is the
// identity. PauliProduct is an immutable value: builder calls return new
// products.
type PauliProduct struct {
	sites []site[Pauli]
}

// PauliFactor is one (index, symbol) entry of a PauliProduct.
type PauliFactor struct {
	Index int
	Op    Pauli
}

// NewPauliProduct returns the identity product.
func NewPauliProduct() PauliProduct { return PauliProduct{} }

// SetPauli returns a copy of p with op written at the given qubit index.
// The last write at an index wins; PauliI erases the site.
func (p PauliProduct) SetPauli(index int, op Pauli) PauliProduct {
	return PauliProduct{sites: setSite(p.sites, index, op, PauliI)}
}

// X returns a copy of p with X at the given qubit index.
func (p PauliProduct) X(index int) PauliProduct { return p.SetPauli(index, PauliX) }

// Y returns a copy of p with Y at the given qubit index.
func (p PauliProduct) Y(index int) PauliProduct { return p.SetPauli(index, PauliY) }

// Z returns a copy of p with Z at the given qubit index.
func (p PauliProduct) Z(index int) PauliProduct { return p.SetPauli(index, PauliZ) }

// Get returns the symbol acting on the given qubit index (PauliI when the
// index is untouched).
func (p PauliProduct) Get(index int) Pauli { return getSite(p.sites, index, PauliI) }

// Factors returns the non-identity (index, symbol) entries in ascending
// index order.
func (p PauliProduct) Factors() []PauliFactor {
	out := make([]PauliFactor, len(p.sites))
	for i, st := range p.sites {
		out[i] = PauliFactor{Index: st.index, Op: st.op}
	}

	return out
}

// IsIdentity reports whether no site carries a non-identity symbol.
func (p PauliProduct) IsIdentity() bool { return len(p.sites) == 0 }

// Sites returns one past the highest involved qubit index.
func (p PauliProduct) Sites() int { return sitesSpan(p.sites) }

// String renders the canonical form, e.g. "0X1Y2Z", or "I" for the
// identity.
func (p PauliProduct) String() string { return formatSites(p.sites) }

// Equal reports structural equality of the canonical forms.
func (p PauliProduct) Equal(other PauliProduct) bool {
	return slices.Equal(p.sites, other.sites)
}

// HermitianConjugate returns the adjoint. Pauli strings are self-adjoint,
// so every PauliProduct is its own conjugate with sign +1.
func (p PauliProduct) HermitianConjugate() (PauliProduct, float64) {
	return p, 1.0
}

// Mul multiplies two Pauli products site-wise, returning the resulting
// product and the accumulated exact phase factor (a power of i).
func (p PauliProduct) Mul(other PauliProduct) (PauliProduct, complex128) {
	out := PauliProduct{sites: slices.Clone(p.sites)}
	phase := complex128(1)
	for _, st := range other.sites {
		combined, f := MulPauli(out.Get(st.index), st.op)
		phase *= f
		out = out.SetPauli(st.index, combined)
	}

	return out, phase
}

// ToDecoherence re-expresses the product in the decoherence alphabet:
// each Y becomes iY and contributes an exact factor of −i to the returned
// coefficient.
func (p PauliProduct) ToDecoherence() (DecoherenceProduct, complex128) {
	out := NewDecoherenceProduct()
	factor := complex128(1)
	for _, st := range p.sites {
		switch st.op {
		case PauliX:
			out = out.X(st.index)
		case PauliY:
			out = out.IY(st.index)
			factor *= complex(0, -1)
		case PauliZ:
			out = out.Z(st.index)
		}
	}

	return out, factor
}

// ParsePauliProduct parses the canonical form produced by String.
func ParsePauliProduct(s string) (PauliProduct, error) {
	sites, err := parseSites(s, PauliI, ParsePauli)
	if err != nil {
		return PauliProduct{}, err
	}

	return PauliProduct{sites: sites}, nil
}
