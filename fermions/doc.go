// Package fermions implements fermionic ladder-operator products and
// their sparse containers.
//
// A FermionProduct is a normal-ordered string of creation operators
// followed by annihilation operators, each list sorted strictly ascending
// by orbital index — a repeated index within one list is algebraically
// zero (Pauli exclusion) and is rejected at construction with
// terms.ErrDuplicateIndex. Reordering an arbitrary index sequence into
// canonical form flips the sign of the accompanying coefficient once per
// anticommuting swap; CanonicalFermionPair tracks that sign explicitly.
//
// The canonical textual form writes creators then annihilators, e.g.
// "c0c1a0a2", with "I" for the identity.
//
// HermitianFermionProduct stores a single representative of each
// conjugate pair {P, P†}: the member whose creator sequence compares no
// greater than its annihilator sequence. A FermionHamiltonian keyed by
// representatives therefore describes a self-adjoint operator; diagonal
// (self-conjugate) entries must carry exactly real coefficients.
//
// Product multiplication resolves the anticommutation relation
// {a_i, a_j†} = δ_ij recursively, producing an exact normal-ordered
// expansion; the Jordan-Wigner transform in package mappings is built on
// it.
package fermions
