// Package bosons models bosonic ladder-operator algebra on an infinite
// family of modes.
//
// A BosonProduct is a normal-ordered product of creation operators c_i
// followed by annihilation operators a_j, each index list sorted
// ascending; repeated indices are meaningful (bosonic modes admit
// multiple excitations) and arise from multiplication, though the public
// constructor rejects them to keep the mode-by-mode building contract
// uniform with the fermionic package. Multiplication normal-orders via
// the canonical commutation relation [a_i, c_j] = δ_ij, with one
// contraction per matching occurrence and no sign bookkeeping.
//
// HermitianBosonProduct names a conjugate pair {P, P†} by its
// representative; BosonHamiltonian stores self-adjoint operators on
// representatives, BosonOperator stores free complex sums, and
// LindbladNoiseOperator with LindbladOpenSystem cover dissipative
// dynamics. All containers share the sparse terms.Sum machinery,
// canonical text forms, and parsers.
package bosons
