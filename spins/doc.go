// Package spins implements qubit operator products and their sparse
// containers.
//
// Three single-site alphabets are supported, each with its own product
// type:
//
//   - Pauli {X, Y, Z}: Hermitian; PauliProduct is a tensor product of
//     Pauli matrices, the natural basis for Hamiltonians.
//   - Decoherence {X, iY, Z}: squares to identity up to sign; the natural
//     basis for Lindblad noise terms (DecoherenceProduct).
//   - Plus/minus {+, -, Z}: raising/lowering form (PlusMinusProduct).
//
// Products are built incrementally by value-returning builder calls
// (pp.X(0).Y(1)) or parsed from the canonical form "0X1Y2Z" ("I" for the
// identity). Within one product the second write to a site overwrites the
// first; indices are kept sorted ascending.
//
// Containers: PauliOperator (general complex combinations),
// PauliHamiltonian (real coefficients — every Pauli string is
// self-conjugate), DecoherenceOperator, PlusMinusOperator,
// LindbladNoiseOperator and PlusMinusNoiseOperator (keyed by ordered
// product pairs), and LindbladOpenSystem pairing a Hamiltonian with noise.
package spins
