// Package qusym is an exact symbolic algebra for quantum-mechanical
// operators — spin (qubit), bosonic, fermionic and mixed composite
// operators — represented as sparse sums of canonical index-labelled
// operator products with complex coefficients.
//
// 🚀 What is qusym?
//
//	A deterministic, purely computational library that brings together:
//		• Canonical products: Pauli strings, decoherence strings, plus/minus
//		  strings, bosonic and fermionic ladder-operator products, and mixed
//		  composites of all three families
//		• Sparse containers: operators, Hermitian-constrained Hamiltonians,
//		  Lindblad noise operators keyed by product pairs, and open systems
//		• The Jordan-Wigner transform: a lossless, bidirectional change of
//		  basis between the spin and fermionic operator algebras
//		• A canonical textual form with exact parse/print round-trips, plus
//		  a CBOR envelope codec for interchange
//
// ✨ Why choose qusym?
//
//   - Exact by construction – no numeric tolerance anywhere; coefficients
//     are exact values, zero entries are pruned, equality is structural
//   - Canonical everywhere – every product is stored index-sorted with
//     anticommutation signs folded into coefficients, so equality and
//     printing are always trustworthy
//   - Errors as values – every malformed construction or insertion is
//     reported at the offending call via errors.Is-matchable sentinels
//
// Under the hood, everything is organized under seven subpackages:
//
//	terms/    — generic sparse sum container, pair keys, canonical parsing
//	spins/    — Pauli, decoherence and plus/minus products & containers
//	bosons/   — bosonic ladder products & containers
//	fermions/ — fermionic ladder products & containers
//	mixed/    — composite multi-family products & containers
//	mappings/ — the Jordan-Wigner transform in both directions
//	codec/    — versioned CBOR envelopes over the canonical textual form
//
// Quick example:
//
//	pp := spins.NewPauliProduct().X(0).Y(1).Z(2)
//	op := spins.NewPauliOperator()
//	_ = op.Add(pp, complex(0.5, 0))
//	fo := mappings.SpinOperatorToFermion(op)   // exact fermionic expansion
//
// The core is single-threaded by design: containers are plain in-memory
// values with no implicit sharing; callers that need concurrency clone or
// merge via the addition operators.
package qusym
