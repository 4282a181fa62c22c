// Package terms provides the shared foundation for all operator families:
// the Key contract every canonical product satisfies, the generic sparse
// linear-combination container Sum, ordered Pair keys for Lindblad noise
// terms, the canonical-text parser, and the sentinel error set used across
// the library.
//
// A Sum maps canonical product keys to exact complex coefficients. Entries
// with an exactly zero coefficient are never persisted, insertion order is
// irrelevant, and iteration is deterministic (ascending canonical string
// order) for any fixed content. Sums may optionally declare an index bound;
// bound mismatches between operands of an addition are reconciled by taking
// the union of the declared ranges.
//
// See the spins, bosons, fermions and mixed packages for the concrete
// product types built on top of this package.
package terms
