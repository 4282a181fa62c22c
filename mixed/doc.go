// Package mixed models operators acting on several quantum subsystems
// at once: a fixed number of spin slots, boson slots, and fermion slots.
//
// A MixedProduct is a tensor product with one spins.PauliProduct per
// spin slot, one bosons.BosonProduct per boson slot, and one
// fermions.FermionProduct per fermion slot; its canonical text form
// joins the slots as "S0X1Y:Bc0a1:Fc0a0:" with one prefixed, colon
// terminated segment per slot. MixedDecoherenceProduct carries
// decoherence spin slots for Lindblad noise terms, and
// HermitianMixedProduct names conjugate pairs by a representative
// chosen from the boson slots first and the fermion slots second.
//
// Containers (MixedOperator, MixedHamiltonian, MixedNoiseOperator,
// MixedOpenSystem) fix their slot counts at construction and reject
// entries of any other shape with terms.ErrSlotArityMismatch.
package mixed
