// Package mappings implements the Jordan-Wigner transform between the
// spin and fermionic operator algebras, in both directions and lifted to
// every container kind.
//
// The convention maps an empty fermionic orbital to the spin state |0>
// and an occupied orbital to |1>. Per spin site symbol:
//
//	Z_i  → 1 − 2·n_i
//	X_i  → Z-string(<i) · (c_i + a_i)
//	Y_i  → Z-string(<i) · (i·c_i − i·a_i)
//	σ+_i → Z-string(<i) · a_i
//	σ−_i → Z-string(<i) · c_i
//	iY_i → Z-string(<i) · (a_i − c_i)
//
// where Z-string(<i) is the product of (1 − 2·n_k) over k < i, expanded
// multiplicatively into ladder terms. The inverse maps c_i and a_i to
// Z_0…Z_{i−1}·(X_i ∓ i·Y_i)/2. Hamiltonians transform into Hamiltonians
// (the transform preserves self-adjointness exactly, including in IEEE
// arithmetic), Lindblad noise operators transform pair-side by
// pair-side with identity components dropped, and open systems
// transform component-wise. For mixed containers the transform is
// family-local: it rewrites one chosen spin slot into a new fermion
// slot and passes every other slot through unchanged.
package mappings
