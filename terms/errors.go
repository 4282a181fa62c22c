// Package terms: sentinel error set shared by every operator family.
// All construction and insertion surfaces MUST return these sentinels and
// tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions; panics are reserved for programmer
// errors in private helpers.

package terms

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "terms: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrDuplicateIndex is returned when the same mode index appears twice
	// within one creator or annihilator list of a ladder-operator product.
	ErrDuplicateIndex = errors.New("terms: duplicate ladder index")

	// ErrIndexOutOfRange is returned when a product references a site or
	// mode index beyond a container's declared bound. Bounded containers
	// MUST reject such insertions before any other work.
	ErrIndexOutOfRange = errors.New("terms: index out of declared range")

	// ErrNonHermitianCoefficient is returned when an insertion into a
	// Hermitian-constrained container would leave a self-conjugate product
	// with a coefficient whose imaginary part is non-zero.
	ErrNonHermitianCoefficient = errors.New("terms: non-real coefficient on self-conjugate product")

	// ErrSlotArityMismatch is returned when a mixed-system product does not
	// supply exactly one sub-product per declared subsystem slot.
	ErrSlotArityMismatch = errors.New("terms: subsystem slot count mismatch")

	// ErrParse is returned when a canonical textual form cannot be parsed
	// back into a product or operator.
	ErrParse = errors.New("terms: malformed canonical form")
)
