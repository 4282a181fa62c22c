package spins

import (
	"fmt"

	"github.com/qusym/qusym/terms"
)

// Pauli is a single-site Pauli symbol. The identity is never stored inside
// a product; it exists so builders can erase a site.
type Pauli uint8

// Single-site Pauli symbols.
const (
	PauliI Pauli = iota
	PauliX
	PauliY
	PauliZ
)

func (p Pauli) String() string {
	switch p {
	case PauliX:
		return "X"
	case PauliY:
		return "Y"
	case PauliZ:
		return "Z"
	default:
		return "I"
	}
}

// ParsePauli converts a single-symbol token back into a Pauli.
func ParsePauli(s string) (Pauli, error) {
	switch s {
	case "I":
		return PauliI, nil
	case "X":
		return PauliX, nil
	case "Y":
		return PauliY, nil
	case "Z":
		return PauliZ, nil
	default:
		return PauliI, fmt.Errorf("unknown Pauli symbol %q: %w", s, terms.ErrParse)
	}
}

// MulPauli multiplies two single-site Pauli symbols, returning the
// resulting symbol together with the exact phase factor:
// X·Y = iZ, Y·X = −iZ, and cyclic permutations; equal symbols square to
// the identity.
func MulPauli(left, right Pauli) (Pauli, complex128) {
	switch {
	case left == PauliI:
		return right, 1
	case right == PauliI:
		return left, 1
	case left == right:
		return PauliI, 1
	}
	// The remaining six cases are the cyclic (phase +i) and anti-cyclic
	// (phase −i) pairs.
	third := PauliX ^ PauliY ^ PauliZ ^ left ^ right
	if (left == PauliX && right == PauliY) ||
		(left == PauliY && right == PauliZ) ||
		(left == PauliZ && right == PauliX) {
		return third, complex(0, 1)
	}

	return third, complex(0, -1)
}

// Decoherence is a single-site symbol from the decoherence alphabet
// {X, iY, Z}. Unlike the Pauli alphabet it is not Hermitian: (iY)† = −iY.
type Decoherence uint8

// Single-site decoherence symbols.
const (
	DecI Decoherence = iota
	DecX
	DecIY
	DecZ
)

func (d Decoherence) String() string {
	switch d {
	case DecX:
		return "X"
	case DecIY:
		return "iY"
	case DecZ:
		return "Z"
	default:
		return "I"
	}
}

// ParseDecoherence converts a single-symbol token back into a Decoherence.
func ParseDecoherence(s string) (Decoherence, error) {
	switch s {
	case "I":
		return DecI, nil
	case "X":
		return DecX, nil
	case "iY":
		return DecIY, nil
	case "Z":
		return DecZ, nil
	default:
		return DecI, fmt.Errorf("unknown decoherence symbol %q: %w", s, terms.ErrParse)
	}
}

// PlusMinus is a single-site symbol from the plus/minus alphabet
// {+, −, Z}: σ+ raises, σ− lowers, Z is diagonal.
type PlusMinus uint8

// Single-site plus/minus symbols.
const (
	PMI PlusMinus = iota
	PMPlus
	PMMinus
	PMZ
)

func (p PlusMinus) String() string {
	switch p {
	case PMPlus:
		return "+"
	case PMMinus:
		return "-"
	case PMZ:
		return "Z"
	default:
		return "I"
	}
}

// ParsePlusMinus converts a single-symbol token back into a PlusMinus.
func ParsePlusMinus(s string) (PlusMinus, error) {
	switch s {
	case "I":
		return PMI, nil
	case "+":
		return PMPlus, nil
	case "-":
		return PMMinus, nil
	case "Z":
		return PMZ, nil
	default:
		return PMI, fmt.Errorf("unknown plus/minus symbol %q: %w", s, terms.ErrParse)
	}
}
