package terms

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// SortSigned sorts a ladder-operator index list ascending by adjacent
// transpositions, reporting whether a duplicate index was seen and the
// parity (number of swaps mod 2 matters) accumulated by the reordering.
// For fermionic lists an odd parity flips the sign of the accompanying
// coefficient; bosonic callers ignore it. The input slice is not modified.
func SortSigned(indices []int) (sorted []int, duplicate bool, parity int) {
	sorted = append([]int(nil), indices...)
	for outer := 0; outer < len(sorted); outer++ {
	scan:
		for inner := outer - 1; inner >= 0; inner-- {
			switch {
			case sorted[inner] > sorted[inner+1]:
				sorted[inner], sorted[inner+1] = sorted[inner+1], sorted[inner]
				parity++
			case sorted[inner] == sorted[inner+1]:
				duplicate = true
				break scan
			default:
				break scan
			}
		}
	}

	return sorted, duplicate, parity % 2
}

// IsStrictlyAscending reports whether indices are sorted ascending with no
// repeats.
func IsStrictlyAscending(indices []int) bool {
	for i := 1; i < len(indices); i++ {
		if indices[i-1] >= indices[i] {
			return false
		}
	}

	return true
}

// FormatLadder renders creator/annihilator index lists in the canonical
// ladder form, e.g. "c0c1a0a2". Empty lists render as the identity "I".
func FormatLadder(creators, annihilators []int) string {
	if len(creators) == 0 && len(annihilators) == 0 {
		return "I"
	}
	var b strings.Builder
	for _, c := range creators {
		b.WriteByte('c')
		b.WriteString(strconv.Itoa(c))
	}
	for _, a := range annihilators {
		b.WriteByte('a')
		b.WriteString(strconv.Itoa(a))
	}

	return b.String()
}

// ParseLadder scans the "c{i}...a{j}..." form produced by FormatLadder.
// Creators must precede annihilators.
func ParseLadder(s string) (creators, annihilators []int, err error) {
	if s == "I" || s == "" {
		return nil, nil, nil
	}
	rest := s
	parsingCreators := true
	for len(rest) > 0 {
		kind := rest[0]
		if kind != 'c' && kind != 'a' {
			return nil, nil, fmt.Errorf("ladder product %q: expected c or a, found %q: %w", s, string(kind), ErrParse)
		}
		digits := 1
		for digits < len(rest) && unicode.IsDigit(rune(rest[digits])) {
			digits++
		}
		if digits == 1 {
			return nil, nil, fmt.Errorf("ladder product %q: missing mode index: %w", s, ErrParse)
		}
		index, convErr := strconv.Atoi(rest[1:digits])
		if convErr != nil {
			return nil, nil, fmt.Errorf("ladder product %q: bad mode index: %w", s, ErrParse)
		}
		switch kind {
		case 'c':
			if !parsingCreators {
				return nil, nil, fmt.Errorf("ladder product %q: creator after annihilator: %w", s, ErrParse)
			}
			creators = append(creators, index)
		case 'a':
			parsingCreators = false
			annihilators = append(annihilators, index)
		}
		rest = rest[digits:]
	}

	return creators, annihilators, nil
}
