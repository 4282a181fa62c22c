package spins

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/qusym/qusym/terms"
)

// siteSymbol constrains the three single-site alphabets.
type siteSymbol interface {
	comparable
	fmt.Stringer
}

// site pairs one qubit index with the symbol acting on it. Products keep
// their sites sorted ascending with at most one entry per index and never
// store the identity symbol.
type site[S siteSymbol] struct {
	index int
	op    S
}

// setSite returns a copy of sites with op written at index: last write
// wins at a given index, and writing the identity erases the site. The
// input slice is never mutated, so builder chains stay value-semantic.
func setSite[S siteSymbol](sites []site[S], index int, op S, identity S) []site[S] {
	out := make([]site[S], 0, len(sites)+1)
	inserted := false
	for _, st := range sites {
		switch {
		case st.index == index:
			inserted = true
			if op != identity {
				out = append(out, site[S]{index: index, op: op})
			}
		case st.index > index && !inserted:
			inserted = true
			if op != identity {
				out = append(out, site[S]{index: index, op: op})
			}
			out = append(out, st)
		default:
			out = append(out, st)
		}
	}
	if !inserted && op != identity {
		out = append(out, site[S]{index: index, op: op})
	}

	return out
}

// getSite returns the symbol at index, or the identity when unset.
func getSite[S siteSymbol](sites []site[S], index int, identity S) S {
	for _, st := range sites {
		if st.index == index {
			return st.op
		}
		if st.index > index {
			break
		}
	}

	return identity
}

// formatSites renders the canonical "<index><symbol>..." form, "I" for
// the empty product.
func formatSites[S siteSymbol](sites []site[S]) string {
	if len(sites) == 0 {
		return "I"
	}
	var b strings.Builder
	for _, st := range sites {
		b.WriteString(strconv.Itoa(st.index))
		b.WriteString(st.op.String())
	}

	return b.String()
}

// parseSites scans alternating index/symbol runs of the canonical form.
// Identity symbols are accepted and dropped; repeated indices follow the
// builder's last-write-wins rule.
func parseSites[S siteSymbol](s string, identity S, parseSym func(string) (S, error)) ([]site[S], error) {
	if s == "I" || s == "" {
		return nil, nil
	}
	if !unicode.IsDigit(rune(s[0])) {
		return nil, fmt.Errorf("spin product %q: missing leading site index: %w", s, terms.ErrParse)
	}
	var sites []site[S]
	rest := s
	for len(rest) > 0 {
		digits := 0
		for digits < len(rest) && unicode.IsDigit(rune(rest[digits])) {
			digits++
		}
		symLen := 0
		for digits+symLen < len(rest) && !unicode.IsDigit(rune(rest[digits+symLen])) {
			symLen++
		}
		if digits == 0 || symLen == 0 {
			return nil, fmt.Errorf("spin product %q: truncated site entry: %w", s, terms.ErrParse)
		}
		index, err := strconv.Atoi(rest[:digits])
		if err != nil {
			return nil, fmt.Errorf("spin product %q: bad site index: %w", s, terms.ErrParse)
		}
		op, err := parseSym(rest[digits : digits+symLen])
		if err != nil {
			return nil, err
		}
		sites = setSite(sites, index, op, identity)
		rest = rest[digits+symLen:]
	}

	return sites, nil
}

// sitesSpan returns one past the highest occupied index (0 when empty).
func sitesSpan[S siteSymbol](sites []site[S]) int {
	if len(sites) == 0 {
		return 0
	}

	return sites[len(sites)-1].index + 1
}
