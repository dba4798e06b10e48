// Package identifier extracts case/contract numbers from free-form cell text.
//
// A cell is split on any run of commas and/or whitespace (no-break spaces
// included); fragments made only of decimal digits are identifier tokens,
// everything else is ignored.
package identifier

import (
	"regexp"
	"sort"
	"strings"

	"github.com/agentstation/casematch/pkg/dataset"
)

var (
	separators = regexp.MustCompile(`[,\s\p{Z}]+`)
	digitsOnly = regexp.MustCompile(`^\d+$`)
	anyDigit   = regexp.MustCompile(`\d`)
)

// Separator joins tokens in canonical form.
const Separator = ", "

// Tokens returns the numeric tokens of a cell in input order, repeats included.
func Tokens(c dataset.Cell) []string {
	if c.IsEmpty() {
		return nil
	}
	raw := strings.TrimSpace(c.String())
	if raw == "" {
		return nil
	}
	var tokens []string
	for _, fragment := range separators.Split(raw, -1) {
		if digitsOnly.MatchString(fragment) {
			tokens = append(tokens, fragment)
		}
	}
	return tokens
}

// ExtractTokens returns the set of numeric tokens of a cell.
func ExtractTokens(c dataset.Cell) Set {
	set := make(Set)
	for _, token := range Tokens(c) {
		set.Add(token)
	}
	return set
}

// Canonicalize sorts a cell's tokens by numeric value and joins them with ", ".
// A cell without tokens is returned unchanged so non-numeric content survives.
func Canonicalize(c dataset.Cell) dataset.Cell {
	tokens := Tokens(c)
	if len(tokens) == 0 {
		return c
	}
	sort.SliceStable(tokens, func(i, j int) bool {
		return Compare(tokens[i], tokens[j]) < 0
	})
	return dataset.Text(strings.Join(tokens, Separator))
}

// HasDigit reports whether the cell's text contains at least one decimal digit.
func HasDigit(c dataset.Cell) bool {
	return !c.IsEmpty() && anyDigit.MatchString(c.String())
}

// LeadingToken returns the first numeric token of a cell in input order.
func LeadingToken(c dataset.Cell) (string, bool) {
	tokens := Tokens(c)
	if len(tokens) == 0 {
		return "", false
	}
	return tokens[0], true
}

// Compare orders two digit strings by integer value without parsing them, so
// identifiers longer than any machine integer still compare correctly.
func Compare(a, b string) int {
	a, b = trimZeros(a), trimZeros(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func trimZeros(s string) string {
	t := strings.TrimLeft(s, "0")
	if t == "" && s != "" {
		return "0"
	}
	return t
}
