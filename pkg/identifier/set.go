package identifier

import "sort"

// Set is a set of identifier tokens.
type Set map[string]struct{}

// Add inserts tokens into the set.
func (s Set) Add(tokens ...string) {
	for _, t := range tokens {
		s[t] = struct{}{}
	}
}

// Has reports whether token is in the set. A nil set contains nothing.
func (s Set) Has(token string) bool {
	_, ok := s[token]
	return ok
}

// Len returns the number of tokens.
func (s Set) Len() int {
	return len(s)
}

// Union adds every token of other to s.
func (s Set) Union(other Set) {
	for t := range other {
		s[t] = struct{}{}
	}
}

// Intersects reports whether s and other share at least one token.
func (s Set) Intersects(other Set) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for t := range small {
		if large.Has(t) {
			return true
		}
	}
	return false
}

// Sorted returns the tokens in ascending numeric order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := Compare(out[i], out[j]); c != 0 {
			return c < 0
		}
		return out[i] < out[j]
	})
	return out
}
