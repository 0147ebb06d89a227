package filter

import "salesboard/internal/core/facts"

// Matches reports whether r passes every dimension of s
// the date range and compare flag are not predicates
func Matches(r *facts.Fact, s Spec) bool {
	for _, d := range Dimensions {
		if !s.sel[d].Accepts(d.Value(r)) {
			return false
		}
	}
	return true
}

// MatchesExcept is Matches with the Selection for skip ignored
func MatchesExcept(r *facts.Fact, s Spec, skip Dimension) bool {
	for _, d := range Dimensions {
		if d == skip {
			continue
		}
		if !s.sel[d].Accepts(d.Value(r)) {
			return false
		}
	}
	return true
}

// Apply returns the facts matching s in input order
// when s has no active dimension the input slice is returned as is
func Apply(rows []facts.Fact, s Spec) []facts.Fact {
	if len(s.Active()) == 0 {
		return rows
	}
	out := make([]facts.Fact, 0, len(rows)/2)
	for i := range rows {
		if Matches(&rows[i], s) {
			out = append(out, rows[i])
		}
	}
	return out
}
