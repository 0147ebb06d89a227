package filter

import "salesboard/internal/core/facts"

// Counts holds per value counts for each dimension
// values with no matching fact are absent
type Counts [numDimensions]map[string]int

// Of returns the counts for d
func (c Counts) Of(d Dimension) map[string]int { return c[d] }

// Cascading computes leave-one-out counts: for every dimension D, the facts passing all
// selections except D's are counted by their D value
// a fact failing exactly one dimension contributes only to that dimension's counts,
// a fact failing none contributes to all of them
func Cascading(rows []facts.Fact, s Spec) Counts {
	var out Counts
	for _, d := range Dimensions {
		out[d] = map[string]int{}
	}

	var values [numDimensions]string
	for i := range rows {
		r := &rows[i]
		failed := -1
		misses := 0
		for _, d := range Dimensions {
			values[d] = d.Value(r)
			if !s.sel[d].Accepts(values[d]) {
				misses++
				failed = int(d)
				if misses > 1 {
					break
				}
			}
		}
		switch misses {
		case 0:
			for _, d := range Dimensions {
				out[d][values[d]]++
			}
		case 1:
			out[failed][values[failed]]++
		}
	}
	return out
}
