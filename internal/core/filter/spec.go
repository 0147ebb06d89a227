package filter

import "time"

// All is the wire sentinel that lets every value of a dimension pass
const All = "ALL"

// Selection is either the all sentinel or an explicit set of accepted values
// the zero value is the all sentinel
type Selection struct {
	explicit bool
	values   map[string]struct{}
	order    []string
}

// AllValues returns the sentinel Selection
func AllValues() Selection { return Selection{} }

// OneOf returns an explicit Selection; an empty call accepts nothing
func OneOf(values ...string) Selection {
	s := Selection{explicit: true, values: make(map[string]struct{}, len(values))}
	for _, v := range values {
		if _, dup := s.values[v]; dup {
			continue
		}
		s.values[v] = struct{}{}
		s.order = append(s.order, v)
	}
	return s
}

// IsAll reports whether s is the sentinel
func (s Selection) IsAll() bool { return !s.explicit }

// Accepts reports whether v passes s
func (s Selection) Accepts(v string) bool {
	if !s.explicit {
		return true
	}
	_, ok := s.values[v]
	return ok
}

// Values returns the explicit values in first given order, nil for the sentinel
func (s Selection) Values() []string {
	if !s.explicit {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// DateRange is carried with a Spec but never evaluated against facts
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Spec is a complete filter state, one Selection per dimension
// Spec values are replaced wholesale; With returns a modified copy
type Spec struct {
	sel         [numDimensions]Selection
	DateRange   DateRange
	CompareMode bool
}

// Everything returns a Spec with every dimension at the sentinel
func Everything() Spec { return Spec{} }

// Get returns the Selection for d
func (s Spec) Get(d Dimension) Selection { return s.sel[d] }

// With returns a copy of s with d replaced by sel
func (s Spec) With(d Dimension, sel Selection) Spec {
	s.sel[d] = sel
	return s
}

// Active lists the dimensions with an explicit Selection
func (s Spec) Active() []Dimension {
	var out []Dimension
	for _, d := range Dimensions {
		if !s.sel[d].IsAll() {
			out = append(out, d)
		}
	}
	return out
}
