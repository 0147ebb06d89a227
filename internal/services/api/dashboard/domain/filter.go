// Package domain holds DTOs and ports for dashboard http and service contracts
package domain

import (
	"bytes"
	"time"

	"salesboard/internal/core/filter"
	perr "salesboard/internal/platform/errors"

	"github.com/goccy/go-json"
)

// Selection is the wire form of one dimension filter
// it decodes "ALL", a single value, or a list of values; null or absent means ALL
type Selection struct {
	sel filter.Selection
}

// SelectAll returns the ALL selection
func SelectAll() Selection { return Selection{} }

// Select returns an explicit selection of values
func Select(values ...string) Selection { return Selection{sel: filter.OneOf(values...)} }

// Core returns the engine selection
func (s Selection) Core() filter.Selection { return s.sel }

// UnmarshalJSON implements json.Unmarshaler
func (s *Selection) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = SelectAll()
		return nil
	}
	switch b[0] {
	case '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		if v == filter.All {
			*s = SelectAll()
			return nil
		}
		*s = Select(v)
		return nil
	case '[':
		var vs []string
		if err := json.Unmarshal(b, &vs); err != nil {
			return perr.JSONErrf("selection list must hold strings")
		}
		*s = Select(vs...)
		return nil
	}
	return perr.JSONErrf("selection must be \"ALL\", a string or a list of strings")
}

// MarshalJSON implements json.Marshaler
func (s Selection) MarshalJSON() ([]byte, error) {
	if s.sel.IsAll() {
		return json.Marshal(filter.All)
	}
	return json.Marshal(s.sel.Values())
}

// Filter is the filter body shared by every dashboard and performance request
// dateRange and compareMode are carried but never narrow the facts
type Filter struct {
	Category      Selection `json:"category"`
	Subcategory   Selection `json:"subcategory"`
	Country       Selection `json:"country"`
	Gender        Selection `json:"gender"`
	MaritalStatus Selection `json:"maritalStatus"`
	Product       Selection `json:"product"`
	DateRange     []*string `json:"dateRange,omitempty" validate:"omitempty,max=2" example:"2013-01-01"`
	CompareMode   bool      `json:"compareMode"`
}

// Spec converts the wire filter into an engine spec
func (f Filter) Spec() (filter.Spec, error) {
	s := filter.Everything().
		With(filter.Category, f.Category.sel).
		With(filter.Subcategory, f.Subcategory.sel).
		With(filter.Country, f.Country.sel).
		With(filter.Gender, f.Gender.sel).
		With(filter.MaritalStatus, f.MaritalStatus.sel).
		With(filter.Product, f.Product.sel)
	s.CompareMode = f.CompareMode

	if len(f.DateRange) > 2 {
		return s, perr.WithField(perr.InvalidArgf("date range holds at most two bounds"), "dateRange")
	}
	bounds := [2]**time.Time{&s.DateRange.From, &s.DateRange.To}
	for i, raw := range f.DateRange {
		if raw == nil || *raw == "" {
			continue
		}
		t, err := parseBound(*raw)
		if err != nil {
			return s, perr.WithField(perr.InvalidArgf("invalid date %q", *raw), "dateRange")
		}
		*bounds[i] = &t
	}
	return s, nil
}

func parseBound(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
