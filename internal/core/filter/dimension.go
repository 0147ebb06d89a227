// Package filter evaluates multi-select dimension filters over facts and computes
// leave-one-out facet counts
package filter

import "salesboard/internal/core/facts"

// Dimension is one of the six filterable fact attributes
type Dimension uint8

const (
	Category Dimension = iota
	Subcategory
	Country
	Gender
	MaritalStatus
	Product
	numDimensions
)

// Dimensions lists every filterable dimension in evaluation order
var Dimensions = [numDimensions]Dimension{Category, Subcategory, Country, Gender, MaritalStatus, Product}

var dimensionFields = [numDimensions]facts.Field{
	Category:      facts.FieldCategory,
	Subcategory:   facts.FieldSubcategory,
	Country:       facts.FieldCountry,
	Gender:        facts.FieldGender,
	MaritalStatus: facts.FieldMaritalStatus,
	Product:       facts.FieldProduct,
}

// ParseDimension resolves a wire name such as "maritalStatus"
func ParseDimension(s string) (Dimension, bool) {
	for _, d := range Dimensions {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}

// Field returns the fact field backing d
func (d Dimension) Field() facts.Field { return dimensionFields[d] }

func (d Dimension) String() string { return d.Field().String() }

// Value returns the value of d on r
func (d Dimension) Value(r *facts.Fact) string {
	switch d {
	case Category:
		return r.Category
	case Subcategory:
		return r.Subcategory
	case Country:
		return r.Country
	case Gender:
		return r.Gender
	case MaritalStatus:
		return r.MaritalStatus
	case Product:
		return r.ProductName
	}
	return ""
}
