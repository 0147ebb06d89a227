package facts

import "strconv"

// Field is a groupable attribute of a Fact
type Field uint8

const (
	FieldCategory Field = iota
	FieldSubcategory
	FieldCountry
	FieldGender
	FieldMaritalStatus
	FieldProduct
	FieldColor
	FieldStatus
	FieldYear
	FieldMonth
	FieldDayOfWeek
	FieldDate
	fieldCount
)

var fieldNames = [fieldCount]string{
	FieldCategory:      "category",
	FieldSubcategory:   "subcategory",
	FieldCountry:       "country",
	FieldGender:        "gender",
	FieldMaritalStatus: "maritalStatus",
	FieldProduct:       "product",
	FieldColor:         "color",
	FieldStatus:        "status",
	FieldYear:          "year",
	FieldMonth:         "month",
	FieldDayOfWeek:     "dayOfWeek",
	FieldDate:          "dateStr",
}

// FieldNames lists the wire names of every groupable field
func FieldNames() []string {
	out := make([]string, len(fieldNames))
	copy(out, fieldNames[:])
	return out
}

// ParseField resolves a wire name such as "category" or "dateStr"
func ParseField(s string) (Field, bool) {
	for i, n := range fieldNames {
		if n == s {
			return Field(i), true
		}
	}
	return 0, false
}

func (f Field) String() string {
	if f < fieldCount {
		return fieldNames[f]
	}
	return "field(" + strconv.Itoa(int(f)) + ")"
}

// Value returns the string form of the field on r, empty when r has no value for it
func (f Field) Value(r *Fact) string {
	switch f {
	case FieldCategory:
		return r.Category
	case FieldSubcategory:
		return r.Subcategory
	case FieldCountry:
		return r.Country
	case FieldGender:
		return r.Gender
	case FieldMaritalStatus:
		return r.MaritalStatus
	case FieldProduct:
		return r.ProductName
	case FieldColor:
		return r.Color
	case FieldStatus:
		return r.Status
	case FieldYear:
		return strconv.Itoa(r.Year)
	case FieldMonth:
		return strconv.Itoa(r.Month)
	case FieldDayOfWeek:
		return strconv.Itoa(int(r.DayOfWeek))
	case FieldDate:
		return r.DateStr
	}
	return ""
}

// Metric is a summable attribute of a Fact
type Metric uint8

const (
	MetricRevenue Metric = iota
	MetricQuantity
)

// ParseMetric resolves "revenue" or "quantity"
func ParseMetric(s string) (Metric, bool) {
	switch s {
	case "revenue":
		return MetricRevenue, true
	case "quantity":
		return MetricQuantity, true
	}
	return 0, false
}

func (m Metric) String() string {
	if m == MetricQuantity {
		return "quantity"
	}
	return "revenue"
}

// Value returns the metric on r as a float
func (m Metric) Value(r *Fact) float64 {
	if m == MetricQuantity {
		return float64(r.Quantity)
	}
	return r.Revenue
}
