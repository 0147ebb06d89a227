// Package facts builds the denormalized sales fact table from the normalized source tables
package facts

import "time"

// Sale is one row of the sales fact source
type Sale struct {
	OrderNumber string
	ProductKey  string
	CustomerID  string
	OrderDate   string // M/D/YYYY as exported by the warehouse
	SalesAmount float64
	Quantity    int
	Price       float64
}

// Product is one row of the product dimension
type Product struct {
	Key         string
	Name        string
	CategoryKey string
	Category    string
	Subcategory string
	Cost        float64
	Color       string // optional, defaults to DefaultColor
	Status      string // optional, defaults to DefaultStatus
}

// Customer is one row of the customer dimension
type Customer struct {
	ID            string
	FirstName     string
	LastName      string
	Gender        string
	Country       string
	MaritalStatus string // optional, defaults to DefaultMaritalStatus
	BirthDate     string
	Email         string
}

// DateRow is one row of the date dimension
type DateRow struct {
	Date      string
	Year      int
	Month     int
	DayOfWeek int
	IsWeekend bool
}

// Tables groups the four source tables a join consumes
type Tables struct {
	Sales     []Sale
	Products  []Product
	Customers []Customer
	Dates     []DateRow
}

// Defaults applied by the joiner when a source leaves a field empty
const (
	Unknown              = "Unknown"
	DefaultColor         = Unknown
	DefaultStatus        = "Current"
	DefaultMaritalStatus = "S"
)

// Fact is one denormalized sales line item
// facts are shared by every reader of a Snapshot and must not be mutated
type Fact struct {
	OrderID    string
	CustomerID string

	Date      time.Time
	DateStr   string // YYYY-MM-DD
	Year      int
	Month     int          // 1-12
	DayOfWeek time.Weekday // 0 is Sunday

	Revenue  float64
	Quantity int

	ProductName string
	Category    string
	Subcategory string
	Color       string
	Status      string

	CustomerName  string
	Gender        string
	Country       string
	MaritalStatus string
}

// Meta is the sorted distinct value catalog per dimension taken from the source catalogs
type Meta struct {
	Categories      []string `json:"categories"`
	Subcategories   []string `json:"subcategories"`
	Genders         []string `json:"genders"`
	Countries       []string `json:"countries"`
	MaritalStatuses []string `json:"maritalStatuses"`
	Colors          []string `json:"colors"`
	Products        []string `json:"products"`
}
