package facts

import (
	"sort"
	"strings"
)

// Join denormalizes sales rows against the product and customer catalogs
// sales rows whose product or customer key does not resolve, or whose order date
// does not parse, are dropped without error
// the meta catalog is collected from the catalogs themselves so values with no surviving
// sales still show up as filter options
func Join(sales []Sale, products []Product, customers []Customer) ([]Fact, Meta) {
	cat := newCatalog()

	byKey := make(map[string]Product, len(products))
	for _, p := range products {
		p = withProductDefaults(p)
		byKey[p.Key] = p
		cat.categories.add(p.Category)
		cat.subcategories.add(p.Subcategory)
		cat.colors.add(p.Color)
		cat.products.add(p.Name)
	}

	byID := make(map[string]Customer, len(customers))
	for _, c := range customers {
		c = withCustomerDefaults(c)
		byID[c.ID] = c
		cat.countries.add(c.Country)
		cat.genders.add(c.Gender)
		cat.maritalStatuses.add(c.MaritalStatus)
	}

	out := make([]Fact, 0, len(sales))
	for _, s := range sales {
		when, ok := ParseOrderDate(s.OrderDate)
		if !ok {
			continue
		}
		p, ok := byKey[s.ProductKey]
		if !ok {
			continue
		}
		c, ok := byID[s.CustomerID]
		if !ok {
			continue
		}

		country := c.Country
		if country == "" {
			country = Unknown
		}

		out = append(out, Fact{
			OrderID:    s.OrderNumber,
			CustomerID: c.ID,

			Date:      when,
			DateStr:   ISODate(when),
			Year:      when.Year(),
			Month:     int(when.Month()),
			DayOfWeek: when.Weekday(),

			Revenue:  s.SalesAmount,
			Quantity: s.Quantity,

			ProductName: p.Name,
			Category:    p.Category,
			Subcategory: p.Subcategory,
			Color:       p.Color,
			Status:      p.Status,

			CustomerName:  strings.TrimSpace(c.FirstName + " " + c.LastName),
			Gender:        c.Gender,
			Country:       country,
			MaritalStatus: c.MaritalStatus,
		})
	}

	return out, cat.meta()
}

func withProductDefaults(p Product) Product {
	if p.Color == "" {
		p.Color = DefaultColor
	}
	if p.Status == "" {
		p.Status = DefaultStatus
	}
	return p
}

func withCustomerDefaults(c Customer) Customer {
	if c.MaritalStatus == "" {
		c.MaritalStatus = DefaultMaritalStatus
	}
	return c
}

// valueSet collects distinct non empty strings
type valueSet map[string]struct{}

func (s valueSet) add(v string) {
	if v != "" {
		s[v] = struct{}{}
	}
}

func (s valueSet) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

type catalog struct {
	categories, subcategories, colors, products valueSet
	countries, genders, maritalStatuses         valueSet
}

func newCatalog() *catalog {
	return &catalog{
		categories:      valueSet{},
		subcategories:   valueSet{},
		colors:          valueSet{},
		products:        valueSet{},
		countries:       valueSet{},
		genders:         valueSet{},
		maritalStatuses: valueSet{},
	}
}

func (c *catalog) meta() Meta {
	return Meta{
		Categories:      c.categories.sorted(),
		Subcategories:   c.subcategories.sorted(),
		Genders:         c.genders.sorted(),
		Countries:       c.countries.sorted(),
		MaritalStatuses: c.maritalStatuses.sorted(),
		Colors:          c.colors.sorted(),
		Products:        c.products.sorted(),
	}
}
