package normalize

// Canonical gender and country labels
const (
	Unknown = "Unknown"
	Male    = "Male"
	Female  = "Female"
)

// countryAliases maps upper cased source spellings to display names
var countryAliases = map[string]string{
	"USA":            "United States",
	"US":             "United States",
	"UNITED STATES":  "United States",
	"UK":             "United Kingdom",
	"UNITED KINGDOM": "United Kingdom",
	"DE":             "Germany",
	"GERMANY":        "Germany",
	"FRANCE":         "France",
	"AUSTRALIA":      "Australia",
	"CANADA":         "Canada",
	"UNKNOWN":        Unknown,
}

// Country returns the display name for a raw country value
// aliases win, anything else is title cased, empty is Unknown
func Country(raw string) string {
	k := Key(raw)
	if k == "" {
		return Unknown
	}
	if v, ok := countryAliases[k]; ok {
		return v
	}
	return Title(raw)
}

// Gender folds M/MALE and F/FEMALE codes, everything else is Unknown
func Gender(raw string) string {
	switch Key(raw) {
	case "M", "MALE":
		return Male
	case "F", "FEMALE":
		return Female
	}
	return Unknown
}
