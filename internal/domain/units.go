// domain/units.go
package domain

type Category string

const (
	CategoryLength      Category = "length"
	CategoryWeight      Category = "weight"
	CategoryTemperature Category = "temperature"
	CategorySpeed       Category = "speed"
)

// CategoryInfo is the shape returned by the categories listing.
type CategoryInfo struct {
	Key     string `json:"key"`
	Display string `json:"display"`
}

// Temperature unit names. Temperature has no scale table, it converts
// through explicit formulas in Convert.
const (
	UnitCelsius    = "celsius"
	UnitFahrenheit = "fahrenheit"
	UnitKelvin     = "kelvin"
)

// Scale factors are units-per-base-unit: value_in_base = value * scale.
// Bases: meters (length), kilograms (weight), meters/second (speed).
var lengthUnits = map[string]float64{
	"meters":      1.0,
	"kilometers":  1000.0,
	"centimeters": 0.01,
	"millimeters": 0.001,
	"miles":       1609.344,
	"yards":       0.9144,
	"feet":        0.3048,
	"inches":      0.0254,
}

var weightUnits = map[string]float64{
	"kilograms":  1.0,
	"grams":      0.001,
	"milligrams": 0.000001,
	"pounds":     0.45359237,
	"ounces":     0.0283495231,
	"stones":     6.35029318,
	"tons":       1000.0,
}

var speedUnits = map[string]float64{
	"m/s":   1.0,
	"km/h":  0.277778,
	"mph":   0.44704,
	"ft/s":  0.3048,
	"knots": 0.514444,
}

var temperatureUnits = []string{UnitCelsius, UnitFahrenheit, UnitKelvin}

var categoryDisplay = map[Category]string{
	CategoryLength:      "Length",
	CategoryWeight:      "Weight",
	CategoryTemperature: "Temperature",
	CategorySpeed:       "Speed",
}

// categoryOrder keeps listings stable across calls.
var categoryOrder = []Category{
	CategoryLength,
	CategoryWeight,
	CategoryTemperature,
	CategorySpeed,
}

// Categories returns every supported category with its display name,
// in a stable order.
func Categories() []CategoryInfo {
	infos := make([]CategoryInfo, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		infos = append(infos, CategoryInfo{Key: string(c), Display: categoryDisplay[c]})
	}
	return infos
}

// CategoryKeys returns the supported category names in listing order.
func CategoryKeys() []string {
	keys := make([]string, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		keys = append(keys, string(c))
	}
	return keys
}

// scaleTable returns the scale map for a linear category, or false for
// temperature and unknown categories.
func scaleTable(c Category) (map[string]float64, bool) {
	switch c {
	case CategoryLength:
		return lengthUnits, true
	case CategoryWeight:
		return weightUnits, true
	case CategorySpeed:
		return speedUnits, true
	default:
		return nil, false
	}
}

// Units returns the unit names for a category in table order for linear
// categories and fixed order for temperature. Unknown categories return
// a CategoryError.
func Units(c Category) ([]string, error) {
	if c == CategoryTemperature {
		units := make([]string, len(temperatureUnits))
		copy(units, temperatureUnits)
		return units, nil
	}
	table, ok := scaleTable(c)
	if !ok {
		return nil, &CategoryError{Category: string(c), Supported: CategoryKeys()}
	}
	return unitNames(table, c), nil
}

// unitNames lists a scale table's keys in a fixed per-category order so
// clients see deterministic listings.
func unitNames(table map[string]float64, c Category) []string {
	var order []string
	switch c {
	case CategoryLength:
		order = []string{"meters", "kilometers", "centimeters", "millimeters", "miles", "yards", "feet", "inches"}
	case CategoryWeight:
		order = []string{"kilograms", "grams", "milligrams", "pounds", "ounces", "stones", "tons"}
	case CategorySpeed:
		order = []string{"m/s", "km/h", "mph", "ft/s", "knots"}
	}
	names := make([]string, 0, len(table))
	for _, name := range order {
		if _, ok := table[name]; ok {
			names = append(names, name)
		}
	}
	return names
}
