// domain/convert.go
package domain

// Convert changes value from one unit to another within a category.
// Linear categories go through the category's base unit; temperature
// goes through celsius with the usual formulas.
func Convert(category Category, fromUnit, toUnit string, value float64) (float64, error) {
	switch category {
	case CategoryLength, CategoryWeight, CategorySpeed:
		return convertLinear(category, fromUnit, toUnit, value)
	case CategoryTemperature:
		return convertTemperature(fromUnit, toUnit, value)
	default:
		return 0, &CategoryError{Category: string(category), Supported: CategoryKeys()}
	}
}

func convertLinear(category Category, fromUnit, toUnit string, value float64) (float64, error) {
	table, _ := scaleTable(category)
	fromScale, ok := table[fromUnit]
	if !ok {
		return 0, &UnitError{Field: "from_unit", Category: string(category), Unit: fromUnit, Supported: unitNames(table, category)}
	}
	toScale, ok := table[toUnit]
	if !ok {
		return 0, &UnitError{Field: "to_unit", Category: string(category), Unit: toUnit, Supported: unitNames(table, category)}
	}
	return value * fromScale / toScale, nil
}

func convertTemperature(fromUnit, toUnit string, value float64) (float64, error) {
	// No-op conversions return the input untouched so a round trip
	// through celsius cannot introduce float error.
	if fromUnit == toUnit {
		if !validTemperatureUnit(fromUnit) {
			return 0, &UnitError{Field: "from_unit", Category: string(CategoryTemperature), Unit: fromUnit, Supported: temperatureUnits}
		}
		return value, nil
	}

	var celsius float64
	switch fromUnit {
	case UnitCelsius:
		celsius = value
	case UnitFahrenheit:
		celsius = (value - 32) * 5 / 9
	case UnitKelvin:
		celsius = value - 273.15
	default:
		return 0, &UnitError{Field: "from_unit", Category: string(CategoryTemperature), Unit: fromUnit, Supported: temperatureUnits}
	}

	switch toUnit {
	case UnitCelsius:
		return celsius, nil
	case UnitFahrenheit:
		return celsius*9/5 + 32, nil
	case UnitKelvin:
		return celsius + 273.15, nil
	default:
		return 0, &UnitError{Field: "to_unit", Category: string(CategoryTemperature), Unit: toUnit, Supported: temperatureUnits}
	}
}

func validTemperatureUnit(unit string) bool {
	switch unit {
	case UnitCelsius, UnitFahrenheit, UnitKelvin:
		return true
	}
	return false
}
