package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_KnownValues(t *testing.T) {
	testCases := []struct {
		name     string
		category Category
		from     string
		to       string
		value    float64
		want     float64
	}{
		{name: "kilometers to meters", category: CategoryLength, from: "kilometers", to: "meters", value: 1, want: 1000},
		{name: "meters to centimeters", category: CategoryLength, from: "meters", to: "centimeters", value: 2, want: 200},
		{name: "miles to meters", category: CategoryLength, from: "miles", to: "meters", value: 1, want: 1609.344},
		{name: "pounds to kilograms", category: CategoryWeight, from: "pounds", to: "kilograms", value: 1, want: 0.45359237},
		{name: "tons to kilograms", category: CategoryWeight, from: "tons", to: "kilograms", value: 1, want: 1000},
		{name: "celsius to fahrenheit freezing", category: CategoryTemperature, from: "celsius", to: "fahrenheit", value: 0, want: 32},
		{name: "fahrenheit to celsius boiling", category: CategoryTemperature, from: "fahrenheit", to: "celsius", value: 212, want: 100},
		{name: "celsius to kelvin", category: CategoryTemperature, from: "celsius", to: "kelvin", value: 0, want: 273.15},
		{name: "kelvin to celsius", category: CategoryTemperature, from: "kelvin", to: "celsius", value: 273.15, want: 0},
		{name: "mph to m/s", category: CategorySpeed, from: "mph", to: "m/s", value: 1, want: 0.44704},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Convert(tc.category, tc.from, tc.to, tc.value)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestConvert_IdentityForEveryUnit(t *testing.T) {
	for _, category := range []Category{CategoryLength, CategoryWeight, CategorySpeed, CategoryTemperature} {
		units, err := Units(category)
		require.NoError(t, err)
		for _, unit := range units {
			got, err := Convert(category, unit, unit, 42.5)
			require.NoError(t, err, "category %s unit %s", category, unit)
			if category == CategoryTemperature {
				// Same-unit temperature conversions short-circuit and
				// must return the input bit-for-bit.
				assert.Equal(t, 42.5, got, "category %s unit %s", category, unit)
			} else {
				assert.InDelta(t, 42.5, got, 1e-9, "category %s unit %s", category, unit)
			}
		}
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	testCases := []struct {
		category Category
		a, b     string
	}{
		{CategoryLength, "meters", "inches"},
		{CategoryLength, "kilometers", "miles"},
		{CategoryWeight, "kilograms", "ounces"},
		{CategoryWeight, "stones", "grams"},
		{CategorySpeed, "km/h", "knots"},
		{CategoryTemperature, "fahrenheit", "kelvin"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.category)+" "+tc.a+" <-> "+tc.b, func(t *testing.T) {
			forward, err := Convert(tc.category, tc.a, tc.b, 123.456)
			require.NoError(t, err)
			back, err := Convert(tc.category, tc.b, tc.a, forward)
			require.NoError(t, err)
			assert.InDelta(t, 123.456, back, 1e-9)
		})
	}
}

func TestConvert_UnknownUnit(t *testing.T) {
	testCases := []struct {
		name      string
		category  Category
		from, to  string
		wantField string
		wantUnit  string
	}{
		{name: "bad from unit", category: CategoryLength, from: "furlongs", to: "meters", wantField: "from_unit", wantUnit: "furlongs"},
		{name: "bad to unit", category: CategoryWeight, from: "kilograms", to: "slugs", wantField: "to_unit", wantUnit: "slugs"},
		{name: "bad temperature unit", category: CategoryTemperature, from: "rankine", to: "celsius", wantField: "from_unit", wantUnit: "rankine"},
		{name: "bad temperature identity", category: CategoryTemperature, from: "rankine", to: "rankine", wantField: "from_unit", wantUnit: "rankine"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Convert(tc.category, tc.from, tc.to, 1)
			var unitErr *UnitError
			require.ErrorAs(t, err, &unitErr)
			assert.Equal(t, tc.wantField, unitErr.Field)
			assert.Equal(t, tc.wantUnit, unitErr.Unit)
			assert.NotEmpty(t, unitErr.Supported)
		})
	}
}

func TestConvert_UnknownCategory(t *testing.T) {
	_, err := Convert("volume", "liters", "gallons", 1)
	var categoryErr *CategoryError
	require.ErrorAs(t, err, &categoryErr)
	assert.Equal(t, "volume", categoryErr.Category)
	assert.Equal(t, CategoryKeys(), categoryErr.Supported)
}

func TestUnits_UnknownCategory(t *testing.T) {
	_, err := Units("volume")
	var categoryErr *CategoryError
	require.True(t, errors.As(err, &categoryErr))
}

func TestCategories_StableListing(t *testing.T) {
	infos := Categories()
	require.Len(t, infos, 4)
	assert.Equal(t, []CategoryInfo{
		{Key: "length", Display: "Length"},
		{Key: "weight", Display: "Weight"},
		{Key: "temperature", Display: "Temperature"},
		{Key: "speed", Display: "Speed"},
	}, infos)
}

func TestUnits_Listing(t *testing.T) {
	units, err := Units(CategorySpeed)
	require.NoError(t, err)
	assert.Equal(t, []string{"m/s", "km/h", "mph", "ft/s", "knots"}, units)

	units, err = Units(CategoryTemperature)
	require.NoError(t, err)
	assert.Equal(t, []string{"celsius", "fahrenheit", "kelvin"}, units)
}
