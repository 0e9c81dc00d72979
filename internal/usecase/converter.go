package usecase

import (
	"unit-converter-service/internal/domain"
)

// UnitConversion is the handler-facing result of a unit conversion.
type UnitConversion struct {
	Category       string
	FromUnit       string
	ToUnit         string
	InputValue     float64
	ConvertedValue float64
}

// ConverterUsecase wraps the pure conversion engine with the display
// rounding applied to every returned value.
type ConverterUsecase struct{}

func NewConverterUsecase() *ConverterUsecase {
	return &ConverterUsecase{}
}

// Categories lists the supported categories with display names.
func (uc *ConverterUsecase) Categories() []domain.CategoryInfo {
	return domain.Categories()
}

// Units lists the unit names for one category.
func (uc *ConverterUsecase) Units(category string) ([]string, error) {
	return domain.Units(domain.Category(category))
}

// Convert runs one unit conversion and rounds the result for display.
func (uc *ConverterUsecase) Convert(category, fromUnit, toUnit string, value float64) (UnitConversion, error) {
	result, err := domain.Convert(domain.Category(category), fromUnit, toUnit, value)
	if err != nil {
		return UnitConversion{}, err
	}
	return UnitConversion{
		Category:       category,
		FromUnit:       fromUnit,
		ToUnit:         toUnit,
		InputValue:     value,
		ConvertedValue: domain.RoundResult(result),
	}, nil
}
