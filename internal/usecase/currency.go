package usecase

import (
	"context"

	"unit-converter-service/internal/domain"
)

// CurrencyConversion is the handler-facing result of a currency
// conversion. Converted amount and rate are already display-rounded.
type CurrencyConversion struct {
	FromCurrency    string
	ToCurrency      string
	InputAmount     float64
	ConvertedAmount float64
	Rate            float64
}

// CurrencyUsecase delegates rate resolution to the configured provider
// and applies the display rounding policy on the way out.
type CurrencyUsecase struct {
	provider domain.ExchangeRateProvider
}

func NewCurrencyUsecase(provider domain.ExchangeRateProvider) *CurrencyUsecase {
	return &CurrencyUsecase{provider: provider}
}

// Convert resolves a currency conversion through the provider. Amount
// must be positive; currency codes must be non-empty.
func (uc *CurrencyUsecase) Convert(ctx context.Context, fromCurrency, toCurrency string, amount float64) (CurrencyConversion, error) {
	if fromCurrency == "" || toCurrency == "" {
		return CurrencyConversion{}, &domain.ValidationError{Message: "from_currency and to_currency are required"}
	}
	if amount <= 0 {
		return CurrencyConversion{}, &domain.ValidationError{Message: "amount must be greater than zero"}
	}

	conv, err := uc.provider.Convert(ctx, fromCurrency, toCurrency, amount)
	if err != nil {
		return CurrencyConversion{}, err
	}

	return CurrencyConversion{
		FromCurrency:    conv.FromCurrency,
		ToCurrency:      conv.ToCurrency,
		InputAmount:     conv.Amount,
		ConvertedAmount: domain.RoundResult(conv.Converted),
		Rate:            domain.RoundResult(conv.Rate),
	}, nil
}

// Symbols lists the provider's currency codes.
func (uc *CurrencyUsecase) Symbols(ctx context.Context) ([]string, error) {
	return uc.provider.Symbols(ctx)
}
