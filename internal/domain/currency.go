// domain/currency.go
package domain

import "context"

// Conversion is the provider's answer for a single currency conversion.
type Conversion struct {
	FromCurrency string
	ToCurrency   string
	Amount       float64
	Converted    float64
	Rate         float64
}

// ExchangeRateProvider resolves exchange rates and lists currency
// symbols. Implementations talk to an external rate service; errors are
// either *UpstreamError (provider unreachable or incomplete) or
// *UpstreamFailure (provider reported the conversion failed).
type ExchangeRateProvider interface {
	Convert(ctx context.Context, fromCurrency, toCurrency string, amount float64) (Conversion, error)
	Symbols(ctx context.Context) ([]string, error)
}
