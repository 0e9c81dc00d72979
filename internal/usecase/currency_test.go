package usecase

import (
	"context"
	"errors"
	"testing"

	"unit-converter-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	conversion domain.Conversion
	symbols    []string
	err        error
}

func (f *fakeProvider) Convert(ctx context.Context, fromCurrency, toCurrency string, amount float64) (domain.Conversion, error) {
	if f.err != nil {
		return domain.Conversion{}, f.err
	}
	return f.conversion, nil
}

func (f *fakeProvider) Symbols(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.symbols, nil
}

func TestCurrencyUsecase_Convert_RoundsAmountAndRate(t *testing.T) {
	uc := NewCurrencyUsecase(&fakeProvider{
		conversion: domain.Conversion{
			FromCurrency: "USD",
			ToCurrency:   "EUR",
			Amount:       100,
			Converted:    91.23456789,
			Rate:         0.9123456789,
		},
	})

	got, err := uc.Convert(context.Background(), "USD", "EUR", 100)
	require.NoError(t, err)
	assert.Equal(t, "USD", got.FromCurrency)
	assert.Equal(t, "EUR", got.ToCurrency)
	assert.Equal(t, 100.0, got.InputAmount)
	assert.InDelta(t, 91.2346, got.ConvertedAmount, 1e-12)
	assert.InDelta(t, 0.912346, got.Rate, 1e-12)
}

func TestCurrencyUsecase_Convert_Validation(t *testing.T) {
	uc := NewCurrencyUsecase(&fakeProvider{})

	testCases := []struct {
		name   string
		from   string
		to     string
		amount float64
	}{
		{name: "zero amount", from: "USD", to: "EUR", amount: 0},
		{name: "negative amount", from: "USD", to: "EUR", amount: -5},
		{name: "missing from currency", from: "", to: "EUR", amount: 10},
		{name: "missing to currency", from: "USD", to: "", amount: 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Convert(context.Background(), tc.from, tc.to, tc.amount)
			var validation *domain.ValidationError
			require.ErrorAs(t, err, &validation)
		})
	}
}

func TestCurrencyUsecase_Convert_PropagatesProviderErrors(t *testing.T) {
	upstreamErr := &domain.UpstreamError{Op: "/convert", Err: errors.New("connection refused")}
	uc := NewCurrencyUsecase(&fakeProvider{err: upstreamErr})

	_, err := uc.Convert(context.Background(), "USD", "EUR", 10)
	var gotErr *domain.UpstreamError
	require.ErrorAs(t, err, &gotErr)
}

func TestCurrencyUsecase_Symbols(t *testing.T) {
	uc := NewCurrencyUsecase(&fakeProvider{symbols: []string{"EUR", "KES", "USD"}})

	symbols, err := uc.Symbols(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"EUR", "KES", "USD"}, symbols)
}
