package handler

import (
	"net/http"
	"strings"

	"unit-converter-service/pkg/response"

	"github.com/go-chi/render"
)

// CurrencyConversionRequest is the /currency/convert request body.
type CurrencyConversionRequest struct {
	FromCurrency string  `json:"from_currency"`
	ToCurrency   string  `json:"to_currency"`
	Amount       float64 `json:"amount"`
}

// CurrencyConversionResponse is the /currency/convert response body.
type CurrencyConversionResponse struct {
	FromCurrency    string  `json:"from_currency"`
	ToCurrency      string  `json:"to_currency"`
	InputAmount     float64 `json:"input_amount"`
	ConvertedAmount float64 `json:"converted_amount"`
	Rate            float64 `json:"rate"`
}

// ConvertCurrency converts an amount between currencies through the
// exchange rate provider. Codes are upper-cased before use.
func (h *ConverterHandler) ConvertCurrency(w http.ResponseWriter, r *http.Request) {
	var req CurrencyConversionRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	fromCurrency := strings.ToUpper(req.FromCurrency)
	toCurrency := strings.ToUpper(req.ToCurrency)

	result, err := h.currencyUC.Convert(r.Context(), fromCurrency, toCurrency, req.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, CurrencyConversionResponse{
		FromCurrency:    result.FromCurrency,
		ToCurrency:      result.ToCurrency,
		InputAmount:     result.InputAmount,
		ConvertedAmount: result.ConvertedAmount,
		Rate:            result.Rate,
	})
}

// GetCurrencySymbols lists the provider's currency codes, sorted.
func (h *ConverterHandler) GetCurrencySymbols(w http.ResponseWriter, r *http.Request) {
	symbols, err := h.currencyUC.Symbols(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, symbols)
}
