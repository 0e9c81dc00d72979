package handler

import (
	"net/http"

	"unit-converter-service/pkg/response"

	"github.com/go-chi/render"
)

// UnitConversionRequest is the /convert request body.
type UnitConversionRequest struct {
	Category string  `json:"category"`
	FromUnit string  `json:"from_unit"`
	ToUnit   string  `json:"to_unit"`
	Value    float64 `json:"value"`
}

// UnitConversionResponse is the /convert response body.
type UnitConversionResponse struct {
	Category       string  `json:"category"`
	FromUnit       string  `json:"from_unit"`
	ToUnit         string  `json:"to_unit"`
	InputValue     float64 `json:"input_value"`
	ConvertedValue float64 `json:"converted_value"`
}

// GetCategories lists the supported unit categories.
func (h *ConverterHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.converterUC.Categories())
}

// GetUnits lists the unit names for the category query parameter.
func (h *ConverterHandler) GetUnits(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	units, err := h.converterUC.Units(category)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, units)
}

// ConvertUnits converts a value between two units of one category.
func (h *ConverterHandler) ConvertUnits(w http.ResponseWriter, r *http.Request) {
	var req UnitConversionRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.converterUC.Convert(req.Category, req.FromUnit, req.ToUnit, req.Value)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, UnitConversionResponse{
		Category:       result.Category,
		FromUnit:       result.FromUnit,
		ToUnit:         result.ToUnit,
		InputValue:     result.InputValue,
		ConvertedValue: result.ConvertedValue,
	})
}
