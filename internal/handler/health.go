package handler

import (
	"net/http"

	"unit-converter-service/pkg/response"
)

// HealthCheck answers the root health probe.
func (h *ConverterHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"message": "Healthy"})
}

// APIUsage returns integration notes for frontend consumers.
func (h *ConverterHandler) APIUsage(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"note": "Currency conversion uses a public exchange rate provider (API key not required). " +
			"Use lowercase unit and category names as listed by /categories and /units?category=... " +
			"when populating selection menus.",
	})
}
