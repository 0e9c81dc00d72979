package handler

import (
	"errors"
	"net/http"

	"unit-converter-service/internal/domain"
	"unit-converter-service/internal/usecase"
	"unit-converter-service/pkg/response"

	"go.uber.org/zap"
)

type ConverterHandler struct {
	converterUC *usecase.ConverterUsecase
	currencyUC  *usecase.CurrencyUsecase
	logger      *zap.Logger
}

func NewConverterHandler(
	converterUC *usecase.ConverterUsecase,
	currencyUC *usecase.CurrencyUsecase,
	logger *zap.Logger,
) *ConverterHandler {
	return &ConverterHandler{
		converterUC: converterUC,
		currencyUC:  currencyUC,
		logger:      logger,
	}
}

// writeError maps the error taxonomy onto HTTP statuses: validation
// problems are the client's fault, provider-reported failures carry the
// provider's message, and anything upstream-shaped is a bad gateway.
func (h *ConverterHandler) writeError(w http.ResponseWriter, err error) {
	var (
		categoryErr *domain.CategoryError
		unitErr     *domain.UnitError
		validation  *domain.ValidationError
		upstreamErr *domain.UpstreamError
		failure     *domain.UpstreamFailure
	)

	switch {
	case errors.As(err, &categoryErr), errors.As(err, &unitErr), errors.As(err, &validation), errors.As(err, &failure):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &upstreamErr):
		h.logger.Error("upstream currency call failed", zap.Error(err))
		response.Error(w, http.StatusBadGateway, err.Error())
	default:
		h.logger.Error("unexpected handler error", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
