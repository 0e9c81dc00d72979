package server

import (
	"net/http"

	"unit-converter-service/internal/config"
	"unit-converter-service/internal/handler"
	"unit-converter-service/internal/provider/exchangerate"
	"unit-converter-service/internal/router"
	"unit-converter-service/internal/usecase"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Server struct {
	HTTP *http.Server
}

func NewServer(cfg config.AppConfig, logger *zap.Logger) *Server {
	// --- Exchange rate provider ---
	rateProvider := exchangerate.NewClient(cfg.CurrencyAPIBaseURL, cfg.CurrencyAPITimeout, logger)

	// --- Usecases ---
	converterUC := usecase.NewConverterUsecase()
	currencyUC := usecase.NewCurrencyUsecase(rateProvider)

	// --- Handlers ---
	h := handler.NewConverterHandler(converterUC, currencyUC, logger)

	// --- HTTP router ---
	r := chi.NewRouter()
	r = router.SetupRoutes(r, h).(*chi.Mux)

	return &Server{
		HTTP: &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: r,
		},
	}
}

// StartHTTP runs the HTTP server until it is shut down.
func (s *Server) StartHTTP() error {
	return s.HTTP.ListenAndServe()
}
