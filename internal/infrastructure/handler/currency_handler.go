package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mhartwell/fxresolver/internal/domain/currency"
	"github.com/mhartwell/fxresolver/internal/infrastructure/logger"
	"github.com/mhartwell/fxresolver/internal/infrastructure/middleware"
)

// CurrencyHandler serves the currency registry.
type CurrencyHandler struct {
	logger logger.Logger
}

// NewCurrencyHandler creates a new currency handler
func NewCurrencyHandler(log logger.Logger) *CurrencyHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &CurrencyHandler{logger: log}
}

// ListCurrencies handles listing all registered currency codes
func (h *CurrencyHandler) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	codes := currency.Codes()

	h.logger.Info("Handling list currencies request", map[string]interface{}{
		"request_id": requestID,
		"count":      len(codes),
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(codes)
}

// GetCurrency handles retrieving one currency's metadata by code
func (h *CurrencyHandler) GetCurrency(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	vars := mux.Vars(r)
	code := strings.ToUpper(vars["code"])

	h.logger.Info("Handling get currency request", map[string]interface{}{
		"request_id": requestID,
		"code":       code,
	})

	cur, err := currency.Get(code)
	if err != nil {
		h.logger.Warn("Currency not found", map[string]interface{}{
			"request_id": requestID,
			"code":       code,
		})
		sendErrorResponse(w, h.logger, "Currency not found",
			"The requested currency code is not registered", http.StatusNotFound, requestID)
		return
	}

	resp := CurrencyResponse{
		Name:             cur.Name,
		Code:             cur.Code,
		NumericCode:      cur.NumericCode,
		Symbol:           cur.Symbol,
		FractionSymbol:   cur.FractionSymbol,
		FractionsPerUnit: cur.FractionsPerUnit,
		Rounding: RoundingResponse{
			Type:      cur.Rounding.Type.String(),
			Precision: cur.Rounding.Precision,
			Digit:     cur.Rounding.Digit,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// RegisterRoutes registers the currency handler routes
func (h *CurrencyHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/currencies", h.ListCurrencies).Methods("GET")
	router.HandleFunc("/currencies/{code}", h.GetCurrency).Methods("GET")

	h.logger.Info("Currency routes registered", map[string]interface{}{
		"routes": []string{
			"GET /currencies",
			"GET /currencies/{code}",
		},
	})
}
