package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/mhartwell/fxresolver/internal/apperrors"
	"github.com/mhartwell/fxresolver/internal/application/service"
	"github.com/mhartwell/fxresolver/internal/infrastructure/logger"
	"github.com/mhartwell/fxresolver/internal/infrastructure/middleware"
)

// ConversionHandler handles HTTP requests for money conversions.
type ConversionHandler struct {
	service *service.ConversionService
	logger  logger.Logger
}

// NewConversionHandler creates a new conversion handler
func NewConversionHandler(service *service.ConversionService, log logger.Logger) *ConversionHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &ConversionHandler{
		service: service,
		logger:  log,
	}
}

// Convert handles converting an amount between two currencies
func (h *ConversionHandler) Convert(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	query := r.URL.Query()
	from := strings.ToUpper(query.Get("from"))
	to := strings.ToUpper(query.Get("to"))
	rawAmount := query.Get("amount")

	h.logger.Info("Handling conversion request", map[string]interface{}{
		"request_id": requestID,
		"from":       from,
		"to":         to,
		"amount":     rawAmount,
	})

	if from == "" || to == "" || rawAmount == "" {
		sendErrorResponse(w, h.logger, "Missing query parameters",
			"from, to and amount query parameters are required", http.StatusBadRequest, requestID)
		return
	}

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		h.logger.Warn("Invalid amount", map[string]interface{}{
			"request_id": requestID,
			"amount":     rawAmount,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Invalid amount",
			"amount must be a decimal number", http.StatusBadRequest, requestID)
		return
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if raw := query.Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.logger.Warn("Invalid date format", map[string]interface{}{
				"request_id": requestID,
				"date":       raw,
				"error":      err.Error(),
			})
			sendErrorResponse(w, h.logger, "Invalid date format",
				"date must be in YYYY-MM-DD format", http.StatusBadRequest, requestID)
			return
		}
		date = parsed
	}

	result, err := h.service.Convert(r.Context(), amount, from, to, date)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownCurrency):
			h.logger.Warn("Unknown currency in conversion", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			sendErrorResponse(w, h.logger, "Unknown currency",
				err.Error(), http.StatusBadRequest, requestID)
		case errors.Is(err, apperrors.ErrRateNotFound):
			h.logger.Warn("Rate not found for conversion", map[string]interface{}{
				"request_id": requestID,
				"from":       from,
				"to":         to,
				"date":       date.Format("2006-01-02"),
			})
			sendErrorResponse(w, h.logger, "Rate not found",
				"No direct or derivable rate is available for the requested pair and date",
				http.StatusNotFound, requestID)
		default:
			h.logger.Error("Unexpected error in conversion", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			sendErrorResponse(w, h.logger, "Internal server error",
				"An unexpected error occurred while converting the amount",
				http.StatusInternalServerError, requestID)
		}
		return
	}

	h.logger.Info("Conversion completed successfully", map[string]interface{}{
		"request_id":       requestID,
		"from":             result.From,
		"to":               result.To,
		"converted_amount": result.ConvertedAmount.String(),
	})

	resp := ConversionResponse{
		From:            result.From,
		To:              result.To,
		Date:            result.Date.Format("2006-01-02"),
		OriginalAmount:  result.OriginalAmount.String(),
		ExchangeRate:    result.ExchangeRate,
		RateKind:        string(result.RateKind),
		ConvertedAmount: result.ConvertedAmount.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// RegisterRoutes registers the conversion handler routes
func (h *ConversionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/convert", h.Convert).Methods("GET")

	h.logger.Info("Conversion routes registered", map[string]interface{}{
		"routes": []string{
			"GET /convert",
		},
	})
}
