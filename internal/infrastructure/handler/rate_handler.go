package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/mhartwell/fxresolver/internal/apperrors"
	"github.com/mhartwell/fxresolver/internal/application/service"
	"github.com/mhartwell/fxresolver/internal/domain/entity"
	"github.com/mhartwell/fxresolver/internal/infrastructure/logger"
	"github.com/mhartwell/fxresolver/internal/infrastructure/middleware"
)

// RateHandler handles HTTP requests for exchange rate entries.
type RateHandler struct {
	service *service.RateService
	logger  logger.Logger
}

// NewRateHandler creates a new rate handler
func NewRateHandler(service *service.RateService, log logger.Logger) *RateHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &RateHandler{
		service: service,
		logger:  log,
	}
}

// RegisterRate handles the registration of a new exchange rate entry
func (h *RateHandler) RegisterRate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	h.logger.Info("Handling register rate request", map[string]interface{}{
		"request_id": requestID,
		"method":     r.Method,
		"path":       r.URL.Path,
	})

	var req RegisterRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Invalid request body",
			"The request body could not be parsed as valid JSON", http.StatusBadRequest, requestID)
		return
	}

	h.logger.Debug("Request parsed", map[string]interface{}{
		"request_id": requestID,
		"source":     req.Source,
		"target":     req.Target,
		"rate":       req.Rate,
	})

	validFrom, err := time.Parse("2006-01-02", req.ValidFrom)
	if err != nil {
		h.logger.Warn("Invalid valid_from date", map[string]interface{}{
			"request_id": requestID,
			"valid_from": req.ValidFrom,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Invalid date format",
			"valid_from must be in YYYY-MM-DD format", http.StatusBadRequest, requestID)
		return
	}

	validTo := entity.MaxDate()
	if req.ValidTo != "" {
		validTo, err = time.Parse("2006-01-02", req.ValidTo)
		if err != nil {
			h.logger.Warn("Invalid valid_to date", map[string]interface{}{
				"request_id": requestID,
				"valid_to":   req.ValidTo,
				"error":      err.Error(),
			})
			sendErrorResponse(w, h.logger, "Invalid date format",
				"valid_to must be in YYYY-MM-DD format", http.StatusBadRequest, requestID)
			return
		}
	}

	entry, err := h.service.Register(r.Context(), strings.ToUpper(req.Source), strings.ToUpper(req.Target),
		req.Rate, validFrom, validTo)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownCurrency):
			h.logger.Warn("Unknown currency in rate registration", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			sendErrorResponse(w, h.logger, "Unknown currency",
				err.Error(), http.StatusBadRequest, requestID)
		case errors.Is(err, apperrors.ErrInvalidEntry):
			h.logger.Warn("Invalid rate entry", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			sendErrorResponse(w, h.logger, "Invalid rate entry",
				err.Error(), http.StatusBadRequest, requestID)
		default:
			h.logger.Error("Unexpected error in register rate", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			sendErrorResponse(w, h.logger, "Internal server error",
				"An unexpected error occurred while registering the rate",
				http.StatusInternalServerError, requestID)
		}
		return
	}

	h.logger.Info("Rate registered successfully", map[string]interface{}{
		"request_id": requestID,
		"id":         entry.ID,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(RegisterRateResponse{ID: entry.ID})
}

// ClearRates handles resetting the rate table to its seeded baseline
func (h *RateHandler) ClearRates(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	h.logger.Info("Handling clear rates request", map[string]interface{}{
		"request_id": requestID,
	})

	if err := h.service.Clear(r.Context()); err != nil {
		h.logger.Error("Unexpected error in clear rates", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Internal server error",
			"An unexpected error occurred while clearing rates",
			http.StatusInternalServerError, requestID)
		return
	}

	h.logger.Info("Rates cleared successfully", map[string]interface{}{
		"request_id": requestID,
	})

	w.WriteHeader(http.StatusNoContent)
}

// LookupRate handles resolving an exchange rate between two currencies
func (h *RateHandler) LookupRate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	query := r.URL.Query()
	source := strings.ToUpper(query.Get("source"))
	target := strings.ToUpper(query.Get("target"))

	h.logger.Info("Handling lookup rate request", map[string]interface{}{
		"request_id": requestID,
		"source":     source,
		"target":     target,
	})

	if source == "" || target == "" {
		sendErrorResponse(w, h.logger, "Missing query parameters",
			"Both source and target query parameters are required", http.StatusBadRequest, requestID)
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

	kind := service.KindAny
	if raw := query.Get("kind"); raw != "" {
		switch raw {
		case string(entity.Direct):
			kind = entity.Direct
		case string(entity.Derived):
			kind = entity.Derived
		default:
			sendErrorResponse(w, h.logger, "Invalid kind",
				"kind must be Direct or Derived", http.StatusBadRequest, requestID)
			return
		}
	}

	rate, err := h.service.Lookup(r.Context(), source, target, date, kind)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownCurrency):
			h.logger.Warn("Unknown currency in lookup", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			sendErrorResponse(w, h.logger, "Unknown currency",
				err.Error(), http.StatusBadRequest, requestID)
		case errors.Is(err, apperrors.ErrRateNotFound):
			h.logger.Warn("Rate not found", map[string]interface{}{
				"request_id": requestID,
				"source":     source,
				"target":     target,
				"date":       date.Format("2006-01-02"),
			})
			sendErrorResponse(w, h.logger, "Rate not found",
				"No direct or derivable rate is available for the requested pair and date",
				http.StatusNotFound, requestID)
		default:
			h.logger.Error("Unexpected error in lookup rate", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			sendErrorResponse(w, h.logger, "Internal server error",
				"An unexpected error occurred while looking up the rate",
				http.StatusInternalServerError, requestID)
		}
		return
	}

	h.logger.Info("Rate resolved successfully", map[string]interface{}{
		"request_id": requestID,
		"source":     rate.Source,
		"target":     rate.Target,
		"rate":       rate.Rate,
		"kind":       string(rate.Kind),
	})

	resp := LookupRateResponse{
		Source: rate.Source,
		Target: rate.Target,
		Rate:   rate.Rate,
		Kind:   string(rate.Kind),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// RegisterRoutes registers the rate handler routes
func (h *RateHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/rates", h.RegisterRate).Methods("POST")
	router.HandleFunc("/rates", h.ClearRates).Methods("DELETE")
	router.HandleFunc("/rates/lookup", h.LookupRate).Methods("GET")

	h.logger.Info("Rate routes registered", map[string]interface{}{
		"routes": []string{
			"POST /rates",
			"DELETE /rates",
			"GET /rates/lookup",
		},
	})
}

// sendErrorResponse sends a standardized error response
func sendErrorResponse(w http.ResponseWriter, log logger.Logger, message, description string, statusCode int, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Error:       message,
		Status:      statusCode,
		Description: description,
		RequestID:   requestID,
	}

	log.Debug("Sending error response", map[string]interface{}{
		"request_id":  requestID,
		"status_code": statusCode,
		"message":     message,
	})

	json.NewEncoder(w).Encode(resp)
}
