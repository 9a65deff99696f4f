package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MichalMitros/cartlinker/internal/cart"
	"github.com/MichalMitros/cartlinker/internal/converter"
	"github.com/MichalMitros/cartlinker/internal/listing"
	"github.com/rs/zerolog"
)

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().
			Err(err).
			Msg("can't encode response")
	}
}

func writeError(w http.ResponseWriter, logger *zerolog.Logger, err error) {
	status := errorStatus(err)
	payload := errorResponse{Error: err.Error()}

	var reqErr *requestError
	if errors.As(err, &reqErr) {
		payload.Details = reqErr.details
	}

	if status >= http.StatusInternalServerError {
		logger.Error().
			Err(err).
			Int("status", status).
			Msg("request failed")
	}

	writeJSON(w, logger, status, payload)
}

func errorStatus(err error) int {
	var (
		reqErr   *requestError
		fetchErr *listing.ListingFetchError
	)

	switch {
	case errors.As(err, &reqErr):
		return http.StatusBadRequest
	case errors.Is(err, listing.ErrUnsupportedURL),
		errors.Is(err, listing.ErrNoProducts),
		errors.Is(err, listing.ErrMissingSlug),
		errors.Is(err, converter.ErrNoHandles),
		errors.Is(err, cart.ErrEmptySelection),
		errors.Is(err, cart.ErrSelectionMismatch):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
