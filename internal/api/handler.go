package api

import (
	"context"
	"net/http"

	"github.com/MichalMitros/cartlinker/internal/platform/models"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Converter --filename converter.go

// Converter scans listings, converts handles into variants and combines variants into cart links.
type Converter interface {
	Scan(ctx context.Context, url string) ([]string, error)
	Convert(ctx context.Context, input string) (*models.Conversion, error)
	Combine(variants []models.Variant, selectedIDs []int64) (*models.CartLinks, error)
}

// Handler handles HTTP API requests.
type Handler struct {
	converter Converter
	logger    *zerolog.Logger
}

// NewHandler returns new Handler.
func NewHandler(converter Converter, logger *zerolog.Logger) *Handler {
	return &Handler{
		converter: converter,
		logger:    logger,
	}
}

// Scan returns product handles listed on collection or campaign page.
func (h *Handler) Scan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	handles, err := h.converter.Scan(r.Context(), req.URL)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, scanResponse{Handles: handles})
}

// Convert resolves variants of products from input lines.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	conversion, err := h.converter.Convert(r.Context(), req.Input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toConvertResponse(conversion))
}

// Combine builds cart links for selected variants.
func (h *Handler) Combine(w http.ResponseWriter, r *http.Request) {
	var req combineRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	links, err := h.converter.Combine(toModelVariants(req.Variants), req.SelectedIDs)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toCombineResponse(links))
}

// Health reports that the service is up.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"status": "ok"})
}
