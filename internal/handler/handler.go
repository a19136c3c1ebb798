package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/shuv1824/kidsactivities/internal/landing"
	"github.com/shuv1824/kidsactivities/internal/listing"
	"github.com/shuv1824/kidsactivities/internal/response"
	"github.com/shuv1824/kidsactivities/internal/types"
	"github.com/shuv1824/kidsactivities/internal/views"
)

// requestTimeout bounds the upstream fetches of a single request.
const requestTimeout = 5 * time.Second

type ActivityHandler struct {
	source       landing.Source
	builder      *landing.Builder
	presets      []types.AgeRangePreset
	popularCount int
}

func NewActivityHandler(source landing.Source, c types.Catalog, popularCount int) *ActivityHandler {
	return &ActivityHandler{
		source:       source,
		builder:      landing.NewBuilder(source, c, popularCount),
		presets:      c.AgeRanges,
		popularCount: popularCount,
	}
}

// Health returns a simple health check response
func Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Landing renders the landing page for the filter state in the query string.
func (h *ActivityHandler) Landing(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	q := r.URL.Query()
	state := listing.ParseQuery(q, h.presets)

	start := time.Now()
	page := h.builder.Build(ctx, state, q.Get("map") == "open")
	w.Header().Set("X-Response-Time", time.Since(start).String())

	response.HTML(w, http.StatusOK, views.LandingPage(page))
}

// ListActivities returns one filtered page of activities.
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	state := listing.ParseQuery(r.URL.Query(), h.presets)

	all, err := h.source.Activities(ctx)
	if err != nil && len(all) == 0 {
		if ctx.Err() == context.DeadlineExceeded {
			response.ErrorJSON(w, http.StatusGatewayTimeout, "request timeout - try again")
			return
		}
		response.ErrorJSON(w, http.StatusBadGateway, "failed to fetch activities")
		return
	}

	res := listing.Apply(all, state)
	response.JSON(w, http.StatusOK, types.ActivityPage{
		Data:       res.Items,
		Page:       res.Page,
		PageSize:   listing.PageSize,
		Total:      res.Total,
		TotalPages: res.TotalPages,
	})
}

func (h *ActivityHandler) Featured(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	featured, err := h.source.Featured(ctx)
	if err != nil && len(featured) == 0 {
		response.ErrorJSON(w, http.StatusBadGateway, "failed to fetch featured activities")
		return
	}
	response.JSON(w, http.StatusOK, featured)
}

// Popular accepts an optional limit; invalid or missing limits use the
// configured count.
func (h *ActivityHandler) Popular(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	limit := h.popularCount
	if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && n > 0 {
		limit = n
	}

	popular, err := h.source.Popular(ctx, limit)
	if err != nil && len(popular) == 0 {
		response.ErrorJSON(w, http.StatusBadGateway, "failed to fetch popular activities")
		return
	}
	response.JSON(w, http.StatusOK, popular)
}

func (h *ActivityHandler) Filters(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response.JSON(w, http.StatusOK, h.builder.Filters(ctx))
}
