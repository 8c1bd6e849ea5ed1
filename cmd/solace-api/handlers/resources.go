package handlers

import (
	"net/http"

	"github.com/solacehq/solace/internal/observability"
	"github.com/solacehq/solace/internal/ranking"
	"github.com/solacehq/solace/internal/registry"
	"github.com/solacehq/solace/internal/trust"
)

// ResourcesHandler serves direct resource lookups outside a conversation.
type ResourcesHandler struct {
	logger   *observability.Logger
	registry *registry.Registry
	trust    *trust.Engine
}

// NewResourcesHandler creates a new resources handler.
func NewResourcesHandler(logger *observability.Logger, reg *registry.Registry, eng *trust.Engine) *ResourcesHandler {
	return &ResourcesHandler{
		logger:   logger,
		registry: reg,
		trust:    eng,
	}
}

// EmergencyListDTO is the response for the emergency resource lookup.
type EmergencyListDTO struct {
	Location  string        `json:"location"`
	Region    string        `json:"region"`
	Resources []ResourceDTO `json:"resources"`
}

// Emergency handles GET /api/v1/resources/emergency.
//
// It never returns an empty list: every region resolves to at least the
// nationwide crisis lines.
func (h *ResourcesHandler) Emergency(w http.ResponseWriter, r *http.Request) {
	loc := registry.UKLocation(r.URL.Query().Get("location"))
	if loc == "" {
		loc = registry.LocationNationwide
	}

	resources := h.registry.EmergencyResources(loc)
	ranking.RankResources(resources)

	dto := EmergencyListDTO{
		Location:  string(loc),
		Region:    string(registry.RegionForLocation(loc)),
		Resources: make([]ResourceDTO, 0, len(resources)),
	}
	for _, res := range resources {
		dto.Resources = append(dto.Resources, toResourceDTO(res, h.trust.CalculateResourceTrustScore(res)))
	}

	writeJSON(w, http.StatusOK, dto)
}

// TrustHealthDTO reports trust engine counters.
type TrustHealthDTO struct {
	CacheEntries int   `json:"cacheEntries"`
	Probes       int64 `json:"probes"`
	CacheHits    int64 `json:"cacheHits"`
	CacheMisses  int64 `json:"cacheMisses"`
}

// TrustHealth handles GET /api/v1/trust/health.
func (h *ResourcesHandler) TrustHealth(w http.ResponseWriter, r *http.Request) {
	health := h.trust.SystemHealth(r.Context())
	writeJSON(w, http.StatusOK, TrustHealthDTO{
		CacheEntries: health.CacheEntries,
		Probes:       health.Probes,
		CacheHits:    health.CacheHits,
		CacheMisses:  health.CacheMisses,
	})
}
