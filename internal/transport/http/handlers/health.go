package handlers

import (
	"net/http"

	"github.com/baechuer/visit-service/internal/seed"
	"github.com/baechuer/visit-service/internal/transport/http/response"
)

// SeedStatus reports the demo data load.
type SeedStatus interface {
	Status() seed.Status
}

type HealthHandler struct {
	seed SeedStatus
}

// NewHealthHandler accepts a nil s when seeding is disabled.
func NewHealthHandler(s SeedStatus) *HealthHandler { return &HealthHandler{seed: s} }

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	if h.seed == nil {
		response.Data(w, http.StatusOK, map[string]string{"status": "ok", "seed": "disabled"})
		return
	}
	st := h.seed.Status()
	if st == seed.StatusFailed {
		response.Data(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "seed": string(st)})
		return
	}
	response.Data(w, http.StatusOK, map[string]string{"status": "ok", "seed": string(st)})
}
