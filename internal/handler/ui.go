package handler

import (
	"math/rand/v2"
	"net/http"
	"strconv"
	"sync"

	"github.com/regform/regform-go/internal/ui"
)

// UIHandler serves presentational data for the registration page.
type UIHandler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewUIHandler creates a UIHandler drawing from rng.
func NewUIHandler(rng *rand.Rand) *UIHandler {
	return &UIHandler{rng: rng}
}

// HandleParticles handles GET /api/v1/particles?count=N requests.
func (h *UIHandler) HandleParticles(w http.ResponseWriter, r *http.Request) {
	count := ui.DefaultParticles
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > ui.MaxParticles {
			writeJSON(w, http.StatusBadRequest, errorResponse("count must be between 0 and 200"))
			return
		}
		count = n
	}

	// *rand.Rand is not safe for concurrent use.
	h.mu.Lock()
	particles := ui.Particles(count, h.rng)
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, particles)
}
