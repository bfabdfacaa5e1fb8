package scenario

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ericrcwu001/Oper/pkg/logging"
	"github.com/go-chi/chi/v5"
)

// Handler wires HTTP requests to the scenario service.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a scenario handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		service: service,
		logger:  logger,
	}
}

type generateRequest struct {
	Difficulty string `json:"difficulty"`
}

type promptResponse struct {
	ScenarioID string `json:"scenario_id,omitempty"`
	Prompt     string `json:"prompt"`
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Generate handles POST /api/scenarios/generate.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Difficulty == "" {
		h.writeError(w, http.StatusBadRequest, `Missing or invalid 'difficulty'. Use { "difficulty": "easy" | "medium" | "hard" }.`)
		return
	}

	payload, err := h.service.Generate(r.Context(), req.Difficulty)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, payload)
}

// ComposePrompt handles POST /api/scenarios/prompt: renders a voice-agent
// system prompt from a payload supplied in the request body.
func (h *Handler) ComposePrompt(w http.ResponseWriter, r *http.Request) {
	var payload Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Error("failed to decode prompt request", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid scenario payload")
		return
	}

	prompt := h.service.ComposePrompt(&payload)
	h.writeJSON(w, http.StatusOK, promptResponse{Prompt: prompt})
}

// GetScenario handles GET /api/scenarios/{scenarioID}.
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	payload := h.loadScenario(w, r)
	if payload == nil {
		return
	}
	h.writeJSON(w, http.StatusOK, payload)
}

// AgentPrompt handles GET /api/scenarios/{scenarioID}/prompt: composes the
// voice-agent system prompt for a stored payload.
func (h *Handler) AgentPrompt(w http.ResponseWriter, r *http.Request) {
	payload := h.loadScenario(w, r)
	if payload == nil {
		return
	}
	h.writeJSON(w, http.StatusOK, promptResponse{
		ScenarioID: payload.Scenario.ID,
		Prompt:     h.service.ComposePrompt(payload),
	})
}

// loadScenario fetches the payload named in the URL. A nil return means the
// error response has already been written.
func (h *Handler) loadScenario(w http.ResponseWriter, r *http.Request) *Payload {
	id := chi.URLParam(r, "scenarioID")
	payload, err := h.service.GetScenario(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrScenarioNotFound) {
			h.writeError(w, http.StatusNotFound, "Scenario not found")
			return nil
		}
		h.logger.Error("failed to load scenario", "scenario_id", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to load scenario")
		return nil
	}
	return payload
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var malformed *MalformedPayloadError
	switch {
	case errors.Is(err, ErrInvalidDifficulty):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrMissingCredentials):
		h.logger.Error("scenario generation unavailable", "error", err)
		h.writeError(w, http.StatusServiceUnavailable, "Scenario generation is not configured")
	case errors.As(err, &malformed):
		h.logger.Error("model returned malformed scenario", "error", err)
		h.writeError(w, http.StatusBadGateway, "Scenario generator returned an unreadable scenario")
	default:
		h.logger.Error("scenario generation failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Scenario generation failed")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
