package scenario

import (
	"context"
	"errors"
	"time"

	"github.com/ericrcwu001/Oper/internal/observability/metrics"
	"github.com/ericrcwu001/Oper/pkg/logging"
	"go.opentelemetry.io/otel/attribute"
)

// Service is the boundary the HTTP layer talks to. Each Generate call is
// independent and stateless: one model round trip, one normalization pass, an
// optional store write, and nothing shared between calls.
type Service struct {
	generator *Generator
	store     *Store
	metrics   *metrics.ScenarioMetrics
	logger    *logging.Logger
}

// NewService wires the generator, the optional store, and observability. A
// nil generator means credentials were never configured; Generate then fails
// with ErrMissingCredentials rather than reading ambient state.
func NewService(generator *Generator, store *Store, m *metrics.ScenarioMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		generator: generator,
		store:     store,
		metrics:   m,
		logger:    logger,
	}
}

// Generate produces one normalized scenario payload for the given difficulty.
func (s *Service) Generate(ctx context.Context, difficulty string) (*Payload, error) {
	level, err := ParseDifficulty(difficulty)
	if err != nil {
		s.metrics.ObserveGeneration(difficulty, "invalid_difficulty")
		return nil, err
	}
	if s.generator == nil {
		s.metrics.ObserveGeneration(string(level), "missing_credentials")
		return nil, ErrMissingCredentials
	}

	ctx, span := tracer.Start(ctx, "scenario.generate")
	defer span.End()
	span.SetAttributes(attribute.String("oper.difficulty", string(level)))

	start := time.Now()
	raw, err := s.generator.Request(ctx, level)
	if err != nil {
		span.RecordError(err)
		s.metrics.ObserveGeneration(string(level), statusForError(err))
		return nil, err
	}

	payload, err := Normalize(raw)
	if err != nil {
		span.RecordError(err)
		s.metrics.ObserveGeneration(string(level), statusForError(err))
		return nil, err
	}
	span.SetAttributes(attribute.String("oper.scenario_id", payload.Scenario.ID))
	s.metrics.ObserveGeneration(string(level), "ok")
	s.metrics.ObserveGenerationLatency(string(level), time.Since(start).Seconds())

	// The store is best-effort plumbing; a dead Redis must not fail the
	// generation the trainee is waiting on.
	if s.store != nil {
		if err := s.store.Save(ctx, payload); err != nil {
			s.logger.Error("failed to persist scenario",
				"scenario_id", payload.Scenario.ID,
				"error", err,
			)
		}
	}

	s.logger.Info("scenario generated",
		"scenario_id", payload.Scenario.ID,
		"scenario_type", payload.Scenario.ScenarioType,
		"difficulty", string(level),
	)
	return payload, nil
}

// ComposePrompt renders a payload into the voice-agent system prompt.
func (s *Service) ComposePrompt(p *Payload) string {
	s.metrics.ObservePromptComposed()
	return ComposePrompt(p)
}

// GetScenario loads a recently generated payload from the store.
func (s *Service) GetScenario(ctx context.Context, id string) (*Payload, error) {
	if s.store == nil {
		return nil, ErrScenarioNotFound
	}
	return s.store.Get(ctx, id)
}

func statusForError(err error) string {
	var malformed *MalformedPayloadError
	switch {
	case errors.Is(err, ErrMissingCredentials):
		return "missing_credentials"
	case errors.As(err, &malformed):
		return "malformed_payload"
	default:
		return "generation_failed"
	}
}
