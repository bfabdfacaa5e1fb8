package scenario

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const defaultScenarioTTL = 24 * time.Hour

// Store keeps a TTL-bound copy of each generated payload in Redis so the
// voice-agent layer can fetch persona settings and the composed prompt after
// the generation response has been handed to the trainee frontend.
type Store struct {
	redis  *redis.Client
	ttl    time.Duration
	tracer trace.Tracer
}

// NewStore returns a Redis-backed scenario store.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if client == nil {
		panic("scenario: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = defaultScenarioTTL
	}
	return &Store{
		redis:  client,
		ttl:    ttl,
		tracer: otel.Tracer("oper.internal.scenario.store"),
	}
}

// Save persists a normalized payload under its scenario id.
func (s *Store) Save(ctx context.Context, payload *Payload) error {
	ctx, span := s.tracer.Start(ctx, "scenario.save")
	defer span.End()

	if payload == nil || payload.Scenario.ID == "" {
		return errors.New("scenario: cannot store payload without an id")
	}
	data, err := json.Marshal(payload)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("scenario: failed to marshal payload: %w", err)
	}
	if err := s.redis.Set(ctx, scenarioKey(payload.Scenario.ID), data, s.ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("scenario: failed to persist payload: %w", err)
	}
	return nil
}

// Get loads a stored payload by scenario id.
func (s *Store) Get(ctx context.Context, id string) (*Payload, error) {
	ctx, span := s.tracer.Start(ctx, "scenario.load")
	defer span.End()

	data, err := s.redis.Get(ctx, scenarioKey(id)).Bytes()
	if err != nil {
		span.RecordError(err)
		if err == redis.Nil {
			return nil, fmt.Errorf("%w: %s", ErrScenarioNotFound, id)
		}
		return nil, fmt.Errorf("scenario: failed to load payload: %w", err)
	}

	var payload Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("scenario: failed to decode stored payload: %w", err)
	}
	return &payload, nil
}

func scenarioKey(id string) string {
	return fmt.Sprintf("scenario:%s", id)
}
