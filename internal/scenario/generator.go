package scenario

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ericrcwu001/Oper/pkg/logging"
	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("oper.internal.scenario")

const (
	defaultModel       = "gpt-4o-mini"
	defaultTemperature = 0.8
	defaultCallTimeout = 30 * time.Second
)

type chatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator performs one OpenAI round trip per request and returns the raw
// completion text. It never retries, never caches, and never parses the
// response; repairing malformed output is the normalizer's job.
type Generator struct {
	client      chatClient
	model       string
	temperature float32
	timeout     time.Duration
	logger      *logging.Logger
}

// GeneratorOption customizes a Generator.
type GeneratorOption func(*Generator)

// WithTemperature overrides the sampling temperature for generation calls.
func WithTemperature(temperature float32) GeneratorOption {
	return func(g *Generator) {
		if temperature > 0 {
			g.temperature = temperature
		}
	}
}

// WithCallTimeout overrides the per-call timeout for the model round trip.
func WithCallTimeout(timeout time.Duration) GeneratorOption {
	return func(g *Generator) {
		if timeout > 0 {
			g.timeout = timeout
		}
	}
}

// NewGenerator returns a scenario Generator backed by an OpenAI-compatible
// chat client.
func NewGenerator(client chatClient, model string, logger *logging.Logger, opts ...GeneratorOption) *Generator {
	if client == nil {
		panic("scenario: chat client cannot be nil")
	}
	if model == "" {
		model = defaultModel
	}
	if logger == nil {
		logger = logging.Default()
	}

	g := &Generator{
		client:      client,
		model:       model,
		temperature: defaultTemperature,
		timeout:     defaultCallTimeout,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Request asks the model for one scenario at the given difficulty and returns
// the raw response text. The difficulty must already be validated.
func (g *Generator) Request(ctx context.Context, difficulty Difficulty) (string, error) {
	system, err := buildSystemInstructions(difficulty)
	if err != nil {
		return "", err
	}

	ctx, span := tracer.Start(ctx, "scenario.openai")
	defer span.End()
	span.SetAttributes(
		attribute.String("oper.difficulty", string(difficulty)),
		attribute.String("oper.model", g.model),
	)

	req := openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: userInstructions(difficulty)},
		},
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(callCtx, req)
	if err != nil {
		span.RecordError(err)
		return "", classifyProviderError(err)
	}
	if len(resp.Choices) == 0 {
		err := &GenerationError{cause: errors.New("openai returned no choices")}
		span.RecordError(err)
		return "", err
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
