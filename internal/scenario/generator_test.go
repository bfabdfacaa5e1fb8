package scenario

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/ericrcwu001/Oper/pkg/logging"
	openai "github.com/sashabaranov/go-openai"
)

type stubChatClient struct {
	response openai.ChatCompletionResponse
	err      error
	calls    int
	lastReq  openai.ChatCompletionRequest
}

func (s *stubChatClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return s.response, nil
}

func chatResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestGeneratorRequest_BuildsJSONModeRequest(t *testing.T) {
	stub := &stubChatClient{response: chatResponse(`{"scenario": {}}`)}
	g := NewGenerator(stub, "gpt-4o-mini", logging.Default())

	raw, err := g.Request(context.Background(), DifficultyHard)
	if err != nil {
		t.Fatalf("Request returned error: %v", err)
	}
	if raw != `{"scenario": {}}` {
		t.Fatalf("unexpected raw text: %q", raw)
	}

	req := stub.lastReq
	if req.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected model: %q", req.Model)
	}
	if req.ResponseFormat == nil || req.ResponseFormat.Type != openai.ChatCompletionResponseFormatTypeJSONObject {
		t.Fatalf("expected JSON-object response format, got %+v", req.ResponseFormat)
	}
	if req.Temperature != defaultTemperature {
		t.Fatalf("unexpected temperature: %f", req.Temperature)
	}
	if len(req.Messages) != 2 {
		t.Fatalf("expected system+user messages, got %d", len(req.Messages))
	}
	if req.Messages[0].Role != openai.ChatMessageRoleSystem ||
		!strings.Contains(req.Messages[0].Content, "911 training assistant") {
		t.Fatalf("unexpected system message: %q", req.Messages[0].Content)
	}
	if !strings.Contains(req.Messages[0].Content, "panicked, breathless") {
		t.Fatal("expected hard-difficulty guidance in system message")
	}
	if req.Messages[1].Role != openai.ChatMessageRoleUser ||
		!strings.Contains(req.Messages[1].Content, "difficulty: hard") {
		t.Fatalf("unexpected user message: %q", req.Messages[1].Content)
	}
}

func TestGeneratorRequest_TrimsWhitespace(t *testing.T) {
	stub := &stubChatClient{response: chatResponse("  {\"scenario\": {}}\n")}
	g := NewGenerator(stub, "", logging.Default())

	raw, err := g.Request(context.Background(), DifficultyEasy)
	if err != nil {
		t.Fatalf("Request returned error: %v", err)
	}
	if raw != `{"scenario": {}}` {
		t.Fatalf("expected trimmed text, got %q", raw)
	}
}

func TestGeneratorRequest_InvalidDifficulty(t *testing.T) {
	stub := &stubChatClient{response: chatResponse("{}")}
	g := NewGenerator(stub, "", logging.Default())

	_, err := g.Request(context.Background(), Difficulty("impossible"))
	if !errors.Is(err, ErrInvalidDifficulty) {
		t.Fatalf("expected ErrInvalidDifficulty, got %v", err)
	}
	if stub.calls != 0 {
		t.Fatal("expected no model call for invalid difficulty")
	}
}

func TestGeneratorRequest_AuthErrorMapsToMissingCredentials(t *testing.T) {
	stub := &stubChatClient{err: &openai.APIError{HTTPStatusCode: http.StatusUnauthorized, Message: "invalid api key"}}
	g := NewGenerator(stub, "", logging.Default())

	_, err := g.Request(context.Background(), DifficultyEasy)
	if !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestGeneratorRequest_TransportErrorWrapsGenerationError(t *testing.T) {
	cause := errors.New("connection refused")
	stub := &stubChatClient{err: cause}
	g := NewGenerator(stub, "", logging.Default())

	_, err := g.Request(context.Background(), DifficultyMedium)
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %T: %v", err, err)
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected underlying cause preserved")
	}
}

func TestGeneratorRequest_NoChoices(t *testing.T) {
	stub := &stubChatClient{response: openai.ChatCompletionResponse{}}
	g := NewGenerator(stub, "", logging.Default())

	_, err := g.Request(context.Background(), DifficultyEasy)
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError for empty choices, got %v", err)
	}
}

func TestGeneratorOptions(t *testing.T) {
	stub := &stubChatClient{response: chatResponse("{}")}
	g := NewGenerator(stub, "gpt-4o", logging.Default(), WithTemperature(0.3))

	if _, err := g.Request(context.Background(), DifficultyEasy); err != nil {
		t.Fatalf("Request returned error: %v", err)
	}
	if stub.lastReq.Temperature != 0.3 {
		t.Fatalf("expected temperature override, got %f", stub.lastReq.Temperature)
	}
	if stub.lastReq.Model != "gpt-4o" {
		t.Fatalf("expected model override, got %q", stub.lastReq.Model)
	}
}
