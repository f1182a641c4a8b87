package openai

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

type stubCompleter struct {
	req  openai.ChatCompletionRequest
	resp openai.ChatCompletionResponse
	err  error
}

func (s *stubCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.req = req
	return s.resp, s.err
}

func chatReply(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestGenerateBuildsRequest(t *testing.T) {
	stub := &stubCompleter{resp: chatReply("a clean take")}
	client := &Client{api: stub, model: defaultModel, temperature: defaultTemperature}

	got, err := client.Generate(context.Background(), "  be helpful  ", "\nwho wins?\n", 900)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "a clean take" {
		t.Fatalf("expected reply, got %q", got)
	}

	if stub.req.Model != defaultModel {
		t.Fatalf("expected model %s, got %s", defaultModel, stub.req.Model)
	}
	if stub.req.MaxTokens != 900 {
		t.Fatalf("expected 900 max tokens, got %d", stub.req.MaxTokens)
	}
	if stub.req.Temperature != defaultTemperature {
		t.Fatalf("expected temperature %v, got %v", defaultTemperature, stub.req.Temperature)
	}
	if len(stub.req.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(stub.req.Messages))
	}
	if stub.req.Messages[0].Role != openai.ChatMessageRoleSystem || stub.req.Messages[0].Content != "be helpful" {
		t.Fatalf("unexpected system message: %+v", stub.req.Messages[0])
	}
	if stub.req.Messages[1].Role != openai.ChatMessageRoleUser || stub.req.Messages[1].Content != "who wins?" {
		t.Fatalf("unexpected user message: %+v", stub.req.Messages[1])
	}
}

func TestGenerateWrapsAPIError(t *testing.T) {
	boom := errors.New("quota exceeded")
	stub := &stubCompleter{err: boom}
	client := &Client{api: stub, model: "gpt-4.1"}

	_, err := client.Generate(context.Background(), "sys", "user", 900)
	if err == nil {
		t.Fatal("expected error")
	}

	genErr, ok := AsGenerationError(err)
	if !ok {
		t.Fatalf("expected GenerationError, got %T", err)
	}
	if genErr.Model != "gpt-4.1" {
		t.Fatalf("expected model on error, got %q", genErr.Model)
	}
	if !errors.Is(err, boom) {
		t.Fatal("expected wrapped cause")
	}
}

func TestGenerateEmptyChoicesIsError(t *testing.T) {
	stub := &stubCompleter{resp: openai.ChatCompletionResponse{}}
	client := &Client{api: stub, model: "gpt-4.1"}

	if _, err := client.Generate(context.Background(), "sys", "user", 900); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Config{APIKey: "key"})
	if client.Model() != defaultModel {
		t.Fatalf("expected default model, got %s", client.Model())
	}
	if client.temperature != defaultTemperature {
		t.Fatalf("expected default temperature, got %v", client.temperature)
	}
}
