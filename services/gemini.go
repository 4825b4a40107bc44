package services

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/vijayleo46/portfolio-backend/errs"
)

// Sampling parameters are pinned low so the assistant leans deterministic
// and stays close to the grounding context.
const (
	chatTemperature = 0.2
	chatTopP        = 0.8

	DefaultChatModel = "gemini-2.5-flash"
)

// Completer produces one reply for a system instruction plus a single user
// turn. The production implementation talks to Gemini; tests substitute a fake.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// GeminiCompleter calls the Gemini API through langchaingo. The API key is
// injected at construction; nothing is read from the environment at call time.
// A client that could not be initialized (e.g. missing key) is kept around and
// its error is surfaced on every Complete call instead of at startup.
type GeminiCompleter struct {
	llm     *googleai.GoogleAI
	model   string
	initErr error
}

func NewGeminiCompleter(ctx context.Context, apiKey, model string) *GeminiCompleter {
	if model == "" {
		model = DefaultChatModel
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return &GeminiCompleter{model: model, initErr: fmt.Errorf("failed to initialize Gemini client: %w", err)}
	}

	return &GeminiCompleter{llm: llm, model: model}
}

// Complete performs a single synchronous completion round trip. There is no
// retry and no caller-supplied timeout beyond what ctx carries.
func (g *GeminiCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	if g.initErr != nil {
		return "", g.initErr
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	resp, err := g.llm.GenerateContent(ctx, messages,
		llms.WithTemperature(chatTemperature),
		llms.WithTopP(chatTopP),
	)
	if err != nil {
		return "", err
	}

	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", errs.NewEmptyCompletionError(g.model)
	}

	return resp.Choices[0].Content, nil
}
