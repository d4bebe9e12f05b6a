package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// ChatModel is the narrow surface the pipeline needs from the LLM provider:
// one system-prompted exchange per call, no conversation memory, no retries.
// Every call is attempted exactly once; failures propagate to the caller.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type geminiChat struct {
	client          *genai.Client
	modelName       string
	temperature     float32
	maxOutputTokens int32
}

func NewGeminiChat(apiKey, modelName string, temperature float32, maxOutputTokens int32) (ChatModel, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiChat{
		client:          client,
		modelName:       modelName,
		temperature:     temperature,
		maxOutputTokens: maxOutputTokens,
	}, nil
}

// Ask implements ChatModel. The system prompt travels as a system instruction
// and the user prompt as the single content turn, mirroring a two-message
// chat exchange.
func (g *geminiChat) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	temperature := g.temperature

	config := &genai.GenerateContentConfig{
		Temperature:       &temperature,
		MaxOutputTokens:   g.maxOutputTokens,
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(userPrompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
