package chat

import (
	"context"
	"fmt"
	"iter"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

// GeminiStreamer streams replies from the Gemini API
type GeminiStreamer struct {
	client *genai.Client
	model  string
}

func NewGeminiStreamer(ctx context.Context, apiKey, model string) (*GeminiStreamer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not found in environment variables")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiStreamer{client: client, model: model}, nil
}

func (g *GeminiStreamer) Stream(ctx context.Context, systemInstruction string, history []Turn) iter.Seq2[string, error] {
	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		contents = append(contents, &genai.Content{
			Role:  string(turn.Role),
			Parts: []*genai.Part{{Text: turn.Text}},
		})
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
	}

	return func(yield func(string, error) bool) {
		for resp, err := range g.client.Models.GenerateContentStream(ctx, g.model, contents, config) {
			if err != nil {
				yield("", fmt.Errorf("failed to stream content: %w", err))
				return
			}
			if text := chunkText(resp); text != "" {
				if !yield(text, nil) {
					return
				}
			}
		}
	}
}

func chunkText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			text += part.Text
		}
	}
	return text
}
