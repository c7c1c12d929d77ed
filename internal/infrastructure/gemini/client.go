package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/vyte-app/vyte-backend/internal/domain"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Close() {
	c.client.Close()
}

// GenerateOpeners produces 3 conversation openers for a vibe room chat.
func (c *GeminiClient) GenerateOpeners(ctx context.Context, myBio, theirBio string, intent domain.IntentType) ([]string, error) {
	prompt := fmt.Sprintf(`
		Generate 3 conversation openers for a social app where two people
		share the same declared intent.
		Shared intent: %s
		Sender bio: %q
		Recipient bio: %q

		Task: Create 3 distinct, casual opening lines the sender could use.
		Keep each under 120 characters. Match the tone to the intent
		(e.g. DRINKS is playful, DATE is warmer).
		Output: JSON array of strings. Example: ["Hey...", "So..."]
	`, intent, myBio, theirBio)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	responseText := strings.TrimSpace(sb.String())
	// Clean up markdown code blocks if present
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")

	var openers []string
	if err := json.Unmarshal([]byte(responseText), &openers); err != nil {
		// Fallback if JSON parsing fails - just return raw text split by newlines
		lines := strings.Split(responseText, "\n")
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line != "" && !strings.HasPrefix(line, "[") && !strings.HasSuffix(line, "]") {
				openers = append(openers, line)
			}
		}
		if len(openers) == 0 {
			return nil, fmt.Errorf("failed to parse openers: %w", err)
		}
	}

	return openers, nil
}
