package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
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

// GenerateListingDescription drafts a listing description from the facts a
// landlord already entered. Falls back to a template when the API is
// unavailable so listing creation never blocks on it.
func (c *GeminiClient) GenerateListingDescription(ctx context.Context, title, city string, rooms int, rent float64, amenities []string) (string, error) {
	prompt := fmt.Sprintf(`
		Write a rental listing description for a room-rental marketplace.
		Title: %s
		City: %s
		Rooms: %d
		Monthly rent: %.0f
		Amenities: %s

		Task: Write 2-3 inviting sentences a landlord could publish as-is.
		Do not invent amenities that are not listed.
		Output: Just the description text.
	`, title, city, rooms, rent, strings.Join(amenities, ", "))

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return c.fallbackDescription(title, city, rooms, amenities), nil
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return c.fallbackDescription(title, city, rooms, amenities), nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	return strings.TrimSpace(sb.String()), nil
}

func (c *GeminiClient) fallbackDescription(title, city string, rooms int, amenities []string) string {
	desc := fmt.Sprintf("%s — a %d-room home in %s.", title, rooms, city)
	if len(amenities) > 0 {
		desc += " Includes " + strings.Join(amenities, ", ") + "."
	}
	return desc
}
