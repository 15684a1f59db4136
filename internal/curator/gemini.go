package curator

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/openglam/artroulette/internal/artwork"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-2.0-flash"

// Gemini generates curatorial notes with Google Gemini.
type Gemini struct {
	Model string
}

// FromEnv returns a Gemini noter when GEMINI_API_KEY is set, nil otherwise.
func FromEnv() Noter {
	if os.Getenv("GEMINI_API_KEY") == "" {
		return nil
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}
	return &Gemini{Model: model}
}

// Note asks Gemini for a two-sentence note about the artwork.
func (g *Gemini) Note(ctx context.Context, a artwork.Artwork) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create new gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.Model)
	model.SetTemperature(0.7)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt(a)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("empty content returned from Gemini")
	}

	if txt, ok := candidate.Content.Parts[0].(genai.Text); ok {
		return strings.TrimSpace(string(txt)), nil
	}

	return "", fmt.Errorf("unexpected response format from Gemini")
}

func prompt(a artwork.Artwork) string {
	return fmt.Sprintf(
		"Write a two-sentence curatorial note for a museum visitor about this artwork. "+
			"Do not invent facts beyond the fields given.\n"+
			"Title: %s\nArtist: %s\nCulture: %s\nCentury: %s\nDate: %s\nMedium: %s",
		a.Title, a.Artist, a.Culture, a.Century, a.Date, a.Medium)
}
