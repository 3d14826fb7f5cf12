package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/tingekit/tinge/internal/colour"
)

const (
	// defaultGeminiModel is the model used when none is specified.
	defaultGeminiModel = "gemini-2.5-flash"

	// defaultGeminiColours is how many colours the model is asked for when
	// the caller does not say.
	defaultGeminiColours = 5
)

// GeminiSource asks a Google Gemini model for a palette matching a text
// prompt. Requires a GOOGLE_API_KEY (or GEMINI_API_KEY) environment
// variable.
type GeminiSource struct {
	Prompt string
	Model  string
}

// NewGeminiSource creates a Gemini palette source for the given prompt.
func NewGeminiSource(prompt, model string) *GeminiSource {
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiSource{Prompt: prompt, Model: model}
}

// Name returns the source name.
func (s *GeminiSource) Name() string { return "gemini" }

// Description returns the source description.
func (s *GeminiSource) Description() string {
	return "Generate a palette from a text prompt using Google Gemini"
}

// clientSetup encapsulates client configuration and creation.
func clientSetup(ctx context.Context) (*genai.Client, error) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY environment variable is required\nGet one at: https://aistudio.google.com/api-keys")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gen AI client: %w", err)
	}
	return client, nil
}

// Generate asks the model for a palette and parses the JSON reply.
func (s *GeminiSource) Generate(ctx context.Context, opts Options) (*colour.Palette, error) {
	if strings.TrimSpace(s.Prompt) == "" {
		return nil, fmt.Errorf("prompt cannot be empty")
	}
	log := opts.logger()

	count := opts.Count
	if count <= 0 {
		count = defaultGeminiColours
	}

	client, err := clientSetup(ctx)
	if err != nil {
		return nil, err
	}

	promptText := fmt.Sprintf(
		"Design a colour palette of exactly %d colours for: %s. "+
			"Respond with a JSON array of objects with keys "+
			`"hex" (6-digit hex string), "name" (short display name) and `+
			`"usage" (one sentence of usage guidance). No other output.`,
		count, s.Prompt)

	log.Debug("calling GenerateContent", "model", s.Model, "colours", count)

	response, err := client.Models.GenerateContent(ctx, s.Model, genai.Text(promptText), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("palette generation failed: %w", err)
	}

	reply := response.Text()
	if reply == "" {
		return nil, fmt.Errorf("no palette data in response")
	}

	records, err := parseGeminiReply(reply)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model reply: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("model reply contained no colours")
	}

	log.Debug("received palette", "colours", len(records))

	colours := make([]colour.Colour, len(records))
	for i, rec := range records {
		colours[i] = colour.NewColour(rec.Hex, recordName(rec, i), recordCategory(rec, i), rec.Usage)
	}

	p := colour.NewPalette(colours)
	p.Prompt = s.Prompt
	p.Name = s.Prompt
	return p, nil
}

// parseGeminiReply decodes the model's JSON reply, tolerating a markdown
// code fence around the payload.
func parseGeminiReply(reply string) ([]colourRecord, error) {
	trimmed := strings.TrimSpace(reply)
	if after, found := strings.CutPrefix(trimmed, "```json"); found {
		trimmed = after
	} else if after, found := strings.CutPrefix(trimmed, "```"); found {
		trimmed = after
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	trimmed = strings.TrimSpace(trimmed)

	var records []colourRecord
	if err := json.Unmarshal([]byte(trimmed), &records); err != nil {
		return nil, err
	}
	return records, nil
}
