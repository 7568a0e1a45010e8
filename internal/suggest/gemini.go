package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/ironsheep/darkroom-mcp/internal/settings"
)

// GeminiModel is the default model used by the Gemini provider.
const GeminiModel = "gemini-1.5-flash"

// Gemini is a Provider backed by Google Gemini. The API key is read from
// the GEMINI_API_KEY environment variable at call time; with no key set,
// Suggest reports ErrUnavailable.
type Gemini struct {
	// Model overrides GeminiModel when non-empty.
	Model string
}

// NewGemini returns a Gemini provider with the default model.
func NewGemini() *Gemini {
	return &Gemini{}
}

const geminiPrompt = `You are a photo enhancement assistant. Given these image
statistics, suggest adjustment parameters as a single JSON object with keys:
brightness (0.5-1.5), contrast (0.5-1.5), saturation (0-2),
exposure (-0.5-0.5), highlights (-1-1), shadows (-1-1), blacks (-1-1),
hue_rotate (0-360), color_temperature (-100-100), vignette_intensity (0-1),
grain_intensity (0-1). Respond with only the JSON object, no prose.

Image statistics: %s`

// Suggest summarizes the image and asks Gemini for a candidate parameter
// set. The raw response is parsed leniently (code fences stripped) and the
// caller is expected to sanitize the result through the reducer.
func (g *Gemini) Suggest(ctx context.Context, img image.Image) (settings.Adjustments, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return settings.Adjustments{}, fmt.Errorf("%w: GEMINI_API_KEY not set", ErrUnavailable)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return settings.Adjustments{}, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	statsJSON, err := json.Marshal(Summarize(img))
	if err != nil {
		return settings.Adjustments{}, fmt.Errorf("failed to encode image stats: %w", err)
	}

	modelName := g.Model
	if modelName == "" {
		modelName = GeminiModel
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.2)

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(geminiPrompt, statsJSON)))
	if err != nil {
		return settings.Adjustments{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(resp.Candidates) == 0 {
		return settings.Adjustments{}, fmt.Errorf("%w: no candidates returned", ErrUnavailable)
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return settings.Adjustments{}, fmt.Errorf("%w: empty content returned", ErrUnavailable)
	}

	txt, ok := candidate.Content.Parts[0].(genai.Text)
	if !ok {
		return settings.Adjustments{}, fmt.Errorf("%w: unexpected response format", ErrUnavailable)
	}

	return parseCandidate(string(txt))
}

// parseCandidate decodes a JSON parameter object, tolerating markdown code
// fences around it.
func parseCandidate(raw string) (settings.Adjustments, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	a := settings.Defaults()
	if err := json.Unmarshal([]byte(s), &a); err != nil {
		return settings.Adjustments{}, fmt.Errorf("%w: bad candidate payload: %v", ErrUnavailable, err)
	}
	return a, nil
}
