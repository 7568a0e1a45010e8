package cli

import (
	"fmt"
	"log/slog"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/ironsheep/darkroom-mcp/internal/settings"
	"github.com/ironsheep/darkroom-mcp/internal/suggest"
)

func newSuggestCmd() *cobra.Command {
	var presetOut string
	var renderOut string
	var model string

	cmd := &cobra.Command{
		Use:   "suggest <input>",
		Short: "Ask Gemini for adjustment settings for an image",
		Long: `Summarize an image and ask the Gemini suggestion provider for a
candidate set of adjustment settings. Suggested values are clamped to
their valid ranges before use.

The suggestion is saved as a preset file, and can optionally be applied
immediately by rendering to --render-out. Requires GEMINI_API_KEY (a
.env file in the working directory is honored).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeSuggest(cmd, args[0], presetOut, renderOut, model)
		},
	}

	cmd.Flags().StringVar(&presetOut, "preset-out", "suggested.yaml", "Path to write the suggested preset")
	cmd.Flags().StringVar(&renderOut, "render-out", "", "Optionally render the input with the suggestion applied")
	cmd.Flags().StringVar(&model, "model", "", "Gemini model name (defaults to "+suggest.GeminiModel+")")

	return cmd
}

func executeSuggest(cmd *cobra.Command, input, presetOut, renderOut, model string) error {
	slog.Info("Requesting suggestion", "input", input)

	img, err := imaging.Open(input)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}

	provider := suggest.NewGemini()
	provider.Model = model

	candidate, err := suggest.Enhance(cmd.Context(), provider, img)
	if err != nil {
		return fmt.Errorf("suggestion failed: %w", err)
	}
	slog.Info("Suggestion received",
		"brightness", candidate.Brightness,
		"contrast", candidate.Contrast,
		"saturation", candidate.Saturation)

	if err := settings.SavePreset(presetOut, candidate); err != nil {
		return fmt.Errorf("failed to save preset: %w", err)
	}
	slog.Info("Preset written", "preset", presetOut)

	if renderOut != "" {
		return executeRender(input, renderOut, presetOut, nil)
	}
	return nil
}
