package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/darkroom-mcp/internal/session"
	"github.com/ironsheep/darkroom-mcp/internal/settings"
)

func newRenderCmd() *cobra.Command {
	var presetPath string
	var overrides []string

	cmd := &cobra.Command{
		Use:   "render <input> <output>",
		Short: "Render an image through the adjustment pipeline",
		Long: `Render an image file through the full adjustment pipeline and write
the result. Adjustments come from a preset file, from --set overrides,
or both; overrides are applied after the preset, one at a time, with
out-of-range values clamped.

The output encoding follows the output file extension (.png, .jpg
or .jpeg).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeRender(args[0], args[1], presetPath, overrides)
		},
	}

	cmd.Flags().StringVar(&presetPath, "preset", "", "Path to a preset YAML file")
	cmd.Flags().StringArrayVar(&overrides, "set", nil, "Override one setting as name=value (repeatable), e.g. --set brightness=1.2")

	return cmd
}

func executeRender(input, output, presetPath string, overrides []string) error {
	slog.Info("Rendering image", "input", input, "output", output)

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	c := session.New()
	info, err := c.LoadImage(filepath.Base(input), data)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	slog.Info("Image loaded", "width", info.Width, "height", info.Height)

	if presetPath != "" {
		preset, err := settings.LoadPreset(presetPath)
		if err != nil {
			return fmt.Errorf("failed to load preset: %w", err)
		}
		if err := c.ApplySuggestion(preset); err != nil {
			return err
		}
		slog.Info("Preset applied", "preset", presetPath)
	}

	for _, override := range overrides {
		action, err := parseOverride(override)
		if err != nil {
			return err
		}
		if err := c.Apply(action); err != nil {
			return err
		}
	}

	format := outputFormat(output)
	encoded, err := c.Export(info.ID, format)
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	if err := os.WriteFile(output, encoded, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	slog.Info("Image written", "output", output, "format", format, "bytes", len(encoded))
	return nil
}

// parseOverride turns a name=value flag into a reducer action.
func parseOverride(s string) (settings.Action, error) {
	name, raw, ok := strings.Cut(s, "=")
	if !ok {
		return nil, fmt.Errorf("invalid --set %q, want name=value", s)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid --set value %q: %v", raw, err)
	}
	return settings.ActionFor(strings.TrimSpace(name), value)
}

// outputFormat maps an output path's extension to an export format,
// defaulting to PNG.
func outputFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg":
		return "jpg"
	case ".jpeg":
		return "jpeg"
	default:
		return "png"
	}
}
