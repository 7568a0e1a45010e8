package cli

import (
	"encoding/json"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/ironsheep/darkroom-mcp/internal/suggest"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <input>",
		Short: "Print an image's tone and color statistics",
		Long: `Decode an image and print its summary statistics as JSON: mean
luminance, RMS contrast, mean saturation and the dominant selective
color band. These are the same statistics the suggestion provider
reasons over.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeInspect(args[0])
		},
	}
	return cmd
}

func executeInspect(input string) error {
	img, err := imaging.Open(input)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}

	stats := suggest.Summarize(img)
	out, err := json.MarshalIndent(struct {
		Width  int `json:"width"`
		Height int `json:"height"`
		suggest.Stats
	}{img.Bounds().Dx(), img.Bounds().Dy(), stats}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
