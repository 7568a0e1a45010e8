package server

import "github.com/ironsheep/darkroom-mcp/internal/settings"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// bandNames lists the selective color bands accepted by adjustment tools.
var bandNames = []string{"reds", "oranges", "yellows", "greens", "cyans", "blues", "purples", "magentas"}

// settingNames lists the scalar settings accepted by adjust_set.
var settingNames = settings.SettingNames()

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Session Management
		{
			Name:        "session_load_image",
			Description: "Load an image file (PNG, JPEG or GIF) into the editing session with default settings. The first loaded image becomes active.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "session_list_images",
			Description: "List all loaded images in insertion order, with dimensions, history depth, and which one is active.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "session_select_image",
			Description: "Make an image the active one. Each image keeps its own settings and history; switching abandons any in-progress preview.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": map[string]interface{}{
						"type":        "string",
						"description": "Image id from session_load_image or session_list_images",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "session_remove_image",
			Description: "Remove an image from the session. Removing the active image activates its predecessor in load order (or the successor when it was first).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": map[string]interface{}{
						"type":        "string",
						"description": "Image id to remove",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "session_undo",
			Description: "Restore the active image's settings to the most recent committed history entry and return a fresh final-quality render.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Adjustment Operations
		{
			Name:        "adjust_get",
			Description: "Get the active image's current adjustment settings.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "adjust_set",
			Description: "Set one scalar adjustment on the active image. Out-of-range values are clamped to the setting's boundary, never rejected.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"setting": map[string]interface{}{
						"type":        "string",
						"enum":        settingNames,
						"description": "Setting to change. Ranges: brightness/contrast 0.5-1.5, saturation 0-2, exposure -0.5-0.5 stops, highlights/shadows/blacks -1-1, hue_rotate 0-360 degrees, color_temperature -100-100, vignette_intensity/grain_intensity 0-1",
					},
					"value": map[string]interface{}{
						"type":        "number",
						"description": "New value for the setting",
					},
				},
				"required": []string{"setting", "value"},
			},
		},
		{
			Name:        "adjust_selective",
			Description: "Set the hue/saturation/luminance offsets for one selective color band on the active image. Each offset is in -1 to 1 and clamped.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"target": map[string]interface{}{
						"type":        "string",
						"enum":        bandNames,
						"description": "Color band to adjust",
					},
					"hue": map[string]interface{}{
						"type":        "number",
						"description": "Hue offset (-1 to 1, scaled to the band's hue range)",
					},
					"saturation": map[string]interface{}{
						"type":        "number",
						"description": "Saturation offset (-1 to 1)",
					},
					"luminance": map[string]interface{}{
						"type":        "number",
						"description": "Luminance offset (-1 to 1)",
					},
				},
				"required": []string{"target"},
			},
		},
		{
			Name:        "adjust_select_target",
			Description: "Choose the selective color band subsequent editing surfaces operate on. Does not change rendered output.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"target": map[string]interface{}{
						"type":        "string",
						"enum":        bandNames,
						"description": "Color band to make current",
					},
				},
				"required": []string{"target"},
			},
		},
		{
			Name:        "adjust_reset",
			Description: "Restore every adjustment of the active image to its default value.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Preview Lifecycle
		{
			Name:        "preview_begin",
			Description: "Enter preview mode on the active image, snapshotting its settings. Edits made while previewing are committed as one undo step at preview_end.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "preview_end",
			Description: "Leave preview mode. If settings changed since preview_begin the pre-change snapshot joins the undo history; returns a final-quality render either way.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Rendering and Output
		{
			Name:        "image_render",
			Description: "Render the active image through the full adjustment pipeline and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"quality": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"preview", "final"},
						"description": "preview downsamples large images and skips grain for speed; final renders every pixel. Default final",
						"default":     "final",
					},
				},
			},
		},
		{
			Name:        "image_export",
			Description: "Render an image at final quality and encode it in the requested file format. Exporting never changes session state.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": map[string]interface{}{
						"type":        "string",
						"description": "Image id. Defaults to the active image",
					},
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"png", "jpeg", "jpg"},
						"description": "Output encoding. Default png",
						"default":     "png",
					},
				},
			},
		},
		{
			Name:        "image_thumbnail",
			Description: "Get an image's downscaled list thumbnail as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": map[string]interface{}{
						"type":        "string",
						"description": "Image id. Defaults to the active image",
					},
				},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color at a pixel of an image's displayed output (the source, before any render has been committed). Returns hex, RGB and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": map[string]interface{}{
						"type":        "string",
						"description": "Image id. Defaults to the active image",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"x", "y"},
			},
		},

		// Enhancement
		{
			Name:        "image_suggest",
			Description: "Ask the configured suggestion provider for candidate adjustment settings for the active image. Suggested values are clamped to their valid ranges; applying is one undo step.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"apply": map[string]interface{}{
						"type":        "boolean",
						"description": "Apply the suggestion to the active image (previous settings stay one undo away). Default false",
						"default":     false,
					},
				},
			},
		},
	}
}
