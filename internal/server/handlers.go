package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/ironsheep/darkroom-mcp/internal/colormath"
	"github.com/ironsheep/darkroom-mcp/internal/render"
	"github.com/ironsheep/darkroom-mcp/internal/settings"
	"github.com/ironsheep/darkroom-mcp/internal/suggest"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "session_load_image", "image_render").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Calls the session controller (and render/suggest as needed)
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Session Management
	case "session_load_image":
		return s.handleSessionLoadImage(args)
	case "session_list_images":
		return s.handleSessionListImages(args)
	case "session_select_image":
		return s.handleSessionSelectImage(args)
	case "session_remove_image":
		return s.handleSessionRemoveImage(args)
	case "session_undo":
		return s.handleSessionUndo(args)

	// Adjustment Operations
	case "adjust_get":
		return s.handleAdjustGet(args)
	case "adjust_set":
		return s.handleAdjustSet(args)
	case "adjust_selective":
		return s.handleAdjustSelective(args)
	case "adjust_select_target":
		return s.handleAdjustSelectTarget(args)
	case "adjust_reset":
		return s.handleAdjustReset(args)

	// Preview Lifecycle
	case "preview_begin":
		return s.handlePreviewBegin(args)
	case "preview_end":
		return s.handlePreviewEnd(args)

	// Rendering and Output
	case "image_render":
		return s.handleImageRender(args)
	case "image_export":
		return s.handleImageExport(args)
	case "image_thumbnail":
		return s.handleImageThumbnail(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Enhancement
	case "image_suggest":
		return s.handleImageSuggest(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// encodePNGBase64 encodes an image as base64 PNG for tool responses.
func encodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// imagePayload is the common shape for tool results carrying pixels.
type imagePayload struct {
	ImageBase64 string `json:"image_base64"`
	Format      string `json:"format"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

func newImagePayload(img *image.NRGBA) (*imagePayload, error) {
	data, err := encodePNGBase64(img)
	if err != nil {
		return nil, err
	}
	return &imagePayload{
		ImageBase64: data,
		Format:      "png",
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
	}, nil
}

// resolveID returns the given id, falling back to the active image.
func (s *Server) resolveID(id string) (string, error) {
	if id != "" {
		return id, nil
	}
	active, ok := s.session.ActiveID()
	if !ok {
		return "", fmt.Errorf("no image id given and no active image")
	}
	return active, nil
}

// === Session Management Handlers ===

type sessionLoadImageArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleSessionLoadImage(args json.RawMessage) (interface{}, error) {
	var a sessionLoadImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	return s.session.LoadImage(filepath.Base(a.Path), data)
}

func (s *Server) handleSessionListImages(json.RawMessage) (interface{}, error) {
	return map[string]interface{}{
		"images": s.session.Images(),
	}, nil
}

type imageIDArgs struct {
	ID string `json:"id"`
}

func (s *Server) handleSessionSelectImage(args json.RawMessage) (interface{}, error) {
	var a imageIDArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := s.session.SelectImage(a.ID); err != nil {
		return nil, err
	}
	adj, err := s.session.ActiveSettings()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"active_id": a.ID,
		"settings":  adj,
	}, nil
}

func (s *Server) handleSessionRemoveImage(args json.RawMessage) (interface{}, error) {
	var a imageIDArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := s.session.RemoveImage(a.ID); err != nil {
		return nil, err
	}
	active, _ := s.session.ActiveID()
	return map[string]interface{}{
		"removed":   a.ID,
		"active_id": active,
	}, nil
}

func (s *Server) handleSessionUndo(json.RawMessage) (interface{}, error) {
	out, err := s.session.Undo()
	if err != nil {
		return nil, err
	}
	payload, err := newImagePayload(out)
	if err != nil {
		return nil, err
	}
	adj, err := s.session.ActiveSettings()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"settings": adj,
		"image":    payload,
	}, nil
}

// === Adjustment Handlers ===

func (s *Server) handleAdjustGet(json.RawMessage) (interface{}, error) {
	adj, err := s.session.ActiveSettings()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"settings": adj}, nil
}

type adjustSetArgs struct {
	Setting string  `json:"setting"`
	Value   float64 `json:"value"`
}

func (s *Server) handleAdjustSet(args json.RawMessage) (interface{}, error) {
	var a adjustSetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	action, err := settings.ActionFor(a.Setting, a.Value)
	if err != nil {
		return nil, err
	}
	if err := s.session.Apply(action); err != nil {
		return nil, err
	}
	adj, err := s.session.ActiveSettings()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"settings": adj}, nil
}

type adjustSelectiveArgs struct {
	Target     string  `json:"target"`
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Luminance  float64 `json:"luminance"`
}

func (s *Server) handleAdjustSelective(args json.RawMessage) (interface{}, error) {
	var a adjustSelectiveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	band := colormath.Band(a.Target)
	if !colormath.ValidBand(band) {
		return nil, fmt.Errorf("unknown selective color band: %s", a.Target)
	}
	err := s.session.Apply(settings.SetSelectiveColor{
		Target: band,
		Offset: colormath.BandOffset{
			Hue:        a.Hue,
			Saturation: a.Saturation,
			Luminance:  a.Luminance,
		},
	})
	if err != nil {
		return nil, err
	}
	adj, err := s.session.ActiveSettings()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"settings": adj}, nil
}

type adjustSelectTargetArgs struct {
	Target string `json:"target"`
}

func (s *Server) handleAdjustSelectTarget(args json.RawMessage) (interface{}, error) {
	var a adjustSelectTargetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	band := colormath.Band(a.Target)
	if !colormath.ValidBand(band) {
		return nil, fmt.Errorf("unknown selective color band: %s", a.Target)
	}
	if err := s.session.Apply(settings.SetActiveTarget{Target: band}); err != nil {
		return nil, err
	}
	return map[string]interface{}{"active_target": band}, nil
}

func (s *Server) handleAdjustReset(json.RawMessage) (interface{}, error) {
	if err := s.session.Apply(settings.Reset{}); err != nil {
		return nil, err
	}
	adj, err := s.session.ActiveSettings()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"settings": adj}, nil
}

// === Preview Lifecycle Handlers ===

func (s *Server) handlePreviewBegin(json.RawMessage) (interface{}, error) {
	if err := s.session.BeginPreview(); err != nil {
		return nil, err
	}
	return map[string]interface{}{"previewing": true}, nil
}

func (s *Server) handlePreviewEnd(json.RawMessage) (interface{}, error) {
	out, err := s.session.EndPreview()
	if err != nil {
		return nil, err
	}
	payload, err := newImagePayload(out)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"previewing": false,
		"image":      payload,
	}, nil
}

// === Rendering and Output Handlers ===

type imageRenderArgs struct {
	Quality string `json:"quality"`
}

func (s *Server) handleImageRender(args json.RawMessage) (interface{}, error) {
	var a imageRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	quality := render.ParseQuality(a.Quality)

	id, err := s.resolveID("")
	if err != nil {
		return nil, err
	}
	out, seq, err := s.session.RenderActive(quality)
	if err != nil {
		return nil, err
	}
	displayed, err := s.session.CommitDisplay(id, seq, out)
	if err != nil {
		return nil, err
	}

	payload, err := newImagePayload(out)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"quality":   quality.String(),
		"displayed": displayed,
		"image":     payload,
	}, nil
}

type imageExportArgs struct {
	ID     string `json:"id"`
	Format string `json:"format"`
}

func (s *Server) handleImageExport(args json.RawMessage) (interface{}, error) {
	var a imageExportArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Format == "" {
		a.Format = "png"
	}
	id, err := s.resolveID(a.ID)
	if err != nil {
		return nil, err
	}
	data, err := s.session.Export(id, a.Format)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"id":           id,
		"format":       a.Format,
		"size_bytes":   len(data),
		"image_base64": base64.StdEncoding.EncodeToString(data),
	}, nil
}

func (s *Server) handleImageThumbnail(args json.RawMessage) (interface{}, error) {
	var a imageIDArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	id, err := s.resolveID(a.ID)
	if err != nil {
		return nil, err
	}
	thumb, err := s.session.ThumbnailOf(id)
	if err != nil {
		return nil, err
	}
	return newImagePayload(thumb)
}

type imageSampleColorArgs struct {
	ID string `json:"id"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	id, err := s.resolveID(a.ID)
	if err != nil {
		return nil, err
	}
	return s.session.SampleDisplayed(id, a.X, a.Y)
}

// === Enhancement Handlers ===

type imageSuggestArgs struct {
	Apply bool `json:"apply"`
}

func (s *Server) handleImageSuggest(args json.RawMessage) (interface{}, error) {
	var a imageSuggestArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	id, err := s.resolveID("")
	if err != nil {
		return nil, err
	}
	displayed, err := s.session.Displayed(id)
	if err != nil {
		return nil, err
	}
	var img image.Image = displayed
	if displayed == nil {
		thumb, err := s.session.ThumbnailOf(id)
		if err != nil {
			return nil, err
		}
		img = thumb
	}

	candidate, err := suggest.Enhance(context.Background(), s.provider, img)
	if err != nil {
		return nil, err
	}
	if a.Apply {
		if err := s.session.ApplySuggestion(candidate); err != nil {
			return nil, err
		}
	}
	return map[string]interface{}{
		"applied":  a.Apply,
		"settings": candidate,
	}, nil
}
