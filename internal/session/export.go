package session

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"

	"github.com/ironsheep/darkroom-mcp/internal/render"
)

// jpegQuality is the encoder quality used for JPEG exports.
const jpegQuality = 95

// Export produces a final-quality render of an image and encodes it in the
// requested format ("png", "jpeg" or "jpg"). The session's settings and
// history are untouched by exporting; encoding failures wrap ErrExport.
func (c *Controller) Export(id, format string) ([]byte, error) {
	c.mu.Lock()
	entry, ok := c.images[id]
	if !ok {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	src := entry.Source
	adj := entry.Settings
	c.mu.Unlock()

	out, err := render.Render(src, adj, render.QualityFinal)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch format {
	case "png":
		if err := png.Encode(&buf, out); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExport, err)
		}
	case "jpeg", "jpg":
		if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExport, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrExport, format)
	}

	return buf.Bytes(), nil
}

// ExportActive is Export against the active image.
func (c *Controller) ExportActive(format string) ([]byte, error) {
	c.mu.Lock()
	entry, err := c.activeLocked()
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	id := entry.ID
	c.mu.Unlock()

	return c.Export(id, format)
}
