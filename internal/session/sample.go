package session

import (
	"fmt"

	"github.com/ironsheep/darkroom-mcp/internal/colormath"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL space with integer components:
// hue 0-360, saturation and lightness as percentages 0-100.
type HSLColor struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// ColorSample is a sampled pixel in multiple representations.
type ColorSample struct {
	Hex string   `json:"hex"` // "#RRGGBB"
	RGB RGBColor `json:"rgb"`
	HSL HSLColor `json:"hsl"`
}

// SampleDisplayed reads the color at (x, y) of an image's displayed output.
// Before any render has been committed it samples the source instead, so
// the result always reflects what a viewer would currently see.
// Coordinates outside the sampled image's bounds are an error.
func (c *Controller) SampleDisplayed(id string, x, y int) (*ColorSample, error) {
	c.mu.Lock()
	entry, ok := c.images[id]
	if !ok {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	img := entry.displayed
	if img == nil {
		img = entry.Source
	}
	c.mu.Unlock()

	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	px := img.NRGBAAt(x, y)
	h, s, l := colormath.RGBToHSL(px.R, px.G, px.B)

	return &ColorSample{
		Hex: fmt.Sprintf("#%02X%02X%02X", px.R, px.G, px.B),
		RGB: RGBColor{R: px.R, G: px.G, B: px.B},
		HSL: HSLColor{H: h, S: s, L: l},
	}, nil
}
