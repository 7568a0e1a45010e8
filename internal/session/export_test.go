package session

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/darkroom-mcp/internal/settings"
)

func TestExportPNG(t *testing.T) {
	c := New()
	info := loadTestImage(t, c, "a.png")

	if err := c.Apply(settings.SetBrightness{Value: 1.2}); err != nil {
		t.Fatal(err)
	}

	data, err := c.Export(info.ID, "png")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("exported bytes do not decode: %v", err)
	}
	if format != "png" {
		t.Errorf("format = %s, want png", format)
	}

	r, _, _, _ := img.At(5, 5).RGBA()
	if got := uint8(r >> 8); got != 154 {
		t.Errorf("exported pixel = %d, want 154", got)
	}
}

func TestExportJPEG(t *testing.T) {
	c := New()
	info := loadTestImage(t, c, "a.png")

	for _, format := range []string{"jpeg", "jpg"} {
		data, err := c.Export(info.ID, format)
		if err != nil {
			t.Fatalf("Export(%s) failed: %v", format, err)
		}
		if _, decoded, err := image.Decode(bytes.NewReader(data)); err != nil || decoded != "jpeg" {
			t.Errorf("Export(%s) produced %s (err %v), want jpeg", format, decoded, err)
		}
	}
}

func TestExportErrors(t *testing.T) {
	c := New()
	info := loadTestImage(t, c, "a.png")

	if _, err := c.Export(info.ID, "webp"); !errors.Is(err, ErrExport) {
		t.Errorf("expected ErrExport for unsupported format, got %v", err)
	}
	if _, err := c.Export("no-such-id", "png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// A failed export leaves settings and history alone.
	adj, _ := c.ActiveSettings()
	if !adj.Equal(settings.Defaults()) {
		t.Error("failed export changed settings")
	}
}

func TestExportActive(t *testing.T) {
	c := New()
	loadTestImage(t, c, "a.png")
	loadTestImage(t, c, "b.png")

	data, err := c.ExportActive("png")
	if err != nil {
		t.Fatalf("ExportActive failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("empty export")
	}

	empty := New()
	if _, err := empty.ExportActive("png"); !errors.Is(err, ErrNoActiveImage) {
		t.Errorf("expected ErrNoActiveImage, got %v", err)
	}
}

func TestExportUniformCorners(t *testing.T) {
	// With vignette and grain at their defaults an exported gray image has
	// clean corners and no noise.
	c := New()
	info, err := c.LoadImage("gray.png", encodePNG(t, 64, 64, color.NRGBA{128, 128, 128, 255}))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Apply(settings.SetBrightness{Value: 1.2}); err != nil {
		t.Fatal(err)
	}

	data, err := c.Export(info.ID, "png")
	if err != nil {
		t.Fatal(err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range [][2]int{{0, 0}, {63, 0}, {0, 63}, {63, 63}, {32, 32}} {
		r, g, b, _ := img.At(p[0], p[1]).RGBA()
		if uint8(r>>8) != 154 || uint8(g>>8) != 154 || uint8(b>>8) != 154 {
			t.Errorf("pixel (%d,%d) = (%d,%d,%d), want uniform 154",
				p[0], p[1], uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}
}
