package suggest

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/darkroom-mcp/internal/colormath"
	"github.com/ironsheep/darkroom-mcp/internal/settings"
)

// fakeProvider returns a fixed candidate or error.
type fakeProvider struct {
	candidate settings.Adjustments
	err       error
}

func (f *fakeProvider) Suggest(_ context.Context, _ image.Image) (settings.Adjustments, error) {
	return f.candidate, f.err
}

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestEnhanceSanitizesCandidate(t *testing.T) {
	cand := settings.Defaults()
	cand.Brightness = 7           // out of range
	cand.ColorTemperature = -9999 // out of range
	cand.Exposure = 0.3           // in range, must survive

	p := &fakeProvider{candidate: cand}
	got, err := Enhance(context.Background(), p, solidImage(4, 4, color.NRGBA{128, 128, 128, 255}))
	if err != nil {
		t.Fatalf("Enhance failed: %v", err)
	}

	if got.Brightness != settings.BrightnessMax {
		t.Errorf("brightness = %v, want clamped %v", got.Brightness, settings.BrightnessMax)
	}
	if got.ColorTemperature != settings.TemperatureMin {
		t.Errorf("temperature = %v, want clamped %v", got.ColorTemperature, settings.TemperatureMin)
	}
	if got.Exposure != 0.3 {
		t.Errorf("exposure = %v, want 0.3", got.Exposure)
	}
}

func TestEnhanceNilProvider(t *testing.T) {
	_, err := Enhance(context.Background(), nil, solidImage(2, 2, color.NRGBA{0, 0, 0, 255}))
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestEnhancePropagatesProviderError(t *testing.T) {
	p := &fakeProvider{err: errors.New("backend down")}
	if _, err := Enhance(context.Background(), p, solidImage(2, 2, color.NRGBA{0, 0, 0, 255})); err == nil {
		t.Error("provider error should surface")
	}
}

func TestGeminiUnavailableWithoutKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	g := NewGemini()
	_, err := g.Suggest(context.Background(), solidImage(2, 2, color.NRGBA{0, 0, 0, 255}))
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestParseCandidate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"plain json", `{"brightness": 1.2}`, false},
		{"fenced json", "```json\n{\"brightness\": 1.2}\n```", false},
		{"bare fence", "```\n{\"brightness\": 1.2}\n```", false},
		{"prose", "I think you should brighten it.", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := parseCandidate(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCandidate failed: %v", err)
			}
			if a.Brightness != 1.2 {
				t.Errorf("brightness = %v, want 1.2", a.Brightness)
			}
			// Missing fields keep their defaults.
			if a.Contrast != 1 {
				t.Errorf("contrast default lost: %v", a.Contrast)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	// Mid-gray: luminance 0.5, no contrast, no saturation, no dominant band.
	s := Summarize(solidImage(32, 32, color.NRGBA{128, 128, 128, 255}))
	if s.MeanLuma < 0.49 || s.MeanLuma > 0.52 {
		t.Errorf("gray mean luma = %v, want ~0.5", s.MeanLuma)
	}
	if s.RMSContrast > 0.01 {
		t.Errorf("uniform image contrast = %v, want ~0", s.RMSContrast)
	}
	if s.DominantBand != "" {
		t.Errorf("achromatic image has dominant band %q", s.DominantBand)
	}

	// Solid red: reds dominate, saturation high.
	s = Summarize(solidImage(32, 32, color.NRGBA{255, 0, 0, 255}))
	if s.DominantBand != colormath.Reds {
		t.Errorf("dominant band = %q, want reds", s.DominantBand)
	}
	if s.MeanSaturation < 0.9 {
		t.Errorf("red mean saturation = %v, want ~1", s.MeanSaturation)
	}

	// Half dark, half bright: contrast well above zero.
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			v := uint8(30)
			if x >= 16 {
				v = 220
			}
			img.SetNRGBA(x, y, color.NRGBA{v, v, v, 255})
		}
	}
	s = Summarize(img)
	if s.RMSContrast < 0.2 {
		t.Errorf("split image contrast = %v, want > 0.2", s.RMSContrast)
	}
}
