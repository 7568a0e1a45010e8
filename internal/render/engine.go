package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"

	"github.com/ironsheep/darkroom-mcp/internal/colormath"
	"github.com/ironsheep/darkroom-mcp/internal/settings"
)

// Quality selects the render fidelity level.
type Quality int

const (
	// QualityPreview downsamples large sources and skips grain. Used for
	// live feedback during continuous adjustment.
	QualityPreview Quality = iota

	// QualityFinal runs the full pipeline at full resolution. Used for
	// committed display and export.
	QualityFinal
)

// String returns the quality name used in tool payloads and logs.
func (q Quality) String() string {
	switch q {
	case QualityPreview:
		return "preview"
	case QualityFinal:
		return "final"
	default:
		return fmt.Sprintf("quality(%d)", int(q))
	}
}

// ParseQuality maps a quality name to its value. Unknown names default to
// final so that a misconfigured caller never silently degrades an export.
func ParseQuality(s string) Quality {
	if s == "preview" {
		return QualityPreview
	}
	return QualityFinal
}

// ErrUnsupported reports a source the pipeline cannot process.
var ErrUnsupported = errors.New("unsupported source image")

// previewMaxDim caps the longest side of a preview render.
const previewMaxDim = 1024

// grainSeed fixes the grain pattern so repeated final renders of the same
// settings are reproducible.
const grainSeed uint64 = 0x5EED0FDA12C407A1

// Render applies the adjustment pipeline to src and returns the result.
//
// The stage order is fixed (see package colormath); quality may downsample
// and skip grain but never reorders or drops other stages. The source is
// read only and may be shared by concurrent Render calls.
func Render(src image.Image, adj settings.Adjustments, q Quality) (*image.NRGBA, error) {
	if src == nil {
		return nil, ErrUnsupported
	}
	bounds := src.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty bounds", ErrUnsupported)
	}

	out := imaging.Clone(src)
	if q == QualityPreview {
		out = downsample(out)
	}

	plan := buildPlan(adj, q)
	if plan.empty() {
		return out, nil
	}

	w := out.Bounds().Dx()
	h := out.Bounds().Dy()

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				i := out.PixOffset(x, y)
				r := float64(out.Pix[i+0]) / 255
				g := float64(out.Pix[i+1]) / 255
				b := float64(out.Pix[i+2]) / 255

				r, g, b = plan.applyColor(r, g, b)

				if plan.vignette {
					f := colormath.VignetteFactor(x, y, w, h, adj.VignetteIntensity)
					r, g, b = r*f, g*f, b*f
				}
				if plan.grain {
					r, g, b = colormath.Grain(r, g, b, x, y, adj.GrainIntensity, grainSeed)
				}

				out.Pix[i+0] = uint8(r*255 + 0.5)
				out.Pix[i+1] = uint8(g*255 + 0.5)
				out.Pix[i+2] = uint8(b*255 + 0.5)
			}
		}
	})

	return out, nil
}

// plan records which stages are active for one render so neutral stages
// cost nothing and, more importantly, introduce no rounding drift.
type renderPlan struct {
	adj settings.Adjustments

	exposure    bool
	brightness  bool
	contrast    bool
	tonal       bool
	saturation  bool
	hueRotate   bool
	temperature bool
	selective   bool
	vignette    bool
	grain       bool
}

func buildPlan(adj settings.Adjustments, q Quality) renderPlan {
	return renderPlan{
		adj:         adj,
		exposure:    adj.Exposure != 0,
		brightness:  adj.Brightness != 1,
		contrast:    adj.Contrast != 1,
		tonal:       adj.Highlights != 0 || adj.Shadows != 0 || adj.Blacks != 0,
		saturation:  adj.Saturation != 1,
		hueRotate:   adj.HueRotate != 0 && adj.HueRotate != 360,
		temperature: adj.ColorTemperature != 0,
		selective:   !adj.SelectiveNeutral(),
		vignette:    adj.VignetteIntensity > 0,
		grain:       adj.GrainIntensity > 0 && q == QualityFinal,
	}
}

func (p renderPlan) empty() bool {
	return !(p.exposure || p.brightness || p.contrast || p.tonal ||
		p.saturation || p.hueRotate || p.temperature || p.selective ||
		p.vignette || p.grain)
}

// applyColor runs the position-independent stages (1-8) in pipeline order.
func (p renderPlan) applyColor(r, g, b float64) (float64, float64, float64) {
	if p.exposure {
		r, g, b = colormath.Exposure(r, g, b, p.adj.Exposure)
	}
	if p.brightness {
		r, g, b = colormath.Brightness(r, g, b, p.adj.Brightness)
	}
	if p.contrast {
		r, g, b = colormath.Contrast(r, g, b, p.adj.Contrast)
	}
	if p.tonal {
		r, g, b = colormath.TonalBands(r, g, b, p.adj.Highlights, p.adj.Shadows, p.adj.Blacks)
	}
	if p.saturation {
		r, g, b = colormath.Saturation(r, g, b, p.adj.Saturation)
	}
	if p.hueRotate {
		r, g, b = colormath.HueRotate(r, g, b, p.adj.HueRotate)
	}
	if p.temperature {
		r, g, b = colormath.Temperature(r, g, b, p.adj.ColorTemperature)
	}
	if p.selective {
		r, g, b = colormath.SelectiveColor(r, g, b, p.adj.SelectiveColors)
	}
	return r, g, b
}

// downsample scales the image so its longest side is at most previewMaxDim.
// Smaller images pass through untouched, so preview and final are
// pixel-comparable for typical test fixtures.
func downsample(img *image.NRGBA) *image.NRGBA {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	longest := w
	if h > longest {
		longest = h
	}
	if longest <= previewMaxDim {
		return img
	}

	scale := float64(previewMaxDim) / float64(longest)
	nw := int(float64(w)*scale + 0.5)
	nh := int(float64(h)*scale + 0.5)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
