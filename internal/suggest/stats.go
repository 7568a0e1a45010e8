package suggest

import (
	"image"
	"math"

	"github.com/ironsheep/darkroom-mcp/internal/colormath"
)

// Stats is a compact numeric summary of an image, enough for a provider to
// reason about tone and color without receiving the pixels themselves.
type Stats struct {
	// MeanLuma is the average Rec.601 luminance in [0, 1].
	MeanLuma float64 `json:"mean_luma"`

	// RMSContrast is the standard deviation of luminance in [0, 1].
	RMSContrast float64 `json:"rms_contrast"`

	// MeanSaturation is the average HSL saturation in [0, 1].
	MeanSaturation float64 `json:"mean_saturation"`

	// DominantBand names the selective-color band holding the largest
	// share of pixel hue membership, or "" for a near-achromatic image.
	DominantBand colormath.Band `json:"dominant_band"`
}

// statSampleStride subsamples large images; statistics do not need every
// pixel.
const statSampleStride = 4

// Summarize computes image statistics in a single pass.
func Summarize(img image.Image) Stats {
	bounds := img.Bounds()

	var count float64
	var sumLuma, sumLumaSq, sumSat float64
	bandShare := make(map[colormath.Band]float64, 8)

	for y := bounds.Min.Y; y < bounds.Max.Y; y += statSampleStride {
		for x := bounds.Min.X; x < bounds.Max.X; x += statSampleStride {
			r16, g16, b16, _ := img.At(x, y).RGBA()
			r := float64(r16) / 65535
			g := float64(g16) / 65535
			b := float64(b16) / 65535

			lum := colormath.Luminance(r, g, b)
			sumLuma += lum
			sumLumaSq += lum * lum

			h, s, _ := colormath.RGBToHSL(uint8(r16>>8), uint8(g16>>8), uint8(b16>>8))
			sumSat += float64(s) / 100

			if s >= 10 {
				for _, band := range colormath.Bands() {
					if w := colormath.BandWeight(band, float64(h)); w > 0 {
						bandShare[band] += w
					}
				}
			}
			count++
		}
	}

	if count == 0 {
		return Stats{}
	}

	mean := sumLuma / count
	variance := sumLumaSq/count - mean*mean
	if variance < 0 {
		variance = 0
	}

	var dominant colormath.Band
	best := 0.0
	for _, band := range colormath.Bands() {
		if share := bandShare[band]; share > best {
			best = share
			dominant = band
		}
	}

	return Stats{
		MeanLuma:       mean,
		RMSContrast:    math.Sqrt(variance),
		MeanSaturation: sumSat / count,
		DominantBand:   dominant,
	}
}
