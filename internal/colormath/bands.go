package colormath

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Band identifies one of the eight fixed selective-color hue bands.
//
// The string values double as stable keys in presets and tool payloads.
type Band string

const (
	Reds     Band = "reds"
	Oranges  Band = "oranges"
	Yellows  Band = "yellows"
	Greens   Band = "greens"
	Cyans    Band = "cyans"
	Blues    Band = "blues"
	Purples  Band = "purples"
	Magentas Band = "magentas"
)

// bandCenters maps each band to its center hue angle in degrees.
var bandCenters = map[Band]float64{
	Reds:     0,
	Oranges:  30,
	Yellows:  60,
	Greens:   120,
	Cyans:    180,
	Blues:    240,
	Purples:  270,
	Magentas: 300,
}

// BandHalfWidth is the angular half-width of every band in degrees.
// Membership weight falls to zero at this hue distance from the center.
const BandHalfWidth = 30.0

// Bands returns the eight bands in their fixed presentation order.
func Bands() []Band {
	return []Band{Reds, Oranges, Yellows, Greens, Cyans, Blues, Purples, Magentas}
}

// ValidBand reports whether b names one of the eight bands.
func ValidBand(b Band) bool {
	_, ok := bandCenters[b]
	return ok
}

// BandCenter returns the center hue angle of a band in degrees.
// Unknown bands return 0.
func BandCenter(b Band) float64 {
	return bandCenters[b]
}

// BandOffset holds the per-band selective-color adjustment. Each component
// ranges over [-1, 1] with 0 neutral: Hue shifts the band's hue angle,
// Saturation scales its chroma, Luminance lifts or drops its lightness.
type BandOffset struct {
	Hue        float64 `json:"hue" yaml:"hue"`
	Saturation float64 `json:"saturation" yaml:"saturation"`
	Luminance  float64 `json:"luminance" yaml:"luminance"`
}

// IsNeutral reports whether the offset leaves pixels unchanged.
func (o BandOffset) IsNeutral() bool {
	return o.Hue == 0 && o.Saturation == 0 && o.Luminance == 0
}

// Maximum effect of a full-scale band offset: +/-30 degrees of hue,
// +/-100% chroma scale, +/-0.3 lightness.
const (
	bandHueRange = 30.0
	bandLumRange = 0.3
)

// hueDistance returns the absolute angular distance between two hues,
// accounting for wraparound (result in [0, 180]).
func hueDistance(a, b float64) float64 {
	d := math.Abs(math.Mod(a-b, 360))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// BandWeight returns the membership weight of hue (degrees) in band b.
//
// The falloff is a raised cosine over the band's half-width: 1 at the
// center, 0.5 halfway out, 0 at BandHalfWidth and beyond. Adjacent bands
// spaced exactly one half-width apart (reds/oranges/yellows and
// purples/magentas) therefore sum to exactly 1 between their centers;
// wider gaps sum below 1, so total membership never exceeds 1 for any hue.
func BandWeight(b Band, hue float64) float64 {
	center, ok := bandCenters[b]
	if !ok {
		return 0
	}
	d := hueDistance(hue, center)
	if d >= BandHalfWidth {
		return 0
	}
	return 0.5 * (1 + math.Cos(math.Pi*d/BandHalfWidth))
}

// SelectiveColor applies all eight band adjustments to a pixel.
//
// The pixel's hue determines a membership weight per band; each band's
// offsets contribute proportionally to that weight, accumulated across
// bands so a pixel near a band boundary is partially affected by both
// neighbors. Neutral offsets contribute nothing, and a hue outside every
// band's width passes through untouched.
func SelectiveColor(r, g, b float64, offsets map[Band]BandOffset) (float64, float64, float64) {
	h, s, l := colorful.Color{R: r, G: g, B: b}.Hsl()

	var dh, ds, dl float64
	touched := false
	for band, off := range offsets {
		if off.IsNeutral() {
			continue
		}
		w := BandWeight(band, h)
		if w == 0 {
			continue
		}
		touched = true
		dh += off.Hue * bandHueRange * w
		ds += off.Saturation * w
		dl += off.Luminance * bandLumRange * w
	}
	if !touched {
		return r, g, b
	}

	h = math.Mod(h+dh, 360)
	if h < 0 {
		h += 360
	}
	s = Clamp01(s * (1 + ds))
	l = Clamp01(l + dl)

	out := colorful.Hsl(h, s, l)
	return Clamp01(out.R), Clamp01(out.G), Clamp01(out.B)
}
