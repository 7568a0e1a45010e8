package colormath

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Clamp restricts v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 restricts a normalized channel value to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Luminance returns the Rec.601 luma of a pixel with normalized channels.
//
// This is the luminance definition used by the tonal band weights, the
// saturation stage, and the grain noise, so all luminance-relative stages
// agree on what "bright" means for a given pixel.
func Luminance(r, g, b float64) float64 {
	return 0.299*r + 0.587*g + 0.114*b
}

// smoothstep is the standard cubic Hermite ramp: 0 at or below edge0,
// 1 at or above edge1, smooth in between.
func smoothstep(edge0, edge1, x float64) float64 {
	t := Clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// Exposure scales all channels by 2^stops.
//
// stops ranges over [-0.5, 0.5] in the settings model; 0 is neutral.
func Exposure(r, g, b, stops float64) (float64, float64, float64) {
	f := math.Exp2(stops)
	return Clamp01(r * f), Clamp01(g * f), Clamp01(b * f)
}

// Brightness scales all channels linearly. factor 1.0 is neutral.
func Brightness(r, g, b, factor float64) (float64, float64, float64) {
	return Clamp01(r * factor), Clamp01(g * factor), Clamp01(b * factor)
}

// Contrast scales each channel's distance from mid-gray 0.5.
// factor 1.0 is neutral; below 1 flattens, above 1 steepens.
func Contrast(r, g, b, factor float64) (float64, float64, float64) {
	adj := func(v float64) float64 { return Clamp01((v-0.5)*factor + 0.5) }
	return adj(r), adj(g), adj(b)
}

// Tonal band geometry. Each parameter affects a disjoint luminance band via
// a smooth weight: highlights ramp up over [0.5, 1], shadows ramp up as luma
// falls through [0.5, 0], blacks are concentrated below 0.25.
const (
	highlightStrength = 0.25
	shadowStrength    = 0.25
	blackStrength     = 0.2
)

// HighlightWeight returns how strongly a pixel of the given luminance is
// affected by the highlights parameter (0 at or below mid-gray, 1 at white).
func HighlightWeight(lum float64) float64 {
	return smoothstep(0.5, 1.0, lum)
}

// ShadowWeight returns the shadows band weight (1 at black, 0 at mid-gray).
func ShadowWeight(lum float64) float64 {
	return 1 - smoothstep(0.0, 0.5, lum)
}

// BlackWeight returns the blacks band weight, concentrated near black
// (1 at luminance 0, falling to 0 by luminance 0.25).
func BlackWeight(lum float64) float64 {
	return 1 - smoothstep(0.0, 0.25, lum)
}

// TonalBands applies the highlights, shadows and blacks adjustments.
//
// Each parameter ranges over [-1, 1] with 0 neutral. The per-pixel delta is
// additive: parameter x band weight x a fixed strength constant, applied
// equally to all channels so the adjustment shifts tone without shifting hue.
func TonalBands(r, g, b, highlights, shadows, blacks float64) (float64, float64, float64) {
	lum := Luminance(r, g, b)

	delta := highlights * highlightStrength * HighlightWeight(lum)
	delta += shadows * shadowStrength * ShadowWeight(lum)
	delta += blacks * blackStrength * BlackWeight(lum)

	return Clamp01(r + delta), Clamp01(g + delta), Clamp01(b + delta)
}

// Saturation scales each channel's distance from the pixel's luminance.
// factor 0 produces grayscale, 1 is neutral, 2 doubles chroma.
func Saturation(r, g, b, factor float64) (float64, float64, float64) {
	lum := Luminance(r, g, b)
	adj := func(v float64) float64 { return Clamp01(lum + (v-lum)*factor) }
	return adj(r), adj(g), adj(b)
}

// HueRotate shifts the pixel's hue angle by degrees, wrapping at 360.
// 0 is neutral. The rotation happens in HSL space so saturation and
// lightness are preserved exactly.
func HueRotate(r, g, b, degrees float64) (float64, float64, float64) {
	h, s, l := colorful.Color{R: r, G: g, B: b}.Hsl()
	h = math.Mod(h+degrees, 360)
	if h < 0 {
		h += 360
	}
	out := colorful.Hsl(h, s, l)
	return Clamp01(out.R), Clamp01(out.G), Clamp01(out.B)
}

// Temperature applies a warm/cool shift by scaling red against blue.
//
// temp ranges over [-100, 100]; positive warms (more red, less blue),
// negative cools. The green channel is untouched. At the extremes the
// red/blue channels are scaled by +/-10%.
func Temperature(r, g, b, temp float64) (float64, float64, float64) {
	t := temp / 100
	return Clamp01(r * (1 + 0.1*t)), Clamp01(g), Clamp01(b * (1 - 0.1*t))
}

// VignetteFactor returns the multiplicative darkening factor for the pixel
// at (x, y) in a w x h image.
//
// The factor is 1 at the image center and falls off quadratically with
// normalized distance, reaching 1-intensity at the corners. intensity
// ranges over [0, 1]; 0 is neutral.
func VignetteFactor(x, y, w, h int, intensity float64) float64 {
	if intensity <= 0 {
		return 1
	}
	cx := float64(w-1) / 2
	cy := float64(h-1) / 2
	dx := float64(x) - cx
	dy := float64(y) - cy
	// Normalize so the corner distance is exactly 1.
	corner := math.Hypot(cx, cy)
	if corner == 0 {
		return 1
	}
	d := math.Hypot(dx, dy) / corner
	return Clamp01(1 - intensity*d*d)
}
