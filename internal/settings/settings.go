package settings

import (
	"github.com/ironsheep/darkroom-mcp/internal/colormath"
)

// Declared parameter ranges. Multiplicative parameters are neutral at 1,
// additive ones at 0.
const (
	BrightnessMin = 0.5
	BrightnessMax = 1.5
	ContrastMin   = 0.5
	ContrastMax   = 1.5
	SaturationMin = 0.0
	SaturationMax = 2.0
	ExposureMin   = -0.5
	ExposureMax   = 0.5
	TonalMin      = -1.0 // highlights, shadows, blacks
	TonalMax      = 1.0
	HueRotateMin  = 0.0
	HueRotateMax  = 360.0
	TemperatureMin = -100.0
	TemperatureMax = 100.0
	IntensityMin  = 0.0 // vignette, grain
	IntensityMax  = 1.0
	OffsetMin     = -1.0 // selective-color offset components
	OffsetMax     = 1.0
)

// Adjustments is the complete set of adjustment parameters for one image.
//
// The zero value is not meaningful; use Defaults. Values are treated as
// immutable: all evolution goes through Reduce, which returns a new value.
type Adjustments struct {
	Brightness        float64 `json:"brightness" yaml:"brightness"`
	Contrast          float64 `json:"contrast" yaml:"contrast"`
	Saturation        float64 `json:"saturation" yaml:"saturation"`
	Exposure          float64 `json:"exposure" yaml:"exposure"`
	Highlights        float64 `json:"highlights" yaml:"highlights"`
	Shadows           float64 `json:"shadows" yaml:"shadows"`
	Blacks            float64 `json:"blacks" yaml:"blacks"`
	HueRotate         float64 `json:"hue_rotate" yaml:"hue_rotate"`
	ColorTemperature  float64 `json:"color_temperature" yaml:"color_temperature"`
	VignetteIntensity float64 `json:"vignette_intensity" yaml:"vignette_intensity"`
	GrainIntensity    float64 `json:"grain_intensity" yaml:"grain_intensity"`

	// SelectiveColors maps each of the eight hue bands to its offset.
	// Rendering applies all eight unconditionally; bands absent from the
	// map are neutral.
	SelectiveColors map[colormath.Band]colormath.BandOffset `json:"selective_colors" yaml:"selective_colors"`

	// ActiveSelectiveTarget is the band a controlling surface is currently
	// editing. It has no effect on rendering.
	ActiveSelectiveTarget colormath.Band `json:"active_selective_target" yaml:"active_selective_target"`
}

// Defaults returns the neutral settings value: every parameter at its
// range's neutral point, all selective-color offsets zero, reds as the
// active editing target.
func Defaults() Adjustments {
	sel := make(map[colormath.Band]colormath.BandOffset, 8)
	for _, b := range colormath.Bands() {
		sel[b] = colormath.BandOffset{}
	}
	return Adjustments{
		Brightness:            1,
		Contrast:              1,
		Saturation:            1,
		SelectiveColors:       sel,
		ActiveSelectiveTarget: colormath.Reds,
	}
}

// Band returns the offset for one band, treating absent entries as neutral.
func (a Adjustments) Band(b colormath.Band) colormath.BandOffset {
	return a.SelectiveColors[b]
}

// SelectiveNeutral reports whether every band offset is neutral.
func (a Adjustments) SelectiveNeutral() bool {
	for _, off := range a.SelectiveColors {
		if !off.IsNeutral() {
			return false
		}
	}
	return true
}

// Equal reports whether two settings values would render identically and
// share the same editing target. Adjustments contains a map, so == is not
// available.
func (a Adjustments) Equal(b Adjustments) bool {
	if a.Brightness != b.Brightness ||
		a.Contrast != b.Contrast ||
		a.Saturation != b.Saturation ||
		a.Exposure != b.Exposure ||
		a.Highlights != b.Highlights ||
		a.Shadows != b.Shadows ||
		a.Blacks != b.Blacks ||
		a.HueRotate != b.HueRotate ||
		a.ColorTemperature != b.ColorTemperature ||
		a.VignetteIntensity != b.VignetteIntensity ||
		a.GrainIntensity != b.GrainIntensity ||
		a.ActiveSelectiveTarget != b.ActiveSelectiveTarget {
		return false
	}
	for _, band := range colormath.Bands() {
		if a.Band(band) != b.Band(band) {
			return false
		}
	}
	return true
}

// Sanitize runs every field through its reducer action, clamping anything
// out of range. Used for values that arrive from outside the reducer, such
// as decoded preset files and suggestion provider results.
func Sanitize(a Adjustments) Adjustments {
	out := Reduce(Defaults(), SetBrightness{a.Brightness})
	out = Reduce(out, SetContrast{a.Contrast})
	out = Reduce(out, SetSaturation{a.Saturation})
	out = Reduce(out, SetExposure{a.Exposure})
	out = Reduce(out, SetHighlights{a.Highlights})
	out = Reduce(out, SetShadows{a.Shadows})
	out = Reduce(out, SetBlacks{a.Blacks})
	out = Reduce(out, SetHueRotate{a.HueRotate})
	out = Reduce(out, SetColorTemperature{a.ColorTemperature})
	out = Reduce(out, SetVignette{a.VignetteIntensity})
	out = Reduce(out, SetGrain{a.GrainIntensity})
	for band, off := range a.SelectiveColors {
		if colormath.ValidBand(band) {
			out = Reduce(out, SetSelectiveColor{Target: band, Offset: off})
		}
	}
	if colormath.ValidBand(a.ActiveSelectiveTarget) {
		out = Reduce(out, SetActiveTarget{a.ActiveSelectiveTarget})
	}
	return out
}
