package settings

import (
	"github.com/ironsheep/darkroom-mcp/internal/colormath"
)

// Action is the closed set of edits the reducer understands. The variant
// types below are the only implementations; the unexported marker keeps the
// set sealed so Reduce's type switch is exhaustive.
type Action interface {
	isAction()
}

// SetBrightness sets the linear brightness scale (clamped to [0.5, 1.5]).
type SetBrightness struct{ Value float64 }

// SetContrast sets the mid-gray contrast scale (clamped to [0.5, 1.5]).
type SetContrast struct{ Value float64 }

// SetSaturation sets the chroma scale (clamped to [0, 2]).
type SetSaturation struct{ Value float64 }

// SetExposure sets the exposure in stops (clamped to [-0.5, 0.5]).
type SetExposure struct{ Value float64 }

// SetHighlights sets the highlights offset (clamped to [-1, 1]).
type SetHighlights struct{ Value float64 }

// SetShadows sets the shadows offset (clamped to [-1, 1]).
type SetShadows struct{ Value float64 }

// SetBlacks sets the blacks offset (clamped to [-1, 1]).
type SetBlacks struct{ Value float64 }

// SetHueRotate sets the hue rotation in degrees (clamped to [0, 360]).
type SetHueRotate struct{ Value float64 }

// SetColorTemperature sets the warm/cool shift (clamped to [-100, 100]).
type SetColorTemperature struct{ Value float64 }

// SetVignette sets the vignette intensity (clamped to [0, 1]).
type SetVignette struct{ Value float64 }

// SetGrain sets the grain intensity (clamped to [0, 1]).
type SetGrain struct{ Value float64 }

// SetSelectiveColor replaces one band's offset, clamping each component to
// [-1, 1]. Targets outside the eight fixed bands leave the settings
// untouched; edges validate band names before building the action.
type SetSelectiveColor struct {
	Target colormath.Band
	Offset colormath.BandOffset
}

// SetActiveTarget switches the band a controlling surface edits. It does
// not affect rendering.
type SetActiveTarget struct{ Target colormath.Band }

// Reset restores every parameter to its default.
type Reset struct{}

func (SetBrightness) isAction()       {}
func (SetContrast) isAction()         {}
func (SetSaturation) isAction()       {}
func (SetExposure) isAction()         {}
func (SetHighlights) isAction()       {}
func (SetShadows) isAction()          {}
func (SetBlacks) isAction()           {}
func (SetHueRotate) isAction()        {}
func (SetColorTemperature) isAction() {}
func (SetVignette) isAction()         {}
func (SetGrain) isAction()            {}
func (SetSelectiveColor) isAction()   {}
func (SetActiveTarget) isAction()     {}
func (Reset) isAction()               {}

// Reduce applies one action to a settings value and returns the result.
//
// The input is never mutated. Out-of-range payloads are clamped to the
// nearest boundary of the field's declared range, never dropped; the stored
// value after a clamp equals the boundary, making the clamp observable.
func Reduce(s Adjustments, action Action) Adjustments {
	switch a := action.(type) {
	case SetBrightness:
		s.Brightness = colormath.Clamp(a.Value, BrightnessMin, BrightnessMax)
	case SetContrast:
		s.Contrast = colormath.Clamp(a.Value, ContrastMin, ContrastMax)
	case SetSaturation:
		s.Saturation = colormath.Clamp(a.Value, SaturationMin, SaturationMax)
	case SetExposure:
		s.Exposure = colormath.Clamp(a.Value, ExposureMin, ExposureMax)
	case SetHighlights:
		s.Highlights = colormath.Clamp(a.Value, TonalMin, TonalMax)
	case SetShadows:
		s.Shadows = colormath.Clamp(a.Value, TonalMin, TonalMax)
	case SetBlacks:
		s.Blacks = colormath.Clamp(a.Value, TonalMin, TonalMax)
	case SetHueRotate:
		s.HueRotate = colormath.Clamp(a.Value, HueRotateMin, HueRotateMax)
	case SetColorTemperature:
		s.ColorTemperature = colormath.Clamp(a.Value, TemperatureMin, TemperatureMax)
	case SetVignette:
		s.VignetteIntensity = colormath.Clamp(a.Value, IntensityMin, IntensityMax)
	case SetGrain:
		s.GrainIntensity = colormath.Clamp(a.Value, IntensityMin, IntensityMax)
	case SetSelectiveColor:
		if !colormath.ValidBand(a.Target) {
			return s
		}
		// Copy-on-write: the map is shared between settings values until a
		// band actually changes.
		sel := make(map[colormath.Band]colormath.BandOffset, len(s.SelectiveColors))
		for k, v := range s.SelectiveColors {
			sel[k] = v
		}
		sel[a.Target] = colormath.BandOffset{
			Hue:        colormath.Clamp(a.Offset.Hue, OffsetMin, OffsetMax),
			Saturation: colormath.Clamp(a.Offset.Saturation, OffsetMin, OffsetMax),
			Luminance:  colormath.Clamp(a.Offset.Luminance, OffsetMin, OffsetMax),
		}
		s.SelectiveColors = sel
	case SetActiveTarget:
		if colormath.ValidBand(a.Target) {
			s.ActiveSelectiveTarget = a.Target
		}
	case Reset:
		return Defaults()
	}
	return s
}
