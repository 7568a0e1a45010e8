package settings

import (
	"testing"

	"github.com/ironsheep/darkroom-mcp/internal/colormath"
)

func TestDefaults(t *testing.T) {
	d := Defaults()

	if d.Brightness != 1 || d.Contrast != 1 || d.Saturation != 1 {
		t.Errorf("multiplicative defaults not neutral: %+v", d)
	}
	if d.Exposure != 0 || d.Highlights != 0 || d.Shadows != 0 || d.Blacks != 0 ||
		d.HueRotate != 0 || d.ColorTemperature != 0 ||
		d.VignetteIntensity != 0 || d.GrainIntensity != 0 {
		t.Errorf("additive defaults not zero: %+v", d)
	}
	if len(d.SelectiveColors) != 8 {
		t.Errorf("expected 8 selective bands, got %d", len(d.SelectiveColors))
	}
	if !d.SelectiveNeutral() {
		t.Error("default selective colors should be neutral")
	}
	if d.ActiveSelectiveTarget != colormath.Reds {
		t.Errorf("default target = %s, want reds", d.ActiveSelectiveTarget)
	}
}

func TestReduceClampsToBoundary(t *testing.T) {
	// For every scalar action, payloads outside the declared range must
	// store exactly the nearest boundary.
	tests := []struct {
		name    string
		low     Action
		high    Action
		read    func(Adjustments) float64
		min     float64
		max     float64
	}{
		{"brightness", SetBrightness{-3}, SetBrightness{9}, func(a Adjustments) float64 { return a.Brightness }, BrightnessMin, BrightnessMax},
		{"contrast", SetContrast{0}, SetContrast{2}, func(a Adjustments) float64 { return a.Contrast }, ContrastMin, ContrastMax},
		{"saturation", SetSaturation{-1}, SetSaturation{5}, func(a Adjustments) float64 { return a.Saturation }, SaturationMin, SaturationMax},
		{"exposure", SetExposure{-2}, SetExposure{2}, func(a Adjustments) float64 { return a.Exposure }, ExposureMin, ExposureMax},
		{"highlights", SetHighlights{-7}, SetHighlights{7}, func(a Adjustments) float64 { return a.Highlights }, TonalMin, TonalMax},
		{"shadows", SetShadows{-7}, SetShadows{7}, func(a Adjustments) float64 { return a.Shadows }, TonalMin, TonalMax},
		{"blacks", SetBlacks{-7}, SetBlacks{7}, func(a Adjustments) float64 { return a.Blacks }, TonalMin, TonalMax},
		{"hue rotate", SetHueRotate{-90}, SetHueRotate{800}, func(a Adjustments) float64 { return a.HueRotate }, HueRotateMin, HueRotateMax},
		{"temperature", SetColorTemperature{-500}, SetColorTemperature{500}, func(a Adjustments) float64 { return a.ColorTemperature }, TemperatureMin, TemperatureMax},
		{"vignette", SetVignette{-1}, SetVignette{3}, func(a Adjustments) float64 { return a.VignetteIntensity }, IntensityMin, IntensityMax},
		{"grain", SetGrain{-1}, SetGrain{3}, func(a Adjustments) float64 { return a.GrainIntensity }, IntensityMin, IntensityMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.read(Reduce(Defaults(), tt.low)); got != tt.min {
				t.Errorf("low payload stored %v, want boundary %v", got, tt.min)
			}
			if got := tt.read(Reduce(Defaults(), tt.high)); got != tt.max {
				t.Errorf("high payload stored %v, want boundary %v", got, tt.max)
			}
		})
	}
}

func TestReduceInRangeValueStoredExactly(t *testing.T) {
	a := Reduce(Defaults(), SetBrightness{1.2})
	if a.Brightness != 1.2 {
		t.Errorf("in-range value altered: %v", a.Brightness)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	before := Defaults()
	_ = Reduce(before, SetBrightness{1.5})
	_ = Reduce(before, SetSelectiveColor{Target: colormath.Blues, Offset: colormath.BandOffset{Hue: 0.5}})

	if !before.Equal(Defaults()) {
		t.Errorf("Reduce mutated its input: %+v", before)
	}
	if off := before.Band(colormath.Blues); !off.IsNeutral() {
		t.Errorf("Reduce mutated the shared selective map: %+v", off)
	}
}

func TestReduceSharesUntouchedSelectiveMap(t *testing.T) {
	base := Defaults()

	// A scalar edit shares the untouched band map with its input.
	scalar := Reduce(base, SetContrast{1.3})
	base.SelectiveColors[colormath.Yellows] = colormath.BandOffset{Hue: 0.9}
	if scalar.Band(colormath.Yellows).Hue != 0.9 {
		t.Error("scalar edit should share the selective map, not copy it")
	}
	delete(base.SelectiveColors, colormath.Yellows)

	// A band edit copies before writing.
	edited := Reduce(base, SetSelectiveColor{Target: colormath.Greens, Offset: colormath.BandOffset{Saturation: 0.4}})
	if got := edited.Band(colormath.Greens).Saturation; got != 0.4 {
		t.Errorf("band edit stored %v, want 0.4", got)
	}
	if !base.Band(colormath.Greens).IsNeutral() {
		t.Error("band edit leaked into the source value")
	}
}

func TestReduceSelectiveColorClamps(t *testing.T) {
	a := Reduce(Defaults(), SetSelectiveColor{
		Target: colormath.Cyans,
		Offset: colormath.BandOffset{Hue: 4, Saturation: -9, Luminance: 0.25},
	})

	off := a.Band(colormath.Cyans)
	if off.Hue != OffsetMax {
		t.Errorf("hue stored %v, want boundary %v", off.Hue, OffsetMax)
	}
	if off.Saturation != OffsetMin {
		t.Errorf("saturation stored %v, want boundary %v", off.Saturation, OffsetMin)
	}
	if off.Luminance != 0.25 {
		t.Errorf("in-range luminance altered: %v", off.Luminance)
	}
}

func TestReduceUnknownBandIsNoop(t *testing.T) {
	base := Defaults()
	a := Reduce(base, SetSelectiveColor{Target: colormath.Band("infrareds"), Offset: colormath.BandOffset{Hue: 1}})
	if !a.Equal(base) {
		t.Errorf("unknown band changed settings: %+v", a)
	}

	a = Reduce(base, SetActiveTarget{Target: colormath.Band("infrareds")})
	if a.ActiveSelectiveTarget != colormath.Reds {
		t.Errorf("unknown target accepted: %s", a.ActiveSelectiveTarget)
	}
}

func TestReduceSetActiveTarget(t *testing.T) {
	a := Reduce(Defaults(), SetActiveTarget{Target: colormath.Magentas})
	if a.ActiveSelectiveTarget != colormath.Magentas {
		t.Errorf("target = %s, want magentas", a.ActiveSelectiveTarget)
	}
}

func TestReduceReset(t *testing.T) {
	a := Defaults()
	a = Reduce(a, SetBrightness{1.4})
	a = Reduce(a, SetVignette{0.9})
	a = Reduce(a, SetSelectiveColor{Target: colormath.Reds, Offset: colormath.BandOffset{Luminance: -1}})

	a = Reduce(a, Reset{})
	if !a.Equal(Defaults()) {
		t.Errorf("reset did not restore defaults: %+v", a)
	}
}

func TestEqual(t *testing.T) {
	a := Defaults()
	b := Defaults()
	if !a.Equal(b) {
		t.Error("two default values should be equal")
	}

	b = Reduce(b, SetGrain{0.2})
	if a.Equal(b) {
		t.Error("grain difference not detected")
	}

	c := Reduce(Defaults(), SetSelectiveColor{Target: colormath.Purples, Offset: colormath.BandOffset{Hue: -0.1}})
	if a.Equal(c) {
		t.Error("selective difference not detected")
	}
}

func TestSanitizeClampsEverything(t *testing.T) {
	dirty := Adjustments{
		Brightness:        99,
		Contrast:          -99,
		Saturation:        99,
		Exposure:          99,
		Highlights:        -99,
		Shadows:           99,
		Blacks:            -99,
		HueRotate:         -1,
		ColorTemperature:  250,
		VignetteIntensity: 2,
		GrainIntensity:    -2,
		SelectiveColors: map[colormath.Band]colormath.BandOffset{
			colormath.Reds:            {Hue: 5, Saturation: -5, Luminance: 5},
			colormath.Band("not-a-band"): {Hue: 1},
		},
		ActiveSelectiveTarget: colormath.Band("not-a-band"),
	}

	clean := Sanitize(dirty)

	if clean.Brightness != BrightnessMax || clean.Contrast != ContrastMin {
		t.Errorf("scalar clamp failed: %+v", clean)
	}
	if clean.HueRotate != HueRotateMin || clean.ColorTemperature != TemperatureMax {
		t.Errorf("hue/temperature clamp failed: %+v", clean)
	}
	if clean.VignetteIntensity != IntensityMax || clean.GrainIntensity != IntensityMin {
		t.Errorf("intensity clamp failed: %+v", clean)
	}
	off := clean.Band(colormath.Reds)
	if off.Hue != OffsetMax || off.Saturation != OffsetMin || off.Luminance != OffsetMax {
		t.Errorf("selective clamp failed: %+v", off)
	}
	if _, ok := clean.SelectiveColors[colormath.Band("not-a-band")]; ok {
		t.Error("invalid band survived sanitize")
	}
	if clean.ActiveSelectiveTarget != colormath.Reds {
		t.Errorf("invalid target survived sanitize: %s", clean.ActiveSelectiveTarget)
	}
}
