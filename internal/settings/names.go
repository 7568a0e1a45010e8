package settings

import "fmt"

// ActionFor builds the reducer action for a scalar setting named by its
// wire name (the JSON/YAML field name). The value is clamped by the
// reducer, not here. Selective color offsets are structured and have no
// scalar wire name; they are built directly as SetSelectiveColor.
func ActionFor(name string, value float64) (Action, error) {
	switch name {
	case "brightness":
		return SetBrightness{Value: value}, nil
	case "contrast":
		return SetContrast{Value: value}, nil
	case "saturation":
		return SetSaturation{Value: value}, nil
	case "exposure":
		return SetExposure{Value: value}, nil
	case "highlights":
		return SetHighlights{Value: value}, nil
	case "shadows":
		return SetShadows{Value: value}, nil
	case "blacks":
		return SetBlacks{Value: value}, nil
	case "hue_rotate":
		return SetHueRotate{Value: value}, nil
	case "color_temperature":
		return SetColorTemperature{Value: value}, nil
	case "vignette_intensity":
		return SetVignette{Value: value}, nil
	case "grain_intensity":
		return SetGrain{Value: value}, nil
	default:
		return nil, fmt.Errorf("unknown setting: %s", name)
	}
}

// SettingNames lists the scalar setting names ActionFor accepts, in
// pipeline order.
func SettingNames() []string {
	return []string{
		"brightness", "contrast", "saturation", "exposure",
		"highlights", "shadows", "blacks",
		"hue_rotate", "color_temperature", "vignette_intensity", "grain_intensity",
	}
}
