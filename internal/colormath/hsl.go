package colormath

// RGBToHSL converts 8-bit RGB values to integer HSL components.
//
// Returns hue in [0, 360), saturation and lightness as percentages in
// [0, 100]. Achromatic inputs (max == min) report hue and saturation 0.
// This is the representation used in sampling results, where integer
// components are friendlier to tool consumers than floats.
func RGBToHSL(r, g, b uint8) (h, s, l int) {
	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	max := rf
	if gf > max {
		max = gf
	}
	if bf > max {
		max = bf
	}

	min := rf
	if gf < min {
		min = gf
	}
	if bf < min {
		min = bf
	}

	lf := (max + min) / 2.0

	if max == min {
		return 0, 0, int(lf * 100)
	}

	var sf float64
	if lf < 0.5 {
		sf = (max - min) / (max + min)
	} else {
		sf = (max - min) / (2.0 - max - min)
	}

	var hf float64
	switch max {
	case rf:
		hf = (gf - bf) / (max - min)
		if gf < bf {
			hf += 6
		}
	case gf:
		hf = 2.0 + (bf-rf)/(max-min)
	case bf:
		hf = 4.0 + (rf-gf)/(max-min)
	}
	hf *= 60

	return int(hf), int(sf * 100), int(lf * 100)
}
