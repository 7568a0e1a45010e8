package colormath

// GrainAmplitude is the maximum luminance excursion of full-intensity grain,
// in normalized channel units.
const GrainAmplitude = 0.15

// GrainNoise returns a deterministic pseudo-random value in [-1, 1] for the
// pixel at (x, y) under the given seed.
//
// The generator is a splitmix64-style integer hash of the coordinates: fast,
// stateless, and free of the visible banding a low-quality LCG would show,
// without needing cryptographic randomness. The same (x, y, seed) always
// produces the same value, so repeated final renders are reproducible.
func GrainNoise(x, y int, seed uint64) float64 {
	h := seed
	h ^= uint64(uint32(x)) * 0x9E3779B97F4A7C15
	h ^= uint64(uint32(y)) * 0xC2B2AE3D27D4EB4F
	h ^= h >> 30
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 27
	h *= 0x94D049BB133111EB
	h ^= h >> 31

	// Map the top 53 bits to [0, 1), then center on zero.
	u := float64(h>>11) / float64(1<<53)
	return u*2 - 1
}

// Grain adds luminance noise to a pixel. intensity ranges over [0, 1] with
// 0 neutral; the same delta is applied to all channels so grain reads as
// monochrome film noise rather than chroma speckle.
func Grain(r, g, b float64, x, y int, intensity float64, seed uint64) (float64, float64, float64) {
	if intensity <= 0 {
		return r, g, b
	}
	delta := GrainNoise(x, y, seed) * intensity * GrainAmplitude
	return Clamp01(r + delta), Clamp01(g + delta), Clamp01(b + delta)
}
