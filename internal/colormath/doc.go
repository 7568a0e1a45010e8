// Package colormath provides the pure per-pixel color functions that make up
// the photo adjustment pipeline.
//
// Every function in this package is stateless: it maps input channel values
// plus one or more adjustment parameters to output channel values, with no
// side effects. Channel values are normalized floats in [0, 1]; every stage
// clamps its output back into that range before returning, so stages can be
// composed in any order without intermediate overflow.
//
// # Pipeline Order
//
// The render engine composes these functions in a fixed, documented order:
//
//  1. Exposure (multiplicative, 2^stops)
//  2. Brightness (linear scale)
//  3. Contrast (scale around mid-gray 0.5)
//  4. Highlights / Shadows / Blacks (luminance-band weighted offsets)
//  5. Saturation (chroma scale around per-pixel luminance)
//  6. Hue rotation (additive hue angle, wraps at 360)
//  7. Color temperature (differential red/blue scaling)
//  8. Selective color (8 hue bands, smooth membership falloff)
//  9. Vignette (radial darkening, position dependent)
//  10. Grain (deterministic luminance noise, position dependent)
//
// Stages 1-8 depend only on the pixel's color; vignette and grain also take
// the pixel position and are exposed as mask/noise helpers for the engine to
// apply.
//
// # Neutral Parameters
//
// Each stage has a neutral parameter value (1.0 for multiplicative scales,
// 0 for additive offsets) at which it is an exact identity. Callers that
// need bit-exact reproduction of the source should skip neutral stages
// rather than rely on floating-point round trips.
package colormath
