// Package suggest produces candidate adjustment settings for an image.
//
// The session core treats a provider as opaque: whatever it returns is
// sanitized through the settings reducer's clamping rules before use, so a
// provider can never store out-of-range parameters. The Gemini-backed
// provider summarizes the image into a handful of statistics and asks the
// model for a parameter set; any provider that satisfies the Provider
// interface can be substituted, including test fakes.
package suggest
