// Package render turns a source image plus a settings value into output
// pixels by composing the colormath stages in their fixed order.
//
// Render is a pure function of its inputs: it never retains image data
// between calls and never mutates the source. Two quality levels exist:
// preview downsamples large sources and skips the grain pass for
// interactivity, final runs the full pipeline at full resolution. No other
// stage may be disabled by quality.
//
// Stages whose parameter is at its neutral value are skipped entirely, so a
// render with default settings returns pixels identical to the source
// rather than a float round trip of them.
package render
