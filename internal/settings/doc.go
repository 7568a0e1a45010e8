// Package settings holds the adjustment parameter model for one image and
// the pure reducer that evolves it.
//
// An Adjustments value is immutable by convention: the reducer never mutates
// its input, it returns a new value (sharing the selective-color map when it
// was not touched). Every write path clamps to the field's declared range,
// so an out-of-range payload stores the nearest boundary rather than being
// rejected or passed through.
//
// # Actions
//
// Edits are expressed as a closed set of action variants (one per
// adjustment, plus selective-color, active-target and reset variants).
// Reduce matches over the full set; adding an adjustment means adding a
// variant and a case, checked at compile time rather than by runtime string
// dispatch.
//
// # Presets
//
// The same value serializes to YAML for preset files. Decoded presets pass
// through Sanitize, which applies every field via its reducer action, so
// hand-edited files obey exactly the same clamping rules as live edits.
package settings
