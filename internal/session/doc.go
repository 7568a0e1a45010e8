// Package session manages the collection of loaded images and the editing
// state machine over them.
//
// A Controller owns every ImageEntry: source pixels (immutable once
// loaded), a thumbnail, the current settings value, and the undo history.
// Exactly one or zero images are active at a time. All mutation goes
// through the controller's methods, each of which is all-or-nothing: a
// failed operation leaves no partial state behind.
//
// # Preview and Commit
//
// BeginPreview snapshots the active image's settings and flips the
// session-wide previewing flag; while previewing, callers render at
// preview quality as often as they like. EndPreview flips the flag back,
// appends the pre-change snapshot to history when anything changed, and
// produces one final-quality render. Undo pops the most recent history
// entry and restores it.
//
// # Render Supersession
//
// Every render issued for an image carries a monotonically increasing
// sequence number. CommitDisplay accepts a result only if it carries the
// latest issued number for that image, so a stale preview can never
// overwrite a later final render (last-write-wins on display, never on
// history).
//
// # Concurrency
//
// The controller is safe for concurrent use; sources are read-only and may
// be shared by any number of in-flight renders. Settings and history are
// only touched under the controller's lock.
package session
