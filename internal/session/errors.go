package session

import "errors"

// Sentinel errors reported by controller operations. Callers match with
// errors.Is; wrapped messages carry the specifics.
var (
	// ErrNotFound reports an operation referencing an unknown or stale
	// image id. The session state is unchanged.
	ErrNotFound = errors.New("image not found")

	// ErrNoActiveImage reports an active-image operation on an empty
	// session.
	ErrNoActiveImage = errors.New("no active image")

	// ErrNothingToUndo reports an undo with an empty history.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNotPreviewing reports EndPreview outside preview mode.
	ErrNotPreviewing = errors.New("not previewing")

	// ErrDecode reports malformed or unsupported image input. The image is
	// not added to the session.
	ErrDecode = errors.New("failed to decode image")

	// ErrExport reports an encoding failure. Settings and history are
	// unaffected.
	ErrExport = errors.New("failed to export image")
)
