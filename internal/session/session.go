package session

import (
	"fmt"
	"image"
	"sync"

	"github.com/google/uuid"

	"github.com/ironsheep/darkroom-mcp/internal/render"
	"github.com/ironsheep/darkroom-mcp/internal/settings"
)

// Controller is the image session: the ordered collection of loaded
// images, the active selection, and the preview/commit state machine.
//
// All methods are safe for concurrent use. Construct with New; the zero
// value is not usable.
type Controller struct {
	mu       sync.Mutex
	images   map[string]*ImageEntry
	order    []string
	activeID string

	previewing      bool
	previewSnapshot settings.Adjustments
}

// New creates an empty session with no images loaded.
func New() *Controller {
	return &Controller{
		images: make(map[string]*ImageEntry),
	}
}

// LoadImage decodes raw image bytes and adds them to the session with
// default settings. The first loaded image becomes active. Returns the new
// entry's snapshot; on decode failure the session is unchanged and the
// error wraps ErrDecode.
func (c *Controller) LoadImage(baseFileName string, data []byte) (EntryInfo, error) {
	src, _, err := decodeSource(data)
	if err != nil {
		return EntryInfo{}, err
	}

	entry := &ImageEntry{
		ID:           uuid.NewString(),
		BaseFileName: baseFileName,
		Source:       src,
		Thumbnail:    makeThumbnail(src),
		Settings:     settings.Defaults(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.images[entry.ID] = entry
	c.order = append(c.order, entry.ID)
	if c.activeID == "" {
		c.activeID = entry.ID
	}
	return entry.info(c.activeID == entry.ID), nil
}

// Images returns snapshots of all loaded images in insertion order.
func (c *Controller) Images() []EntryInfo {
	c.mu.Lock()
	defer c.mu.Unlock()

	infos := make([]EntryInfo, 0, len(c.order))
	for _, id := range c.order {
		infos = append(infos, c.images[id].info(id == c.activeID))
	}
	return infos
}

// ActiveID returns the active image id, or false when the session is empty.
func (c *Controller) ActiveID() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeID, c.activeID != ""
}

// IsPreviewing reports whether the session is in preview mode.
func (c *Controller) IsPreviewing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.previewing
}

// SelectImage switches the active image without altering any settings.
// Selecting while previewing first abandons the preview (the snapshot is
// discarded, pending edits stay current but uncommitted).
func (c *Controller) SelectImage(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.images[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	c.activeID = id
	c.previewing = false
	return nil
}

// RemoveImage deletes an image from the session. When the active image is
// removed, activity falls to its predecessor in insertion order (or the
// successor when it was first), or to no image when the session empties.
func (c *Controller) RemoveImage(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.images[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	idx := 0
	for i, oid := range c.order {
		if oid == id {
			idx = i
			break
		}
	}
	c.order = append(c.order[:idx], c.order[idx+1:]...)
	delete(c.images, id)

	if c.activeID == id {
		c.previewing = false
		switch {
		case len(c.order) == 0:
			c.activeID = ""
		case idx > 0:
			c.activeID = c.order[idx-1]
		default:
			c.activeID = c.order[0]
		}
	}
	return nil
}

// ActiveSettings returns the active image's current settings value.
func (c *Controller) ActiveSettings() (settings.Adjustments, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, err := c.activeLocked()
	if err != nil {
		return settings.Adjustments{}, err
	}
	return entry.Settings, nil
}

// Apply runs one reducer action against the active image's settings.
// Actions are applied in the order issued; out-of-range payloads are
// clamped by the reducer, never rejected.
func (c *Controller) Apply(action settings.Action) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, err := c.activeLocked()
	if err != nil {
		return err
	}
	entry.Settings = settings.Reduce(entry.Settings, action)
	return nil
}

// ApplySuggestion replaces the active image's settings with a sanitized
// candidate from a suggestion provider. The previous settings are committed
// to history first, so a bad suggestion is one undo away.
func (c *Controller) ApplySuggestion(candidate settings.Adjustments) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, err := c.activeLocked()
	if err != nil {
		return err
	}
	entry.history = append(entry.history, entry.Settings)
	entry.Settings = settings.Sanitize(candidate)
	return nil
}

// BeginPreview enters preview mode, snapshotting the active image's
// settings for the commit at EndPreview. Already previewing is a no-op.
func (c *Controller) BeginPreview() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, err := c.activeLocked()
	if err != nil {
		return err
	}
	if c.previewing {
		return nil
	}
	c.previewing = true
	c.previewSnapshot = entry.Settings
	return nil
}

// EndPreview leaves preview mode. When the settings changed since
// BeginPreview, the pre-change snapshot is appended to the image's history;
// either way one final-quality render is produced and committed to the
// display. Not previewing is reported but harmless.
func (c *Controller) EndPreview() (*image.NRGBA, error) {
	c.mu.Lock()
	if !c.previewing {
		c.mu.Unlock()
		return nil, ErrNotPreviewing
	}
	entry, err := c.activeLocked()
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}

	c.previewing = false
	if !entry.Settings.Equal(c.previewSnapshot) {
		entry.history = append(entry.history, c.previewSnapshot)
	}

	id := entry.ID
	src := entry.Source
	adj := entry.Settings
	entry.renderSeq++
	seq := entry.renderSeq
	c.mu.Unlock()

	out, err := render.Render(src, adj, render.QualityFinal)
	if err != nil {
		return nil, err
	}
	c.commitDisplay(id, seq, out)
	return out, nil
}

// Undo restores the active image's most recent history entry as its
// current settings and produces a fresh final-quality render. An empty
// history reports ErrNothingToUndo and changes nothing.
func (c *Controller) Undo() (*image.NRGBA, error) {
	c.mu.Lock()
	entry, err := c.activeLocked()
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	if len(entry.history) == 0 {
		c.mu.Unlock()
		return nil, ErrNothingToUndo
	}

	entry.Settings = entry.history[len(entry.history)-1]
	entry.history = entry.history[:len(entry.history)-1]

	id := entry.ID
	src := entry.Source
	adj := entry.Settings
	entry.renderSeq++
	seq := entry.renderSeq
	c.mu.Unlock()

	out, err := render.Render(src, adj, render.QualityFinal)
	if err != nil {
		return nil, err
	}
	c.commitDisplay(id, seq, out)
	return out, nil
}

// RenderActive renders the active image at the requested quality and
// returns the result along with its render sequence number. The caller
// decides whether to CommitDisplay the result; results carrying a stale
// sequence number will be rejected there.
func (c *Controller) RenderActive(q render.Quality) (*image.NRGBA, uint64, error) {
	c.mu.Lock()
	entry, err := c.activeLocked()
	if err != nil {
		c.mu.Unlock()
		return nil, 0, err
	}
	src := entry.Source
	adj := entry.Settings
	entry.renderSeq++
	seq := entry.renderSeq
	c.mu.Unlock()

	out, err := render.Render(src, adj, q)
	if err != nil {
		return nil, 0, err
	}
	return out, seq, nil
}

// CommitDisplay records a render result as the displayed output for an
// image. Returns false when the sequence number is not the latest issued
// for that image; the stale result is discarded and the previously
// displayed output stays in place.
func (c *Controller) CommitDisplay(id string, seq uint64, img *image.NRGBA) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.images[id]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if seq != entry.renderSeq {
		return false, nil
	}
	entry.displayed = img
	entry.displayedSeq = seq
	return true, nil
}

// Displayed returns the most recently committed render result for an
// image, or nil when nothing has been displayed yet.
func (c *Controller) Displayed(id string) (*image.NRGBA, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.images[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return entry.displayed, nil
}

// ThumbnailOf returns an image's downscaled list representation.
func (c *Controller) ThumbnailOf(id string) (*image.NRGBA, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.images[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return entry.Thumbnail, nil
}

// commitDisplay is the internal variant used by operations that already
// validated the entry.
func (c *Controller) commitDisplay(id string, seq uint64, img *image.NRGBA) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.images[id]
	if !ok || seq != entry.renderSeq {
		return
	}
	entry.displayed = img
	entry.displayedSeq = seq
}

// activeLocked returns the active entry. Callers hold c.mu.
func (c *Controller) activeLocked() (*ImageEntry, error) {
	if c.activeID == "" {
		return nil, ErrNoActiveImage
	}
	entry, ok := c.images[c.activeID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, c.activeID)
	}
	return entry, nil
}
