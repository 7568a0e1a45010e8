package session

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"github.com/disintegration/imaging"

	"github.com/ironsheep/darkroom-mcp/internal/settings"
)

// Thumbnail bounding box for the session's image list.
const (
	thumbMaxWidth  = 160
	thumbMaxHeight = 160
)

// ImageEntry is one loaded image and its editing state. Entries are owned
// exclusively by a Controller; the exported fields are safe to read from a
// snapshot, mutation happens only under the controller's lock.
type ImageEntry struct {
	// ID is unique and stable for the session lifetime.
	ID string

	// BaseFileName is the name the image was loaded under.
	BaseFileName string

	// Source holds the decoded original pixels. Treated as immutable:
	// renders read it, nothing writes it.
	Source *image.NRGBA

	// Thumbnail is a downscaled representation for image lists.
	Thumbnail *image.NRGBA

	// Settings is the current adjustment state.
	Settings settings.Adjustments

	// history holds past committed settings, oldest first.
	history []settings.Adjustments

	// renderSeq is the latest issued render sequence number.
	renderSeq uint64

	// displayed is the most recently accepted render result and the
	// sequence number it carried.
	displayed    *image.NRGBA
	displayedSeq uint64
}

// EntryInfo is a read-only snapshot of an entry for listings and tool
// responses.
type EntryInfo struct {
	ID           string `json:"id"`
	BaseFileName string `json:"base_file_name"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Active       bool   `json:"active"`
	HistoryDepth int    `json:"history_depth"`
}

func (e *ImageEntry) info(active bool) EntryInfo {
	return EntryInfo{
		ID:           e.ID,
		BaseFileName: e.BaseFileName,
		Width:        e.Source.Bounds().Dx(),
		Height:       e.Source.Bounds().Dy(),
		Active:       active,
		HistoryDepth: len(e.history),
	}
}

// decodeSource decodes raw image bytes (JPEG, PNG or GIF) into an NRGBA
// buffer plus the detected format name.
func decodeSource(data []byte) (*image.NRGBA, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, "", fmt.Errorf("%w: empty %s image", ErrDecode, format)
	}
	return imaging.Clone(img), format, nil
}

// makeThumbnail produces the image-list representation, preserving aspect
// ratio within the thumbnail bounding box.
func makeThumbnail(src *image.NRGBA) *image.NRGBA {
	return imaging.Fit(src, thumbMaxWidth, thumbMaxHeight, imaging.Lanczos)
}
