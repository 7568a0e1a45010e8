package suggest

import (
	"context"
	"errors"
	"image"

	"github.com/ironsheep/darkroom-mcp/internal/settings"
)

// ErrUnavailable reports that no suggestion can be produced, either because
// no provider is configured or because the configured one failed.
var ErrUnavailable = errors.New("suggestions unavailable")

// Provider produces a candidate settings value for an image.
type Provider interface {
	Suggest(ctx context.Context, img image.Image) (settings.Adjustments, error)
}

// Enhance asks the provider for a candidate and sanitizes it through the
// reducer's clamping rules, exactly as if the values had arrived one action
// at a time. A nil provider reports ErrUnavailable.
func Enhance(ctx context.Context, p Provider, img image.Image) (settings.Adjustments, error) {
	if p == nil {
		return settings.Adjustments{}, ErrUnavailable
	}
	candidate, err := p.Suggest(ctx, img)
	if err != nil {
		return settings.Adjustments{}, err
	}
	return settings.Sanitize(candidate), nil
}
