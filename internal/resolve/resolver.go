// Package resolve computes the effective personalization payload for a page
// load: process-wide defaults, overlaid with the persisted authoring
// defaults, overlaid with whatever a link's URL carries.
package resolve

import (
	"context"
	"fmt"
	"net/url"

	"github.com/electrical-elites/wishlink/internal/codec"
	"github.com/electrical-elites/wishlink/internal/defaults"
	"github.com/electrical-elites/wishlink/internal/payload"
)

// DefaultsSource supplies the persisted authoring defaults. A nil record
// means none have been saved yet.
type DefaultsSource interface {
	Get(ctx context.Context) (*defaults.Record, error)
}

// Resolver produces the effective payload for a URL. It is stateless and
// safe to share; re-resolving the same inputs yields the same payload.
type Resolver struct {
	base   payload.Payload
	marker string
	store  DefaultsSource
}

// New creates a Resolver. base holds the process-wide defaults, marker is
// the wish-page path segment, and store supplies persisted authoring
// defaults (may be nil when no persistence is wired, e.g. one-shot CLI use
// without a data dir).
func New(base payload.Payload, marker string, store DefaultsSource) *Resolver {
	if marker == "" {
		marker = codec.DefaultMarker
	}
	return &Resolver{base: base, marker: marker, store: store}
}

// Resolve returns the effective payload for the given URL. Decode failures
// in the URL are treated as "no encoding present" and never surface; only a
// failing defaults store produces an error.
func (r *Resolver) Resolve(ctx context.Context, u *url.URL) (payload.Payload, error) {
	p := r.base

	if r.store != nil {
		rec, err := r.store.Get(ctx)
		if err != nil {
			return payload.Payload{}, fmt.Errorf("loading stored defaults: %w", err)
		}
		if rec != nil {
			p = payload.Overlay(p, rec.Payload())
		}
	}

	if u != nil {
		if decoded, ok := codec.Decode(u, r.marker); ok {
			p = payload.Overlay(p, decoded)
		}
	}

	return p.Trimmed(), nil
}
