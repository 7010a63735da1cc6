// Package link constructs the shareable URL variants for a wish.
package link

import (
	"net/url"
	"strings"

	"github.com/electrical-elites/wishlink/internal/codec"
	"github.com/electrical-elites/wishlink/internal/payload"
)

// Links holds every shareable variant for a single wish. PathURL is the
// preferred form; QueryURL is the fallback; FragmentURL carries the full
// payload (group name, greeting, media) for contexts where the shorter
// forms are not enough. PathURL is empty when no sender was provided, since
// the path form needs both segments.
type Links struct {
	PathURL     string `json:"path_url,omitempty"`
	QueryURL    string `json:"query_url"`
	FragmentURL string `json:"fragment_url"`
}

// Builder derives shareable links from a base location. Marker is the path
// segment the wish page is mounted under.
type Builder struct {
	Marker string
}

// NewBuilder returns a Builder for the given marker segment, falling back
// to the default when empty.
func NewBuilder(marker string) *Builder {
	if marker == "" {
		marker = codec.DefaultMarker
	}
	return &Builder{Marker: marker}
}

// Build produces all link variants for the payload against the base URL.
// It is a pure function of its inputs; validating that the payload names a
// recipient is the caller's contract.
func (b *Builder) Build(base *url.URL, p payload.Payload) Links {
	p = p.Trimmed()
	prefix := b.pagePrefix(base)

	var links Links
	if p.Sender != "" {
		links.PathURL = prefix + "/" + codec.EscapeComponent(p.Sender) + "/" + codec.EscapeComponent(p.Recipient)
	}

	q := url.Values{}
	if p.Sender != "" {
		q.Set("sender", p.Sender)
	}
	q.Set("recipient", p.Recipient)
	links.QueryURL = prefix + "?" + q.Encode()

	links.FragmentURL = prefix + "#" + codec.EncodeFragment(p)

	return links
}

// pagePrefix computes the wish-page prefix from the base location: scheme,
// host, and the base path with any trailing index filename or extra slash
// stripped, plus the marker segment.
func (b *Builder) pagePrefix(base *url.URL) string {
	path := base.EscapedPath()
	for _, index := range []string{"index.html", "index.htm"} {
		if strings.HasSuffix(path, "/"+index) || path == index {
			path = strings.TrimSuffix(path, index)
			break
		}
	}
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}

	var sb strings.Builder
	if base.Scheme != "" {
		sb.WriteString(base.Scheme)
		sb.WriteString("://")
	}
	sb.WriteString(base.Host)
	sb.WriteString(path)
	sb.WriteString(b.Marker)
	return sb.String()
}
