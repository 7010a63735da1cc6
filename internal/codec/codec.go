// Package codec maps personalization payloads to and from the three link
// encodings: path segments after a marker, query parameters, and an encoded
// URL fragment. Decoding never fails loudly — a malformed encoding is simply
// absent, and the caller falls through to the next source.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/electrical-elites/wishlink/internal/payload"
)

// DefaultMarker is the path segment that introduces the path-style encoding:
// .../wish/<sender>/<recipient>.
const DefaultMarker = "wish"

// EncodeFragment serializes a payload into the fragment token: JSON,
// percent-encoded, then base64. The result is safe to place verbatim after
// '#' in a URL.
func EncodeFragment(p payload.Payload) string {
	data, err := json.Marshal(p)
	if err != nil {
		// Payload is a plain string struct; marshalling cannot fail.
		return ""
	}
	return base64.StdEncoding.EncodeToString([]byte(EscapeComponent(string(data))))
}

// DecodeFragment reverses EncodeFragment. Any failure along the way
// (bad base64, bad percent escapes, bad JSON, non-object JSON) means the
// encoding is absent. Fields with non-string JSON values are ignored rather
// than rejected, so a hand-edited fragment degrades instead of breaking.
func DecodeFragment(raw string) (payload.Payload, bool) {
	if raw == "" {
		return payload.Payload{}, false
	}

	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		// Tolerate links whose trailing '=' padding was clipped in transit.
		decoded, err = base64.RawStdEncoding.DecodeString(raw)
		if err != nil {
			return payload.Payload{}, false
		}
	}

	unescaped, err := UnescapeComponent(string(decoded))
	if err != nil {
		return payload.Payload{}, false
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(unescaped), &fields); err != nil {
		return payload.Payload{}, false
	}

	p := payload.Payload{
		GroupName:  stringField(fields, "groupName"),
		Greeting:   stringField(fields, "greeting"),
		GroupPhoto: stringField(fields, "groupPhoto"),
		AudioURL:   stringField(fields, "audioUrl"),
		Recipient:  stringField(fields, "recipient"),
		Sender:     stringField(fields, "sender"),
	}
	return p.Trimmed(), true
}

// DecodeSlashFragment parses the raw fallback form "<sender>/<recipient>".
// Both segments must be present and non-empty. It is only consulted after
// DecodeFragment has failed.
func DecodeSlashFragment(raw string) (payload.Payload, bool) {
	parts := strings.Split(raw, "/")
	if len(parts) != 2 {
		return payload.Payload{}, false
	}

	sender, err := UnescapeComponent(parts[0])
	if err != nil {
		return payload.Payload{}, false
	}
	recipient, err := UnescapeComponent(parts[1])
	if err != nil {
		return payload.Payload{}, false
	}

	p := payload.Payload{Sender: sender, Recipient: recipient}.Trimmed()
	if p.Sender == "" || p.Recipient == "" {
		return payload.Payload{}, false
	}
	return p, true
}

// DecodeQuery reads the sender/recipient query parameters. Recipient is
// required for the encoding to count; sender is optional.
func DecodeQuery(q url.Values) (payload.Payload, bool) {
	p := payload.Payload{
		Sender:    q.Get("sender"),
		Recipient: q.Get("recipient"),
	}.Trimmed()
	if p.Recipient == "" {
		return payload.Payload{}, false
	}
	return p, true
}

// DecodePath reads the two path segments following the marker segment:
// .../<marker>/<sender>/<recipient>. Fewer than two segments after the
// marker, or an empty segment, means the encoding is absent.
func DecodePath(u *url.URL, marker string) (payload.Payload, bool) {
	segs := strings.Split(strings.Trim(u.EscapedPath(), "/"), "/")

	// First occurrence wins: a sender or recipient may themselves be named
	// like the marker, and those segments come after it.
	at := -1
	for i, seg := range segs {
		if decoded, err := UnescapeComponent(seg); err == nil && decoded == marker {
			at = i
			break
		}
	}
	if at < 0 || len(segs) < at+3 {
		return payload.Payload{}, false
	}

	sender, err := UnescapeComponent(segs[at+1])
	if err != nil {
		return payload.Payload{}, false
	}
	recipient, err := UnescapeComponent(segs[at+2])
	if err != nil {
		return payload.Payload{}, false
	}

	p := payload.Payload{Sender: sender, Recipient: recipient}.Trimmed()
	if p.Sender == "" || p.Recipient == "" {
		return payload.Payload{}, false
	}
	return p, true
}

// Decode tries every encoding of the URL in precedence order: path, then
// query, then the base64 fragment, then the slash fragment. The first
// successful decode wins; sources are never merged with each other.
func Decode(u *url.URL, marker string) (payload.Payload, bool) {
	if p, ok := DecodePath(u, marker); ok {
		return p, true
	}
	if p, ok := DecodeQuery(u.Query()); ok {
		return p, true
	}
	frag := u.EscapedFragment()
	if p, ok := DecodeFragment(frag); ok {
		return p, true
	}
	if p, ok := DecodeSlashFragment(frag); ok {
		return p, true
	}
	return payload.Payload{}, false
}

// stringField pulls a string value out of loosely-typed decoded JSON. Any
// other type is treated as absent.
func stringField(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}
