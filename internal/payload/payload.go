package payload

import "strings"

// Payload is the unit of shareable personalization state. Every field is
// optional; an empty string means the field is absent and resolution falls
// back to the process-wide defaults. JSON field names match the wire format
// carried in link fragments.
type Payload struct {
	GroupName  string `json:"groupName,omitempty"`
	Greeting   string `json:"greeting,omitempty"`
	GroupPhoto string `json:"groupPhoto,omitempty"`
	AudioURL   string `json:"audioUrl,omitempty"`
	Recipient  string `json:"recipient,omitempty"`
	Sender     string `json:"sender,omitempty"`
}

// HasRecipient reports whether the payload names a recipient, which is the
// signal that a page renders in recipient view rather than authoring view.
func (p Payload) HasRecipient() bool {
	return p.Recipient != ""
}

// Trimmed returns a copy with leading/trailing whitespace removed from the
// name fields. Entry points trim once; decoded values are otherwise used
// verbatim.
func (p Payload) Trimmed() Payload {
	p.Recipient = strings.TrimSpace(p.Recipient)
	p.Sender = strings.TrimSpace(p.Sender)
	return p
}

// Overlay returns a copy of base with every non-empty field of over applied
// on top. Absent fields in over leave the base value untouched.
func Overlay(base, over Payload) Payload {
	if over.GroupName != "" {
		base.GroupName = over.GroupName
	}
	if over.Greeting != "" {
		base.Greeting = over.Greeting
	}
	if over.GroupPhoto != "" {
		base.GroupPhoto = over.GroupPhoto
	}
	if over.AudioURL != "" {
		base.AudioURL = over.AudioURL
	}
	if over.Recipient != "" {
		base.Recipient = over.Recipient
	}
	if over.Sender != "" {
		base.Sender = over.Sender
	}
	return base
}
