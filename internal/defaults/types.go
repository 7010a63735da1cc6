package defaults

import (
	"time"

	"github.com/electrical-elites/wishlink/internal/payload"
)

// StorageKey is the fixed key under which the single authoring-defaults
// record lives. It matches the storage key the wish pages have always used.
const StorageKey = "holiday-state"

// Record is the persisted set of last-edited authoring fields. It is read
// once at resolution time to seed the effective payload and overwritten on
// every authoring save. It never expires.
type Record struct {
	GroupName  string    `json:"groupName"`
	Greeting   string    `json:"greeting"`
	GroupPhoto string    `json:"groupPhoto"`
	AudioURL   string    `json:"audioUrl"`
	Sender     string    `json:"sender"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}

// Payload converts the record into a payload overlay. A record never
// carries a recipient; stored defaults alone can never flip a page into
// recipient view.
func (rec Record) Payload() payload.Payload {
	return payload.Payload{
		GroupName:  rec.GroupName,
		Greeting:   rec.Greeting,
		GroupPhoto: rec.GroupPhoto,
		AudioURL:   rec.AudioURL,
		Sender:     rec.Sender,
	}
}
