package publishers

import (
	"time"

	"github.com/samvad-hq/dogceo-go/internal/domain"
)

// Event represents the payload published downstream.
type Event struct {
	TargetID    string       `json:"target_id"`
	Image       domain.Image `json:"image"`
	CollectedAt time.Time    `json:"collected_at"`
}

// NewEvent constructs an Event for a freshly harvested image.
func NewEvent(img domain.Image) Event {
	return Event{
		TargetID:    img.TargetID,
		Image:       img,
		CollectedAt: time.Now().UTC(),
	}
}

// attributes are the routing attributes attached to queue and topic messages.
func (e Event) attributes() map[string]string {
	attrs := map[string]string{"target_id": e.TargetID}
	if e.Image.Breed != "" {
		attrs["breed"] = e.Image.Breed
	}
	if e.Image.SubBreed != "" {
		attrs["sub_breed"] = e.Image.SubBreed
	}
	return attrs
}
