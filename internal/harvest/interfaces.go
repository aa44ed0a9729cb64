package harvest

import (
	"context"

	"github.com/samvad-hq/dogceo-go/pkg/publishers"
)

// EventPublisher publishes harvested images downstream and reports how many sinks accepted them.
type EventPublisher interface {
	Publish(ctx context.Context, evt publishers.Event) (int, error)
}

// Deduper remembers which images were already published.
type Deduper interface {
	SeenImage(id string) (bool, error)
	MarkImage(id string) error
}
