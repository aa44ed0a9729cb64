package targets

import (
	"context"
	"fmt"
)

// ImageSource is the subset of the dog.ceo client a target is resolved against.
type ImageSource interface {
	RandomImages(ctx context.Context, n int) ([]string, error)
	RandomImagesByBreed(ctx context.Context, breed string, n int) ([]string, error)
	RandomImagesBySubBreed(ctx context.Context, breed, subBreed string, n int) ([]string, error)
}

// Fetch pulls Count random image URLs for the target from src.
func (t Target) Fetch(ctx context.Context, src ImageSource) ([]string, error) {
	if src == nil {
		return nil, fmt.Errorf("target %q: image source is nil", t.ID)
	}
	switch t.Kind() {
	case KindRandom:
		return src.RandomImages(ctx, t.Count)
	case KindBreed:
		return src.RandomImagesByBreed(ctx, t.Breed, t.Count)
	default:
		return src.RandomImagesBySubBreed(ctx, t.Breed, t.SubBreed, t.Count)
	}
}
