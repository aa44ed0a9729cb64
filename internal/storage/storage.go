package storage

import (
	"fmt"
	"strings"
	"time"
)

// Package storage keeps track of images the harvester already published.

// Store tracks published image IDs.
type Store interface {
	Close() error
	SeenImage(id string) (bool, error)
	MarkImage(id string) error
}

// Options controls retention characteristics for concrete store implementations.
type Options struct {
	ImageTTL        time.Duration
	CleanupInterval time.Duration
}

const (
	defaultImageTTL        = 5 * 24 * time.Hour
	defaultCleanupInterval = 12 * time.Hour
)

// NewStore creates the configured storage backend.
func NewStore(typ, path string, opts Options) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	opts = normalizeOptions(opts)

	switch typ {
	case "", "none", "disabled":
		return noopStore{}, nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		store, err := openBolt(path, opts)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.ImageTTL <= 0 {
		opts.ImageTTL = defaultImageTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}
	return opts
}

type noopStore struct{}

func (noopStore) Close() error                   { return nil }
func (noopStore) SeenImage(string) (bool, error) { return false, nil }
func (noopStore) MarkImage(string) error         { return nil }
