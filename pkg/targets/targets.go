package targets

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Package targets loads the breed selections the harvester pulls images for.

const (
	KindRandom   = "random"
	KindBreed    = "breed"
	KindSubBreed = "sub_breed"

	defaultCount = 1
	maxCount     = 50
)

// Target is a single harvest selection declared in the targets file.
type Target struct {
	ID       string `json:"id" yaml:"id"`
	Breed    string `json:"breed" yaml:"breed"`
	SubBreed string `json:"sub_breed" yaml:"sub_breed"`
	Count    int    `json:"count" yaml:"count"`
	Enabled  *bool  `json:"enabled" yaml:"enabled"`
}

// Kind derives which catalog endpoint serves the target.
func (t Target) Kind() string {
	switch {
	case t.Breed == "":
		return KindRandom
	case t.SubBreed == "":
		return KindBreed
	default:
		return KindSubBreed
	}
}

// EnabledValue returns enabled flag defaulting to true.
func (t Target) EnabledValue() bool {
	if t.Enabled == nil {
		return true
	}
	return *t.Enabled
}

type fileFormat struct {
	Targets []Target `json:"targets" yaml:"targets"`
}

// Registry holds the validated targets loaded from a file.
type Registry struct {
	mu      sync.RWMutex
	targets []Target
	idx     map[string]Target
}

// LoadRegistry loads targets from a YAML or JSON file.
func LoadRegistry(path string) (*Registry, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("targets file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open targets file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read targets file: %w", err)
	}

	parsed, err := parseTargets(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	return NewRegistry(parsed.Targets)
}

// NewRegistry sanitizes and validates targets.
func NewRegistry(list []Target) (*Registry, error) {
	if len(list) == 0 {
		return nil, errors.New("targets file contains no targets entries")
	}

	reg := &Registry{
		targets: make([]Target, len(list)),
		idx:     make(map[string]Target, len(list)),
	}
	for i := range list {
		t := sanitizeTarget(list[i])
		if err := validateTarget(t); err != nil {
			return nil, fmt.Errorf("targets[%d]: %w", i, err)
		}
		if _, exists := reg.idx[t.ID]; exists {
			return nil, fmt.Errorf("duplicate target id %q", t.ID)
		}
		reg.targets[i] = t
		reg.idx[t.ID] = t
	}
	return reg, nil
}

func parseTargets(data []byte, ext string) (fileFormat, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))

	decoders := []struct {
		name string
		ext  string
		fn   func([]byte, any) error
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		var out fileFormat
		if err := d.fn(data, &out); err == nil {
			return out, nil
		}
	}

	return fileFormat{}, errors.New("targets file format not recognized (expected YAML or JSON)")
}

func sanitizeTarget(t Target) Target {
	t.ID = strings.TrimSpace(t.ID)
	t.Breed = strings.ToLower(strings.TrimSpace(t.Breed))
	t.SubBreed = strings.ToLower(strings.TrimSpace(t.SubBreed))
	if t.Count == 0 {
		t.Count = defaultCount
	}
	if t.Enabled == nil {
		def := true
		t.Enabled = &def
	}
	return t
}

func validateTarget(t Target) error {
	if t.ID == "" {
		return errors.New("id is required")
	}
	if t.Breed == "" && t.SubBreed != "" {
		return fmt.Errorf("sub_breed %q requires a breed for target %q", t.SubBreed, t.ID)
	}
	if t.Count < 1 || t.Count > maxCount {
		return fmt.Errorf("count must be between 1 and %d for target %q", maxCount, t.ID)
	}
	return nil
}

// All returns a copy of every loaded target.
func (r *Registry) All() []Target {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Target, len(r.targets))
	copy(out, r.targets)
	return out
}

// Enabled returns targets that are enabled.
func (r *Registry) Enabled() []Target {
	all := r.All()
	out := make([]Target, 0, len(all))
	for _, t := range all {
		if t.EnabledValue() {
			out = append(out, t)
		}
	}
	return out
}

// ByID returns the target with the given id.
func (r *Registry) ByID(id string) (Target, bool) {
	if r == nil {
		return Target{}, false
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Target{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.idx[id]
	return t, ok
}
