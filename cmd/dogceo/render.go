package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samvad-hq/dogceo-go/pkg/dogceo"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func render(w io.Writer, format string, v any) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case formatText, "":
		return renderText(w, v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// renderText prints one value per line; breeds are sorted and followed by their sub-breeds.
func renderText(w io.Writer, v any) error {
	switch val := v.(type) {
	case string:
		_, err := fmt.Fprintln(w, val)
		return err
	case []string:
		for _, s := range val {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}
		return nil
	case dogceo.BreedDirectory:
		names := make([]string, 0, len(val))
		for name := range val {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			line := name
			if subs := val[name]; len(subs) > 0 {
				line += ": " + strings.Join(subs, ", ")
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintf(w, "%v\n", val)
		return err
	}
}
