// Package catalog bundles the LogbookOne color catalog with the binary and
// serves entries by their exact resource-name string, the same key UI code
// uses at render time.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"

	"logbookone/pkg/assets"
)

//go:embed colors.yaml
var rawCatalog []byte

// Entry holds both variants of one catalog color.
type Entry struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// Catalog is a parsed, validated color catalog.
type Catalog struct {
	Bundle string
	colors map[string]Entry
}

var (
	// ErrMissingEntry is returned when a name has no catalog entry.
	ErrMissingEntry = errors.New("missing catalog entry")
	// ErrInvalidCatalog is returned when the catalog fails validation.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

type rawFile struct {
	Bundle string           `yaml:"bundle"`
	Colors map[string]Entry `yaml:"colors"`
}

// Load parses and validates the embedded catalog. The entry set must exactly
// match the declared catalog names and every value must be #RRGGBB hex.
func Load() (*Catalog, error) {
	var raw rawFile
	if err := yaml.Unmarshal(rawCatalog, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if raw.Bundle != assets.BundleID {
		return nil, fmt.Errorf("%w: bundle %q want %q", ErrInvalidCatalog, raw.Bundle, assets.BundleID)
	}

	want := assets.ColorNames()
	if len(raw.Colors) != len(want) {
		return nil, fmt.Errorf("%w: %d entries want %d", ErrInvalidCatalog, len(raw.Colors), len(want))
	}
	for _, name := range want {
		entry, ok := raw.Colors[name]
		if !ok {
			return nil, fmt.Errorf("%w: no entry for %q", ErrInvalidCatalog, name)
		}
		for _, hex := range []string{entry.Light, entry.Dark} {
			if !validHex(hex) {
				return nil, fmt.Errorf("%w: entry %q has malformed value %q", ErrInvalidCatalog, name, hex)
			}
		}
	}

	return &Catalog{Bundle: raw.Bundle, colors: raw.Colors}, nil
}

var defaultCatalog = sync.OnceValues(Load)

// Default returns the embedded catalog, parsed once per process.
func Default() (*Catalog, error) {
	return defaultCatalog()
}

// Color looks up a catalog entry by resource name.
func (c *Catalog) Color(name string) (Entry, error) {
	entry, ok := c.colors[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrMissingEntry, name)
	}
	return entry, nil
}

// Names returns the catalog's entry names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.colors))
	for name := range c.colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	_, err := strconv.ParseUint(s[1:], 16, 32)
	return err == nil
}
