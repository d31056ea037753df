package main

import (
	"strings"
	"testing"

	"logbookone/pkg/assets"
	"logbookone/pkg/catalog"
	"logbookone/pkg/theme"
)

func TestRenderListingCoversCatalog(t *testing.T) {
	t.Parallel()

	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	listing := renderListing(c, theme.Dark)
	for _, name := range assets.ColorNames() {
		if !strings.Contains(listing, name) {
			t.Fatalf("listing missing %q", name)
		}
	}

	lines := strings.Split(strings.TrimRight(listing, "\n"), "\n")
	if len(lines) != len(assets.ColorNames()) {
		t.Fatalf("listing has %d lines want %d", len(lines), len(assets.ColorNames()))
	}
}

func TestRenderListingShowsAppearanceValue(t *testing.T) {
	t.Parallel()

	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	dark := renderListing(c, theme.Dark)
	if !strings.Contains(dark, "appBackground   #000000") {
		t.Fatalf("dark listing should lead with the dark value:\n%s", dark)
	}

	light := renderListing(c, theme.Light)
	if !strings.Contains(light, "appBackground   #F2F2F7") {
		t.Fatalf("light listing should lead with the light value:\n%s", light)
	}
}

func TestResolveAppearanceFlagWins(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	got, err := resolveAppearance("dark")
	if err != nil {
		t.Fatalf("resolveAppearance: %v", err)
	}
	if got != theme.Dark {
		t.Fatalf("appearance = %v want Dark", got)
	}

	if _, err := resolveAppearance("midnight"); err == nil {
		t.Fatalf("expected error for unknown appearance flag")
	}
}

func TestResolveAppearanceFallsBackToSaved(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	got, err := resolveAppearance("")
	if err != nil {
		t.Fatalf("resolveAppearance: %v", err)
	}
	if got != theme.Auto {
		t.Fatalf("appearance = %v want Auto with no saved state", got)
	}
}
