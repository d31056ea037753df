package config

import (
	"encoding/json"
	"testing"
)

func TestDefaultStateAppearance(t *testing.T) {
	t.Parallel()

	state := defaultAppState()
	if state.UI.Appearance != "auto" {
		t.Fatalf("default appearance = %q want %q", state.UI.Appearance, "auto")
	}
	if state.Version != currentStateVersion {
		t.Fatalf("default version = %d want %d", state.Version, currentStateVersion)
	}
}

func TestNormalizeRejectsUnknownAppearance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "light", want: "light"},
		{in: "dark", want: "dark"},
		{in: "auto", want: "auto"},
		{in: "", want: "auto"},
		{in: "midnight", want: "auto"},
	}

	for _, tt := range tests {
		state := AppState{UI: UIState{Appearance: tt.in}}
		state.normalize()
		if state.UI.Appearance != tt.want {
			t.Fatalf("normalize(%q) appearance = %q want %q", tt.in, state.UI.Appearance, tt.want)
		}
		if state.Version != currentStateVersion {
			t.Fatalf("normalize(%q) version = %d want %d", tt.in, state.Version, currentStateVersion)
		}
	}
}

func TestStateRoundTrip(t *testing.T) {
	t.Parallel()

	state := AppState{Version: currentStateVersion, UI: UIState{Appearance: "dark"}}
	data, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got AppState
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != state {
		t.Fatalf("round trip = %+v want %+v", got, state)
	}
}

func TestSaveAndLoadState(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := SetAppearance("dark"); err != nil {
		t.Fatalf("SetAppearance: %v", err)
	}

	got, err := GetAppearance()
	if err != nil {
		t.Fatalf("GetAppearance: %v", err)
	}
	if got != "dark" {
		t.Fatalf("appearance = %q want %q", got, "dark")
	}
}

func TestLoadStateMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	state, err := LoadState()
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if state.UI.Appearance != "auto" {
		t.Fatalf("missing state file should default to auto, got %q", state.UI.Appearance)
	}
}
