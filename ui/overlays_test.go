package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestOverlayRegistry_Toggle(t *testing.T) {
	r := NewOverlayRegistry()

	if r.IsEnabled(OverlayVelocity) {
		t.Fatal("overlays should start off")
	}
	if !r.Toggle(OverlayVelocity) || !r.IsEnabled(OverlayVelocity) {
		t.Error("toggle should turn velocity on")
	}
	if r.Toggle(OverlayVelocity) {
		t.Error("second toggle should turn velocity off")
	}
	if r.Toggle("missing") || r.IsEnabled("missing") {
		t.Error("unknown overlay should stay off")
	}

	r.SetEnabled(OverlayBounds, true)
	r.SetEnabled("missing", true)
	if !r.IsEnabled(OverlayBounds) || r.IsEnabled("missing") {
		t.Error("SetEnabled should only affect registered overlays")
	}
}

func TestOverlayRegistry_Groups(t *testing.T) {
	r := NewOverlayRegistry()

	groups := r.Groups()
	if len(groups) != 2 || groups[0] != GroupPlay || groups[1] != GroupPhysics {
		t.Fatalf("groups = %v", groups)
	}

	total := 0
	for _, g := range groups {
		for _, o := range r.InGroup(g) {
			if o.Group != g {
				t.Errorf("%s listed under %v", o.ID, g)
			}
			total++
		}
	}
	if total != len(r.All()) {
		t.Errorf("groups cover %d overlays, registry has %d", total, len(r.All()))
	}
}

func TestOverlayRegistry_RegisterReplaces(t *testing.T) {
	r := NewOverlayRegistry()
	n := len(r.All())

	r.Register(Overlay{ID: OverlayContacts, Name: "Pairs", Group: GroupPlay})
	if len(r.All()) != n {
		t.Errorf("re-registering grew the registry to %d", len(r.All()))
	}
	r.Register(Overlay{ID: "heights", Name: "Heights"})
	if len(r.All()) != n+1 {
		t.Errorf("new overlay not appended")
	}
}

func TestOverlay_KeyLabel(t *testing.T) {
	tests := []struct {
		key  int32
		want string
	}{
		{rl.KeyG, "G"},
		{rl.KeyA, "A"},
		{0, ""},
		{rl.KeyF1, ""},
	}
	for _, tt := range tests {
		if got := (Overlay{Key: tt.key}).KeyLabel(); got != tt.want {
			t.Errorf("KeyLabel(%d) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestOverlay_KeysUnique(t *testing.T) {
	seen := map[int32]OverlayID{}
	for _, o := range NewOverlayRegistry().All() {
		if prev, ok := seen[o.Key]; ok {
			t.Errorf("%s and %s share key %d", prev, o.ID, o.Key)
		}
		seen[o.Key] = o.ID
	}
}
