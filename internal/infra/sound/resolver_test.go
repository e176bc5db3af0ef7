package sound

import "testing"

func TestResolve(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bundled sound", in: "water-drop", want: "water_drop.caf"},
		{name: "silent sound", in: "none", want: ""},
		{name: "unknown falls back to default", in: "airhorn", want: DefaultTone},
		{name: "empty falls back to default", in: "", want: DefaultTone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.in); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestKnown(t *testing.T) {
	r := NewResolver()

	if !r.Known("bubbles") {
		t.Error("Known(bubbles) = false, want true")
	}
	if r.Known("airhorn") {
		t.Error("Known(airhorn) = true, want false")
	}
}
