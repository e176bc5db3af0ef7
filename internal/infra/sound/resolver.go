package sound

// DefaultTone is the platform default notification tone, used whenever a
// logical sound name cannot be resolved to a bundled resource.
const DefaultTone = "default"

var bundled = map[string]string{
	"water-drop": "water_drop.caf",
	"bubbles":    "bubbles.caf",
	"splash":     "splash.caf",
	"chime":      "chime.caf",
	"none":       "",
}

// Resolver maps logical sound names to available resource names.
type Resolver struct {
	resources map[string]string
}

func NewResolver() *Resolver {
	return &Resolver{
		resources: bundled,
	}
}

// Resolve returns the resource name for a logical sound, falling back to the
// platform default tone for unknown names.
func (r *Resolver) Resolve(name string) string {
	if resource, ok := r.resources[name]; ok {
		return resource
	}
	return DefaultTone
}

// Known reports whether a logical sound name maps to a bundled resource.
func (r *Resolver) Known(name string) bool {
	_, ok := r.resources[name]
	return ok
}
