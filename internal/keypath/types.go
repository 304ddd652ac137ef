package keypath

// Path is the structured representation of a configuration key path. It is
// modeled as an ordered list of map-key segments, root first.
type Path struct {
	Segments []string
}

// New creates a Path directly from its segments. It is intended for callers
// that already hold validated segment names; user input goes through Parse.
func New(segments ...string) Path {
	return Path{Segments: segments}
}

// Len returns the number of segments in the path.
func (p Path) Len() int {
	return len(p.Segments)
}

// IsZero reports whether the path has no segments.
func (p Path) IsZero() bool {
	return len(p.Segments) == 0
}

// Parent returns the path with its last segment removed. The parent of a
// single-segment path is the zero Path.
func (p Path) Parent() Path {
	if len(p.Segments) == 0 {
		return Path{}
	}
	parent := make([]string, len(p.Segments)-1)
	copy(parent, p.Segments[:len(p.Segments)-1])
	return Path{Segments: parent}
}

// Leaf returns the last segment of the path, or "" for the zero Path.
func (p Path) Leaf() string {
	if len(p.Segments) == 0 {
		return ""
	}
	return p.Segments[len(p.Segments)-1]
}
