package keypath

import (
	"fmt"
	"strings"
)

// String serializes the Path into its canonical dotted representation.
func (p Path) String() string {
	return strings.Join(p.Segments, ".")
}

// Underscored serializes the Path into the flat double-underscore form used
// by parameter keys in wandb-style sweep documents.
func (p Path) Underscored() string {
	return strings.Join(p.Segments, "__")
}

// Equal checks for deep equality between two paths.
func (p Path) Equal(other Path) bool {
	if len(p.Segments) != len(other.Segments) {
		return false
	}
	for i, s := range p.Segments {
		if s != other.Segments[i] {
			return false
		}
	}
	return true
}

// Resolve descends the path through a nested document tree. It returns the
// value at the path and whether every segment resolved.
func (p Path) Resolve(tree map[string]any) (any, bool) {
	if len(p.Segments) == 0 {
		return nil, false
	}

	var current any = tree
	for _, segment := range p.Segments {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Set writes a value into a nested document tree at the path, creating
// intermediate maps as needed. It fails if an intermediate segment resolves
// to something that is not a map, rather than silently clobbering it.
func (p Path) Set(tree map[string]any, value any) error {
	if len(p.Segments) == 0 {
		return fmt.Errorf("cannot set value at empty path")
	}

	current := tree
	for i, segment := range p.Segments[:len(p.Segments)-1] {
		child, ok := current[segment]
		if !ok {
			next := make(map[string]any)
			current[segment] = next
			current = next
			continue
		}
		next, ok := child.(map[string]any)
		if !ok {
			prefix := Path{Segments: p.Segments[:i+1]}
			return fmt.Errorf("cannot descend into %q: value at %q is not a mapping", p, prefix)
		}
		current = next
	}

	current[p.Segments[len(p.Segments)-1]] = value
	return nil
}
