package keypath

import (
	"fmt"
	"regexp"
	"strings"
)

// segmentRegex validates a single segment of a path, e.g. `kwargs` or
// `num_heads`. Dots are separators and may not appear inside a segment.
var segmentRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// isValidSegmentName checks for undesirable but technically matching names.
func isValidSegmentName(name string) bool {
	if name == "-" || name == "_" {
		return false
	}
	return true
}

// Parse creates a Path from either of its two textual spellings: the dotted
// form (`model.kwargs.num_heads`) or the double-underscore form used for
// flat parameter keys (`model__kwargs__num_heads`). A raw key containing
// `__` is split on that separator, otherwise on dots.
func Parse(raw string) (Path, error) {
	if raw == "" {
		return Path{}, fmt.Errorf("key path cannot be empty")
	}

	separator := "."
	if strings.Contains(raw, "__") {
		separator = "__"
	}

	var p Path
	for _, segment := range strings.Split(raw, separator) {
		if segment == "" {
			return Path{}, fmt.Errorf("key path %q contains empty segment", raw)
		}
		if !segmentRegex.MatchString(segment) {
			return Path{}, fmt.Errorf("invalid path segment format: %q", segment)
		}
		if !isValidSegmentName(segment) {
			return Path{}, fmt.Errorf("invalid segment name: %q", segment)
		}
		p.Segments = append(p.Segments, segment)
	}

	return p, nil
}

// MustParse is Parse for compile-time-constant paths; it panics on error.
func MustParse(raw string) Path {
	p, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return p
}
