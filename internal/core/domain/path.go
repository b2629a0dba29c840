package domain

import "unique"

// Path is an interned file path backed by a unique.Handle. A dependency graph
// repeats the same header paths across many entries, so interning keeps the
// per-entry cost to a single handle and makes equality a pointer comparison.
type Path struct {
	h unique.Handle[string]
}

// NewPath interns the given file path.
func NewPath(s string) Path {
	return Path{h: unique.Make(s)}
}

// String returns the underlying path. The zero Path yields "".
func (p Path) String() string {
	var zero unique.Handle[string]
	if p.h == zero {
		return ""
	}
	return p.h.Value()
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(text []byte) error {
	p.h = unique.Make(string(text))
	return nil
}
