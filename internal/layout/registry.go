package layout

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/agnivade/levenshtein"

	"github.com/joral/gridboard/internal/grid"
)

// ErrUnknownKind reports a widget kind absent from the registry. This is
// a contract error between host and engine, not user input, so callers
// fail fast instead of tolerating it.
var ErrUnknownKind = errors.New("unknown widget kind")

// KindSpec describes one widget kind: its display title and the size
// envelope every placement of that kind must stay within.
type KindSpec struct {
	Kind    string
	Title   string
	Default grid.Size
	Min     grid.Size
	Max     grid.Size
}

// Registry is the static kind → size table. Hosts may merge their own
// kinds on top of the built-ins.
type Registry struct {
	kinds map[string]KindSpec
	order []string
}

//go:embed kinds.toml
var builtinKinds []byte

type kindFile struct {
	Kinds []kindEntry `toml:"kind"`
}

type kindEntry struct {
	Name          string `toml:"name"`
	Title         string `toml:"title"`
	DefaultWidth  int    `toml:"default_width"`
	DefaultHeight int    `toml:"default_height"`
	MinWidth      int    `toml:"min_width"`
	MinHeight     int    `toml:"min_height"`
	MaxWidth      int    `toml:"max_width"`
	MaxHeight     int    `toml:"max_height"`
}

// ParseKinds decodes a TOML kind table.
func ParseKinds(data []byte) ([]KindSpec, error) {
	var f kindFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse kinds: %w", err)
	}
	out := make([]KindSpec, 0, len(f.Kinds))
	for _, k := range f.Kinds {
		if k.Name == "" {
			return nil, fmt.Errorf("parse kinds: entry with empty name")
		}
		if k.MinWidth < 1 || k.MinHeight < 1 ||
			k.MaxWidth < k.MinWidth || k.MaxHeight < k.MinHeight ||
			k.DefaultWidth < k.MinWidth || k.DefaultWidth > k.MaxWidth ||
			k.DefaultHeight < k.MinHeight || k.DefaultHeight > k.MaxHeight {
			return nil, fmt.Errorf("parse kinds: %q has an inconsistent size envelope", k.Name)
		}
		out = append(out, KindSpec{
			Kind:    k.Name,
			Title:   k.Title,
			Default: grid.Size{Width: k.DefaultWidth, Height: k.DefaultHeight},
			Min:     grid.Size{Width: k.MinWidth, Height: k.MinHeight},
			Max:     grid.Size{Width: k.MaxWidth, Height: k.MaxHeight},
		})
	}
	return out, nil
}

// NewRegistry builds a registry from the given kind specs.
func NewRegistry(specs ...KindSpec) *Registry {
	r := &Registry{kinds: make(map[string]KindSpec)}
	r.Merge(specs...)
	return r
}

// Builtin returns a registry of the embedded built-in kinds.
func Builtin() *Registry {
	specs, err := ParseKinds(builtinKinds)
	if err != nil {
		// embedded table is part of the build; failing to parse it is a bug
		panic(fmt.Sprintf("layout: builtin kinds: %v", err))
	}
	return NewRegistry(specs...)
}

// Merge adds or replaces kind specs.
func (r *Registry) Merge(specs ...KindSpec) {
	for _, s := range specs {
		if _, exists := r.kinds[s.Kind]; !exists {
			r.order = append(r.order, s.Kind)
		}
		r.kinds[s.Kind] = s
	}
}

// Kinds returns every registered kind in registration order.
func (r *Registry) Kinds() []KindSpec {
	out := make([]KindSpec, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.kinds[name])
	}
	return out
}

// Lookup resolves a kind name. Unknown names return ErrUnknownKind,
// decorated with the nearest registered kind when one is plausibly a
// typo, so schema mismatches between host and engine read clearly.
func (r *Registry) Lookup(kind string) (KindSpec, error) {
	if s, ok := r.kinds[kind]; ok {
		return s, nil
	}
	if near := r.nearest(kind); near != "" {
		return KindSpec{}, fmt.Errorf("%w %q (closest registered: %q)", ErrUnknownKind, kind, near)
	}
	return KindSpec{}, fmt.Errorf("%w %q", ErrUnknownKind, kind)
}

// nearest returns the registered kind with the smallest edit distance to
// name, or "" when nothing is within distance 3.
func (r *Registry) nearest(name string) string {
	best, bestDist := "", 4
	for _, k := range r.order {
		if d := levenshtein.ComputeDistance(name, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
