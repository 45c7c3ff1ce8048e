package layout

import (
	"log"

	"github.com/joral/gridboard/internal/grid"
)

// Configuration is the externally persisted layout shape: the ordered
// widget list plus the active preset name. The host owns storage; the
// engine only translates to and from it.
type Configuration struct {
	Preset  string
	Widgets []WidgetConfig
}

// WidgetConfig is one persisted widget entry.
type WidgetConfig struct {
	ID       string
	Kind     string
	X        int
	Y        int
	Width    int
	Height   int
	Settings map[string]string
}

// ConfigurationFrom serializes the model verbatim, in order, under the
// given preset name.
func ConfigurationFrom(m *Model, preset string) Configuration {
	cfg := Configuration{Preset: preset}
	for _, p := range m.placements {
		cfg.Widgets = append(cfg.Widgets, WidgetConfig{
			ID:       p.ID,
			Kind:     p.Kind,
			X:        p.Rect.X,
			Y:        p.Rect.Y,
			Width:    p.Rect.Width,
			Height:   p.Rect.Height,
			Settings: p.Settings,
		})
	}
	return cfg
}

// Restore loads a persisted configuration into a fresh model bound to
// spec, which may belong to a different preset than the one the
// configuration was saved under.
//
// Per entry: sizes clamp into the kind's envelope and the grid, and the
// origin re-clamps so the rect stays on the grid — switching to a smaller
// preset never strands a widget off-grid. A widget whose minimum size
// cannot fit is dropped and logged, not corrupted in place. Entries with
// missing fields are skipped without affecting siblings. An unregistered
// kind fails the whole restore: that is a host/engine contract error, not
// bad user data.
func (c Configuration) Restore(spec grid.Spec, reg *Registry) (*Model, error) {
	m := NewModel(spec)
	for _, w := range c.Widgets {
		if w.ID == "" || w.Kind == "" || w.Width < 1 || w.Height < 1 {
			log.Printf("layout: skipping malformed widget entry %+v", w)
			continue
		}
		ks, err := reg.Lookup(w.Kind)
		if err != nil {
			return nil, err
		}
		if ks.Min.Width > spec.Columns || ks.Min.Height > spec.Rows {
			log.Printf("layout: dropping widget %s (%s): minimum %dx%d does not fit %dx%d grid",
				w.ID, w.Kind, ks.Min.Width, ks.Min.Height, spec.Columns, spec.Rows)
			continue
		}
		width := clamp(w.Width, ks.Min.Width, min(ks.Max.Width, spec.Columns))
		height := clamp(w.Height, ks.Min.Height, min(ks.Max.Height, spec.Rows))
		rect := grid.Rect{
			X:      clamp(w.X, 0, spec.Columns-width),
			Y:      clamp(w.Y, 0, spec.Rows-height),
			Width:  width,
			Height: height,
		}
		m.Add(Placement{ID: w.ID, Kind: w.Kind, Rect: rect, Settings: w.Settings})
	}
	return m, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
