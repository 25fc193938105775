package placement

import (
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/popkit/internal/geom"
	"github.com/jmylchreest/popkit/internal/ref"
)

// Measurable is a rendered node whose bounding box can be read. Reading
// layout is a synchronous forced measurement, so the Placer reads it at
// most once per trigger.
type Measurable interface {
	Bounds() geom.Rect
}

// ViewportFunc reports the current viewport dimensions.
type ViewportFunc func() geom.Viewport

// PlacerOption configures a Placer at construction.
type PlacerOption func(*Placer)

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) PlacerOption {
	return func(p *Placer) { p.logger = logger }
}

// Placer holds the placement result for one popup. Measurement runs when
// the referenced node's identity changes (mount, remount); it never
// re-runs for resize or scroll. Callers that need live repositioning
// re-trigger by swapping the node ref.
type Placer struct {
	id       string
	node     *ref.Ref[Measurable]
	viewport ViewportFunc
	logger   *slog.Logger

	result Placement
	// last is the node measured by the previous pass; measurement is
	// skipped while the ref still resolves to it.
	last Measurable
}

// NewPlacer creates a placer for the given node ref and viewport source.
// The result starts at the default (right, bottom).
func NewPlacer(node *ref.Ref[Measurable], viewport ViewportFunc, opts ...PlacerOption) *Placer {
	p := &Placer{
		id:       ulid.Make().String(),
		node:     node,
		viewport: viewport,
		logger:   slog.Default(),
		result:   Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Measure runs a measurement pass and returns the current result.
//
// If the ref does not resolve to a node the previous (or default) result
// is retained. If it resolves to the node already measured, the pass is a
// no-op: the result is published exactly once per node.
func (p *Placer) Measure() Placement {
	if p.node == nil || p.viewport == nil {
		return p.result
	}
	node, ok := p.node.Current()
	if !ok || node == nil {
		return p.result
	}
	if node == p.last {
		return p.result
	}

	box := node.Bounds()
	vp := p.viewport()
	p.result = Compute(box, vp)
	p.last = node
	p.logger.Debug("popup measured",
		"placer", p.id,
		"alignment", p.result.Alignment, "side", p.result.Side,
		"right", box.Right(), "bottom", box.Bottom(),
		"viewport_w", vp.Width, "viewport_h", vp.Height)
	return p.result
}

// Result returns the current placement without triggering a measurement.
func (p *Placer) Result() Placement {
	return p.result
}
