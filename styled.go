package styled

import (
	"context"
	"fmt"
	"io"
)

// fallbackName labels components whose config and base carry no name.
const fallbackName = "Styled"

// Component is a styled wrapper around a base: on every instantiation it
// resolves the incoming property bag against its variant configuration and
// forwards the final properties, plus the original children, to the base.
//
// A Component is immutable after New and safe for any number of concurrent
// renders. It implements Base, so styled components nest.
type Component struct {
	base    Base
	cfg     Config
	order   []string
	name    string
	tracer  Tracer
	classes ClassMerger
	slots   map[string]*Component
}

// New builds a styled component from a base and a configuration. The
// configuration is validated once here (see Config.Validate); resolution
// itself never fails. The config is copied shallowly and must not be
// mutated afterwards.
func New(base Base, cfg Config) (*Component, error) {
	if base == nil {
		return nil, fmt.Errorf("styled: base component is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("styled: invalid config for %q: %w", displayName(cfg, base), err)
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = NopTracer{}
	}
	classes := cfg.Classes
	if classes == nil {
		classes = defaultClassMerger{}
	}

	return &Component{
		base:    base,
		cfg:     cfg,
		order:   cfg.categoryOrder(),
		name:    displayName(cfg, base),
		tracer:  tracer,
		classes: classes,
	}, nil
}

// MustNew is New for configurations authored in source; it panics on a
// validation error.
func MustNew(base Base, cfg Config) *Component {
	c, err := New(base, cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// displayName derives the diagnostic label: config name, then the base's
// own display name, then a fallback constant.
func displayName(cfg Config, base Base) string {
	if cfg.Name != "" {
		return cfg.Name
	}
	if n, ok := base.(DisplayNamer); ok && n.DisplayName() != "" {
		return n.DisplayName()
	}
	return fallbackName
}

// DisplayName returns the component's diagnostic label. It plays no role in
// resolution.
func (c *Component) DisplayName() string { return c.name }

// Config returns the component's configuration.
func (c *Component) Config() Config { return c.cfg }

// Resolve computes the final property set for one render. It is a pure
// function of (props, config):
//
//  1. split incoming properties into variant selectors and pass-through
//  2. overlay instance selections on the declared defaults
//  3. resolve simple variants, then compound variants
//  4. merge base < variants < compound < direct properties
//
// Compound variants sit above simple variants because a conjunction is the
// more specific override. Nothing in this path can fail: unknown options
// and unmatched rules contribute nothing.
func (c *Component) Resolve(props Props) Props {
	selection, direct := c.splitProps(props)
	c.trace("split props", map[string]any{"variant": selection, "direct": direct})

	active := c.activeSelection(selection)
	c.trace("active selection", active)

	variantProps := resolveVariants(c.order, c.cfg.Variants, active, c.classes)
	compoundProps := resolveCompoundVariants(c.cfg.CompoundVariants, active, c.classes)
	c.trace("resolved variants", map[string]any{"simple": variantProps, "compound": compoundProps})

	final := MergeWith(c.classes, c.cfg.Base, variantProps, compoundProps, direct)
	c.trace("final props", final)

	return final
}

// splitProps partitions incoming properties: keys naming a declared variant
// category select variants, everything else passes through to the base.
func (c *Component) splitProps(props Props) (Selection, Props) {
	selection := make(Selection)
	direct := make(Props)

	for key, value := range props {
		if _, ok := c.cfg.Variants[key]; ok {
			selection[key] = value
		} else {
			direct[key] = value
		}
	}
	return selection, direct
}

// activeSelection overlays instance selections on the defaults. A default
// only fills in when the instance supplied nothing: an explicit value
// always wins, including an explicit false on a boolean variant.
func (c *Component) activeSelection(selection Selection) Selection {
	active := make(Selection, len(selection)+len(c.cfg.DefaultVariants))
	for name, value := range c.cfg.DefaultVariants {
		active[name] = value
	}
	for name, value := range selection {
		if value == nil {
			continue
		}
		active[name] = value
	}
	return active
}

// Instantiate resolves props and forwards to the base with the original
// children, making Component a Base itself.
func (c *Component) Instantiate(props Props, children ...Node) Node {
	return c.base.Instantiate(c.Resolve(props), children...)
}

// Render resolves, instantiates and renders in one call.
func (c *Component) Render(ctx context.Context, w io.Writer, props Props, children ...Node) error {
	return c.Instantiate(props, children...).Render(ctx, w)
}

// Matrix enumerates every declared option combination; see Config.Matrix.
func (c *Component) Matrix() []Selection { return c.cfg.Matrix() }

func (c *Component) trace(stage string, payload any) {
	if !c.cfg.Debug {
		return
	}
	c.tracer.Trace(c.name, stage, payload)
}
