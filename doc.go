// Package styled resolves declarative styling variants for component-based
// UIs: given a base component and a configuration of base properties, named
// variants, compound variants and defaults, it produces a component that
// computes the final property set to forward on every render.
//
// # Configuration
//
// Configurations are authored in source, once per call site:
//
//	button := styled.MustNew(styled.Tag("button"), styled.Config{
//		Name: "Button",
//		Base: styled.Props{"class": "btn", "type": "button"},
//		Variants: styled.Variants{
//			"intent": {
//				"primary":   {"class": "btn-primary"},
//				"secondary": {"class": "btn-secondary"},
//			},
//			"size": {
//				"sm": {"class": "btn-sm"},
//				"lg": {"class": "btn-lg"},
//			},
//			"disabled": {
//				styled.BoolOption: {"class": "btn-disabled", "aria-disabled": "true"},
//			},
//		},
//		DefaultVariants: styled.Selection{"intent": "primary"},
//		CompoundVariants: []styled.CompoundVariant{
//			{
//				When:  styled.Selection{"intent": "primary", "size": "lg"},
//				Props: styled.Props{"class": "btn-primary-lg"},
//			},
//		},
//	})
//
// # Rendering
//
// Each render is a pure, stateless function of the incoming properties and
// the configuration. Properties naming a variant category select options;
// everything else passes through to the base:
//
//	err := button.Render(ctx, w,
//		styled.Props{"size": "lg", "class": "shadow"},
//		styled.Text("Save"),
//	)
//	// <button class="btn btn-primary btn-lg btn-primary-lg shadow" type="button">Save</button>
//
// Merge precedence is fixed: base properties, then simple variants, then
// compound variants, then direct instance properties. The reserved keys
// "class" and "style" accumulate instead of overwriting; every other key is
// last-write-wins.
//
// # Collaborators
//
// Utility-class conflict resolution is delegated to a ClassMerger — see the
// twmerge subpackage for a tailwind-merge backed implementation. Debug
// tracing goes through an injected Tracer (zerolog-backed by default
// construction via NewTracer).
//
// # CLI Tool
//
// The styled CLI renders variant matrices from *.styled.yaml component
// definitions. Install with:
//
//	go install github.com/yacobolo/styled/cmd/styled@latest
package styled
