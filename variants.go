package styled

import (
	"fmt"
	"sort"
)

// BoolOption is the option key of a boolean variant. A category whose
// option set is exactly {BoolOption} is boolean-typed: it is toggled with a
// Go bool instance value, never with the strings "true" or "false".
const BoolOption = "true"

// VariantOptions maps option keys of one category to the properties they
// apply. Boolean variants declare the single key BoolOption.
type VariantOptions map[string]Props

// Variants maps category names (styling axes like "size" or "intent") to
// their option sets.
type Variants map[string]VariantOptions

// Selection maps category names to chosen option values. Values are option
// key strings, or bools for boolean variants. It serves three roles:
// default variant values, compound-rule conditions, and the per-render
// active selection.
type Selection map[string]any

// CompoundVariant applies extra properties when every condition in When
// holds on the active selection. Conditions match by strict equality: a
// bool condition never matches a string selection and vice versa.
type CompoundVariant struct {
	When  Selection
	Props Props
}

// Config is the complete, immutable specification for one styled
// component. It is authored once per call site and may be shared by any
// number of concurrent renders; no step of resolution mutates it.
type Config struct {
	// Name labels the component in diagnostics and trace output. Optional;
	// the base component's display name is used when empty.
	Name string

	// Base is applied unconditionally, below every other property source.
	Base Props

	// Variants declares the selectable styling axes.
	Variants Variants

	// DefaultVariants supplies option values for categories the instance
	// omits. Explicit instance values always win, including an explicit
	// false on a boolean variant.
	DefaultVariants Selection

	// CompoundVariants apply on conjunctions of selections, in slice order.
	// All matching rules contribute; later rules win on conflicts.
	CompoundVariants []CompoundVariant

	// VariantOrder fixes the order categories are resolved in, so that a
	// later category's properties win over an earlier one's. Categories
	// omitted here (or the whole field) fall back to sorted name order.
	VariantOrder []string

	// Debug emits one trace record per resolution stage through Tracer.
	// Tracing never affects the resolved result.
	Debug  bool
	Tracer Tracer

	// Classes resolves utility-class conflicts in accumulated class
	// strings. Nil selects the built-in duplicate-collapsing merger.
	Classes ClassMerger
}

// IsBoolean reports whether the option set is boolean-typed: exactly one
// option, keyed BoolOption.
func (o VariantOptions) IsBoolean() bool {
	if len(o) != 1 {
		return false
	}
	_, ok := o[BoolOption]
	return ok
}

// categoryOrder computes the deterministic resolution order once, at
// construction. Explicit VariantOrder entries come first (unknown names are
// dropped); remaining categories follow in sorted name order.
func (c Config) categoryOrder() []string {
	order := make([]string, 0, len(c.Variants))
	seen := make(map[string]bool, len(c.Variants))

	for _, name := range c.VariantOrder {
		if _, ok := c.Variants[name]; ok && !seen[name] {
			order = append(order, name)
			seen[name] = true
		}
	}

	rest := make([]string, 0, len(c.Variants))
	for name := range c.Variants {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

// optionKey translates one selection value into the lookup key for its
// category, or ok=false when the category contributes nothing.
//
// Boolean categories accept only Go bools: true selects BoolOption, false
// selects nothing, and the strings "true"/"false" are rejected outright as
// a guard against stringified booleans. String categories stringify any
// non-nil value, so numeric selectors coerce before lookup.
func optionKey(opts VariantOptions, value any) (string, bool) {
	if value == nil {
		return "", false
	}

	if opts.IsBoolean() {
		switch v := value.(type) {
		case bool:
			if v {
				return BoolOption, true
			}
			return "", false
		case string:
			if v == "true" || v == "false" {
				return "", false
			}
			return v, true
		default:
			return fmt.Sprint(v), true
		}
	}

	if s, ok := value.(string); ok {
		return s, true
	}
	return fmt.Sprint(value), true
}

// resolveVariants computes the property contribution of the simple
// variants: for each category, in order, look up the active option and
// collect its properties. Unknown or missing option keys contribute
// nothing; nothing here can fail.
func resolveVariants(order []string, variants Variants, active Selection, classes ClassMerger) Props {
	var contributions []Props

	for _, name := range order {
		opts := variants[name]
		key, ok := optionKey(opts, active[name])
		if !ok {
			continue
		}
		if props, found := opts[key]; found {
			contributions = append(contributions, props)
		}
	}

	return MergeWith(classes, contributions...)
}

// resolveCompoundVariants computes the property contribution of the
// compound rules. Every rule whose full condition set holds contributes, in
// slice order; there is no short-circuit on first match. A rule with an
// empty When always applies.
func resolveCompoundVariants(rules []CompoundVariant, active Selection, classes ClassMerger) Props {
	var contributions []Props

	for _, rule := range rules {
		if matchesSelection(rule.When, active) {
			contributions = append(contributions, rule.Props)
		}
	}

	return MergeWith(classes, contributions...)
}

// matchesSelection reports whether every condition holds on the active
// selection under strict equality.
func matchesSelection(when, active Selection) bool {
	for name, want := range when {
		if active[name] != want {
			return false
		}
	}
	return true
}

// Matrix enumerates every combination of declared options as a list of
// selections, in deterministic order: categories in resolution order,
// option keys sorted, boolean categories contributing true and "omitted".
// Useful for golden-testing a design system and for the styled CLI.
func (c Config) Matrix() []Selection {
	order := c.categoryOrder()
	combos := []Selection{{}}

	for _, name := range order {
		opts := c.Variants[name]
		values := optionValues(opts)

		next := make([]Selection, 0, len(combos)*len(values))
		for _, combo := range combos {
			for _, v := range values {
				grown := make(Selection, len(combo)+1)
				for k, cv := range combo {
					grown[k] = cv
				}
				if v != nil {
					grown[name] = v
				}
				next = append(next, grown)
			}
		}
		combos = next
	}

	return combos
}

// optionValues lists the selectable values of one category. A nil entry
// stands for "category omitted".
func optionValues(opts VariantOptions) []any {
	if opts.IsBoolean() {
		return []any{true, nil}
	}
	keys := make([]string, 0, len(opts))
	for key := range opts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	values := make([]any, len(keys))
	for i, key := range keys {
		values[i] = key
	}
	return values
}
