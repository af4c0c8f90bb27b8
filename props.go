package styled

// Reserved property keys that receive accumulation semantics instead of
// plain last-write-wins assignment.
const (
	// ClassKey holds the element's class value. Contributions from every
	// property source accumulate in sequence order and are resolved by the
	// configured ClassMerger.
	ClassKey = "class"
	// StyleKey holds inline style declarations as a Style map. Contributions
	// are shallow-overlaid declaration by declaration.
	StyleKey = "style"
)

// Props is an open property bag forwarded to a base component. Apart from
// the two reserved keys (ClassKey, StyleKey), the library attaches no
// meaning to its contents — whatever the host framework accepts is legal.
//
// A nil value is treated as "not provided" and never overwrites a value set
// by an earlier contributor.
type Props map[string]any

// Style holds inline style declarations (property name -> value). Styles
// merge by shallow overlay: a later contributor's declarations overwrite
// earlier ones with the same name, and non-overlapping declarations from
// all contributors are preserved.
type Style map[string]string

// Merge combines property sets in sequence order into a single set using
// the default class merger. Nil sets are skipped. For plain keys, later
// sets win; for ClassKey contributions accumulate; for StyleKey maps are
// shallow-overlaid. See MergeWith for custom class-conflict resolution.
//
// Merge is pure and idempotent: merging an already-merged set changes
// nothing.
func Merge(sets ...Props) Props {
	return MergeWith(nil, sets...)
}

// MergeWith is Merge with an explicit class-conflict resolver. A nil merger
// falls back to JoinClasses semantics (token join, exact duplicates
// collapsed).
func MergeWith(classes ClassMerger, sets ...Props) Props {
	if classes == nil {
		classes = defaultClassMerger{}
	}

	out := make(Props)
	var classParts []any
	var style Style

	for _, set := range sets {
		if set == nil {
			continue
		}
		for key, value := range set {
			if value == nil {
				continue
			}
			switch key {
			case ClassKey:
				classParts = append(classParts, value)
			case StyleKey:
				style = overlayStyle(style, value)
			default:
				out[key] = value
			}
		}
	}

	if merged := classes.Merge(JoinClasses(classParts...)); merged != "" {
		out[ClassKey] = merged
	}
	if len(style) > 0 {
		out[StyleKey] = style
	}

	return out
}

// overlayStyle merges one style contribution into the accumulator. Both
// Style and plain map[string]string contributions are accepted; anything
// else contributes nothing.
func overlayStyle(acc Style, value any) Style {
	var src Style
	switch v := value.(type) {
	case Style:
		src = v
	case map[string]string:
		src = v
	default:
		return acc
	}
	if len(src) == 0 {
		return acc
	}
	if acc == nil {
		acc = make(Style, len(src))
	}
	for name, decl := range src {
		acc[name] = decl
	}
	return acc
}
