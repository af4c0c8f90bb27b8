package styled

import (
	"fmt"
	"sort"
	"strings"
)

// ClassMerger resolves conflicts in a space-separated class string. It
// consumes the accumulated class tokens in sequence order and returns the
// final class value, keeping the last contributor on a conflict.
//
// The default merger (used when Config.Classes is nil) only collapses exact
// duplicate tokens. Utility-class conflict resolution (e.g. "p-2 p-1" ->
// "p-1") is delegated to an external merger such as the one wired up by the
// twmerge subpackage.
type ClassMerger interface {
	Merge(classes string) string
}

// ClassMap maps class tokens to a condition; only tokens mapped to true
// contribute. The zero-value map contributes nothing.
type ClassMap map[string]bool

// JoinClasses flattens class values of any supported kind into one
// space-separated string, preserving sequence order and dropping empty
// contributions. Supported kinds:
//
//   - string: split on whitespace into tokens
//   - ClassMap / map[string]bool: tokens whose condition is true
//   - []string, []any: flattened recursively
//   - fmt.Stringer: its String() value
//   - nil: skipped
//
// Anything else contributes nothing. JoinClasses performs no conflict
// resolution; see ClassMerger.
func JoinClasses(values ...any) string {
	var tokens []string
	for _, v := range values {
		tokens = appendClassTokens(tokens, v)
	}
	return strings.Join(tokens, " ")
}

func appendClassTokens(tokens []string, value any) []string {
	switch v := value.(type) {
	case nil:
		return tokens
	case string:
		return append(tokens, strings.Fields(v)...)
	case ClassMap:
		return appendClassMap(tokens, v)
	case map[string]bool:
		return appendClassMap(tokens, v)
	case []string:
		for _, s := range v {
			tokens = appendClassTokens(tokens, s)
		}
		return tokens
	case []any:
		for _, e := range v {
			tokens = appendClassTokens(tokens, e)
		}
		return tokens
	case fmt.Stringer:
		return append(tokens, strings.Fields(v.String())...)
	default:
		return tokens
	}
}

// appendClassMap appends conditional tokens in deterministic order so that
// repeated renders of the same props produce the same class string.
func appendClassMap(tokens []string, m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for token, on := range m {
		if on {
			keys = append(keys, token)
		}
	}
	sort.Strings(keys)
	for _, token := range keys {
		tokens = append(tokens, strings.Fields(token)...)
	}
	return tokens
}

// defaultClassMerger collapses exact duplicate tokens, keeping the last
// occurrence (mirroring last-contributor-wins for the reserved keys). It is
// intentionally unaware of CSS: utility conflicts are an external concern.
type defaultClassMerger struct{}

func (defaultClassMerger) Merge(classes string) string {
	fields := strings.Fields(classes)
	if len(fields) == 0 {
		return ""
	}

	last := make(map[string]int, len(fields))
	for i, tok := range fields {
		last[tok] = i
	}

	out := make([]string, 0, len(last))
	for i, tok := range fields {
		if last[tok] == i {
			out = append(out, tok)
		}
	}
	return strings.Join(out, " ")
}
