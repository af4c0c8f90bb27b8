package styled

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantOptionsIsBoolean(t *testing.T) {
	tests := []struct {
		name string
		opts VariantOptions
		want bool
	}{
		{
			name: "single true option",
			opts: VariantOptions{BoolOption: {"class": "on"}},
			want: true,
		},
		{
			name: "string options",
			opts: VariantOptions{"sm": {}, "lg": {}},
			want: false,
		},
		{
			name: "true among other options",
			opts: VariantOptions{BoolOption: {}, "sm": {}},
			want: false,
		},
		{
			name: "empty",
			opts: VariantOptions{},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.IsBoolean())
		})
	}
}

func TestOptionKey(t *testing.T) {
	boolOpts := VariantOptions{BoolOption: {"class": "on"}}
	sizeOpts := VariantOptions{"sm": {}, "lg": {}}

	tests := []struct {
		name    string
		opts    VariantOptions
		value   any
		wantKey string
		wantOK  bool
	}{
		{name: "nil selects nothing", opts: sizeOpts, value: nil, wantOK: false},
		{name: "string selects its option", opts: sizeOpts, value: "sm", wantKey: "sm", wantOK: true},
		{name: "number stringifies", opts: sizeOpts, value: 2, wantKey: "2", wantOK: true},
		{name: "bool true selects the boolean option", opts: boolOpts, value: true, wantKey: BoolOption, wantOK: true},
		{name: "bool false selects nothing", opts: boolOpts, value: false, wantOK: false},
		{name: `string "true" rejected on boolean variant`, opts: boolOpts, value: "true", wantOK: false},
		{name: `string "false" rejected on boolean variant`, opts: boolOpts, value: "false", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := optionKey(tt.opts, tt.value)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantKey, key)
			}
		})
	}
}

func TestCategoryOrder(t *testing.T) {
	variants := Variants{
		"size":     {"sm": {}},
		"intent":   {"primary": {}},
		"disabled": {BoolOption: {}},
	}

	tests := []struct {
		name  string
		order []string
		want  []string
	}{
		{
			name: "no explicit order falls back to sorted names",
			want: []string{"disabled", "intent", "size"},
		},
		{
			name:  "explicit order comes first, rest sorted",
			order: []string{"size"},
			want:  []string{"size", "disabled", "intent"},
		},
		{
			name:  "unknown and duplicate entries dropped",
			order: []string{"size", "ghost", "size", "intent"},
			want:  []string{"size", "intent", "disabled"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Variants: variants, VariantOrder: tt.order}
			assert.Equal(t, tt.want, cfg.categoryOrder())
		})
	}
}

func TestResolveVariants_LaterCategoryWins(t *testing.T) {
	variants := Variants{
		"first":  {"on": {"data-x": "first"}},
		"second": {"on": {"data-x": "second"}},
	}
	active := Selection{"first": "on", "second": "on"}

	got := resolveVariants([]string{"first", "second"}, variants, active, defaultClassMerger{})
	assert.Equal(t, "second", got["data-x"])

	got = resolveVariants([]string{"second", "first"}, variants, active, defaultClassMerger{})
	assert.Equal(t, "first", got["data-x"])
}

func TestResolveVariants_UnknownOptionContributesNothing(t *testing.T) {
	variants := Variants{"size": {"sm": {"class": "s"}}}

	got := resolveVariants([]string{"size"}, variants, Selection{"size": "xl"}, defaultClassMerger{})
	assert.Empty(t, got)
}

func TestResolveCompoundVariants(t *testing.T) {
	rules := []CompoundVariant{
		{When: Selection{"intent": "primary", "size": "lg"}, Props: Props{"class": "combo", "data-x": "a"}},
		{When: Selection{"intent": "primary"}, Props: Props{"data-x": "b"}},
		{When: Selection{"disabled": true}, Props: Props{"class": "off"}},
	}

	t.Run("all matching rules contribute, later wins", func(t *testing.T) {
		got := resolveCompoundVariants(rules, Selection{"intent": "primary", "size": "lg"}, defaultClassMerger{})
		assert.Equal(t, "combo", got["class"])
		assert.Equal(t, "b", got["data-x"])
	})

	t.Run("strict equality: bool condition never matches string", func(t *testing.T) {
		got := resolveCompoundVariants(rules, Selection{"disabled": "true"}, defaultClassMerger{})
		assert.Empty(t, got)
	})

	t.Run("empty when always applies", func(t *testing.T) {
		got := resolveCompoundVariants([]CompoundVariant{{Props: Props{"data-x": "always"}}}, Selection{}, defaultClassMerger{})
		assert.Equal(t, "always", got["data-x"])
	})

	t.Run("partial match contributes nothing", func(t *testing.T) {
		got := resolveCompoundVariants(rules, Selection{"intent": "secondary", "size": "lg"}, defaultClassMerger{})
		assert.Empty(t, got)
	})
}

func TestConfigMatrix(t *testing.T) {
	cfg := Config{
		Variants: Variants{
			"intent":   {"primary": {}, "secondary": {}},
			"disabled": {BoolOption: {}},
		},
		VariantOrder: []string{"intent"},
	}

	want := []Selection{
		{"intent": "primary", "disabled": true},
		{"intent": "primary"},
		{"intent": "secondary", "disabled": true},
		{"intent": "secondary"},
	}
	assert.Equal(t, want, cfg.Matrix())
}

func TestConfigMatrix_NoVariants(t *testing.T) {
	assert.Equal(t, []Selection{{}}, Config{}.Matrix())
}
