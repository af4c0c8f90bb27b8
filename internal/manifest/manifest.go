// Package manifest loads *.styled.yaml component definitions for the
// styled CLI. A definition is the YAML mirror of a styled.Config plus the
// primitive tag it applies to:
//
//	name: Button
//	tag: button
//	base:
//	  class: btn
//	  type: button
//	variants:
//	  intent:
//	    primary: { class: btn-primary }
//	    secondary: { class: btn-secondary }
//	  disabled:
//	    "true": { class: btn-disabled }
//	defaults:
//	  intent: primary
//	compound:
//	  - when: { intent: primary, size: lg }
//	    props: { class: btn-primary-lg }
//
// The library itself never reads files; definitions exist only for
// developer tooling.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/yacobolo/styled"
)

// Definition is one component described in YAML.
type Definition struct {
	Name     string                               `koanf:"name" validate:"required"`
	Tag      string                               `koanf:"tag"`
	Base     map[string]any                       `koanf:"base"`
	Variants map[string]map[string]map[string]any `koanf:"variants"`
	Defaults map[string]any                       `koanf:"defaults"`
	Compound []CompoundRule                       `koanf:"compound"`
	Order    []string                             `koanf:"order"`
}

// CompoundRule mirrors styled.CompoundVariant with the condition and the
// applied properties segregated under dedicated keys.
type CompoundRule struct {
	When  map[string]any `koanf:"when"`
	Props map[string]any `koanf:"props"`
}

var defValidator = validator.New()

// Load reads and validates a single definition file.
func Load(path string) (*Definition, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading definition %s: %w", path, err)
	}

	var def Definition
	if err := k.Unmarshal("", &def); err != nil {
		return nil, fmt.Errorf("decoding definition %s: %w", path, err)
	}

	if err := defValidator.Struct(&def); err != nil {
		return nil, fmt.Errorf("invalid definition %s: %w", path, err)
	}
	if def.Tag == "" {
		def.Tag = "div"
	}

	return &def, nil
}

// Component builds the styled component the definition describes. The
// resulting config goes through styled's own construction-time validation.
func (d *Definition) Component() (*styled.Component, error) {
	return styled.New(styled.Tag(d.Tag), d.Config())
}

// Config converts the YAML shape into a styled.Config.
func (d *Definition) Config() styled.Config {
	cfg := styled.Config{
		Name:            d.Name,
		Base:            toProps(d.Base),
		DefaultVariants: styled.Selection(d.Defaults),
		VariantOrder:    d.Order,
	}

	if len(d.Variants) > 0 {
		cfg.Variants = make(styled.Variants, len(d.Variants))
		for category, options := range d.Variants {
			opts := make(styled.VariantOptions, len(options))
			for key, props := range options {
				opts[key] = toProps(props)
			}
			cfg.Variants[category] = opts
		}
	}

	for _, rule := range d.Compound {
		cfg.CompoundVariants = append(cfg.CompoundVariants, styled.CompoundVariant{
			When:  styled.Selection(rule.When),
			Props: toProps(rule.Props),
		})
	}

	return cfg
}

// toProps converts a decoded YAML map into Props, lifting a nested style
// map into styled.Style.
func toProps(m map[string]any) styled.Props {
	if len(m) == 0 {
		return nil
	}
	props := make(styled.Props, len(m))
	for key, value := range m {
		if key == styled.StyleKey {
			if nested, ok := value.(map[string]any); ok {
				style := make(styled.Style, len(nested))
				for name, decl := range nested {
					style[name] = fmt.Sprint(decl)
				}
				props[key] = style
				continue
			}
		}
		props[key] = value
	}
	return props
}

// ParseSelection converts CLI --set pairs ("intent=primary",
// "disabled=true") into a selection, using the definition to decide whether
// a value is a bool toggle or an option key string.
func (d *Definition) ParseSelection(pairs map[string]string) (styled.Selection, error) {
	sel := make(styled.Selection, len(pairs))
	for category, raw := range pairs {
		options, declared := d.Variants[category]
		if !declared {
			return nil, fmt.Errorf("unknown variant category %q", category)
		}
		if _, isBool := options[styled.BoolOption]; isBool && len(options) == 1 {
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, fmt.Errorf("variant %q is boolean, got %q", category, raw)
			}
			sel[category] = b
			continue
		}
		sel[category] = raw
	}
	return sel, nil
}

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads .gitignore once; a missing file degrades gracefully.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkip filters discovered paths. Gitignore rules apply only to
// relative paths within the project.
func shouldSkip(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}
	gi := loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}

// Discover expands doublestar glob patterns to definition files, skipping
// directories and gitignored paths, deduplicated and sorted.
func Discover(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			if shouldSkip(match) {
				continue
			}
			seen[match] = true
			files = append(files, match)
		}
	}

	sort.Strings(files)
	return files, nil
}
