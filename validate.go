package styled

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	categoryNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator used for
// construction-time config checks.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("category_name", func(fl validator.FieldLevel) bool {
			return categoryNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks the configuration's shape once, at construction. The
// resolution path relies on these guarantees and is no-throw by contract,
// so everything that could be malformed is rejected here:
//
//   - category names are identifier-like and never the reserved keys
//   - a category declaring the BoolOption key declares nothing else
//   - defaults reference declared categories and type-match them (bool for
//     boolean categories, string otherwise)
//   - compound conditions and defaults carry only comparable scalar values
//
// Compound conditions referencing undeclared categories are permitted; they
// simply never match.
func (c Config) Validate() error {
	v := validatorInstance()
	var errs []error

	for name, opts := range c.Variants {
		if err := v.Var(name, "required,category_name"); err != nil {
			errs = append(errs, fmt.Errorf("variant category %q: invalid name", name))
		}
		if name == ClassKey || name == StyleKey {
			errs = append(errs, fmt.Errorf("variant category %q: reserved property key", name))
		}
		if _, hasBool := opts[BoolOption]; hasBool && len(opts) > 1 {
			errs = append(errs, fmt.Errorf("variant category %q: a boolean category declares only the %q option", name, BoolOption))
		}
		if len(opts) == 0 {
			errs = append(errs, fmt.Errorf("variant category %q: no options declared", name))
		}
	}

	for name, value := range c.DefaultVariants {
		opts, declared := c.Variants[name]
		if !declared {
			errs = append(errs, fmt.Errorf("default variant %q: category not declared", name))
			continue
		}
		switch value.(type) {
		case bool:
			if !opts.IsBoolean() {
				errs = append(errs, fmt.Errorf("default variant %q: bool default on a string category", name))
			}
		case string:
			if opts.IsBoolean() {
				errs = append(errs, fmt.Errorf("default variant %q: string default on a boolean category (use a bool)", name))
			}
		case nil:
			errs = append(errs, fmt.Errorf("default variant %q: nil default", name))
		default:
			errs = append(errs, fmt.Errorf("default variant %q: unsupported default type %T", name, value))
		}
	}

	for i, rule := range c.CompoundVariants {
		if len(rule.When) == 0 && len(rule.Props) == 0 {
			errs = append(errs, fmt.Errorf("compound variant %d: empty rule", i))
		}
		for name, want := range rule.When {
			if want == nil || !reflect.TypeOf(want).Comparable() {
				errs = append(errs, fmt.Errorf("compound variant %d: condition %q must be a comparable scalar", i, name))
			}
		}
	}

	return errors.Join(errs...)
}
