package config

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/careops/dispatch/internal/core/styles"
	"github.com/careops/dispatch/internal/core/todo"
)

// Validate checks the configuration for structural problems.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, themeExists),
		criterio.Run("default_category", c.DefaultCategory, categoryIsKnown),
		c.validatePinnedCases(),
	)
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q, available: %v", name, styles.ThemeNames())
	}
	return nil
}

func categoryIsKnown(c todo.Category) error {
	if !c.IsValid() {
		return fmt.Errorf("unknown category %q, available: %v", c, todo.Categories)
	}
	return nil
}

// validatePinnedCases checks each pinned-case glob compiles.
func (c *Config) validatePinnedCases() error {
	var errs criterio.FieldErrorsBuilder
	for i, pattern := range c.PinnedCases {
		if pattern == "" {
			errs = errs.Append(fmt.Sprintf("pinned_cases[%d]", i), fmt.Errorf("empty pattern"))
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			errs = errs.Append(fmt.Sprintf("pinned_cases[%d]", i), fmt.Errorf("invalid glob %q", pattern))
		}
	}
	return errs.ToError()
}

// IsPinned reports whether a case ID matches any pinned-case pattern.
// Invalid patterns are rejected by Validate, so match errors are ignored.
func (c *Config) IsPinned(caseID string) bool {
	for _, pattern := range c.PinnedCases {
		if ok, _ := doublestar.Match(pattern, caseID); ok {
			return true
		}
	}
	return false
}
