package rules

import "github.com/yaklabco/a11ylint/pkg/a11y"

// RegisterAll registers all built-in rules with the given registry.
// Registration order is execution order.
func RegisterAll(registry *a11y.Registry) {
	registry.Register(NewImageAltRule())                  // A11Y001
	registry.Register(NewFormControlLabelRule())          // A11Y002
	registry.Register(NewHeadingIncrementRule())          // A11Y003
	registry.Register(NewDescriptiveButtonTextRule())     // A11Y004
	registry.Register(NewInteractiveAccessibleNameRule()) // A11Y005
	registry.Register(NewInlineColorContrastRule())       // A11Y006
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(a11y.DefaultRegistry)
}
