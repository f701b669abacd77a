// Package rules implements the built-in accessibility rules.
//
// The rule set is fixed and runs in this order:
//
//	A11Y001 image-alt                    img without alt (error) or with blank alt (warning)
//	A11Y002 form-control-label           form controls without id/name (error) or label (warning)
//	A11Y003 heading-increment            headings that skip a level (warning)
//	A11Y004 descriptive-button-text      buttons with generic text (warning)
//	A11Y005 interactive-accessible-name  interactive elements with no accessible name (info)
//	A11Y006 inline-color-contrast        inline color styles that need a contrast check (info)
//
// Each rule is independent: it reads the document, never mutates it, and
// emits findings in document order. Importing this package registers the
// rules with a11y.DefaultRegistry.
package rules
