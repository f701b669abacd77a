package rules

// Placeholder texts used in synthesized fix snippets.
const (
	placeholderAltText     = "Description of the image"
	placeholderFieldLabel  = "Field Label"
	placeholderFieldID     = "unique-id"
	placeholderFieldName   = "field-name"
	placeholderActionLabel = "Description of the action"
	defaultButtonText      = "Perform action"
)

// nonDescriptiveButtonTexts are lower-cased button labels that say nothing
// about the action performed.
//
//nolint:gochecknoglobals // Read-only lookup table.
var nonDescriptiveButtonTexts = map[string]struct{}{
	"click here": {},
	"click":      {},
	"submit":     {},
	"button":     {},
	"ok":         {},
	"yes":        {},
	"no":         {},
}

// betterButtonTexts maps a generic label to a canned descriptive one.
//
//nolint:gochecknoglobals // Read-only lookup table.
var betterButtonTexts = map[string]string{
	"click here": "Learn more about our services",
	"click":      "View details",
	"submit":     "Send message",
	"button":     "Continue to next step",
	"ok":         "Confirm selection",
	"yes":        "Confirm action",
	"no":         "Cancel action",
}

// isNonDescriptive reports whether text (already lower-cased and trimmed)
// is a generic button label.
func isNonDescriptive(text string) bool {
	_, ok := nonDescriptiveButtonTexts[text]
	return ok
}

// betterButtonText returns the suggested label for a generic one.
// Labels without a table entry fall back to defaultButtonText.
func betterButtonText(text string) string {
	if better, ok := betterButtonTexts[text]; ok {
		return better
	}
	return defaultButtonText
}
