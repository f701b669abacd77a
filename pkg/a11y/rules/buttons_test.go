package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/a11ylint/pkg/config"
)

func TestDescriptiveButtonTextRule(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode []string
	}{
		{
			name:     "click here",
			input:    `<button>Click here</button>`,
			wantCode: []string{"<button>Learn more about our services</button>"},
		},
		{
			name:     "case and whitespace are ignored",
			input:    `<button>  SUBMIT </button>`,
			wantCode: []string{"<button>Send message</button>"},
		},
		{
			name:     "text across child elements",
			input:    `<button><span>O</span>K</button>`,
			wantCode: []string{"<button>Confirm selection</button>"},
		},
		{
			name: "every denylisted phrase",
			input: `<button>click</button><button>button</button><button>yes</button>` +
				`<button>no</button>`,
			wantCode: []string{
				"<button>View details</button>",
				"<button>Continue to next step</button>",
				"<button>Confirm action</button>",
				"<button>Cancel action</button>",
			},
		},
		{
			name:  "descriptive text",
			input: `<button>Read more</button><button>Submit order</button>`,
		},
		{
			name:  "empty button is not this rule's concern",
			input: `<button></button>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := applyRule(t, NewDescriptiveButtonTextRule(), tt.input)
			require.Len(t, findings, len(tt.wantCode))

			for i, f := range findings {
				assert.Equal(t, config.SeverityWarning, f.Severity)
				assert.Equal(t, "Non-descriptive button text", f.Title)
				assert.Equal(t, tt.wantCode[i], f.Code)
			}
		})
	}
}

func TestBetterButtonText_Fallback(t *testing.T) {
	for phrase := range nonDescriptiveButtonTexts {
		assert.NotEqual(t, defaultButtonText, betterButtonText(phrase), "phrase %q has no table entry", phrase)
	}
	assert.Equal(t, "Perform action", betterButtonText("press me"))
}
