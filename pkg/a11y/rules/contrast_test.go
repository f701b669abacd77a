package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/a11ylint/pkg/config"
)

func TestInlineColorContrastRule(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantElement string
	}{
		{
			name:  "no styles",
			input: `<p>plain</p>`,
		},
		{
			name:  "style without color",
			input: `<p style="margin: 0">plain</p>`,
		},
		{
			name:        "single color",
			input:       `<p style="color:red">red</p>`,
			wantElement: "1 elements with color styles found",
		},
		{
			name: "many elements still one finding",
			input: `<p style="color:red">a</p><div style="background: #fff"><span style="border-color: blue">b</span></div>` +
				`<em style="font-weight: bold">c</em>`,
			wantElement: "3 elements with color styles found",
		},
		{
			name:        "substring match, not CSS aware",
			input:       `<p style="--my-colorful-var: 1">a</p>`,
			wantElement: "1 elements with color styles found",
		},
		{
			name:  "match is case sensitive",
			input: `<p style="COLOR: red">a</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := applyRule(t, NewInlineColorContrastRule(), tt.input)

			if tt.wantElement == "" {
				assert.Empty(t, findings)
				return
			}

			require.Len(t, findings, 1)
			assert.Equal(t, config.SeverityInfo, findings[0].Severity)
			assert.Equal(t, "Color contrast check needed", findings[0].Title)
			assert.Equal(t, tt.wantElement, findings[0].Element)
			assert.Contains(t, findings[0].Suggestion, "4.5:1")
			assert.Contains(t, findings[0].Suggestion, "3:1")
		})
	}
}
