package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/a11ylint/pkg/config"
)

func TestFormControlLabelRule(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantSeverity []config.Severity
		wantCode     []string
	}{
		{
			name:  "labelled input",
			input: `<label for="q">Search</label><input id="q" name="query">`,
		},
		{
			name:  "label after input still counts",
			input: `<input id="q"><label for="q">Search</label>`,
		},
		{
			name:  "name only is not reported",
			input: `<input name="query">`,
		},
		{
			name:         "no id and no name keeps placeholder",
			input:        `<input type="email" placeholder="Your email">`,
			wantSeverity: []config.Severity{config.SeverityError},
			wantCode:     []string{`<input type="email" id="unique-id" name="field-name" placeholder="Your email">`},
		},
		{
			name:         "no id and no name without placeholder",
			input:        `<input>`,
			wantSeverity: []config.Severity{config.SeverityError},
			wantCode:     []string{`<input type="text" id="unique-id" name="field-name" placeholder="">`},
		},
		{
			name:         "empty id and name count as missing",
			input:        `<input id="" name="">`,
			wantSeverity: []config.Severity{config.SeverityError},
			wantCode:     []string{`<input type="text" id="unique-id" name="field-name" placeholder="">`},
		},
		{
			name:         "id without label uses name",
			input:        `<input id="q" name="query">`,
			wantSeverity: []config.Severity{config.SeverityWarning},
			wantCode:     []string{"<label for=\"q\">Field Label</label>\n<input type=\"text\" id=\"q\" name=\"query\">"},
		},
		{
			name:         "id without label falls back to id for name",
			input:        `<textarea id="msg"></textarea>`,
			wantSeverity: []config.Severity{config.SeverityWarning},
			wantCode:     []string{"<label for=\"msg\">Field Label</label>\n<input type=\"textarea\" id=\"msg\" name=\"msg\">"},
		},
		{
			name:         "label for match is exact",
			input:        `<label for="Email">Email</label><input id="email" type="EMAIL">`,
			wantSeverity: []config.Severity{config.SeverityWarning},
			wantCode:     []string{"<label for=\"email\">Field Label</label>\n<input type=\"email\" id=\"email\" name=\"email\">"},
		},
		{
			name:         "select types",
			input:        `<select></select><select multiple></select>`,
			wantSeverity: []config.Severity{config.SeverityError, config.SeverityError},
			wantCode: []string{
				`<input type="select-one" id="unique-id" name="field-name" placeholder="">`,
				`<input type="select-multiple" id="unique-id" name="field-name" placeholder="">`,
			},
		},
		{
			name:         "unknown input type reads as text",
			input:        `<input type="fancy">`,
			wantSeverity: []config.Severity{config.SeverityError},
			wantCode:     []string{`<input type="text" id="unique-id" name="field-name" placeholder="">`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := applyRule(t, NewFormControlLabelRule(), tt.input)
			require.Len(t, findings, len(tt.wantSeverity))

			for i, f := range findings {
				assert.Equal(t, tt.wantSeverity[i], f.Severity)
				assert.Equal(t, tt.wantCode[i], f.Code)
			}
		})
	}
}

func TestFormControlLabelRule_Titles(t *testing.T) {
	findings := applyRule(t, NewFormControlLabelRule(), `<input><input id="a">`)

	assert.Equal(t, []string{
		"Form input missing id and name attributes",
		"Form input missing associated label",
	}, titles(findings))
}
