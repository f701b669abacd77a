package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/a11ylint/pkg/a11y"
	"github.com/yaklabco/a11ylint/pkg/htmltree"
)

// applyRule parses input and runs a single rule against it.
func applyRule(t *testing.T, rule a11y.Rule, input string) []a11y.Finding {
	t.Helper()

	doc, err := htmltree.Parse(context.Background(), input)
	require.NoError(t, err)

	findings, err := rule.Apply(a11y.NewRuleContext(context.Background(), doc))
	require.NoError(t, err)
	return findings
}

func titles(findings []a11y.Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Title)
	}
	return out
}
