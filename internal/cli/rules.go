package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/a11ylint/internal/logging"
	"github.com/yaklabco/a11ylint/pkg/a11y"
)

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Severities  []string `json:"severities"`
	Tags        []string `json:"tags,omitempty"`
}

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the accessibility rules",
		Long: `List the accessibility rules in the order they run, with their IDs,
names, the severities they can report, and a short description.

The rule set is fixed: every rule always runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := a11y.DefaultRegistry.Rules()

			switch format {
			case formatJSON:
				return outputRulesJSON(cmd.OutOrStdout(), rules)
			case "text":
				outputRulesText(cmd.OutOrStdout(), rules)
				return nil
			default:
				return withExitCode(ExitInvalidUsage, fmt.Errorf("invalid format %q: must be text or json", format))
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

func outputRulesText(w io.Writer, rules []a11y.Rule) {
	logger := logging.NewInteractive(w)
	logger.Info("accessibility rules")
	for _, rule := range rules {
		logger.Info(rule.ID(),
			logging.FieldName, rule.Name(),
			logging.FieldSeverity, joinSeverities(rule),
			logging.FieldDescription, rule.Description(),
		)
	}
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(w io.Writer, rules []a11y.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Severities:  severityNames(rule),
			Tags:        rule.Tags(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}

func severityNames(rule a11y.Rule) []string {
	severities := rule.Severities()
	names := make([]string, len(severities))
	for i, sev := range severities {
		names[i] = string(sev)
	}
	return names
}

func joinSeverities(rule a11y.Rule) string {
	return strings.Join(severityNames(rule), "/")
}
