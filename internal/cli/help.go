package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/a11ylint/internal/ui/pretty"
)

// HelpFormatter renders Cobra help with the same styles as finding output.
type HelpFormatter struct {
	styles *pretty.Styles
}

// NewHelpFormatter creates a help formatter for the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{styles: pretty.NewStyles(pretty.IsColorEnabled(colorMode, writer))}
}

const usageTemplate = `{{ heading "Usage:" }}
{{- if .Runnable}}
  {{ command .UseLine }}{{end}}
{{- if .HasAvailableSubCommands}}
  {{ command .CommandPath }} [command]{{end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{ . | trimTrailingWhitespaces }}

{{end}}{{if or .Runnable .HasSubCommands}}{{ .UsageString }}{{end}}`

func (h *HelpFormatter) funcs() template.FuncMap {
	return template.FuncMap{
		"heading":                 h.styles.SummaryTitle.Render,
		"command":                 h.styles.FilePath.Render,
		"subcommand":              h.styles.RuleID.Render,
		"dim":                     h.styles.Dim.Render,
		"flags":                   h.flagUsages,
		"rpad":                    rpad,
		"trimTrailingWhitespaces": trimTrailingWhitespaces,
	}
}

// flagUsages styles each "  -f, --flag type   description" line of a flag set.
func (h *HelpFormatter) flagUsages(flags *pflag.FlagSet) string {
	usages := strings.TrimSuffix(flags.FlagUsages(), "\n")
	lines := strings.Split(usages, "\n")

	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(trimmed)]

		// Flag and description are separated by a run of 2+ spaces.
		cut := strings.Index(trimmed, "   ")
		if cut < 0 {
			continue
		}
		spec := trimmed[:cut]
		rest := strings.TrimLeft(trimmed[cut:], " ")
		gap := trimmed[cut : len(trimmed)-len(rest)]

		lines[i] = indent + h.styleFlagSpec(spec) + gap + rest
	}
	return strings.Join(lines, "\n")
}

func (h *HelpFormatter) styleFlagSpec(spec string) string {
	tokens := strings.Fields(spec)
	for i, token := range tokens {
		name, comma := strings.CutSuffix(token, ",")
		if strings.HasPrefix(name, "-") {
			name = h.styles.RuleID.Render(name)
		} else {
			name = h.styles.Dim.Render(name)
		}
		if comma {
			name += ","
		}
		tokens[i] = name
	}
	return strings.Join(tokens, " ")
}

// ApplyToCommand installs the styled templates on cmd and its subcommands.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := h.funcs()
	usage := template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	help := template.Must(template.New("help").Funcs(funcs).Parse(helpTemplate))

	cmd.SetUsageFunc(func(c *cobra.Command) error {
		if err := usage.Execute(c.OutOrStderr(), c); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := help.Execute(c.OutOrStdout(), c); err != nil {
			c.PrintErrln(err)
		}
	})
}

func rpad(s string, padding int) string {
	if len(s) >= padding {
		return s
	}
	return s + strings.Repeat(" ", padding-len(s))
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
