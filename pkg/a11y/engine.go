package a11y

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/a11ylint/internal/logging"
	"github.com/yaklabco/a11ylint/pkg/htmltree"
)

// ErrAnalysisFailed is returned when the markup could not be turned into a tree.
// No partial report accompanies it.
var ErrAnalysisFailed = errors.New("analysis failed")

// Parser turns markup source into a document tree.
type Parser interface {
	Parse(ctx context.Context, source string) (*htmltree.Document, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(ctx context.Context, source string) (*htmltree.Document, error)

// Parse calls f(ctx, source).
func (f ParserFunc) Parse(ctx context.Context, source string) (*htmltree.Document, error) {
	return f(ctx, source)
}

// DefaultParser parses with htmltree's lenient HTML5 parser.
//
//nolint:gochecknoglobals // Stateless adapter.
var DefaultParser Parser = ParserFunc(htmltree.Parse)

// Engine coordinates parsing and rule execution.
//
// An Engine holds no per-run state; Analyze may be called concurrently.
type Engine struct {
	// Parser builds the document tree.
	Parser Parser

	// Registry holds the rules to run, in order.
	Registry *Registry
}

// NewEngine creates a new Engine with the given parser and registry.
func NewEngine(parser Parser, registry *Registry) *Engine {
	if parser == nil {
		parser = DefaultParser
	}
	if registry == nil {
		registry = DefaultRegistry
	}
	return &Engine{
		Parser:   parser,
		Registry: registry,
	}
}

// Analyze parses source and runs every registered rule against it.
//
// A rule that fails is logged and recorded in Report.RuleErrors; the other
// rules still run. Only a parse failure or cancellation fails the call.
func (e *Engine) Analyze(ctx context.Context, source string) (*Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	doc, err := e.Parser.Parse(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	var findings []Finding
	var ruleErrors map[string]error

	for _, rule := range e.Registry.Rules() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("analysis cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, doc)
		ruleCtx.Registry = e.Registry

		found, err := applyRule(rule, ruleCtx)
		if err != nil {
			logger.Warn("rule failed",
				logging.FieldRule, rule.ID(),
				logging.FieldError, err,
			)
			if ruleErrors == nil {
				ruleErrors = make(map[string]error)
			}
			ruleErrors[rule.ID()] = err
			continue
		}

		for i := range found {
			if found[i].RuleID == "" {
				found[i].RuleID = rule.ID()
			}
			if found[i].RuleName == "" {
				found[i].RuleName = rule.Name()
			}
		}

		findings = append(findings, found...)
	}

	report := NewReport(findings)
	report.RuleErrors = ruleErrors

	logger.Debug("analysis complete",
		logging.FieldFindingsTotal, report.Total(),
		logging.FieldErrors, report.Errors,
		logging.FieldWarnings, report.Warnings,
		logging.FieldInfo, report.Info,
	)

	return report, nil
}

// applyRule runs one rule, converting a panic into an error.
func applyRule(rule Rule, ctx *RuleContext) (found []Finding, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			found = nil
			err = fmt.Errorf("rule %s panicked: %v", rule.ID(), recovered)
		}
	}()

	return rule.Apply(ctx)
}

// Analyze runs the default engine (built-in rules, lenient HTML parser).
// The built-in rules register themselves when pkg/a11y/rules is imported.
func Analyze(ctx context.Context, source string) (*Report, error) {
	return NewEngine(DefaultParser, DefaultRegistry).Analyze(ctx, source)
}
