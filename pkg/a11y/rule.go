package a11y

import (
	"context"

	"github.com/yaklabco/a11ylint/pkg/config"
	"github.com/yaklabco/a11ylint/pkg/htmltree"
)

// Rule defines the interface that all accessibility rules implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "A11Y001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a short description of what the rule checks.
	Description() string

	// Severities returns the severities this rule can emit.
	Severities() []config.Severity

	// Tags returns categorization tags for this rule (e.g., ["images"]).
	Tags() []string

	// Apply executes the rule against the document and returns findings in
	// document order.
	//
	// Rules must not retain or mutate the document, and return an error only
	// for internal failures, never for defects found.
	Apply(ctx *RuleContext) ([]Finding, error)
}

// BaseRule provides a default implementation of the Rule metadata methods.
// Embed this in rule implementations and implement Apply.
type BaseRule struct {
	id         string
	name       string
	desc       string
	tags       []string
	severities []config.Severity
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, tags []string, severities ...config.Severity) BaseRule {
	return BaseRule{
		id:         id,
		name:       name,
		desc:       desc,
		tags:       tags,
		severities: severities,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a short description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// Severities returns the severities this rule can emit.
func (r *BaseRule) Severities() []config.Severity {
	return r.severities
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// Apply must be overridden by concrete rule implementations.
func (r *BaseRule) Apply(_ *RuleContext) ([]Finding, error) {
	return nil, nil
}

// RuleContext provides everything a rule needs to inspect a document.
//
// It is a short-lived parameter object created per rule invocation, so it
// carries the context.Context as a field.
type RuleContext struct {
	// Ctx is the context for cancellation.
	Ctx context.Context

	// Doc is the parsed, read-only document.
	Doc *htmltree.Document

	// Registry provides access to the rule registry for name lookups.
	Registry *Registry
}

// NewRuleContext creates a RuleContext for the given document.
func NewRuleContext(ctx context.Context, doc *htmltree.Document) *RuleContext {
	if ctx == nil {
		ctx = context.Background()
	}
	return &RuleContext{
		Ctx: ctx,
		Doc: doc,
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}
