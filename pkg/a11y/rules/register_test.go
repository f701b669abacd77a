package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/a11ylint/pkg/a11y"
)

func TestRegisterAll_Order(t *testing.T) {
	reg := a11y.NewRegistry()
	RegisterAll(reg)

	assert.Equal(t, []string{"A11Y001", "A11Y002", "A11Y003", "A11Y004", "A11Y005", "A11Y006"}, reg.IDs())
}

func TestDefaultRegistry_HasBuiltins(t *testing.T) {
	assert.Equal(t, 6, a11y.DefaultRegistry.Len())

	rule, ok := a11y.DefaultRegistry.Get("heading-increment")
	assert.True(t, ok)
	assert.Equal(t, "A11Y003", rule.ID())
}
