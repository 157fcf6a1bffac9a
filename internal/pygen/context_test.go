package pygen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaimTypeName(t *testing.T) {
	ctx := NewGenerationContext()

	assert.Equal(t, "DemandOutturn", ctx.ClaimTypeName("DemandOutturn"))
	assert.Equal(t, "DemandOutturn_2", ctx.ClaimTypeName("DemandOutturn"))
	assert.Equal(t, "DemandOutturn_3", ctx.ClaimTypeName("DemandOutturn"))
	assert.True(t, ctx.HasTypeName("DemandOutturn"))
	assert.True(t, ctx.HasTypeName("DemandOutturn_2"))
	assert.False(t, ctx.HasTypeName("DemandOutturn_4"))
}

func TestClaimTypeNameSkipsTakenSuffixes(t *testing.T) {
	ctx := NewGenerationContext()

	// A schema literally named Widget_2 takes the suffix slot first; the
	// colliding Widget claims must step over it.
	assert.Equal(t, "Widget_2", ctx.ClaimTypeName("Widget_2"))
	assert.Equal(t, "Widget", ctx.ClaimTypeName("Widget"))
	assert.Equal(t, "Widget_3", ctx.ClaimTypeName("Widget"))
}

func TestClaimMethodNameFirstWins(t *testing.T) {
	ctx := NewGenerationContext()

	assert.True(t, ctx.ClaimMethodName("get_demand"))
	assert.False(t, ctx.ClaimMethodName("get_demand"))
	assert.True(t, ctx.ClaimMethodName("get_generation"))
}

func TestResetClearsAllState(t *testing.T) {
	ctx := NewGenerationContext()
	ctx.ClaimTypeName("Widget")
	ctx.ClaimTypeName("Widget")
	ctx.ClaimMethodName("get_widget")

	ctx.Reset()

	assert.False(t, ctx.HasTypeName("Widget"))
	assert.Equal(t, "Widget", ctx.ClaimTypeName("Widget"))
	assert.Equal(t, "Widget_2", ctx.ClaimTypeName("Widget"))
	assert.True(t, ctx.ClaimMethodName("get_widget"))
}
