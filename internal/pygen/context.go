package pygen

import "fmt"

// GenerationContext holds the run-scoped name-collision state shared by
// the model and method generators. It is an explicit object passed into
// every generator, never a package-level singleton, and must be reset at
// the start of each run. Single-writer: never accessed concurrently.
type GenerationContext struct {
	claimedTypes   map[string]bool
	typeCounters   map[string]int
	claimedMethods map[string]bool
}

func NewGenerationContext() *GenerationContext {
	ctx := &GenerationContext{}
	ctx.Reset()
	return ctx
}

// Reset clears all claimed names. Required between runs for cross-run
// determinism.
func (c *GenerationContext) Reset() {
	c.claimedTypes = make(map[string]bool)
	c.typeCounters = make(map[string]int)
	c.claimedMethods = make(map[string]bool)
}

// ClaimTypeName registers a sanitized type name and returns the final
// unique form. The first claimant keeps the bare name; later duplicates
// receive a numeric suffix (_2, _3, ...) in first-seen order.
func (c *GenerationContext) ClaimTypeName(base string) string {
	if !c.claimedTypes[base] {
		c.claimedTypes[base] = true
		return base
	}

	n := c.typeCounters[base]
	if n < 2 {
		n = 2
	}
	name := fmt.Sprintf("%s_%d", base, n)
	for c.claimedTypes[name] {
		n++
		name = fmt.Sprintf("%s_%d", base, n)
	}
	c.typeCounters[base] = n + 1
	c.claimedTypes[name] = true
	return name
}

// HasTypeName reports whether a type name has been claimed this run.
func (c *GenerationContext) HasTypeName(name string) bool {
	return c.claimedTypes[name]
}

// ClaimMethodName registers a method name. Returns false when the name
// was already emitted this run; the first occurrence wins and duplicates
// are skipped rather than renamed.
func (c *GenerationContext) ClaimMethodName(name string) bool {
	if c.claimedMethods[name] {
		return false
	}
	c.claimedMethods[name] = true
	return true
}
