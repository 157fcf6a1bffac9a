// Package validate compares a handwritten client module against the
// document's endpoint inventory. The matching is heuristic by design:
// it looks for name overlap, not exact equality, because handwritten
// method names rarely match synthesized ones verbatim.
package validate

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/bmrskit/bmrsgen/internal/model"
)

// Endpoint is one operation from the document, keyed for reporting.
type Endpoint struct {
	OperationID string
	Path        string
	Method      string
	Summary     string
}

// EndpointsFromSpec lists every operation in document order. Operations
// without an id get a synthetic method_path key so each stays reportable.
func EndpointsFromSpec(spec *model.Spec) []Endpoint {
	var endpoints []Endpoint
	for _, path := range spec.Paths {
		for _, op := range path.Operations {
			id := op.ID
			if id == "" {
				id = fmt.Sprintf("%s_%s", strings.ToLower(string(op.Method)), op.Path)
			}
			endpoints = append(endpoints, Endpoint{
				OperationID: id,
				Path:        op.Path,
				Method:      strings.ToLower(string(op.Method)),
				Summary:     op.Summary,
			})
		}
	}
	return endpoints
}

var defRe = regexp.MustCompile(`^\s*def\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(`)

// Method is one public def found in a client module.
type Method struct {
	Name         string
	HasDocstring bool
}

// ExtractMethods scans Python source for public method definitions and
// records whether each carries a docstring. Underscore-prefixed names
// are internal plumbing and excluded. Docstring detection is a line
// heuristic: the first non-blank line after the signature's closing
// colon must open a triple-quoted string.
func ExtractMethods(r io.Reader) ([]Method, error) {
	var methods []Method
	pending := -1
	inSignature := false

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		if m := defRe.FindStringSubmatch(line); m != nil {
			if strings.HasPrefix(m[1], "_") {
				pending = -1
				inSignature = false
				continue
			}
			methods = append(methods, Method{Name: m[1]})
			pending = len(methods) - 1
			inSignature = !signatureEnds(line)
			continue
		}

		if pending < 0 {
			continue
		}
		if inSignature {
			inSignature = !signatureEnds(line)
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		methods[pending].HasDocstring = strings.HasPrefix(trimmed, `"""`) ||
			strings.HasPrefix(trimmed, "'''")
		pending = -1
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning client source: %w", err)
	}
	return methods, nil
}

func signatureEnds(line string) bool {
	return strings.HasSuffix(strings.TrimSpace(line), ":")
}

// ExtractMethodNames scans Python source for public method names only.
func ExtractMethodNames(r io.Reader) ([]string, error) {
	methods, err := ExtractMethods(r)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(methods))
	for _, m := range methods {
		names = append(names, m.Name)
	}
	return names, nil
}

// Undocumented lists the names of methods without docstrings.
func Undocumented(methods []Method) []string {
	var names []string
	for _, m := range methods {
		if !m.HasDocstring {
			names = append(names, m.Name)
		}
	}
	return names
}

// MissingEndpoints returns the endpoints no client method appears to
// cover. An endpoint counts as covered when any of its path segments, or
// a verb_segment combination, occurs as a substring of a method name.
func MissingEndpoints(endpoints []Endpoint, methods []string) []Endpoint {
	lowered := make([]string, len(methods))
	for i, m := range methods {
		lowered[i] = strings.ToLower(m)
	}

	var missing []Endpoint
	for _, e := range endpoints {
		var patterns []string
		for _, seg := range strings.Split(e.Path, "/") {
			if seg == "" || strings.HasPrefix(seg, "{") {
				continue
			}
			patterns = append(patterns, strings.ToLower(e.Method+"_"+seg), strings.ToLower(seg))
		}

		found := false
	scan:
		for _, m := range lowered {
			for _, p := range patterns {
				if strings.Contains(m, p) {
					found = true
					break scan
				}
			}
		}
		if !found {
			missing = append(missing, e)
		}
	}
	return missing
}

// Diff compares two method-name sets and returns the names exclusive to
// each side, sorted.
func Diff(existing, generated []string) (onlyExisting, onlyGenerated []string) {
	existingSet := toSet(existing)
	generatedSet := toSet(generated)

	for name := range existingSet {
		if !generatedSet[name] {
			onlyExisting = append(onlyExisting, name)
		}
	}
	for name := range generatedSet {
		if !existingSet[name] {
			onlyGenerated = append(onlyGenerated, name)
		}
	}
	sort.Strings(onlyExisting)
	sort.Strings(onlyGenerated)
	return onlyExisting, onlyGenerated
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// Report holds one validation run's findings.
type Report struct {
	SpecEndpoints int
	ClientMethods int
	Missing       []Endpoint
	Undocumented  []string
	OnlyExisting  []string
	OnlyGenerated []string
}

// Render formats the report. Long listings are capped at previewLimit
// entries with a trailing count of the remainder.
func (r *Report) Render(previewLimit int) string {
	if previewLimit <= 0 {
		previewLimit = 10
	}

	var b strings.Builder
	rule := strings.Repeat("=", 70)
	thin := strings.Repeat("-", 70)

	fmt.Fprintf(&b, "%s\nBMRS Client Validation Report\n%s\n\n", rule, rule)
	fmt.Fprintf(&b, "Summary:\n  - Spec endpoints: %d\n  - Client methods: %d\n\n", r.SpecEndpoints, r.ClientMethods)

	if len(r.Missing) > 0 {
		fmt.Fprintf(&b, "Missing Endpoints (%d):\n%s\n", len(r.Missing), thin)
		for i, e := range r.Missing {
			if i >= previewLimit {
				fmt.Fprintf(&b, "  ... and %d more\n", len(r.Missing)-previewLimit)
				break
			}
			fmt.Fprintf(&b, "  %-6s %s\n", strings.ToUpper(e.Method), e.Path)
			if e.Summary != "" {
				fmt.Fprintf(&b, "    Summary: %s\n", e.Summary)
			}
			fmt.Fprintf(&b, "    Operation ID: %s\n", e.OperationID)
		}
		b.WriteString("\n")
	} else {
		b.WriteString("No missing endpoints detected\n\n")
	}

	if len(r.Undocumented) > 0 {
		fmt.Fprintf(&b, "Methods Without Docstrings (%d):\n%s\n", len(r.Undocumented), thin)
		for i, name := range r.Undocumented {
			if i >= previewLimit {
				fmt.Fprintf(&b, "  ... and %d more\n", len(r.Undocumented)-previewLimit)
				break
			}
			fmt.Fprintf(&b, "  %s\n", name)
		}
		b.WriteString("\n")
	} else {
		b.WriteString("All methods have docstrings\n\n")
	}

	writePreview := func(title string, names []string) {
		if len(names) == 0 {
			return
		}
		fmt.Fprintf(&b, "%s (%d):\n%s\n", title, len(names), thin)
		for i, name := range names {
			if i >= previewLimit {
				fmt.Fprintf(&b, "  ... and %d more\n", len(names)-previewLimit)
				break
			}
			fmt.Fprintf(&b, "  %s\n", name)
		}
		b.WriteString("\n")
	}
	writePreview("Methods only in existing client", r.OnlyExisting)
	writePreview("Methods only in generated client", r.OnlyGenerated)

	b.WriteString(rule + "\n")
	return b.String()
}
