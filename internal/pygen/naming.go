package pygen

import (
	"strings"
	"unicode"
)

// pythonKeywords are reserved words that cannot be used as identifiers in
// the emitted source. Colliding names receive a trailing underscore.
var pythonKeywords = map[string]bool{
	"and": true, "as": true, "assert": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "exec": true, "finally": true, "for": true, "from": true,
	"global": true, "if": true, "import": true, "in": true, "is": true,
	"lambda": true, "nonlocal": true, "not": true, "or": true, "pass": true,
	"print": true, "raise": true, "return": true, "to": true, "try": true,
	"while": true, "with": true, "yield": true,
}

// Wrapper-schema markers as they appear in raw BMRS component names. The
// portal publishes the same row type once standalone and once inside each
// generic envelope, so envelope-derived names need a disambiguating suffix.
var wrapperSuffixes = []struct {
	marker string
	suffix string
}{
	{"DatasetResponse-1_", "_DatasetResponse"},
	{"ResponseWithMetadata-1_", "_ResponseWithMetadata"},
	{"Response-1_", "_Response"},
}

// TypeName converts a raw schema name into a valid class name. Namespace
// prefixes are dropped, invalid characters replaced, and names that came
// from a generic wrapper schema get a descriptive suffix so the inner row
// type and the envelope-scoped copy stay distinct.
func TypeName(raw string) string {
	suffix := ""
	for _, w := range wrapperSuffixes {
		if strings.Contains(raw, w.marker) {
			suffix = w.suffix
			break
		}
	}

	name := raw
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	name = replaceInvalid(name)
	name = collapseUnderscores(name)
	if name != "" && name[0] >= '0' && name[0] <= '9' {
		name = "Model_" + name
	}
	name = strings.Trim(name, "_")
	if name == "" {
		return "UnnamedModel"
	}
	return name + suffix
}

// FieldName converts an API field name (camelCase) into a snake_case
// identifier. Idempotent: applying it twice yields the same result.
func FieldName(raw string) string {
	var b strings.Builder
	var prev rune
	for i, r := range raw {
		if unicode.IsUpper(r) && i > 0 && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
		prev = r
	}

	name := strings.ToLower(b.String())
	name = replaceInvalid(name)
	name = collapseUnderscores(name)
	name = strings.Trim(name, "_")
	if name == "" {
		return "field"
	}
	if pythonKeywords[name] {
		name += "_"
	}
	return name
}

// ParamName escapes a parameter name that collides with a reserved word.
// The escaped name is used in signatures and bodies; callers keep the
// original as the wire-format key.
func ParamName(raw string) string {
	if pythonKeywords[strings.ToLower(raw)] {
		return raw + "_"
	}
	return raw
}

// MethodName derives a client method name for an operation. The operation
// id wins when present; otherwise the name is synthesized from the HTTP
// verb and the non-parameter path segments, with fixed version/prefix
// segments stripped.
func MethodName(operationID, verb, path string, stripPrefixes []string) string {
	if operationID != "" {
		name := toSnake(replaceInvalid(operationID))
		name = strings.Trim(collapseUnderscores(name), "_")
		if name != "" {
			return name
		}
	}

	strip := make(map[string]bool, len(stripPrefixes))
	for _, p := range stripPrefixes {
		strip[strings.ToLower(p)] = true
	}

	parts := []string{verbPrefix(verb)}
	for _, seg := range strings.Split(path, "/") {
		if seg == "" || strings.HasPrefix(seg, "{") || strip[strings.ToLower(seg)] {
			continue
		}
		parts = append(parts, replaceInvalid(seg))
	}

	name := toSnake(strings.Join(parts, "_"))
	return strings.Trim(collapseUnderscores(name), "_")
}

func verbPrefix(verb string) string {
	switch strings.ToLower(verb) {
	case "get":
		return "get"
	case "post":
		return "create"
	case "put":
		return "update"
	case "delete":
		return "delete"
	default:
		return strings.ToLower(verb)
	}
}

func toSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func replaceInvalid(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func collapseUnderscores(s string) string {
	var b strings.Builder
	prev := false
	for _, r := range s {
		if r == '_' {
			if prev {
				continue
			}
			prev = true
		} else {
			prev = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
