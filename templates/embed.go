// Package templates embeds the built-in output templates. Custom
// templates with the same relative path override these at runtime.
package templates

import "embed"

//go:embed python go
var FS embed.FS
