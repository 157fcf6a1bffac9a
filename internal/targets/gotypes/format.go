package gotypes

import (
	"golang.org/x/tools/imports"
)

// Format runs goimports over generated source so the emitted file is
// gofmt-clean and carries exactly the imports it uses.
func Format(src []byte) ([]byte, error) {
	return imports.Process("", src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: false,
	})
}
