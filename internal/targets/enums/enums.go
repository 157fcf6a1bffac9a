package enums

import (
	enumtables "github.com/bmrskit/bmrsgen/internal/enums"
	"github.com/bmrskit/bmrsgen/internal/templates"
)

type Target struct{}

func New() *Target {
	return &Target{}
}

func (t *Target) Name() string {
	return "enums"
}

type templateData struct {
	Enums []enumtables.Definition
}

// Generate renders the enum module from the curated value tables. The
// output does not depend on the loaded document: the tables are the
// source of truth for classification fields the document types as bare
// strings.
func (t *Target) Generate(engine templates.Engine) (string, error) {
	return engine.Execute("python/enums.py.tmpl", templateData{Enums: enumtables.Definitions()})
}
