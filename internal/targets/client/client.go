package client

import (
	"fmt"
	"strings"

	"github.com/bmrskit/bmrsgen/internal/pygen"
	"github.com/bmrskit/bmrsgen/internal/templates"
)

type Target struct{}

func New() *Target {
	return &Target{}
}

func (t *Target) Name() string {
	return "client"
}

type templateData struct {
	Package string
	Methods []methodView
}

type paramView struct {
	Key    string
	PyName string
}

type methodView struct {
	Name            string
	SignatureParams []string
	Summary         string
	Description     string
	ShowDescription bool
	ArgsDoc         []string
	QueryRequired   []paramView
	QueryOptional   []paramView
	Verb            string
	Path            string
	ReturnHint      string
	Coerce          string
	Model           string
}

func (t *Target) Generate(engine templates.Engine, plan *pygen.Plan, pkg string) (string, error) {
	data := templateData{Package: pkg}
	for _, m := range plan.Methods {
		data.Methods = append(data.Methods, buildMethodView(m))
	}
	return engine.Execute("python/client.py.tmpl", data)
}

func buildMethodView(m pygen.MethodDefinition) methodView {
	view := methodView{
		Name:        m.Name,
		Summary:     sanitizeText(m.Summary),
		Description: sanitizeText(m.Description),
		Verb:        strings.ToUpper(m.Verb),
		Path:        m.Path,
	}
	view.ShowDescription = view.Description != "" && view.Description != view.Summary

	for _, p := range m.PathParams {
		view.SignatureParams = append(view.SignatureParams, fmt.Sprintf("%s: %s", p.PyName, p.Type))
		view.ArgsDoc = append(view.ArgsDoc, argDoc(p))
	}
	for _, p := range m.QueryParams {
		if p.Required {
			view.SignatureParams = append(view.SignatureParams, fmt.Sprintf("%s: %s", p.PyName, p.Type))
			view.QueryRequired = append(view.QueryRequired, paramView{Key: p.Name, PyName: p.PyName})
		} else {
			view.SignatureParams = append(view.SignatureParams, fmt.Sprintf("%s: Optional[%s] = None", p.PyName, p.Type))
			view.QueryOptional = append(view.QueryOptional, paramView{Key: p.Name, PyName: p.PyName})
		}
		view.ArgsDoc = append(view.ArgsDoc, argDoc(p))
	}

	switch m.ResponseKind {
	case pygen.ResponseModel:
		view.ReturnHint = m.ResponseModel
		view.Coerce = "model"
		view.Model = m.ResponseModel
	case pygen.ResponseModelList:
		view.ReturnHint = "List[" + m.ResponseModel + "]"
		view.Coerce = "list"
		view.Model = m.ResponseModel
	case pygen.ResponseEnvelope:
		view.ReturnHint = m.ResponseModel
		view.Coerce = "envelope"
		view.Model = m.ResponseModel
	default:
		view.ReturnHint = pygen.AnyDictType
	}

	return view
}

func argDoc(p pygen.ParameterSpec) string {
	doc := fmt.Sprintf("%s: %s", p.PyName, sanitizeText(p.Description))
	if !p.Required {
		doc += ", optional"
	}
	return doc
}

func sanitizeText(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", "")
	return strings.TrimSpace(s)
}
