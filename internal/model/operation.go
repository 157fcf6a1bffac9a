package model

type Operation struct {
	ID          string
	Method      Method
	Path        string
	Summary     string
	Description string
	Tags        []string
	Parameters  []Parameter
	Responses   []Response
	Deprecated  bool
}

type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

type ParameterLocation string

const (
	LocationPath   ParameterLocation = "path"
	LocationQuery  ParameterLocation = "query"
	LocationHeader ParameterLocation = "header"
)

type Parameter struct {
	Name        string
	In          ParameterLocation
	Description string
	Required    bool
	Schema      *Schema
}

type Response struct {
	StatusCode  string
	Description string
	Content     []MediaTypeContent
}

type MediaTypeContent struct {
	MediaType string
	Schema    *Schema
}

// SuccessSchema returns the schema of the first 2xx application/json
// response, or nil when the operation declares none.
func (o *Operation) SuccessSchema() *Schema {
	for _, resp := range o.Responses {
		if len(resp.StatusCode) == 0 || resp.StatusCode[0] != '2' {
			continue
		}
		for _, content := range resp.Content {
			if content.MediaType == "application/json" && content.Schema != nil {
				return content.Schema
			}
		}
	}
	return nil
}
