package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi/datamodel"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
)

// ErrSpecFormat marks documents that are not recognizable OpenAPI input:
// an empty or multi-element wrapper array, or a document carrying neither
// an "openapi" nor a "swagger" top-level marker. It is fatal to the run.
var ErrSpecFormat = errors.New("unrecognized OpenAPI document")

type Result struct {
	Document *libopenapi.DocumentModel[v3.Document]
	Version  string
	Warnings []string
	RawData  []byte
}

func LoadFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	config := &datamodel.DocumentConfiguration{
		BasePath:            filepath.Dir(absPath),
		AllowFileReferences: true,
	}

	return Load(data, config)
}

func Load(data []byte, config *datamodel.DocumentConfiguration) (*Result, error) {
	unwrapped, note, err := unwrap(data)
	if err != nil {
		return nil, err
	}

	if err := checkMarkers(unwrapped); err != nil {
		return nil, err
	}

	var doc libopenapi.Document
	if config != nil {
		doc, err = libopenapi.NewDocumentWithConfiguration(unwrapped, config)
	} else {
		doc, err = libopenapi.NewDocument(unwrapped)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing OpenAPI document: %w", err)
	}

	version := doc.GetVersion()
	if !strings.HasPrefix(version, "3.") {
		return nil, fmt.Errorf("unsupported OpenAPI version: %s (only 3.x supported)", version)
	}

	model, err := doc.BuildV3Model()
	if err != nil {
		return nil, fmt.Errorf("building OpenAPI model: %w", err)
	}

	result := &Result{
		Document: model,
		Version:  version,
		RawData:  unwrapped,
	}
	if note != "" {
		result.Warnings = append(result.Warnings, note)
	}
	return result, nil
}

// unwrap handles documents delivered as a single-element JSON array, which
// is how the BMRS portal serves its schema. Anything other than exactly one
// element is a format error.
func unwrap(data []byte) ([]byte, string, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return data, "", nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, "", fmt.Errorf("%w: invalid JSON array wrapper: %v", ErrSpecFormat, err)
	}
	switch len(elems) {
	case 0:
		return nil, "", fmt.Errorf("%w: document is an empty array", ErrSpecFormat)
	case 1:
		return elems[0], "document was wrapped in a single-element array; extracted first element", nil
	default:
		return nil, "", fmt.Errorf("%w: wrapper array has %d elements, expected 1", ErrSpecFormat, len(elems))
	}
}

func checkMarkers(data []byte) error {
	var markers struct {
		OpenAPI string `json:"openapi"`
		Swagger string `json:"swagger"`
	}
	if err := json.Unmarshal(data, &markers); err != nil {
		return fmt.Errorf("%w: not a JSON object: %v", ErrSpecFormat, err)
	}
	if markers.OpenAPI == "" && markers.Swagger == "" {
		return fmt.Errorf("%w: missing both openapi and swagger markers", ErrSpecFormat)
	}
	return nil
}
