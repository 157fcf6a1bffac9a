package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmrskit/bmrsgen/internal/model"
)

const minimalSpec = `{
  "openapi": "3.0.0",
  "info": {"title": "Test API", "version": "1.2"},
  "paths": {
    "/demand/outturn": {
      "get": {
        "summary": "Demand outturn",
        "parameters": [
          {"name": "settlementDateFrom", "in": "query", "required": true, "schema": {"type": "string", "format": "date"}},
          {"name": "format", "in": "query", "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {
            "description": "OK",
            "content": {
              "application/json": {
                "schema": {"$ref": "#/components/schemas/DemandRow"}
              }
            }
          }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "DemandRow": {
        "type": "object",
        "required": ["settlementDate"],
        "properties": {
          "settlementDate": {"type": "string", "format": "date"},
          "demand": {"type": "number", "nullable": true, "example": 123.5}
        }
      }
    }
  }
}`

func TestLoadMinimalSpec(t *testing.T) {
	result, err := Load([]byte(minimalSpec), nil)
	require.NoError(t, err)
	assert.Equal(t, "3.0.0", result.Version)
	assert.Empty(t, result.Warnings)
}

func TestLoadUnwrapsSingleElementArray(t *testing.T) {
	wrapped := "[" + minimalSpec + "]"

	result, err := Load([]byte(wrapped), nil)
	require.NoError(t, err)
	assert.Equal(t, "3.0.0", result.Version)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "wrapped")
}

func TestLoadRejectsEmptyArray(t *testing.T) {
	_, err := Load([]byte("[]"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSpecFormat)
}

func TestLoadRejectsMultiElementArray(t *testing.T) {
	_, err := Load([]byte("["+minimalSpec+","+minimalSpec+"]"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSpecFormat)
}

func TestLoadRejectsMissingMarkers(t *testing.T) {
	_, err := Load([]byte(`{"title": "not a spec"}`), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSpecFormat)
}

func TestLoadRejectsNonObject(t *testing.T) {
	_, err := Load([]byte(`"just a string"`), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSpecFormat)
}

func TestTransformMinimalSpec(t *testing.T) {
	result, err := Load([]byte(minimalSpec), nil)
	require.NoError(t, err)

	spec, err := Transform(result)
	require.NoError(t, err)

	assert.Equal(t, "Test API", spec.Info.Title)
	assert.Equal(t, "1.2", spec.Info.Version)

	require.Len(t, spec.Schemas, 1)
	row := spec.Schemas[0]
	assert.Equal(t, "DemandRow", row.Name)
	assert.Equal(t, model.TypeObject, row.Type)
	assert.Equal(t, []string{"settlementDate"}, row.Required)
	require.Len(t, row.Properties, 2)
	assert.Equal(t, "settlementDate", row.Properties[0].Name)
	assert.Equal(t, "date", row.Properties[0].Schema.Format)
	assert.Equal(t, "demand", row.Properties[1].Name)
	assert.True(t, row.Properties[1].Schema.Nullable)

	require.Len(t, spec.Paths, 1)
	require.Len(t, spec.Operations, 1)
	op := spec.Operations[0]
	assert.Equal(t, model.MethodGet, op.Method)
	assert.Equal(t, "/demand/outturn", op.Path)
	require.Len(t, op.Parameters, 2)
	assert.Equal(t, "settlementDateFrom", op.Parameters[0].Name)
	assert.True(t, op.Parameters[0].Required)
	assert.Equal(t, model.LocationQuery, op.Parameters[0].In)
	assert.False(t, op.Parameters[1].Required)

	success := op.SuccessSchema()
	require.NotNil(t, success)
	assert.Equal(t, "#/components/schemas/DemandRow", success.Ref)
}
