package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bmrskit/bmrsgen/internal/pygen"
)

func TestFieldLine(t *testing.T) {
	tests := []struct {
		name  string
		field pygen.FieldSpec
		want  string
	}{
		{
			name:  "required bare",
			field: pygen.FieldSpec{PyName: "dataset", Type: "str", Required: true},
			want:  "dataset: str",
		},
		{
			name:  "optional bare",
			field: pygen.FieldSpec{PyName: "demand", Type: "Optional[float]"},
			want:  "demand: Optional[float] = None",
		},
		{
			name: "optional with alias",
			field: pygen.FieldSpec{
				PyName: "publish_time",
				Type:   "Optional[datetime]",
				Alias:  "publishTime",
			},
			want: `publish_time: Optional[datetime] = Field(default=None, alias="publishTime")`,
		},
		{
			name: "required with alias and description",
			field: pygen.FieldSpec{
				PyName:      "settlement_period",
				Type:        "int",
				Required:    true,
				Alias:       "settlementPeriod",
				Description: "Settlement period 1-50",
			},
			want: `settlement_period: int = Field(alias="settlementPeriod", description="Settlement period 1-50")`,
		},
		{
			name: "string example quoted",
			field: pygen.FieldSpec{
				PyName:  "fuel_type",
				Type:    "Optional[str]",
				Example: "CCGT",
			},
			want: `fuel_type: Optional[str] = Field(default=None, examples=["CCGT"])`,
		},
		{
			name: "numeric example unquoted",
			field: pygen.FieldSpec{
				PyName:  "quantity",
				Type:    "Optional[float]",
				Example: 123.5,
			},
			want: `quantity: Optional[float] = Field(default=None, examples=[123.5])`,
		},
		{
			name: "forced requiredness marker",
			field: pygen.FieldSpec{
				PyName:   "start_time",
				Type:     "datetime",
				Required: true,
				Forced:   true,
			},
			want: "start_time: datetime  # required per observed API behaviour",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fieldLine(tt.field))
		})
	}
}

func TestFieldLineStripsNewlinesFromDescription(t *testing.T) {
	got := fieldLine(pygen.FieldSpec{
		PyName:      "notes",
		Type:        "Optional[str]",
		Description: "line one\nline two",
	})
	assert.Equal(t, `notes: Optional[str] = Field(default=None, description="line one line two")`, got)
}
