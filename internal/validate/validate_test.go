package validate

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmrskit/bmrsgen/internal/model"
)

const clientSource = `
class BMRSClient:
    """Handwritten client."""

    def _make_request(self, method, path, params=None):
        pass

    def get_demand_outturn(self, settlement_date):
        """Fetch demand outturn rows."""
        pass

    def get_system_frequency(self):
        pass

    def get_generation_actual(
        self,
        settlement_date,
        settlement_period,
    ):
        '''Fetch actual generation.'''
        pass
`

func TestExtractMethodNames(t *testing.T) {
	names, err := ExtractMethodNames(strings.NewReader(clientSource))
	require.NoError(t, err)

	want := []string{"get_demand_outturn", "get_system_frequency", "get_generation_actual"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("method names mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractMethodsDocstrings(t *testing.T) {
	methods, err := ExtractMethods(strings.NewReader(clientSource))
	require.NoError(t, err)

	want := []Method{
		{Name: "get_demand_outturn", HasDocstring: true},
		{Name: "get_system_frequency", HasDocstring: false},
		// Multi-line signature: the docstring check runs after the
		// closing colon, not on the argument lines.
		{Name: "get_generation_actual", HasDocstring: true},
	}
	if diff := cmp.Diff(want, methods); diff != "" {
		t.Errorf("methods mismatch (-want +got):\n%s", diff)
	}
}

func TestUndocumented(t *testing.T) {
	methods := []Method{
		{Name: "get_a", HasDocstring: true},
		{Name: "get_b", HasDocstring: false},
		{Name: "get_c", HasDocstring: false},
	}
	assert.Equal(t, []string{"get_b", "get_c"}, Undocumented(methods))
	assert.Empty(t, Undocumented([]Method{{Name: "get_a", HasDocstring: true}}))
}

func TestEndpointsFromSpec(t *testing.T) {
	spec := &model.Spec{
		Paths: []model.Path{
			{
				Path: "/demand/outturn",
				Operations: []model.Operation{
					{ID: "getDemandOutturn", Method: model.MethodGet, Path: "/demand/outturn", Summary: "Demand outturn"},
				},
			},
			{
				Path: "/system/frequency",
				Operations: []model.Operation{
					{Method: model.MethodGet, Path: "/system/frequency"},
				},
			},
		},
	}

	endpoints := EndpointsFromSpec(spec)
	require.Len(t, endpoints, 2)
	assert.Equal(t, "getDemandOutturn", endpoints[0].OperationID)
	assert.Equal(t, "get", endpoints[0].Method)
	// Missing operation ids get a synthetic key.
	assert.Equal(t, "get_/system/frequency", endpoints[1].OperationID)
}

func TestMissingEndpoints(t *testing.T) {
	endpoints := []Endpoint{
		{OperationID: "a", Path: "/demand/outturn", Method: "get"},
		{OperationID: "b", Path: "/balancing/acceptances", Method: "get"},
		{OperationID: "c", Path: "/system/frequency", Method: "get"},
	}
	methods := []string{"get_demand_outturn", "get_system_frequency"}

	missing := MissingEndpoints(endpoints, methods)
	require.Len(t, missing, 1)
	assert.Equal(t, "/balancing/acceptances", missing[0].Path)
}

func TestMissingEndpointsIgnoresPathParams(t *testing.T) {
	endpoints := []Endpoint{
		{OperationID: "a", Path: "/demand/{settlementDate}", Method: "get"},
	}

	assert.Empty(t, MissingEndpoints(endpoints, []string{"get_demand"}))
	assert.Len(t, MissingEndpoints(endpoints, []string{"get_generation"}), 1)
}

func TestDiff(t *testing.T) {
	onlyExisting, onlyGenerated := Diff(
		[]string{"get_a", "get_b", "get_shared"},
		[]string{"get_shared", "get_c"},
	)

	if diff := cmp.Diff([]string{"get_a", "get_b"}, onlyExisting); diff != "" {
		t.Errorf("onlyExisting mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"get_c"}, onlyGenerated); diff != "" {
		t.Errorf("onlyGenerated mismatch (-want +got):\n%s", diff)
	}
}

func TestReportRenderPreviewCap(t *testing.T) {
	report := &Report{
		SpecEndpoints: 20,
		ClientMethods: 5,
	}
	for i := 0; i < 15; i++ {
		report.Missing = append(report.Missing, Endpoint{
			OperationID: "op",
			Path:        "/path",
			Method:      "get",
		})
	}

	out := report.Render(10)
	assert.Contains(t, out, "Missing Endpoints (15):")
	assert.Contains(t, out, "... and 5 more")
	assert.Contains(t, out, "Spec endpoints: 20")
	assert.Contains(t, out, "Client methods: 5")
	// The preview never renders more entries than the cap.
	assert.Equal(t, 10, strings.Count(out, "Operation ID: op"))
}

func TestReportRenderUndocumented(t *testing.T) {
	report := &Report{SpecEndpoints: 5, ClientMethods: 5}
	for i := 0; i < 12; i++ {
		report.Undocumented = append(report.Undocumented, "get_something")
	}

	out := report.Render(10)
	assert.Contains(t, out, "Methods Without Docstrings (12):")
	assert.Contains(t, out, "... and 2 more")
	assert.Equal(t, 10, strings.Count(out, "get_something"))
}

func TestReportRenderClean(t *testing.T) {
	report := &Report{SpecEndpoints: 3, ClientMethods: 3}
	out := report.Render(10)
	assert.Contains(t, out, "No missing endpoints detected")
	assert.Contains(t, out, "All methods have docstrings")
	assert.NotContains(t, out, "Missing Endpoints")
	assert.NotContains(t, out, "Methods Without Docstrings")
}
