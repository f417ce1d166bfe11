package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ID
	}{
		{"string", `"p1"`, "p1"},
		{"integer", `42`, "42"},
		{"large integer", `9007199254740993`, "9007199254740993"},
		{"null", `null`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tt.in), &id))
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestID_UnmarshalJSONRejectsOtherTypes(t *testing.T) {
	for _, in := range []string{`true`, `{"id":1}`, `[1]`} {
		var id ID
		assert.Error(t, json.Unmarshal([]byte(in), &id), in)
	}
}

func TestTimesheet_NumericIDs(t *testing.T) {
	var ts Timesheet
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"userId":3,"projectId":"p1","hours":8}`), &ts))

	assert.Equal(t, ID("7"), ts.ID)
	assert.Equal(t, ID("3"), ts.UserID)
	assert.Equal(t, ID("p1"), ts.ProjectID)
	assert.Equal(t, "7", ts.Key())
}

func TestIDs_RoundTrip(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, Strings(IDs([]string{"1", "2"})))
	assert.Empty(t, Strings(nil))
}
