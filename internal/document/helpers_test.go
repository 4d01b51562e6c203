package document

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Value {
	t.Helper()
	var raw any
	require.NoError(t, json.Unmarshal([]byte(s), &raw))
	v, err := FromAny(raw)
	require.NoError(t, err)
	return v
}

func assertJSON(t *testing.T, want string, got Value) {
	t.Helper()
	expected := mustParse(t, want)
	if diff := cmp.Diff(expected, got); diff != "" {
		gotJSON, _ := json.Marshal(ToAny(got))
		t.Fatalf("document mismatch (-want +got):\n%s\ngot: %s", diff, gotJSON)
	}
}
