package document

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var diffFixtures = []string{
	`{}`,
	`{"key":"value"}`,
	`{"foo":{"bar":"value","baz":"value"}}`,
	`{"foo":{"bar":"other_value"},"extra":"x"}`,
	`{"a":{"b":"x","c":"y"}}`,
	`{"a":{"b":"x"}}`,
	`{"a":{"b":{}}}`,
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		target    string
		want      Diff
	}{
		{
			name:      "two empty documents",
			reference: `{}`,
			target:    `{}`,
			want:      Diff{MissingInTarget: []string{}, MissingInReference: []string{}},
		},
		{
			name:      "values are ignored",
			reference: `{"foo":{"bar":"value","baz":"value"}}`,
			target:    `{"foo":{"bar":"other_value","baz":"yet_another_value"}}`,
			want:      Diff{MissingInTarget: []string{}, MissingInReference: []string{}},
		},
		{
			name:      "missing in target",
			reference: `{"key":"value"}`,
			target:    `{}`,
			want:      Diff{MissingInTarget: []string{"key"}, MissingInReference: []string{}},
		},
		{
			name:      "missing in reference",
			reference: `{}`,
			target:    `{"key":"value"}`,
			want:      Diff{MissingInTarget: []string{}, MissingInReference: []string{"key"}},
		},
		{
			name:      "nested",
			reference: `{"a":{"b":"x","c":"y"}}`,
			target:    `{"a":{"b":"x"}}`,
			want:      Diff{MissingInTarget: []string{"a.c"}, MissingInReference: []string{}},
		},
		{
			name:      "both sides",
			reference: `{"a":{"z":"1","b":"2"},"c":"3"}`,
			target:    `{"a":{"b":"2","y":"4"},"d":{"e":"5"}}`,
			want:      Diff{MissingInTarget: []string{"a.z", "c"}, MissingInReference: []string{"a.y", "d.e"}},
		},
		{
			name:      "empty object is invisible",
			reference: `{"a":{}}`,
			target:    `{}`,
			want:      Diff{MissingInTarget: []string{}, MissingInReference: []string{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(mustParse(t, tt.reference), mustParse(t, tt.target))
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compare() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(tt.want.MissingInTarget)+len(tt.want.MissingInReference) == 0, got.Empty())
		})
	}
}

func TestCompare_Reflexive(t *testing.T) {
	for _, s := range diffFixtures {
		doc := mustParse(t, s)
		d, err := Compare(doc, doc)
		require.NoError(t, err)
		assert.True(t, d.Empty(), s)
	}
}

func TestCompare_SymmetricUnderSwap(t *testing.T) {
	for _, a := range diffFixtures {
		for _, b := range diffFixtures {
			ab, err := Compare(mustParse(t, a), mustParse(t, b))
			require.NoError(t, err)
			ba, err := Compare(mustParse(t, b), mustParse(t, a))
			require.NoError(t, err)

			assert.Equal(t, ab.MissingInTarget, ba.MissingInReference, "%s vs %s", a, b)
			assert.Equal(t, ab.MissingInReference, ba.MissingInTarget, "%s vs %s", a, b)
		}
	}
}

func TestCompare_RejectsNonStringLeaves(t *testing.T) {
	_, err := Compare(mustParse(t, `{"a":1}`), mustParse(t, `{}`))
	require.ErrorIs(t, err, ErrUnexpectedValueType)
	assert.Contains(t, err.Error(), "reference")

	_, err = Compare(mustParse(t, `{}`), mustParse(t, `{"a":[]}`))
	require.ErrorIs(t, err, ErrUnexpectedValueType)
	assert.Contains(t, err.Error(), "target")
}
