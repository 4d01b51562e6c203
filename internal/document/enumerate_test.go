package document

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaths(t *testing.T) {
	doc := mustParse(t, `{
		"zeta": "z",
		"alpha": {"b": "1", "a": {"deep": "2"}},
		"empty": {},
		"mid": {"only_empty": {}}
	}`)

	paths, err := Paths(doc)
	require.NoError(t, err)

	want := []string{"alpha.a.deep", "alpha.b", "zeta"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("Paths() mismatch (-want +got):\n%s", diff)
	}
}

func TestPaths_EmptyDocument(t *testing.T) {
	paths, err := Paths(NewObject())
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestPaths_UnexpectedValueType(t *testing.T) {
	tests := map[string]string{
		"number":  `{"a":{"b":1}}`,
		"boolean": `{"a":{"b":true}}`,
		"null":    `{"a":{"b":null}}`,
		"array":   `{"a":{"b":["x"]}}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Paths(mustParse(t, doc))
			require.ErrorIs(t, err, ErrUnexpectedValueType)
			var pe *PathError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, "a.b", pe.Path)
		})
	}
}

func TestLeaves_RootMustBeObject(t *testing.T) {
	for _, root := range []Value{String("x"), Array{String("x")}, Number("1"), Bool(true), Null{}} {
		_, err := Leaves(root)
		require.ErrorIs(t, err, ErrExpectedObject, root.Kind())
		var pe *PathError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, root.Kind(), pe.Kind)

		_, err = Paths(root)
		require.ErrorIs(t, err, ErrExpectedObject)
	}
}

func TestLeaves_SortedUniqueAndRecoverable(t *testing.T) {
	docs := []string{
		`{}`,
		`{"k":"v"}`,
		`{"b":{"y":"1","x":"2"},"a":"3","c":{"d":{"e":"4"}}}`,
		`{"nav":{"home":"Home","about":"About"},"footer":{"legal":{"terms":"Terms","privacy":"Privacy"}}}`,
	}
	for _, s := range docs {
		doc := mustParse(t, s)
		leaves, err := Leaves(doc)
		require.NoError(t, err)

		paths := make([]string, len(leaves))
		for i, l := range leaves {
			paths[i] = l.Path
		}
		assert.True(t, sort.StringsAreSorted(paths), s)

		seen := map[string]bool{}
		rebuilt := NewObject()
		for _, l := range leaves {
			assert.False(t, seen[l.Path], "duplicate %q", l.Path)
			seen[l.Path] = true

			got, ok := Get(doc, l.Segments)
			require.True(t, ok, l.Path)
			assert.Equal(t, String(l.Value), got)

			segments, key := Split(l.Path)
			require.NoError(t, Insert(rebuilt, segments, key, l.Value))
		}
		assert.Equal(t, doc, rebuilt, s)
	}
}

func TestLeaves_DottedKeysCollapseToOnePath(t *testing.T) {
	doc := mustParse(t, `{"a.b":"flat","a":{"b":"nested"}}`)
	leaves, err := Leaves(doc)
	require.NoError(t, err)
	require.Len(t, leaves, 1)
	assert.Equal(t, "a.b", leaves[0].Path)
}
