package unused

import (
	"errors"
	"testing"

	"github.com/RoaringBitmap/roaring"
	"github.com/agentic-research/lingo/internal/document"
	"github.com/agentic-research/lingo/internal/scan"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSearcher treats needles present in its set as found.
type fakeSearcher struct {
	present map[string]bool
	asked   []string
	err     error
}

func (f *fakeSearcher) Search(_ string, needles []string) (*roaring.Bitmap, error) {
	f.asked = needles
	if f.err != nil {
		return nil, f.err
	}
	bm := roaring.New()
	for i, n := range needles {
		if f.present[n] {
			bm.Add(uint32(i))
		}
	}
	return bm, nil
}

func doc() document.Value {
	return document.Object{
		"greeting": document.Object{
			"hello": document.String("Hello"),
			"bye":   document.String("Goodbye"),
		},
		"menu": document.Object{
			"file": document.Object{"open": document.String("Open")},
			"edit": document.String("Edit"),
		},
	}
}

func TestFind_MatchValue(t *testing.T) {
	s := &fakeSearcher{present: map[string]bool{"Hello": true, "Open": true}}
	d, err := NewDetector(s, MatchValue, nil)
	require.NoError(t, err)

	got, err := d.Find(doc(), "src")
	require.NoError(t, err)
	assert.Equal(t, []string{"greeting.bye", "menu.edit"}, got)
	assert.Equal(t, []string{"Goodbye", "Hello", "Edit", "Open"}, s.asked)
}

func TestFind_MatchPath(t *testing.T) {
	s := &fakeSearcher{present: map[string]bool{"greeting.bye": true, "menu.edit": true, "menu.file.open": true}}
	d, err := NewDetector(s, MatchPath, nil)
	require.NoError(t, err)

	got, err := d.Find(doc(), "src")
	require.NoError(t, err)
	assert.Equal(t, []string{"greeting.hello"}, got)
}

func TestFind_KeepPatterns(t *testing.T) {
	s := &fakeSearcher{}
	d, err := NewDetector(s, MatchPath, []string{"menu.*", "greeting.hello"})
	require.NoError(t, err)

	got, err := d.Find(doc(), "src")
	require.NoError(t, err)
	// menu.* does not cross into menu.file.open
	assert.Equal(t, []string{"greeting.bye", "menu.file.open"}, got)

	d, err = NewDetector(s, MatchPath, []string{"menu.**"})
	require.NoError(t, err)
	got, err = d.Find(doc(), "src")
	require.NoError(t, err)
	assert.Equal(t, []string{"greeting.bye", "greeting.hello"}, got)
}

func TestFind_NothingUnused(t *testing.T) {
	s := &fakeSearcher{present: map[string]bool{"Hello": true, "Goodbye": true, "Open": true, "Edit": true}}
	d, err := NewDetector(s, MatchValue, nil)
	require.NoError(t, err)

	got, err := d.Find(doc(), "src")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFind_Errors(t *testing.T) {
	_, err := NewDetector(&fakeSearcher{}, MatchValue, []string{"[unclosed"})
	require.Error(t, err)

	d, err := NewDetector(&fakeSearcher{err: errors.New("boom")}, MatchValue, nil)
	require.NoError(t, err)
	_, err = d.Find(doc(), "src")
	require.EqualError(t, err, "boom")

	_, err = d.Find(document.Object{"n": document.Number("1")}, "src")
	require.ErrorIs(t, err, document.ErrUnexpectedValueType)
}

func TestFind_WithScanner(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "src/main.go", []byte(`fmt.Println(T("Hello"), T("Open"))`), 0o644))
	require.NoError(t, util.WriteFile(fs, "src/.gitignore", []byte("gen/\n"), 0o644))
	require.NoError(t, util.WriteFile(fs, "src/gen/out.go", []byte(`"Edit"`), 0o644))

	d, err := NewDetector(scan.New(fs, scan.Options{}), MatchValue, nil)
	require.NoError(t, err)
	got, err := d.Find(doc(), "src")
	require.NoError(t, err)
	assert.Equal(t, []string{"greeting.bye", "menu.edit"}, got)
}

func TestParseMatch(t *testing.T) {
	m, err := ParseMatch("")
	require.NoError(t, err)
	assert.Equal(t, MatchValue, m)
	m, err = ParseMatch("path")
	require.NoError(t, err)
	assert.Equal(t, MatchPath, m)
	_, err = ParseMatch("key")
	require.Error(t, err)
}
