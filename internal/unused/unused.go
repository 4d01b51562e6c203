// Package unused finds translation leaves that a source tree never mentions.
package unused

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
	"github.com/agentic-research/lingo/internal/document"
	"github.com/gobwas/glob"
	"k8s.io/klog/v2"
)

// Match selects which literal is searched for a leaf.
type Match string

const (
	// MatchValue searches the leaf's string value.
	MatchValue Match = "value"
	// MatchPath searches the leaf's dotted path.
	MatchPath Match = "path"
)

// ParseMatch validates a user supplied match mode.
func ParseMatch(s string) (Match, error) {
	switch Match(s) {
	case MatchValue, "":
		return MatchValue, nil
	case MatchPath:
		return MatchPath, nil
	default:
		return "", fmt.Errorf("unknown match mode %q (want %q or %q)", s, MatchValue, MatchPath)
	}
}

// Searcher reports which needles occur in a source tree.
type Searcher interface {
	Search(root string, needles []string) (*roaring.Bitmap, error)
}

// Detector lists leaves whose literal is absent from the source tree.
type Detector struct {
	searcher Searcher
	match    Match
	keep     []glob.Glob
}

// NewDetector compiles the keep patterns. In a pattern `*` stays inside one
// path segment and `**` crosses segments.
func NewDetector(searcher Searcher, match Match, keep []string) (*Detector, error) {
	d := &Detector{searcher: searcher, match: match}
	for _, pattern := range keep {
		g, err := glob.Compile(pattern, '.')
		if err != nil {
			return nil, fmt.Errorf("keep pattern %q: %w", pattern, err)
		}
		d.keep = append(d.keep, g)
	}
	return d, nil
}

// Find returns the sorted dotted paths of leaves in doc whose literal does
// not occur under root. Leaves matching a keep pattern are never returned.
func (d *Detector) Find(doc document.Value, root string) ([]string, error) {
	leaves, err := document.Leaves(doc)
	if err != nil {
		return nil, err
	}

	var candidates []document.Leaf
	for _, leaf := range leaves {
		if d.kept(leaf.Path) {
			klog.V(2).Infof("keeping %s", leaf.Path)
			continue
		}
		candidates = append(candidates, leaf)
	}

	needles := make([]string, len(candidates))
	for i, leaf := range candidates {
		needles[i] = d.needle(leaf)
	}
	found, err := d.searcher.Search(root, needles)
	if err != nil {
		return nil, err
	}

	unused := []string{}
	for i, leaf := range candidates {
		if !found.Contains(uint32(i)) {
			unused = append(unused, leaf.Path)
		}
	}
	klog.V(1).Infof("%d of %d leaves unused", len(unused), len(leaves))
	return unused, nil
}

func (d *Detector) needle(leaf document.Leaf) string {
	if d.match == MatchPath {
		return leaf.Path
	}
	return leaf.Value
}

func (d *Detector) kept(path string) bool {
	for _, g := range d.keep {
		if g.Match(path) {
			return true
		}
	}
	return false
}
