// Package scan searches a source tree for literal byte strings.
package scan

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/RoaringBitmap/roaring"
	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const (
	gitDir        = ".git"
	commentPrefix = "#"
)

// sniffLen is how much of a file is inspected for NUL bytes.
const sniffLen = 8000

// ignoreFiles are read in every directory, in this order.
var ignoreFiles = []string{".gitignore", ".ignore"}

var errDone = errors.New("all needles found")

// Options tune which files a Scanner reads.
type Options struct {
	// Hidden includes files and directories whose name starts with a dot.
	// The .git directory is skipped regardless.
	Hidden bool
	// NoIgnore disables .gitignore, .ignore and .git/info/exclude handling.
	NoIgnore bool
}

// Scanner walks a tree once per search and reports which needles occur.
type Scanner struct {
	fs   billy.Filesystem
	opts Options
}

func New(fs billy.Filesystem, opts Options) *Scanner {
	return &Scanner{fs: fs, opts: opts}
}

// Search returns the indices of needles that occur verbatim in at least one
// scanned file below root. The walk stops as soon as every needle is found.
// Binary files and files that cannot be read are skipped.
func (s *Scanner) Search(root string, needles []string) (*roaring.Bitmap, error) {
	found := roaring.New()
	if len(needles) == 0 {
		return found, nil
	}
	patterns := make([][]byte, len(needles))
	for i, n := range needles {
		patterns[i] = []byte(n)
	}

	var ignore []gitignore.Pattern
	if !s.opts.NoIgnore {
		ignore = s.readPatterns(filepath.Join(root, gitDir, "info", "exclude"), nil)
	}

	err := util.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			klog.V(2).Infof("skipping %s: %v", path, err)
			return nil
		}
		rel := relSegments(root, path)
		if len(rel) > 0 {
			if skip := s.skip(rel, info, ignore); skip {
				if info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if info.IsDir() {
			if !s.opts.NoIgnore {
				for _, name := range ignoreFiles {
					ignore = append(ignore, s.readPatterns(filepath.Join(path, name), rel)...)
				}
			}
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		data, err := util.ReadFile(s.fs, path)
		if err != nil {
			klog.V(2).Infof("skipping unreadable %s: %v", path, err)
			return nil
		}
		if isBinary(data) {
			return nil
		}
		s.match(data, patterns, found)
		if found.GetCardinality() == uint64(len(patterns)) {
			return errDone
		}
		return nil
	})
	if err != nil && err != errDone {
		return nil, errors.Wrapf(err, "scanning %s", root)
	}
	return found, nil
}

func (s *Scanner) skip(rel []string, info os.FileInfo, ignore []gitignore.Pattern) bool {
	name := rel[len(rel)-1]
	if info.IsDir() && name == gitDir {
		return true
	}
	if !s.opts.Hidden && strings.HasPrefix(name, ".") {
		return true
	}
	if len(ignore) > 0 && gitignore.NewMatcher(ignore).Match(rel, info.IsDir()) {
		klog.V(3).Infof("ignored %s", strings.Join(rel, "/"))
		return true
	}
	return false
}

func (s *Scanner) match(data []byte, patterns [][]byte, found *roaring.Bitmap) {
	for i, p := range patterns {
		if found.Contains(uint32(i)) {
			continue
		}
		if bytes.Contains(data, p) {
			found.Add(uint32(i))
		}
	}
}

// readPatterns parses one ignore file. A missing file yields no patterns.
func (s *Scanner) readPatterns(path string, domain []string) []gitignore.Pattern {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var ps []gitignore.Pattern
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, commentPrefix) || strings.TrimSpace(line) == "" {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(line, domain))
	}
	if err := sc.Err(); err != nil {
		klog.Warningf("reading %s: %v", path, err)
	}
	return ps
}

func relSegments(root, path string) []string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return nil
	}
	return strings.Split(filepath.ToSlash(rel), "/")
}

func isBinary(data []byte) bool {
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}
