// Package store loads and saves documents through a billy filesystem.
package store

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/agentic-research/lingo/internal/document"
	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const (
	filePerm   = 0o644
	tempPrefix = ".lingo-write-"
)

// Store reads and writes JSON documents.
type Store struct {
	fs billy.Filesystem
}

func New(fs billy.Filesystem) *Store {
	return &Store{fs: fs}
}

// ListFiles returns the regular files directly inside dir, ordered by name.
func (s *Store) ListFiles(dir string) ([]string, error) {
	infos, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", dir)
	}
	var files []string
	for _, fi := range infos {
		if !fi.Mode().IsRegular() {
			continue
		}
		files = append(files, filepath.Join(dir, fi.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Read returns the raw bytes of path.
func (s *Store) Read(path string) ([]byte, error) {
	data, err := util.ReadFile(s.fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return data, nil
}

// Load reads and parses the document at path.
func (s *Store) Load(path string) (document.Value, error) {
	data, err := s.Read(path)
	if err != nil {
		return nil, err
	}
	v, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return v, nil
}

// LoadRaw reads and parses path into the generic map/slice form.
func (s *Store) LoadRaw(path string) (any, error) {
	data, err := s.Read(path)
	if err != nil {
		return nil, err
	}
	raw, err := DecodeRaw(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return raw, nil
}

// LoadUpdates reads a flat object of string values.
func (s *Store) LoadUpdates(path string) (map[string]string, error) {
	v, err := s.Load(path)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(document.Object)
	if !ok {
		return nil, errors.Errorf("updates file %s: expected an object, found %s", path, v.Kind())
	}
	updates := make(map[string]string, len(obj))
	for k, child := range obj {
		str, ok := child.(document.String)
		if !ok {
			return nil, errors.Errorf("updates file %s: value of '%s' is %s, expected string", path, k, child.Kind())
		}
		updates[k] = string(str)
	}
	return updates, nil
}

// Save writes v to path in canonical form, replacing the whole file.
func (s *Store) Save(path string, v document.Value) error {
	data, err := Encode(v)
	if err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return s.Write(path, data)
}

// Write replaces the content of path atomically: data goes to a temp file in
// the same directory which is then renamed over path. An existing file keeps
// its mode.
func (s *Store) Write(path string, data []byte) error {
	perm := os.FileMode(filePerm)
	if fi, err := s.fs.Stat(path); err == nil {
		perm = fi.Mode().Perm()
	}

	tmp, err := s.fs.TempFile(filepath.Dir(path), tempPrefix)
	if err != nil {
		return errors.Wrapf(err, "creating temp file for %s", path)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return errors.Wrapf(err, "writing %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return errors.Wrapf(err, "closing %s", tmpName)
	}
	if ch, ok := s.fs.(billy.Change); ok {
		_ = ch.Chmod(tmpName, perm)
	}
	if err := s.fs.Rename(tmpName, path); err != nil {
		_ = s.fs.Remove(tmpName)
		return errors.Wrapf(err, "renaming temp file to %s", path)
	}

	klog.V(2).Infof("wrote %s (%d bytes)", path, len(data))
	return nil
}
