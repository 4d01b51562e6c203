package batch

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/agentic-research/lingo/internal/document"
	"github.com/agentic-research/lingo/internal/report"
	"github.com/agentic-research/lingo/internal/store"
	"k8s.io/klog/v2"
)

// Mutation edits one loaded document in place.
type Mutation func(path string, doc document.Value) error

// Policy controls what happens to a file whose mutation fails.
type Policy struct {
	// SaveOnError writes the state the mutation reached before failing.
	SaveOnError bool
	// Tolerate marks errors that are logged as warnings instead of failing
	// the file. It is applied to each error of a joined error.
	Tolerate func(error) bool
}

// TolerateMissing treats a path that is already gone as a warning.
func TolerateMissing(err error) bool {
	return errors.Is(err, document.ErrPathNotFound)
}

// FileError ties a failure to the file it happened in.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Result lists the files an Apply call touched.
type Result struct {
	Changed   []string
	Unchanged []string
	Failed    []string
}

// Runner loads, mutates and saves files one at a time. Files are
// independent: a failure in one never stops or undoes the others.
type Runner struct {
	Store  *store.Store
	Out    io.Writer
	DryRun bool
	Format report.PatchFormat
}

// Apply runs mutate on every file in order. The returned error joins one
// FileError per failed file.
func (r *Runner) Apply(files []string, policy Policy, mutate Mutation) (Result, error) {
	var (
		res  Result
		errs []error
	)
	for _, path := range files {
		changed, err := r.applyOne(path, policy, mutate)
		if err != nil {
			errs = append(errs, &FileError{Path: path, Err: err})
			res.Failed = append(res.Failed, path)
		}
		switch {
		case changed:
			res.Changed = append(res.Changed, path)
		case err == nil:
			res.Unchanged = append(res.Unchanged, path)
		}
	}
	return res, errors.Join(errs...)
}

func (r *Runner) applyOne(path string, policy Policy, mutate Mutation) (bool, error) {
	before, err := r.Store.Read(path)
	if err != nil {
		return false, err
	}
	doc, err := store.Decode(before)
	if err != nil {
		return false, err
	}

	mutErr := tolerate(mutate(path, doc), policy.Tolerate, path)
	if mutErr != nil && !policy.SaveOnError {
		return false, mutErr
	}

	after, err := store.Encode(doc)
	if err != nil {
		return false, errors.Join(mutErr, err)
	}
	if bytes.Equal(before, after) {
		klog.V(1).Infof("%s unchanged", path)
		return false, mutErr
	}
	if r.DryRun {
		if err := report.WritePatch(r.Out, path, before, after, r.Format); err != nil {
			return false, errors.Join(mutErr, err)
		}
		return true, mutErr
	}
	if err := r.Store.Write(path, after); err != nil {
		return false, errors.Join(mutErr, err)
	}
	return true, mutErr
}

// tolerate logs and drops the errors accept admits, descending into joined
// errors.
func tolerate(err error, accept func(error) bool, path string) error {
	if err == nil || accept == nil {
		return err
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var kept []error
		for _, e := range joined.Unwrap() {
			if e = tolerate(e, accept, path); e != nil {
				kept = append(kept, e)
			}
		}
		return errors.Join(kept...)
	}
	if accept(err) {
		klog.Warningf("%s: %v", path, err)
		return nil
	}
	return err
}
