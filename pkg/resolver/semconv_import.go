package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/sourcegraph/conc/pool"

	"github.com/f5/otel-weaver-sub000/pkg/constants"
	"github.com/f5/otel-weaver-sub000/pkg/fetcher"
	"github.com/f5/otel-weaver-sub000/pkg/schema"
	"github.com/f5/otel-weaver-sub000/pkg/semconv"
)

var importLog = log.Child("semconv-import")

// fileDescriptors expands one semconv import into the descriptors to
// fetch: a URL import is a single file; a git import enqueues every
// semconv-looking file directly inside its subpath directory (spec §4.4
// step 2). Subdirectories of the subpath are not descended into.
func fileDescriptors(f *fetcher.Fetcher, imp schema.Import) ([]fetcher.Descriptor, error) {
	if !imp.IsGit() {
		return []fetcher.Descriptor{fetcher.NewURL(imp.URL)}, nil
	}

	repoDir, err := f.GitRepo(imp.GitURL, imp.Path)
	if err != nil {
		return nil, err
	}
	scanRoot := filepath.Join(repoDir, imp.Path)

	entries, err := os.ReadDir(scanRoot)
	if err != nil {
		return nil, &fetcher.SourceNotFoundError{Descriptor: scanRoot, Cause: err}
	}
	var out []fetcher.Descriptor
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !semconv.IsSemanticConventionFile(e.Name(), constants.SchemaNextFileName) {
			continue
		}
		out = append(out, fetcher.NewGit(imp.GitURL, filepath.Join(imp.Path, e.Name())))
	}
	return out, nil
}

// loadSemConvSpecs fetches and parses every import's file(s) concurrently
// on a pool bounded to the number of CPU cores (spec §4.4.1's concrete
// binding on sourcegraph/conc/pool), then returns every successfully
// parsed spec plus an aggregated error for anything that failed — the
// pool keeps draining even after a failure, matching spec §7's "the
// driver aggregates per-file errors ... continuing to drain the worker
// pool."
func loadSemConvSpecs(f *fetcher.Fetcher, imports []schema.Import) ([]*semconv.Spec, error) {
	var descriptors []fetcher.Descriptor
	for _, imp := range imports {
		ds, err := fileDescriptors(f, imp)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, ds...)
	}

	var loaded, errored atomic.Int64
	p := pool.NewWithResults[*specOrError]().WithMaxGoroutines(runtime.NumCPU())
	for _, d := range descriptors {
		d := d
		p.Go(func() *specOrError {
			data, err := f.Fetch(d)
			if err != nil {
				errored.Add(1)
				return &specOrError{err: &SemConvError{Message: fmt.Sprintf("%s: %v", d.String(), err)}}
			}
			spec, err := semconv.DecodeSpec(data, d.String())
			if err != nil {
				errored.Add(1)
				return &specOrError{err: &SemConvError{Message: fmt.Sprintf("%s: %v", d.String(), err)}}
			}
			loaded.Add(1)
			return &specOrError{spec: spec}
		})
	}
	results := p.Wait()

	var specs []*semconv.Spec
	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		specs = append(specs, r.spec)
	}
	importLog.Printf("semconv import: %d loaded, %d errored, %d total files", loaded.Load(), errored.Load(), len(descriptors))
	return specs, NewAggregateError(errs)
}

type specOrError struct {
	spec *semconv.Spec
	err  error
}
