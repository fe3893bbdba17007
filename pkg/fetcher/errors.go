// Package fetcher implements the Fetcher & Cache component (spec §4.1):
// turning a source descriptor (local path, HTTP(S) URL, or git repo +
// subpath) into bytes, with in-process fetch/clone dedup and a per-user
// cache root for cloned git trees.
package fetcher

import "fmt"

// SourceNotFoundError wraps an I/O or HTTP failure while fetching a
// descriptor.
type SourceNotFoundError struct {
	Descriptor string
	Cause      error
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source not found: %s: %v", e.Descriptor, e.Cause)
}
func (e *SourceNotFoundError) Unwrap() error { return e.Cause }

// GitCloneError wraps a failed git clone.
type GitCloneError struct {
	Repo    string
	Message string
}

func (e *GitCloneError) Error() string {
	return fmt.Sprintf("git clone %s: %s", e.Repo, e.Message)
}

// CacheDirNotCreatedError is raised when the cache root cannot be created.
type CacheDirNotCreatedError struct {
	Cause error
}

func (e *CacheDirNotCreatedError) Error() string {
	return fmt.Sprintf("cache directory could not be created: %v", e.Cause)
}
func (e *CacheDirNotCreatedError) Unwrap() error { return e.Cause }

// HomeDirNotFoundError is raised when the per-user config home cannot be
// determined and WEAVER_CACHE_DIR is not set.
type HomeDirNotFoundError struct {
	Cause error
}

func (e *HomeDirNotFoundError) Error() string {
	return fmt.Sprintf("could not determine user config directory: %v", e.Cause)
}
func (e *HomeDirNotFoundError) Unwrap() error { return e.Cause }

// InvalidURLError is raised when a descriptor's URL cannot be parsed.
type InvalidURLError struct {
	URL   string
	Cause error
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid url %q: %v", e.URL, e.Cause)
}
func (e *InvalidURLError) Unwrap() error { return e.Cause }

// GitRepoNotCreatedError is raised when GitRepo's clone directory cannot
// be created or cloned into.
type GitRepoNotCreatedError struct {
	Repo  string
	Cause error
}

func (e *GitRepoNotCreatedError) Error() string {
	return fmt.Sprintf("git repo %q could not be created: %v", e.Repo, e.Cause)
}
func (e *GitRepoNotCreatedError) Unwrap() error { return e.Cause }
