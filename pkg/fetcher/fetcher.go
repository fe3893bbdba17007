package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-git/go-git/v5"

	"github.com/f5/otel-weaver-sub000/pkg/constants"
	"github.com/f5/otel-weaver-sub000/pkg/logger"
)

var log = logger.New("fetcher")
var cacheLog = logger.New("fetcher:cache")

// Fetcher turns source descriptors into bytes, deduplicating fetches and
// git clones within one process (spec §4.1, §5).
type Fetcher struct {
	cacheRoot  string
	httpClient *http.Client

	mu      sync.Mutex
	cloned  map[string]string // git repo -> local clone dir
	fetched map[string][]byte // descriptor string -> bytes, in-process dedup
}

// New creates a Fetcher rooted at cacheRoot, creating the directory if it
// does not exist (spec §4.1: "created on first use").
func New(cacheRoot string) (*Fetcher, error) {
	if err := os.MkdirAll(cacheRoot, 0o755); err != nil {
		return nil, &CacheDirNotCreatedError{Cause: err}
	}
	return &Fetcher{
		cacheRoot:  cacheRoot,
		httpClient: &http.Client{Timeout: constants.FetchTimeout * time.Second},
		cloned:     map[string]string{},
		fetched:    map[string][]byte{},
	}, nil
}

// DefaultCacheRoot resolves the per-user cache directory (spec §4.1,
// §6): WEAVER_CACHE_DIR if set, else <user-config-home>/.weaver/cache.
func DefaultCacheRoot() (string, error) {
	if v := os.Getenv(constants.CacheDirEnvVar); v != "" {
		return v, nil
	}
	home, err := os.UserConfigDir()
	if err != nil {
		return "", &HomeDirNotFoundError{Cause: err}
	}
	return filepath.Join(home, constants.CacheDirName), nil
}

// Fetch returns descriptor's bytes verbatim.
func (f *Fetcher) Fetch(d Descriptor) ([]byte, error) {
	key := d.String()

	f.mu.Lock()
	if cached, ok := f.fetched[key]; ok {
		f.mu.Unlock()
		cacheLog.Printf("hit %s", key)
		return cached, nil
	}
	f.mu.Unlock()

	var (
		data []byte
		err  error
	)
	switch d.Kind {
	case SourcePath:
		data, err = f.fetchPath(d.Path)
	case SourceURL:
		data, err = f.fetchURL(d.URL)
	case SourceGit:
		data, err = f.fetchGitFile(d.GitRepo, d.GitSubpath)
	default:
		return nil, &SourceNotFoundError{Descriptor: key, Cause: nil}
	}
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.fetched[key] = data
	f.mu.Unlock()
	cacheLog.Printf("miss %s (%d bytes)", key, len(data))
	return data, nil
}

func (f *Fetcher) fetchPath(path string) ([]byte, error) {
	log.Printf("fetch path %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SourceNotFoundError{Descriptor: path, Cause: err}
	}
	return data, nil
}

func (f *Fetcher) fetchURL(url string) ([]byte, error) {
	log.Printf("fetch url %s", url)
	resp, err := f.httpClient.Get(url)
	if err != nil {
		return nil, &SourceNotFoundError{Descriptor: url, Cause: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, &SourceNotFoundError{Descriptor: url, Cause: &httpStatusError{Status: resp.StatusCode}}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SourceNotFoundError{Descriptor: url, Cause: err}
	}
	return data, nil
}

func (f *Fetcher) fetchGitFile(repo, subpath string) ([]byte, error) {
	dir, err := f.GitRepo(repo, "")
	if err != nil {
		return nil, err
	}
	full := filepath.Join(dir, subpath)
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, &SourceNotFoundError{Descriptor: full, Cause: err}
	}
	return data, nil
}

// GitRepo clones repo into a cache subdirectory the first time it is
// requested in this process, and returns the same directory on every
// later call (spec §4.1: "idempotent"). subpath is not used to select
// the clone directory; callers join it onto the returned directory
// themselves (it is the scan root for semconv discovery).
func (f *Fetcher) GitRepo(repo, subpath string) (string, error) {
	f.mu.Lock()
	if dir, ok := f.cloned[repo]; ok {
		f.mu.Unlock()
		cacheLog.Printf("clone hit %s", repo)
		return dir, nil
	}
	f.mu.Unlock()

	dir := filepath.Join(f.cacheRoot, cloneDirName(repo))
	if _, err := os.Stat(dir); err == nil {
		f.mu.Lock()
		f.cloned[repo] = dir
		f.mu.Unlock()
		return dir, nil
	}

	log.Printf("git clone %s -> %s", repo, dir)
	_, err := git.PlainClone(dir, false, &git.CloneOptions{URL: repo, Depth: 1})
	if err != nil {
		return "", &GitRepoNotCreatedError{Repo: repo, Cause: err}
	}

	f.mu.Lock()
	f.cloned[repo] = dir
	f.mu.Unlock()
	return dir, nil
}

func cloneDirName(repo string) string {
	return fnvHash(repo)
}

type httpStatusError struct {
	Status int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("http status %d", e.Status)
}
