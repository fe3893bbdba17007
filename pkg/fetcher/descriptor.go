package fetcher

import "fmt"

// SourceKind discriminates the three Descriptor variants (spec §4.1).
type SourceKind int

const (
	SourcePath SourceKind = iota
	SourceURL
	SourceGit
)

// Descriptor is a source to fetch: a local path, an HTTP(S) URL, or a git
// repository plus a subpath within it.
type Descriptor struct {
	Kind SourceKind

	Path string // SourcePath

	URL string // SourceURL

	GitRepo    string // SourceGit
	GitSubpath string // SourceGit: file or directory within the clone
}

// NewPath builds a local-path descriptor.
func NewPath(path string) Descriptor { return Descriptor{Kind: SourcePath, Path: path} }

// NewURL builds an HTTP(S)-URL descriptor.
func NewURL(url string) Descriptor { return Descriptor{Kind: SourceURL, URL: url} }

// NewGit builds a git-repo descriptor naming a single file at subpath.
func NewGit(repo, subpath string) Descriptor {
	return Descriptor{Kind: SourceGit, GitRepo: repo, GitSubpath: subpath}
}

func (d Descriptor) String() string {
	switch d.Kind {
	case SourcePath:
		return d.Path
	case SourceURL:
		return d.URL
	case SourceGit:
		return fmt.Sprintf("%s@%s", d.GitRepo, d.GitSubpath)
	default:
		return "<unknown descriptor>"
	}
}
