package fetcher

import (
	"fmt"
	"hash/fnv"
)

// fnvHash derives a short, filesystem-safe directory name for a git repo
// URL so distinct repos never collide on disk.
func fnvHash(s string) string {
	h := fnv.New64a()
	h.Write([]byte(s))
	return fmt.Sprintf("%x", h.Sum64())
}
