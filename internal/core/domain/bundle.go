package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// File permissions for bundle artifacts.
const (
	// DirPerm is the permission used for created directories.
	DirPerm = 0o755
	// FilePerm is the permission used for created files.
	FilePerm = 0o644
)

// DefaultRetention is how long a bundle archive stays on disk before the
// deferred cleanup removes it, whether or not it was ever retrieved.
const DefaultRetention = 2 * time.Minute

// BundleExt is the archive extension for bundle artifacts.
const BundleExt = ".zip"

// Bundle is a compressed archive artifact produced for one download request.
// Expiry is implicit: CreatedAt plus the retention window in force when the
// bundle was assembled.
type Bundle struct {
	// Name is the archive filename, unique per (request, collection, timestamp).
	Name string
	// Path is the filesystem location of the archive.
	Path string
	// CreatedAt is when the archive was finalized.
	CreatedAt time.Time
	// ExpiresAt is when the deferred cleanup will remove the archive.
	ExpiresAt time.Time
}

// BundleFile is one entry to be written into a bundle archive, named by the
// original filename of the release file it was downloaded from.
type BundleFile struct {
	Name string
	Data []byte
}

// BundleFilename derives the archive filename for a collection at a point in
// time: a path-safe slug of the collection name plus a millisecond timestamp.
// The timestamp keeps concurrent requests for the same collection from
// colliding.
func BundleFilename(collectionName string, now time.Time) string {
	return fmt.Sprintf("%s-%d%s", bundleSlug(collectionName), now.UnixMilli(), BundleExt)
}

// bundleSlug maps an arbitrary collection name onto a filesystem-safe token.
// When sanitization alters the name, a short hash of the original is appended
// so distinct names that sanitize identically stay distinct on disk.
func bundleSlug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")

	if slug == name {
		return slug
	}
	hash := xxhash.Sum64String(name)
	if slug == "" {
		return fmt.Sprintf("%08x", hash&0xffffffff)
	}
	return fmt.Sprintf("%s-%08x", slug, hash&0xffffffff)
}
