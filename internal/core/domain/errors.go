package domain

import "go.trai.ch/zerr"

var (
	// ErrVersionEmpty is returned when a version label is the empty string.
	ErrVersionEmpty = zerr.New("version label is empty")

	// ErrVersionNoMajor is returned when a version label contains no digits at all.
	ErrVersionNoMajor = zerr.New("version label has no major component")

	// ErrVersionOverflow is returned when a version component exceeds the unsigned 32-bit range.
	ErrVersionOverflow = zerr.New("version component overflows uint32")

	// ErrNotFound is returned when the catalog reports that a collection or project does not exist.
	ErrNotFound = zerr.New("not found in catalog")

	// ErrCatalogRequestFailed is returned when a catalog request fails for any reason other than not-found.
	ErrCatalogRequestFailed = zerr.New("catalog request failed")

	// ErrCatalogDecodeFailed is returned when a catalog response body cannot be decoded.
	ErrCatalogDecodeFailed = zerr.New("failed to decode catalog response")

	// ErrReleaseNoFiles is returned when a chosen release has no downloadable files.
	// The release was already selected as best, so there is no recovery path
	// short of re-selecting, which the resolver does not do.
	ErrReleaseNoFiles = zerr.New("release has no files")

	// ErrProjectNotIndexed is returned when a project key has no entry in the catalog index.
	ErrProjectNotIndexed = zerr.New("project key not present in catalog index")

	// ErrVersionNotAvailable is returned when a bundle is requested for a game
	// version that no project in the collection declares support for.
	ErrVersionNotAvailable = zerr.New("no project in the collection supports this game version")

	// ErrBundleCreateFailed is returned when the bundle archive cannot be created on disk.
	ErrBundleCreateFailed = zerr.New("failed to create bundle archive")

	// ErrBundleWriteFailed is returned when writing an entry to the bundle archive fails.
	ErrBundleWriteFailed = zerr.New("failed to write bundle entry")

	// ErrBundleCloseFailed is returned when finalizing the bundle archive fails.
	ErrBundleCloseFailed = zerr.New("failed to close bundle archive")

	// ErrDownloadFailed is returned when a resolved file cannot be downloaded.
	ErrDownloadFailed = zerr.New("failed to download file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)
