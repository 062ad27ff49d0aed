package domain

import (
	"fmt"
	"strconv"

	"go.trai.ch/zerr"
)

// GameVersion is the canonical (major, minor, patch) triple extracted from a
// raw upstream version label. Two labels that normalize to the same triple
// refer to the same release target.
type GameVersion struct {
	Major uint32
	Minor uint32
	Patch uint32
}

// ParseGameVersion extracts a GameVersion from an arbitrary upstream label.
//
// Upstream labels have no enforced schema ("2.1.0+1.20.1", "quilt--2.4.21",
// "v8.1.20--Fabric"), so parsing is tolerant: a maximal run of leading
// non-digit characters is skipped, up to three dot-separated digit runs are
// read, and everything after them is discarded without validation. Missing
// minor or patch components default to zero.
func ParseGameVersion(raw string) (GameVersion, error) {
	if raw == "" {
		return GameVersion{}, ErrVersionEmpty
	}

	i := 0
	for i < len(raw) && !isDigit(raw[i]) {
		i++
	}
	if i == len(raw) {
		return GameVersion{}, parseError(ErrVersionNoMajor, raw)
	}

	major, rest, err := readComponent(raw[i:])
	if err != nil {
		return GameVersion{}, parseError(err, raw)
	}

	var minor, patch uint32
	if len(rest) > 0 && rest[0] == '.' {
		minor, rest, err = readComponent(rest[1:])
		if err != nil {
			return GameVersion{}, parseError(err, raw)
		}
		if len(rest) > 0 && rest[0] == '.' {
			patch, _, err = readComponent(rest[1:])
			if err != nil {
				return GameVersion{}, parseError(err, raw)
			}
		}
	}

	return GameVersion{Major: major, Minor: minor, Patch: patch}, nil
}

// parseError wraps cause so it stays reachable through errors.Is. Attaching
// metadata to a sentinel directly would return a detached copy of it.
func parseError(cause error, raw string) error {
	return zerr.With(zerr.Wrap(cause, "failed to parse game version"), "label", raw)
}

// readComponent reads a maximal digit run from the front of s. An empty run
// yields zero, matching the "everything after is suffix" rule.
func readComponent(s string) (uint32, string, error) {
	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0, s, nil
	}

	n, err := strconv.ParseUint(s[:end], 10, 32)
	if err != nil {
		return 0, "", ErrVersionOverflow
	}
	return uint32(n), s[end:], nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Compare orders versions by major, then minor, then patch.
// It returns -1, 0 or 1.
func (v GameVersion) Compare(other GameVersion) int {
	switch {
	case v.Major != other.Major:
		return cmpUint32(v.Major, other.Major)
	case v.Minor != other.Minor:
		return cmpUint32(v.Minor, other.Minor)
	default:
		return cmpUint32(v.Patch, other.Patch)
	}
}

func cmpUint32(a, b uint32) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// String renders the canonical "major.minor.patch" form.
func (v GameVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// MarshalText implements encoding.TextMarshaler so versions can key JSON maps.
func (v GameVersion) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses the textual form with the same tolerant rules as
// ParseGameVersion.
func (v *GameVersion) UnmarshalText(text []byte) error {
	parsed, err := ParseGameVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
