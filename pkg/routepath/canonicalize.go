package routepath

import (
	"errors"
	"strings"
)

// Result is a canonicalized navigation target.
type Result struct {
	// Path is the canonical path with a leading slash, without query.
	Path string

	// Query is the query string without the leading "?".
	Query string

	// Changed reports whether the path differs from the input.
	Changed bool
}

// String rebuilds the target with its query string.
func (r Result) String() string {
	if r.Query == "" {
		return r.Path
	}
	return r.Path + "?" + r.Query
}

// Canonicalization errors.
var (
	ErrInvalidPath          = errors.New("invalid path")
	ErrBackslashInPath      = errors.New("path contains backslash")
	ErrNullByteInPath       = errors.New("path contains null byte")
	ErrInvalidPercentEscape = errors.New("invalid percent escape sequence")
	ErrPathEscapesRoot      = errors.New("path escapes root via ..")
)

// Canonicalize normalizes a navigation target.
//
// Repeated slashes collapse, "." segments are removed, ".." segments are
// resolved and a trailing slash is dropped (except for "/"). Backslashes,
// NUL bytes, malformed percent escapes and ".." above the root are
// rejected. A query string is split off and kept verbatim.
func Canonicalize(input string) (Result, error) {
	if input == "" {
		return Result{Path: "/", Changed: true}, nil
	}

	path, query, _ := strings.Cut(input, "?")

	if strings.Contains(path, `\`) {
		return Result{}, ErrBackslashInPath
	}
	if strings.Contains(path, "\x00") || strings.Contains(strings.ToUpper(path), "%00") {
		return Result{}, ErrNullByteInPath
	}
	if err := validatePercentEscapes(path); err != nil {
		return Result{}, err
	}

	var out []string
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(out) == 0 {
				return Result{}, ErrPathEscapesRoot
			}
			out = out[:len(out)-1]
		default:
			out = append(out, seg)
		}
	}

	canonical := "/" + strings.Join(out, "/")
	return Result{
		Path:    canonical,
		Query:   query,
		Changed: canonical != path,
	}, nil
}

// ValidateTarget canonicalizes a navigation target received from outside
// the process. Only absolute paths are accepted: full URLs and
// protocol-relative targets are rejected.
func ValidateTarget(target string) (string, error) {
	if strings.HasPrefix(target, "//") || !strings.HasPrefix(target, "/") {
		return "", ErrInvalidPath
	}
	res, err := Canonicalize(target)
	if err != nil {
		return "", err
	}
	return res.String(), nil
}

// validatePercentEscapes checks that every '%' starts a %XX escape.
func validatePercentEscapes(path string) error {
	for i := 0; i < len(path); i++ {
		if path[i] != '%' {
			continue
		}
		if i+2 >= len(path) || !isHexDigit(path[i+1]) || !isHexDigit(path[i+2]) {
			return ErrInvalidPercentEscape
		}
		i += 2
	}
	return nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
