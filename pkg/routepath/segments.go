package routepath

import "strings"

// Trim returns path in relative form: one leading slash is removed and
// trailing slashes are dropped. "/" and "" both trim to "".
func Trim(path string) string {
	path = strings.TrimPrefix(path, "/")
	return strings.TrimRight(path, "/")
}

// Split returns the segments of a relative path. The empty path has no
// segments.
func Split(path string) []string {
	path = Trim(path)
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// Join joins relative paths, skipping empty parts.
func Join(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = Trim(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "/")
}

// StripPrefix removes prefix from path on a segment boundary. Both are
// trimmed first. It reports false when prefix is not a leading run of
// whole segments of path; "profile" is a prefix of "profile/settings"
// but not of "profiles". Empty segments right after prefix are dropped
// from the result.
func StripPrefix(path, prefix string) (string, bool) {
	path, prefix = Trim(path), Trim(prefix)
	if prefix == "" {
		return path, true
	}
	if path == prefix {
		return "", true
	}
	if strings.HasPrefix(path, prefix) && path[len(prefix)] == '/' {
		return strings.TrimLeft(path[len(prefix):], "/"), true
	}
	return path, false
}

// Consumed returns the part of path in front of rest, where rest is what
// StripPrefix or a match left over. Empty segments inside the consumed
// part are kept, so the result is always a literal prefix of path.
func Consumed(path, rest string) string {
	path = Trim(path)
	if len(rest) > len(path) || !strings.HasSuffix(path, rest) {
		return path
	}
	return strings.TrimRight(path[:len(path)-len(rest)], "/")
}
