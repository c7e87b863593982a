package history

import "strings"

// State is the value stored with a history entry.
type State map[string]any

// Location is the navigable part of the current URL.
type Location struct {
	// Pathname always starts with "/".
	Pathname string

	// Search is the query string including the leading "?", or "".
	Search string
}

// String returns the path with its query string.
func (l Location) String() string {
	return l.Pathname + l.Search
}

// History is the platform history a Source drives.
type History interface {
	// PushState adds an entry and makes it current. It does not fire
	// popstate listeners.
	PushState(state State, title, path string)

	// ReplaceState overwrites the current entry.
	ReplaceState(state State, title, path string)

	// Location returns the current location.
	Location() Location

	// OnPopState registers fn to run when the current entry changes for
	// a reason other than PushState or ReplaceState (back, forward).
	OnPopState(fn func()) (remove func())
}

// ParseLocation splits path into a Location. Empty paths resolve to "/".
func ParseLocation(path string) Location {
	p, q, hasQuery := strings.Cut(path, "?")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	loc := Location{Pathname: p}
	if hasQuery && q != "" {
		loc.Search = "?" + q
	}
	return loc
}

// resolve applies a pushed path to the current location. A bare query
// keeps the current pathname; an empty path keeps the whole location.
func resolve(current Location, path string) Location {
	switch {
	case path == "":
		return current
	case strings.HasPrefix(path, "?"):
		loc := ParseLocation(current.Pathname + path)
		return loc
	default:
		return ParseLocation(path)
	}
}

// clone copies s one level deep.
func (s State) clone() State {
	if s == nil {
		return nil
	}
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
