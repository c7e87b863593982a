package match

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	rerrors "github.com/vango-dev/vroute/internal/errors"
	"github.com/vango-dev/vroute/pkg/routepath"
)

// ErrMalformedPattern is matched by every pattern compilation failure.
var ErrMalformedPattern = errors.New("malformed path pattern")

// PatternError describes why a pattern failed to compile.
type PatternError struct {
	Pattern string
	Reason  string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern %q: %s", e.Pattern, e.Reason)
}

// Unwrap makes PatternError match ErrMalformedPattern.
func (e *PatternError) Unwrap() error {
	return ErrMalformedPattern
}

type segmentKind uint8

const (
	segLiteral segmentKind = iota
	segParam
	segCatchAll
)

type segment struct {
	kind  segmentKind
	value string // literal text or parameter name
}

// Pattern is a compiled path pattern.
type Pattern struct {
	raw      string
	segments []segment
	names    []string
}

// Compile parses a path pattern. Leading and trailing slashes are ignored.
// The returned error is a coded R002 error wrapping a *PatternError.
func Compile(pattern string) (*Pattern, error) {
	p := &Pattern{raw: pattern}
	trimmed := routepath.Trim(pattern)
	if trimmed == "" {
		return p, nil
	}

	parts := strings.Split(trimmed, "/")
	seen := make(map[string]bool, len(parts))
	for i, part := range parts {
		if part == "" {
			return nil, malformed(pattern, "empty segment")
		}
		if strings.ContainsAny(part, "()?+") {
			return nil, malformed(pattern, fmt.Sprintf("unsupported syntax in segment %q", part))
		}

		switch part[0] {
		case ':', '*':
			name := part[1:]
			if name == "" {
				return nil, malformed(pattern, "segment "+part+" has no name")
			}
			if strings.ContainsAny(name, ":*") {
				return nil, malformed(pattern, fmt.Sprintf("invalid name %q", name))
			}
			if seen[name] {
				return nil, malformed(pattern, fmt.Sprintf("duplicate name %q", name))
			}
			seen[name] = true
			p.names = append(p.names, name)

			kind := segParam
			if part[0] == '*' {
				if i != len(parts)-1 {
					return nil, malformed(pattern, "catch-all segment must be last")
				}
				kind = segCatchAll
			}
			p.segments = append(p.segments, segment{kind: kind, value: name})
		default:
			p.segments = append(p.segments, segment{kind: segLiteral, value: part})
		}
	}
	return p, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

func malformed(pattern, reason string) error {
	return rerrors.New("R002").
		WithSubject(pattern).
		Wrap(&PatternError{Pattern: pattern, Reason: reason})
}

// String returns the pattern as written.
func (p *Pattern) String() string {
	return p.raw
}

// Names returns the parameter names in declaration order.
func (p *Pattern) Names() []string {
	return append([]string(nil), p.names...)
}

// IsIndex reports whether the pattern is empty, matching only "".
func (p *Pattern) IsIndex() bool {
	return len(p.segments) == 0
}

// Match matches path (relative or absolute) against the pattern. When exact
// is false the pattern may match a leading run of whole segments. It returns
// the captured parameters and the consumed part of path.
func (p *Pattern) Match(path string, exact bool) (params map[string]string, matched string, ok bool) {
	segs := routepath.Split(path)

	if len(p.segments) == 0 {
		if len(segs) != 0 {
			return nil, "", false
		}
		return map[string]string{}, "", true
	}

	params = make(map[string]string, len(p.names))
	consumed := 0
	for _, s := range p.segments {
		if consumed >= len(segs) {
			return nil, "", false
		}
		switch s.kind {
		case segLiteral:
			if !strings.EqualFold(segs[consumed], s.value) {
				return nil, "", false
			}
			consumed++
		case segParam:
			if segs[consumed] == "" {
				return nil, "", false
			}
			params[s.value] = decode(segs[consumed])
			consumed++
		case segCatchAll:
			params[s.value] = decode(strings.Join(segs[consumed:], "/"))
			consumed = len(segs)
		}
	}

	if exact && consumed != len(segs) {
		return nil, "", false
	}
	return params, strings.Join(segs[:consumed], "/"), true
}

// decode percent-decodes a captured value, keeping the raw text when it is
// not a valid escape sequence.
func decode(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	if d, err := url.PathUnescape(s); err == nil {
		return d
	}
	return s
}
