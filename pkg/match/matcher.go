package match

import (
	"fmt"
	"sync"

	"github.com/vango-dev/vroute/pkg/routepath"
)

// Declaration pairs a path pattern with an opaque payload.
type Declaration struct {
	// Path is the pattern, e.g. "user/:id". "" is the index route.
	Path string

	// Exact requires the pattern to consume the whole remaining path.
	Exact bool

	// Payload is carried through to the Result untouched.
	Payload any
}

// Result is a successful match.
type Result struct {
	// Index is the position of the matched declaration.
	Index int

	// Declaration is the matched declaration.
	Declaration Declaration

	// Params holds the captured parameters.
	Params map[string]string

	// Matched is the consumed part of the path, in relative form.
	Matched string

	// Remaining is what is left of the path after Matched.
	Remaining string
}

// Matcher is a compiled, ordered set of declarations. It is safe for
// concurrent use.
type Matcher struct {
	decls    []Declaration
	patterns []*Pattern
}

// NewMatcher compiles every declaration. It fails on the first malformed
// pattern.
func NewMatcher(decls []Declaration) (*Matcher, error) {
	m := &Matcher{
		decls:    append([]Declaration(nil), decls...),
		patterns: make([]*Pattern, len(decls)),
	}
	for i, d := range m.decls {
		p, err := compileCached(d.Path)
		if err != nil {
			return nil, err
		}
		m.patterns[i] = p
	}
	return m, nil
}

// Declarations returns a copy of the declarations in order.
func (m *Matcher) Declarations() []Declaration {
	return append([]Declaration(nil), m.decls...)
}

// Len returns the number of declarations.
func (m *Matcher) Len() int {
	return len(m.decls)
}

// Duplicates returns the patterns declared more than once, in order of
// their second appearance. Only the first such declaration can match.
func (m *Matcher) Duplicates() []string {
	seen := make(map[string]bool, len(m.decls))
	var dups []string
	for _, d := range m.decls {
		key := fmt.Sprintf("%s|%t", routepath.Trim(d.Path), d.Exact)
		if seen[key] {
			dups = append(dups, d.Path)
		}
		seen[key] = true
	}
	return dups
}

// Match returns the first declaration that matches path, or nil.
func (m *Matcher) Match(path string) *Result {
	path = routepath.Trim(path)
	for i, p := range m.patterns {
		params, matched, ok := p.Match(path, m.decls[i].Exact)
		if !ok {
			continue
		}
		rest, _ := routepath.StripPrefix(path, matched)
		return &Result{
			Index:       i,
			Declaration: m.decls[i],
			Params:      params,
			Matched:     matched,
			Remaining:   rest,
		}
	}
	return nil
}

// Match compiles decls and matches path against them. Compiled patterns
// are cached by pattern text.
func Match(decls []Declaration, path string) (*Result, error) {
	m, err := NewMatcher(decls)
	if err != nil {
		return nil, err
	}
	return m.Match(path), nil
}

var cache sync.Map // pattern string -> *Pattern

func compileCached(pattern string) (*Pattern, error) {
	if p, ok := cache.Load(pattern); ok {
		return p.(*Pattern), nil
	}
	p, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	actual, _ := cache.LoadOrStore(pattern, p)
	return actual.(*Pattern), nil
}

// Payload returns the payload of the matched declaration.
func (r *Result) Payload() any {
	if r == nil {
		return nil
	}
	return r.Declaration.Payload
}
