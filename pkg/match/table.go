package match

import (
	"strings"

	"github.com/vango-dev/vroute/pkg/routepath"
)

// TableEntry is a route declaration in a nested route table. Children
// model a Switch rendered inside the entry's view.
type TableEntry struct {
	Name     string       `json:"name,omitempty" yaml:"name,omitempty"`
	Path     string       `json:"path" yaml:"path"`
	Exact    bool         `json:"exact,omitempty" yaml:"exact,omitempty"`
	Children []TableEntry `json:"children,omitempty" yaml:"children,omitempty"`
}

// Step is one level of a resolved table.
type Step struct {
	Name     string            `json:"name,omitempty"`
	Pattern  string            `json:"pattern"`
	Pathname string            `json:"pathname"`
	Realpath string            `json:"realpath"`
	Params   map[string]string `json:"params,omitempty"`
}

// Resolve walks table the way nested Switches would for path and returns
// the matched entry at each level, outermost first. It stops at the first
// level with no match. A query string on path is ignored.
func Resolve(table []TableEntry, path string) ([]Step, error) {
	path, _, _ = strings.Cut(path, "?")

	var steps []Step
	full := routepath.Trim(path)
	remaining := full

	for len(table) > 0 {
		decls := make([]Declaration, len(table))
		for i, e := range table {
			decls[i] = Declaration{Path: e.Path, Exact: e.Exact, Payload: i}
		}
		res, err := Match(decls, remaining)
		if err != nil {
			return steps, err
		}
		if res == nil {
			break
		}

		entry := table[res.Index]
		realpath := routepath.Consumed(full, res.Remaining)
		steps = append(steps, Step{
			Name:     entry.Name,
			Pattern:  entry.Path,
			Pathname: remaining,
			Realpath: realpath,
			Params:   res.Params,
		})

		table = entry.Children
		remaining = res.Remaining
	}
	return steps, nil
}

// Validate compiles every pattern in table, depth first.
func Validate(table []TableEntry) error {
	for _, e := range table {
		if _, err := compileCached(e.Path); err != nil {
			return err
		}
		if err := Validate(e.Children); err != nil {
			return err
		}
	}
	return nil
}
