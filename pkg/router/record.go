package router

import (
	"maps"
	"strings"
)

// RouteRecord is the active route of one Switch.
type RouteRecord struct {
	// Pathname is the declared pattern that matched.
	Pathname string

	// Realpath is the path consumed by this Switch and its ancestors,
	// without a leading slash.
	Realpath string

	// Params are the parameters captured by this Switch's match.
	Params map[string]string

	// Parent is the active route of the enclosing Switch, or nil.
	Parent *RouteRecord

	decl *RouteDecl
}

// Param returns the named parameter, searching this record first and then
// its ancestors.
func (r *RouteRecord) Param(name string) string {
	for rec := r; rec != nil; rec = rec.Parent {
		if v, ok := rec.Params[name]; ok {
			return v
		}
	}
	return ""
}

// AllParams merges the parameters of the whole chain. Inner records win.
func (r *RouteRecord) AllParams() map[string]string {
	out := make(map[string]string)
	for rec := r; rec != nil; rec = rec.Parent {
		for k, v := range rec.Params {
			if _, ok := out[k]; !ok {
				out[k] = v
			}
		}
	}
	return out
}

// Root returns the outermost record of the chain.
func (r *RouteRecord) Root() *RouteRecord {
	if r == nil {
		return nil
	}
	rec := r
	for rec.Parent != nil {
		rec = rec.Parent
	}
	return rec
}

// Depth returns the number of records in the chain; 1 for a root record
// and 0 for nil.
func (r *RouteRecord) Depth() int {
	n := 0
	for rec := r; rec != nil; rec = rec.Parent {
		n++
	}
	return n
}

// FullPattern joins the declared patterns of the chain, outermost first.
func (r *RouteRecord) FullPattern() string {
	var parts []string
	for rec := r; rec != nil; rec = rec.Parent {
		if p := strings.Trim(rec.Pathname, "/"); p != "" {
			parts = append(parts, p)
		}
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return "/" + strings.Join(parts, "/")
}

// Equal reports whether two chains hold the same values.
func (r *RouteRecord) Equal(o *RouteRecord) bool {
	for a, b := r, o; ; a, b = a.Parent, b.Parent {
		if a == nil || b == nil {
			return a == b
		}
		if a.Pathname != b.Pathname || a.Realpath != b.Realpath || a.decl != b.decl {
			return false
		}
		if !maps.Equal(a.Params, b.Params) {
			return false
		}
	}
}

func (r *RouteRecord) String() string {
	if r == nil {
		return "<no route>"
	}
	return r.Pathname + " (" + r.Realpath + ")"
}
