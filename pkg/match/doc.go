// Package match resolves a path against an ordered list of route
// declarations.
//
// Patterns are slash-separated segments. A segment is a literal, a named
// segment (":id") that captures exactly one path segment, or a catch-all
// ("*rest") that captures one or more trailing segments and must come last.
//
//	"user/:id"      matches "user/42"            params {id: 42}
//	"files/*path"   matches "files/a/b.txt"      params {path: a/b.txt}
//	""              matches only ""
//
// Non-exact declarations match a leading run of whole segments, leaving
// the rest of the path for nested matchers. Exact declarations must consume
// the whole path. Declarations are tried in order and the first match wins.
package match
