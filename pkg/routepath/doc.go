// Package routepath normalizes navigation paths and performs the
// segment-aware prefix arithmetic used by nested route matching.
//
// Paths seen by the matcher are "relative": no leading slash and no
// trailing slash. Trim produces that form; Join and StripPrefix keep it.
package routepath
