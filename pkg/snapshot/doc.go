// Package snapshot renders routed applications to static HTML.
//
// Each path is rendered into a fresh tree whose router is backed by an
// in-memory history positioned at that path, so Switch, Route and Link
// behave exactly as they do interactively. The resulting documents are
// written to a Store: a directory on disk or an S3 bucket.
//
//	s := snapshot.New(demo.App, snapshot.NewDiskStore("out"))
//	results, err := s.Snapshot(ctx, []string{"/", "/about"})
package snapshot
