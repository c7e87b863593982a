// Package history is the navigation source of a router tree.
//
// A History is the platform boundary: the browser history object, an
// in-memory stack (MemoryHistory) for tests and non-browser hosts, or a
// remote page attached over a websocket (Bridge). A Source wraps a History
// and turns pushes and popstate notifications into one stream of
// navigation events delivered to subscribers in registration order.
//
//	h := history.NewMemoryHistory("/")
//	src, err := history.New(h)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	stop := src.Subscribe(func() {
//	    fmt.Println("now at", src.CurrentPath())
//	})
//	defer stop()
//
//	src.Navigate("/about")
package history
