// Package router implements hierarchical client-side routing for vdom
// component trees.
//
// # Components
//
//   - BrowserRouter establishes a Router (a navigation source) for its subtree.
//   - Switch matches its Route declarations against the part of the current
//     path its enclosing Switch has not consumed, and publishes the result to
//     its descendants.
//   - Route renders its payload only while it is the active declaration of
//     its enclosing Switch.
//   - Link pushes a history entry instead of following the href.
//   - StaticRouter renders its children without navigation wiring.
//
// # Usage
//
//	h := history.NewMemoryHistory("/profile/settings")
//
//	app := router.BrowserRouter(h,
//	    router.Link("/about", "About"),
//	    router.Switch(
//	        router.Route("", Home),
//	        router.Route("about", About),
//	        router.Route("profile", Profile),
//	    ),
//	)
//
// where Profile contains its own Switch:
//
//	router.Switch(
//	    router.Route("", ProfileIndex),
//	    router.Route("settings", ProfileSettings),
//	)
//
// # Nested Matching
//
// Each active Switch publishes a RouteRecord whose Realpath is the part of
// the path consumed by it and all of its ancestors. A nested Switch strips
// its parent's Realpath from the current path and matches what remains.
// Declarations are prefix matches on whole segments unless marked Exact;
// the empty pattern matches only when nothing remains.
package router
