// Package render mounts component trees and writes them out as HTML.
//
// A Tree is the live form of a component tree. Every component node gets its
// own vango.Owner; when that owner is invalidated the component's previous
// scope is disposed (running its cleanups) and the component is rendered and
// mounted again in a fresh scope. Everything outside the invalidated
// component is left alone.
//
// # Basic Usage
//
//	tree := render.Mount(vdom.Func(App))
//	defer tree.Unmount()
//
//	html, err := tree.HTML()
//
// A static node can be rendered without mounting:
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Security
//
// All text content and attribute values are escaped. Event handler props are
// never written as attributes.
package render
