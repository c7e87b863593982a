package vdom

import "strings"

// attr creates an attribute with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Prop creates an arbitrary attribute.
func Prop(key string, value any) Attr { return attr(key, value) }

// ID sets the element id.
func ID(id string) Attr { return attr("id", id) }

// Class sets the element class list.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Href sets the link target.
func Href(url string) Attr { return attr("href", url) }

// Target sets the link browsing context.
func Target(target string) Attr { return attr("target", target) }

// Rel sets the link relationship.
func Rel(rel string) Attr { return attr("rel", rel) }

// TitleAttr sets the advisory title.
func TitleAttr(title string) Attr { return attr("title", title) }

// Data sets a data-* attribute.
func Data(key, value string) Attr { return attr("data-"+key, value) }

// AriaCurrent marks the current item in a set, e.g. the active link.
func AriaCurrent(value string) Attr { return attr("aria-current", value) }

// Key sets the reconciliation key.
func Key(key string) Attr { return attr("key", key) }
