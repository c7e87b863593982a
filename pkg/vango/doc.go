// Package vango provides the reactive core the router is built on.
//
// Dependencies are explicit: nothing is tracked implicitly while rendering.
// A Signal is a value plus an ordered list of subscribed listeners, and an
// Owner is a component scope that owns subscriptions, cleanups, and the
// context values visible to its descendants.
//
// # Core Types
//
// Signal[T] is a reactive value container:
//
//	active := NewSignal[*Record](nil)
//	stop := active.Watch(func() { fmt.Println("changed:", active.Get()) })
//	active.Set(&Record{})  // notifies in registration order
//	stop()
//
// Owner scopes lifetimes:
//
//	root := NewOwner(nil)
//	child := NewOwner(root)
//	child.OnCleanup(stop)
//	root.Dispose()  // disposes child, runs stop
//
// Context[T] scopes values to descendants:
//
//	var Theme = CreateContext("light")
//	Theme.Provide(parent, "dark")
//	Theme.Use(NewOwner(parent))  // "dark"
//
// # Thread Safety
//
// Signals and owners are safe for concurrent use, but notification runs
// synchronously on the goroutine that calls Set. The router keeps all
// writes on one logical update thread.
package vango
