package vango

// Context scopes a value to a subtree of owners.
// Create a context with CreateContext, provide values with Provide,
// and consume values with Use.
//
// Example:
//
//	var ThemeContext = vango.CreateContext("light")
//
//	ThemeContext.Provide(owner, "dark")
//	theme := ThemeContext.Use(childOwner)
type Context[T any] struct {
	// key uniquely identifies this context in the owner value map
	key any

	// name labels the context in errors and logs
	name string

	// defaultValue is returned when no provider is found
	defaultValue T
}

// contextKey wraps Context to create a unique key type
type contextKey[T any] struct {
	ctx *Context[T]
}

// CreateContext creates a new context with the given default value.
// The default value is returned by Use() when no provider is found.
func CreateContext[T any](defaultValue T) *Context[T] {
	ctx := &Context[T]{
		defaultValue: defaultValue,
	}
	ctx.key = contextKey[T]{ctx: ctx}
	return ctx
}

// DefineContext creates a named context with a zero default.
func DefineContext[T any](name string) *Context[T] {
	var zero T
	ctx := CreateContext(zero)
	ctx.name = name
	return ctx
}

// Provide sets the value for owner and its descendants.
// Siblings and ancestors of owner do not see it.
func (c *Context[T]) Provide(owner *Owner, value T) {
	if owner != nil {
		owner.SetValue(c.key, value)
	}
}

// Use retrieves the value from the nearest provider at or above owner.
// If no provider is found, returns the default value.
func (c *Context[T]) Use(owner *Owner) T {
	if v, ok := c.Lookup(owner); ok {
		return v
	}
	return c.defaultValue
}

// Lookup is like Use but reports whether a provider was found.
func (c *Context[T]) Lookup(owner *Owner) (T, bool) {
	if owner != nil {
		if value := owner.GetValue(c.key); value != nil {
			if typed, ok := value.(T); ok {
				return typed, true
			}
		}
	}
	var zero T
	return zero, false
}

// Default returns the default value for this context.
func (c *Context[T]) Default() T {
	return c.defaultValue
}

// Name returns the name given to DefineContext.
func (c *Context[T]) Name() string {
	return c.name
}
