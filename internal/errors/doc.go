// Package errors provides coded, actionable errors for the router.
//
// Every error raised for structural misuse of the component tree or for a
// bad configuration carries a code from the registry:
//
//	R001  missing router context
//	R002  malformed path pattern
//	R003  missing history host
//	R004  invalid navigation target
//	R005  invalid configuration
//
// Errors wrap the sentinel values exported by the domain packages, so callers
// can test them with the standard errors.Is:
//
//	defer func() {
//	    if err, ok := recover().(error); ok && errors.Is(err, router.ErrNoRouter) {
//	        // Link activated outside a BrowserRouter
//	    }
//	}()
//
// The CLI prints them with Format.
package errors
