package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	"R001": {
		Category: CategoryRuntime,
		Message:  "Missing router context",
		Detail:   "A Link was activated without a router established higher in the tree. Wrap the tree in BrowserRouter.",
	},
	"R002": {
		Category: CategoryConfig,
		Message:  "Malformed path pattern",
		Detail:   "A Route path could not be compiled. Named segments need a name (:id), catch-all segments (*rest) must be last, and names must be unique.",
	},
	"R003": {
		Category: CategoryRuntime,
		Message:  "Missing history host",
		Detail:   "A navigation source needs a platform history. Outside a browser supply an in-memory history.",
	},
	"R004": {
		Category: CategoryValidation,
		Message:  "Invalid navigation target",
		Detail:   "The navigation target is empty or is not a clean absolute path.",
	},
	"R005": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The configuration file could not be read or holds an invalid value.",
	},
}

// GetAllCodes returns all registered error codes in order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
