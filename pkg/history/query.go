package history

import (
	"net/url"
	"strings"
)

// ParseQuery parses a location search string into a map.
//
// A leading "?" is ignored. Pairs are split on "&" and the value is the
// text between the first and second "=", so "a=1=2" yields "1". Keys and
// values are percent-decoded, "+" is left as is. A pair is dropped when it
// has no "=" or when its decoded value is the literal "undefined". An empty
// key is kept. Later duplicates overwrite earlier ones.
func ParseQuery(search string) map[string]string {
	out := make(map[string]string)
	search = strings.TrimPrefix(search, "?")
	if search == "" {
		return out
	}

	for _, pair := range strings.Split(search, "&") {
		rawKey, rest, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		rawValue, _, _ := strings.Cut(rest, "=")
		value := unescape(rawValue)
		if value == "undefined" {
			continue
		}
		out[unescape(rawKey)] = value
	}
	return out
}

// unescape decodes s, keeping the raw text when it is not valid.
func unescape(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	if d, err := url.PathUnescape(s); err == nil {
		return d
	}
	return s
}

// AppendQuery adds params to path, merging with any query it already has.
func AppendQuery(path string, params map[string]string) string {
	if len(params) == 0 {
		return path
	}
	p, q, _ := strings.Cut(path, "?")
	values, err := url.ParseQuery(q)
	if err != nil {
		values = url.Values{}
	}
	for k, v := range params {
		values.Set(k, v)
	}
	return p + "?" + values.Encode()
}
