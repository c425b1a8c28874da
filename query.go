package rutego

import (
	"fmt"
	"net/url"
)

// EncodeQuery serializes a flat mapping of query parameters into a canonical
// query string. It never fails: a nil or empty map yields "", entries with a
// nil value are skipped, and all other values are coerced to their string
// form. Slice values append one pair per element under the same key; the
// encoder does not deduplicate. If at least one parameter survives
// filtering the result starts with "?", otherwise it is the empty string.
func EncodeQuery(query map[string]any) string {
	if len(query) == 0 {
		return ""
	}

	values := url.Values{}
	for key, value := range query {
		switch v := value.(type) {
		case nil:
			continue
		case []string:
			for _, item := range v {
				values.Add(key, item)
			}
		case []any:
			for _, item := range v {
				if item == nil {
					continue
				}
				values.Add(key, queryString(item))
			}
		default:
			values.Add(key, queryString(value))
		}
	}

	encoded := values.Encode()
	if encoded == "" {
		return ""
	}
	return "?" + encoded
}

func queryString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}
