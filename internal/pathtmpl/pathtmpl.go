// Package pathtmpl implements scanning and substitution of {name}
// placeholders inside URL path templates. This centralizes template logic so
// the public resolver only has to deal with error formatting.
package pathtmpl

import (
	"fmt"
	"net/url"
	"strings"
)

// Resolve substitutes every {name} placeholder in template with the
// URL-escaped string form of params[name]. Placeholders whose key is not
// present in params are left untouched and returned in missing, preserving
// encounter order. A value that stringifies to "" still substitutes; only an
// absent key counts as missing.
func Resolve(template string, params map[string]any) (resolved string, missing []string) {
	var b strings.Builder
	b.Grow(len(template))

	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			b.WriteString(rest)
			break
		}
		end += open

		key := rest[open+1 : end]
		if key == "" {
			// "{}" is not a placeholder.
			b.WriteString(rest[:end+1])
			rest = rest[end+1:]
			continue
		}

		b.WriteString(rest[:open])
		if value, present := params[key]; present {
			b.WriteString(url.PathEscape(stringify(value)))
		} else {
			b.WriteString(rest[open : end+1])
			missing = append(missing, key)
		}
		rest = rest[end+1:]
	}

	return b.String(), missing
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}
