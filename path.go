package rutego

import (
	"fmt"
	"strings"

	"github.com/adiwarsito/rutego/internal/pathtmpl"
)

// ResolvePath substitutes {name} placeholders in a path template with the
// URL-escaped string form of the matching params value.
//
// A nil params map returns the template unchanged: a template still carrying
// placeholders is not an error at this stage. With a non-nil map, every
// placeholder whose key is absent is collected and reported in a single
// error wrapping ErrMissingPathParams, so callers see all missing parameters
// in one round trip rather than one at a time. A value that stringifies to
// the empty string still substitutes; only an absent key counts as missing.
func ResolvePath(template string, params map[string]any) (string, error) {
	if params == nil {
		return template, nil
	}

	resolved, missing := pathtmpl.Resolve(template, params)
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrMissingPathParams, strings.Join(missing, ", "))
	}
	return resolved, nil
}
