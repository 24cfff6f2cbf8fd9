package webpack

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode"
)

// ErrUnsafeAttrs is returned by SanitizeAttrs for attributes outside the
// allowed set or text that is not an attribute list.
var ErrUnsafeAttrs = errors.New("unsupported tag attributes")

// allowedAttrs are the attributes callers may add to script and link tags.
var allowedAttrs = map[string]struct{}{
	"async":          {},
	"defer":          {},
	"nomodule":       {},
	"crossorigin":    {},
	"integrity":      {},
	"media":          {},
	"nonce":          {},
	"referrerpolicy": {},
}

var attrToken = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z-]*)(?:=(?:"([^"]*)"|([^\s"'<>=` + "`" + `]+)))?`)

// SanitizeAttrs parses attrs as a space-separated HTML attribute list and
// rebuilds it with escaped, double-quoted values. Only allowed attribute
// names pass; anything else fails with ErrUnsafeAttrs.
func SanitizeAttrs(attrs string) (string, error) {
	var out []string
	rest := attrs
	for strings.TrimSpace(rest) != "" {
		m := attrToken.FindStringSubmatchIndex(rest)
		if m == nil {
			return "", fmt.Errorf("%w: %q", ErrUnsafeAttrs, attrs)
		}
		if end := m[1]; end < len(rest) && !unicode.IsSpace(rune(rest[end])) {
			return "", fmt.Errorf("%w: %q", ErrUnsafeAttrs, attrs)
		}

		name := strings.ToLower(rest[m[2]:m[3]])
		if _, ok := allowedAttrs[name]; !ok {
			return "", fmt.Errorf("%w: %s", ErrUnsafeAttrs, name)
		}
		switch {
		case m[4] >= 0:
			out = append(out, name+`="`+html.EscapeString(rest[m[4]:m[5]])+`"`)
		case m[6] >= 0:
			out = append(out, name+`="`+html.EscapeString(rest[m[6]:m[7]])+`"`)
		default:
			out = append(out, name)
		}
		rest = rest[m[1]:]
	}
	return strings.Join(out, " "), nil
}
