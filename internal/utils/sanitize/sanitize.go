package sanitize

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

// strict is a cached bluemonday policy that removes all HTML tags and attributes.
// bluemonday.Policy is read-only after build; never mutate it after init.
var strict = func() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true) // Prevents word concatenation
	return p
}()

// Clean turns user-typed form text into a single log-safe line.
//
// It strips HTML, unescapes entities, maps every control or separator
// character (newlines included) to a space and collapses runs of spaces.
//
// Examples:
//   - "<b>Ana</b> Lima" -> "Ana Lima"
//   - "Ana\nlevel=error" -> "Ana level=error"
//   - "&nbsp;Ana&amp;Bo " -> "Ana&Bo"
func Clean(s string) string {
	out := html.UnescapeString(strict.Sanitize(s))
	out = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, out)
	return strings.Join(strings.Fields(out), " ")
}
