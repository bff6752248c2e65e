package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// quotes undoes the quote escaping of the policy. Only &, < and > stay escaped.
var quotes = strings.NewReplacer("&#39;", "'", "&#34;", `"`)

// Text removes every HTML element from s and collapses runs of whitespace
// into a single space.
func Text(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(quotes.Replace(strict.Sanitize(s))), " ")
}
