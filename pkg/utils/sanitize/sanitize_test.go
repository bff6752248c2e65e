package sanitize_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/wirereport/pkg/utils/sanitize"
)

func TestText(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain", input: "Suspicious login", want: "Suspicious login"},
		{name: "tags removed", input: "<b>Malware</b> on <i>host</i>", want: "Malware on host"},
		{name: "whitespace collapsed", input: "  line one\n\n\tline   two  ", want: "line one line two"},
		{name: "block tags", input: "<p>first</p>\n<p>second</p>", want: "first second"},
		{name: "quotes kept", input: `User's "password" & <b>more</b>   x`, want: `User's "password" &amp; more x`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, tc.want, sanitize.Text(tc.input))
		})
	}
}

func TestTextNeverReturnsMarkup(t *testing.T) {
	out := sanitize.Text(`<img src=x onerror="alert(1)">Report <a href="https://example.com">link</a>`)
	gt.False(t, strings.Contains(out, "<"))
	gt.False(t, strings.Contains(out, ">"))
	gt.S(t, out).Contains("Report")
}
