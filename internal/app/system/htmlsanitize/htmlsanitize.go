// internal/app/system/htmlsanitize/htmlsanitize.go
package htmlsanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	rich   *bluemonday.Policy
	strict *bluemonday.Policy
)

func policies() (*bluemonday.Policy, *bluemonday.Policy) {
	once.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowElements("u", "s", "sub", "sup", "mark")
		p.AllowElements("table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption")
		p.AllowAttrs("colspan", "rowspan").Matching(bluemonday.Integer).OnElements("td", "th")
		p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("table", "tr", "td", "th", "pre", "code")
		rich = p
		strict = bluemonday.StrictPolicy()
	})
	return rich, strict
}

// Sanitize returns article body HTML with scripts, event handlers,
// javascript: links, iframes and style blocks removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	p, _ := policies()
	return p.Sanitize(s)
}

const maxStripPasses = 3

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// StripTags removes all markup, leaving text. Used for titles, names and
// other fields served as JSON strings, so entities are decoded. Decoding can
// surface new tags, so the strict policy runs again until no angle brackets
// remain; any left after the last pass are dropped.
func StripTags(s string) string {
	_, p := policies()
	out := html.UnescapeString(s)
	for i := 0; i < maxStripPasses && !IsPlainText(out); i++ {
		out = html.UnescapeString(p.Sanitize(out))
	}
	if !IsPlainText(out) {
		out = angleBrackets.Replace(out)
	}
	return strings.TrimSpace(out)
}

// IsPlainText reports whether s contains no markup at all.
func IsPlainText(s string) bool {
	return !strings.ContainsAny(s, "<>")
}
