package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/communityhub/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	if got := htmlsanitize.Sanitize(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestSanitize_PlainText(t *testing.T) {
	if got := htmlsanitize.Sanitize("Namaste, World!"); got != "Namaste, World!" {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestSanitize_SafeHTML(t *testing.T) {
	input := "<p><strong>Bold</strong> and <em>italic</em></p>"
	if got := htmlsanitize.Sanitize(input); got != input {
		t.Errorf("expected safe HTML preserved, got %q", got)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	got := htmlsanitize.Sanitize("<p>Hello</p><script>alert('xss')</script>")
	if got != "<p>Hello</p>" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestSanitize_RemovesOnclick(t *testing.T) {
	got := htmlsanitize.Sanitize(`<p onclick="alert('xss')">Click</p>`)
	if strings.Contains(got, "onclick") {
		t.Errorf("expected onclick removed, got %q", got)
	}
}

func TestSanitize_RemovesJavascriptHref(t *testing.T) {
	got := htmlsanitize.Sanitize(`<a href="javascript:alert('xss')">Click</a>`)
	if strings.Contains(got, "javascript:") {
		t.Errorf("expected javascript: href removed, got %q", got)
	}
}

func TestSanitize_AllowsSafeLinks(t *testing.T) {
	got := htmlsanitize.Sanitize(`<a href="https://globalnepali.org">Link</a>`)
	if !strings.Contains(got, "https://globalnepali.org") {
		t.Errorf("expected safe link preserved, got %q", got)
	}
}

func TestSanitize_AllowsTables(t *testing.T) {
	input := `<table><thead><tr><th>Header</th></tr></thead><tbody><tr><td>Cell</td></tr></tbody></table>`
	if got := htmlsanitize.Sanitize(input); got != input {
		t.Errorf("expected table preserved, got %q", got)
	}
}

func TestSanitize_AllowsTableAttributes(t *testing.T) {
	got := htmlsanitize.Sanitize(`<table><tr><td colspan="2" rowspan="2">Cell</td></tr></table>`)
	if !strings.Contains(got, `colspan="2"`) || !strings.Contains(got, `rowspan="2"`) {
		t.Errorf("expected colspan/rowspan preserved, got %q", got)
	}
}

func TestSanitize_AllowsLists(t *testing.T) {
	input := "<ul><li>Item 1</li><li>Item 2</li></ul>"
	if got := htmlsanitize.Sanitize(input); got != input {
		t.Errorf("expected list preserved, got %q", got)
	}
}

func TestSanitize_RemovesIframe(t *testing.T) {
	got := htmlsanitize.Sanitize(`<p>Content</p><iframe src="https://evil.com"></iframe>`)
	if strings.Contains(got, "iframe") {
		t.Error("expected iframe to be removed")
	}
	if !strings.Contains(got, "Content") {
		t.Error("expected safe content to be preserved")
	}
}

func TestSanitize_RemovesStyleTags(t *testing.T) {
	got := htmlsanitize.Sanitize(`<style>body { color: red; }</style><p>Text</p>`)
	if strings.Contains(got, "<style>") {
		t.Error("expected style tag to be removed")
	}
}

func TestSanitize_AllowsCodeBlocks(t *testing.T) {
	input := "<pre><code>func main() {}</code></pre>"
	if got := htmlsanitize.Sanitize(input); got != input {
		t.Errorf("expected code blocks preserved, got %q", got)
	}
}

func TestStripTags(t *testing.T) {
	got := htmlsanitize.StripTags("  <p>Dashain <b>festival</b></p>  ")
	if got != "Dashain festival" {
		t.Errorf("StripTags = %q, want %q", got, "Dashain festival")
	}
}

func TestIsPlainText(t *testing.T) {
	if !htmlsanitize.IsPlainText("") {
		t.Error("expected empty string to be plain text")
	}
	if !htmlsanitize.IsPlainText("Hello, World!") {
		t.Error("expected string without tags to be plain text")
	}
	if htmlsanitize.IsPlainText("<p>Hello</p>") {
		t.Error("expected string with tags to NOT be plain text")
	}
}

func TestStripTags_KeepsAmpersands(t *testing.T) {
	if got := htmlsanitize.StripTags("Tom & Jerry"); got != "Tom & Jerry" {
		t.Errorf("StripTags = %q, want plain text untouched", got)
	}
	if got := htmlsanitize.StripTags("<b>Fish &amp; Chips</b>"); got != "Fish & Chips" {
		t.Errorf("StripTags = %q, want %q", got, "Fish & Chips")
	}
}

func TestStripTags_EncodedMarkupNeverSurvives(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"encoded script inside markup", "<b>&lt;script&gt;alert(1)&lt;/script&gt;</b>"},
		{"encoded tag in plain text", "&lt;b&gt;bold&lt;/b&gt;"},
		{"double encoded", "<i>&amp;lt;img src=x onerror=alert(1)&amp;gt;</i>"},
		{"bare angle brackets", "a < b > c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := htmlsanitize.StripTags(tt.in)
			if strings.ContainsAny(got, "<>") {
				t.Errorf("StripTags(%q) = %q, still contains markup", tt.in, got)
			}
		})
	}
}

func TestStripTags_PlainAndMarkupAgree(t *testing.T) {
	plain := htmlsanitize.StripTags("&lt;b&gt;Dashain&lt;/b&gt;")
	markup := htmlsanitize.StripTags("<p>&lt;b&gt;Dashain&lt;/b&gt;</p>")
	if plain != "Dashain" || markup != "Dashain" {
		t.Errorf("plain = %q, markup = %q, want both %q", plain, markup, "Dashain")
	}
}
