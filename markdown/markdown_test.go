package markdown

import (
	"bytes"
	"context"
	"testing"
)

func TestFormatInlineBold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"__bold__", "<strong>bold</strong>"},
		{"text **bold** more", "text <strong>bold</strong> more"},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input)
		if got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineItalic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"*italic*", "<em>italic</em>"},
		{"_italic_", "<em>italic</em>"},
		{"I write *tech* articles", "I write <em>tech</em> articles"},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input)
		if got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineUnderscoresInsideWords(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"my_aws_certs", "my_aws_certs"},
		{"see my_aws_certs and _notes_", "see my_aws_certs and <em>notes</em>"},
		{"a_b _c_", "a_b <em>c</em>"},
		{"snake__case__name", "snake__case__name"},
		{"(_aside_)", "(<em>aside</em>)"},
		{
			"[saa_c03_guide](https://example.com/saa_c03)",
			`<a href="https://example.com/saa_c03">saa_c03_guide</a>`,
		},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input)
		if got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlinePlainTextUnchanged(t *testing.T) {
	in := "I write tech articles about my side-projects"
	if got := FormatInline(in); got != in {
		t.Errorf("FormatInline(%q) = %q, want unchanged", in, got)
	}
}

func TestFormatInlineEscapesHTML(t *testing.T) {
	got := FormatInline("<script>alert(1)</script>")
	want := "&lt;script&gt;alert(1)&lt;/script&gt;"
	if got != want {
		t.Errorf("FormatInline = %q, want %q", got, want)
	}
}

func TestFormatInlineLinks(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			"[notes](https://example.com/aws_notes/saa_c03)",
			`<a href="https://example.com/aws_notes/saa_c03">notes</a>`,
		},
		{
			"see [blog](https://rishabkumar.com)^ too",
			`see <a href="https://rishabkumar.com" target="_blank" rel="noopener noreferrer">blog</a> too`,
		},
		{
			"[bad](javascript:void)",
			"bad",
		},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input)
		if got != tt.expected {
			t.Errorf("FormatInline(%q)\n  got:  %q\n  want: %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"`code`", "<code>code</code>"},
		{"use `go test` here", "use <code>go test</code> here"},
		{"`**not bold**`", "<code>**not bold**</code>"},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input)
		if got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://example.com", "https://example.com"},
		{"/about", "/about"},
		{"#top", "#top"},
		{"mailto:me@example.com", "mailto:me@example.com"},
		{"javascript:alert(1)", ""},
		{"example.com", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		if got := SafeURL(tt.input); got != tt.expected {
			t.Errorf("SafeURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestInlineComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Inline("**hi**").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := buf.String(); got != "<strong>hi</strong>" {
		t.Errorf("Inline rendered %q", got)
	}
}
