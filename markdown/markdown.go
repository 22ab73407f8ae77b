// Package markdown renders the inline subset of Markdown used in taglines:
// bold, italic, inline code and links.
package markdown

import (
	"context"
	"html"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/a-h/templ"
)

var (
	reBold       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reItalic     = regexp.MustCompile(`\*([^*]+)\*`)
	reInlineCode = regexp.MustCompile("`([^`]+)`")
	reLink       = regexp.MustCompile(`\[(.*?)\]\((.*?)\)(\^)?`)
)

// Inline returns a templ.Component that writes s as inline HTML.
func Inline(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, FormatInline(s))
		return err
	})
}

// FormatInline escapes s and applies inline formatting. A link followed by
// ^ opens in a new tab.
func FormatInline(s string) string {
	escaped := html.EscapeString(s)
	escaped = reLink.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reLink.FindStringSubmatch(m)
		if len(match) < 3 {
			return m
		}
		href := SafeURL(match[2])
		if href == "" {
			return match[1]
		}
		attrs := ""
		if len(match) >= 4 && match[3] == "^" {
			attrs = ` target="_blank" rel="noopener noreferrer"`
		}
		return `<a href="` + href + `"` + attrs + `>` + match[1] + `</a>`
	})
	// Swap code spans for placeholders so emphasis never reaches inside them.
	var code []string
	escaped = reInlineCode.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reInlineCode.FindStringSubmatch(m)
		code = append(code, "<code>"+match[1]+"</code>")
		return placeholder(len(code) - 1)
	})
	escaped = ApplyOutsideTags(escaped, func(seg string) string {
		seg = reBold.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = wrapUnderscored(seg, "__", "strong")
		seg = reItalic.ReplaceAllString(seg, "<em>$1</em>")
		seg = wrapUnderscored(seg, "_", "em")
		return seg
	})
	for i, c := range code {
		escaped = strings.Replace(escaped, placeholder(i), c, 1)
	}
	return escaped
}

// wrapUnderscored wraps delim-enclosed text in tag. Delimiters only count
// at word boundaries, so snake_case identifiers are left alone.
func wrapUnderscored(s, delim, tag string) string {
	var b strings.Builder
	pos := 0
	for pos < len(s) {
		i := strings.Index(s[pos:], delim)
		if i < 0 {
			break
		}
		open := pos + i
		start := open + len(delim)
		j := strings.Index(s[start:], delim)
		if !isWordBoundary(s[:open], true) || j <= 0 || !isWordBoundary(s[start+j+len(delim):], false) {
			b.WriteString(s[pos:start])
			pos = start
			continue
		}
		end := start + j
		b.WriteString(s[pos:open])
		b.WriteString("<" + tag + ">" + s[start:end] + "</" + tag + ">")
		pos = end + len(delim)
	}
	b.WriteString(s[pos:])
	return b.String()
}

// isWordBoundary reports whether the rune adjacent to a delimiter is not a
// letter, digit or underscore. before selects the last rune of s, otherwise
// the first.
func isWordBoundary(s string, before bool) bool {
	if s == "" {
		return true
	}
	var r rune
	if before {
		r, _ = utf8.DecodeLastRuneInString(s)
	} else {
		r, _ = utf8.DecodeRuneInString(s)
	}
	return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func placeholder(i int) string {
	return "\x00IC" + strconv.Itoa(i) + "\x00"
}

// ApplyOutsideTags applies fn only to text between HTML tags, so attribute
// values such as href are left untouched.
func ApplyOutsideTags(s string, fn func(string) string) string {
	var buf strings.Builder
	for len(s) > 0 {
		lt := strings.Index(s, "<")
		if lt < 0 {
			buf.WriteString(fn(s))
			break
		}
		if lt > 0 {
			buf.WriteString(fn(s[:lt]))
		}
		gt := strings.Index(s[lt:], ">")
		if gt < 0 {
			buf.WriteString(s[lt:])
			break
		}
		buf.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return buf.String()
}

// SafeURL returns raw escaped for an HTML attribute, or "" when the scheme
// is not http, https, mailto or tel. Relative paths and fragments pass.
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
