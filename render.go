package blogsite

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/rishabkumar7/blogsite/markdown"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// Navbar renders the navigation entries in configured order.
func Navbar(cfg Configuration) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		sw := &stickyWriter{w: w}
		sw.write(`<nav class="navbar"><ul>`)
		for _, l := range cfg.NavbarLinks() {
			sw.write(`<li><a href="`, templ.EscapeString(l.Href), `">`, templ.EscapeString(l.Text), `</a></li>`)
		}
		sw.write(`</ul></nav>`)
		return sw.err
	})
}

// SocialLinks renders one icon button per social link, left to right.
func SocialLinks(cfg Configuration) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		sw := &stickyWriter{w: w}
		sw.write(`<ul class="social-links">`)
		for _, l := range cfg.SocialLinks() {
			sw.write(
				`<li><a href="`, templ.EscapeString(l.URL),
				`" target="_blank" rel="noopener noreferrer" aria-label="`, templ.EscapeString(l.Icon.Label()),
				`"><i class="`, l.Icon.Class(), `" aria-hidden="true"></i></a></li>`,
			)
		}
		sw.write(`</ul>`)
		return sw.err
	})
}

// Tagline renders the blog description. Inline markdown is honoured.
func Tagline(cfg Configuration) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<p class="tagline">`); err != nil {
			return err
		}
		if err := markdown.Inline(cfg.BlogDescription()).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</p>`)
		return err
	})
}

// FontAwesomeCSS is the stylesheet that provides the brand icon classes
// emitted by SocialLinks.
const FontAwesomeCSS = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.2/css/all.min.css"

// Page renders the full home page. Icons come from FontAwesomeCSS; site
// styles are expected at /public/styles.css.
func Page(sc SiteConfig, cfg Configuration) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		sw := &stickyWriter{w: w}
		sw.write(
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`, templ.EscapeString(sc.Name), `</title>`,
			`<meta name="description" content="`, templ.EscapeString(cfg.BlogDescription()), `">`,
			`<meta property="og:title" content="`, templ.EscapeString(sc.Name), `">`,
			`<meta property="og:description" content="`, templ.EscapeString(cfg.BlogDescription()), `">`,
			`<meta property="og:url" content="`, templ.EscapeString(BuildURL(sc.URL)), `">`,
			`<meta property="og:type" content="website">`,
			`<link rel="stylesheet" href="`, FontAwesomeCSS, `" crossorigin="anonymous" referrerpolicy="no-referrer">`,
			`<link rel="stylesheet" href="/public/styles.css">`,
			`<script type="application/ld+json">`, WebsiteJsonLD(sc, cfg), `</script>`,
			`</head><body><header>`,
		)
		if sw.err != nil {
			return sw.err
		}
		for _, part := range []templ.Component{Navbar(cfg), Tagline(cfg)} {
			if err := part.Render(ctx, w); err != nil {
				return err
			}
		}
		sw.write(`</header><footer>`)
		if sw.err != nil {
			return sw.err
		}
		if err := SocialLinks(cfg).Render(ctx, w); err != nil {
			return err
		}
		sw.write(`</footer></body></html>`)
		return sw.err
	})
}

// ErrorPage renders a minimal page for 404 and 5xx responses.
func ErrorPage(sc SiteConfig, code int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		sw := &stickyWriter{w: w}
		text := http.StatusText(code)
		sw.write(
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`,
			templ.EscapeString(text), ` | `, templ.EscapeString(sc.Name),
			`</title></head><body><h1>`, templ.EscapeString(text), `</h1><a href="/">Home</a></body></html>`,
		)
		return sw.err
	})
}

// stickyWriter keeps the first write error and skips later writes.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) write(parts ...string) {
	for _, p := range parts {
		if s.err != nil {
			return
		}
		_, s.err = io.WriteString(s.w, p)
	}
}
