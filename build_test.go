package blogsite

import (
	"errors"
	"testing"
)

func TestNewPreservesOrder(t *testing.T) {
	cfg, err := New("notes",
		WithSocialLink(IconTwitter, "https://twitter.com/a"),
		WithSocialLink(IconGitHub, "https://github.com/a"),
		WithNavbarLink("Portfolio", "https://example.com"),
		WithNavbarLink("LinkedIN", "https://linkedin.com/in/a"),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	social := cfg.SocialLinks()
	if social[0].Icon != IconTwitter || social[1].Icon != IconGitHub {
		t.Errorf("social order = %v, %v", social[0].Icon, social[1].Icon)
	}
	nav := cfg.NavbarLinks()
	if nav[0].Text != "Portfolio" || nav[1].Text != "LinkedIN" {
		t.Errorf("navbar order = %q, %q", nav[0].Text, nav[1].Text)
	}
}

func TestNewAllowsEmpty(t *testing.T) {
	cfg, err := New("")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if len(cfg.SocialLinks()) != 0 || len(cfg.NavbarLinks()) != 0 || cfg.BlogDescription() != "" {
		t.Errorf("expected empty configuration, got %+v", cfg)
	}
}

func TestNewRejectsInvalidLinks(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"relative social url", WithSocialLink(IconGitHub, "/github")},
		{"empty social url", WithSocialLink(IconGitHub, "")},
		{"non-http scheme", WithSocialLink(IconGitHub, "ftp://github.com/a")},
		{"missing host", WithSocialLink(IconGitHub, "https://")},
		{"unsupported icon", WithSocialLink(Icon(99), "https://example.com")},
		{"zero icon", WithSocialLink(Icon(0), "https://example.com")},
		{"empty navbar text", WithNavbarLink("", "https://example.com")},
		{"blank navbar text", WithNavbarLink("   ", "https://example.com")},
		{"placeholder href", WithNavbarLink("Link 3", "#")},
		{"padded social url", WithSocialLink(IconGitHub, " https://github.com/x\n")},
		{"tab before navbar href", WithNavbarLink("Portfolio", "\thttps://example.com")},
		{"control character in url", WithSocialLink(IconGitHub, "https://github.com/a\x7fb")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("desc", tt.opt)
			if !errors.Is(err, ErrConfigMalformed) {
				t.Fatalf("err = %v, want ErrConfigMalformed", err)
			}
		})
	}
}

func TestMustNewPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustNew("desc", WithNavbarLink("", "https://example.com"))
}

func TestIsAbsoluteURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://rishabkumar.com", true},
		{"http://localhost:3000/", true},
		{"HTTPS://GITHUB.COM/x", true},
		{"rishabkumar.com", false},
		{"mailto:me@example.com", false},
		{"#", false},
		{" https://example.com", false},
		{"https://example.com\n", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isAbsoluteURL(tt.input); got != tt.want {
			t.Errorf("isAbsoluteURL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
