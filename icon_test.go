package blogsite

import (
	"errors"
	"testing"
)

func TestParseIcon(t *testing.T) {
	tests := []struct {
		input string
		want  Icon
	}{
		{"twitter", IconTwitter},
		{"GitHub", IconGitHub},
		{" linkedin ", IconLinkedIn},
		{"faTwitter", IconTwitter},
		{"faGithub", IconGitHub},
		{"faLinkedin", IconLinkedIn},
		{"dev", IconDevTo},
		{"hashnode", IconHashnode},
	}
	for _, tt := range tests {
		got, err := ParseIcon(tt.input)
		if err != nil {
			t.Errorf("ParseIcon(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseIcon(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseIconUnknown(t *testing.T) {
	for _, in := range []string{"", "fa", "myspace", "faMyspace"} {
		if _, err := ParseIcon(in); !errors.Is(err, ErrUnknownIcon) {
			t.Errorf("ParseIcon(%q) err = %v, want ErrUnknownIcon", in, err)
		}
	}
}

func TestIconClassAndLabel(t *testing.T) {
	if got := IconGitHub.Class(); got != "fa-brands fa-github" {
		t.Errorf("Class = %q", got)
	}
	if got := IconLinkedIn.Label(); got != "LinkedIn" {
		t.Errorf("Label = %q", got)
	}
	if got := Icon(200).Class(); got != "" {
		t.Errorf("Class of invalid icon = %q, want empty", got)
	}
}

func TestIconTextRoundTrip(t *testing.T) {
	b, err := IconTwitter.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	var ic Icon
	if err := ic.UnmarshalText(b); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if ic != IconTwitter {
		t.Errorf("round trip gave %v", ic)
	}
	if _, err := Icon(0).MarshalText(); err == nil {
		t.Error("expected error marshaling the zero Icon")
	}
}
