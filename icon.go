package blogsite

import (
	"fmt"
	"strings"
)

// Icon identifies a supported brand icon. The set is closed: values outside
// the declared constants are rejected when a Configuration is built.
type Icon uint8

const (
	iconInvalid Icon = iota
	IconTwitter
	IconGitHub
	IconLinkedIn
	IconMastodon
	IconYouTube
	IconInstagram
	IconDevTo
	IconHashnode
)

type iconInfo struct {
	name  string // identifier used in config files, e.g. "twitter"
	label string // human-readable brand name
	class string // Font Awesome class suffix
}

var icons = map[Icon]iconInfo{
	IconTwitter:   {name: "twitter", label: "Twitter", class: "twitter"},
	IconGitHub:    {name: "github", label: "GitHub", class: "github"},
	IconLinkedIn:  {name: "linkedin", label: "LinkedIn", class: "linkedin"},
	IconMastodon:  {name: "mastodon", label: "Mastodon", class: "mastodon"},
	IconYouTube:   {name: "youtube", label: "YouTube", class: "youtube"},
	IconInstagram: {name: "instagram", label: "Instagram", class: "instagram"},
	IconDevTo:     {name: "dev", label: "DEV", class: "dev"},
	IconHashnode:  {name: "hashnode", label: "Hashnode", class: "hashnode"},
}

// ParseIcon resolves an icon identifier. Matching is case-insensitive and
// accepts both the plain name ("github") and the Font Awesome export name
// ("faGithub").
func ParseIcon(s string) (Icon, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(key, "fa") && len(key) > 2 {
		if _, ok := lookupIcon(key); !ok {
			key = key[2:]
		}
	}
	if ic, ok := lookupIcon(key); ok {
		return ic, nil
	}
	return iconInvalid, fmt.Errorf("%w: %q", ErrUnknownIcon, s)
}

func lookupIcon(name string) (Icon, bool) {
	for ic, info := range icons {
		if info.name == name {
			return ic, true
		}
	}
	return iconInvalid, false
}

// Valid reports whether ic belongs to the supported set.
func (ic Icon) Valid() bool {
	_, ok := icons[ic]
	return ok
}

func (ic Icon) String() string {
	if info, ok := icons[ic]; ok {
		return info.name
	}
	return fmt.Sprintf("Icon(%d)", uint8(ic))
}

// Label returns the brand name, used for aria-labels.
func (ic Icon) Label() string {
	return icons[ic].label
}

// Class returns the Font Awesome CSS classes for the icon.
func (ic Icon) Class() string {
	info, ok := icons[ic]
	if !ok {
		return ""
	}
	return "fa-brands fa-" + info.class
}

func (ic Icon) MarshalText() ([]byte, error) {
	if !ic.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownIcon, uint8(ic))
	}
	return []byte(ic.String()), nil
}

func (ic *Icon) UnmarshalText(text []byte) error {
	parsed, err := ParseIcon(string(text))
	if err != nil {
		return err
	}
	*ic = parsed
	return nil
}
