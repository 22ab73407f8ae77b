package blogsite

import "slices"

// SocialLink is a brand icon linking to a profile page.
type SocialLink struct {
	Icon Icon   `json:"icon" yaml:"icon" validate:"icon"`
	URL  string `json:"url" yaml:"url" validate:"required,absurl"`
}

// NavbarLink is a labelled navigation entry.
type NavbarLink struct {
	Text string `json:"text" yaml:"text" validate:"required"`
	Href string `json:"href" yaml:"href" validate:"required,absurl"`
}

// Configuration is the site-wide content shown by the navbar, the footer
// social icons and the tagline. A Configuration is read-only once built:
// accessors hand out copies, so one value can be shared by any number of
// goroutines.
type Configuration struct {
	socialLinks     []SocialLink
	navbarLinks     []NavbarLink
	blogDescription string
}

// SocialLinks returns the social links in display order.
func (c Configuration) SocialLinks() []SocialLink {
	return slices.Clone(c.socialLinks)
}

// NavbarLinks returns the navbar links in display order.
func (c Configuration) NavbarLinks() []NavbarLink {
	return slices.Clone(c.navbarLinks)
}

// BlogDescription returns the tagline.
func (c Configuration) BlogDescription() string {
	return c.blogDescription
}

// WithBlogDescription returns a copy of c with the tagline replaced.
// c itself is left unchanged.
func (c Configuration) WithBlogDescription(desc string) Configuration {
	return Configuration{
		socialLinks:     c.SocialLinks(),
		navbarLinks:     c.NavbarLinks(),
		blogDescription: desc,
	}
}

// Equal reports whether c and o carry the same content.
func (c Configuration) Equal(o Configuration) bool {
	return c.blogDescription == o.blogDescription &&
		slices.Equal(c.socialLinks, o.socialLinks) &&
		slices.Equal(c.navbarLinks, o.navbarLinks)
}

// document is the serialized shape of a Configuration, shared by the YAML
// loader and the JSON/YAML marshalers.
type document struct {
	SocialLinks     []SocialLink `json:"socialLinks" yaml:"socialLinks"`
	NavbarLinks     []NavbarLink `json:"navbarLinks" yaml:"navbarLinks"`
	BlogDescription *string      `json:"blogDescription" yaml:"blogDescription"`
}

func (c Configuration) document() document {
	desc := c.blogDescription
	social := c.SocialLinks()
	if social == nil {
		social = []SocialLink{}
	}
	nav := c.NavbarLinks()
	if nav == nil {
		nav = []NavbarLink{}
	}
	return document{
		SocialLinks:     social,
		NavbarLinks:     nav,
		BlogDescription: &desc,
	}
}
