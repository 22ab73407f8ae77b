package blogsite

// site is built once at package initialization and never modified.
var site = MustNew(
	"I write tech articles about my side-projects",
	WithSocialLink(IconTwitter, "https://twitter.com/rishabk7"),
	WithSocialLink(IconLinkedIn, "https://linkedin.com/in/rishabkumar7"),
	WithSocialLink(IconGitHub, "https://github.com/rishabkumar7"),
	WithNavbarLink("Portfolio", "https://rishabkumar.com"),
)

// Default returns the site configuration compiled into the binary.
// Every call returns the same content.
func Default() Configuration {
	return site
}
