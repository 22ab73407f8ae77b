package blogsite

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Option adds content to a Configuration under construction.
type Option func(*Configuration)

// WithSocialLink appends a social link. Links render in the order added.
func WithSocialLink(icon Icon, rawURL string) Option {
	return func(c *Configuration) {
		c.socialLinks = append(c.socialLinks, SocialLink{Icon: icon, URL: rawURL})
	}
}

// WithNavbarLink appends a navbar entry. Entries render in the order added.
func WithNavbarLink(text, href string) Option {
	return func(c *Configuration) {
		c.navbarLinks = append(c.navbarLinks, NavbarLink{Text: text, Href: href})
	}
}

// New builds and validates a Configuration. Every link must carry an
// absolute http(s) URL, every navbar entry a label, every social link a
// supported icon. Validation failures wrap ErrConfigMalformed.
func New(description string, opts ...Option) (Configuration, error) {
	c := Configuration{blogDescription: description}
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.validate(); err != nil {
		return Configuration{}, err
	}
	return c, nil
}

// MustNew is like New but panics on invalid input. It is meant for
// configuration literals compiled into the binary.
func MustNew(description string, opts ...Option) Configuration {
	c, err := New(description, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	registerCustomValidations(v)
	return v
}

func registerCustomValidations(v *validator.Validate) {
	if err := v.RegisterValidation("absurl", validateAbsoluteURL); err != nil {
		panic("blogsite: failed to register absurl validation: " + err.Error())
	}
	if err := v.RegisterValidation("icon", validateIcon); err != nil {
		panic("blogsite: failed to register icon validation: " + err.Error())
	}
}

func validateAbsoluteURL(fl validator.FieldLevel) bool {
	return isAbsoluteURL(fl.Field().String())
}

func validateIcon(fl validator.FieldLevel) bool {
	ic, ok := fl.Field().Interface().(Icon)
	return ok && ic.Valid()
}

// isAbsoluteURL accepts http and https URLs with a host. Surrounding
// whitespace is rejected, not trimmed: the value is stored as given.
func isAbsoluteURL(raw string) bool {
	if raw == "" || strings.TrimSpace(raw) != raw {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return true
	default:
		return false
	}
}

func (c Configuration) validate() error {
	for i, l := range c.socialLinks {
		if err := validate.Struct(l); err != nil {
			return fmt.Errorf("%w: socialLinks[%d]: %s", ErrConfigMalformed, i, describe(err))
		}
	}
	for i, l := range c.navbarLinks {
		if strings.TrimSpace(l.Text) == "" {
			return fmt.Errorf("%w: navbarLinks[%d]: text is empty", ErrConfigMalformed, i)
		}
		if err := validate.Struct(l); err != nil {
			return fmt.Errorf("%w: navbarLinks[%d]: %s", ErrConfigMalformed, i, describe(err))
		}
	}
	return nil
}

// describe flattens validator errors into "field rule" pairs.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s fails %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
