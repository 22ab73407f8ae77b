package blogsite

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML configuration document from path. The file has the
// same shape as the JSON served at /api/config/.
func LoadFile(path string) (Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Configuration{}, fmt.Errorf("%w: %s", ErrConfigMissing, path)
		}
		return Configuration{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Configuration{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML configuration document.
func Parse(data []byte) (Configuration, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Configuration{}, fmt.Errorf("%w: empty document", ErrConfigMissing)
		}
		return Configuration{}, fmt.Errorf("%w: %v", ErrConfigMalformed, err)
	}
	if doc.BlogDescription == nil {
		return Configuration{}, fmt.Errorf("%w: blogDescription", ErrConfigMissing)
	}

	opts := make([]Option, 0, len(doc.SocialLinks)+len(doc.NavbarLinks))
	for _, l := range doc.SocialLinks {
		opts = append(opts, WithSocialLink(l.Icon, strings.TrimSpace(l.URL)))
	}
	for _, l := range doc.NavbarLinks {
		opts = append(opts, WithNavbarLink(strings.TrimSpace(l.Text), strings.TrimSpace(l.Href)))
	}
	return New(*doc.BlogDescription, opts...)
}

// MarshalJSON encodes c with the socialLinks/navbarLinks/blogDescription keys.
func (c Configuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.document())
}

// MarshalYAML encodes c in the format accepted by Parse.
func (c Configuration) MarshalYAML() (interface{}, error) {
	return c.document(), nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
