// Package content holds the portfolio's static content.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var defaultProfile []byte

var (
	// ErrNoName is returned when a profile has no name.
	ErrNoName = errors.New("profile has no name")
	// ErrNoPhrases is returned when a profile has no typewriter phrases.
	ErrNoPhrases = errors.New("profile has no phrases")
)

// Profile is everything the portfolio page renders.
type Profile struct {
	Name       string    `yaml:"name" json:"name"`
	Initials   string    `yaml:"initials" json:"initials"`
	Tagline    string    `yaml:"tagline" json:"tagline"`
	Footer     string    `yaml:"footer" json:"footer"`
	ResumePath string    `yaml:"resume" json:"resume"`
	Phrases    []string  `yaml:"phrases" json:"phrases"`
	About      []string  `yaml:"about" json:"about"`
	Projects   []Project `yaml:"projects" json:"projects"`
	Leadership []Role    `yaml:"leadership" json:"leadership"`
	Contact    Contact   `yaml:"contact" json:"contact"`
}

// Project is one showcase card.
type Project struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Image       string   `yaml:"image" json:"image"`
	Tags        []string `yaml:"tags" json:"tags"`
}

// Role is one leadership entry.
type Role struct {
	Org         string `yaml:"org" json:"org"`
	Role        string `yaml:"role" json:"role"`
	Description string `yaml:"description" json:"description"`
}

// Contact lists the ways to get in touch.
type Contact struct {
	Email    string `yaml:"email" json:"email"`
	GitHub   string `yaml:"github" json:"github"`
	LinkedIn string `yaml:"linkedin" json:"linkedin"`
}

// Link is a labeled contact target.
type Link struct {
	Label string
	Href  string
}

// Links returns the non-empty contact links in display order.
func (c Contact) Links() []Link {
	var links []Link
	if c.Email != "" {
		links = append(links, Link{Label: "Email", Href: "mailto:" + c.Email})
	}
	if c.GitHub != "" {
		links = append(links, Link{Label: "GitHub", Href: c.GitHub})
	}
	if c.LinkedIn != "" {
		links = append(links, Link{Label: "LinkedIn", Href: c.LinkedIn})
	}
	return links
}

// Default returns the built-in profile.
func Default() Profile {
	p, err := decode(defaultProfile)
	if err != nil {
		panic(fmt.Sprintf("embedded profile is invalid: %v", err))
	}
	return p
}

// Load reads a profile from a YAML file. An empty path returns Default.
func Load(path string) (Profile, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}

	p, err := decode(data)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to decode profile %s: %w", path, err)
	}
	return p, nil
}

func decode(data []byte) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks the fields every host relies on.
func (p Profile) Validate() error {
	if p.Name == "" {
		return ErrNoName
	}
	if len(p.Phrases) == 0 {
		return ErrNoPhrases
	}
	return nil
}
