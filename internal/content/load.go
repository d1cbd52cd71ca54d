package content

import (
	_ "embed"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var defaultDocument []byte

// Default returns the portfolio compiled into the binary.
func Default() (*Portfolio, error) {
	p, err := Parse(defaultDocument)
	if err != nil {
		return nil, errors.Wrap(err, "embedded portfolio")
	}
	return p, nil
}

// Load reads a portfolio document from path. An empty path selects the
// embedded default.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read portfolio %s", path)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "portfolio %s", path)
	}
	return p, nil
}

// Parse decodes and validates a portfolio document.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "parse yaml")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks that every record carries the fields its detail view needs.
func (p *Portfolio) Validate() error {
	if blank(p.Profile.Name) {
		return errors.New("profile: name is required")
	}
	for i, pr := range p.Projects {
		if blank(pr.Title) {
			return errors.Errorf("projects[%d]: title is required", i)
		}
	}
	for i, e := range p.Experience {
		if blank(e.Role) || blank(e.Organization) {
			return errors.Errorf("experience[%d]: role and company are required", i)
		}
	}
	for i, s := range p.Skills {
		if blank(s) {
			return errors.Errorf("skills[%d]: label is required", i)
		}
	}
	for i, ed := range p.Education {
		if blank(ed.Institution) {
			return errors.Errorf("education[%d]: school is required", i)
		}
	}
	for i, h := range p.Honors {
		if blank(h.Title) {
			return errors.Errorf("honors[%d]: title is required", i)
		}
		if h.Description == nil {
			return errors.Errorf("honors[%d]: desc is required", i)
		}
	}
	for i, c := range p.Certifications {
		if blank(c.Title) {
			return errors.Errorf("certifications[%d]: title is required", i)
		}
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
