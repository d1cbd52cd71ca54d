// Package content holds the portfolio records shown by every front end.
//
// Content is decoded once at startup from a YAML document (the embedded default
// or a file named by CONTENT_PATH) and is read-only afterwards.
package content

import (
	"strings"
)

// Portfolio is the complete set of static collections plus the owner profile.
type Portfolio struct {
	Profile        Profile         `yaml:"profile"`
	Projects       []Project       `yaml:"projects"`
	Experience     []Experience    `yaml:"experience"`
	Skills         []string        `yaml:"skills"`
	Education      []Education     `yaml:"education"`
	Honors         []Honor         `yaml:"honors"`
	Certifications []Certification `yaml:"certifications"`
}

// Profile describes the portfolio owner for the hero section and metadata.
type Profile struct {
	Name     string `yaml:"name"`
	Headline string `yaml:"headline"`
	About    string `yaml:"about"`
	Location string `yaml:"location"`
	Email    string `yaml:"email"`
	LinkedIn string `yaml:"linkedin"`
	Resume   string `yaml:"resume"`
	BaseURL  string `yaml:"base_url"`
}

// FirstName returns the first word of the profile name.
func (p Profile) FirstName() string {
	fields := strings.Fields(p.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

type Project struct {
	Title    string   `yaml:"title"`
	Tags     []string `yaml:"tags"`
	Problem  string   `yaml:"problem"`
	Approach string   `yaml:"approach"`
	Outcomes []string `yaml:"outcomes"`
}

type Experience struct {
	Role         string   `yaml:"role"`
	Organization string   `yaml:"company"`
	Dates        string   `yaml:"dates"`
	Location     string   `yaml:"location"`
	Problem      string   `yaml:"problem"`
	Approach     string   `yaml:"approach"`
	Outcomes     []string `yaml:"outcomes"`
}

type Education struct {
	Institution string `yaml:"school"`
	Program     string `yaml:"degree"`
	Dates       string `yaml:"dates"`
	Details     string `yaml:"details"`
}

// Honor is an award or activity. Description is never nil after loading.
type Honor struct {
	Title        string
	Organization string
	Description  Description
}

// Certification is a completed course or credential. Every field after
// Organization is optional; Description is nil when absent.
type Certification struct {
	Title        string
	Organization string
	Date         string
	CredentialID string
	VerifyURL    string
	Tags         []string
	Description  Description
}
