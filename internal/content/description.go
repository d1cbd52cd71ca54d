package content

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Description is free text attached to an honor or certification. It is
// either a single Text block or an ordered List of entries.
type Description interface {
	description()
}

// Text is a single paragraph description.
type Text string

// List is an ordered description; order is preserved for rendering.
type List []string

func (Text) description() {}
func (List) description() {}

// decodeDescription maps a YAML scalar to Text and a sequence to List. A
// missing or null node yields nil.
func decodeDescription(node *yaml.Node) (Description, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
		var s string
		if err := node.Decode(&s); err != nil {
			return nil, errors.Wrapf(err, "line %d: decode description text", node.Line)
		}
		return Text(s), nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return nil, errors.Wrapf(err, "line %d: decode description list", node.Line)
		}
		return List(items), nil
	default:
		return nil, errors.Errorf("line %d: description must be a string or a list of strings", node.Line)
	}
}

// UnmarshalYAML decodes an honor, accepting either description form.
func (h *Honor) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Title        string    `yaml:"title"`
		Organization string    `yaml:"org"`
		Desc         yaml.Node `yaml:"desc"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	desc, err := decodeDescription(&raw.Desc)
	if err != nil {
		return err
	}

	*h = Honor{
		Title:        raw.Title,
		Organization: raw.Organization,
		Description:  desc,
	}
	return nil
}

// UnmarshalYAML decodes a certification, accepting either description form.
func (c *Certification) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Title        string    `yaml:"title"`
		Organization string    `yaml:"org"`
		Date         string    `yaml:"date"`
		CredentialID string    `yaml:"credential_id"`
		VerifyURL    string    `yaml:"verify_url"`
		Tags         []string  `yaml:"tags"`
		Desc         yaml.Node `yaml:"desc"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	desc, err := decodeDescription(&raw.Desc)
	if err != nil {
		return err
	}

	*c = Certification{
		Title:        raw.Title,
		Organization: raw.Organization,
		Date:         raw.Date,
		CredentialID: raw.CredentialID,
		VerifyURL:    raw.VerifyURL,
		Tags:         raw.Tags,
		Description:  desc,
	}
	return nil
}
