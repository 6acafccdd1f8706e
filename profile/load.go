package profile

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/jsphweid/articulex/model"
	"gopkg.in/yaml.v3"
)

type document struct {
	Name     string                                `yaml:"name"`
	Patterns map[string]model.ArticulationPattern `yaml:"patterns"`
}

// Parse reads a YAML profile:
//
//	name: strings
//	patterns:
//	  staccato:
//	    - {position: 0, amplitude: 0.1, duration_factor: 0.5}
func Parse(data []byte) (*Profile, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding profile")
	}

	p := New(doc.Name)
	for name, pattern := range doc.Patterns {
		t, ok := model.ParseArticulationType(name)
		if !ok || t == model.Undefined {
			return nil, errors.WithHint(
				errors.Newf("profile %q: unknown articulation type %q", doc.Name, name),
				"type names are snake_case, e.g. tremolo_8th or left_hand_tapping")
		}
		if err := ValidatePattern(pattern); err != nil {
			return nil, errors.Wrapf(err, "profile %q: pattern %s", doc.Name, name)
		}
		p.Set(t, pattern)
	}
	return p, nil
}

func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading profile %s", path)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading profile %s", path)
	}
	if p.Name == "" {
		p.Name = path
	}
	return p, nil
}

// ValidatePattern checks that every point sits inside the directive's timeline.
func ValidatePattern(pattern model.ArticulationPattern) error {
	for i, pt := range pattern {
		if pt.Position < 0 || pt.Position > 1 {
			return errors.Newf("point %d: position %v outside [0, 1]", i, pt.Position)
		}
	}
	return nil
}

// Marshal writes p in the YAML form Parse reads.
func Marshal(p *Profile) ([]byte, error) {
	doc := document{Name: p.Name, Patterns: make(map[string]model.ArticulationPattern, len(p.patterns))}
	for t, pattern := range p.patterns {
		doc.Patterns[t.String()] = pattern
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding profile %q", p.Name)
	}
	return data, nil
}
