package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func validate(s *Suite) error {
	if len(s.Cases) == 0 {
		return fmt.Errorf("suite has no cases")
	}
	if s.Name == "" {
		s.Name = "unnamed"
	}

	seen := make(map[string]bool, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("case-%d", i+1)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate case name %q", c.Name)
		}
		seen[c.Name] = true

		switch {
		case c.Want != nil && c.Error != "":
			return fmt.Errorf("case %q sets both want and error", c.Name)
		case c.Want == nil && c.Error == "":
			return fmt.Errorf("case %q sets neither want nor error", c.Name)
		}

		if c.Error != "" && c.Error != ErrorMalformed && c.Error != ErrorOverflow {
			return fmt.Errorf("case %q has invalid error kind %q", c.Name, c.Error)
		}
	}
	return nil
}
