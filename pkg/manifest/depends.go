package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Depends is a list of dependency names that accepts a single name as
// shorthand for a one-element list in both TOML and YAML documents.
type Depends []string

// UnmarshalTOML decodes a string or an array of strings.
func (d *Depends) UnmarshalTOML(v any) error {
	switch val := v.(type) {
	case string:
		*d = Depends{val}
		return nil
	case []any:
		names := make(Depends, 0, len(val))
		for _, item := range val {
			name, ok := item.(string)
			if !ok {
				return fmt.Errorf("depends entries must be strings, got %T", item)
			}
			names = append(names, name)
		}
		*d = names
		return nil
	}
	return fmt.Errorf("depends must be a string or a list of strings, got %T", v)
}

// UnmarshalYAML decodes a scalar or a sequence of scalars.
func (d *Depends) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}
		*d = Depends{name}
		return nil
	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return err
		}
		*d = names
		return nil
	}
	return fmt.Errorf("depends must be a string or a list of strings")
}
