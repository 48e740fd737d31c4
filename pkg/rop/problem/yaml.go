package problem

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML emits the same members and order as MarshalJSON.
func (p Problem) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, m := range p.members() {
		var value yaml.Node
		if err := value.Encode(m.value); err != nil {
			return nil, fmt.Errorf("problem: marshal extension %q: %w", m.key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.key},
			&value)
	}
	return node, nil
}

func (p *Problem) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("problem: %w", err)
	}
	if raw == nil {
		*p = Problem{Extensions: map[string]any{}}
		return nil
	}
	*p = *fromMap(raw)
	return nil
}
