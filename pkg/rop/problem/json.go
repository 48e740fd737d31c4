package problem

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

var standardMembers = []string{"type", "title", "status", "detail", "instance"}

func isStandardMember(key string) bool {
	return slices.Contains(standardMembers, key)
}

// members lists the serialized members in a stable order: the standard
// ones first, then the extensions sorted by key. A zero status and empty
// strings are left out. Extensions named like a standard member are
// dropped.
func (p Problem) members() []member {
	out := make([]member, 0, 5+len(p.Extensions))
	if p.Type != "" {
		out = append(out, member{"type", p.Type})
	}
	if p.Title != "" {
		out = append(out, member{"title", p.Title})
	}
	if p.Status != 0 {
		out = append(out, member{"status", p.Status})
	}
	if p.Detail != "" {
		out = append(out, member{"detail", p.Detail})
	}
	if p.Instance != "" {
		out = append(out, member{"instance", p.Instance})
	}
	for _, k := range slices.Sorted(maps.Keys(p.Extensions)) {
		if isStandardMember(k) {
			continue
		}
		out = append(out, member{k, p.Extensions[k]})
	}
	return out
}

type member struct {
	key   string
	value any
}

// MarshalJSON writes the RFC 7807 shape with extensions as top-level
// members.
func (p Problem) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range p.members() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(m.value)
		if err != nil {
			return nil, fmt.Errorf("problem: marshal extension %q: %w", m.key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the RFC 7807 shape. An absent or null status decodes
// to 0; every unknown member becomes an extension.
func (p *Problem) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("problem: %w", err)
	}
	if raw == nil {
		*p = Problem{Extensions: map[string]any{}}
		return nil
	}
	*p = *fromMap(raw)
	return nil
}

// fromMap builds a problem out of a decoded JSON or YAML object.
func fromMap(raw map[string]any) *Problem {
	p := &Problem{Extensions: map[string]any{}}
	for k, v := range raw {
		switch k {
		case "type":
			p.Type, _ = v.(string)
		case "title":
			p.Title, _ = v.(string)
		case "detail":
			p.Detail, _ = v.(string)
		case "instance":
			p.Instance, _ = v.(string)
		case "status":
			p.Status = toInt(v)
		default:
			p.Extensions[k] = v
		}
	}
	return p
}

func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0
		}
		return int(i)
	}
	return 0
}
