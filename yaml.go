package dyml

import (
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/KimNorgaard/go-dyml/scalar"
)

// MarshalYAML converts the subtree of n to standard YAML.
//
// Keyed children become mappings (the first of duplicate keys wins), keyless
// children and sequence items become sequences, and a compact item becomes a
// mapping of the lines it groups. Leaf values are typed where the text reads
// as an integer, a float, a boolean or an inline [a, b] array, and are
// strings otherwise. A node with both a value and children keeps only its
// children.
func (n Node) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(yamlValue(n))
}

// MarshalYAML converts the whole document to standard YAML.
func (d *Document) MarshalYAML() ([]byte, error) {
	return d.Root().MarshalYAML()
}

func yamlValue(n Node) any {
	if n.Children() == 0 {
		if !n.HasValue() {
			return nil
		}
		return yamlScalar(n.Value())
	}
	first := n.At(0)
	if first.IsItem() || !first.HasKey() {
		groups := entries(n)
		seq := make([]any, len(groups))
		for i, g := range groups {
			if len(g) == 1 && !g[0].HasKey() {
				seq[i] = yamlValue(g[0])
				continue
			}
			seq[i] = yamlMapping(g)
		}
		return seq
	}
	return yamlMapping(children(n))
}

func yamlMapping(kids []Node) yaml.MapSlice {
	m := make(yaml.MapSlice, 0, len(kids))
	seen := make(map[string]bool, len(kids))
	for _, c := range kids {
		k := c.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		m = append(m, yaml.MapItem{Key: k, Value: yamlValue(c)})
	}
	return m
}

func yamlScalar(text string) any {
	if parts, err := scalar.SplitList(text); err == nil {
		out := make([]any, len(parts))
		for i, p := range parts {
			out[i] = yamlScalar(p)
		}
		return out
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil && strings.ContainsAny(text, "0123456789") {
		return f
	}
	switch text {
	case "true":
		return true
	case "false":
		return false
	}
	return scalar.Unquote(text)
}
