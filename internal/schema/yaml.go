package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// extractYAML walks the document tree for the same nesting the Go frontend
// matches: a mapping that is the value of some key, holding a "Tables" key
// whose value is again a mapping. That inner mapping's scalar keys are the
// table names, in document order. A Tables key at the document root has no
// enclosing declaration and does not match.
func extractYAML(src []byte) ([]string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(src, &root); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	var tables []string
	var walk func(n *yaml.Node, enclosed bool)
	walk = func(n *yaml.Node, enclosed bool) {
		switch n.Kind {
		case yaml.DocumentNode:
			for _, c := range n.Content {
				walk(c, false)
			}
		case yaml.MappingNode:
			for i := 0; i+1 < len(n.Content); i += 2 {
				key, val := n.Content[i], n.Content[i+1]
				if enclosed && key.Value == "Tables" && val.Kind == yaml.MappingNode {
					for j := 0; j+1 < len(val.Content); j += 2 {
						if val.Content[j].Kind == yaml.ScalarNode {
							tables = append(tables, val.Content[j].Value)
						}
					}
					continue
				}
				walk(val, true)
			}
		case yaml.SequenceNode:
			for _, c := range n.Content {
				walk(c, enclosed)
			}
		}
	}
	walk(&root, false)
	return tables, nil
}
