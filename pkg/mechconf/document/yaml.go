package document

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

// DecodeYAML decodes YAML text into a document tree. Only the first
// document of a multi-document stream is read.
func DecodeYAML(data []byte, source string) (*Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &SyntaxError{
			Encoding: EncodingYAML,
			Location: yamlErrorLocation(err, source),
			Message:  strings.TrimPrefix(err.Error(), "yaml: "),
		}
	}

	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, &SyntaxError{
			Encoding: EncodingYAML,
			Location: Location{File: source, Line: 1, Column: 1},
			Message:  "empty document",
		}
	}

	c := &yamlConverter{source: source}
	return c.convert(root.Content[0], 0)
}

type yamlConverter struct {
	source string
}

func (c *yamlConverter) location(n *yaml.Node) Location {
	return Location{File: c.source, Line: n.Line, Column: n.Column}
}

func (c *yamlConverter) convert(n *yaml.Node, depth int) (*Node, error) {
	if depth > MaxDepth {
		return nil, &SyntaxError{
			Encoding: EncodingYAML,
			Location: c.location(n),
			Message:  fmt.Sprintf("document nesting exceeds %d levels", MaxDepth),
		}
	}

	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, &SyntaxError{Encoding: EncodingYAML, Location: c.location(n), Message: "unresolved alias"}
		}
		resolved, err := c.convert(n.Alias, depth+1)
		if err != nil {
			return nil, err
		}
		resolved.Location = c.location(n)
		return resolved, nil

	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return &Node{Kind: KindNull, Location: c.location(n)}, nil
		}
		return c.convert(n.Content[0], depth)

	case yaml.MappingNode:
		out := &Node{Kind: KindMapping, Location: c.location(n), Pairs: make([]Pair, 0, len(n.Content)/2)}
		seen := make(map[string]bool, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valueNode := n.Content[i], n.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, &SyntaxError{Encoding: EncodingYAML, Location: c.location(keyNode), Message: "mapping keys must be scalars"}
			}
			if seen[keyNode.Value] {
				return nil, &SyntaxError{
					Encoding: EncodingYAML,
					Location: c.location(keyNode),
					Message:  fmt.Sprintf("duplicate key %q", keyNode.Value),
				}
			}
			seen[keyNode.Value] = true

			value, err := c.convert(valueNode, depth+1)
			if err != nil {
				return nil, err
			}
			out.Pairs = append(out.Pairs, Pair{
				Key:         keyNode.Value,
				KeyLocation: c.location(keyNode),
				Value:       value,
			})
		}
		return out, nil

	case yaml.SequenceNode:
		out := &Node{Kind: KindSequence, Location: c.location(n), Items: make([]*Node, 0, len(n.Content))}
		for _, item := range n.Content {
			value, err := c.convert(item, depth+1)
			if err != nil {
				return nil, err
			}
			out.Items = append(out.Items, value)
		}
		return out, nil

	case yaml.ScalarNode:
		return c.scalar(n)

	default:
		return nil, &SyntaxError{
			Encoding: EncodingYAML,
			Location: c.location(n),
			Message:  fmt.Sprintf("unsupported node kind %d", n.Kind),
		}
	}
}

func (c *yamlConverter) scalar(n *yaml.Node) (*Node, error) {
	out := &Node{Value: n.Value, Location: c.location(n)}

	switch n.ShortTag() {
	case "!!null":
		out.Kind = KindNull
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, &SyntaxError{Encoding: EncodingYAML, Location: out.Location, Message: err.Error()}
		}
		out.Kind = KindBool
		out.Bool = b
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, &SyntaxError{Encoding: EncodingYAML, Location: out.Location, Message: err.Error()}
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &SyntaxError{Encoding: EncodingYAML, Location: out.Location, Message: nonFiniteMessage(n.Value)}
		}
		out.Kind = KindNumber
		out.Number = f
	default:
		// yaml.v3 resolves a plain literal such as 1e400 to a string when
		// it overflows a float64.
		if n.Style == 0 && n.ShortTag() == "!!str" && overflows(n.Value) {
			return nil, &SyntaxError{Encoding: EncodingYAML, Location: out.Location, Message: outOfRangeMessage(n.Value)}
		}
		out.Kind = KindString
	}

	return out, nil
}

// yamlErrorLocation recovers the line number yaml.v3 embeds in its error
// text ("yaml: line 3: ...").
func yamlErrorLocation(err error, source string) Location {
	loc := Location{File: source, Line: 1, Column: 1}
	if m := yamlLinePattern.FindStringSubmatch(err.Error()); m != nil {
		if line, convErr := strconv.Atoi(m[1]); convErr == nil {
			loc.Line = line
		}
	}
	return loc
}
