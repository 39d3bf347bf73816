package document

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the shape of a document node.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

// String returns the name used for a kind in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Pair is one key/value entry of a mapping node. Pairs keep document order.
type Pair struct {
	Key         string
	KeyLocation Location
	Value       *Node
}

// Node is a generic document tree node.
//
// Scalars keep their source text in Value; numbers additionally carry the
// parsed float in Number. Sequences use Items and mappings use Pairs.
type Node struct {
	Kind     Kind
	Value    string
	Number   float64
	Bool     bool
	Items    []*Node
	Pairs    []Pair
	Location Location
}

// Get returns the value stored under key, or nil if the node is not a
// mapping or the key is absent.
func (n *Node) Get(key string) *Node {
	if n == nil || n.Kind != KindMapping {
		return nil
	}
	for i := range n.Pairs {
		if n.Pairs[i].Key == key {
			return n.Pairs[i].Value
		}
	}
	return nil
}

// Has reports whether a mapping node contains key.
func (n *Node) Has(key string) bool {
	return n.Get(key) != nil
}

// Pair returns the mapping entry for key.
func (n *Node) Pair(key string) (Pair, bool) {
	if n == nil || n.Kind != KindMapping {
		return Pair{}, false
	}
	for _, p := range n.Pairs {
		if p.Key == key {
			return p, true
		}
	}
	return Pair{}, false
}

// Keys returns the mapping keys in document order.
func (n *Node) Keys() []string {
	if n == nil || n.Kind != KindMapping {
		return nil
	}
	keys := make([]string, len(n.Pairs))
	for i, p := range n.Pairs {
		keys[i] = p.Key
	}
	return keys
}

// Len returns the number of items of a sequence or pairs of a mapping.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case KindSequence:
		return len(n.Items)
	case KindMapping:
		return len(n.Pairs)
	default:
		return 0
	}
}

// Text returns the string value of a string node.
func (n *Node) Text() (string, bool) {
	if n == nil || n.Kind != KindString {
		return "", false
	}
	return n.Value, true
}

// Float returns the numeric value of a number node.
func (n *Node) Float() (float64, bool) {
	if n == nil || n.Kind != KindNumber {
		return 0, false
	}
	return n.Number, true
}

// Compact renders the node as compact JSON text. Strings render unquoted
// at the top level so that comment values read naturally; nested strings
// are quoted.
func (n *Node) Compact() string {
	if n == nil {
		return ""
	}
	if n.Kind == KindString {
		return n.Value
	}
	var sb strings.Builder
	n.writeJSON(&sb)
	return sb.String()
}

func (n *Node) writeJSON(sb *strings.Builder) {
	switch n.Kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		sb.WriteString(strconv.FormatBool(n.Bool))
	case KindNumber:
		sb.WriteString(formatNumber(n.Number))
	case KindString:
		b, _ := json.Marshal(n.Value)
		sb.Write(b)
	case KindSequence:
		sb.WriteByte('[')
		for i, item := range n.Items {
			if i > 0 {
				sb.WriteByte(',')
			}
			item.writeJSON(sb)
		}
		sb.WriteByte(']')
	case KindMapping:
		sb.WriteByte('{')
		for i, p := range n.Pairs {
			if i > 0 {
				sb.WriteByte(',')
			}
			b, _ := json.Marshal(p.Key)
			sb.Write(b)
			sb.WriteByte(':')
			p.Value.writeJSON(sb)
		}
		sb.WriteByte('}')
	}
}

// formatNumber renders a float the same way regardless of the literal it
// was decoded from, so "1.0e-30" and "1e-30" compare equal.
func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
