package schema

import (
	"fmt"
	"slices"

	"openatmos/mechconf/pkg/mechconf/model"
)

// Entity names used in schemas and error subjects.
const (
	EntityMechanism = "mechanism"
	EntitySpecies   = "species"
	EntityPhase     = "phase"
	EntityReaction  = "reaction"
	EntityComponent = "reaction component"
)

// Schema is the ordered field list of one entity kind or reaction variant.
type Schema struct {
	Entity  string
	Variant model.Variant // VariantUnknown for non-reaction entities
	Fields  []Field
}

// Field returns the field with the given key.
func (s *Schema) Field(key string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Required returns the required fields in declaration order.
func (s *Schema) Required() []Field {
	var out []Field
	for _, f := range s.Fields {
		if f.Required {
			out = append(out, f)
		}
	}
	return out
}

// Optional returns the optional fields in declaration order.
func (s *Schema) Optional() []Field {
	var out []Field
	for _, f := range s.Fields {
		if !f.Required {
			out = append(out, f)
		}
	}
	return out
}

// Keys returns every accepted key in declaration order.
func (s *Schema) Keys() []string {
	keys := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		keys[i] = f.Key
	}
	return keys
}

// Accepts reports whether key is a declared field.
func (s *Schema) Accepts(key string) bool {
	_, ok := s.Field(key)
	return ok
}

// Default returns the default of a numeric field, or 0 when the key is
// unknown or has no default.
func (s *Schema) Default(key string) float64 {
	f, _ := s.Field(key)
	return f.DefaultValue()
}

func (s *Schema) clone() *Schema {
	out := *s
	out.Fields = slices.Clone(s.Fields)
	return &out
}

// Lookup returns the schema of a reaction variant.
func Lookup(v model.Variant) (*Schema, bool) {
	s, ok := reactionSchemas[v]
	if !ok {
		return nil, false
	}
	return s.clone(), true
}

// MustLookup is like Lookup but panics for an unknown variant.
func MustLookup(v model.Variant) *Schema {
	s, ok := Lookup(v)
	if !ok {
		panic(fmt.Sprintf("schema: no schema registered for variant %q", v))
	}
	return s
}

// Species returns the schema of a species entry.
func Species() *Schema { return speciesSchema.clone() }

// Phase returns the schema of a phase entry.
func Phase() *Schema { return phaseSchema.clone() }

// Component returns the schema of a reactant or product entry.
func Component() *Schema { return componentSchema.clone() }

// Mechanism returns the schema of the top-level document.
func Mechanism() *Schema { return mechanismSchema.clone() }
