package schema

import (
	"fmt"
	"math"
)

// Kind is the value shape a field expects.
type Kind int

const (
	KindNumber        Kind = iota // Numeric scalar
	KindString                    // Free-form string
	KindVersion                   // Semantic version, written as a string or a bare number
	KindSpeciesRef                // Name of a declared species
	KindPhaseRef                  // Name of a declared phase
	KindComponentList             // Sequence of {species name, coefficient} mappings
	KindNumberList                // Sequence of numbers
	KindStringList                // Sequence of strings
	KindObjectList                // Sequence of mappings
)

var kindNames = map[Kind]string{
	KindNumber:        "number",
	KindString:        "string",
	KindVersion:       "version string",
	KindSpeciesRef:    "species name",
	KindPhaseRef:      "phase name",
	KindComponentList: "list of reaction components",
	KindNumberList:    "list of numbers",
	KindStringList:    "list of strings",
	KindObjectList:    "list of mappings",
}

// String returns a readable name for the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Constraint is a numeric rule applied to a number field, or to each
// element of a number list.
type Constraint int

const (
	ConstraintNone Constraint = iota
	ConstraintNonNegative
	ConstraintPositive
	ConstraintUnitInterval
)

// Check reports whether v satisfies the constraint. NaN never does.
func (c Constraint) Check(v float64) bool {
	if math.IsNaN(v) {
		return c == ConstraintNone
	}
	switch c {
	case ConstraintNonNegative:
		return v >= 0
	case ConstraintPositive:
		return v > 0
	case ConstraintUnitInterval:
		return v >= 0 && v <= 1
	default:
		return true
	}
}

// String describes the constraint for error messages.
func (c Constraint) String() string {
	switch c {
	case ConstraintNonNegative:
		return "must be >= 0"
	case ConstraintPositive:
		return "must be > 0"
	case ConstraintUnitInterval:
		return "must be in [0, 1]"
	default:
		return "none"
	}
}

// Field describes one key of an entity.
type Field struct {
	Key        string
	Kind       Kind
	Required   bool
	Default    *float64   // Numbers only; nil means no default
	Constraint Constraint // Numbers and number lists
	Length     int        // Exact element count for number lists, 0 for any

	// ExclusiveWith names a key that may not appear together with this one.
	ExclusiveWith string
}

// HasDefault reports whether an absent field takes a default value.
func (f Field) HasDefault() bool {
	return f.Default != nil
}

// DefaultValue returns the default, or 0 when there is none.
func (f Field) DefaultValue() float64 {
	if f.Default == nil {
		return 0
	}
	return *f.Default
}

func required(key string, kind Kind) Field {
	return Field{Key: key, Kind: kind, Required: true}
}

func optional(key string, kind Kind) Field {
	return Field{Key: key, Kind: kind}
}

func number(key string, def float64) Field {
	return Field{Key: key, Kind: KindNumber, Default: &def}
}

func (f Field) with(c Constraint) Field {
	f.Constraint = c
	return f
}

func (f Field) exclusiveWith(key string) Field {
	f.ExclusiveWith = key
	return f
}
