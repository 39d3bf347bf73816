package schema

import (
	"testing"

	"openatmos/mechconf/pkg/mechconf/model"
)

func TestLookup_EveryVariant(t *testing.T) {
	for _, v := range model.AllVariants() {
		t.Run(v.String(), func(t *testing.T) {
			s, ok := Lookup(v)
			if !ok {
				t.Fatalf("Lookup(%v) not found", v)
			}
			if s.Variant != v {
				t.Errorf("Variant = %v, want %v", s.Variant, v)
			}
			if s.Entity != EntityReaction {
				t.Errorf("Entity = %q, want %q", s.Entity, EntityReaction)
			}
			if !s.Accepts(model.KeyType) || !s.Accepts(model.KeyName) {
				t.Error("every reaction schema should accept type and name")
			}
			if len(s.Required()) == 0 {
				t.Error("every reaction schema should have required fields")
			}
		})
	}

	if _, ok := Lookup(model.VariantUnknown); ok {
		t.Error("Lookup(VariantUnknown) should fail")
	}
}

func TestMustLookup_PanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLookup(VariantUnknown) did not panic")
		}
	}()
	MustLookup(model.VariantUnknown)
}

func TestDefaults(t *testing.T) {
	tests := []struct {
		variant model.Variant
		key     string
		want    float64
	}{
		{model.VariantArrhenius, model.KeyA, 1},
		{model.VariantArrhenius, model.KeyD, 300},
		{model.VariantArrhenius, model.KeyC, 0},
		{model.VariantCondensedPhaseArrhenius, model.KeyD, 300},
		{model.VariantTroe, model.KeyK0A, 1},
		{model.VariantTroe, model.KeyKinfA, 1},
		{model.VariantTroe, model.KeyFc, 0.6},
		{model.VariantTroe, model.KeyN, 1},
		{model.VariantBranched, model.KeyX, 1},
		{model.VariantBranched, model.KeyA0, 1},
		{model.VariantTunneling, model.KeyA, 1},
		{model.VariantSurface, model.KeyReactionProbability, 1},
		{model.VariantPhotolysis, model.KeyScalingFactor, 1},
		{model.VariantEmission, model.KeyScalingFactor, 1},
		{model.VariantFirstOrderLoss, model.KeyScalingFactor, 1},
		{model.VariantWetDeposition, model.KeyScalingFactor, 1},
		{model.VariantAqueousEquilibrium, model.KeyA, 1},
		{model.VariantAqueousEquilibrium, model.KeyC, 0},
	}
	for _, tt := range tests {
		t.Run(tt.variant.String()+"/"+tt.key, func(t *testing.T) {
			s := MustLookup(tt.variant)
			f, ok := s.Field(tt.key)
			if !ok {
				t.Fatalf("Field(%q) not found", tt.key)
			}
			if !f.HasDefault() {
				t.Fatalf("Field(%q) has no default", tt.key)
			}
			if got := s.Default(tt.key); got != tt.want {
				t.Errorf("Default(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}

	if c, _ := Component().Field(model.KeyCoefficient); c.DefaultValue() != 1 {
		t.Errorf("coefficient default = %v, want 1", c.DefaultValue())
	}
}

func TestExclusiveFields(t *testing.T) {
	s := MustLookup(model.VariantArrhenius)
	c, _ := s.Field(model.KeyC)
	ea, _ := s.Field(model.KeyEa)
	if c.ExclusiveWith != model.KeyEa || ea.ExclusiveWith != model.KeyC {
		t.Errorf("ExclusiveWith = (%q, %q), want (Ea, C)", c.ExclusiveWith, ea.ExclusiveWith)
	}
	if ea.HasDefault() {
		t.Error("Ea should have no default")
	}
}

func TestSimpolB(t *testing.T) {
	f, ok := MustLookup(model.VariantSimpolPhaseTransfer).Field(model.KeyB)
	if !ok {
		t.Fatal("Field(B) not found")
	}
	if f.Kind != KindNumberList || f.Length != 4 || !f.Required {
		t.Errorf("B = %+v, want required number list of length 4", f)
	}
}

func TestConstraint_Check(t *testing.T) {
	tests := []struct {
		c    Constraint
		v    float64
		want bool
	}{
		{ConstraintNone, -5, true},
		{ConstraintNonNegative, 0, true},
		{ConstraintNonNegative, -0.1, false},
		{ConstraintPositive, 0, false},
		{ConstraintPositive, 1e-30, true},
		{ConstraintUnitInterval, 1, true},
		{ConstraintUnitInterval, 1.01, false},
		{ConstraintUnitInterval, -0.01, false},
	}
	for _, tt := range tests {
		if got := tt.c.Check(tt.v); got != tt.want {
			t.Errorf("%v.Check(%v) = %v, want %v", tt.c, tt.v, got, tt.want)
		}
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	s := MustLookup(model.VariantArrhenius)
	s.Fields[0].Key = "mutated"

	if MustLookup(model.VariantArrhenius).Fields[0].Key == "mutated" {
		t.Error("Lookup() returned a schema aliasing the registry")
	}
}

func TestEntitySchemas(t *testing.T) {
	tests := []struct {
		schema   *Schema
		required []string
	}{
		{Mechanism(), []string{model.KeyVersion, model.KeySpecies, model.KeyPhases, model.KeyReactions}},
		{Species(), []string{model.KeyName}},
		{Phase(), []string{model.KeyName, model.KeySpecies}},
		{Component(), []string{model.KeySpeciesName}},
	}
	for _, tt := range tests {
		t.Run(tt.schema.Entity, func(t *testing.T) {
			got := tt.schema.Required()
			if len(got) != len(tt.required) {
				t.Fatalf("Required() = %v, want %v", got, tt.required)
			}
			for i, f := range got {
				if f.Key != tt.required[i] {
					t.Errorf("Required()[%d] = %q, want %q", i, f.Key, tt.required[i])
				}
			}
		})
	}
}
