// Package schema is the registry of field schemas for every entity of a
// mechanism document.
//
// Each reaction variant, plus the species, phase, reaction component and
// top-level mechanism entries, is described by an ordered list of fields
// with an expected Kind, a required flag, an optional numeric default and
// an optional Constraint. The parser drives its generic key, kind and
// constraint checks from these entries, so every entity is checked the
// same way.
//
//	s := schema.MustLookup(model.VariantTroe)
//	fc := s.Default(model.KeyFc) // 0.6
//
// Lookup is a pure table read. MustLookup panics for a variant with no
// entry, which only happens on a programming error.
package schema
