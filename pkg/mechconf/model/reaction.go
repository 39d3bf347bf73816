package model

// Reaction is implemented by every reaction variant.
type Reaction interface {
	// Variant returns the discriminant used for dispatch.
	Variant() Variant

	// Metadata returns the optional name and preserved comments.
	Metadata() Meta

	// SpeciesRefs lists every species name the reaction refers to,
	// labelled with the document key it came from.
	SpeciesRefs() []SpeciesRef

	// PhaseRefs lists every phase name the reaction refers to.
	PhaseRefs() []PhaseRef
}

// Meta holds the fields shared by every reaction.
type Meta struct {
	Name     string
	Comments map[string]string
}

// Metadata implements Reaction.
func (m Meta) Metadata() Meta { return m }

// SpeciesRef is a species name referenced under a document key.
type SpeciesRef struct {
	Field string
	Name  string
}

// PhaseRef is a phase name referenced under a document key.
type PhaseRef struct {
	Field string
	Name  string
}

func componentRefs(field string, components []ReactionComponent) []SpeciesRef {
	refs := make([]SpeciesRef, 0, len(components))
	for _, c := range components {
		refs = append(refs, SpeciesRef{Field: field, Name: c.SpeciesName})
	}
	return refs
}

func reactantProductRefs(reactants, products []ReactionComponent) []SpeciesRef {
	return append(componentRefs(KeyReactants, reactants), componentRefs(KeyProducts, products)...)
}
