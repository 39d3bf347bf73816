package parser

import (
	"openatmos/mechconf/pkg/mechconf/document"
	"openatmos/mechconf/pkg/mechconf/model"
)

// Draft holds the entities built from one document before cross-reference
// validation. Entities are kept location-free; Sites records where each
// one came from so later stages can still point at the source.
type Draft struct {
	Source    string
	Name      string
	Version   model.Version
	Species   []model.Species
	Phases    []model.Phase
	Reactions []model.Reaction
	Sites     Sites
}

// Sites maps built entities back to document positions. Slices are
// parallel to the Draft entity slices.
type Sites struct {
	Species   []document.Location
	Phases    []PhaseSite
	Reactions []ReactionSite
}

// PhaseSite locates a phase entry and each of its member names.
type PhaseSite struct {
	Location document.Location
	Members  []document.Location
}

// ReactionSite locates a reaction entry, the values of its keys, and the
// elements of its component lists.
type ReactionSite struct {
	Location document.Location
	Fields   map[string]document.Location
	Elements map[string][]document.Location
}

// SpeciesAt returns the location of species i, or the zero Location.
func (s Sites) SpeciesAt(i int) document.Location {
	if i < 0 || i >= len(s.Species) {
		return document.Location{}
	}
	return s.Species[i]
}

// Phase returns the site of phase i.
func (s Sites) Phase(i int) PhaseSite {
	if i < 0 || i >= len(s.Phases) {
		return PhaseSite{}
	}
	return s.Phases[i]
}

// Reaction returns the site of reaction i.
func (s Sites) Reaction(i int) ReactionSite {
	if i < 0 || i >= len(s.Reactions) {
		return ReactionSite{}
	}
	return s.Reactions[i]
}

// Member returns the location of member j, falling back to the phase.
func (p PhaseSite) Member(j int) document.Location {
	if j >= 0 && j < len(p.Members) {
		return p.Members[j]
	}
	return p.Location
}

// Field returns where the value of key starts, falling back to the
// reaction entry.
func (r ReactionSite) Field(key string) document.Location {
	if loc, ok := r.Fields[key]; ok {
		return loc
	}
	return r.Location
}

// Element returns where element i of the list under key starts, falling
// back to the key itself.
func (r ReactionSite) Element(key string, i int) document.Location {
	if elems := r.Elements[key]; i >= 0 && i < len(elems) {
		return elems[i]
	}
	return r.Field(key)
}
