package validator

import (
	"openatmos/mechconf/pkg/mechconf/document"
	mcerrors "openatmos/mechconf/pkg/mechconf/errors"
	"openatmos/mechconf/pkg/mechconf/model"
	"openatmos/mechconf/pkg/mechconf/parser"
	"openatmos/mechconf/pkg/mechconf/schema"
)

// index holds the declared names of a draft. First declaration wins for
// duplicated names.
type index struct {
	species      map[string]int
	phases       map[string]int
	speciesNames []string
	phaseNames   []string
}

func newIndex(d *parser.Draft) *index {
	idx := &index{
		species: make(map[string]int, len(d.Species)),
		phases:  make(map[string]int, len(d.Phases)),
	}
	for i, s := range d.Species {
		if _, ok := idx.species[s.Name]; !ok {
			idx.species[s.Name] = i
			idx.speciesNames = append(idx.speciesNames, s.Name)
		}
	}
	for i, p := range d.Phases {
		if _, ok := idx.phases[p.Name]; !ok {
			idx.phases[p.Name] = i
			idx.phaseNames = append(idx.phaseNames, p.Name)
		}
	}
	return idx
}

func (idx *index) hasSpecies(name string) bool {
	_, ok := idx.species[name]
	return ok
}

func (idx *index) phase(d *parser.Draft, name string) (model.Phase, bool) {
	i, ok := idx.phases[name]
	if !ok {
		return model.Phase{}, false
	}
	return d.Phases[i], true
}

// refLocator resolves the source location of the species references of
// one reaction, in SpeciesRefs order.
type refLocator struct {
	site  parser.ReactionSite
	count map[string]int
}

func newRefLocator(site parser.ReactionSite) *refLocator {
	return &refLocator{site: site, count: make(map[string]int)}
}

func (l *refLocator) next(ref model.SpeciesRef) document.Location {
	if _, isList := l.site.Elements[ref.Field]; isList {
		i := l.count[ref.Field]
		l.count[ref.Field]++
		return l.site.Element(ref.Field, i)
	}
	return l.site.Field(ref.Field)
}

func referenceError(errs *mcerrors.ErrorList, code mcerrors.Code, entity string, index int, field, message string, loc document.Location) *mcerrors.Error {
	err := errs.AddError(mcerrors.ErrorTypeReference, code, message, loc)
	err.Entity = entity
	err.Index = index
	err.Field = field
	return err
}

func reactionError(errs *mcerrors.ErrorList, code mcerrors.Code, index int, field, message string, loc document.Location) *mcerrors.Error {
	return referenceError(errs, code, schema.EntityReaction, index, field, message, loc)
}
