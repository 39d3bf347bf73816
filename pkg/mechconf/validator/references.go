package validator

import (
	"fmt"

	mcerrors "openatmos/mechconf/pkg/mechconf/errors"
	"openatmos/mechconf/pkg/mechconf/model"
	"openatmos/mechconf/pkg/mechconf/parser"
	"openatmos/mechconf/pkg/mechconf/schema"
)

// ReferenceValidator checks name uniqueness and that every species and
// phase name used by a phase or reaction is declared.
type ReferenceValidator struct {
	errors *mcerrors.ErrorList
}

// NewReferenceValidator creates a new reference validator.
func NewReferenceValidator() *ReferenceValidator {
	return &ReferenceValidator{
		errors: mcerrors.NewErrorList(),
	}
}

// Validate runs the duplicate, membership and reference checks.
func (v *ReferenceValidator) Validate(d *parser.Draft) *mcerrors.ErrorList {
	v.errors = mcerrors.NewErrorList()
	idx := newIndex(d)

	v.validateDuplicates(d)
	v.validatePhaseMembers(d, idx)
	v.validateSpeciesReferences(d, idx)
	v.validatePhaseReferences(d, idx)

	return v.errors
}

func (v *ReferenceValidator) validateDuplicates(d *parser.Draft) {
	first := make(map[string]int, len(d.Species))
	for i, s := range d.Species {
		if j, seen := first[s.Name]; seen {
			referenceError(v.errors, mcerrors.CodeDuplicateSpeciesDetected, schema.EntitySpecies, i, model.KeyName,
				fmt.Sprintf("duplicate species %q (first declared as species[%d])", s.Name, j),
				d.Sites.SpeciesAt(i))
			continue
		}
		first[s.Name] = i
	}

	first = make(map[string]int, len(d.Phases))
	for i, p := range d.Phases {
		if j, seen := first[p.Name]; seen {
			referenceError(v.errors, mcerrors.CodeDuplicatePhasesDetected, schema.EntityPhase, i, model.KeyName,
				fmt.Sprintf("duplicate phase %q (first declared as phase[%d])", p.Name, j),
				d.Sites.Phase(i).Location)
			continue
		}
		first[p.Name] = i
	}
}

func (v *ReferenceValidator) validatePhaseMembers(d *parser.Draft, idx *index) {
	for i, p := range d.Phases {
		site := d.Sites.Phase(i)
		for j, name := range p.Species {
			if idx.hasSpecies(name) {
				continue
			}
			err := referenceError(v.errors, mcerrors.CodePhaseRequiresUnknownSpecies, schema.EntityPhase, i,
				fmt.Sprintf("%s[%d]", model.KeySpecies, j),
				fmt.Sprintf("phase %q requires unknown species %q", p.Name, name),
				site.Member(j))
			err.Suggestion = mcerrors.SuggestName(name, idx.speciesNames)
		}
	}
}

func (v *ReferenceValidator) validateSpeciesReferences(d *parser.Draft, idx *index) {
	for i, r := range d.Reactions {
		locate := newRefLocator(d.Sites.Reaction(i))
		for _, ref := range r.SpeciesRefs() {
			loc := locate.next(ref)
			if idx.hasSpecies(ref.Name) {
				continue
			}
			err := reactionError(v.errors, mcerrors.CodeReactionRequiresUnknownSpecies, i, ref.Field,
				fmt.Sprintf("%s reaction requires unknown species %q", r.Variant().DisplayName(), ref.Name),
				loc)
			err.Suggestion = mcerrors.SuggestName(ref.Name, idx.speciesNames)
		}
	}
}

func (v *ReferenceValidator) validatePhaseReferences(d *parser.Draft, idx *index) {
	for i, r := range d.Reactions {
		site := d.Sites.Reaction(i)
		for _, ref := range r.PhaseRefs() {
			if _, ok := idx.phases[ref.Name]; ok {
				continue
			}
			err := reactionError(v.errors, mcerrors.CodeUnknownPhase, i, ref.Field,
				fmt.Sprintf("unknown phase %q", ref.Name), site.Field(ref.Field))
			err.Suggestion = mcerrors.SuggestName(ref.Name, idx.phaseNames)
		}
	}
}
