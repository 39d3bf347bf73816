package validator

import (
	"fmt"

	mcerrors "openatmos/mechconf/pkg/mechconf/errors"
	"openatmos/mechconf/pkg/mechconf/model"
	"openatmos/mechconf/pkg/mechconf/parser"
)

// StructuralValidator checks per-variant rules that span more than one
// field or entity: component counts, phase membership of the species a
// reaction moves between phases, and parameter group consistency.
type StructuralValidator struct {
	draft  *parser.Draft
	idx    *index
	errors *mcerrors.ErrorList
}

// NewStructuralValidator creates a new structural validator.
func NewStructuralValidator() *StructuralValidator {
	return &StructuralValidator{
		errors: mcerrors.NewErrorList(),
	}
}

// Validate runs the structural rules on every reaction.
func (v *StructuralValidator) Validate(d *parser.Draft) *mcerrors.ErrorList {
	v.draft = d
	v.idx = newIndex(d)
	v.errors = mcerrors.NewErrorList()

	for i, r := range d.Reactions {
		v.validateComponentCounts(i, r)

		switch rxn := r.(type) {
		case model.CondensedPhaseArrhenius:
			v.requireInAerosolPhase(i, rxn.AerosolPhase, condensedSpecies(rxn.Reactants, rxn.Products, rxn.AerosolPhaseWater))
		case model.CondensedPhasePhotolysis:
			v.requireInAerosolPhase(i, rxn.AerosolPhase, condensedSpecies(rxn.Reactants, rxn.Products, rxn.AerosolPhaseWater))
		case model.AqueousEquilibrium:
			v.requireInAerosolPhase(i, rxn.AerosolPhase, condensedSpecies(rxn.Reactants, rxn.Products, rxn.AerosolPhaseWater))
		case model.HenrysLaw:
			v.requireInGasPhase(i, rxn.GasPhase, rxn.GasPhaseSpecies)
			v.requireInAerosolPhase(i, rxn.AerosolPhase, []model.SpeciesRef{
				{Field: model.KeyAerosolPhaseSpecies, Name: rxn.AerosolPhaseSpecies},
				{Field: model.KeyAerosolPhaseWater, Name: rxn.AerosolPhaseWater},
			})
		case model.SimpolPhaseTransfer:
			v.requireInGasPhase(i, rxn.GasPhase, rxn.GasPhaseSpecies)
			v.requireInAerosolPhase(i, rxn.AerosolPhase, []model.SpeciesRef{
				{Field: model.KeyAerosolPhaseSpecies, Name: rxn.AerosolPhaseSpecies},
			})
		case model.Troe:
			v.validateTroeGroups(i, rxn)
		case model.Branched:
			v.validateBranches(i, rxn)
		}
	}

	return v.errors
}

// singleReactant lists the variants defined for exactly one reactant.
var singleReactant = map[model.Variant]bool{
	model.VariantPhotolysis:               true,
	model.VariantCondensedPhasePhotolysis: true,
	model.VariantFirstOrderLoss:           true,
}

func (v *StructuralValidator) validateComponentCounts(i int, r model.Reaction) {
	if !model.ConsumesReactants(r.Variant()) {
		return
	}
	site := v.draft.Sites.Reaction(i)
	reactants := model.Reactants(r)

	if len(reactants) == 0 {
		reactionError(v.errors, mcerrors.CodeMissingReactionComponents, i, model.KeyReactants,
			fmt.Sprintf("%s reaction requires at least one reactant", r.Variant().DisplayName()),
			site.Field(model.KeyReactants))
		return
	}
	if singleReactant[r.Variant()] && len(reactants) > 1 {
		err := reactionError(v.errors, mcerrors.CodeTooManyReactionComponents, i, model.KeyReactants,
			fmt.Sprintf("%s reaction requires exactly one reactant, got %d", r.Variant().DisplayName(), len(reactants)),
			site.Element(model.KeyReactants, 1))
		err.Suggestion = "split the reaction into one reaction per reactant"
	}
}

func condensedSpecies(reactants, products []model.ReactionComponent, water string) []model.SpeciesRef {
	refs := make([]model.SpeciesRef, 0, len(reactants)+len(products)+1)
	for _, c := range reactants {
		refs = append(refs, model.SpeciesRef{Field: model.KeyReactants, Name: c.SpeciesName})
	}
	for _, c := range products {
		refs = append(refs, model.SpeciesRef{Field: model.KeyProducts, Name: c.SpeciesName})
	}
	return append(refs, model.SpeciesRef{Field: model.KeyAerosolPhaseWater, Name: water})
}

// requireInAerosolPhase reports species missing from the aerosol phase.
// Undeclared phases and species are reported by the reference pass and
// skipped here.
func (v *StructuralValidator) requireInAerosolPhase(i int, phaseName string, refs []model.SpeciesRef) {
	phase, ok := v.idx.phase(v.draft, phaseName)
	if !ok {
		return
	}
	locate := newRefLocator(v.draft.Sites.Reaction(i))
	for _, ref := range refs {
		loc := locate.next(ref)
		if !v.idx.hasSpecies(ref.Name) || phase.Contains(ref.Name) {
			continue
		}
		err := reactionError(v.errors, mcerrors.CodeAerosolSpeciesNotInPhase, i, ref.Field,
			fmt.Sprintf("species %q is not included in aerosol phase %q", ref.Name, phaseName), loc)
		err.Suggestion = fmt.Sprintf("add %q to the species of phase %q", ref.Name, phaseName)
	}
}

func (v *StructuralValidator) requireInGasPhase(i int, phaseName, species string) {
	phase, ok := v.idx.phase(v.draft, phaseName)
	if !ok || !v.idx.hasSpecies(species) || phase.Contains(species) {
		return
	}
	err := reactionError(v.errors, mcerrors.CodeGasSpeciesNotInPhase, i, model.KeyGasPhaseSpecies,
		fmt.Sprintf("species %q is not included in gas phase %q", species, phaseName),
		v.draft.Sites.Reaction(i).Field(model.KeyGasPhaseSpecies))
	err.Suggestion = fmt.Sprintf("add %q to the species of phase %q", species, phaseName)
}

// validateTroeGroups requires the A parameter of a pressure group to be
// set whenever any other parameter of that group is.
func (v *StructuralValidator) validateTroeGroups(i int, r model.Troe) {
	groups := []struct {
		anchor string
		rest   []string
		label  string
	}{
		{model.KeyK0A, []string{model.KeyK0B, model.KeyK0C}, "low-pressure"},
		{model.KeyKinfA, []string{model.KeyKinfB, model.KeyKinfC}, "high-pressure"},
	}

	site := v.draft.Sites.Reaction(i)
	for _, g := range groups {
		if r.IsExplicit(g.anchor) {
			continue
		}
		for _, key := range g.rest {
			if !r.IsExplicit(key) {
				continue
			}
			err := reactionError(v.errors, mcerrors.CodeInconsistentParameterGroup, i, key,
				fmt.Sprintf("'%s' is set but the %s group has no '%s'", key, g.label, g.anchor),
				site.Field(key))
			err.Suggestion = mcerrors.SuggestMissingKey(g.anchor)
			break
		}
	}
}

func (v *StructuralValidator) validateBranches(i int, r model.Branched) {
	if len(r.NitrateProducts) > 0 || len(r.AlkoxyProducts) > 0 {
		return
	}
	reactionError(v.errors, mcerrors.CodeEmptyProductBranches, i, model.KeyNitrateProducts,
		"branched reaction needs at least one nitrate or alkoxy product",
		v.draft.Sites.Reaction(i).Field(model.KeyNitrateProducts))
}
