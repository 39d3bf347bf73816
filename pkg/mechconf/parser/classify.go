package parser

import (
	"fmt"

	"openatmos/mechconf/pkg/mechconf/document"
	mcerrors "openatmos/mechconf/pkg/mechconf/errors"
	"openatmos/mechconf/pkg/mechconf/model"
)

// signature matches the shape of one untagged reaction variant.
type signature struct {
	variant model.Variant
	match   func(n *document.Node) bool
}

// signatures is evaluated top to bottom and the first match wins. Variants
// whose keys are a superset of a later variant's must come first: a
// Henry's Law entry also carries "gas-phase species" (Surface), and a
// condensed-phase photolysis also carries "aerosol phase" (condensed-phase
// Arrhenius). Tunneling has no distinguishing key and is tag-only.
var signatures = []signature{
	{model.VariantSimpolPhaseTransfer, func(n *document.Node) bool {
		b := n.Get(model.KeyB)
		return b != nil && b.Kind == document.KindSequence && n.Has(model.KeyAerosolPhaseSpecies)
	}},
	{model.VariantHenrysLaw, func(n *document.Node) bool {
		return n.Has(model.KeyAerosolPhaseSpecies) && n.Has(model.KeyAerosolPhaseWater)
	}},
	{model.VariantAqueousEquilibrium, func(n *document.Node) bool {
		return n.Has(model.KeyKReverse)
	}},
	{model.VariantSurface, func(n *document.Node) bool {
		return n.Has(model.KeyGasPhaseSpecies) || n.Has(model.KeyGasPhaseProducts)
	}},
	{model.VariantBranched, func(n *document.Node) bool {
		return n.Has(model.KeyNitrateProducts) || n.Has(model.KeyAlkoxyProducts)
	}},
	{model.VariantTroe, func(n *document.Node) bool {
		return hasAny(n, model.KeyK0A, model.KeyK0B, model.KeyK0C,
			model.KeyKinfA, model.KeyKinfB, model.KeyKinfC, model.KeyFc, model.KeyN)
	}},
	{model.VariantWetDeposition, func(n *document.Node) bool {
		return n.Has(model.KeyAerosolPhase) && !n.Has(model.KeyReactants) && !n.Has(model.KeyProducts)
	}},
	{model.VariantCondensedPhasePhotolysis, func(n *document.Node) bool {
		return n.Has(model.KeyAerosolPhase) && n.Has(model.KeyScalingFactor)
	}},
	{model.VariantCondensedPhaseArrhenius, func(n *document.Node) bool {
		return n.Has(model.KeyAerosolPhase)
	}},
	{model.VariantPhotolysis, func(n *document.Node) bool {
		return n.Has(model.KeyScalingFactor) && n.Has(model.KeyReactants) && n.Has(model.KeyProducts)
	}},
	{model.VariantEmission, func(n *document.Node) bool {
		return n.Has(model.KeyProducts) && !n.Has(model.KeyReactants)
	}},
	{model.VariantFirstOrderLoss, func(n *document.Node) bool {
		return n.Has(model.KeyReactants) && !n.Has(model.KeyProducts)
	}},
	{model.VariantArrhenius, func(n *document.Node) bool {
		return n.Has(model.KeyReactants) && n.Has(model.KeyProducts)
	}},
}

func hasAny(n *document.Node, keys ...string) bool {
	for _, k := range keys {
		if n.Has(k) {
			return true
		}
	}
	return false
}

// Classify decides which variant a reaction entry represents. An explicit
// "type" tag always decides; untagged entries are matched against the
// structural signatures. The returned error is a schema *errors.Error
// without an index.
func Classify(n *document.Node) (model.Variant, error) {
	v, err := classify(n)
	if err != nil {
		return v, err
	}
	return v, nil
}

func classify(n *document.Node) (model.Variant, *mcerrors.Error) {
	if n == nil || n.Kind != document.KindMapping {
		loc := document.Location{}
		kind := "nothing"
		if n != nil {
			loc, kind = n.Location, n.Kind.String()
		}
		err := mcerrors.New(mcerrors.ErrorTypeSchema, mcerrors.CodeInvalidType,
			fmt.Sprintf("reaction must be a mapping, got %s", kind), loc)
		err.Entity = "reaction"
		return model.VariantUnknown, err
	}

	if pair, ok := n.Pair(model.KeyType); ok {
		tag, isText := pair.Value.Text()
		if !isText {
			err := mcerrors.New(mcerrors.ErrorTypeSchema, mcerrors.CodeInvalidType,
				fmt.Sprintf("'%s' must be a string, got %s", model.KeyType, pair.Value.Kind), pair.Value.Location)
			err.Entity = "reaction"
			err.Field = model.KeyType
			return model.VariantUnknown, err
		}
		if v, known := model.LookupVariant(tag); known {
			return v, nil
		}
		err := mcerrors.New(mcerrors.ErrorTypeSchema, mcerrors.CodeUnknownType,
			fmt.Sprintf("unrecognized reaction type %q", tag), pair.Value.Location)
		err.Entity = "reaction"
		err.Field = model.KeyType
		err.Suggestion = mcerrors.SuggestReactionType(tag, model.VariantTags())
		return model.VariantUnknown, err
	}

	for _, sig := range signatures {
		if sig.match(n) {
			return sig.variant, nil
		}
	}

	err := mcerrors.New(mcerrors.ErrorTypeSchema, mcerrors.CodeUnknownType,
		"unrecognized reaction type: no 'type' key and no variant matches the entry's keys", n.Location)
	err.Entity = "reaction"
	err.Suggestion = fmt.Sprintf("add a '%s' key", model.KeyType)
	return model.VariantUnknown, err
}
