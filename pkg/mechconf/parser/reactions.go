package parser

import (
	"openatmos/mechconf/pkg/mechconf/model"
)

type reactionBuilder func(b *builder, e *entry) model.Reaction

var reactionBuilders = map[model.Variant]reactionBuilder{
	model.VariantArrhenius:                (*builder).arrhenius,
	model.VariantCondensedPhaseArrhenius:  (*builder).condensedPhaseArrhenius,
	model.VariantTroe:                     (*builder).troe,
	model.VariantBranched:                 (*builder).branched,
	model.VariantTunneling:                (*builder).tunneling,
	model.VariantSurface:                  (*builder).surface,
	model.VariantPhotolysis:               (*builder).photolysis,
	model.VariantCondensedPhasePhotolysis: (*builder).condensedPhasePhotolysis,
	model.VariantEmission:                 (*builder).emission,
	model.VariantFirstOrderLoss:           (*builder).firstOrderLoss,
	model.VariantSimpolPhaseTransfer:      (*builder).simpolPhaseTransfer,
	model.VariantAqueousEquilibrium:       (*builder).aqueousEquilibrium,
	model.VariantHenrysLaw:                (*builder).henrysLaw,
	model.VariantWetDeposition:            (*builder).wetDeposition,
}

func (b *builder) meta(e *entry) model.Meta {
	return model.Meta{
		Name:     b.text(e, model.KeyName),
		Comments: comments(e.node),
	}
}

// arrheniusC returns C, derived from an activation energy Ea in J when Ea
// is given instead.
func (b *builder) arrheniusC(e *entry) float64 {
	if e.node.Has(model.KeyEa) {
		return -b.number(e, model.KeyEa) / model.Boltzmann
	}
	return b.number(e, model.KeyC)
}

func (b *builder) arrhenius(e *entry) model.Reaction {
	return model.Arrhenius{
		Meta:      b.meta(e),
		GasPhase:  b.text(e, model.KeyGasPhase),
		Reactants: b.components(e, model.KeyReactants),
		Products:  b.components(e, model.KeyProducts),
		A:         b.number(e, model.KeyA),
		B:         b.number(e, model.KeyB),
		C:         b.arrheniusC(e),
		D:         b.number(e, model.KeyD),
		E:         b.number(e, model.KeyE),
	}
}

func (b *builder) condensedPhaseArrhenius(e *entry) model.Reaction {
	return model.CondensedPhaseArrhenius{
		Meta:              b.meta(e),
		AerosolPhase:      b.text(e, model.KeyAerosolPhase),
		AerosolPhaseWater: b.text(e, model.KeyAerosolPhaseWater),
		Reactants:         b.components(e, model.KeyReactants),
		Products:          b.components(e, model.KeyProducts),
		A:                 b.number(e, model.KeyA),
		B:                 b.number(e, model.KeyB),
		C:                 b.arrheniusC(e),
		D:                 b.number(e, model.KeyD),
		E:                 b.number(e, model.KeyE),
	}
}

var troeParameters = []string{
	model.KeyK0A, model.KeyK0B, model.KeyK0C,
	model.KeyKinfA, model.KeyKinfB, model.KeyKinfC,
	model.KeyFc, model.KeyN,
}

func (b *builder) troe(e *entry) model.Reaction {
	var explicit []string
	for _, key := range troeParameters {
		if e.node.Has(key) {
			explicit = append(explicit, key)
		}
	}

	return model.Troe{
		Meta:      b.meta(e),
		GasPhase:  b.text(e, model.KeyGasPhase),
		Reactants: b.components(e, model.KeyReactants),
		Products:  b.components(e, model.KeyProducts),
		K0A:       b.number(e, model.KeyK0A),
		K0B:       b.number(e, model.KeyK0B),
		K0C:       b.number(e, model.KeyK0C),
		KinfA:     b.number(e, model.KeyKinfA),
		KinfB:     b.number(e, model.KeyKinfB),
		KinfC:     b.number(e, model.KeyKinfC),
		Fc:        b.number(e, model.KeyFc),
		N:         b.number(e, model.KeyN),
		Explicit:  explicit,
	}
}

func (b *builder) branched(e *entry) model.Reaction {
	return model.Branched{
		Meta:            b.meta(e),
		GasPhase:        b.text(e, model.KeyGasPhase),
		Reactants:       b.components(e, model.KeyReactants),
		NitrateProducts: b.components(e, model.KeyNitrateProducts),
		AlkoxyProducts:  b.components(e, model.KeyAlkoxyProducts),
		X:               b.number(e, model.KeyX),
		Y:               b.number(e, model.KeyY),
		A0:              b.number(e, model.KeyA0),
		N:               b.number(e, model.KeyNB),
	}
}

func (b *builder) tunneling(e *entry) model.Reaction {
	return model.Tunneling{
		Meta:      b.meta(e),
		GasPhase:  b.text(e, model.KeyGasPhase),
		Reactants: b.components(e, model.KeyReactants),
		Products:  b.components(e, model.KeyProducts),
		A:         b.number(e, model.KeyA),
		B:         b.number(e, model.KeyB),
		C:         b.number(e, model.KeyC),
	}
}

func (b *builder) surface(e *entry) model.Reaction {
	return model.Surface{
		Meta:                b.meta(e),
		GasPhase:            b.text(e, model.KeyGasPhase),
		GasPhaseSpecies:     b.text(e, model.KeyGasPhaseSpecies),
		GasPhaseProducts:    b.components(e, model.KeyGasPhaseProducts),
		AerosolPhase:        b.text(e, model.KeyAerosolPhase),
		ReactionProbability: b.number(e, model.KeyReactionProbability),
	}
}

func (b *builder) photolysis(e *entry) model.Reaction {
	return model.Photolysis{
		Meta:          b.meta(e),
		GasPhase:      b.text(e, model.KeyGasPhase),
		Reactants:     b.components(e, model.KeyReactants),
		Products:      b.components(e, model.KeyProducts),
		ScalingFactor: b.number(e, model.KeyScalingFactor),
	}
}

func (b *builder) condensedPhasePhotolysis(e *entry) model.Reaction {
	return model.CondensedPhasePhotolysis{
		Meta:              b.meta(e),
		AerosolPhase:      b.text(e, model.KeyAerosolPhase),
		AerosolPhaseWater: b.text(e, model.KeyAerosolPhaseWater),
		Reactants:         b.components(e, model.KeyReactants),
		Products:          b.components(e, model.KeyProducts),
		ScalingFactor:     b.number(e, model.KeyScalingFactor),
	}
}

func (b *builder) emission(e *entry) model.Reaction {
	return model.Emission{
		Meta:          b.meta(e),
		GasPhase:      b.text(e, model.KeyGasPhase),
		Products:      b.components(e, model.KeyProducts),
		ScalingFactor: b.number(e, model.KeyScalingFactor),
	}
}

func (b *builder) firstOrderLoss(e *entry) model.Reaction {
	return model.FirstOrderLoss{
		Meta:          b.meta(e),
		GasPhase:      b.text(e, model.KeyGasPhase),
		Reactants:     b.components(e, model.KeyReactants),
		ScalingFactor: b.number(e, model.KeyScalingFactor),
	}
}

func (b *builder) simpolPhaseTransfer(e *entry) model.Reaction {
	r := model.SimpolPhaseTransfer{
		Meta:                b.meta(e),
		GasPhase:            b.text(e, model.KeyGasPhase),
		GasPhaseSpecies:     b.text(e, model.KeyGasPhaseSpecies),
		AerosolPhase:        b.text(e, model.KeyAerosolPhase),
		AerosolPhaseSpecies: b.text(e, model.KeyAerosolPhaseSpecies),
	}
	copy(r.B[:], b.numberList(e, model.KeyB))
	return r
}

func (b *builder) aqueousEquilibrium(e *entry) model.Reaction {
	return model.AqueousEquilibrium{
		Meta:              b.meta(e),
		AerosolPhase:      b.text(e, model.KeyAerosolPhase),
		AerosolPhaseWater: b.text(e, model.KeyAerosolPhaseWater),
		Reactants:         b.components(e, model.KeyReactants),
		Products:          b.components(e, model.KeyProducts),
		A:                 b.number(e, model.KeyA),
		C:                 b.number(e, model.KeyC),
		KReverse:          b.number(e, model.KeyKReverse),
	}
}

func (b *builder) henrysLaw(e *entry) model.Reaction {
	return model.HenrysLaw{
		Meta:                b.meta(e),
		GasPhase:            b.text(e, model.KeyGasPhase),
		GasPhaseSpecies:     b.text(e, model.KeyGasPhaseSpecies),
		AerosolPhase:        b.text(e, model.KeyAerosolPhase),
		AerosolPhaseSpecies: b.text(e, model.KeyAerosolPhaseSpecies),
		AerosolPhaseWater:   b.text(e, model.KeyAerosolPhaseWater),
	}
}

func (b *builder) wetDeposition(e *entry) model.Reaction {
	return model.WetDeposition{
		Meta:          b.meta(e),
		AerosolPhase:  b.text(e, model.KeyAerosolPhase),
		ScalingFactor: b.number(e, model.KeyScalingFactor),
	}
}
