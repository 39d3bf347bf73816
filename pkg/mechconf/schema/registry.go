package schema

import "openatmos/mechconf/pkg/mechconf/model"

var mechanismSchema = &Schema{
	Entity: EntityMechanism,
	Fields: []Field{
		required(model.KeyVersion, KindVersion),
		optional(model.KeyName, KindString),
		required(model.KeySpecies, KindObjectList),
		required(model.KeyPhases, KindObjectList),
		required(model.KeyReactions, KindObjectList),
	},
}

var speciesSchema = &Schema{
	Entity: EntitySpecies,
	Fields: []Field{
		required(model.KeyName, KindString),
		optional(model.KeyAbsoluteTolerance, KindNumber).with(ConstraintPositive),
		optional(model.KeyDiffusionCoefficient, KindNumber).with(ConstraintPositive),
		optional(model.KeyMolecularWeight, KindNumber).with(ConstraintPositive),
		optional(model.KeyHenrysLawConstant298, KindNumber).with(ConstraintPositive),
		optional(model.KeyHenrysLawConstantExponentialFactor, KindNumber),
		optional(model.KeyNStar, KindNumber).with(ConstraintPositive),
		optional(model.KeyDensity, KindNumber).with(ConstraintPositive),
		optional(model.KeyTracerType, KindString),
	},
}

var phaseSchema = &Schema{
	Entity: EntityPhase,
	Fields: []Field{
		required(model.KeyName, KindString),
		required(model.KeySpecies, KindStringList),
	},
}

var componentSchema = &Schema{
	Entity: EntityComponent,
	Fields: []Field{
		required(model.KeySpeciesName, KindSpeciesRef),
		number(model.KeyCoefficient, 1).with(ConstraintNonNegative),
	},
}

// reactionSchema prepends the keys every reaction accepts.
func reactionSchema(v model.Variant, fields ...Field) *Schema {
	common := []Field{
		optional(model.KeyType, KindString),
		optional(model.KeyName, KindString),
	}
	return &Schema{
		Entity:  EntityReaction,
		Variant: v,
		Fields:  append(common, fields...),
	}
}

func arrheniusRate() []Field {
	return []Field{
		number(model.KeyA, 1),
		number(model.KeyB, 0),
		number(model.KeyC, 0).exclusiveWith(model.KeyEa),
		number(model.KeyD, 300),
		number(model.KeyE, 0),
		optional(model.KeyEa, KindNumber).exclusiveWith(model.KeyC),
	}
}

var reactionSchemas = map[model.Variant]*Schema{
	model.VariantArrhenius: reactionSchema(model.VariantArrhenius, append([]Field{
		required(model.KeyReactants, KindComponentList),
		required(model.KeyProducts, KindComponentList),
		required(model.KeyGasPhase, KindPhaseRef),
	}, arrheniusRate()...)...),

	model.VariantCondensedPhaseArrhenius: reactionSchema(model.VariantCondensedPhaseArrhenius, append([]Field{
		required(model.KeyReactants, KindComponentList),
		required(model.KeyProducts, KindComponentList),
		required(model.KeyAerosolPhase, KindPhaseRef),
		required(model.KeyAerosolPhaseWater, KindSpeciesRef),
	}, arrheniusRate()...)...),

	model.VariantTroe: reactionSchema(model.VariantTroe,
		required(model.KeyReactants, KindComponentList),
		required(model.KeyProducts, KindComponentList),
		required(model.KeyGasPhase, KindPhaseRef),
		number(model.KeyK0A, 1),
		number(model.KeyK0B, 0),
		number(model.KeyK0C, 0),
		number(model.KeyKinfA, 1),
		number(model.KeyKinfB, 0),
		number(model.KeyKinfC, 0),
		number(model.KeyFc, 0.6),
		number(model.KeyN, 1),
	),

	model.VariantBranched: reactionSchema(model.VariantBranched,
		required(model.KeyReactants, KindComponentList),
		required(model.KeyNitrateProducts, KindComponentList),
		required(model.KeyAlkoxyProducts, KindComponentList),
		required(model.KeyGasPhase, KindPhaseRef),
		number(model.KeyX, 1),
		number(model.KeyY, 0),
		number(model.KeyA0, 1),
		number(model.KeyNB, 0),
	),

	model.VariantTunneling: reactionSchema(model.VariantTunneling,
		required(model.KeyReactants, KindComponentList),
		required(model.KeyProducts, KindComponentList),
		required(model.KeyGasPhase, KindPhaseRef),
		number(model.KeyA, 1),
		number(model.KeyB, 0),
		number(model.KeyC, 0),
	),

	model.VariantSurface: reactionSchema(model.VariantSurface,
		required(model.KeyGasPhaseSpecies, KindSpeciesRef),
		required(model.KeyGasPhaseProducts, KindComponentList),
		required(model.KeyGasPhase, KindPhaseRef),
		required(model.KeyAerosolPhase, KindPhaseRef),
		number(model.KeyReactionProbability, 1).with(ConstraintUnitInterval),
	),

	model.VariantPhotolysis: reactionSchema(model.VariantPhotolysis,
		required(model.KeyReactants, KindComponentList),
		required(model.KeyProducts, KindComponentList),
		required(model.KeyGasPhase, KindPhaseRef),
		number(model.KeyScalingFactor, 1),
	),

	model.VariantCondensedPhasePhotolysis: reactionSchema(model.VariantCondensedPhasePhotolysis,
		required(model.KeyReactants, KindComponentList),
		required(model.KeyProducts, KindComponentList),
		required(model.KeyAerosolPhase, KindPhaseRef),
		required(model.KeyAerosolPhaseWater, KindSpeciesRef),
		number(model.KeyScalingFactor, 1),
	),

	model.VariantEmission: reactionSchema(model.VariantEmission,
		required(model.KeyProducts, KindComponentList),
		required(model.KeyGasPhase, KindPhaseRef),
		number(model.KeyScalingFactor, 1),
	),

	model.VariantFirstOrderLoss: reactionSchema(model.VariantFirstOrderLoss,
		required(model.KeyReactants, KindComponentList),
		required(model.KeyGasPhase, KindPhaseRef),
		number(model.KeyScalingFactor, 1),
	),

	model.VariantSimpolPhaseTransfer: reactionSchema(model.VariantSimpolPhaseTransfer,
		required(model.KeyGasPhase, KindPhaseRef),
		required(model.KeyGasPhaseSpecies, KindSpeciesRef),
		required(model.KeyAerosolPhase, KindPhaseRef),
		required(model.KeyAerosolPhaseSpecies, KindSpeciesRef),
		Field{Key: model.KeyB, Kind: KindNumberList, Required: true, Length: 4},
	),

	model.VariantAqueousEquilibrium: reactionSchema(model.VariantAqueousEquilibrium,
		required(model.KeyReactants, KindComponentList),
		required(model.KeyProducts, KindComponentList),
		required(model.KeyAerosolPhase, KindPhaseRef),
		required(model.KeyAerosolPhaseWater, KindSpeciesRef),
		required(model.KeyKReverse, KindNumber).with(ConstraintPositive),
		number(model.KeyA, 1),
		number(model.KeyC, 0),
	),

	model.VariantHenrysLaw: reactionSchema(model.VariantHenrysLaw,
		required(model.KeyGasPhase, KindPhaseRef),
		required(model.KeyGasPhaseSpecies, KindSpeciesRef),
		required(model.KeyAerosolPhase, KindPhaseRef),
		required(model.KeyAerosolPhaseSpecies, KindSpeciesRef),
		required(model.KeyAerosolPhaseWater, KindSpeciesRef),
	),

	model.VariantWetDeposition: reactionSchema(model.VariantWetDeposition,
		required(model.KeyAerosolPhase, KindPhaseRef),
		number(model.KeyScalingFactor, 1),
	),
}
