package camp

// Entry types of camp-data objects.
const (
	TypeChemSpec                  = "CHEM_SPEC"
	TypeRelativeTolerance         = "RELATIVE_TOLERANCE"
	TypeMechanism                 = "MECHANISM"
	TypePhotolysis                = "PHOTOLYSIS"
	TypeEmission                  = "EMISSION"
	TypeFirstOrderLoss            = "FIRST_ORDER_LOSS"
	TypeArrhenius                 = "ARRHENIUS"
	TypeTroe                      = "TROE"
	TypeTernaryChemicalActivation = "TERNARY_CHEMICAL_ACTIVATION"
	TypeBranched                  = "BRANCHED"
	TypeWennbergNoRO2             = "WENNBERG_NO_RO2"
	TypeTunneling                 = "TUNNELING"
	TypeWennbergTunneling         = "WENNBERG_TUNNELING"
	TypeSurface                   = "SURFACE"
	TypeUserDefined               = "USER_DEFINED"
)

// EntryTypes lists every accepted entry type.
var EntryTypes = []string{
	TypeChemSpec, TypeRelativeTolerance, TypeMechanism,
	TypePhotolysis, TypeEmission, TypeFirstOrderLoss,
	TypeArrhenius, TypeTroe, TypeTernaryChemicalActivation,
	TypeBranched, TypeWennbergNoRO2, TypeTunneling, TypeWennbergTunneling,
	TypeSurface, TypeUserDefined,
}

// Entry keys.
const (
	KeyType      = "type"
	KeyName      = "name"
	KeyValue     = "value"
	KeyReactions = "reactions"

	KeyTracerType           = "tracer type"
	KeyAbsoluteTolerance    = "absolute tolerance"
	KeyDiffusionCoefficient = "diffusion coefficient [m2 s-1]"
	KeyMolecularWeight      = "molecular weight [kg mol-1]"
	KeyThirdBody            = "THIRD_BODY"

	KeyReactants        = "reactants"
	KeyProducts         = "products"
	KeyMusicaName       = "MUSICA name"
	KeyScalingFactor    = "scaling factor"
	KeyGasPhaseReactant = "gas-phase reactant"
	KeyGasPhaseProducts = "gas-phase products"
	KeySpecies          = "species"
	KeyProbability      = "reaction probability"

	KeyQty   = "qty"
	KeyYield = "yield"

	KeyAlkoxyProducts  = "alkoxy products"
	KeyNitrateProducts = "nitrate products"
	KeyX               = "X"
	KeyY               = "Y"
	KeyA0              = "a0"
	KeyLowerN          = "n"

	KeyA  = "A"
	KeyB  = "B"
	KeyC  = "C"
	KeyD  = "D"
	KeyE  = "E"
	KeyEa = "Ea"

	KeyK0A   = "k0_A"
	KeyK0B   = "k0_B"
	KeyK0C   = "k0_C"
	KeyKinfA = "kinf_A"
	KeyKinfB = "kinf_B"
	KeyKinfC = "kinf_C"
	KeyFc    = "Fc"
	KeyN     = "N"
)

// Entity names used in error subjects.
const (
	EntityConfig   = "camp configuration"
	EntityEntry    = "camp entry"
	EntityReaction = "camp reaction"
	EntityFile     = "camp file"
)

// keySet is the accepted keys of one entry type.
type keySet struct {
	required []string
	optional []string
}

func (k keySet) all() []string {
	return append(append([]string(nil), k.required...), k.optional...)
}

var troeKeys = keySet{
	required: []string{KeyType, KeyReactants, KeyProducts},
	optional: []string{KeyK0A, KeyK0B, KeyK0C, KeyKinfA, KeyKinfB, KeyKinfC, KeyFc, KeyN},
}

var branchedKeys = keySet{
	required: []string{KeyType, KeyReactants, KeyAlkoxyProducts, KeyNitrateProducts, KeyX, KeyY, KeyA0, KeyLowerN},
}

var tunnelingKeys = keySet{
	required: []string{KeyType, KeyReactants, KeyProducts},
	optional: []string{KeyA, KeyB, KeyC},
}

var entryKeys = map[string]keySet{
	TypeChemSpec: {
		required: []string{KeyName, KeyType},
		optional: []string{KeyTracerType, KeyAbsoluteTolerance, KeyDiffusionCoefficient, KeyMolecularWeight, KeyThirdBody},
	},
	TypeRelativeTolerance: {
		required: []string{KeyValue, KeyType},
	},
	TypeMechanism: {
		required: []string{KeyName, KeyReactions, KeyType},
	},
	TypePhotolysis: {
		required: []string{KeyType, KeyReactants, KeyProducts, KeyMusicaName},
		optional: []string{KeyScalingFactor},
	},
	TypeEmission: {
		required: []string{KeyType, KeySpecies, KeyMusicaName},
		optional: []string{KeyScalingFactor, KeyProducts},
	},
	TypeFirstOrderLoss: {
		required: []string{KeyType, KeySpecies, KeyMusicaName},
		optional: []string{KeyScalingFactor},
	},
	TypeArrhenius: {
		required: []string{KeyType, KeyReactants, KeyProducts},
		optional: []string{KeyA, KeyB, KeyC, KeyD, KeyE, KeyEa, KeyMusicaName},
	},
	TypeTroe:                      troeKeys,
	TypeTernaryChemicalActivation: troeKeys,
	TypeBranched:                  branchedKeys,
	TypeWennbergNoRO2:             branchedKeys,
	TypeTunneling:                 tunnelingKeys,
	TypeWennbergTunneling:         tunnelingKeys,
	TypeSurface: {
		required: []string{KeyType, KeyGasPhaseProducts, KeyGasPhaseReactant, KeyMusicaName},
		optional: []string{KeyProbability},
	},
	TypeUserDefined: {
		required: []string{KeyType, KeyReactants, KeyProducts, KeyMusicaName},
		optional: []string{KeyScalingFactor},
	},
}
