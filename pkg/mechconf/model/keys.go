package model

// Document keys. Species property keys carry their units.
const (
	KeyVersion   = "version"
	KeyName      = "name"
	KeySpecies   = "species"
	KeyPhases    = "phases"
	KeyReactions = "reactions"
	KeyType      = "type"

	KeyAbsoluteTolerance                  = "absolute tolerance"
	KeyDiffusionCoefficient               = "diffusion coefficient [m2 s-1]"
	KeyMolecularWeight                    = "molecular weight [kg mol-1]"
	KeyHenrysLawConstant298               = "HLC(298K) [mol m-3 Pa-1]"
	KeyHenrysLawConstantExponentialFactor = "HLC exponential factor [K]"
	KeyNStar                              = "N star"
	KeyDensity                            = "density [kg m-3]"
	KeyTracerType                         = "tracer type"

	KeySpeciesName = "species name"
	KeyCoefficient = "coefficient"

	KeyReactants           = "reactants"
	KeyProducts            = "products"
	KeyGasPhase            = "gas phase"
	KeyAerosolPhase        = "aerosol phase"
	KeyAerosolPhaseWater   = "aerosol-phase water"
	KeyAerosolPhaseSpecies = "aerosol-phase species"
	KeyGasPhaseSpecies     = "gas-phase species"
	KeyGasPhaseProducts    = "gas-phase products"
	KeyNitrateProducts     = "nitrate products"
	KeyAlkoxyProducts      = "alkoxy products"

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

	KeyX  = "X"
	KeyY  = "Y"
	KeyA0 = "a0"
	KeyNB = "n"

	KeyReactionProbability = "reaction probability"
	KeyScalingFactor       = "scaling factor"
	KeyKReverse            = "k_reverse"
)

// CommentPrefix marks keys preserved verbatim as comments.
const CommentPrefix = "__"

// Boltzmann is the Boltzmann constant in J K-1, used to convert an
// activation energy Ea into the Arrhenius C parameter.
const Boltzmann = 1.380649e-23
