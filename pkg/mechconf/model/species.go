package model

// Species is a chemical entity tracked by a mechanism. Optional physical
// properties are nil when the document does not set them.
type Species struct {
	Name string

	AbsoluteTolerance                  *float64 // "absolute tolerance"
	DiffusionCoefficient               *float64 // "diffusion coefficient [m2 s-1]", m2 s-1
	MolecularWeight                    *float64 // "molecular weight [kg mol-1]", kg mol-1
	HenrysLawConstant298               *float64 // "HLC(298K) [mol m-3 Pa-1]", mol m-3 Pa-1
	HenrysLawConstantExponentialFactor *float64 // "HLC exponential factor [K]", K
	NStar                              *float64 // "N star"
	Density                            *float64 // "density [kg m-3]", kg m-3
	TracerType                         string   // "tracer type", e.g. "AEROSOL"

	Comments map[string]string
}

// Phase is a named group of species sharing a physical medium.
type Phase struct {
	Name     string
	Species  []string
	Comments map[string]string
}

// Contains reports whether the phase lists the named species.
func (p Phase) Contains(species string) bool {
	for _, s := range p.Species {
		if s == species {
			return true
		}
	}
	return false
}

// ReactionComponent is one reactant or product entry.
type ReactionComponent struct {
	SpeciesName string
	Coefficient float64
	Comments    map[string]string
}
