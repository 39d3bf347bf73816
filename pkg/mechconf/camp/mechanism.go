package camp

import (
	"openatmos/mechconf/pkg/mechconf/model"
)

// Entry-point and data-file keys.
const (
	KeyCampFiles = "camp-files"
	KeyCampData  = "camp-data"
)

// Default entry-point names tried, in order, when a directory is read.
const (
	DefaultConfigYAML = "config.yaml"
	DefaultConfigJSON = "config.json"
)

// GasPhase is the name of the phase holding every species.
const GasPhase = "GAS"

// Avogadro is the Avogadro constant in mol-1.
const Avogadro = 6.02214076e23

// MolesM3ToMoleculesCm3 converts a concentration in mol m-3 to
// molecules cm-3.
const MolesM3ToMoleculesCm3 = 1.0e-6 * Avogadro

// Name prefixes of the reactions that become user-defined.
const (
	PrefixPhotolysis     = "PHOT."
	PrefixEmission       = "EMIS."
	PrefixFirstOrderLoss = "LOSS."
	PrefixUserDefined    = "USER."
	PrefixSurface        = "SURF."
)

// Mechanism is a CAMP configuration after every data file was read.
type Mechanism struct {
	Name              string
	Version           model.Version // Always 0.0.0
	RelativeTolerance float64
	Species           []Species
	Phases            []model.Phase
	Reactions         Reactions
}

// Species is a CHEM_SPEC entry. UnknownProperties keeps comment keys with
// their values rendered as text.
type Species struct {
	Name                 string
	TracerType           string
	AbsoluteTolerance    *float64
	DiffusionCoefficient *float64 // m2 s-1
	MolecularWeight      *float64 // kg mol-1
	ThirdBody            bool
	UnknownProperties    map[string]string
}

// Component is a reactant with its quantity or a product with its yield.
type Component struct {
	Species     string
	Coefficient float64
}

// Reactions groups the reactions of a mechanism by kind. PHOTOLYSIS,
// EMISSION and FIRST_ORDER_LOSS entries are stored as UserDefined.
type Reactions struct {
	Arrhenius                 []Arrhenius
	Branched                  []Branched
	Surface                   []Surface
	Troe                      []Troe
	TernaryChemicalActivation []TernaryChemicalActivation
	Tunneling                 []Tunneling
	UserDefined               []UserDefined
}

// Count returns the total number of reactions.
func (r Reactions) Count() int {
	return len(r.Arrhenius) + len(r.Branched) + len(r.Surface) + len(r.Troe) +
		len(r.TernaryChemicalActivation) + len(r.Tunneling) + len(r.UserDefined)
}

// Counts returns the number of reactions of each kind, keyed by the
// CAMP type name. Kinds without reactions are omitted.
func (r Reactions) Counts() map[string]int {
	out := make(map[string]int)
	add := func(kind string, n int) {
		if n > 0 {
			out[kind] = n
		}
	}
	add(TypeArrhenius, len(r.Arrhenius))
	add(TypeBranched, len(r.Branched))
	add(TypeSurface, len(r.Surface))
	add(TypeTroe, len(r.Troe))
	add(TypeTernaryChemicalActivation, len(r.TernaryChemicalActivation))
	add(TypeTunneling, len(r.Tunneling))
	add(TypeUserDefined, len(r.UserDefined))
	return out
}

type Arrhenius struct {
	Name      string
	A         float64
	B         float64
	C         float64
	D         float64
	E         float64
	Reactants []Component
	Products  []Component
}

type Branched struct {
	X               float64
	Y               float64
	A0              float64
	N               int
	Reactants       []Component
	AlkoxyProducts  []Component
	NitrateProducts []Component
}

type Surface struct {
	Name                string
	ReactionProbability float64
	GasPhaseSpecies     Component
	GasPhaseProducts    []Component
}

type Troe struct {
	K0A       float64
	K0B       float64
	K0C       float64
	KinfA     float64
	KinfB     float64
	KinfC     float64
	Fc        float64
	N         float64
	Reactants []Component
	Products  []Component
}

// TernaryChemicalActivation takes the Troe parameters.
type TernaryChemicalActivation Troe

type Tunneling struct {
	A         float64
	B         float64
	C         float64
	Reactants []Component
	Products  []Component
}

type UserDefined struct {
	Name          string
	ScalingFactor float64
	Reactants     []Component
	Products      []Component
}

// attachGasPhase puts every species in the single gas phase.
func (m *Mechanism) attachGasPhase() {
	gas := model.Phase{Name: GasPhase, Species: make([]string, 0, len(m.Species))}
	for _, s := range m.Species {
		gas.Species = append(gas.Species, s.Name)
	}
	m.Phases = []model.Phase{gas}
}
