package model

// Arrhenius is a gas-phase reaction with rate
// k = A exp(C/T) (T/D)^B (1 + E P).
type Arrhenius struct {
	Meta
	GasPhase  string
	Reactants []ReactionComponent
	Products  []ReactionComponent
	A         float64
	B         float64
	C         float64
	D         float64
	E         float64
}

func (Arrhenius) Variant() Variant { return VariantArrhenius }

func (r Arrhenius) SpeciesRefs() []SpeciesRef { return reactantProductRefs(r.Reactants, r.Products) }

func (r Arrhenius) PhaseRefs() []PhaseRef {
	return []PhaseRef{{Field: KeyGasPhase, Name: r.GasPhase}}
}

// CondensedPhaseArrhenius is an Arrhenius reaction taking place in an
// aerosol phase.
type CondensedPhaseArrhenius struct {
	Meta
	AerosolPhase      string
	AerosolPhaseWater string
	Reactants         []ReactionComponent
	Products          []ReactionComponent
	A                 float64
	B                 float64
	C                 float64
	D                 float64
	E                 float64
}

func (CondensedPhaseArrhenius) Variant() Variant { return VariantCondensedPhaseArrhenius }

func (r CondensedPhaseArrhenius) SpeciesRefs() []SpeciesRef {
	refs := reactantProductRefs(r.Reactants, r.Products)
	return append(refs, SpeciesRef{Field: KeyAerosolPhaseWater, Name: r.AerosolPhaseWater})
}

func (r CondensedPhaseArrhenius) PhaseRefs() []PhaseRef {
	return []PhaseRef{{Field: KeyAerosolPhase, Name: r.AerosolPhase}}
}

// Troe is a pressure-dependent fall-off reaction with low-pressure (k0_*)
// and high-pressure (kinf_*) Arrhenius-like parameter groups.
type Troe struct {
	Meta
	GasPhase  string
	Reactants []ReactionComponent
	Products  []ReactionComponent
	K0A       float64
	K0B       float64
	K0C       float64
	KinfA     float64
	KinfB     float64
	KinfC     float64
	Fc        float64
	N         float64

	// Explicit lists the rate parameters the document set, as opposed to
	// those filled from defaults.
	Explicit []string
}

func (Troe) Variant() Variant { return VariantTroe }

func (r Troe) SpeciesRefs() []SpeciesRef { return reactantProductRefs(r.Reactants, r.Products) }

func (r Troe) PhaseRefs() []PhaseRef {
	return []PhaseRef{{Field: KeyGasPhase, Name: r.GasPhase}}
}

// IsExplicit reports whether the document set the given parameter key.
func (r Troe) IsExplicit(key string) bool {
	for _, k := range r.Explicit {
		if k == key {
			return true
		}
	}
	return false
}

// Branched is an RO2 + NO reaction that splits into nitrate and alkoxy
// product branches.
type Branched struct {
	Meta
	GasPhase        string
	Reactants       []ReactionComponent
	NitrateProducts []ReactionComponent
	AlkoxyProducts  []ReactionComponent
	X               float64
	Y               float64
	A0              float64
	N               float64
}

func (Branched) Variant() Variant { return VariantBranched }

func (r Branched) SpeciesRefs() []SpeciesRef {
	refs := componentRefs(KeyReactants, r.Reactants)
	refs = append(refs, componentRefs(KeyNitrateProducts, r.NitrateProducts)...)
	return append(refs, componentRefs(KeyAlkoxyProducts, r.AlkoxyProducts)...)
}

func (r Branched) PhaseRefs() []PhaseRef {
	return []PhaseRef{{Field: KeyGasPhase, Name: r.GasPhase}}
}

// Tunneling is a gas-phase reaction with rate k = A exp(-B/T) exp(C/T^3).
type Tunneling struct {
	Meta
	GasPhase  string
	Reactants []ReactionComponent
	Products  []ReactionComponent
	A         float64
	B         float64
	C         float64
}

func (Tunneling) Variant() Variant { return VariantTunneling }

func (r Tunneling) SpeciesRefs() []SpeciesRef { return reactantProductRefs(r.Reactants, r.Products) }

func (r Tunneling) PhaseRefs() []PhaseRef {
	return []PhaseRef{{Field: KeyGasPhase, Name: r.GasPhase}}
}

// Surface is a heterogeneous reaction of a gas-phase species on aerosol
// surfaces.
type Surface struct {
	Meta
	GasPhase            string
	GasPhaseSpecies     string
	GasPhaseProducts    []ReactionComponent
	AerosolPhase        string
	ReactionProbability float64
}

func (Surface) Variant() Variant { return VariantSurface }

func (r Surface) SpeciesRefs() []SpeciesRef {
	refs := []SpeciesRef{{Field: KeyGasPhaseSpecies, Name: r.GasPhaseSpecies}}
	return append(refs, componentRefs(KeyGasPhaseProducts, r.GasPhaseProducts)...)
}

func (r Surface) PhaseRefs() []PhaseRef {
	return []PhaseRef{
		{Field: KeyGasPhase, Name: r.GasPhase},
		{Field: KeyAerosolPhase, Name: r.AerosolPhase},
	}
}

// Photolysis is a gas-phase photodissociation whose rate is supplied at
// run time and multiplied by ScalingFactor.
type Photolysis struct {
	Meta
	GasPhase      string
	Reactants     []ReactionComponent
	Products      []ReactionComponent
	ScalingFactor float64
}

func (Photolysis) Variant() Variant { return VariantPhotolysis }

func (r Photolysis) SpeciesRefs() []SpeciesRef { return reactantProductRefs(r.Reactants, r.Products) }

func (r Photolysis) PhaseRefs() []PhaseRef {
	return []PhaseRef{{Field: KeyGasPhase, Name: r.GasPhase}}
}

// CondensedPhasePhotolysis is a photodissociation in an aerosol phase.
type CondensedPhasePhotolysis struct {
	Meta
	AerosolPhase      string
	AerosolPhaseWater string
	Reactants         []ReactionComponent
	Products          []ReactionComponent
	ScalingFactor     float64
}

func (CondensedPhasePhotolysis) Variant() Variant { return VariantCondensedPhasePhotolysis }

func (r CondensedPhasePhotolysis) SpeciesRefs() []SpeciesRef {
	refs := reactantProductRefs(r.Reactants, r.Products)
	return append(refs, SpeciesRef{Field: KeyAerosolPhaseWater, Name: r.AerosolPhaseWater})
}

func (r CondensedPhasePhotolysis) PhaseRefs() []PhaseRef {
	return []PhaseRef{{Field: KeyAerosolPhase, Name: r.AerosolPhase}}
}

// Emission is a zero-order source of gas-phase products.
type Emission struct {
	Meta
	GasPhase      string
	Products      []ReactionComponent
	ScalingFactor float64
}

func (Emission) Variant() Variant { return VariantEmission }

func (r Emission) SpeciesRefs() []SpeciesRef { return componentRefs(KeyProducts, r.Products) }

func (r Emission) PhaseRefs() []PhaseRef {
	return []PhaseRef{{Field: KeyGasPhase, Name: r.GasPhase}}
}

// FirstOrderLoss is a first-order sink of a single gas-phase reactant.
type FirstOrderLoss struct {
	Meta
	GasPhase      string
	Reactants     []ReactionComponent
	ScalingFactor float64
}

func (FirstOrderLoss) Variant() Variant { return VariantFirstOrderLoss }

func (r FirstOrderLoss) SpeciesRefs() []SpeciesRef { return componentRefs(KeyReactants, r.Reactants) }

func (r FirstOrderLoss) PhaseRefs() []PhaseRef {
	return []PhaseRef{{Field: KeyGasPhase, Name: r.GasPhase}}
}

// SimpolPhaseTransfer is a gas/aerosol partitioning governed by the
// SIMPOL.1 vapor pressure parameters B.
type SimpolPhaseTransfer struct {
	Meta
	GasPhase            string
	GasPhaseSpecies     string
	AerosolPhase        string
	AerosolPhaseSpecies string
	B                   [4]float64
}

func (SimpolPhaseTransfer) Variant() Variant { return VariantSimpolPhaseTransfer }

func (r SimpolPhaseTransfer) SpeciesRefs() []SpeciesRef {
	return []SpeciesRef{
		{Field: KeyGasPhaseSpecies, Name: r.GasPhaseSpecies},
		{Field: KeyAerosolPhaseSpecies, Name: r.AerosolPhaseSpecies},
	}
}

func (r SimpolPhaseTransfer) PhaseRefs() []PhaseRef {
	return []PhaseRef{
		{Field: KeyGasPhase, Name: r.GasPhase},
		{Field: KeyAerosolPhase, Name: r.AerosolPhase},
	}
}

// AqueousEquilibrium is a reversible aqueous reaction with forward rate
// parameters A and C and a reverse rate constant KReverse.
type AqueousEquilibrium struct {
	Meta
	AerosolPhase      string
	AerosolPhaseWater string
	Reactants         []ReactionComponent
	Products          []ReactionComponent
	A                 float64
	C                 float64
	KReverse          float64
}

func (AqueousEquilibrium) Variant() Variant { return VariantAqueousEquilibrium }

func (r AqueousEquilibrium) SpeciesRefs() []SpeciesRef {
	refs := reactantProductRefs(r.Reactants, r.Products)
	return append(refs, SpeciesRef{Field: KeyAerosolPhaseWater, Name: r.AerosolPhaseWater})
}

func (r AqueousEquilibrium) PhaseRefs() []PhaseRef {
	return []PhaseRef{{Field: KeyAerosolPhase, Name: r.AerosolPhase}}
}

// HenrysLaw is a Henry's Law gas/aqueous phase transfer.
type HenrysLaw struct {
	Meta
	GasPhase            string
	GasPhaseSpecies     string
	AerosolPhase        string
	AerosolPhaseSpecies string
	AerosolPhaseWater   string
}

func (HenrysLaw) Variant() Variant { return VariantHenrysLaw }

func (r HenrysLaw) SpeciesRefs() []SpeciesRef {
	return []SpeciesRef{
		{Field: KeyGasPhaseSpecies, Name: r.GasPhaseSpecies},
		{Field: KeyAerosolPhaseSpecies, Name: r.AerosolPhaseSpecies},
		{Field: KeyAerosolPhaseWater, Name: r.AerosolPhaseWater},
	}
}

func (r HenrysLaw) PhaseRefs() []PhaseRef {
	return []PhaseRef{
		{Field: KeyGasPhase, Name: r.GasPhase},
		{Field: KeyAerosolPhase, Name: r.AerosolPhase},
	}
}

// WetDeposition removes an entire aerosol phase at a rate scaled by
// ScalingFactor.
type WetDeposition struct {
	Meta
	AerosolPhase  string
	ScalingFactor float64
}

func (WetDeposition) Variant() Variant { return VariantWetDeposition }

func (WetDeposition) SpeciesRefs() []SpeciesRef { return nil }

func (r WetDeposition) PhaseRefs() []PhaseRef {
	return []PhaseRef{{Field: KeyAerosolPhase, Name: r.AerosolPhase}}
}

// Reactants returns the reactant list of r, or nil for variants that do
// not consume reactant lists.
func Reactants(r Reaction) []ReactionComponent {
	switch rxn := r.(type) {
	case Arrhenius:
		return rxn.Reactants
	case CondensedPhaseArrhenius:
		return rxn.Reactants
	case Troe:
		return rxn.Reactants
	case Branched:
		return rxn.Reactants
	case Tunneling:
		return rxn.Reactants
	case Photolysis:
		return rxn.Reactants
	case CondensedPhasePhotolysis:
		return rxn.Reactants
	case FirstOrderLoss:
		return rxn.Reactants
	case AqueousEquilibrium:
		return rxn.Reactants
	default:
		return nil
	}
}

// Products returns the product list of r. Branched reactions return both
// branches, nitrate first.
func Products(r Reaction) []ReactionComponent {
	switch rxn := r.(type) {
	case Arrhenius:
		return rxn.Products
	case CondensedPhaseArrhenius:
		return rxn.Products
	case Troe:
		return rxn.Products
	case Branched:
		return append(append([]ReactionComponent(nil), rxn.NitrateProducts...), rxn.AlkoxyProducts...)
	case Tunneling:
		return rxn.Products
	case Surface:
		return rxn.GasPhaseProducts
	case Photolysis:
		return rxn.Products
	case CondensedPhasePhotolysis:
		return rxn.Products
	case Emission:
		return rxn.Products
	case AqueousEquilibrium:
		return rxn.Products
	default:
		return nil
	}
}

// ConsumesReactants reports whether variant v is defined over a reactant
// list, which must then be non-empty.
func ConsumesReactants(v Variant) bool {
	switch v {
	case VariantArrhenius, VariantCondensedPhaseArrhenius, VariantTroe, VariantBranched,
		VariantTunneling, VariantPhotolysis, VariantCondensedPhasePhotolysis,
		VariantFirstOrderLoss, VariantAqueousEquilibrium:
		return true
	default:
		return false
	}
}
