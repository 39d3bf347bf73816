package model

// Variant identifies a reaction rate-law family. The string value is the
// canonical "type" tag used in configuration documents.
type Variant string

const (
	VariantUnknown                  Variant = ""
	VariantArrhenius                Variant = "ARRHENIUS"
	VariantTroe                     Variant = "TROE"
	VariantTunneling                Variant = "TUNNELING"
	VariantBranched                 Variant = "BRANCHED_NO_RO2"
	VariantPhotolysis               Variant = "PHOTOLYSIS"
	VariantEmission                 Variant = "EMISSION"
	VariantFirstOrderLoss           Variant = "FIRST_ORDER_LOSS"
	VariantSurface                  Variant = "SURFACE"
	VariantCondensedPhaseArrhenius  Variant = "CONDENSED_PHASE_ARRHENIUS"
	VariantCondensedPhasePhotolysis Variant = "CONDENSED_PHASE_PHOTOLYSIS"
	VariantAqueousEquilibrium       Variant = "AQUEOUS_EQUILIBRIUM"
	VariantHenrysLaw                Variant = "HL_PHASE_TRANSFER"
	VariantSimpolPhaseTransfer      Variant = "SIMPOL_PHASE_TRANSFER"
	VariantWetDeposition            Variant = "WET_DEPOSITION"
)

var allVariants = []Variant{
	VariantArrhenius,
	VariantTroe,
	VariantTunneling,
	VariantBranched,
	VariantPhotolysis,
	VariantEmission,
	VariantFirstOrderLoss,
	VariantSurface,
	VariantCondensedPhaseArrhenius,
	VariantCondensedPhasePhotolysis,
	VariantAqueousEquilibrium,
	VariantHenrysLaw,
	VariantSimpolPhaseTransfer,
	VariantWetDeposition,
}

// aliases maps legacy tags onto their current variant.
var aliases = map[string]Variant{
	"WENNBERG_NO_RO2":    VariantBranched,
	"WENNBERG_TUNNELING": VariantTunneling,
}

var displayNames = map[Variant]string{
	VariantArrhenius:                "Arrhenius",
	VariantTroe:                     "Troe",
	VariantTunneling:                "Tunneling",
	VariantBranched:                 "Branched",
	VariantPhotolysis:               "Photolysis",
	VariantEmission:                 "Emission",
	VariantFirstOrderLoss:           "FirstOrderLoss",
	VariantSurface:                  "Surface",
	VariantCondensedPhaseArrhenius:  "CondensedPhaseArrhenius",
	VariantCondensedPhasePhotolysis: "CondensedPhasePhotolysis",
	VariantAqueousEquilibrium:       "AqueousEquilibrium",
	VariantHenrysLaw:                "HenrysLaw",
	VariantSimpolPhaseTransfer:      "SimpolPhaseTransfer",
	VariantWetDeposition:            "WetDeposition",
}

// AllVariants returns every known variant in a fixed order.
func AllVariants() []Variant {
	return append([]Variant(nil), allVariants...)
}

// VariantTags returns the canonical tags of every known variant.
func VariantTags() []string {
	tags := make([]string, len(allVariants))
	for i, v := range allVariants {
		tags[i] = string(v)
	}
	return tags
}

// LookupVariant resolves a document tag, including legacy aliases.
func LookupVariant(tag string) (Variant, bool) {
	for _, v := range allVariants {
		if string(v) == tag {
			return v, true
		}
	}
	if v, ok := aliases[tag]; ok {
		return v, true
	}
	return VariantUnknown, false
}

// String returns the canonical document tag.
func (v Variant) String() string {
	if v == VariantUnknown {
		return "UNKNOWN"
	}
	return string(v)
}

// DisplayName returns a readable name such as "CondensedPhaseArrhenius".
func (v Variant) DisplayName() string {
	if name, ok := displayNames[v]; ok {
		return name
	}
	return "Unknown"
}

// IsKnown reports whether v is one of the supported variants.
func (v Variant) IsKnown() bool {
	_, ok := displayNames[v]
	return ok
}
