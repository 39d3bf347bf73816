package model

import (
	"reflect"
	"slices"
)

// Mechanism is a parsed, cross-validated chemical mechanism. It holds no
// references into the source document and is never mutated after
// NewMechanism returns, so it is safe to share between goroutines.
type Mechanism struct {
	name      string
	version   Version
	species   []Species
	phases    []Phase
	reactions []Reaction

	index        map[Variant][]int
	speciesIndex map[string]int
	phaseIndex   map[string]int
}

// NewMechanism assembles a mechanism from already validated entities.
// The inputs are copied.
func NewMechanism(name string, version Version, species []Species, phases []Phase, reactions []Reaction) *Mechanism {
	m := &Mechanism{
		name:         name,
		version:      version,
		species:      make([]Species, len(species)),
		phases:       make([]Phase, len(phases)),
		reactions:    make([]Reaction, len(reactions)),
		index:        make(map[Variant][]int),
		speciesIndex: make(map[string]int, len(species)),
		phaseIndex:   make(map[string]int, len(phases)),
	}

	for i, s := range species {
		m.species[i] = copySpecies(s)
		if _, exists := m.speciesIndex[s.Name]; !exists {
			m.speciesIndex[s.Name] = i
		}
	}
	for i, p := range phases {
		m.phases[i] = copyPhase(p)
		if _, exists := m.phaseIndex[p.Name]; !exists {
			m.phaseIndex[p.Name] = i
		}
	}
	for i, r := range reactions {
		m.reactions[i] = CopyReaction(r)
		m.index[r.Variant()] = append(m.index[r.Variant()], i)
	}

	return m
}

// Name returns the mechanism name, which may be empty.
func (m *Mechanism) Name() string { return m.name }

// Version returns the schema version the document declared.
func (m *Mechanism) Version() Version { return m.version }

// Species returns the species in document order.
func (m *Mechanism) Species() []Species {
	out := make([]Species, len(m.species))
	for i, s := range m.species {
		out[i] = copySpecies(s)
	}
	return out
}

// Phases returns the phases in document order.
func (m *Mechanism) Phases() []Phase {
	out := make([]Phase, len(m.phases))
	for i, p := range m.phases {
		out[i] = copyPhase(p)
	}
	return out
}

// Reactions returns every reaction in document order.
func (m *Mechanism) Reactions() []Reaction {
	out := make([]Reaction, len(m.reactions))
	for i, r := range m.reactions {
		out[i] = CopyReaction(r)
	}
	return out
}

// ReactionsOf returns the reactions of variant v in document order.
func (m *Mechanism) ReactionsOf(v Variant) []Reaction {
	positions := m.index[v]
	out := make([]Reaction, len(positions))
	for i, pos := range positions {
		out[i] = CopyReaction(m.reactions[pos])
	}
	return out
}

// ReactionCount returns the total number of reactions.
func (m *Mechanism) ReactionCount() int { return len(m.reactions) }

// CountOf returns the number of reactions of variant v.
func (m *Mechanism) CountOf(v Variant) int { return len(m.index[v]) }

// Variants returns the variants present in the mechanism, in AllVariants
// order.
func (m *Mechanism) Variants() []Variant {
	var out []Variant
	for _, v := range allVariants {
		if len(m.index[v]) > 0 {
			out = append(out, v)
		}
	}
	return out
}

// LookupSpecies returns the species with the given name.
func (m *Mechanism) LookupSpecies(name string) (Species, bool) {
	i, ok := m.speciesIndex[name]
	if !ok {
		return Species{}, false
	}
	return copySpecies(m.species[i]), true
}

// LookupPhase returns the phase with the given name.
func (m *Mechanism) LookupPhase(name string) (Phase, bool) {
	i, ok := m.phaseIndex[name]
	if !ok {
		return Phase{}, false
	}
	return copyPhase(m.phases[i]), true
}

// Equal reports whether m and other hold the same name, version and
// entities in the same order.
func (m *Mechanism) Equal(other *Mechanism) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.name == other.name &&
		m.version == other.version &&
		reflect.DeepEqual(m.species, other.species) &&
		reflect.DeepEqual(m.phases, other.phases) &&
		reflect.DeepEqual(m.reactions, other.reactions)
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

func copyComments(c map[string]string) map[string]string {
	if c == nil {
		return nil
	}
	out := make(map[string]string, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

func copySpecies(s Species) Species {
	s.AbsoluteTolerance = copyFloat(s.AbsoluteTolerance)
	s.DiffusionCoefficient = copyFloat(s.DiffusionCoefficient)
	s.MolecularWeight = copyFloat(s.MolecularWeight)
	s.HenrysLawConstant298 = copyFloat(s.HenrysLawConstant298)
	s.HenrysLawConstantExponentialFactor = copyFloat(s.HenrysLawConstantExponentialFactor)
	s.NStar = copyFloat(s.NStar)
	s.Density = copyFloat(s.Density)
	s.Comments = copyComments(s.Comments)
	return s
}

func copyPhase(p Phase) Phase {
	p.Species = slices.Clone(p.Species)
	p.Comments = copyComments(p.Comments)
	return p
}

func copyComponents(in []ReactionComponent) []ReactionComponent {
	if in == nil {
		return nil
	}
	out := make([]ReactionComponent, len(in))
	for i, c := range in {
		c.Comments = copyComments(c.Comments)
		out[i] = c
	}
	return out
}

func copyMeta(m Meta) Meta {
	m.Comments = copyComments(m.Comments)
	return m
}

// CopyReaction returns a deep copy of r that shares no slices or maps
// with it.
func CopyReaction(r Reaction) Reaction {
	switch rxn := r.(type) {
	case Arrhenius:
		rxn.Meta = copyMeta(rxn.Meta)
		rxn.Reactants = copyComponents(rxn.Reactants)
		rxn.Products = copyComponents(rxn.Products)
		return rxn
	case CondensedPhaseArrhenius:
		rxn.Meta = copyMeta(rxn.Meta)
		rxn.Reactants = copyComponents(rxn.Reactants)
		rxn.Products = copyComponents(rxn.Products)
		return rxn
	case Troe:
		rxn.Meta = copyMeta(rxn.Meta)
		rxn.Reactants = copyComponents(rxn.Reactants)
		rxn.Products = copyComponents(rxn.Products)
		rxn.Explicit = slices.Clone(rxn.Explicit)
		return rxn
	case Branched:
		rxn.Meta = copyMeta(rxn.Meta)
		rxn.Reactants = copyComponents(rxn.Reactants)
		rxn.NitrateProducts = copyComponents(rxn.NitrateProducts)
		rxn.AlkoxyProducts = copyComponents(rxn.AlkoxyProducts)
		return rxn
	case Tunneling:
		rxn.Meta = copyMeta(rxn.Meta)
		rxn.Reactants = copyComponents(rxn.Reactants)
		rxn.Products = copyComponents(rxn.Products)
		return rxn
	case Surface:
		rxn.Meta = copyMeta(rxn.Meta)
		rxn.GasPhaseProducts = copyComponents(rxn.GasPhaseProducts)
		return rxn
	case Photolysis:
		rxn.Meta = copyMeta(rxn.Meta)
		rxn.Reactants = copyComponents(rxn.Reactants)
		rxn.Products = copyComponents(rxn.Products)
		return rxn
	case CondensedPhasePhotolysis:
		rxn.Meta = copyMeta(rxn.Meta)
		rxn.Reactants = copyComponents(rxn.Reactants)
		rxn.Products = copyComponents(rxn.Products)
		return rxn
	case Emission:
		rxn.Meta = copyMeta(rxn.Meta)
		rxn.Products = copyComponents(rxn.Products)
		return rxn
	case FirstOrderLoss:
		rxn.Meta = copyMeta(rxn.Meta)
		rxn.Reactants = copyComponents(rxn.Reactants)
		return rxn
	case SimpolPhaseTransfer:
		rxn.Meta = copyMeta(rxn.Meta)
		return rxn
	case AqueousEquilibrium:
		rxn.Meta = copyMeta(rxn.Meta)
		rxn.Reactants = copyComponents(rxn.Reactants)
		rxn.Products = copyComponents(rxn.Products)
		return rxn
	case HenrysLaw:
		rxn.Meta = copyMeta(rxn.Meta)
		return rxn
	case WetDeposition:
		rxn.Meta = copyMeta(rxn.Meta)
		return rxn
	default:
		return r
	}
}
