package camp

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"openatmos/mechconf/pkg/mechconf/document"
	mcerrors "openatmos/mechconf/pkg/mechconf/errors"
	"openatmos/mechconf/pkg/mechconf/model"
)

// builder appends the entries of camp-data arrays to one Mechanism. Like
// the versioned builder it reports every problem and keeps going; an entry
// with a key error is skipped rather than half-built.
type builder struct {
	source string
	errors *mcerrors.ErrorList
	mech   *Mechanism
}

func newBuilder(mech *Mechanism, source string) *builder {
	return &builder{source: source, errors: mcerrors.NewErrorList(), mech: mech}
}

// entry is the object currently being built.
type entry struct {
	kind   string
	index  int
	node   *document.Node
	prefix string // Field prefix for components, e.g. "reactants.O3."
}

func (b *builder) fail(e *entry, code mcerrors.Code, field string, loc document.Location, format string, args ...any) *mcerrors.Error {
	err := b.errors.AddError(mcerrors.ErrorTypeSchema, code, fmt.Sprintf(format, args...), loc)
	err.Entity = e.kind
	err.Index = e.index
	if field != "" {
		err.Field = e.prefix + field
	}
	return err
}

// data builds the camp-data array of one file.
func (b *builder) data(root *document.Node) {
	top := &entry{kind: EntityFile, index: mcerrors.NoIndex, node: root}
	if root == nil || root.Kind != document.KindMapping {
		loc := document.Location{File: b.source, Line: 1, Column: 1}
		kind := "empty document"
		if root != nil {
			loc, kind = root.Location, root.Kind.String()
		}
		b.fail(top, mcerrors.CodeInvalidType, "", loc, "camp data file must be a mapping, got %s", kind)
		return
	}
	n := root.Get(KeyCampData)
	if n == nil {
		err := b.fail(top, mcerrors.CodeRequiredKeyNotFound, KeyCampData, root.Location,
			"missing required key '%s'", KeyCampData)
		err.Suggestion = mcerrors.SuggestMissingKey(KeyCampData)
		return
	}
	b.entries(top, KeyCampData, n, EntityEntry)
}

// entries dispatches each object of an array on its type.
func (b *builder) entries(parent *entry, key string, n *document.Node, kind string) {
	if n.Kind != document.KindSequence {
		b.fail(parent, mcerrors.CodeInvalidType, key, n.Location,
			"'%s' must be a sequence of objects, got %s", key, n.Kind)
		return
	}
	for i, item := range n.Items {
		e := &entry{kind: kind, index: i, node: item}
		if item.Kind != document.KindMapping {
			b.fail(e, mcerrors.CodeInvalidType, "", item.Location, "entry must be a mapping, got %s", item.Kind)
			continue
		}
		b.dispatch(e)
	}
}

func (b *builder) dispatch(e *entry) {
	typeNode := e.node.Get(KeyType)
	if typeNode == nil {
		err := b.fail(e, mcerrors.CodeRequiredKeyNotFound, KeyType, e.node.Location,
			"missing required key '%s'", KeyType)
		err.Suggestion = mcerrors.SuggestMissingKey(KeyType)
		return
	}
	typ, ok := typeNode.Text()
	if !ok {
		b.fail(e, mcerrors.CodeInvalidType, KeyType, typeNode.Location,
			"'%s' must be a string, got %s", KeyType, typeNode.Kind)
		return
	}
	keys, ok := entryKeys[typ]
	if !ok {
		err := b.fail(e, mcerrors.CodeUnknownType, KeyType, typeNode.Location, "unknown type '%s'", typ)
		err.Suggestion = mcerrors.SuggestReactionType(typ, EntryTypes)
		return
	}
	if !b.checkKeys(e, keys) {
		return
	}

	switch typ {
	case TypeChemSpec:
		b.species(e)
	case TypeRelativeTolerance:
		b.mech.RelativeTolerance = b.number(e, KeyValue, 0)
	case TypeMechanism:
		b.mech.Name = b.text(e, KeyName)
		b.entries(e, KeyReactions, e.node.Get(KeyReactions), EntityReaction)
	case TypePhotolysis:
		b.userDefined(e, PrefixPhotolysis)
	case TypeEmission:
		b.emission(e)
	case TypeFirstOrderLoss:
		b.firstOrderLoss(e)
	case TypeArrhenius:
		b.arrhenius(e)
	case TypeTroe:
		b.troe(e)
	case TypeTernaryChemicalActivation:
		b.ternaryChemicalActivation(e)
	case TypeBranched, TypeWennbergNoRO2:
		b.branched(e)
	case TypeTunneling, TypeWennbergTunneling:
		b.tunneling(e)
	case TypeSurface:
		b.surface(e)
	case TypeUserDefined:
		b.userDefined(e, PrefixUserDefined)
	}
}

// checkKeys reports every missing required key and every key outside the
// set. Comment keys are accepted. It returns whether nothing was reported.
func (b *builder) checkKeys(e *entry, keys keySet) bool {
	before := b.errors.Count()
	for _, key := range keys.required {
		if !e.node.Has(key) {
			err := b.fail(e, mcerrors.CodeRequiredKeyNotFound, key, e.node.Location,
				"missing required key '%s'", key)
			err.Suggestion = mcerrors.SuggestMissingKey(key)
		}
	}
	for _, pair := range e.node.Pairs {
		if strings.HasPrefix(pair.Key, model.CommentPrefix) {
			continue
		}
		if !slices.Contains(keys.required, pair.Key) && !slices.Contains(keys.optional, pair.Key) {
			err := b.fail(e, mcerrors.CodeInvalidKey, pair.Key, pair.KeyLocation, "unknown key '%s'", pair.Key)
			err.Suggestion = mcerrors.SuggestKey(pair.Key, keys.all())
		}
	}
	return b.errors.Count() == before
}

func (b *builder) number(e *entry, key string, def float64) float64 {
	n := e.node.Get(key)
	if n == nil {
		return def
	}
	v, ok := n.Float()
	if !ok {
		b.fail(e, mcerrors.CodeInvalidType, key, n.Location, "'%s' must be a number, got %s", key, n.Kind)
		return def
	}
	return v
}

func (b *builder) optionalNumber(e *entry, key string) *float64 {
	if !e.node.Has(key) {
		return nil
	}
	v := b.number(e, key, 0)
	return &v
}

// integer reads a whole number such as the Wennberg n.
func (b *builder) integer(e *entry, key string) int {
	n := e.node.Get(key)
	if n == nil {
		return 0
	}
	v, ok := n.Float()
	if !ok || v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		b.fail(e, mcerrors.CodeInvalidType, key, n.Location, "'%s' must be an integer, got %s", key, n.Value)
		return 0
	}
	return int(v)
}

func (b *builder) text(e *entry, key string) string {
	n := e.node.Get(key)
	if n == nil {
		return ""
	}
	s, ok := n.Text()
	if !ok {
		b.fail(e, mcerrors.CodeInvalidType, key, n.Location, "'%s' must be a string, got %s", key, n.Kind)
		return ""
	}
	return s
}

func (b *builder) boolean(e *entry, key string) bool {
	n := e.node.Get(key)
	if n == nil {
		return false
	}
	if n.Kind != document.KindBool {
		b.fail(e, mcerrors.CodeInvalidType, key, n.Location, "'%s' must be a boolean, got %s", key, n.Kind)
		return false
	}
	return n.Bool
}

// components reads a species-keyed mapping such as {O3: {}, NO2: {qty: 2}}.
// Each value may set only the coefficient key; a null value takes the
// default of one.
func (b *builder) components(e *entry, key, coefficientKey string, integral bool) []Component {
	n := e.node.Get(key)
	if n == nil {
		return nil
	}
	if n.Kind != document.KindMapping {
		b.fail(e, mcerrors.CodeInvalidType, key, n.Location,
			"'%s' must be a mapping of species to properties, got %s", key, n.Kind)
		return nil
	}

	out := make([]Component, 0, len(n.Pairs))
	for _, pair := range n.Pairs {
		sub := &entry{kind: e.kind, index: e.index, node: pair.Value, prefix: e.prefix + key + "." + pair.Key + "."}
		c := Component{Species: pair.Key, Coefficient: 1}
		switch pair.Value.Kind {
		case document.KindNull:
		case document.KindMapping:
			if !b.checkKeys(sub, keySet{optional: []string{coefficientKey}}) {
				continue
			}
			if integral {
				if pair.Value.Has(coefficientKey) {
					c.Coefficient = float64(b.integer(sub, coefficientKey))
				}
			} else {
				c.Coefficient = b.number(sub, coefficientKey, 1)
			}
		default:
			b.fail(e, mcerrors.CodeInvalidType, key+"."+pair.Key, pair.Value.Location,
				"'%s.%s' must be a mapping, got %s", key, pair.Key, pair.Value.Kind)
			continue
		}
		out = append(out, c)
	}
	return out
}

func (b *builder) reactants(e *entry) []Component {
	return b.components(e, KeyReactants, KeyQty, true)
}

func (b *builder) products(e *entry, key string) []Component {
	return b.components(e, key, KeyYield, false)
}

// order is the total reaction order: the sum of reactant quantities.
func order(reactants []Component) float64 {
	var n float64
	for _, r := range reactants {
		n += r.Coefficient
	}
	return n
}

// perMolecule converts a rate parameter of the given order from mol m-3
// to molecules cm-3 units.
func perMolecule(v, order float64) float64 {
	return v * math.Pow(MolesM3ToMoleculesCm3, order)
}

func (b *builder) species(e *entry) {
	s := Species{
		Name:                 b.text(e, KeyName),
		TracerType:           b.text(e, KeyTracerType),
		AbsoluteTolerance:    b.optionalNumber(e, KeyAbsoluteTolerance),
		DiffusionCoefficient: b.optionalNumber(e, KeyDiffusionCoefficient),
		MolecularWeight:      b.optionalNumber(e, KeyMolecularWeight),
		ThirdBody:            b.boolean(e, KeyThirdBody),
	}
	for _, pair := range e.node.Pairs {
		if !strings.HasPrefix(pair.Key, model.CommentPrefix) {
			continue
		}
		if s.UnknownProperties == nil {
			s.UnknownProperties = make(map[string]string)
		}
		s.UnknownProperties[pair.Key] = pair.Value.Compact()
	}
	b.mech.Species = append(b.mech.Species, s)
}

func (b *builder) arrhenius(e *entry) {
	reactants := b.reactants(e)
	r := Arrhenius{
		Name:      b.text(e, KeyMusicaName),
		A:         perMolecule(b.number(e, KeyA, 1), order(reactants)-1),
		B:         b.number(e, KeyB, 0),
		C:         b.number(e, KeyC, 0),
		D:         b.number(e, KeyD, 300),
		E:         b.number(e, KeyE, 0),
		Reactants: reactants,
		Products:  b.products(e, KeyProducts),
	}
	if pair, ok := e.node.Pair(KeyEa); ok {
		if r.C != 0 {
			b.fail(e, mcerrors.CodeMutuallyExclusiveOption, KeyEa, pair.KeyLocation,
				"'%s' and a non-zero '%s' are mutually exclusive", KeyEa, KeyC)
			return
		}
		r.C = -b.number(e, KeyEa, 0) / model.Boltzmann
	}
	b.mech.Reactions.Arrhenius = append(b.mech.Reactions.Arrhenius, r)
}

func (b *builder) troeParameters(e *entry) Troe {
	reactants := b.reactants(e)
	n := order(reactants)
	return Troe{
		K0A:       perMolecule(b.number(e, KeyK0A, 1), n),
		K0B:       b.number(e, KeyK0B, 0),
		K0C:       b.number(e, KeyK0C, 0),
		KinfA:     perMolecule(b.number(e, KeyKinfA, 1), n-1),
		KinfB:     b.number(e, KeyKinfB, 0),
		KinfC:     b.number(e, KeyKinfC, 0),
		Fc:        b.number(e, KeyFc, 0.6),
		N:         b.number(e, KeyN, 1),
		Reactants: reactants,
		Products:  b.products(e, KeyProducts),
	}
}

func (b *builder) troe(e *entry) {
	b.mech.Reactions.Troe = append(b.mech.Reactions.Troe, b.troeParameters(e))
}

func (b *builder) ternaryChemicalActivation(e *entry) {
	r := TernaryChemicalActivation(b.troeParameters(e))
	b.mech.Reactions.TernaryChemicalActivation = append(b.mech.Reactions.TernaryChemicalActivation, r)
}

func (b *builder) branched(e *entry) {
	reactants := b.reactants(e)
	r := Branched{
		X:               perMolecule(b.number(e, KeyX, 0), order(reactants)-1),
		Y:               b.number(e, KeyY, 0),
		A0:              b.number(e, KeyA0, 0),
		N:               b.integer(e, KeyLowerN),
		Reactants:       reactants,
		AlkoxyProducts:  b.products(e, KeyAlkoxyProducts),
		NitrateProducts: b.products(e, KeyNitrateProducts),
	}
	b.mech.Reactions.Branched = append(b.mech.Reactions.Branched, r)
}

func (b *builder) tunneling(e *entry) {
	reactants := b.reactants(e)
	r := Tunneling{
		A:         perMolecule(b.number(e, KeyA, 1), order(reactants)-1),
		B:         b.number(e, KeyB, 0),
		C:         b.number(e, KeyC, 0),
		Reactants: reactants,
		Products:  b.products(e, KeyProducts),
	}
	b.mech.Reactions.Tunneling = append(b.mech.Reactions.Tunneling, r)
}

func (b *builder) surface(e *entry) {
	r := Surface{
		Name:                PrefixSurface + b.text(e, KeyMusicaName),
		ReactionProbability: b.number(e, KeyProbability, 1),
		GasPhaseSpecies:     Component{Species: b.text(e, KeyGasPhaseReactant), Coefficient: 1},
		GasPhaseProducts:    b.products(e, KeyGasPhaseProducts),
	}
	b.mech.Reactions.Surface = append(b.mech.Reactions.Surface, r)
}

func (b *builder) userDefined(e *entry, prefix string) {
	b.addUserDefined(UserDefined{
		Name:          prefix + b.text(e, KeyMusicaName),
		ScalingFactor: b.number(e, KeyScalingFactor, 1),
		Reactants:     b.reactants(e),
		Products:      b.products(e, KeyProducts),
	})
}

// emission creates the species from nothing. Its products key is
// accepted but the emitted species is the only product.
func (b *builder) emission(e *entry) {
	b.addUserDefined(UserDefined{
		Name:          PrefixEmission + b.text(e, KeyMusicaName),
		ScalingFactor: b.number(e, KeyScalingFactor, 1),
		Products:      []Component{{Species: b.text(e, KeySpecies), Coefficient: 1}},
	})
}

// firstOrderLoss consumes the species without products.
func (b *builder) firstOrderLoss(e *entry) {
	b.addUserDefined(UserDefined{
		Name:          PrefixFirstOrderLoss + b.text(e, KeyMusicaName),
		ScalingFactor: b.number(e, KeyScalingFactor, 1),
		Reactants:     []Component{{Species: b.text(e, KeySpecies), Coefficient: 1}},
	})
}

func (b *builder) addUserDefined(r UserDefined) {
	b.mech.Reactions.UserDefined = append(b.mech.Reactions.UserDefined, r)
}
