package parser

import (
	"fmt"
	"strings"

	"openatmos/mechconf/pkg/mechconf/document"
	mcerrors "openatmos/mechconf/pkg/mechconf/errors"
	"openatmos/mechconf/pkg/mechconf/model"
	"openatmos/mechconf/pkg/mechconf/schema"
)

// builder turns a decoded document into typed entities. It records every
// field-level problem in errors and keeps going, so one pass reports all
// of them. Builders never look at other entities.
type builder struct {
	sourcePath string
	errors     *mcerrors.ErrorList
}

func newBuilder(sourcePath string) *builder {
	return &builder{
		sourcePath: sourcePath,
		errors:     mcerrors.NewErrorList(),
	}
}

// entry is the entity currently being built.
type entry struct {
	kind   string // Entity name used in error subjects
	index  int
	node   *document.Node
	schema *schema.Schema
	prefix string        // Field path prefix for nested entries, e.g. "reactants[1]."
	site   *ReactionSite // Non-nil for reactions
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

// Build converts a decoded document into a Draft. The returned list holds
// every schema error found; the Draft is nil whenever the list is non-empty.
func Build(root *document.Node, sourcePath string) (*Draft, *mcerrors.ErrorList) {
	b := newBuilder(sourcePath)
	draft := b.buildMechanism(root)
	if b.errors.HasErrors() {
		return nil, b.errors
	}
	return draft, b.errors
}

func (b *builder) buildMechanism(root *document.Node) *Draft {
	top := &entry{kind: schema.EntityMechanism, index: mcerrors.NoIndex, node: root, schema: schema.Mechanism()}
	if root == nil || root.Kind != document.KindMapping {
		loc := document.Location{File: b.sourcePath, Line: 1, Column: 1}
		kind := "empty document"
		if root != nil {
			loc, kind = root.Location, root.Kind.String()
		}
		b.fail(top, mcerrors.CodeInvalidType, "", loc, "mechanism document must be a mapping, got %s", kind)
		return nil
	}

	draft := &Draft{Source: b.sourcePath}

	ok := true
	if pair, found := root.Pair(model.KeyVersion); found {
		if draft.Version, ok = b.version(top, pair); !ok {
			// A different major version changes what every key means.
			return nil
		}
	}

	b.checkKeys(top)
	draft.Name = b.text(top, model.KeyName)

	for i, item := range b.items(top, model.KeySpecies) {
		s, loc := b.buildSpecies(item, i)
		draft.Species = append(draft.Species, s)
		draft.Sites.Species = append(draft.Sites.Species, loc)
	}
	for i, item := range b.items(top, model.KeyPhases) {
		p, site := b.buildPhase(item, i)
		draft.Phases = append(draft.Phases, p)
		draft.Sites.Phases = append(draft.Sites.Phases, site)
	}
	for i, item := range b.items(top, model.KeyReactions) {
		r, site := b.buildReaction(item, i)
		if r == nil {
			continue
		}
		draft.Reactions = append(draft.Reactions, r)
		draft.Sites.Reactions = append(draft.Sites.Reactions, site)
	}

	return draft
}

func (b *builder) version(top *entry, pair document.Pair) (model.Version, bool) {
	raw := pair.Value.Value
	if pair.Value.Kind != document.KindString && pair.Value.Kind != document.KindNumber {
		b.fail(top, mcerrors.CodeInvalidType, model.KeyVersion, pair.Value.Location,
			"'%s' must be a %s, got %s", model.KeyVersion, schema.KindVersion, pair.Value.Kind)
		return model.Version{}, false
	}

	v, err := model.ParseVersion(raw)
	if err != nil {
		e := b.fail(top, mcerrors.CodeInvalidVersion, model.KeyVersion, pair.Value.Location,
			"invalid version %q", raw)
		e.Err = err
		e.Suggestion = fmt.Sprintf("use a semantic version such as \"%d.0.0\"", model.SupportedMajor)
		return model.Version{}, false
	}
	if !v.IsSupported() {
		e := b.fail(top, mcerrors.CodeInvalidVersion, model.KeyVersion, pair.Value.Location,
			"unsupported version %s: only major version %d is supported", v, model.SupportedMajor)
		e.Suggestion = fmt.Sprintf("set '%s' to \"%d.0.0\"", model.KeyVersion, model.SupportedMajor)
		return v, false
	}
	return v, true
}

// items returns the mapping elements of a required object list, reporting
// a kind error for the list itself.
func (b *builder) items(e *entry, key string) []*document.Node {
	n := e.node.Get(key)
	if n == nil {
		return nil
	}
	if n.Kind != document.KindSequence {
		b.kindError(e, key, n, schema.KindObjectList)
		return nil
	}
	return n.Items
}

// checkKeys reports missing required keys, unknown keys and mutually
// exclusive pairs. Keys starting with the comment prefix are always
// accepted.
func (b *builder) checkKeys(e *entry) {
	for _, f := range e.schema.Required() {
		if !e.node.Has(f.Key) {
			err := b.fail(e, mcerrors.CodeRequiredKeyNotFound, f.Key, e.node.Location,
				"missing required key '%s'", f.Key)
			err.Suggestion = mcerrors.SuggestMissingKey(f.Key)
		}
	}

	for _, pair := range e.node.Pairs {
		if strings.HasPrefix(pair.Key, model.CommentPrefix) {
			continue
		}
		f, ok := e.schema.Field(pair.Key)
		if !ok {
			err := b.fail(e, mcerrors.CodeInvalidKey, pair.Key, pair.KeyLocation,
				"unknown key '%s'", pair.Key)
			err.Suggestion = mcerrors.SuggestKey(pair.Key, e.schema.Keys())
			continue
		}
		// Report an exclusive pair once, on whichever key comes second.
		if f.ExclusiveWith != "" && f.Key > f.ExclusiveWith && e.node.Has(f.ExclusiveWith) {
			first, _ := e.node.Pair(f.ExclusiveWith)
			at := pair.KeyLocation
			if first.KeyLocation.Line > at.Line {
				at = first.KeyLocation
			}
			b.fail(e, mcerrors.CodeMutuallyExclusiveOption, pair.Key, at,
				"'%s' and '%s' are mutually exclusive", f.ExclusiveWith, f.Key)
		}
	}
}

func (b *builder) kindError(e *entry, key string, n *document.Node, want schema.Kind) {
	b.fail(e, mcerrors.CodeInvalidType, key, n.Location,
		"'%s' must be a %s, got %s", key, want, n.Kind)
}

func (b *builder) recordField(e *entry, key string, n *document.Node) {
	if e.site != nil && n != nil {
		e.site.Fields[key] = n.Location
	}
}

// number reads a numeric field, substituting the schema default when it
// is absent and checking its constraint when present.
func (b *builder) number(e *entry, key string) float64 {
	f, _ := e.schema.Field(key)
	n := e.node.Get(key)
	if n == nil {
		return f.DefaultValue()
	}
	b.recordField(e, key, n)

	v, ok := n.Float()
	if !ok {
		b.kindError(e, key, n, schema.KindNumber)
		return f.DefaultValue()
	}
	if !f.Constraint.Check(v) {
		b.fail(e, mcerrors.CodeConstraintViolation, key, n.Location,
			"'%s' = %s violates constraint: %s", key, n.Value, f.Constraint)
	}
	return v
}

// optionalNumber is number for fields without a default: it returns nil
// when the key is absent.
func (b *builder) optionalNumber(e *entry, key string) *float64 {
	if !e.node.Has(key) {
		return nil
	}
	v := b.number(e, key)
	return &v
}

// text reads a string-valued field (plain string, species or phase name).
func (b *builder) text(e *entry, key string) string {
	n := e.node.Get(key)
	if n == nil {
		return ""
	}
	b.recordField(e, key, n)

	s, ok := n.Text()
	if !ok {
		f, _ := e.schema.Field(key)
		b.kindError(e, key, n, f.Kind)
		return ""
	}
	return s
}

func (b *builder) numberList(e *entry, key string) []float64 {
	f, _ := e.schema.Field(key)
	n := e.node.Get(key)
	if n == nil {
		return nil
	}
	b.recordField(e, key, n)

	if n.Kind != document.KindSequence {
		b.kindError(e, key, n, schema.KindNumberList)
		return nil
	}
	if f.Length > 0 && len(n.Items) != f.Length {
		b.fail(e, mcerrors.CodeConstraintViolation, key, n.Location,
			"'%s' must have exactly %d elements, got %d", key, f.Length, len(n.Items))
	}

	out := make([]float64, 0, len(n.Items))
	for i, item := range n.Items {
		v, ok := item.Float()
		if !ok {
			b.fail(e, mcerrors.CodeInvalidType, fmt.Sprintf("%s[%d]", key, i), item.Location,
				"'%s[%d]' must be a number, got %s", key, i, item.Kind)
			continue
		}
		if !f.Constraint.Check(v) {
			b.fail(e, mcerrors.CodeConstraintViolation, fmt.Sprintf("%s[%d]", key, i), item.Location,
				"'%s[%d]' = %s violates constraint: %s", key, i, item.Value, f.Constraint)
		}
		out = append(out, v)
	}
	return out
}

// components reads a reactant or product list.
func (b *builder) components(e *entry, key string) []model.ReactionComponent {
	n := e.node.Get(key)
	if n == nil {
		return nil
	}
	b.recordField(e, key, n)

	if n.Kind != document.KindSequence {
		b.kindError(e, key, n, schema.KindComponentList)
		return nil
	}

	out := make([]model.ReactionComponent, 0, len(n.Items))
	locations := make([]document.Location, 0, len(n.Items))
	for i, item := range n.Items {
		sub := &entry{
			kind:   e.kind,
			index:  e.index,
			node:   item,
			schema: schema.Component(),
			prefix: fmt.Sprintf("%s%s[%d].", e.prefix, key, i),
		}
		if item.Kind != document.KindMapping {
			b.fail(e, mcerrors.CodeInvalidType, fmt.Sprintf("%s[%d]", key, i), item.Location,
				"'%s[%d]' must be a mapping with '%s', got %s", key, i, model.KeySpeciesName, item.Kind)
			continue
		}

		b.checkKeys(sub)
		c := model.ReactionComponent{
			SpeciesName: b.text(sub, model.KeySpeciesName),
			Coefficient: b.number(sub, model.KeyCoefficient),
			Comments:    comments(item),
		}
		out = append(out, c)
		if nameNode := item.Get(model.KeySpeciesName); nameNode != nil {
			locations = append(locations, nameNode.Location)
		} else {
			locations = append(locations, item.Location)
		}
	}

	if e.site != nil {
		e.site.Elements[key] = locations
	}
	return out
}

// comments collects the comment-prefixed keys of a mapping. String values
// are kept raw and anything else as compact JSON, so both encodings yield
// the same map.
func comments(n *document.Node) map[string]string {
	var out map[string]string
	for _, pair := range n.Pairs {
		if !strings.HasPrefix(pair.Key, model.CommentPrefix) {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[pair.Key] = pair.Value.Compact()
	}
	return out
}

func (b *builder) buildSpecies(n *document.Node, index int) (model.Species, document.Location) {
	e := &entry{kind: schema.EntitySpecies, index: index, node: n, schema: schema.Species()}
	if n.Kind != document.KindMapping {
		b.fail(e, mcerrors.CodeInvalidType, "", n.Location, "species entry must be a mapping, got %s", n.Kind)
		return model.Species{}, n.Location
	}

	b.checkKeys(e)
	return model.Species{
		Name:                               b.text(e, model.KeyName),
		AbsoluteTolerance:                  b.optionalNumber(e, model.KeyAbsoluteTolerance),
		DiffusionCoefficient:               b.optionalNumber(e, model.KeyDiffusionCoefficient),
		MolecularWeight:                    b.optionalNumber(e, model.KeyMolecularWeight),
		HenrysLawConstant298:               b.optionalNumber(e, model.KeyHenrysLawConstant298),
		HenrysLawConstantExponentialFactor: b.optionalNumber(e, model.KeyHenrysLawConstantExponentialFactor),
		NStar:                              b.optionalNumber(e, model.KeyNStar),
		Density:                            b.optionalNumber(e, model.KeyDensity),
		TracerType:                         b.text(e, model.KeyTracerType),
		Comments:                           comments(n),
	}, n.Location
}

func (b *builder) buildPhase(n *document.Node, index int) (model.Phase, PhaseSite) {
	e := &entry{kind: schema.EntityPhase, index: index, node: n, schema: schema.Phase()}
	site := PhaseSite{Location: n.Location}
	if n.Kind != document.KindMapping {
		b.fail(e, mcerrors.CodeInvalidType, "", n.Location, "phase entry must be a mapping, got %s", n.Kind)
		return model.Phase{}, site
	}

	b.checkKeys(e)
	phase := model.Phase{
		Name:     b.text(e, model.KeyName),
		Comments: comments(n),
	}

	if members := n.Get(model.KeySpecies); members != nil {
		if members.Kind != document.KindSequence {
			b.kindError(e, model.KeySpecies, members, schema.KindStringList)
		} else {
			phase.Species = make([]string, 0, len(members.Items))
			for i, item := range members.Items {
				name, ok := item.Text()
				if !ok {
					b.fail(e, mcerrors.CodeInvalidType, fmt.Sprintf("%s[%d]", model.KeySpecies, i), item.Location,
						"'%s[%d]' must be a species name, got %s", model.KeySpecies, i, item.Kind)
					continue
				}
				phase.Species = append(phase.Species, name)
				site.Members = append(site.Members, item.Location)
			}
		}
	}

	return phase, site
}

func (b *builder) buildReaction(n *document.Node, index int) (model.Reaction, ReactionSite) {
	site := ReactionSite{
		Location: n.Location,
		Fields:   make(map[string]document.Location),
		Elements: make(map[string][]document.Location),
	}

	variant, err := classify(n)
	if err != nil {
		err.Index = index
		b.errors.Add(err)
		return nil, site
	}

	e := &entry{
		kind:   schema.EntityReaction,
		index:  index,
		node:   n,
		schema: schema.MustLookup(variant),
		site:   &site,
	}
	b.checkKeys(e)

	build := reactionBuilders[variant]
	return build(b, e), site
}
