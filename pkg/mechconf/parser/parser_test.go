package parser

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"openatmos/mechconf/pkg/mechconf/document"
	mcerrors "openatmos/mechconf/pkg/mechconf/errors"
	"openatmos/mechconf/pkg/mechconf/model"
	"openatmos/mechconf/pkg/mechconf/schema"
)

const header = `version: 1.0.0
name: test
species:
  - name: A
  - name: B
phases:
  - name: gas
    species: [A, B]
reactions:
`

func build(t *testing.T, reactions string) (*Draft, *mcerrors.ErrorList) {
	t.Helper()
	root := decodeYAML(t, header+reactions)
	return Build(root, "test.yaml")
}

func mustBuild(t *testing.T, reactions string) *Draft {
	t.Helper()
	draft, errs := build(t, reactions)
	if errs.HasErrors() {
		t.Fatalf("Build() failed: %v", errs)
	}
	return draft
}

func TestBuild_Defaults(t *testing.T) {
	draft := mustBuild(t, `  - type: ARRHENIUS
    gas phase: gas
    reactants:
      - species name: A
    products:
      - species name: B
  - type: TROE
    gas phase: gas
    reactants: [{species name: A}]
    products: [{species name: B}]
  - type: SURFACE
    gas phase: gas
    gas-phase species: A
    gas-phase products: [{species name: B}]
    aerosol phase: gas
  - type: BRANCHED_NO_RO2
    gas phase: gas
    reactants: [{species name: A}]
    nitrate products: [{species name: B}]
    alkoxy products: []
`)

	if len(draft.Reactions) != 4 {
		t.Fatalf("len(Reactions) = %d, want 4", len(draft.Reactions))
	}

	arr := draft.Reactions[0].(model.Arrhenius)
	if arr.A != 1 || arr.B != 0 || arr.C != 0 || arr.D != 300 || arr.E != 0 {
		t.Errorf("Arrhenius = %+v, want A=1 B=0 C=0 D=300 E=0", arr)
	}
	if arr.Reactants[0].Coefficient != 1 {
		t.Errorf("coefficient = %v, want 1", arr.Reactants[0].Coefficient)
	}

	troe := draft.Reactions[1].(model.Troe)
	if troe.K0A != 1 || troe.KinfA != 1 || troe.Fc != 0.6 || troe.N != 1 {
		t.Errorf("Troe = %+v, want k0_A=1 kinf_A=1 Fc=0.6 N=1", troe)
	}
	if len(troe.Explicit) != 0 {
		t.Errorf("Explicit = %v, want none", troe.Explicit)
	}

	if s := draft.Reactions[2].(model.Surface); s.ReactionProbability != 1 {
		t.Errorf("ReactionProbability = %v, want 1", s.ReactionProbability)
	}

	br := draft.Reactions[3].(model.Branched)
	if br.X != 1 || br.Y != 0 || br.A0 != 1 || br.N != 0 {
		t.Errorf("Branched = %+v, want X=1 Y=0 a0=1 n=0", br)
	}
}

func TestBuild_ActivationEnergy(t *testing.T) {
	draft := mustBuild(t, `  - type: ARRHENIUS
    gas phase: gas
    reactants: [{species name: A}]
    products: [{species name: B}]
    Ea: 2.0e-20
`)
	arr := draft.Reactions[0].(model.Arrhenius)
	want := -2.0e-20 / model.Boltzmann
	if math.Abs(arr.C-want) > 1e-9*math.Abs(want) {
		t.Errorf("C = %v, want %v", arr.C, want)
	}
}

func TestBuild_ActivationEnergyExclusiveWithC(t *testing.T) {
	_, errs := build(t, `  - type: CONDENSED_PHASE_ARRHENIUS
    aerosol phase: gas
    aerosol-phase water: B
    reactants: [{species name: A}]
    products: [{species name: B}]
    C: 10
    Ea: 2.0e-20
`)
	got := errs.ByCode(mcerrors.CodeMutuallyExclusiveOption)
	if len(got) != 1 {
		t.Fatalf("MutuallyExclusiveOption errors = %d, want 1 (%v)", len(got), errs)
	}
	if got[0].Index != 0 || got[0].Entity != "reaction" {
		t.Errorf("subject = %q, want reaction[0]", got[0].Subject())
	}
}

func TestBuild_MissingRequiredKey(t *testing.T) {
	tests := []struct {
		name      string
		reactions string
		wantField string
		wantIndex int
	}{
		{
			name:      "arrhenius gas phase",
			reactions: "  - type: ARRHENIUS\n    reactants: []\n    products: []\n",
			wantField: "gas phase",
		},
		{
			name:      "troe products at index 1",
			reactions: "  - type: EMISSION\n    gas phase: gas\n    products: []\n  - type: TROE\n    gas phase: gas\n    reactants: []\n",
			wantField: "products",
			wantIndex: 1,
		},
		{
			name:      "henrys law aerosol-phase water",
			reactions: "  - type: HL_PHASE_TRANSFER\n    gas phase: gas\n    gas-phase species: A\n    aerosol phase: gas\n    aerosol-phase species: B\n",
			wantField: "aerosol-phase water",
		},
		{
			name:      "simpol B",
			reactions: "  - type: SIMPOL_PHASE_TRANSFER\n    gas phase: gas\n    gas-phase species: A\n    aerosol phase: gas\n    aerosol-phase species: B\n",
			wantField: "B",
		},
		{
			name:      "aqueous equilibrium k_reverse",
			reactions: "  - type: AQUEOUS_EQUILIBRIUM\n    aerosol phase: gas\n    aerosol-phase water: B\n    reactants: []\n    products: []\n",
			wantField: "k_reverse",
		},
		{
			name:      "wet deposition aerosol phase",
			reactions: "  - type: WET_DEPOSITION\n    scaling factor: 2\n",
			wantField: "aerosol phase",
		},
		{
			name:      "component species name",
			reactions: "  - type: EMISSION\n    gas phase: gas\n    products:\n      - coefficient: 2\n",
			wantField: "products[0].species name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, errs := build(t, tt.reactions)
			if draft != nil {
				t.Error("Build() returned a draft alongside errors")
			}
			missing := errs.ByCode(mcerrors.CodeRequiredKeyNotFound)
			if len(missing) != 1 {
				t.Fatalf("RequiredKeyNotFound errors = %d, want 1 (%v)", len(missing), errs)
			}
			e := missing[0]
			if e.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", e.Field, tt.wantField)
			}
			if e.Index != tt.wantIndex {
				t.Errorf("Index = %d, want %d", e.Index, tt.wantIndex)
			}
			if e.Type != mcerrors.ErrorTypeSchema {
				t.Errorf("Type = %q, want %q", e.Type, mcerrors.ErrorTypeSchema)
			}
			if e.Location.Line == 0 {
				t.Error("Location.Line should be set")
			}
		})
	}
}

// validValue returns a YAML value that satisfies a field of the given kind.
func validValue(t *testing.T, f schema.Field) string {
	t.Helper()
	switch f.Kind {
	case schema.KindComponentList:
		return "[{species name: A}]"
	case schema.KindPhaseRef:
		return "gas"
	case schema.KindSpeciesRef:
		return "A"
	case schema.KindNumber:
		return "1"
	case schema.KindNumberList:
		items := make([]string, max(f.Length, 1))
		for i := range items {
			items[i] = "1"
		}
		return "[" + strings.Join(items, ", ") + "]"
	case schema.KindString:
		return "x"
	default:
		t.Fatalf("no valid value for %s field %q", f.Kind, f.Key)
		return ""
	}
}

// reactionWithout renders a tagged reaction of variant v holding every
// required field except skip.
func reactionWithout(t *testing.T, v model.Variant, skip string) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("  - type: " + v.String() + "\n")
	for _, f := range schema.MustLookup(v).Required() {
		if f.Key == skip {
			continue
		}
		sb.WriteString("    " + f.Key + ": " + validValue(t, f) + "\n")
	}
	return sb.String()
}

func TestBuild_MissingRequiredKeyEveryVariant(t *testing.T) {
	// A valid entry first, so the failing reaction sits at index 1.
	const leading = "  - type: EMISSION\n    gas phase: gas\n    products: [{species name: B}]\n"

	for _, v := range model.AllVariants() {
		if _, errs := build(t, leading+reactionWithout(t, v, "")); errs.HasErrors() {
			t.Fatalf("%s with every required key failed: %v", v, errs)
		}

		for _, f := range schema.MustLookup(v).Required() {
			t.Run(v.String()+"/"+f.Key, func(t *testing.T) {
				draft, errs := build(t, leading+reactionWithout(t, v, f.Key))
				if draft != nil {
					t.Error("Build() returned a draft alongside errors")
				}
				missing := errs.ByCode(mcerrors.CodeRequiredKeyNotFound)
				if len(missing) != 1 || errs.Count() != 1 {
					t.Fatalf("errors = %v, want exactly one RequiredKeyNotFound", errs)
				}
				e := missing[0]
				if e.Field != f.Key {
					t.Errorf("Field = %q, want %q", e.Field, f.Key)
				}
				if e.Index != 1 || e.Entity != schema.EntityReaction {
					t.Errorf("Subject() = %q, want reaction[1]", e.Subject())
				}
				if e.Location.Line != 13 {
					t.Errorf("Line = %d, want 13", e.Location.Line)
				}
			})
		}
	}
}

func TestBuild_FieldErrors(t *testing.T) {
	tests := []struct {
		name           string
		reactions      string
		wantCode       mcerrors.Code
		wantField      string
		wantSuggestion string
	}{
		{
			name:           "misspelled key",
			reactions:      "  - type: FIRST_ORDER_LOSS\n    gas phase: gas\n    reactants: []\n    scaling factr: 2\n",
			wantCode:       mcerrors.CodeInvalidKey,
			wantField:      "scaling factr",
			wantSuggestion: "did you mean 'scaling factor'?",
		},
		{
			name:      "string where number expected",
			reactions: "  - type: PHOTOLYSIS\n    gas phase: gas\n    reactants: []\n    products: []\n    scaling factor: fast\n",
			wantCode:  mcerrors.CodeInvalidType,
			wantField: "scaling factor",
		},
		{
			name:      "list where phase name expected",
			reactions: "  - type: EMISSION\n    gas phase: [gas]\n    products: []\n",
			wantCode:  mcerrors.CodeInvalidType,
			wantField: "gas phase",
		},
		{
			name:      "negative coefficient",
			reactions: "  - type: EMISSION\n    gas phase: gas\n    products:\n      - species name: A\n        coefficient: -1\n",
			wantCode:  mcerrors.CodeConstraintViolation,
			wantField: "products[0].coefficient",
		},
		{
			name:      "reaction probability above one",
			reactions: "  - type: SURFACE\n    gas phase: gas\n    gas-phase species: A\n    gas-phase products: []\n    aerosol phase: gas\n    reaction probability: 1.5\n",
			wantCode:  mcerrors.CodeConstraintViolation,
			wantField: "reaction probability",
		},
		{
			name:      "non-positive k_reverse",
			reactions: "  - type: AQUEOUS_EQUILIBRIUM\n    aerosol phase: gas\n    aerosol-phase water: B\n    reactants: []\n    products: []\n    k_reverse: 0\n",
			wantCode:  mcerrors.CodeConstraintViolation,
			wantField: "k_reverse",
		},
		{
			name:      "simpol B too short",
			reactions: "  - type: SIMPOL_PHASE_TRANSFER\n    gas phase: gas\n    gas-phase species: A\n    aerosol phase: gas\n    aerosol-phase species: B\n    B: [1, 2, 3]\n",
			wantCode:  mcerrors.CodeConstraintViolation,
			wantField: "B",
		},
		{
			name:      "component not a mapping",
			reactions: "  - type: EMISSION\n    gas phase: gas\n    products: [A]\n",
			wantCode:  mcerrors.CodeInvalidType,
			wantField: "products[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := build(t, tt.reactions)
			if !errs.HasErrors() {
				t.Fatal("expected errors, got none")
			}
			got := errs.ByCode(tt.wantCode)
			if len(got) == 0 {
				t.Fatalf("no %s error in %v", tt.wantCode, errs)
			}
			if got[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", got[0].Field, tt.wantField)
			}
			if tt.wantSuggestion != "" && got[0].Suggestion != tt.wantSuggestion {
				t.Errorf("Suggestion = %q, want %q", got[0].Suggestion, tt.wantSuggestion)
			}
		})
	}
}

func TestBuild_AccumulatesAcrossEntities(t *testing.T) {
	doc := `version: 1.0.0
species:
  - name: A
    molecular weight [kg mol-1]: -1
  - nme: B
phases:
  - name: gas
    species: A
reactions:
  - type: NOT_A_TYPE
  - type: EMISSION
    products: []
`
	_, errs := Build(decodeYAML(t, doc), "batch.yaml")

	wantCodes := map[mcerrors.Code]int{
		mcerrors.CodeConstraintViolation: 1, // species[0] molecular weight
		mcerrors.CodeInvalidKey:          1, // species[1] nme
		mcerrors.CodeRequiredKeyNotFound: 2, // species[1] name, reaction[1] gas phase
		mcerrors.CodeInvalidType:         1, // phase[0] species
		mcerrors.CodeUnknownType:         1, // reaction[0]
	}
	total := 0
	for code, want := range wantCodes {
		total += want
		if got := len(errs.ByCode(code)); got != want {
			t.Errorf("%s errors = %d, want %d", code, got, want)
		}
	}
	if errs.Count() != total {
		t.Errorf("Count() = %d, want %d\n%v", errs.Count(), total, errs)
	}

	unknown := errs.ByCode(mcerrors.CodeUnknownType)[0]
	if unknown.Index != 0 || unknown.Location.Line != 10 {
		t.Errorf("UnknownType at %s index %d, want line 10 index 0", unknown.Location, unknown.Index)
	}
}

func TestBuild_Version(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		wantCode mcerrors.Code
	}{
		{"unsupported major", "version: 2.0.0\n", mcerrors.CodeInvalidVersion},
		{"not semver", "version: banana\n", mcerrors.CodeInvalidVersion},
		{"pre-release", "version: 1.0.0-rc1\n", mcerrors.CodeInvalidVersion},
		{"build metadata", "version: 1.0.0+20240101\n", mcerrors.CodeInvalidVersion},
		{"missing", "", mcerrors.CodeRequiredKeyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := tt.version + "species: []\nphases: []\nreactions: []\n"
			_, errs := Build(decodeYAML(t, doc), "v.yaml")
			if errs.Count() != 1 {
				t.Fatalf("Count() = %d, want 1 (%v)", errs.Count(), errs)
			}
			if errs.Errors[0].Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", errs.Errors[0].Code, tt.wantCode)
			}
		})
	}

	draft, errs := Build(decodeYAML(t, "version: 1.2\nspecies: []\nphases: []\nreactions: []\n"), "v.yaml")
	if errs.HasErrors() {
		t.Fatalf("Build() failed: %v", errs)
	}
	if draft.Version != (model.Version{Major: 1, Minor: 2}) {
		t.Errorf("Version = %v, want 1.2.0", draft.Version)
	}
}

func TestBuild_Comments(t *testing.T) {
	doc := `version: 1.0.0
species:
  - name: A
    __long name: ozone
    __weights: [1, 2.5]
phases:
  - name: gas
    species: [A]
    __origin: test
reactions:
  - type: EMISSION
    gas phase: gas
    products:
      - species name: A
        __note: 3
    __comment: emitted
`
	draft, errs := Build(decodeYAML(t, doc), "c.yaml")
	if errs.HasErrors() {
		t.Fatalf("Build() failed: %v", errs)
	}

	species := draft.Species[0].Comments
	if species["__long name"] != "ozone" || species["__weights"] != "[1,2.5]" {
		t.Errorf("species comments = %v", species)
	}
	if got := draft.Phases[0].Comments["__origin"]; got != "test" {
		t.Errorf("phase comment = %q, want %q", got, "test")
	}
	emission := draft.Reactions[0].(model.Emission)
	if got := emission.Comments["__comment"]; got != "emitted" {
		t.Errorf("reaction comment = %q, want %q", got, "emitted")
	}
	if got := emission.Products[0].Comments["__note"]; got != "3" {
		t.Errorf("component comment = %q, want %q", got, "3")
	}
}

func TestBuild_DuplicateComponentsKept(t *testing.T) {
	draft := mustBuild(t, `  - type: ARRHENIUS
    gas phase: gas
    reactants:
      - species name: A
      - species name: A
        coefficient: 2
    products: [{species name: B}]
`)
	reactants := draft.Reactions[0].(model.Arrhenius).Reactants
	if len(reactants) != 2 || reactants[1].Coefficient != 2 {
		t.Errorf("Reactants = %+v, want both entries as given", reactants)
	}
}

func TestBuild_Sites(t *testing.T) {
	draft := mustBuild(t, `  - type: ARRHENIUS
    gas phase: gas
    reactants:
      - species name: A
      - species name: B
    products: [{species name: B}]
`)
	site := draft.Sites.Reaction(0)
	if loc := site.Element("reactants", 1); loc.Line != 14 {
		t.Errorf("reactants[1] line = %d, want 14", loc.Line)
	}
	if loc := site.Field("gas phase"); loc.Line != 11 {
		t.Errorf("gas phase line = %d, want 11", loc.Line)
	}
	if loc := draft.Sites.Phase(0).Member(1); loc.Line != 8 || loc.Column != 18 {
		t.Errorf("phase member = %s, want line 8 column 18", loc)
	}
	if loc := draft.Sites.Reaction(5); loc.Location.IsValid() {
		t.Error("out-of-range site should be zero")
	}
}

func TestBuild_RootNotMapping(t *testing.T) {
	_, errs := Build(decodeYAML(t, "- 1\n- 2\n"), "list.yaml")
	if !errs.HasCode(mcerrors.CodeInvalidType) {
		t.Errorf("errors = %v, want InvalidType", errs)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "small.yaml")
	if err := os.WriteFile(small, []byte("version: 1.0.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		path     string
		maxSize  int64
		wantCode mcerrors.Code
	}{
		{"missing yaml", filepath.Join(dir, "missing.yaml"), 0, mcerrors.CodeFileNotFound},
		{"missing json", filepath.Join(dir, "missing.json"), 0, mcerrors.CodeFileNotFound},
		{"directory", dir, 0, mcerrors.CodeFileUnreadable},
		{"too large", small, 4, mcerrors.CodeFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFile(tt.path, tt.maxSize)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !mcerrors.IsType(err, mcerrors.ErrorTypeIO) {
				t.Errorf("IsType(io) = false for %v", err)
			}
			var e *mcerrors.Error
			if !errors.As(err, &e) || e.Code != tt.wantCode {
				t.Errorf("error = %v, want code %s", err, tt.wantCode)
			}
		})
	}

	data, err := ReadFile(small, 0)
	if err != nil || string(data) != "version: 1.0.0\n" {
		t.Errorf("ReadFile() = %q, %v", data, err)
	}
}

func TestDecode_SyntaxError(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		source string
	}{
		{"yaml", "version: 1.0.0\nspecies: [A\n", "bad.yaml"},
		{"json", "{\"version\": \"1.0.0\",}", "bad.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode([]byte(tt.data), document.EncodingAuto, tt.source)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var e *mcerrors.Error
			if !errors.As(err, &e) {
				t.Fatalf("error type = %T, want *errors.Error", err)
			}
			if e.Type != mcerrors.ErrorTypeDecode || e.Code != mcerrors.CodeInvalidSyntax {
				t.Errorf("error = %s/%s, want decode/InvalidSyntax", e.Type, e.Code)
			}
			if e.Suggestion == "" {
				t.Error("Suggestion should be set")
			}
			var syntaxErr *document.SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Error("decode error should wrap *document.SyntaxError")
			}
		})
	}
}

func TestDecode_EncodingDetection(t *testing.T) {
	_, enc, err := Decode([]byte("{\"a\": 1}"), document.EncodingAuto, "memory")
	if err != nil || enc != document.EncodingJSON {
		t.Errorf("Decode() encoding = %q, %v, want json", enc, err)
	}
	_, enc, err = Decode([]byte("a: 1"), document.EncodingAuto, "memory")
	if err != nil || enc != document.EncodingYAML {
		t.Errorf("Decode() encoding = %q, %v, want yaml", enc, err)
	}
}

func TestParseBytes_AttachesContext(t *testing.T) {
	_, err := ParseBytes([]byte(header+"  - type: EMISSION\n    products: []\n"), document.EncodingYAML, "ctx.yaml")
	list := mcerrors.List(err)
	if len(list) != 1 {
		t.Fatalf("List() = %d errors, want 1 (%v)", len(list), err)
	}
	if !strings.Contains(list[0].Context, "type: EMISSION") {
		t.Errorf("Context = %q, want the reaction line", list[0].Context)
	}
}
