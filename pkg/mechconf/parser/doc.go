// Package parser reads mechanism documents and builds typed entities from
// them.
//
// Parsing runs in three steps. ReadFile loads the source and reports
// missing, unreadable or oversized files. Decode turns YAML or JSON text
// into a positioned document tree. Build classifies every reaction entry,
// checks each entity against its schema and produces a Draft.
//
// # Basic Usage
//
//	draft, err := parser.ParseFile("mechanisms/chapman.yaml", 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("reactions:", len(draft.Reactions))
//
// # Reaction Classification
//
// A reaction's "type" key decides its variant when present. Untagged
// entries are matched against a fixed, ordered list of key signatures and
// the first match wins:
//
//	SIMPOL_PHASE_TRANSFER       B is a list and "aerosol-phase species" is set
//	HL_PHASE_TRANSFER           "aerosol-phase species" and "aerosol-phase water"
//	AQUEOUS_EQUILIBRIUM         "k_reverse"
//	SURFACE                     "gas-phase species" or "gas-phase products"
//	BRANCHED_NO_RO2             "nitrate products" or "alkoxy products"
//	TROE                        any k0_* / kinf_* / Fc / N parameter
//	WET_DEPOSITION              "aerosol phase" without reactants or products
//	CONDENSED_PHASE_PHOTOLYSIS  "aerosol phase" and "scaling factor"
//	CONDENSED_PHASE_ARRHENIUS   "aerosol phase"
//	PHOTOLYSIS                  "scaling factor", reactants and products
//	EMISSION                    products without reactants
//	FIRST_ORDER_LOSS            reactants without products
//	ARRHENIUS                   reactants and products
//
// TUNNELING is only recognized by its tag.
//
// # Errors
//
// Build never stops at the first problem: every missing, unknown,
// mistyped or out-of-range field of every entity is reported in one
// ErrorList. A Draft is not cross-validated; references between entities
// are checked by the validator package.
package parser
