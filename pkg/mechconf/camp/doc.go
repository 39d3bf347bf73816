// Package camp reads legacy CAMP mechanism configurations.
//
// A CAMP configuration predates the versioned schema read by the parent
// package. Its entry point is a file listing data files:
//
//	camp-files:
//	  - species.json
//	  - reactions.json
//
// Each listed file, resolved against the directory of the entry point,
// holds a "camp-data" array of typed objects:
//
//	camp-data:
//	  - type: CHEM_SPEC
//	    name: O3
//	  - type: MECHANISM
//	    name: music box interactive configuration
//	    reactions:
//	      - type: ARRHENIUS
//	        reactants: {O3: {}, NO: {}}
//	        products: {NO2: {}}
//
// Passing a directory reads config.yaml from it, or config.json when
// there is no YAML file. Both YAML and JSON data files are accepted.
//
// Rate parameters are given per mol m-3 and are converted to molecules
// cm-3 on read. Every species belongs to a single gas phase named GAS, and
// the mechanism version is always 0.0.0.
//
// Errors use the types and codes of the errors subpackage. Unlike the
// versioned reader, names are not cross-checked against declared species.
package camp
