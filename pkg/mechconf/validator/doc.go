// Package validator checks the references between the entities of a
// built mechanism draft.
//
// Builders in the parser package look at one entity at a time, so a
// reaction may name a phase declared later in the document. Once every
// entity exists, the validator runs two passes and collects every
// violation:
//
// 1. Reference validation: duplicate species and phase names, phase
// members that are not declared species, and reaction species or phase
// names that are not declared.
//
// 2. Structural validation: reactant counts, membership of the species a
// reaction moves into or out of a phase, Troe parameter groups, and
// branched product lists.
//
// # Basic Usage
//
//	draft, err := parser.ParseFile("mechanism.yaml", 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if errs := validator.Validate(draft); errs.HasErrors() {
//	    for _, e := range errs.Errors {
//	        fmt.Println(e.Error())
//	    }
//	}
//
// Every error has type "reference" and carries the index of the offending
// phase or reaction together with the rule code.
package validator
