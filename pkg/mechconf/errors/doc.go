// Package errors provides the structured error types returned by the
// mechanism configuration parser.
//
// Every failure carries a type naming the pipeline stage that raised it,
// a code naming the specific rule, and enough context (entity, index,
// field, source location) to find the offending input without
// re-parsing.
//
// # Error Types
//
// ErrorTypeIO: the source is missing, unreadable or too large
//
// ErrorTypeDecode: the document is not well-formed YAML or JSON
//
// ErrorTypeSchema: a species, phase or reaction has a missing, mistyped or
// out-of-range field, or its reaction type cannot be recognized
//
// ErrorTypeReference: a name refers to an undeclared species or phase, or
// a cross-entity rule is violated
//
// # Batch Reporting
//
// Schema and reference errors are accumulated per stage in an ErrorList,
// so one parse reports every independent problem of that stage:
//
//	errList := errors.NewErrorList()
//	errList.AddError(errors.ErrorTypeSchema, errors.CodeRequiredKeyNotFound,
//	    "missing required key 'gas phase'", location)
//	return errList.ToError()
//
// Callers classify failures with IsType or errors.As:
//
//	if errors.IsType(err, errors.ErrorTypeIO) {
//	    // retry or report a missing file
//	}
//
// # Error Format
//
//	[schema] reaction[3]: missing required key 'gas phase'
//	  --> mechanism.yaml:41:5
//	  = suggestion: add the 'gas phase' key
package errors
