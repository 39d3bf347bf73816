package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"openatmos/mechconf/pkg/mechconf/document"
)

// ErrorType categorizes the pipeline stage an error was raised in.
type ErrorType string

const (
	ErrorTypeIO        ErrorType = "io"        // Source missing or unreadable
	ErrorTypeDecode    ErrorType = "decode"    // Malformed YAML/JSON syntax
	ErrorTypeSchema    ErrorType = "schema"    // Missing, mistyped or constraint-violating field
	ErrorTypeReference ErrorType = "reference" // Dangling reference or cross-entity rule violation
)

// Code identifies the specific rule an error reports.
type Code string

const (
	CodeFileNotFound   Code = "FileNotFound"
	CodeFileUnreadable Code = "FileUnreadable"
	CodeFileTooLarge   Code = "FileTooLarge"
	CodeInvalidSyntax  Code = "InvalidSyntax"

	CodeRequiredKeyNotFound     Code = "RequiredKeyNotFound"
	CodeInvalidKey              Code = "InvalidKey"
	CodeInvalidType             Code = "InvalidType"
	CodeConstraintViolation     Code = "ConstraintViolation"
	CodeMutuallyExclusiveOption Code = "MutuallyExclusiveOption"
	CodeInvalidVersion          Code = "InvalidVersion"
	CodeUnknownType             Code = "UnknownType"

	CodeDuplicateSpeciesDetected       Code = "DuplicateSpeciesDetected"
	CodeDuplicatePhasesDetected        Code = "DuplicatePhasesDetected"
	CodePhaseRequiresUnknownSpecies    Code = "PhaseRequiresUnknownSpecies"
	CodeReactionRequiresUnknownSpecies Code = "ReactionRequiresUnknownSpecies"
	CodeUnknownPhase                   Code = "UnknownPhase"
	CodeAerosolSpeciesNotInPhase       Code = "RequestedAerosolSpeciesNotIncludedInAerosolPhase"
	CodeGasSpeciesNotInPhase           Code = "RequestedGasSpeciesNotIncludedInGasPhase"
	CodeTooManyReactionComponents      Code = "TooManyReactionComponents"
	CodeMissingReactionComponents      Code = "MissingReactionComponents"
	CodeInconsistentParameterGroup     Code = "InconsistentParameterGroup"
	CodeEmptyProductBranches           Code = "EmptyProductBranches"
)

// NoIndex marks an error that is not tied to a list element.
const NoIndex = -1

// Error is a structured parse failure. Index is the position of the
// offending entity in its document list, or NoIndex.
type Error struct {
	Type       ErrorType
	Code       Code
	Message    string
	Location   document.Location
	Entity     string // "mechanism", "species", "phase", "reaction", "reaction component"
	Index      int
	Field      string
	Context    string // Surrounding source lines
	Suggestion string
	Err        error // Underlying cause, if any
}

// New creates an error that is not tied to a list element.
func New(errType ErrorType, code Code, message string, location document.Location) *Error {
	return &Error{
		Type:     errType,
		Code:     code,
		Message:  message,
		Location: location,
		Index:    NoIndex,
	}
}

// Subject renders the entity the error is about, e.g. "reaction[3]".
func (e *Error) Subject() string {
	if e.Entity == "" {
		return ""
	}
	if e.Index == NoIndex {
		return e.Entity
	}
	return fmt.Sprintf("%s[%d]", e.Entity, e.Index)
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] ", e.Type))
	if subject := e.Subject(); subject != "" {
		sb.WriteString(subject)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	sb.WriteString("\n")

	if e.Location.Line > 0 || e.Location.File != "" {
		sb.WriteString(fmt.Sprintf("  --> %s\n", e.Location.String()))
	}

	if e.Context != "" {
		sb.WriteString("  |\n")
		sb.WriteString(e.Context)
		sb.WriteString("  |\n")
	}

	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  = suggestion: %s\n", e.Suggestion))
	}

	return sb.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorList accumulates every error found in one pipeline stage.
type ErrorList struct {
	Errors []*Error
}

// NewErrorList creates a new empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{
		Errors: make([]*Error, 0),
	}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.Errors = append(el.Errors, err)
}

// AddError creates and adds a new error with the given parameters.
func (el *ErrorList) AddError(errType ErrorType, code Code, message string, location document.Location) *Error {
	err := New(errType, code, message, location)
	el.Add(err)
	return err
}

// Merge appends every error of other.
func (el *ErrorList) Merge(other *ErrorList) {
	if other == nil {
		return
	}
	el.Errors = append(el.Errors, other.Errors...)
}

// HasErrors returns true if the error list contains any errors.
func (el *ErrorList) HasErrors() bool {
	return el != nil && len(el.Errors) > 0
}

// Count returns the number of errors in the list.
func (el *ErrorList) Count() int {
	if el == nil {
		return 0
	}
	return len(el.Errors)
}

// Error implements the error interface.
func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("found %d error(s):\n\n", el.Count()))

	for i, err := range el.Errors {
		sb.WriteString(fmt.Sprintf("Error %d:\n", i+1))
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}

	return sb.String()
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (el *ErrorList) Unwrap() []error {
	out := make([]error, len(el.Errors))
	for i, err := range el.Errors {
		out[i] = err
	}
	return out
}

// ToError returns nil if the error list is empty, otherwise returns the error list itself.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}

// ByType returns all errors of the given type.
func (el *ErrorList) ByType(errType ErrorType) []*Error {
	var result []*Error
	for _, err := range el.Errors {
		if err.Type == errType {
			result = append(result, err)
		}
	}
	return result
}

// ByCode returns all errors with the given code.
func (el *ErrorList) ByCode(code Code) []*Error {
	var result []*Error
	for _, err := range el.Errors {
		if err.Code == code {
			result = append(result, err)
		}
	}
	return result
}

// HasErrorType returns true if the error list contains at least one error of the given type.
func (el *ErrorList) HasErrorType(errType ErrorType) bool {
	for _, err := range el.Errors {
		if err.Type == errType {
			return true
		}
	}
	return false
}

// HasCode returns true if the error list contains at least one error with the given code.
func (el *ErrorList) HasCode(code Code) bool {
	for _, err := range el.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}

// TypeOf returns the type of err. An ErrorList reports the type of its
// first error. Errors from outside this package report "".
func TypeOf(err error) ErrorType {
	var list *ErrorList
	if stderrors.As(err, &list) && list.HasErrors() {
		return list.Errors[0].Type
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	return ""
}

// IsType reports whether err, or any error it aggregates, has the given type.
func IsType(err error, errType ErrorType) bool {
	var list *ErrorList
	if stderrors.As(err, &list) {
		return list.HasErrorType(errType)
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type == errType
	}
	return false
}

// List returns the errors carried by err as a slice. A lone *Error
// becomes a one-element slice.
func List(err error) []*Error {
	var list *ErrorList
	if stderrors.As(err, &list) {
		return list.Errors
	}
	var e *Error
	if stderrors.As(err, &e) {
		return []*Error{e}
	}
	return nil
}
