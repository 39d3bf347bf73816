package validator

import (
	mcerrors "openatmos/mechconf/pkg/mechconf/errors"
	"openatmos/mechconf/pkg/mechconf/parser"
)

// Validator runs the cross-reference passes over a built Draft. Every pass
// runs and every violation is collected; nothing stops at the first one.
type Validator struct {
	references *ReferenceValidator
	structural *StructuralValidator
}

// NewValidator creates a validator with all passes.
func NewValidator() *Validator {
	return &Validator{
		references: NewReferenceValidator(),
		structural: NewStructuralValidator(),
	}
}

// Validate checks, in order: duplicate names, phase membership, species
// references, phase references, and per-variant structural rules. The
// returned list is empty when the draft is consistent.
func (v *Validator) Validate(d *parser.Draft) *mcerrors.ErrorList {
	errs := mcerrors.NewErrorList()
	if d == nil {
		return errs
	}

	errs.Merge(v.references.Validate(d))
	errs.Merge(v.structural.Validate(d))
	return errs
}

// Validate runs every pass with a fresh Validator.
func Validate(d *parser.Draft) *mcerrors.ErrorList {
	return NewValidator().Validate(d)
}
