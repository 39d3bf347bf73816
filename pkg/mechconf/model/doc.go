// Package model defines the typed, immutable representation of a parsed
// chemical mechanism.
//
// A Mechanism holds a name, a semantic Version, the declared Species and
// Phases, and a heterogeneous, document-ordered collection of Reactions.
// Every Reaction exposes a Variant tag for dispatch:
//
//	for _, r := range mech.Reactions() {
//	    switch rxn := r.(type) {
//	    case model.Arrhenius:
//	        rate := rxn.A
//	        _ = rate
//	    case model.Photolysis:
//	        _ = rxn.ScalingFactor
//	    }
//	}
//
// Grouped access goes through a variant index built once by
// NewMechanism:
//
//	for _, r := range mech.ReactionsOf(model.VariantTroe) {
//	    troe := r.(model.Troe)
//	    _ = troe.Fc
//	}
//
// Values returned by accessors are copies; a Mechanism holds no
// references into the document it was parsed from.
package model
