// Package mechconf parses chemical mechanism configurations.
//
// A configuration declares species, phases that group species, and
// reactions between them. It may be written in YAML or JSON; both produce
// equal mechanisms. Parsing runs a fixed pipeline:
//
//	start -> decoded -> built -> cross_validated -> done
//
// Any stage may fail, which ends the pipeline in the error stage. Errors
// are collected per stage rather than stopping at the first one, so a
// schema failure reports every missing or mistyped field in the document.
//
// # Basic Usage
//
//	m, err := mechconf.Parse("configs/mechanism.yaml")
//	if err != nil {
//	    for _, e := range errors.List(err) {
//	        fmt.Println(e.Error())
//	    }
//	    os.Exit(1)
//	}
//
//	fmt.Printf("%s v%s: %d reactions\n", m.Name(), m.Version(), m.ReactionCount())
//	for _, r := range m.ReactionsOf(model.VariantTroe) {
//	    troe := r.(model.Troe)
//	    fmt.Println(troe.K0A, troe.KinfA)
//	}
//
// # Configuration
//
// A Parser carries options and may be shared between goroutines:
//
//	p := mechconf.NewParser(
//	    mechconf.WithLogger(logger),
//	    mechconf.WithMetrics(collector),
//	    mechconf.WithMaxFileSize(1<<20),
//	)
//
// # Error Classification
//
// Every failure carries one of four types:
//
//   - io: the file is missing, unreadable or too large
//   - decode: the text is not valid YAML or JSON
//   - schema: an entity is missing a key, has a mistyped value, or an
//     unknown reaction type
//   - reference: a name points at an undeclared species or phase, or a
//     cross-entity rule is violated
//
// Use errors.IsType and errors.TypeOf from the errors subpackage:
//
//	if errors.IsType(err, errors.ErrorTypeReference) {
//	    // ...
//	}
//
// # Legacy Configurations
//
// ParseCAMP reads the older CAMP format, a camp-files entry point with
// camp-data files, into a camp.Mechanism:
//
//	m, err := mechconf.ParseCAMP("configs/v0/")
//	fmt.Println(m.Reactions.Counts())
package mechconf
