// Package document decodes mechanism configuration text into a generic,
// ordered document tree.
//
// Both supported encodings (YAML and JSON) decode to the same Node shape,
// so every consumer downstream of the decoder is encoding-blind. Every
// node carries the 1-based line and column it was read from.
//
// # Basic Usage
//
//	root, err := document.Decode(data, document.EncodingYAML, "mech.yaml")
//	if err != nil {
//	    var syntaxErr *document.SyntaxError
//	    if errors.As(err, &syntaxErr) {
//	        fmt.Println(syntaxErr.Location)
//	    }
//	    return err
//	}
//
//	for _, pair := range root.Get("species").Items {
//	    fmt.Println(pair.Get("name").Text())
//	}
//
// # Encoding Detection
//
// DetectEncoding chooses an encoding from the file suffix (.yaml, .yml,
// .json) and falls back to sniffing the first non-blank byte of the
// content: '{' or '[' selects JSON, anything else selects YAML.
package document
