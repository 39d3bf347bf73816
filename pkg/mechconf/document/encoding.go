package document

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// Encoding identifies a supported on-disk serialization.
type Encoding string

const (
	EncodingAuto Encoding = ""
	EncodingYAML Encoding = "yaml"
	EncodingJSON Encoding = "json"
)

// MaxDepth bounds the nesting of decoded documents.
const MaxDepth = 64

// SyntaxError reports malformed document text.
type SyntaxError struct {
	Encoding Encoding
	Location Location
	Message  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s syntax error at %s: %s", e.Encoding, e.Location, e.Message)
}

// ParseEncoding converts a user-supplied name ("yaml", "yml", "json") into
// an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "", "auto":
		return EncodingAuto, nil
	case "yaml", "yml":
		return EncodingYAML, nil
	case "json":
		return EncodingJSON, nil
	default:
		return EncodingAuto, fmt.Errorf("unsupported encoding %q (must be yaml or json)", s)
	}
}

// DetectEncoding picks the encoding for a source. The file suffix wins;
// unknown suffixes fall back to content sniffing.
func DetectEncoding(path string, data []byte) Encoding {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return EncodingYAML
	case ".json":
		return EncodingJSON
	}
	return SniffEncoding(data)
}

// SniffEncoding inspects the first non-blank byte of data.
func SniffEncoding(data []byte) Encoding {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return EncodingJSON
	}
	return EncodingYAML
}

// Decode decodes data with the given encoding. EncodingAuto sniffs the
// content. source labels the locations of the returned nodes.
func Decode(data []byte, enc Encoding, source string) (*Node, error) {
	if enc == EncodingAuto {
		enc = DetectEncoding(source, data)
	}
	switch enc {
	case EncodingYAML:
		return DecodeYAML(data, source)
	case EncodingJSON:
		return DecodeJSON(data, source)
	default:
		return nil, fmt.Errorf("unsupported encoding %q", enc)
	}
}
