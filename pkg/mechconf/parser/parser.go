package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"openatmos/mechconf/pkg/mechconf/document"
	mcerrors "openatmos/mechconf/pkg/mechconf/errors"
)

// DefaultMaxFileSize bounds the size of a mechanism file (10MB).
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// ReadFile reads a mechanism source. Every failure is an io *errors.Error.
// A maxSize of zero or less uses DefaultMaxFileSize.
func ReadFile(path string, maxSize int64) ([]byte, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	location := document.Location{File: path}

	info, err := os.Stat(path)
	if err != nil {
		code := mcerrors.CodeFileUnreadable
		msg := fmt.Sprintf("cannot access file: %v", err)
		if errors.Is(err, fs.ErrNotExist) {
			code = mcerrors.CodeFileNotFound
			msg = fmt.Sprintf("file %q does not exist", path)
		}
		e := mcerrors.New(mcerrors.ErrorTypeIO, code, msg, location)
		e.Err = err
		return nil, e
	}

	if info.IsDir() {
		return nil, mcerrors.New(mcerrors.ErrorTypeIO, mcerrors.CodeFileUnreadable,
			fmt.Sprintf("%q is a directory", path), location)
	}

	if info.Size() > maxSize {
		return nil, mcerrors.New(mcerrors.ErrorTypeIO, mcerrors.CodeFileTooLarge,
			fmt.Sprintf("file size %d exceeds maximum %d bytes", info.Size(), maxSize), location)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		e := mcerrors.New(mcerrors.ErrorTypeIO, mcerrors.CodeFileUnreadable,
			fmt.Sprintf("failed to read file: %v", err), location)
		e.Err = err
		return nil, e
	}
	return data, nil
}

// Decode decodes document text. EncodingAuto detects the encoding from
// the source suffix, then from the content. Syntax failures are returned
// as a decode *errors.Error with source context attached.
func Decode(data []byte, enc document.Encoding, source string) (*document.Node, document.Encoding, error) {
	if enc == document.EncodingAuto {
		enc = document.DetectEncoding(source, data)
	}

	root, err := document.Decode(data, enc, source)
	if err != nil {
		var syntaxErr *document.SyntaxError
		location := document.Location{File: source, Line: 1, Column: 1}
		msg := err.Error()
		if errors.As(err, &syntaxErr) {
			location = syntaxErr.Location
			msg = syntaxErr.Message
		}

		e := mcerrors.New(mcerrors.ErrorTypeDecode, mcerrors.CodeInvalidSyntax,
			fmt.Sprintf("%s parsing failed: %s", encodingName(enc), msg), location)
		e.Err = err
		e.Context = mcerrors.ExtractContextFrom(data, location, 2)
		e.Suggestion = syntaxHint(enc)
		return nil, enc, e
	}
	return root, enc, nil
}

func encodingName(enc document.Encoding) string {
	if enc == document.EncodingJSON {
		return "JSON"
	}
	return "YAML"
}

func syntaxHint(enc document.Encoding) string {
	if enc == document.EncodingJSON {
		return "check JSON syntax (commas, brackets, quotes)"
	}
	return "check YAML syntax (indentation, colons, quotes)"
}

// ParseBytes decodes and builds a document in one step. The error is a
// decode *errors.Error or a schema *errors.ErrorList.
func ParseBytes(data []byte, enc document.Encoding, source string) (*Draft, error) {
	root, _, err := Decode(data, enc, source)
	if err != nil {
		return nil, err
	}

	draft, errs := Build(root, source)
	if errs.HasErrors() {
		errs.AddContext(data)
		return nil, errs
	}
	return draft, nil
}

// ParseFile reads, decodes and builds the document at path.
func ParseFile(path string, maxSize int64) (*Draft, error) {
	data, err := ReadFile(path, maxSize)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data, document.EncodingAuto, path)
}
