package mechconf

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"openatmos/mechconf/pkg/mechconf/document"
	mcerrors "openatmos/mechconf/pkg/mechconf/errors"
	"openatmos/mechconf/pkg/mechconf/model"
	"openatmos/mechconf/pkg/mechconf/parser"
	"openatmos/mechconf/pkg/mechconf/validator"
)

// Encoding identifies the serialization of a mechanism document.
type Encoding = document.Encoding

const (
	EncodingAuto = document.EncodingAuto
	EncodingYAML = document.EncodingYAML
	EncodingJSON = document.EncodingJSON
)

// OutcomeSuccess is the outcome label of a parse that produced a Mechanism.
// Failed parses are labelled with the error type.
const OutcomeSuccess = "success"

// Recorder receives parse outcomes. *metrics.Collector implements it.
type Recorder interface {
	// RecordParse records one parse call.
	RecordParse(encoding, outcome string, duration time.Duration)

	// RecordErrors records the errors of one type reported by a failed parse.
	RecordErrors(errorType string, count int)

	// RecordReactions records the reactions of one variant in a parsed
	// mechanism.
	RecordReactions(variant string, count int)
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxFileSize bounds the size of files read by Parse.
func WithMaxFileSize(n int64) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxFileSize = n
		}
	}
}

// WithLogger sets the logger for stage transitions and outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMetrics sets the recorder that receives parse outcomes.
func WithMetrics(r Recorder) Option {
	return func(p *Parser) {
		p.recorder = r
	}
}

// WithEncoding forces an encoding instead of detecting it.
func WithEncoding(enc Encoding) Option {
	return func(p *Parser) {
		p.encoding = enc
	}
}

// Parser reads mechanism configurations. It holds only its options, so one
// Parser may be shared by concurrent callers.
type Parser struct {
	maxFileSize int64
	logger      *slog.Logger
	recorder    Recorder
	encoding    Encoding
}

// NewParser creates a Parser. Without options it detects the encoding,
// limits files to parser.DefaultMaxFileSize and discards logs.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		maxFileSize: parser.DefaultMaxFileSize,
		logger:      slog.New(slog.DiscardHandler),
		encoding:    EncodingAuto,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads and validates the mechanism file at path. The error is an
// io or decode *errors.Error, or a schema or reference *errors.ErrorList.
// The Mechanism is nil whenever the error is not.
func (p *Parser) Parse(path string) (*model.Mechanism, error) {
	pl := newPipeline(uuid.New().String(), path, p.logger)

	data, err := parser.ReadFile(path, p.maxFileSize)
	if err != nil {
		return p.failed(pl, p.encodingFor(path, nil), err)
	}
	return p.run(pl, data, p.encoding, path)
}

// ParseBytes validates an in-memory document. An EncodingAuto argument
// falls back to the Parser's encoding and then to detection from source
// and content.
func (p *Parser) ParseBytes(data []byte, enc Encoding, source string) (*model.Mechanism, error) {
	pl := newPipeline(uuid.New().String(), source, p.logger)
	if enc == EncodingAuto {
		enc = p.encoding
	}
	return p.run(pl, data, enc, source)
}

func (p *Parser) run(pl *pipeline, data []byte, enc Encoding, source string) (*model.Mechanism, error) {
	root, enc, err := parser.Decode(data, enc, source)
	if err != nil {
		return p.failed(pl, enc, err)
	}
	pl.advance()

	draft, errs := parser.Build(root, source)
	if errs.HasErrors() {
		errs.AddContext(data)
		return p.failed(pl, enc, errs)
	}
	pl.advance()

	if errs := validator.Validate(draft); errs.HasErrors() {
		errs.AddContext(data)
		return p.failed(pl, enc, errs)
	}
	pl.advance()

	m := model.NewMechanism(draft.Name, draft.Version, draft.Species, draft.Phases, draft.Reactions)
	pl.advance()

	duration := pl.elapsed()
	pl.logger.Info("mechanism parsed",
		"encoding", string(enc),
		"name", m.Name(),
		"version", m.Version().String(),
		"species", len(m.Species()),
		"phases", len(m.Phases()),
		"reactions", m.ReactionCount(),
		"duration", duration,
	)

	if p.recorder != nil {
		p.recorder.RecordParse(string(enc), OutcomeSuccess, duration)
		for _, v := range m.Variants() {
			p.recorder.RecordReactions(v.String(), m.CountOf(v))
		}
	}
	return m, nil
}

func (p *Parser) failed(pl *pipeline, enc Encoding, err error) (*model.Mechanism, error) {
	return nil, p.reject(pl, string(enc), err)
}

// reject ends pl in the error stage, logs the failure and records it
// under the encoding label.
func (p *Parser) reject(pl *pipeline, encoding string, err error) error {
	pl.fail(err)

	errType := mcerrors.TypeOf(err)
	count := len(mcerrors.List(err))
	duration := pl.elapsed()

	pl.logger.Warn("mechanism rejected",
		"encoding", encoding,
		"stage", pl.last.String(),
		"error_type", string(errType),
		"errors", count,
		"duration", duration,
	)

	if p.recorder != nil {
		p.recorder.RecordParse(encoding, string(errType), duration)
		p.recorder.RecordErrors(string(errType), count)
	}
	return err
}

// encodingFor names the encoding a parse of path would use.
func (p *Parser) encodingFor(path string, data []byte) Encoding {
	if p.encoding != EncodingAuto {
		return p.encoding
	}
	return document.DetectEncoding(path, data)
}

var defaultParser = NewParser()

// Parse reads the mechanism file at path with default options.
func Parse(path string) (*model.Mechanism, error) {
	return defaultParser.Parse(path)
}

// ParseBytes validates an in-memory document with default options. The
// source names the document in error locations.
func ParseBytes(data []byte, enc Encoding, source string) (*model.Mechanism, error) {
	return defaultParser.ParseBytes(data, enc, source)
}
