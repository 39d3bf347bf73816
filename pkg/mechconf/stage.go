package mechconf

import (
	"log/slog"
	"time"
)

// Stage is a step of the parse pipeline.
type Stage int

const (
	StageStart Stage = iota
	StageDecoded
	StageBuilt
	StageCrossValidated
	StageDone
	StageError
)

var stageNames = map[Stage]string{
	StageStart:          "start",
	StageDecoded:        "decoded",
	StageBuilt:          "built",
	StageCrossValidated: "cross_validated",
	StageDone:           "done",
	StageError:          "error",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Stage) IsTerminal() bool {
	return s == StageDone || s == StageError
}

// next lists the legal successors of each stage. Any non-terminal stage
// may fail.
var next = map[Stage]Stage{
	StageStart:          StageDecoded,
	StageDecoded:        StageBuilt,
	StageBuilt:          StageCrossValidated,
	StageCrossValidated: StageDone,
}

// pipeline traces one parse call through its stages.
type pipeline struct {
	id      string
	source  string
	logger  *slog.Logger
	stage   Stage
	last    Stage
	started time.Time
	trace   []Stage
}

func newPipeline(id, source string, logger *slog.Logger) *pipeline {
	p := &pipeline{
		id:      id,
		source:  source,
		logger:  logger.With("parse_id", id, "source", source),
		stage:   StageStart,
		started: time.Now(),
		trace:   []Stage{StageStart},
	}
	p.logger.Debug("parse started")
	return p
}

// advance moves to the successor of the current stage.
func (p *pipeline) advance() {
	if p.stage.IsTerminal() {
		return
	}
	from := p.stage
	p.stage = next[from]
	p.trace = append(p.trace, p.stage)
	p.logger.Debug("parse stage transition", "from", from.String(), "to", p.stage.String())
}

// fail moves to StageError and remembers the stage that failed.
func (p *pipeline) fail(err error) {
	if p.stage.IsTerminal() {
		return
	}
	p.last = p.stage
	p.stage = StageError
	p.trace = append(p.trace, StageError)
	p.logger.Debug("parse stage transition", "from", p.last.String(), "to", StageError.String(), "error", err)
}

func (p *pipeline) elapsed() time.Duration {
	return time.Since(p.started)
}
