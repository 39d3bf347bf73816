package mechconf

import (
	"github.com/google/uuid"

	"openatmos/mechconf/pkg/mechconf/camp"
)

// EncodingCAMP labels CAMP configurations in logs and metrics. Its files
// may be YAML or JSON.
const EncodingCAMP = "camp"

// ParseCAMP reads the legacy CAMP configuration at path: an entry point
// file listing camp-files, or a directory holding config.yaml or
// config.json. Errors are classified as for Parse, and the file size
// limit applies to each file.
func (p *Parser) ParseCAMP(path string) (*camp.Mechanism, error) {
	pl := newPipeline(uuid.New().String(), path, p.logger)

	files, err := camp.Files(path, p.maxFileSize)
	if err != nil {
		return nil, p.reject(pl, EncodingCAMP, err)
	}
	pl.advance()

	m, err := camp.Load(files, p.maxFileSize)
	if err != nil {
		return nil, p.reject(pl, EncodingCAMP, err)
	}
	// Names are not cross-checked in the legacy format.
	pl.advance()
	pl.advance()
	pl.advance()

	duration := pl.elapsed()
	pl.logger.Info("camp mechanism parsed",
		"files", len(files),
		"name", m.Name,
		"species", len(m.Species),
		"reactions", m.Reactions.Count(),
		"duration", duration,
	)

	if p.recorder != nil {
		p.recorder.RecordParse(EncodingCAMP, OutcomeSuccess, duration)
		for kind, n := range m.Reactions.Counts() {
			p.recorder.RecordReactions(kind, n)
		}
	}
	return m, nil
}

// ParseCAMP reads a CAMP configuration with default options.
func ParseCAMP(path string) (*camp.Mechanism, error) {
	return defaultParser.ParseCAMP(path)
}
