package pipeline

import (
	"time"

	"github.com/nguyentantai21042004/lecture-flow/internal/artifact"
	"github.com/nguyentantai21042004/lecture-flow/internal/generator"
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
	"github.com/nguyentantai21042004/lecture-flow/internal/transcript"
)

type Options struct {
	SequentialGeneration bool
	DOCX                 bool
}

type implPipeline struct {
	opts      Options
	acquirer  transcript.Acquirer
	generator generator.Generator
	writer    artifact.Writer
	logger    logger.Logger
	now       func() time.Time
}

// New wires the stages together. All collaborators are read-only for the run.
func New(opts Options, acq transcript.Acquirer, gen generator.Generator, w artifact.Writer, log logger.Logger) Pipeline {
	return &implPipeline{
		opts:      opts,
		acquirer:  acq,
		generator: gen,
		writer:    w,
		logger:    log,
		now:       time.Now,
	}
}
