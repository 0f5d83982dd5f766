package pipeline

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/lecture-flow/internal/artifact"
	"github.com/nguyentantai21042004/lecture-flow/internal/metadata"
	"github.com/nguyentantai21042004/lecture-flow/internal/video"
)

// Run orchestrates resolve -> transcript -> metadata -> FAQ/summary, writing each artifact.
func (p *implPipeline) Run(ctx context.Context, rawURL string) (Report, error) {
	startTime := time.Now()
	rec := &recorder{}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting lecture processing: %s", rawURL)
	p.logger.Info(ctx, "========================================")

	// Step 1: Resolve the video identifier
	videoID, err := video.ParseID(rawURL)
	if err != nil {
		p.logger.Error(ctx, "Invalid video URL: %v", err)
		rec.setState(StateAbortedNoReference)
		return rec.snapshot(), err
	}
	rec.resolved(videoID)

	// Step 2: Acquire the transcript
	text, err := p.acquirer.Acquire(ctx, videoID)
	if err != nil {
		p.logger.Error(ctx, "Could not process the transcript: %v", err)
		rec.setState(StateAbortedNoTranscript)
		return rec.snapshot(), err
	}
	rec.setState(StateTranscriptAcquired)

	p.write(ctx, rec, artifact.Transcript, text)

	// Step 3: Metadata
	meta := metadata.Extract(text, p.now())
	p.logger.Info(ctx, "Metadata: title %q, %d topics", meta.Title, len(meta.Topics))
	p.write(ctx, rec, artifact.Metadata, meta.Render())

	// Step 4: FAQ and summary, independent of each other
	faq := func() {
		p.generate(ctx, rec, p.generator.FAQ, text, artifact.FAQ, artifact.FAQDoc, docTitle("Perguntas frequentes", meta.Title))
	}
	summary := func() {
		p.generate(ctx, rec, p.generator.Summary, text, artifact.Summary, artifact.SummaryDoc, docTitle("Resumo", meta.Title))
	}

	if p.opts.SequentialGeneration {
		faq()
		summary()
	} else {
		var g errgroup.Group
		g.Go(func() error { faq(); return nil })
		g.Go(func() error { summary(); return nil })
		_ = g.Wait()
	}

	rec.setState(StateDone)
	report := rec.snapshot()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Transcript, FAQ, metadata and summary generated and saved")
	p.logger.Info(ctx, "Video: %s", videoID)
	p.logger.Info(ctx, "Artifacts written: %v", report.Written)
	if len(report.Failures) > 0 {
		p.logger.Warn(ctx, "Completed with %d non-fatal failures", len(report.Failures))
	}
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return report, nil
}

func (p *implPipeline) generate(
	ctx context.Context,
	rec *recorder,
	gen func(context.Context, string) (string, error),
	text, name, docName, title string,
) {
	doc, err := gen(ctx, text)
	if err != nil {
		p.logger.Error(ctx, "Skipping %s: %v", name, err)
		rec.fail(err)
		return
	}

	p.write(ctx, rec, name, doc)

	if !p.opts.DOCX {
		return
	}
	if err := p.writer.WriteDOCX(ctx, docName, title, doc); err != nil {
		rec.fail(err)
		return
	}
	rec.wrote(docName)
}

// write never stops the run; the writer already logged any failure.
func (p *implPipeline) write(ctx context.Context, rec *recorder, name, content string) {
	if err := p.writer.Write(ctx, name, content); err != nil {
		rec.fail(err)
		return
	}
	rec.wrote(name)
}

func docTitle(label, lecture string) string {
	if lecture == "" {
		return label
	}
	return fmt.Sprintf("%s: %s", label, lecture)
}
