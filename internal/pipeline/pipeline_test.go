package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/lecture-flow/internal/artifact"
	"github.com/nguyentantai21042004/lecture-flow/internal/generator"
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
	"github.com/nguyentantai21042004/lecture-flow/internal/transcript"
	"github.com/nguyentantai21042004/lecture-flow/internal/video"
)

const lectureURL = "https://www.youtube.com/watch?v=abc123&t=5s"

var lectureDay = time.Date(2024, time.March, 7, 9, 0, 0, 0, time.UTC)

type fakeAcquirer struct {
	text    string
	err     error
	videoID string
}

func (f *fakeAcquirer) Acquire(_ context.Context, videoID string) (string, error) {
	f.videoID = videoID
	return f.text, f.err
}

type fakeGenerator struct {
	mu         sync.Mutex
	faq        string
	faqErr     error
	summary    string
	summaryErr error
	calls      []string
}

func (f *fakeGenerator) record(kind string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, kind)
}

func (f *fakeGenerator) FAQ(context.Context, string) (string, error) {
	f.record("faq")
	return f.faq, f.faqErr
}

func (f *fakeGenerator) Summary(context.Context, string) (string, error) {
	f.record("summary")
	return f.summary, f.summaryErr
}

type fakeWriter struct {
	mu       sync.Mutex
	fail     map[string]bool
	attempts []string
	contents map[string]string
}

func newFakeWriter(failing ...string) *fakeWriter {
	w := &fakeWriter{fail: map[string]bool{}, contents: map[string]string{}}
	for _, name := range failing {
		w.fail[name] = true
	}
	return w
}

func (w *fakeWriter) Write(_ context.Context, name, content string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.attempts = append(w.attempts, name)
	if w.fail[name] {
		return artifact.ErrPersistence
	}
	w.contents[name] = content
	return nil
}

func (w *fakeWriter) WriteDOCX(ctx context.Context, name, title, content string) error {
	return w.Write(ctx, name, title+"|"+content)
}

func newTestPipeline(opts Options, acq transcript.Acquirer, gen generator.Generator, w artifact.Writer) Pipeline {
	p := New(opts, acq, gen, w, logger.Nop()).(*implPipeline)
	p.now = func() time.Time { return lectureDay }
	return p
}

func modes() []Options {
	return []Options{{SequentialGeneration: false}, {SequentialGeneration: true}}
}

func TestRunSuccess(t *testing.T) {
	for _, opts := range modes() {
		acq := &fakeAcquirer{text: "Aula 1\nenergia e massa"}
		gen := &fakeGenerator{faq: "1. O que é energia?", summary: "Resumo."}
		w := newFakeWriter()

		report, err := newTestPipeline(opts, acq, gen, w).Run(context.Background(), lectureURL)
		require.NoError(t, err)

		assert.Equal(t, StateDone, report.State)
		assert.Equal(t, "abc123", report.VideoID)
		assert.Equal(t, "abc123", acq.videoID)
		assert.Empty(t, report.Failures)
		assert.ElementsMatch(t, []string{artifact.Transcript, artifact.Metadata, artifact.FAQ, artifact.Summary}, report.Written)

		require.GreaterOrEqual(t, len(w.attempts), 2)
		assert.Equal(t, []string{artifact.Transcript, artifact.Metadata}, w.attempts[:2])

		assert.Equal(t, "Aula 1\nenergia e massa", w.contents[artifact.Transcript])
		assert.Equal(t, "Título da aula: Aula 1\nData da aula: 07/03/2024\nTópicos principais cobertos na aula:\n1. Aula 1\nenergia e massa\n",
			w.contents[artifact.Metadata])
		assert.Equal(t, "1. O que é energia?", w.contents[artifact.FAQ])
		assert.Equal(t, "Resumo.", w.contents[artifact.Summary])
	}
}

func TestRunInvalidReference(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"missing", ""},
		{"no v parameter", "https://x/watch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acq := &fakeAcquirer{text: "never"}
			gen := &fakeGenerator{}
			w := newFakeWriter()

			report, err := newTestPipeline(Options{}, acq, gen, w).Run(context.Background(), tt.url)
			assert.ErrorIs(t, err, video.ErrInvalidReference)
			assert.Equal(t, StateAbortedNoReference, report.State)
			assert.True(t, report.State.Aborted())
			assert.Empty(t, acq.videoID)
			assert.Empty(t, w.attempts)
			assert.Empty(t, gen.calls)
		})
	}
}

func TestRunNoTranscript(t *testing.T) {
	acq := &fakeAcquirer{err: transcript.ErrUnavailable}
	gen := &fakeGenerator{faq: "x", summary: "y"}
	w := newFakeWriter()

	report, err := newTestPipeline(Options{}, acq, gen, w).Run(context.Background(), lectureURL)
	assert.ErrorIs(t, err, transcript.ErrUnavailable)
	assert.Equal(t, StateAbortedNoTranscript, report.State)
	assert.Empty(t, w.attempts, "no artifact may be written")
	assert.Empty(t, gen.calls, "generation must not run")
}

func TestRunFAQFailureIsNonFatal(t *testing.T) {
	for _, opts := range modes() {
		gen := &fakeGenerator{faqErr: generator.ErrGeneration, summary: "Resumo."}
		w := newFakeWriter()

		report, err := newTestPipeline(opts, &fakeAcquirer{text: "Aula"}, gen, w).Run(context.Background(), lectureURL)
		require.NoError(t, err)

		assert.Equal(t, StateDone, report.State)
		assert.True(t, report.Wrote(artifact.Summary))
		assert.False(t, report.Wrote(artifact.FAQ))
		assert.NotContains(t, w.attempts, artifact.FAQ)
		require.Len(t, report.Failures, 1)
		assert.ErrorIs(t, report.Failures[0], generator.ErrGeneration)
	}
}

func TestRunBothGenerationsFail(t *testing.T) {
	gen := &fakeGenerator{faqErr: errors.New("quota"), summaryErr: errors.New("quota")}
	w := newFakeWriter()

	report, err := newTestPipeline(Options{}, &fakeAcquirer{text: "Aula"}, gen, w).Run(context.Background(), lectureURL)
	require.NoError(t, err)

	assert.Equal(t, StateDone, report.State)
	assert.ElementsMatch(t, []string{artifact.Transcript, artifact.Metadata}, report.Written)
	assert.ElementsMatch(t, []string{"faq", "summary"}, gen.calls)
	assert.Len(t, report.Failures, 2)
}

func TestRunWriteFailureDoesNotStopLaterWrites(t *testing.T) {
	gen := &fakeGenerator{faq: "faq", summary: "resumo"}
	w := newFakeWriter(artifact.Metadata, artifact.Transcript)

	report, err := newTestPipeline(Options{}, &fakeAcquirer{text: "Aula"}, gen, w).Run(context.Background(), lectureURL)
	require.NoError(t, err)

	assert.Equal(t, StateDone, report.State)
	assert.Contains(t, w.attempts, artifact.FAQ)
	assert.Contains(t, w.attempts, artifact.Summary)
	assert.ElementsMatch(t, []string{artifact.FAQ, artifact.Summary}, report.Written)
	assert.Len(t, report.Failures, 2)
}

func TestRunDOCX(t *testing.T) {
	gen := &fakeGenerator{faq: "faq", summary: "resumo"}
	w := newFakeWriter()

	report, err := newTestPipeline(Options{DOCX: true}, &fakeAcquirer{text: "Aula 1\nx"}, gen, w).Run(context.Background(), lectureURL)
	require.NoError(t, err)

	assert.True(t, report.Wrote(artifact.FAQDoc))
	assert.True(t, report.Wrote(artifact.SummaryDoc))
	assert.Equal(t, "Resumo: Aula 1|resumo", w.contents[artifact.SummaryDoc])
	assert.Equal(t, "Perguntas frequentes: Aula 1|faq", w.contents[artifact.FAQDoc])
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Done", StateDone.String())
	assert.Equal(t, "AbortedNoTranscript", StateAbortedNoTranscript.String())
	assert.Equal(t, "Unknown", State(99).String())
	assert.False(t, StateDone.Aborted())
}
