package pipeline

import (
	"slices"
	"sync"
)

type State int

const (
	StateStart State = iota
	StateReferenceResolved
	StateTranscriptAcquired
	StateDone
	StateAbortedNoReference
	StateAbortedNoTranscript
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StateReferenceResolved:
		return "ReferenceResolved"
	case StateTranscriptAcquired:
		return "TranscriptAcquired"
	case StateDone:
		return "Done"
	case StateAbortedNoReference:
		return "AbortedNoReference"
	case StateAbortedNoTranscript:
		return "AbortedNoTranscript"
	default:
		return "Unknown"
	}
}

// Aborted reports whether the run stopped before writing anything.
func (s State) Aborted() bool {
	return s == StateAbortedNoReference || s == StateAbortedNoTranscript
}

// Report is the outcome of a single run.
type Report struct {
	State    State
	VideoID  string
	Written  []string
	Failures []error
}

// Wrote reports whether the named artifact was persisted.
func (r Report) Wrote(name string) bool {
	return slices.Contains(r.Written, name)
}

// recorder guards a Report shared by the concurrent generation branches.
type recorder struct {
	mu     sync.Mutex
	report Report
}

func (r *recorder) setState(s State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.report.State = s
}

func (r *recorder) resolved(videoID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.report.VideoID = videoID
	r.report.State = StateReferenceResolved
}

func (r *recorder) wrote(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.report.Written = append(r.report.Written, name)
}

func (r *recorder) fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.report.Failures = append(r.report.Failures, err)
}

func (r *recorder) snapshot() Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.report
	out.Written = slices.Clone(r.report.Written)
	out.Failures = slices.Clone(r.report.Failures)
	return out
}
