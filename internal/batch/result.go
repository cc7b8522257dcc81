package batch

import "github.com/inodb/vibe-seq/internal/bioseq"

// Result is the outcome of one executed step.
type Result struct {
	Index  int
	Op     string
	Target string
	Value  string
	Err    error
}

// OK reports whether the step succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Outcome returns "ok" for a successful step, otherwise the error kind.
func (r Result) Outcome() string {
	if r.Err == nil {
		return "ok"
	}
	return bioseq.ErrorKind(r.Err)
}

// ResultWriter receives step results in execution order.
type ResultWriter interface {
	WriteHeader() error
	Write(r Result) error
	Flush() error
}

// Recorder stores a completed run's results.
type Recorder interface {
	RecordResults(results []Result) error
}
