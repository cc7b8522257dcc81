package batch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/inodb/vibe-seq/internal/bioseq"
)

// Runner executes scripts one step at a time against named sequences.
type Runner struct {
	seqs            map[string]bioseq.Sequence
	continueOnError bool
	logger          *zap.Logger
	metrics         *Metrics
	recorder        Recorder
}

// NewRunner creates a runner that continues past failing steps.
func NewRunner() *Runner {
	return &Runner{
		seqs:            make(map[string]bioseq.Sequence),
		continueOnError: true,
		logger:          zap.NewNop(),
	}
}

// SetContinueOnError configures whether a failing step stops the run.
func (r *Runner) SetContinueOnError(c bool) {
	r.continueOnError = c
}

// SetLogger sets the logger for step failures and debug tracing.
func (r *Runner) SetLogger(l *zap.Logger) {
	r.logger = l
}

// SetMetrics enables step counters.
func (r *Runner) SetMetrics(m *Metrics) {
	r.metrics = m
}

// SetRecorder sets where results are stored once the run ends.
func (r *Runner) SetRecorder(rec Recorder) {
	r.recorder = rec
}

// Sequence returns the sequence registered under name.
func (r *Runner) Sequence(name string) (bioseq.Sequence, bool) {
	s, ok := r.seqs[name]
	return s, ok
}

// Run executes the script's plan in order and streams results to w.
// Step failures are reported as results. When continue-on-error is off, the
// first failure ends the run and is returned wrapped.
func (r *Runner) Run(s *Script, w ResultWriter) error {
	if err := w.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	plan := s.Plan()
	results := make([]Result, 0, len(plan))
	var stopErr error

	for i, step := range plan {
		res := r.exec(i, step)
		results = append(results, res)

		if r.metrics != nil {
			r.metrics.observeStep(res)
		}

		if err := w.Write(res); err != nil {
			return fmt.Errorf("write result: %w", err)
		}

		if !res.OK() {
			r.logger.Warn("batch step failed",
				zap.Int("step", i),
				zap.String("op", res.Op),
				zap.String("target", res.Target),
				zap.String("kind", res.Outcome()),
				zap.Error(res.Err))
			if !r.continueOnError {
				stopErr = fmt.Errorf("step %d (%s): %w", i, res.Op, res.Err)
				break
			}
			continue
		}
		r.logger.Debug("batch step",
			zap.Int("step", i),
			zap.String("op", res.Op),
			zap.String("target", res.Target))
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush results: %w", err)
	}

	if r.recorder != nil {
		if err := r.recorder.RecordResults(results); err != nil {
			return fmt.Errorf("record results: %w", err)
		}
	}

	if len(plan) == 0 {
		r.logger.Info("0 steps processed")
	}

	return stopErr
}

func (r *Runner) exec(i int, step Step) Result {
	res := Result{Index: i, Op: step.Op, Target: step.Target}
	if step.Op == OpCreate {
		res.Target = step.As
		if res.Target == "" {
			res.Target = step.ID
		}
		res.Value, res.Err = r.create(res.Target, step)
		return res
	}

	seq, ok := r.seqs[step.Target]
	if !ok {
		res.Err = fmt.Errorf("unknown target %q", step.Target)
		return res
	}

	switch step.Op {
	case OpMutate:
		res.Value, res.Err = mutate(seq, step)
	case OpFind:
		res.Value = strconv.Itoa(seq.FindMotif(step.Motif))
	case OpFindAll:
		res.Value = joinInts(seq.FindAllMotifs(step.Motif))
	case OpComplement, OpReverseComplement:
		c, ok := seq.(bioseq.Complementer)
		if !ok {
			res.Err = fmt.Errorf("%s sequence %q has no complement", seq.Kind(), step.Target)
			break
		}
		if step.Op == OpComplement {
			res.Value = c.Complement()
		} else {
			res.Value = c.ReverseComplement()
		}
	case OpTranscribe:
		res.Value, res.Err = r.transcribe(seq, step)
	case OpRender:
		res.Value = seq.Render()
	case OpLength:
		res.Value = strconv.Itoa(seq.Len())
	default:
		res.Err = fmt.Errorf("unknown op %q", step.Op)
	}
	return res
}

func (r *Runner) create(name string, step Step) (string, error) {
	if name == "" {
		return "", errors.New("create requires a name or id")
	}
	if _, exists := r.seqs[name]; exists {
		return "", fmt.Errorf("sequence %q already defined", name)
	}
	kind, err := bioseq.ParseKind(step.Kind)
	if err != nil {
		return "", err
	}
	seq, err := bioseq.New(kind, step.ID, step.Symbols)
	if err != nil {
		return "", err
	}
	r.register(name, seq)
	return seq.Symbols(), nil
}

func (r *Runner) transcribe(seq bioseq.Sequence, step Step) (string, error) {
	var (
		out bioseq.Sequence
		err error
	)
	if step.To == "" {
		out, err = bioseq.Advance(seq)
	} else {
		var kind bioseq.Kind
		if kind, err = bioseq.ParseKind(step.To); err != nil {
			return "", err
		}
		out, err = bioseq.TranscribeTo(seq, kind)
	}
	if err != nil {
		return "", err
	}
	if out == seq {
		return "", fmt.Errorf("sequence %q is already %s", step.Target, seq.Kind())
	}

	name := step.As
	if name == "" {
		name = step.Target + "." + strings.ToLower(out.Kind().String())
	}
	if _, exists := r.seqs[name]; exists {
		return "", fmt.Errorf("sequence %q already defined", name)
	}
	r.register(name, out)
	return out.Symbols(), nil
}

func (r *Runner) register(name string, seq bioseq.Sequence) {
	r.seqs[name] = seq
	if r.metrics != nil {
		r.metrics.observeCreated(seq.Kind().String())
	}
}

func mutate(seq bioseq.Sequence, step Step) (string, error) {
	if step.Position == nil {
		return "", errors.New("mutate requires a position")
	}
	if len(step.Char) != 1 {
		return "", fmt.Errorf("mutate requires a single character, got %q", step.Char)
	}
	if err := seq.Mutate(*step.Position, step.Char[0]); err != nil {
		return "", err
	}
	return seq.Symbols(), nil
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}
