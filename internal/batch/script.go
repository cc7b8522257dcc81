// Package batch runs scripted sequences of edits, searches and
// transcriptions against the bioseq API.
package batch

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Operation names accepted in a script.
const (
	OpCreate            = "create"
	OpMutate            = "mutate"
	OpFind              = "find"
	OpFindAll           = "find_all"
	OpComplement        = "complement"
	OpReverseComplement = "reverse_complement"
	OpTranscribe        = "transcribe"
	OpRender            = "render"
	OpLength            = "length"
)

// SequenceSpec declares a sequence created before any step runs.
type SequenceSpec struct {
	Name    string `yaml:"name"`
	ID      string `yaml:"id"`
	Kind    string `yaml:"kind"`
	Symbols string `yaml:"symbols"`
}

// Step is a single scripted operation. Which fields apply depends on Op.
type Step struct {
	Op       string `yaml:"op"`
	Target   string `yaml:"target,omitempty"`
	As       string `yaml:"as,omitempty"`
	ID       string `yaml:"id,omitempty"`
	Kind     string `yaml:"kind,omitempty"`
	Symbols  string `yaml:"symbols,omitempty"`
	Position *int   `yaml:"position,omitempty"`
	Char     string `yaml:"char,omitempty"`
	Motif    string `yaml:"motif,omitempty"`
	To       string `yaml:"to,omitempty"`
}

// Script is a batch of sequence declarations followed by steps.
type Script struct {
	Sequences []SequenceSpec `yaml:"sequences"`
	Steps     []Step         `yaml:"steps"`
}

// ParseScript decodes a YAML script. Unknown fields are rejected.
func ParseScript(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("decode batch script: %w", err)
	}
	return &s, nil
}

// Plan returns the steps to execute: one create step per declared
// sequence, then the scripted steps in order.
func (s *Script) Plan() []Step {
	plan := make([]Step, 0, len(s.Sequences)+len(s.Steps))
	for _, spec := range s.Sequences {
		plan = append(plan, Step{
			Op:      OpCreate,
			As:      spec.Name,
			ID:      spec.ID,
			Kind:    spec.Kind,
			Symbols: spec.Symbols,
		})
	}
	return append(plan, s.Steps...)
}
