package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inodb/vibe-seq/internal/bioseq"
	"github.com/inodb/vibe-seq/internal/fasta"
	"github.com/inodb/vibe-seq/internal/output"
)

// inputOptions selects where sequences come from.
type inputOptions struct {
	id      string
	symbols string
	kind    string
}

func (o *inputOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.id, "id", "seq", "Identifier for --seq")
	cmd.Flags().StringVarP(&o.symbols, "seq", "s", "", "Sequence symbols (default: read FASTA from stdin)")
	cmd.Flags().StringVarP(&o.kind, "kind", "k", "dna", "Sequence kind: dna, rna or protein")
}

// load builds validated sequences from --seq or from FASTA on stdin.
func (o *inputOptions) load(cmd *cobra.Command) ([]bioseq.Sequence, error) {
	kind, err := bioseq.ParseKind(o.kind)
	if err != nil {
		return nil, err
	}
	upper := viper.GetBool("input.uppercase")

	if o.symbols != "" {
		symbols := o.symbols
		if upper {
			symbols = strings.ToUpper(symbols)
		}
		s, err := bioseq.New(kind, o.id, symbols)
		if err != nil {
			return nil, fmt.Errorf("sequence %q: %w", o.id, err)
		}
		return []bioseq.Sequence{s}, nil
	}

	r := fasta.NewReader(cmd.InOrStdin())
	r.SetUppercase(upper)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("no sequences: pass --seq or FASTA on stdin")
	}

	seqs := make([]bioseq.Sequence, 0, len(records))
	for _, rec := range records {
		s, err := rec.Sequence(kind)
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, s)
	}
	return seqs, nil
}

func newFASTAWriter(cmd *cobra.Command) *output.FASTAWriter {
	w := output.NewFASTAWriter(cmd.OutOrStdout())
	w.SetLineWidth(viper.GetInt("output.line_width"))
	return w
}
