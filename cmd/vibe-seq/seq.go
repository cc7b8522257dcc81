package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/vibe-seq/internal/bioseq"
)

func newRenderCmd(a *app) *cobra.Command {
	var in inputOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Validate sequences and print them as records",
		Example: `  vibe-seq render --seq ATGC --id gene1
  cat input.fa | vibe-seq render --kind protein`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := in.load(cmd)
			if err != nil {
				return err
			}
			w := newFASTAWriter(cmd)
			for _, s := range seqs {
				if err := w.Write(s); err != nil {
					return err
				}
			}
			a.logger.Debug("rendered sequences", zap.Int("count", len(seqs)))
			return w.Flush()
		},
	}
	in.addFlags(cmd)
	return cmd
}

func newComplementCmd(a *app) *cobra.Command {
	var (
		in      inputOptions
		reverse bool
	)
	cmd := &cobra.Command{
		Use:   "complement",
		Short: "Print the base-paired strand of DNA or RNA sequences",
		Example: `  vibe-seq complement --seq ATTC
  vibe-seq complement --kind rna --reverse --seq AUGC`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := in.load(cmd)
			if err != nil {
				return err
			}
			w := newFASTAWriter(cmd)
			for _, s := range seqs {
				c, ok := s.(bioseq.Complementer)
				if !ok {
					return fmt.Errorf("%s sequence %q has no complement", s.Kind(), s.ID())
				}
				symbols := c.Complement()
				if reverse {
					symbols = c.ReverseComplement()
				}
				if err := w.WriteRaw(s.ID(), symbols); err != nil {
					return err
				}
			}
			a.logger.Debug("complemented sequences", zap.Int("count", len(seqs)), zap.Bool("reverse", reverse))
			return w.Flush()
		},
	}
	in.addFlags(cmd)
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Print the reverse complement")
	return cmd
}

func newTranscribeCmd(a *app) *cobra.Command {
	var (
		in inputOptions
		to string
	)
	cmd := &cobra.Command{
		Use:   "transcribe",
		Short: "Transcribe DNA to RNA, or RNA to protein",
		Long: `Transcribe produces the next stage of the DNA -> RNA -> protein pipeline.

DNA to RNA replaces every T with U. RNA to protein emits one placeholder
residue (A) per codon, including a trailing partial codon.`,
		Example: `  vibe-seq transcribe --seq ATGC
  vibe-seq transcribe --seq ATGCAT --to protein`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := in.load(cmd)
			if err != nil {
				return err
			}
			w := newFASTAWriter(cmd)
			for _, s := range seqs {
				out, err := transcribeOne(s, to)
				if err != nil {
					return fmt.Errorf("sequence %q: %w", s.ID(), err)
				}
				a.logger.Debug("transcribed",
					zap.String("id", s.ID()),
					zap.Stringer("from", s.Kind()),
					zap.Stringer("to", out.Kind()))
				if err := w.Write(out); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
	in.addFlags(cmd)
	cmd.Flags().StringVar(&to, "to", "", "Target kind: rna or protein (default: next stage)")
	return cmd
}

func transcribeOne(s bioseq.Sequence, to string) (bioseq.Sequence, error) {
	if to == "" {
		return bioseq.Advance(s)
	}
	kind, err := bioseq.ParseKind(to)
	if err != nil {
		return nil, err
	}
	return bioseq.TranscribeTo(s, kind)
}

func newFindCmd(a *app) *cobra.Command {
	var (
		in  inputOptions
		all bool
	)
	cmd := &cobra.Command{
		Use:   "find <motif>",
		Short: "Find a motif in each sequence",
		Long: `Find prints "<id>\t<index>" for each sequence: the zero-based index of the
first occurrence, or -1. With --all, every start index including overlaps
is printed comma-separated, or - when there is none.`,
		Example: `  vibe-seq find TT --seq ATTC
  vibe-seq find --all AA --seq AAAA`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := in.load(cmd)
			if err != nil {
				return err
			}
			motif := args[0]
			out := cmd.OutOrStdout()
			for _, s := range seqs {
				var hit string
				if all {
					hit = formatIndexes(s.FindAllMotifs(motif))
				} else {
					hit = strconv.Itoa(s.FindMotif(motif))
				}
				if _, err := fmt.Fprintf(out, "%s\t%s\n", s.ID(), hit); err != nil {
					return err
				}
			}
			a.logger.Debug("searched motif", zap.String("motif", motif), zap.Int("sequences", len(seqs)))
			return nil
		},
	}
	in.addFlags(cmd)
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Report every occurrence, including overlapping ones")
	return cmd
}

func formatIndexes(xs []int) string {
	if len(xs) == 0 {
		return "-"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}

func newMutateCmd(a *app) *cobra.Command {
	var (
		in   inputOptions
		pos  int
		char string
	)
	cmd := &cobra.Command{
		Use:   "mutate",
		Short: "Replace one symbol in each sequence and print the result",
		Example: `  vibe-seq mutate --seq ATGC --pos 2 --char T`,
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(char) != 1 {
				return &usageError{err: fmt.Errorf("--char must be a single character, got %q", char)}
			}
			if viper.GetBool("input.uppercase") {
				char = strings.ToUpper(char)
			}
			seqs, err := in.load(cmd)
			if err != nil {
				return err
			}
			w := newFASTAWriter(cmd)
			for _, s := range seqs {
				if err := s.Mutate(pos, char[0]); err != nil {
					return fmt.Errorf("sequence %q: %w", s.ID(), err)
				}
				a.logger.Debug("mutated", zap.String("id", s.ID()), zap.Int("pos", pos), zap.String("char", char))
				if err := w.Write(s); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
	in.addFlags(cmd)
	cmd.Flags().IntVarP(&pos, "pos", "p", 0, "Zero-based position to replace")
	cmd.Flags().StringVarP(&char, "char", "c", "", "Replacement symbol")
	_ = cmd.MarkFlagRequired("pos")
	_ = cmd.MarkFlagRequired("char")
	return cmd
}
