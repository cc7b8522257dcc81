package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/inodb/vibe-seq/internal/poly"
)

func newPolyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "poly",
		Short: "Polynomial arithmetic on comma-separated coefficients",
		Long: `Coefficients are listed lowest degree first: "1,0,-2" is 1 - 2x^2.

An operand starting with "-" reads as a flag; put "--" before the
operands to pass negative leading coefficients.`,
		Example: `  vibe-seq poly add 1,2 3,4,5
  vibe-seq poly mul -- 1,1 -1,1
  vibe-seq poly eval -- -1,0,3 -2`,
	}

	binary := func(use, short string, op func(p, q *poly.Polynomial) *poly.Polynomial) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <p> <q>",
			Short: short,
			Args:  usageArgs(cobra.ExactArgs(2)),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := poly.Parse(args[0])
				if err != nil {
					return fmt.Errorf("first operand: %w", err)
				}
				q, err := poly.Parse(args[1])
				if err != nil {
					return fmt.Errorf("second operand: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), op(p, q))
				return nil
			},
		}
	}

	cmd.AddCommand(binary("add", "Add two polynomials", (*poly.Polynomial).Add))
	cmd.AddCommand(binary("sub", "Subtract q from p", (*poly.Polynomial).Sub))
	cmd.AddCommand(binary("mul", "Multiply two polynomials", (*poly.Polynomial).Mul))
	cmd.AddCommand(&cobra.Command{
		Use:   "eval <p> <x>",
		Short: "Evaluate a polynomial at x",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := poly.Parse(args[0])
			if err != nil {
				return err
			}
			x, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid x %q: %w", args[1], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(p.Eval(x), 'g', -1, 64))
			return nil
		},
	})
	return cmd
}
