package commands

import (
	"github.com/spf13/cobra"
)

func mulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul N1 D1 N2 D2",
		Short: "Multiply two fractions",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseOperands(args)
			if err != nil {
				return err
			}
			printResult(cmd, a.Mul(b))
			return nil
		},
	}
}
