package commands

import (
	"github.com/spf13/cobra"
)

func subCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sub N1 D1 N2 D2",
		Short: "Subtract the second fraction from the first",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseOperands(args)
			if err != nil {
				return err
			}
			printResult(cmd, a.Sub(b))
			return nil
		},
	}
}
