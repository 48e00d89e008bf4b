package commands

import (
	"github.com/spf13/cobra"
)

func divCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "div N1 D1 N2 D2",
		Short: "Divide the first fraction by the second",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseOperands(args)
			if err != nil {
				return err
			}
			quot, err := a.Div(b)
			if err != nil {
				return err
			}
			printResult(cmd, quot)
			return nil
		},
	}
}
