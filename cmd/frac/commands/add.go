package commands

import (
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add N1 D1 N2 D2",
		Short: "Add two fractions",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseOperands(args)
			if err != nil {
				return err
			}
			printResult(cmd, a.Add(b))
			return nil
		},
	}
}
