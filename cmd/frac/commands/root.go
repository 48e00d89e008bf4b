package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/QuangTung97/fraction"
)

var real bool

// Execute ...
func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "frac",
		Short:        "Exact fraction arithmetic",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&real, "real", false, "print the result as a real number")
	root.AddCommand(addCmd(), subCmd(), mulCmd(), divCmd())
	return root
}

func parseOperands(args []string) (fraction.Fraction, fraction.Fraction, error) {
	var parts [4]int64
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fraction.Fraction{}, fraction.Fraction{}, err
		}
		parts[i] = v
	}

	a, err := fraction.New(parts[0], parts[1])
	if err != nil {
		return fraction.Fraction{}, fraction.Fraction{}, err
	}
	b, err := fraction.New(parts[2], parts[3])
	if err != nil {
		return fraction.Fraction{}, fraction.Fraction{}, err
	}
	return a, b, nil
}

func printResult(cmd *cobra.Command, f fraction.Fraction) {
	if real {
		cmd.Println(strconv.FormatFloat(f.Value(), 'g', -1, 64))
		return
	}
	cmd.Println(f.String())
}
