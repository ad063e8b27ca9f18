package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/amp-labs/amp-algorithms/harness"
	"github.com/amp-labs/amp-algorithms/sorting"
	"github.com/spf13/cobra"
)

var errInvalidNumber = errors.New("invalid number")

func newSortCmd() *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "sort N...",
		Short: "Sort numbers with one algorithm",
		Long: `Sorts the numbers with one algorithm and prints them.

Put negative numbers after "--" so they are not read as flags.`,
		Example: `  sortcheck sort --algorithm quick 64 34 25 12 22 11 90
  sortcheck sort -- -5 3 -1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := sorting.Lookup[float64](algorithm)
			if err != nil {
				return err
			}

			values, err := parseNumbers(args)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), harness.FormatSequence(alg.Sort(values)))

			return err
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", sorting.NameMerge,
		fmt.Sprintf("algorithm to use %v", sorting.Names()))

	return cmd
}

func parseNumbers(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))

	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errInvalidNumber, arg)
		}

		values = append(values, v)
	}

	return values, nil
}
