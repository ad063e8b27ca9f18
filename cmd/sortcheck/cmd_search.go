package main

import (
	"errors"
	"fmt"

	"github.com/amp-labs/amp-algorithms/harness"
	"github.com/amp-labs/amp-algorithms/sorting"
	"github.com/spf13/cobra"
)

var errUnsortedInput = errors.New("input is not sorted (pass --sort to sort it first)")

func newSearchCmd() *cobra.Command {
	var (
		mode      string
		sortFirst bool
	)

	cmd := &cobra.Command{
		Use:   "search TARGET N...",
		Short: "Search sorted numbers for a target",
		Long: `Searches the sorted numbers for TARGET and prints Found(index) or NotFound.

Put negative numbers after "--" so they are not read as flags.`,
		Example: `  sortcheck search 7 1 3 5 7 9
  sortcheck search --mode first 2 1 2 2 2 3
  sortcheck search --mode last -- -1 -3 -1 -1 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseNumbers(args)
			if err != nil {
				return err
			}

			target, values := numbers[0], numbers[1:]

			if sortFirst {
				values = sorting.MergeSort(values)
			} else if !sorting.IsSorted(values) {
				return errUnsortedInput
			}

			result, err := harness.Search(mode, values, target)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)

			return err
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", harness.ModeBinary,
		fmt.Sprintf("search mode %v", harness.SearchModes()))
	cmd.Flags().BoolVar(&sortFirst, "sort", false, "sort the numbers before searching")

	return cmd
}
