package main

import (
	"fmt"

	"github.com/amp-labs/amp-algorithms/build"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := build.Current(buildInfo)
			out := cmd.OutOrStdout()

			_, err := fmt.Fprintf(out, "version: %s\ngo:      %s\n", info.Version, info.GoVersion)
			if err != nil {
				return err
			}

			if info.GitCommit != "" {
				_, err = fmt.Fprintf(out, "commit:  %s\n", info.GitCommit)
			}

			if err == nil && info.GitDate != "" {
				_, err = fmt.Fprintf(out, "date:    %s\n", info.GitDate)
			}

			if err == nil && info.BuildTime != "" {
				_, err = fmt.Fprintf(out, "built:   %s\n", info.BuildTime)
			}

			return err
		},
	}
}
