package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/m1griffin/arrayfunc-sub006/arrayfunc"
	"github.com/m1griffin/arrayfunc-sub006/simd"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the dispatch level and the range of every type code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "dispatch: %s (%d bytes)\n\n", simd.CurrentName(), simd.CurrentWidth())

			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tNAME\tSIZE\tMIN\tMAX")
			for _, code := range arrayfunc.TypeCodes() {
				minVal, maxVal, err := arrayfunc.Limits(code)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", code, code.Name(), code.Size(), minVal, maxVal)
			}
			return tw.Flush()
		},
	}
}
