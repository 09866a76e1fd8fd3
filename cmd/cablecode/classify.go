package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cognicore/cablecode/pkg/cablecode"
)

func newClassifyCmd(a *app) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "classify <description>...",
		Short: "Convert descriptions given on the command line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}
			for _, d := range args {
				printClassification(cmd.OutOrStdout(), eng, d, explain)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "Show category, deciding signal and formation")
	return cmd
}

func printClassification(w io.Writer, eng *cablecode.Engine, description string, explain bool) {
	res := eng.Convert(description)
	if !explain {
		fmt.Fprintln(w, res.String())
		return
	}

	signal := "-"
	if f, ok := eng.Extract(description); ok {
		signal = string(eng.Classify(description, f).Signal)
	}
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", res.Category, signal, res.Formation, res.String())
}
