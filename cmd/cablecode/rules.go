package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRulesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the effective rule documents as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := a.loader()
			cr, sp, err := l.Documents()
			if err != nil {
				return err
			}
			// validate before printing
			if _, err := l.Load(); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(cr); err != nil {
				return fmt.Errorf("encode conversion rules: %w", err)
			}
			if err := enc.Encode(sp); err != nil {
				return fmt.Errorf("encode special patterns: %w", err)
			}
			return enc.Close()
		},
	}
}
