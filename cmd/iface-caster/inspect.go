package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"iface-caster/cast"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "List castable interfaces and their implementations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			reg := cast.Default()

			for _, iface := range reg.Interfaces() {
				impls, _ := reg.Implementers(iface)
				fmt.Fprintf(out, "%s %s\n", headerStyle.Render(iface.FullName()), mutedStyle.Render(fmt.Sprintf("(%d)", len(impls))))

				if len(impls) == 0 {
					fmt.Fprintln(out, "  "+mutedStyle.Render("no implementations"))
				}

				for _, c := range impls {
					fmt.Fprintf(out, "  %s\n", c.FullName())
				}
			}

			fmt.Fprintln(out)
			printDiagnostics(out, reg.Diagnostics())

			return nil
		},
	}
}
