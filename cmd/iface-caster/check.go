package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"iface-caster/cast"
	"iface-caster/manifest"
)

var errDriftFound = errors.New("registry does not match the manifest")

func newCheckCommand() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare the registry with a manifest",
		Long: `Check loads a YAML or TOML manifest listing the interfaces that must be
castable and their expected implementations, and reports any drift. It
exits non-zero when the check finds errors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := manifest.LoadFile(manifestPath)
			if err != nil {
				return err
			}

			diags := manifest.Check(cast.Default(), m)
			printDiagnostics(cmd.OutOrStdout(), diags)

			log.Debug().
				Str("manifest", manifestPath).
				Int("errors", len(diags.Errors)).
				Int("warnings", len(diags.Warnings)).
				Msg("manifest checked")

			if err := diags.Error(); err != nil {
				return fmt.Errorf("%s: %w: %w", manifestPath, errDriftFound, err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "manifest file (.yaml, .yml or .toml)")
	_ = cmd.MarkFlagRequired("manifest")

	return cmd
}
