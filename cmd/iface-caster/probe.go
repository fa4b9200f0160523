package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"iface-caster/cast"
	"iface-caster/examples/plugins"
)

type probeStep struct {
	name string
	run  func() string
}

func probeSteps() []probeStep {
	return []probeStep{
		{"Ref[Bar](&A{X: 5})", func() string {
			if b, ok := cast.Ref[plugins.Bar](&plugins.A{X: 5}); ok {
				return fmt.Sprint(b.Bar())
			}
			return "not implemented"
		}},
		{"Ref[Bar](&B{})", func() string {
			if b, ok := cast.Ref[plugins.Bar](&plugins.B{}); ok {
				return fmt.Sprint(b.Bar())
			}
			return "not implemented"
		}},
		{"Mut[Foo](&A{X: 0}) twice", func() string {
			a := &plugins.A{}

			f, ok := cast.Mut[plugins.Foo](a)
			if !ok {
				return "not implemented"
			}

			first := f.Foo()

			return fmt.Sprintf("%d, then %d", first, f.Foo())
		}},
		{"Owned[Bar](B{Y: 7})", func() string {
			if _, err := cast.Owned[plugins.Bar](plugins.B{Y: 7}); err != nil {
				return err.Error()
			}
			return "ok"
		}},
		{"Owned[Baz](Celsius(21.5))", func() string {
			b, err := cast.Owned[plugins.Baz](plugins.Celsius(21.5))
			if err != nil {
				return err.Error()
			}
			return b.Baz()
		}},
	}
}

func newProbeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Run a few casts against the linked example plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runProbe(cmd.OutOrStdout(), probeSteps())
			return nil
		},
	}
}

func runProbe(w io.Writer, steps []probeStep) {
	for _, s := range steps {
		fmt.Fprintf(w, "%-28s %s %s\n", s.name, mutedStyle.Render("->"), s.run())
	}
}
