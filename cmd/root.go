package cmd

import (
	"github.com/spf13/cobra"

	"smart-employee-api/internal/config"
	"smart-employee-api/internal/synth"
)

func NewRootCommand() *cobra.Command {
	serve := newServeCommand()
	root := &cobra.Command{
		Use:          "smart-employee-api",
		Short:        "DRC Systems Employee API (Smart IDs)",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	root.AddCommand(serve, newGenerateCommand(), newInspectCommand())
	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}

func newSynthesizer(cfg config.AppConfig, extra ...synth.Option) *synth.Synthesizer {
	opts := []synth.Option{
		synth.WithSeed(cfg.Seed),
		synth.WithNullProbability(cfg.NullProbability),
	}
	return synth.New(append(opts, extra...)...)
}
