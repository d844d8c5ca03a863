package main

import (
	"encoding/json"
	"fmt"
	"io"

	"cardcheck/internal/config"
	"cardcheck/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

type rootOptions struct {
	verbose bool
	output  string
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "cardcheck",
		Short:         "Validate card numbers and manage card API credentials",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.output {
			case outputText, outputJSON, outputYAML:
			default:
				return fmt.Errorf("unknown output format %q", opts.output)
			}

			config.LoadEnv()
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			log, err := logger.New(level, false)
			if err != nil {
				return err
			}
			opts.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "output format: text, json or yaml")

	cmd.AddCommand(
		newCheckCmd(opts),
		newTypesCmd(opts),
		newTokenCmd(opts),
		newKeygenCmd(opts),
	)
	return cmd
}

// render writes v as JSON or YAML, or calls text for the text format.
func render(w io.Writer, format string, v interface{}, text func(io.Writer) error) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}
