package commands

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/gaborage/apicontract/config"
	"github.com/gaborage/apicontract/logger"
)

// ErrContractDrift is returned by the check commands when drift was found and
// reported. The process should exit non-zero without printing it again.
var ErrContractDrift = errors.New("contract drift detected")

// GlobalOptions holds flags shared by every command.
type GlobalOptions struct {
	Root    string
	Verbose bool
}

// NewRootCommand assembles the apicontract command tree.
func NewRootCommand(version string) *cobra.Command {
	opts := &GlobalOptions{}

	rootCmd := &cobra.Command{
		Use:   "apicontract",
		Short: "Keep generated and public API specifications in sync",
		Long: `Contract tooling for an HTTP API described twice: by the swagger document
generated from the service code and by the per-module OpenAPI documents
maintained by hand (authn, identity, authz, idp).

It reports schema and route drift between the two and can regenerate the
public documents from the generated one.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.Root, "root", "r", "", "Repository root documents are resolved against (default \".\")")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Debug logging on stderr")

	rootCmd.AddCommand(
		NewCheckSchemasCommand(opts),
		NewCheckRoutesCommand(opts),
		NewResetCommand(opts),
		NewDoctorCommand(opts),
		NewVersionCommand(version),
	)

	return rootCmd
}

// setup loads configuration and builds the logger for one command run.
func (o *GlobalOptions) setup(stderr io.Writer) (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(o.Root)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.Log.Level
	if o.Verbose {
		level = "debug"
	}
	log := logger.NewWithWriter(stderr, level, cfg.Log.Pretty)
	log.Debug().Str("root", cfg.Root).Str("swagger", cfg.SwaggerPath()).Msg("Configuration loaded")

	return cfg, log, nil
}
