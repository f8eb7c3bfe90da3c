package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gaborage/apicontract/internal/contract"
	"github.com/gaborage/apicontract/internal/modules"
	"github.com/gaborage/apicontract/internal/spec"
)

// NewCheckSchemasCommand creates the schema drift check.
func NewCheckSchemasCommand(global *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check-schemas",
		Short: "Compare swagger definitions with OpenAPI component schemas",
		Long: `Compares the definitions of the generated swagger document with the
component schemas of each module's OpenAPI document. Schemas are matched by
short name; property sets and required sets must agree.

Exits 1 and prints one line per mismatching schema when drift is found.`,
		Example: `  apicontract check-schemas
  apicontract check-schemas --root ../iam`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheckSchemas(cmd, global)
		},
	}
}

func runCheckSchemas(cmd *cobra.Command, global *GlobalOptions) error {
	cfg, log, err := global.setup(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	sw, err := spec.LoadSwagger(cfg.SwaggerPath())
	if err != nil {
		return err
	}
	groups := modules.Group(sw.Definitions)

	var diffs []contract.SchemaDiff
	for _, sf := range cfg.SpecFiles() {
		oas, err := spec.LoadOpenAPI(sf.Path)
		if err != nil {
			return err
		}

		group := groups[modules.Parse(sf.Module)]
		found := contract.CompareSchemas(group, oas.Components.Schemas, filepath.Base(sf.Path))
		log.Debug().
			Str("module", sf.Module).
			Int("definitions", len(group)).
			Int("schemas", len(oas.Components.Schemas)).
			Int("diffs", len(found)).
			Msg("Schemas compared")
		diffs = append(diffs, found...)
	}

	out := cmd.OutOrStdout()
	if len(diffs) > 0 {
		for _, d := range diffs {
			fmt.Fprintln(out, d.String())
		}
		return ErrContractDrift
	}

	fmt.Fprintln(out, "OpenAPI specs match swagger definitions.")
	return nil
}
