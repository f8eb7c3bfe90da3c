package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaborage/apicontract/internal/contract"
	"github.com/gaborage/apicontract/internal/spec"
)

// NewCheckRoutesCommand creates the route drift check.
func NewCheckRoutesCommand(global *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check-routes",
		Short: "Compare routes exposed by code with routes documented in OpenAPI",
		Long: `Collects every (method, path) pair of the generated swagger document and of
the four module OpenAPI documents, normalizes the paths and reports routes
present on one side only. Routes listed under routes.ignore are exempt.

Exits 1 when either list is non-empty.`,
		Example: `  apicontract check-routes`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheckRoutes(cmd, global)
		},
	}
}

func runCheckRoutes(cmd *cobra.Command, global *GlobalOptions) error {
	cfg, log, err := global.setup(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	sw, err := spec.LoadSwagger(cfg.SwaggerPath())
	if err != nil {
		return err
	}
	generated := contract.GeneratedRoutes(sw)

	declared := make(contract.RouteSet)
	for _, sf := range cfg.SpecFiles() {
		oas, err := spec.LoadOpenAPI(sf.Path)
		if err != nil {
			return err
		}
		routes := contract.DeclaredRoutes(oas)
		log.Debug().Str("module", sf.Module).Int("routes", len(routes)).Msg("Declared routes collected")
		declared.Union(routes)
	}

	ignore := make(contract.RouteSet, len(cfg.Routes.Ignore))
	for _, r := range cfg.Routes.Ignore {
		ignore.Add(contract.ParseRouteKey(r))
	}

	log.Debug().
		Int("generated", len(generated)).
		Int("declared", len(declared)).
		Int("ignored", len(ignore)).
		Msg("Comparing routes")

	diff := contract.CompareRoutes(generated, declared, ignore)
	out := cmd.OutOrStdout()
	if diff.Empty() {
		fmt.Fprintln(out, "Route contracts OK: swagger routes match api/rest specs.")
		return nil
	}

	if len(diff.MissingInCode) > 0 {
		fmt.Fprintln(out, "Spec routes missing in code (swagger):")
		for _, r := range diff.MissingInCode {
			fmt.Fprintf(out, "  %s\n", r)
		}
	}
	if len(diff.Undocumented) > 0 {
		fmt.Fprintln(out, "Code routes undocumented in spec:")
		for _, r := range diff.Undocumented {
			fmt.Fprintf(out, "  %s\n", r)
		}
	}
	return ErrContractDrift
}
