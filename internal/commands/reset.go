package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/spf13/cobra"

	"github.com/gaborage/apicontract/internal/converter"
	"github.com/gaborage/apicontract/internal/modules"
	"github.com/gaborage/apicontract/internal/spec"
	"github.com/gaborage/apicontract/logger"
)

// ResetOptions holds options for the reset command
type ResetOptions struct {
	Swagger string
	DryRun  bool
	Verify  bool
}

// NewResetCommand creates the regeneration command.
func NewResetCommand(global *GlobalOptions) *cobra.Command {
	opts := &ResetOptions{}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Regenerate the module OpenAPI documents from swagger",
		Long: `Converts the generated swagger document into the four module OpenAPI
documents. Each destination keeps its own metadata (info, servers, ...) while
paths and components.schemas are replaced and tags are unioned.

Paths no module claims and schemas referenced but not defined are reported
and left out; they never stop the run.`,
		Example: `  # Preview what would be written
  apicontract reset --dry-run

  # Regenerate from a specific swagger document
  apicontract reset --swagger build/swagger.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReset(cmd, global, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Swagger, "swagger", "", "Path to swagger.yaml (default from configuration)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Only print a summary, do not write files")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "Parse every rendered document as OpenAPI 3 before writing it")

	return cmd
}

func runReset(cmd *cobra.Command, global *GlobalOptions, opts *ResetOptions) error {
	cfg, log, err := global.setup(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	swaggerPath := cfg.SwaggerPath()
	if opts.Swagger != "" {
		swaggerPath = opts.Swagger
	}

	sw, err := spec.LoadSwagger(swaggerPath)
	if err != nil {
		return err
	}
	log.Debug().Str("swagger", swaggerPath).Int("paths", len(sw.Paths)).Int("definitions", len(sw.Definitions)).Msg("Swagger loaded")

	res := converter.New(log).Convert(sw)
	out := cmd.OutOrStdout()

	// Every destination is loaded and merged before the first write so a
	// structural failure leaves all of them untouched.
	type pending struct {
		path string
		doc  *spec.Document
		mr   *converter.ModuleResult
	}
	var ready []pending

	for _, sf := range cfg.SpecFiles() {
		name := filepath.Base(sf.Path)

		doc, err := spec.LoadDocument(sf.Path)
		if err != nil {
			return err
		}
		if _, err := doc.OpenAPI(); err != nil {
			return err
		}

		mr := res.Module(modules.Parse(sf.Module))
		if mr == nil {
			return fmt.Errorf("no conversion result for module %q", sf.Module)
		}
		if len(mr.Missing) > 0 {
			fmt.Fprintf(out, "%s: missing swagger definitions: %v\n", name, mr.Missing)
		}

		if err := converter.Apply(doc, mr); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if opts.Verify {
			if err := verifyDocument(cmd.Context(), doc, log); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
		ready = append(ready, pending{path: sf.Path, doc: doc, mr: mr})
	}

	for _, p := range ready {
		if opts.DryRun {
			fmt.Fprintf(out, "%s: %d paths, %d schemas\n", filepath.Base(p.path), len(p.mr.Paths), len(p.mr.Schemas))
			continue
		}
		if err := p.doc.WriteFile(p.path); err != nil {
			return err
		}
		log.Info().Str("file", p.path).Int("paths", len(p.mr.Paths)).Int("schemas", len(p.mr.Schemas)).Msg("Document written")
	}

	printBodyConflicts(out, res.BodyConflicts)

	if len(res.Unmapped) > 0 {
		fmt.Fprintln(out, "Unmapped swagger paths:")
		for _, p := range res.Unmapped {
			fmt.Fprintf(out, "  - %s\n", p)
		}
	}
	return nil
}

func printBodyConflicts(out io.Writer, conflicts []converter.BodyConflict) {
	if len(conflicts) == 0 {
		return
	}
	fmt.Fprintln(out, "Operations with several request bodies:")
	for _, c := range conflicts {
		fmt.Fprintf(out, "  - %s %s: kept %q, ignored %q\n", c.Method, c.Path, c.Kept, c.Dropped)
	}
}

// verifyDocument parses the rendered document with an independent OpenAPI 3
// loader. A load failure (including unresolved references) is fatal;
// validation findings are only logged.
func verifyDocument(ctx context.Context, doc *spec.Document, log logger.Logger) error {
	data, err := doc.Bytes()
	if err != nil {
		return err
	}

	loader := openapi3.NewLoader()
	loaded, err := loader.LoadFromData(data)
	if err != nil {
		return fmt.Errorf("rendered document does not load as OpenAPI 3: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if err := loaded.Validate(ctx); err != nil {
		log.Warn().Err(err).Str("file", doc.Path()).Msg("Rendered document has validation findings")
	}
	return nil
}
