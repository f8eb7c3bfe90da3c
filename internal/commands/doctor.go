package commands

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/gaborage/apicontract/config"
	"github.com/gaborage/apicontract/internal/spec"
)

const minGoVersion = "v1.22.0"

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(global *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and document availability",
		Long: `Performs health checks to ensure the contract commands can run.

Checks include:
- Go runtime version
- Configuration loads and validates
- The swagger document loads and declares swagger 2.x
- Every module document loads and declares openapi 3.x`,
		Example: `  apicontract doctor
  apicontract doctor --root ./service`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd.OutOrStdout(), global)
		},
	}
}

func runDoctor(out io.Writer, global *GlobalOptions) error {
	fmt.Fprintln(out, "Running apicontract health check...")
	fmt.Fprintln(out)

	var hasErrors bool

	goVersion := runtime.Version()
	fmt.Fprintf(out, "Go Version: %s\n", goVersion)
	if isGoVersionSupported(goVersion) {
		fmt.Fprintln(out, "✅ Go version compatible")
	} else {
		fmt.Fprintf(out, "⚠️  Go %s+ recommended\n", strings.TrimPrefix(minGoVersion, "v"))
	}

	cfg, err := config.Load(global.Root)
	if err != nil {
		fmt.Fprintf(out, "❌ Configuration: %v\n", err)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "❌ Health check failed - please fix the issues above")
		return fmt.Errorf("health check failed")
	}
	fmt.Fprintf(out, "✅ Configuration loaded (root %s)\n", cfg.Root)

	if err := checkSwagger(cfg.SwaggerPath()); err != nil {
		fmt.Fprintf(out, "❌ %v\n", err)
		hasErrors = true
	} else {
		fmt.Fprintf(out, "✅ %s\n", cfg.SwaggerPath())
	}

	for _, sf := range cfg.SpecFiles() {
		if _, err := spec.LoadOpenAPI(sf.Path); err != nil {
			fmt.Fprintf(out, "❌ %s: %v\n", sf.Module, err)
			hasErrors = true
			continue
		}
		fmt.Fprintf(out, "✅ %s: %s\n", sf.Module, sf.Path)
	}

	fmt.Fprintln(out)
	if hasErrors {
		fmt.Fprintln(out, "❌ Health check failed - please fix the issues above")
		return fmt.Errorf("health check failed")
	}

	fmt.Fprintln(out, "✅ All checks passed")
	return nil
}

// checkSwagger loads the generated document and insists on an explicit
// swagger version, which the plain loader tolerates being absent.
func checkSwagger(path string) error {
	sw, err := spec.LoadSwagger(path)
	if err != nil {
		return err
	}
	if sw.Swagger == "" {
		return errors.New(path + ": no swagger version declared")
	}
	return nil
}

func isGoVersionSupported(version string) bool {
	// Convert Go version (e.g., "go1.21.5") to semver format (e.g., "v1.21.5")
	if !strings.HasPrefix(version, "go") {
		return false
	}

	semverVersion := "v" + strings.TrimPrefix(version, "go")
	if !semver.IsValid(semverVersion) {
		return false
	}

	return semver.Compare(semverVersion, minGoVersion) >= 0
}
