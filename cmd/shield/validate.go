package shield

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dotenv-shield/dotenv-shield/internal/export"
	"github.com/dotenv-shield/dotenv-shield/internal/schema"
	"github.com/dotenv-shield/dotenv-shield/internal/validate"
)

var (
	validateSchema  string
	validateEnvFile string
	validateCI      bool
	validateQuiet   bool
	validateJSON    bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check live environment variables against the schema",
	Run: func(cmd *cobra.Command, args []string) {
		ok, err := runValidate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			os.Exit(1)
		}
	},
}

func runValidate() (bool, error) {
	doc, err := schema.NewStore(validateSchema).Load()
	if err != nil {
		return false, err
	}

	env := validate.EnvironSnapshot()
	if validateEnvFile != "" {
		fileVars, err := godotenv.Read(validateEnvFile)
		if err != nil {
			return false, fmt.Errorf("failed to read env file %s: %w", validateEnvFile, err)
		}
		// The ambient environment wins over the preloaded file,
		// matching dotenv loading semantics.
		for k, v := range fileVars {
			if _, ok := env[k]; !ok {
				env[k] = v
			}
		}
	}

	report := validate.Run(doc, env, validate.Options{CI: validateCI})

	var renderer export.Renderer
	if validateJSON {
		renderer = export.NewJSONRenderer()
	} else {
		renderer = export.NewTextRenderer(validateQuiet)
	}

	out, err := renderer.Render(report)
	if err != nil {
		return false, err
	}
	if validateJSON {
		fmt.Println(string(out))
	} else {
		fmt.Print(string(out))
	}

	return report.Success, nil
}

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "env.schema.json", "schema file to validate against")
	validateCmd.Flags().StringVar(&validateEnvFile, "env-file", "", "dotenv file to preload before validating")
	validateCmd.Flags().BoolVar(&validateCI, "ci", false, "CI mode: report undeclared variables as warnings")
	validateCmd.Flags().BoolVarP(&validateQuiet, "quiet", "q", false, "only print errors")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "emit the report as a single JSON line")
	rootCmd.AddCommand(validateCmd)
}
