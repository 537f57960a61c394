package shield

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dotenv-shield/dotenv-shield/internal/envfile"
	"github.com/dotenv-shield/dotenv-shield/internal/filesystems"
	"github.com/dotenv-shield/dotenv-shield/internal/scanner"
	"github.com/dotenv-shield/dotenv-shield/internal/schema"
)

var (
	generateSource   string
	generateSchema   string
	generateExample  string
	generateNoDetect bool
	generateMerge    bool
	generateScanRoot string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Infer a schema and redacted example from a .env file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(); err != nil {
			fmt.Fprintf(os.Stderr, "Generation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func runGenerate() error {
	content, err := os.ReadFile(generateSource)
	if err != nil {
		return fmt.Errorf("failed to read source file %s: %w", generateSource, err)
	}

	entries, err := envfile.Parse(content)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", generateSource, err)
	}

	opts := schema.BuildOptions{Detected: map[string]bool{}}

	if !generateNoDetect {
		scanRoot := generateScanRoot
		if scanRoot == "" {
			scanRoot = filepath.Dir(generateSource)
		}
		// A failed sweep degrades to no detections rather than
		// aborting generation.
		names, err := scanner.New(filesystems.NewLocalFS(), slog.Default()).Scan(context.Background(), scanRoot)
		if err != nil {
			slog.Warn("code scan failed, continuing without usage detection", "root", scanRoot, "error", err)
		}
		for _, name := range names {
			opts.Detected[name] = true
		}
	}

	store := schema.NewStore(generateSchema)
	if generateMerge {
		prior, err := store.Load()
		if err != nil {
			var notFound *schema.ErrSchemaNotFound
			if !errors.As(err, &notFound) {
				return err
			}
			// No prior schema: merge mode degrades to a plain run.
		} else {
			opts.Prior = prior
		}
	}

	doc, example, stats, err := schema.Build(entries, opts)
	if err != nil {
		return err
	}

	if err := store.Save(doc, generateMerge); err != nil {
		return err
	}
	if err := os.WriteFile(generateExample, example.Render(), 0o644); err != nil {
		return fmt.Errorf("failed to write example file: %w", err)
	}

	fmt.Printf("Wrote %s and %s\n", generateSchema, generateExample)
	fmt.Printf("  %d variables, %d required, %d detected in code, %d secrets\n",
		stats.Total, stats.Required, stats.Detected, stats.Secrets)
	return nil
}

func init() {
	generateCmd.Flags().StringVarP(&generateSource, "source", "s", ".env", "dotenv file to infer the schema from")
	generateCmd.Flags().StringVar(&generateSchema, "schema", "env.schema.json", "schema output path")
	generateCmd.Flags().StringVar(&generateExample, "example", ".env.example", "example output path")
	generateCmd.Flags().BoolVar(&generateNoDetect, "no-detect", false, "skip scanning source code for variable usage")
	generateCmd.Flags().BoolVar(&generateMerge, "merge", false, "merge with an existing schema, preserving manual edits")
	generateCmd.Flags().StringVar(&generateScanRoot, "scan-root", "", "directory to scan for variable usage (default: source file's directory)")
	rootCmd.AddCommand(generateCmd)
}
