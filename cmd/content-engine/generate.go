// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/content-engine/internal/brand"
	"github.com/pdiddy/content-engine/internal/export"
	"github.com/pdiddy/content-engine/internal/generate"
	"github.com/pdiddy/content-engine/internal/llm"
	"github.com/pdiddy/content-engine/internal/prompt"
	"github.com/pdiddy/content-engine/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate marketing content variations from a prompt",
	Long: `Generate produces variations of the selected content types for a
product or campaign prompt, optionally steered by a saved brand profile.
Social caption requests fan out over the listed platforms within each
variation. Failed variations are recorded inline; the rest of the request
still completes.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("prompt", "p", "", "product or campaign description (required)")
	generateCmd.Flags().StringSliceP("types", "t", nil, "content types, e.g. ad_copy,social_media_captions (required)")
	generateCmd.Flags().StringSlice("platforms", nil, "platforms for social captions (default Instagram)")
	generateCmd.Flags().IntP("variations", "n", 0, "variations per content type, 1-5 (default 3)")
	generateCmd.Flags().String("brand", "", "brand profile name from the brand store")
	generateCmd.Flags().Int("workers", 0, "parallel fan-out workers (default sequential)")
	generateCmd.Flags().String("model", "", "model identifier")
	generateCmd.Flags().String("api-key", "", "Groq API key (default: .secrets/groq-api-key or GROQ_API_KEY)")
	generateCmd.Flags().StringP("format", "f", "json", "output format: json, text, markdown, html, zip")
	generateCmd.Flags().StringP("out", "o", "", "output file (default: stdout, or output/exports for zip)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	promptText, _ := cmd.Flags().GetString("prompt")
	typeNames, _ := cmd.Flags().GetStringSlice("types")
	platforms, _ := cmd.Flags().GetStringSlice("platforms")
	variations, _ := cmd.Flags().GetInt("variations")
	brandName, _ := cmd.Flags().GetString("brand")
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	contentTypes := make([]types.ContentType, 0, len(typeNames))
	for _, name := range typeNames {
		ct, err := types.ParseContentType(name)
		if err != nil {
			return err
		}
		contentTypes = append(contentTypes, ct)
	}

	brandContext, err := loadBrandContext(cmd.Context(), brandName)
	if err != nil {
		return err
	}

	orchestrator, err := buildOrchestrator(cmd, os.Stderr)
	if err != nil {
		return err
	}

	if variations == 0 {
		variations = viper.GetInt("generation.num_variations")
	}
	if len(platforms) == 0 {
		platforms = viper.GetStringSlice("generation.platforms")
	}

	result, err := orchestrator.Generate(cmd.Context(), types.ContentRequest{
		Prompt:        promptText,
		ContentTypes:  contentTypes,
		Platforms:     platforms,
		BrandContext:  brandContext,
		NumVariations: variations,
	})
	if err != nil {
		return err
	}

	return writeResult(result, format, outPath)
}

// buildOrchestrator assembles the model client, template store, and
// orchestrator from flags, config, and loaded secrets.
func buildOrchestrator(cmd *cobra.Command, logWriter io.Writer) (*generate.Orchestrator, error) {
	model, _ := cmd.Flags().GetString("model")
	apiKey, _ := cmd.Flags().GetString("api-key")
	workers, _ := cmd.Flags().GetInt("workers")

	if model == "" {
		model = viper.GetString("generation.model")
	}
	apiKey = secretDefault("groq-api-key", apiKey)
	if workers == 0 {
		workers = viper.GetInt("generation.workers")
	}

	client, err := llm.New(types.AIConfig{
		Model:       model,
		BaseURL:     viper.GetString("generation.base_url"),
		APIKey:      apiKey,
		Temperature: viper.GetFloat64("generation.temperature"),
		MaxTokens:   viper.GetInt("generation.max_tokens"),
		MaxAttempts: viper.GetInt("generation.max_attempts"),
		Timeout:     viper.GetDuration("generation.timeout"),
	})
	if err != nil {
		return nil, err
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	return generate.New(client, templates,
		generate.WithWorkers(workers),
		generate.WithLogWriter(logWriter),
	), nil
}

func loadTemplates() (*prompt.Store, error) {
	if path := viper.GetString("generation.templates_file"); path != "" {
		return prompt.NewStoreFromFile(path)
	}
	return prompt.NewStore(), nil
}

// loadBrandContext resolves a profile name against the brand store. An
// empty name yields no brand context.
func loadBrandContext(ctx context.Context, name string) (*types.BrandContext, error) {
	if name == "" {
		return nil, nil
	}

	store, err := brand.NewStore(brandStoreConfig())
	if err != nil {
		return nil, err
	}
	defer store.Close()

	profile, err := store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return &profile.BrandContext, nil
}

func brandStoreConfig() types.BrandStoreConfig {
	return types.BrandStoreConfig{Dir: viper.GetString("brands.dir")}
}

// writeResult renders the mapping in the requested format and writes it to
// the output path, or stdout for textual formats.
func writeResult(result *types.GeneratedContent, format, outPath string) error {
	var data []byte
	var err error

	switch strings.ToLower(format) {
	case "json":
		data, err = export.JSON(result)
	case "text":
		data = []byte(export.Text(result))
	case "markdown", "md":
		data = []byte(export.Markdown(result))
	case "html":
		data, err = export.HTML(result)
	case "zip":
		data, err = export.Zip(result)
		if err == nil && outPath == "" {
			outDir := viper.GetString("export.output_dir")
			if outDir == "" {
				outDir = filepath.Join("output", "exports")
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("creating export directory: %w", err)
			}
			outPath = filepath.Join(outDir, fmt.Sprintf("content_export_%s.zip", time.Now().Format("20060102_150405")))
		}
	default:
		return fmt.Errorf("unknown format %q (want json, text, markdown, html, or zip)", format)
	}
	if err != nil {
		return err
	}

	if outPath == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", outPath)
	return nil
}
