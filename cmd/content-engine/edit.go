// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-engine/pkg/types"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit an existing variation with a free-text instruction",
	Long: `Edit re-invokes the model on one previously generated variation,
preserving its shape where the response allows. The input file holds a
single variation as JSON (an object, an array of image prompts, or a bare
string). On failure the original content is left untouched.`,
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringP("in", "i", "", "file holding the variation to edit (required)")
	editCmd.Flags().StringP("content-type", "c", "", "content type of the variation, e.g. ad_copy (required)")
	editCmd.Flags().String("instruction", "", "edit instruction, e.g. \"make it more playful\" (required)")
	editCmd.Flags().String("brand", "", "brand profile name from the brand store")
	editCmd.Flags().String("model", "", "model identifier")
	editCmd.Flags().String("api-key", "", "Groq API key (default: .secrets/groq-api-key or GROQ_API_KEY)")
	editCmd.Flags().StringP("out", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	inPath, _ := cmd.Flags().GetString("in")
	typeName, _ := cmd.Flags().GetString("content-type")
	instruction, _ := cmd.Flags().GetString("instruction")
	brandName, _ := cmd.Flags().GetString("brand")
	outPath, _ := cmd.Flags().GetString("out")

	if inPath == "" {
		return fmt.Errorf("--in is required")
	}
	ct, err := types.ParseContentType(typeName)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}
	original, err := types.UnmarshalVariation(ct, data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", inPath, err)
	}

	brandContext, err := loadBrandContext(cmd.Context(), brandName)
	if err != nil {
		return err
	}

	orchestrator, err := buildOrchestrator(cmd, os.Stderr)
	if err != nil {
		return err
	}

	edited, err := orchestrator.Edit(cmd.Context(), original, instruction, ct, brandContext)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(edited, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	if outPath == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", outPath)
	return nil
}
