// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-engine/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Re-render a saved generation result in another format",
	Long: `Export reads a previously saved generation result (either the JSON
envelope written by generate, or a bare content mapping) and re-renders it
as text, markdown, HTML, or a zip archive.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("format", "f", "text", "output format: json, text, markdown, html, zip")
	exportCmd.Flags().StringP("out", "o", "", "output file (default: stdout, or output/exports for zip)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	content, err := decodeSavedResult(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	return writeResult(content, format, outPath)
}

// decodeSavedResult accepts both the export envelope and a bare mapping.
func decodeSavedResult(data []byte) (*types.GeneratedContent, error) {
	var wrapped struct {
		Content *types.GeneratedContent `json:"content"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Content != nil && wrapped.Content.Len() > 0 {
		return wrapped.Content, nil
	}

	var content types.GeneratedContent
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, err
	}
	return &content, nil
}
