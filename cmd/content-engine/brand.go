// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-engine/internal/brand"
	"github.com/pdiddy/content-engine/pkg/types"
)

var brandCmd = &cobra.Command{
	Use:   "brand",
	Short: "Manage brand profiles in the local store",
	Long: `Brand profiles (audience, tone, industry, key values) are stored in a
local SQLite database and referenced by name from generate and edit via
the --brand flag.`,
}

var brandSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Create or update a brand profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrandSave,
}

var brandShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a brand profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrandShow,
}

var brandListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all brand profiles",
	Args:  cobra.NoArgs,
	RunE:  runBrandList,
}

var brandDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a brand profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrandDelete,
}

var brandSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search profiles by name, industry, or key values",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrandSearch,
}

var brandExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all profiles as JSON",
	Args:  cobra.NoArgs,
	RunE:  runBrandExport,
}

var brandImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import profiles from an exported JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrandImport,
}

func init() {
	brandSaveCmd.Flags().String("audience", "", "target audience")
	brandSaveCmd.Flags().String("tone", "", "brand tone: Professional, Friendly, Humorous, Inspirational, Casual, or Gen Z Slang")
	brandSaveCmd.Flags().String("industry", "", "industry")
	brandSaveCmd.Flags().String("values", "", "key brand values")

	brandExportCmd.Flags().StringP("out", "o", "", "output file (default: stdout)")
	brandImportCmd.Flags().Bool("overwrite", false, "replace existing profiles with the same name")

	brandCmd.AddCommand(brandSaveCmd, brandShowCmd, brandListCmd, brandDeleteCmd,
		brandSearchCmd, brandExportCmd, brandImportCmd)
	rootCmd.AddCommand(brandCmd)
}

// openBrandStore opens the configured store; callers must Close it.
func openBrandStore() (*brand.Store, error) {
	return brand.NewStore(brandStoreConfig())
}

func runBrandSave(cmd *cobra.Command, args []string) error {
	audience, _ := cmd.Flags().GetString("audience")
	tone, _ := cmd.Flags().GetString("tone")
	industry, _ := cmd.Flags().GetString("industry")
	values, _ := cmd.Flags().GetString("values")

	store, err := openBrandStore()
	if err != nil {
		return err
	}
	defer store.Close()

	bc := types.BrandContext{
		BrandName:      args[0],
		TargetAudience: audience,
		BrandTone:      types.BrandTone(tone),
		Industry:       industry,
		KeyValues:      values,
	}
	if err := store.Save(cmd.Context(), bc); err != nil {
		return err
	}
	fmt.Printf("Saved brand profile %q\n", args[0])
	return nil
}

func runBrandShow(cmd *cobra.Command, args []string) error {
	store, err := openBrandStore()
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Summary(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Println(summary)
	return nil
}

func runBrandList(cmd *cobra.Command, args []string) error {
	store, err := openBrandStore()
	if err != nil {
		return err
	}
	defer store.Close()

	profiles, err := store.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		fmt.Println("No brand profiles saved.")
		return nil
	}
	for _, p := range profiles {
		fmt.Printf("%-30s %s\n", p.BrandName, p.Industry)
	}
	return nil
}

func runBrandDelete(cmd *cobra.Command, args []string) error {
	store, err := openBrandStore()
	if err != nil {
		return err
	}
	defer store.Close()

	deleted, err := store.Delete(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("no brand profile named %q", args[0])
	}
	fmt.Printf("Deleted brand profile %q\n", args[0])
	return nil
}

func runBrandSearch(cmd *cobra.Command, args []string) error {
	store, err := openBrandStore()
	if err != nil {
		return err
	}
	defer store.Close()

	profiles, err := store.Search(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		fmt.Printf("No profiles match %q.\n", args[0])
		return nil
	}
	for _, p := range profiles {
		fmt.Printf("%-30s %s\n", p.BrandName, p.Industry)
	}
	return nil
}

func runBrandExport(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("out")

	store, err := openBrandStore()
	if err != nil {
		return err
	}
	defer store.Close()

	data, err := store.ExportJSON(cmd.Context())
	if err != nil {
		return err
	}

	if outPath == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", outPath)
	return nil
}

func runBrandImport(cmd *cobra.Command, args []string) error {
	overwrite, _ := cmd.Flags().GetBool("overwrite")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	store, err := openBrandStore()
	if err != nil {
		return err
	}
	defer store.Close()

	count, err := store.ImportJSON(cmd.Context(), data, overwrite)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d profile(s)\n", count)
	return nil
}
