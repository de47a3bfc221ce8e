// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect the prompt templates",
	Long: `Templates lists the prompt template names and shows their text,
including any overrides loaded from a templates file configured via
generation.templates_file.`,
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List template names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadTemplates()
		if err != nil {
			return err
		}
		for _, name := range store.Names() {
			fmt.Println(name)
		}
		return nil
	},
}

var templatesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a template's text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadTemplates()
		if err != nil {
			return err
		}
		text, err := store.Text(args[0])
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	templatesCmd.AddCommand(templatesListCmd, templatesShowCmd)
	rootCmd.AddCommand(templatesCmd)
}
