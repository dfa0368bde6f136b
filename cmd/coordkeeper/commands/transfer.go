package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coordkeeper/core/internal/domain/entities"
)

// NewImportCommand creates the import command
func NewImportCommand() *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import profiles from a JSON document",
		Long:  "Import a profile mapping from an arbitrary JSON file. Merge mode overlays imported profiles onto the existing dataset (imported entries win on name collision); replace mode discards the existing dataset entirely.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			modeFlag, _ := cmd.Flags().GetString("mode")
			mode := entities.ImportMode(modeFlag)
			if !mode.IsValid() {
				return fmt.Errorf("unsupported import mode %q (want merge or replace)", modeFlag)
			}

			if mode == entities.ImportModeReplace && len(a.profiles.ListProfiles()) > 0 {
				if !confirm(cmd, "Replace ALL existing profiles with the imported document?") {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
					return nil
				}
			}

			if err := a.transfer.Import(cmd.Context(), args[0], mode); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Import finished")
			return nil
		},
	}

	importCmd.Flags().String("mode", string(entities.ImportModeMerge), "how to combine the document with existing data (merge or replace)")

	return importCmd
}

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export the full dataset to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.transfer.ExportTo(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", args[0])
			return nil
		},
	}
}

// NewValidateCommand creates the document validation command
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Structurally check a JSON document before importing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.transfer.ValidateDocument(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Document is valid")
			return nil
		},
	}
}
