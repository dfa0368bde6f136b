package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/coordkeeper/core/internal/ports"
)

// NewCoordCommand creates the coordinate management command
func NewCoordCommand() *cobra.Command {
	coordCmd := &cobra.Command{
		Use:   "coord",
		Short: "Coordinate management commands",
		Long:  "Add, list, edit and delete the named coordinates of a profile. Coordinates are addressed by their list index, shown by 'coord list'.",
	}

	coordCmd.AddCommand(&cobra.Command{
		Use:   "list <profile>",
		Short: "List a profile's coordinates with their indices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			profile, err := a.profiles.GetProfile(args[0])
			if err != nil {
				return err
			}

			if len(profile.Coords) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No coordinates")
				return nil
			}
			for i, coord := range profile.Coords {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s\n", i, coord.Text())
			}
			return nil
		},
	})

	coordCmd.AddCommand(&cobra.Command{
		Use:   "add <profile> <name> <x> <y> <z>",
		Short: "Append a named coordinate to a profile",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			coord, err := a.profiles.AddCoordinate(cmd.Context(), ports.AddCoordinateRequest{
				ProfileName: args[0],
				Name:        args[1],
				X:           args[2],
				Y:           args[3],
				Z:           args[4],
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", coord.Text())
			return nil
		},
	})

	coordCmd.AddCommand(&cobra.Command{
		Use:   "update <profile> <index> <name> <x> <y> <z>",
		Short: "Overwrite the coordinate at an index",
		Long:  "Overwrite the coordinate at an index in place. Deleting the old entry and adding a new one works too; this is the shortcut.",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}

			coord, err := a.profiles.UpdateCoordinate(cmd.Context(), index, ports.AddCoordinateRequest{
				ProfileName: args[0],
				Name:        args[2],
				X:           args[3],
				Y:           args[4],
				Z:           args[5],
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d to %s\n", index, coord.Text())
			return nil
		},
	})

	coordCmd.AddCommand(&cobra.Command{
		Use:   "delete <profile> <index>",
		Short: "Delete the coordinate at an index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}

			coord, err := a.profiles.GetCoordinate(args[0], index)
			if err != nil {
				return err
			}

			if !confirm(cmd, fmt.Sprintf("Delete coordinate %q?", coord.Name)) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}

			if err := a.profiles.DeleteCoordinate(cmd.Context(), args[0], index); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", coord.Text())
			return nil
		},
	})

	coordCmd.AddCommand(&cobra.Command{
		Use:   "get <profile> <index>",
		Short: "Print the coordinate at an index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}

			coord, err := a.profiles.GetCoordinate(args[0], index)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), coord.Text())
			return nil
		},
	})

	coordCmd.AddCommand(&cobra.Command{
		Use:   "copy <profile> <index>",
		Short: "Copy a coordinate as text to the clipboard",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}

			coord, err := a.profiles.GetCoordinate(args[0], index)
			if err != nil {
				return err
			}

			text := coord.Text()
			if err := clipboard.WriteAll(text); err != nil {
				// No clipboard available (headless session); the text on
				// stdout is still usable.
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Coordinate text copied to clipboard")
			return nil
		},
	})

	coordCmd.AddCommand(&cobra.Command{
		Use:   "print <profile> <index>",
		Short: "Print a coordinate to the console with its profile name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}

			coord, err := a.profiles.GetCoordinate(args[0], index)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", args[0], coord.Text())
			return nil
		},
	})

	return coordCmd
}
