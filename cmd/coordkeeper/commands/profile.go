package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewProfileCommand creates the profile management command
func NewProfileCommand() *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile management commands",
		Long:  "Create, list, inspect and delete profiles",
	}

	profileCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all profile names",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			names := a.profiles.ListProfiles()
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No profiles yet. Create one with: coordkeeper profile create <name>")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	})

	profileCmd.AddCommand(&cobra.Command{
		Use:   "create <name>",
		Short: "Create a new profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.profiles.CreateProfile(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Profile %q created\n", args[0])
			return nil
		},
	})

	profileCmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a profile and all its coordinates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if !confirm(cmd, fmt.Sprintf("Delete profile %q and all its coordinates?", args[0])) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}

			if err := a.profiles.DeleteProfile(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Profile %q deleted\n", args[0])
			return nil
		},
	})

	profileCmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Show a profile's seed and coordinates",
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

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Profile: %s\n", args[0])
			if profile.Seed == "" {
				fmt.Fprintln(out, "Seed:    (not set)")
			} else {
				fmt.Fprintf(out, "Seed:    %s\n", profile.Seed)
			}
			if len(profile.Coords) == 0 {
				fmt.Fprintln(out, "No coordinates")
				return nil
			}
			for i, coord := range profile.Coords {
				fmt.Fprintf(out, "%3d  %s\n", i, coord.Text())
			}
			return nil
		},
	})

	return profileCmd
}

// NewSeedCommand creates the seed management command
func NewSeedCommand() *cobra.Command {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "World seed commands",
		Long:  "Get or set the optional world seed of a profile",
	}

	seedCmd.AddCommand(&cobra.Command{
		Use:   "set <profile> [seed]",
		Short: "Set a profile's world seed (omit the seed to unset it)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			seed := ""
			if len(args) == 2 {
				seed = args[1]
			}

			if err := a.profiles.SetSeed(cmd.Context(), args[0], seed); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Seed saved")
			return nil
		},
	})

	seedCmd.AddCommand(&cobra.Command{
		Use:   "get <profile>",
		Short: "Print a profile's world seed",
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

			if profile.Seed == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "(not set)")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), profile.Seed)
			return nil
		},
	})

	return seedCmd
}
