package commands

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coordkeeper/core/internal/adapters/repository"
	"github.com/coordkeeper/core/internal/application/services"
	"github.com/coordkeeper/core/internal/domain/entities"
	"github.com/coordkeeper/core/internal/infrastructure/config"
	"github.com/coordkeeper/core/internal/infrastructure/logger"
)

// AddCommands attaches every coordkeeper command and the shared flags to
// the root command.
func AddCommands(root *cobra.Command) {
	root.PersistentFlags().String("data", "", "dataset file path (overrides DATA_PATH and the default cords-data.json)")
	root.PersistentFlags().BoolP("yes", "y", false, "answer yes to confirmation prompts")

	root.AddCommand(NewProfileCommand())
	root.AddCommand(NewSeedCommand())
	root.AddCommand(NewCoordCommand())
	root.AddCommand(NewImportCommand())
	root.AddCommand(NewExportCommand())
	root.AddCommand(NewSaveCommand())
	root.AddCommand(NewValidateCommand())
	root.AddCommand(NewVersionCommand())
}

// NewSaveCommand creates the manual "save now" command
func NewSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Write the dataset to disk now",
		Long:  "Write the full dataset to the configured path. Every mutating command already saves on success; this is the manual safety net.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.profiles.Save(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Dataset saved to %s\n", a.profiles.Path())
			return nil
		},
	}
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print coordkeeper version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", cfg.App.Name, cfg.App.Version)
			return nil
		},
	}
}

// app bundles everything a command needs for one invocation.
type app struct {
	cfg      *config.Config
	logger   *logger.Logger
	profiles *services.ProfileService
	transfer *services.TransferService
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if override, _ := cmd.Root().PersistentFlags().GetString("data"); override != "" {
		cfg.Storage.Path = override
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	repo := repository.NewDatasetRepository(appLogger)

	dataset, err := repo.Load(cmd.Context(), cfg.Storage.Path)
	if err != nil {
		// A broken data file is never fatal: surface it and degrade to
		// an empty dataset.
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v — starting with an empty dataset\n", err)
		dataset = entities.NewDataset()
	}

	profiles := services.NewProfileService(dataset, repo, cfg.Storage.Path, appLogger)
	transfer := services.NewTransferService(profiles, repo, appLogger)

	return &app{
		cfg:      cfg,
		logger:   appLogger,
		profiles: profiles,
		transfer: transfer,
	}, nil
}

func (a *app) Close() {
	_ = a.logger.Close()
}

// confirm asks the user before a destructive operation. The --yes flag
// answers for scripted use.
func confirm(cmd *cobra.Command, prompt string) bool {
	if yes, _ := cmd.Root().PersistentFlags().GetBool("yes"); yes {
		return true
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("index must be a whole number, got %q", arg)
	}
	return index, nil
}
