// Package main is the entry point for the CampusBook desktop roster manager.
//
// The architecture follows Clean Architecture and DDD:
// - Domain: person and roster business logic without external dependencies
// - Application: command parsing and use case handlers (Commands/Queries)
// - Infrastructure: snapshot persistence and the event bus
// - Interface: the interactive terminal interface
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/campusbook/campusbook/config"
	"github.com/campusbook/campusbook/internal/application"
	"github.com/campusbook/campusbook/internal/domain/roster"
	"github.com/campusbook/campusbook/internal/infrastructure/messaging"
	"github.com/campusbook/campusbook/internal/infrastructure/persistence/jsonfile"
	"github.com/campusbook/campusbook/internal/interface/tui"
	"github.com/campusbook/campusbook/pkg/logging"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		dataFile   string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:     "campusbook",
		Short:   "Manage your student contacts from the terminal",
		Long:    "CampusBook keeps a roster of student contacts, driven entirely by typed commands.",
		Version: version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			// Flags beat both the file and environment.
			if dataFile != "" {
				cfg.App.DataFile = dataFile
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	cmd.Flags().StringVarP(&dataFile, "data", "d", "", "path to the roster snapshot file")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "minimum log level (debug, info, warn, error)")

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("starting campusbook",
		zap.String("version", version),
		zap.String("data_file", cfg.App.DataFile))

	bus := messaging.NewInMemoryEventBus(logger.Named("bus"))
	defer bus.Close()

	model := roster.NewModel(bus)
	storage := jsonfile.NewStorage(cfg.App.DataFile, logger.Named("storage"))

	// A corrupt snapshot and a missing one both start the app with sample
	// data; a corrupt file is reported first and never overwritten silently.
	persons, err := storage.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning: could not load roster, starting with sample data:", err)
		logger.Warn("snapshot load failed", zap.Error(err))
		persons = nil
	}
	if persons == nil {
		persons = roster.SamplePersons()
	}
	if err := model.Reset(persons); err != nil {
		return fmt.Errorf("seed roster: %w", err)
	}

	executor := application.NewExecutor(model, storage, logger.Named("executor"))

	welcome := ""
	if cfg.UI.ShowWelcome {
		welcome = fmt.Sprintf("Welcome to %s! Type help to get started.", cfg.App.Name)
	}
	ui, err := tui.New(executor, model, bus, logger.Named("tui"), welcome)
	if err != nil {
		return err
	}

	program := tea.NewProgram(ui, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run interface: %w", err)
	}

	logger.Info("campusbook stopped")
	return nil
}
