// Package cli wires the core services into the cobra command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daisy-days/daisyd/internal/adapters/driven/config/file"
	"github.com/daisy-days/daisyd/internal/adapters/driven/corpusfs"
	"github.com/daisy-days/daisyd/internal/adapters/driven/layouts"
	"github.com/daisy-days/daisyd/internal/adapters/driven/storage/memory"
	"github.com/daisy-days/daisyd/internal/core/domain"
	"github.com/daisy-days/daisyd/internal/core/ports/driven"
	"github.com/daisy-days/daisyd/internal/core/ports/driving"
	"github.com/daisy-days/daisyd/internal/core/services"
	"github.com/daisy-days/daisyd/internal/logger"
)

const version = "0.1.0"

var (
	verbose   bool
	corpusDir string
	configDir string
)

// Stores outlive the services so long-running commands can hot-reload
// the corpus through them.
var (
	docStore     driven.DocStore
	conceptStore driven.ConceptStore
)

var (
	docService      driving.DocService
	conceptService  driving.ConceptService
	layoutService   driving.LayoutService
	snippetService  driving.SnippetService
	settingsService driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "daisyd",
	Short: "daisyUI documentation index and layout generator",
	Long: `daisyd indexes the daisyUI component documentation and design
concepts, searches them by tag and name, and generates complete HTML
layouts from a set of page archetypes.

It runs as a CLI, an interactive TUI, or an MCP server for AI
assistant integration.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if docService != nil {
			return nil
		}
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&corpusDir, "corpus", "", "directory with corpus overrides (components.txt, concepts.txt)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.daisyd)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initServices() error {
	var source driven.CorpusSource = corpusfs.NewEmbeddedSource()
	if corpusDir != "" {
		source = corpusfs.NewFileSource(corpusDir)
	}

	entries, concepts, err := corpusfs.Load(source)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}
	docStore = memory.NewDocStore(entries)
	conceptStore = memory.NewConceptStore(concepts)

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	settingsService = services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	docService = services.NewDocsService(docStore)
	conceptService = services.NewConceptsService(conceptStore)
	layoutService = services.NewLayoutsService(layouts.NewRegistry(), conceptStore, settings.Theme)
	snippetService = services.NewSnippetsService()

	return nil
}

// currentSettings loads the persisted settings for commands that take
// their defaults from them.
func currentSettings() (*domain.AppSettings, error) {
	if settingsService == nil {
		return nil, errors.New("settings service not configured")
	}
	return settingsService.Get()
}

// startWatcher begins hot-reloading the corpus directory for
// long-running commands. The returned stop function is a no-op when no
// corpus directory is configured.
func startWatcher(ctx context.Context) (func(), error) {
	if corpusDir == "" {
		return func() {}, nil
	}

	watcher, err := corpusfs.NewWatcher(corpusDir, docStore, conceptStore)
	if err != nil {
		return nil, fmt.Errorf("watching corpus: %w", err)
	}
	watcher.Start(ctx)
	return func() {
		if err := watcher.Stop(); err != nil {
			logger.Warn("stopping corpus watcher: %v", err)
		}
	}, nil
}
