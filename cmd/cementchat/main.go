// cementchat is a terminal client for the CementGPT RAG backend. Run
// without arguments for the interactive chat interface; subcommands expose
// one-shot operations for scripting.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cementgpt/cementchat/internal/api"
	"github.com/cementgpt/cementchat/internal/chat"
	"github.com/cementgpt/cementchat/internal/config"
	"github.com/cementgpt/cementchat/internal/tui"
)

var (
	// Global flags
	configPath string
	serverURL  string
	verbose    bool
	assumeYes  bool
)

var rootCmd = &cobra.Command{
	Use:   "cementchat",
	Short: "Terminal client for the CementGPT RAG assistant",
	Long: `cementchat talks to a CementGPT RAG backend over HTTP: chat with the
assistant, inspect and clear the conversation, and manage document corpora.

Run without arguments to start the interactive chat interface.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check backend readiness",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, cleanup, err := newController()
		if err != nil {
			return err
		}
		defer cleanup()
		return ctrl.CheckStatus(cmd.Context())
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the persisted conversation history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, cleanup, err := newController()
		if err != nil {
			return err
		}
		defer cleanup()
		return ctrl.LoadHistory(cmd.Context())
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the conversation history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !assumeYes {
			return fmt.Errorf("refusing to clear without --yes")
		}
		ctrl, _, cleanup, err := newController()
		if err != nil {
			return err
		}
		defer cleanup()
		return ctrl.ClearConversation(cmd.Context())
	},
}

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage document corpora",
}

var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available corpora",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, cleanup, err := newController()
		if err != nil {
			return err
		}
		defer cleanup()
		return ctrl.RefreshCorpora(cmd.Context())
	},
}

var corpusCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new corpus",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, cleanup, err := newController()
		if err != nil {
			return err
		}
		defer cleanup()
		return ctrl.CreateCorpus(cmd.Context(), args[0])
	},
}

var corpusAddDocCmd = &cobra.Command{
	Use:   "add-document [corpus] [url]",
	Short: "Add a document URL to a corpus",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, cleanup, err := newController()
		if err != nil {
			return err
		}
		defer cleanup()
		return ctrl.AddDocument(cmd.Context(), args[0], args[1])
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the conversation transcript as HTML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, cleanup, err := newController()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := ctrl.LoadHistory(cmd.Context()); err != nil {
			return err
		}

		out := os.Stdout
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", args[0], err)
			}
			defer f.Close()
			out = f
		}
		return ctrl.ExportTranscript(out)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "backend base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	clearCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip the confirmation prompt")

	corpusCmd.AddCommand(corpusListCmd, corpusCreateCmd, corpusAddDocCmd)
	rootCmd.AddCommand(statusCmd, historyCmd, clearCmd, corpusCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if serverURL != "" {
		cfg.Server.BaseURL = serverURL
	}
	return cfg, nil
}

// buildLogger creates the logger for one-shot subcommands (stderr) or the
// interactive UI (log file; the TUI owns the terminal).
func buildLogger(cfg *config.Config, interactive bool) (*zap.Logger, error) {
	if interactive && cfg.Log.File == "" {
		// No log file configured: stay silent rather than corrupt the UI.
		return zap.NewNop(), nil
	}

	zcfg := zap.NewProductionConfig()
	if level, err := zap.ParseAtomicLevel(cfg.Log.Level); err == nil {
		zcfg.Level = level
	}
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	if interactive {
		zcfg.OutputPaths = []string{cfg.Log.File}
		zcfg.ErrorOutputPaths = []string{cfg.Log.File}
	}
	return zcfg.Build()
}

// newController wires config, logger, API client and a writer sink for the
// one-shot subcommands.
func newController() (*chat.Client, *config.Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := buildLogger(cfg, false)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	apiClient, err := api.New(cfg.Server.BaseURL, cfg.HTTP.Timeout, logger)
	if err != nil {
		logger.Sync()
		return nil, nil, nil, err
	}

	sink := &chat.WriterSink{W: os.Stdout, AssumeYes: assumeYes}
	ctrl := chat.New(apiClient, sink, logger)
	return ctrl, cfg, func() { logger.Sync() }, nil
}

func runInteractive() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg, true)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	apiClient, err := api.New(cfg.Server.BaseURL, cfg.HTTP.Timeout, logger)
	if err != nil {
		return err
	}

	// The sink is attached after the program exists; nothing runs through
	// it until Init fires the startup sequence.
	sink := tui.NewSink()
	ctrl := chat.New(apiClient, sink, logger)

	styles := tui.NewStyles(tui.ThemeByName(cfg.UI.Theme))
	model := tui.New(ctrl, cfg.UI.WelcomeMessage, styles, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	sink.Attach(p)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interface: %w", err)
	}
	return nil
}
