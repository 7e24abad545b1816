package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shopgrip/internal/config"
	"shopgrip/internal/eventbus"
	"shopgrip/internal/logging"
	"shopgrip/internal/nav"
	"shopgrip/internal/storefront"
	"shopgrip/internal/ui"
)

var (
	configPath string
	endpoint   string
	debug      bool
	force      bool
)

var rootCmd = &cobra.Command{
	Use:   "shopgrip",
	Short: "Predictive storefront search in the terminal",
	Long: `shopgrip opens a storefront's predictive search in a terminal popup.

Press / to search, arrow keys to pick a result and Enter to open it.
Run "shopgrip-mockstore" for a local fixture store.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := config.NewConfigService(configPath)
		path := svc.Path()
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		cfg := config.DefaultConfig()
		if endpoint != "" {
			cfg.Endpoint = endpoint
		}
		if err := svc.Save(cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $XDG_CONFIG_HOME/shopgrip/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&endpoint, "endpoint", "e", "", "Storefront base URL (overrides config)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	initConfigCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	rootCmd.AddCommand(initConfigCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewConfigService(configPath).Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(logging.Options{File: cfg.LogFile, Debug: debug})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// the logger is configured from cfg, so the bus only exists after loading
	bus := eventbus.New(logger)
	defer bus.Close()
	bus.Publish(eventbus.ConfigLoadedEvent{Endpoint: cfg.Endpoint})

	client, err := storefront.NewClient(cfg.Endpoint,
		storefront.WithSearchPath(cfg.SearchPath),
		storefront.WithLogger(logger))
	if err != nil {
		return err
	}

	history := nav.NewHistory(0)
	router := nav.NewBusRouter(cfg.Endpoint, bus, history, logger)

	model := ui.NewModel(ui.Options{
		Bus:    bus,
		Config: cfg,
		Store:  client,
		Router: router,
		Menu:   nav.NewMenu(cfg.Endpoint, cfg.Menu),
		Logger: logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	// Forward the events the main screen reacts to
	for _, t := range []eventbus.EventType{
		eventbus.EventNavigationRequested,
		eventbus.EventSearchFailed,
		eventbus.EventCartLoaded,
		eventbus.EventError,
	} {
		unsubscribe := bus.Subscribe(t, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
		defer unsubscribe()
	}

	logger.Info("starting UI", zap.String("endpoint", cfg.Endpoint))
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", zap.Error(err))
		return fmt.Errorf("run: %w", err)
	}
	logger.Info("UI exited normally", zap.Strings("visited", history.Entries()))

	if last, ok := history.Last(); ok {
		fmt.Printf("last destination: %s\n", last)
	}
	return nil
}
