package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/Rshep3087/myspend/config"
	"github.com/Rshep3087/myspend/ledger"
	"github.com/Rshep3087/myspend/report"
	"github.com/Rshep3087/myspend/storage"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"

	// commands annotated with skipStore run without opening the ledger
	skipStoreAnnotation = "skipStore"
)

// Global variables for configuration.
var (
	cfgFile     string
	debug       bool
	dataDir     string
	storageKind string
	currency    string

	appConfig config.Config
	backend   storage.Backend
	store     *ledger.Store
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "myspend",
	Short: "A terminal expense tracker",
	Long:  `Record income and expenses, filter them and see where the money goes, from a terminal UI or the command line.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		appConfig = cfg

		// Setup logging
		log.SetLevel(log.InfoLevel)
		if cfg.Debug {
			log.SetLevel(log.DebugLevel)
		}

		if _, ok := cmd.Annotations[skipStoreAnnotation]; ok {
			return nil
		}

		backend, err = storage.Open(cfg.Storage, cfg.DataDir)
		if err != nil {
			return fmt.Errorf("failed to open %s storage: %w", cfg.Storage, err)
		}

		report.SetLogger(log.Default())
		store = ledger.Open(cmd.Context(), backend,
			ledger.WithKey(cfg.StorageKey),
			ledger.WithLogger(log.Default()),
			ledger.WithOnChange(func(c ledger.Change) {
				log.Debug("ledger changed", "op", c.Op, "id", c.ID, "count", c.Count)
			}),
		)

		log.Debug("ledger opened", "storage", cfg.Storage, "data_dir", cfg.DataDir, "transactions", store.Len())
		return nil
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		if backend == nil {
			return nil
		}
		if err := backend.Close(); err != nil {
			return fmt.Errorf("failed to close storage: %w", err)
		}
		return nil
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		// Start TUI when no subcommands are provided
		return runTUI(appConfig, viper.ConfigFileUsed(), store)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./myspend.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the transaction store")
	rootCmd.PersistentFlags().StringVar(&storageKind, "storage", storage.FileBackend,
		"storage backend: file, sqlite or memory")
	rootCmd.PersistentFlags().StringVar(&currency, "currency", "", "ISO 4217 currency code used to display amounts")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	_ = viper.BindPFlag("storage", rootCmd.PersistentFlags().Lookup("storage"))
	_ = viper.BindPFlag("currency", rootCmd.PersistentFlags().Lookup("currency"))

	setDefaults(viper.GetViper())

	// Add subcommands
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(configCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// a missing .env is the normal case
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("myspend")
		viper.SetConfigType("toml")
		for _, dir := range configSearchPaths() {
			viper.AddConfigPath(dir)
		}
	}

	viper.SetEnvPrefix("MYSPEND")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		log.Debug("Config file not found or error reading", "error", err)
		return
	}

	log.Debug("Using config file", "file", viper.ConfigFileUsed())
}

// configSearchPaths lists the directories searched for myspend.toml, highest
// precedence first.
func configSearchPaths() []string {
	// Current directory (highest precedence)
	paths := []string{"."}

	// User config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, "myspend"))
	}

	// User home directory
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home, filepath.Join(home, ".config", "myspend"))
	}

	// System-wide config directory (lowest precedence)
	return append(paths, "/etc/myspend")
}

// validateOutputFormat reads the --output flag.
func validateOutputFormat(cmd *cobra.Command) (string, error) {
	outputFormat, _ := cmd.Flags().GetString("output")

	validFormats := []string{tableOutputFormat, jsonOutputFormat}
	if !slices.Contains(validFormats, outputFormat) {
		return "", fmt.Errorf("invalid output format: %s (must be one of %v)", outputFormat, validFormats)
	}

	return outputFormat, nil
}

// Utility functions for output formatting.
func outputJSON(cmd *cobra.Command, data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func createStyledTable(headers ...string) *table.Table {
	var (
		purple    = lipgloss.Color("99")
		gray      = lipgloss.Color("245")
		lightGray = lipgloss.Color("241")

		headerStyle  = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(gray)
		evenRowStyle = cellStyle.Foreground(lightGray)
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}
