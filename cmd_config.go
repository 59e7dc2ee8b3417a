package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Rshep3087/myspend/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration commands",
	Long:  `Commands for inspecting and creating the myspend configuration file.`,
}

// configShowCmd represents the config show command.
var configShowCmd = &cobra.Command{
	Use:         "show",
	Short:       "Show the effective configuration",
	Long:        `Show the configuration after merging defaults, the config file, environment variables and flags.`,
	Annotations: map[string]string{skipStoreAnnotation: "true"},
	RunE:        configShowRun,
}

// configInitCmd represents the config init command.
var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write a default config file",
	Long:        `Write a config file holding the default settings.`,
	Annotations: map[string]string{skipStoreAnnotation: "true"},
	RunE:        configInitRun,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	configShowCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")

	configInitCmd.Flags().String("path", "", "where to write the file (default is the user config directory)")
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")
}

func configShowRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd, appConfig)
	case tableOutputFormat:
		return outputConfigTable(cmd, appConfig, viper.ConfigFileUsed())
	default:
		return errors.New("unsupported output format")
	}
}

func outputConfigTable(cmd *cobra.Command, cfg config.Config, configFile string) error {
	if configFile == "" {
		configFile = "-"
	}

	t := createStyledTable("SETTING", "VALUE")
	t.Row("config file", configFile)
	t.Row("debug", strconv.FormatBool(cfg.Debug))
	t.Row("storage", cfg.Storage)
	t.Row("data_dir", cfg.DataDir)
	t.Row("storage_key", cfg.StorageKey)
	t.Row("currency", cfg.Currency)
	t.Row("categories", strings.Join(cfg.Categories, ", "))
	t.Row("export_dir", cfg.ExportDir)

	fmt.Fprintln(cmd.OutOrStdout(), t)
	return nil
}

func configInitRun(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("path")
	force, _ := cmd.Flags().GetBool("force")

	if path == "" {
		path = defaultConfigPath()
	}

	if err := writeDefaultConfig(path, force); err != nil {
		return err
	}

	// the written file must load back cleanly
	if _, err := loadConfigFromFile(path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
