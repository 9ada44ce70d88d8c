// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/atk0906/Projet-SUAPS/internal/config"
)

// Config command flags.
var configGlobal bool

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and modify suaps configuration",
	Long: `View and modify suaps configuration.

suaps reads .suaps.yaml (or .suaps.toml) in the data directory. A global
config at ~/.config/suaps/config.yaml provides defaults; data directory
settings override it, and command-line flags override both.

Note: config set does a YAML round-trip and will not preserve comments.`,
}

// configShowCmd prints the effective configuration.
var configShowCmd = &cobra.Command{
	Use:   "show [data-dir]",
	Short: "Print the effective configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigShow,
}

// configValidateCmd checks the configuration of a data directory.
var configValidateCmd = &cobra.Command{
	Use:   "validate [data-dir]",
	Short: "Validate the configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigValidate,
}

// configGetCmd retrieves a configuration value by dot-notation key path.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a configuration value of the current directory by dot-notation key path.

Examples:
  suaps config get output_format
  suaps config get attendance.activity
  suaps config get semesters
  suaps config get --global llm.model`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configSetCmd sets a configuration value.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in .suaps.yaml of the current directory.

Values are auto-detected as bool, int, float, or string.
Use --global to write to ~/.config/suaps/config.yaml.

Examples:
  suaps config set output_format html
  suaps config set attendance.activity "VOLLEY - VANNES"
  suaps config set semesters.semester1 inscriptions_s1.xlsx
  suaps config set history.window 10
  suaps config set --global llm.disabled true`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

// configListCmd lists all configuration values with their source.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Long: `List every configuration value of the current directory, annotated with
whether it comes from the project config (.suaps.yaml) or the global config
(~/.config/suaps/config.yaml). Project values override global values.`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

func init() {
	configGetCmd.Flags().BoolVar(&configGlobal, "global", false, "use global config (~/.config/suaps/config.yaml)")
	configSetCmd.Flags().BoolVar(&configGlobal, "global", false, "write to global config (~/.config/suaps/config.yaml)")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
}

// resetConfigFlags resets config command flags for testing.
func resetConfigFlags() {
	configGlobal = false
	for _, c := range []*cobra.Command{configGetCmd, configSetCmd} {
		if f := c.Flags().Lookup("global"); f != nil {
			_ = f.Value.Set("false")
			f.Changed = false
		}
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	dataDir, err := resolveDataDir(args)
	if err != nil {
		return exitError(ExitInvalidArgs, "suaps: %v", err)
	}
	cfg, err := loadConfig(dataDir)
	if err != nil {
		return exitError(ExitInvalidArgs, "suaps: %v", err)
	}
	w := cmd.OutOrStdout()
	source := config.Path(dataDir)
	if source == "" {
		source = "defaults (no config file)"
	}
	_, _ = fmt.Fprintf(w, "# source: %s\n", source)
	return config.Write(w, cfg)
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	dataDir, err := resolveDataDir(args)
	if err != nil {
		return exitError(ExitInvalidArgs, "suaps: %v", err)
	}
	if _, err := loadConfig(dataDir); err != nil {
		return exitError(ExitInvalidArgs, "suaps: %v", err)
	}
	path := config.Path(dataDir)
	if path == "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No config file in %s; defaults apply.\n", dataDir)
		return nil
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("valid:"), path)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	var err error
	if configGlobal {
		cfg, err = config.LoadGlobal()
	} else {
		cfg, err = loadConfig(".")
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	val, err := config.GetValue(cfg, args[0])
	if err != nil {
		return err
	}
	return printValue(cmd, val)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	keyPath, rawValue := args[0], args[1]
	if err := config.ValidateKeyPath(keyPath); err != nil {
		return err
	}

	targetPath := filepath.Join(".", config.FileName)
	if configGlobal {
		targetPath = config.GlobalConfigPath()
	}

	data, err := config.LoadRaw(targetPath)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}
	if err := config.SetValue(data, keyPath, rawValue); err != nil {
		return fmt.Errorf("setting value: %w", err)
	}

	// Round-trip validate before writing.
	roundTrip, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	var validCfg config.Config
	if err := yaml.Unmarshal(roundTrip, &validCfg); err != nil {
		return fmt.Errorf("invalid config after set: %w", err)
	}
	if err := config.Validate(&validCfg); err != nil {
		return err
	}

	if err := config.WriteRaw(targetPath, data); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", keyPath, rawValue)
	return nil
}

// printValue outputs a value: scalars as plain text, maps/slices as YAML.
func printValue(cmd *cobra.Command, val any) error {
	switch v := val.(type) {
	case map[string]any, []any:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
	default:
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return fmt.Errorf("loading global config: %w", err)
	}
	projectCfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("loading project config: %w", err)
	}

	type entry struct {
		value  any
		source string
	}
	seen := make(map[string]entry)
	for _, layer := range []struct {
		source string
		cfg    *config.Config
	}{{"global", globalCfg}, {"project", projectCfg}} {
		m, err := configToFlatMap(layer.cfg)
		if err != nil {
			return err
		}
		for k, v := range m {
			seen[k] = entry{value: v, source: layer.source}
		}
	}

	if len(seen) == 0 {
		_, _ = fmt.Fprintln(w, "No configuration set.")
		_, _ = fmt.Fprintln(w, "Run 'suaps init' to create a config, or 'suaps config set <key> <value>' to set values.")
		return nil
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sourceColor := map[string]*color.Color{
		"global":  color.New(color.FgCyan),
		"project": color.New(color.FgGreen),
	}
	for _, k := range keys {
		e := seen[k]
		_, _ = fmt.Fprintf(w, "%s = %v %s\n", k, e.value, sourceColor[e.source].Sprintf("(%s)", e.source))
	}
	return nil
}

// configToFlatMap converts a Config to a flat dot-notation map, omitting
// zero values.
func configToFlatMap(cfg *config.Config) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	m := map[string]any{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return config.FlattenMap(m, ""), nil
}
